package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/learnsetu/lms-backend/internal/app/models/dto"
	"github.com/learnsetu/lms-backend/internal/pkg/apperrors"
	"github.com/learnsetu/lms-backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to the standard error envelope. Client
// errors echo the error message; server errors never expose internals.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, err.Error()))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(dto.ErrorCodeInvalidCredentials, "Invalid credentials"))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, dto.NewErrorResponse(dto.ErrorCodeResourceAlreadyExists, "Email already registered"))

	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.NewErrorResponse(dto.ErrorCodeResourceAlreadyExists, err.Error()))

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCustomCourseNotFound),
		errors.Is(err, apperrors.ErrCourseNotAssigned),
		errors.Is(err, apperrors.ErrExamNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, err.Error()))

	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("External catalog failure")
		c.JSON(500, dto.NewErrorResponse(dto.ErrorCodeExternalServiceError, "External catalog unavailable"))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(500, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}
