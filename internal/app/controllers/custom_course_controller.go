package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/learnsetu/lms-backend/internal/app/models/dto"
	"github.com/learnsetu/lms-backend/internal/app/services"
	"github.com/learnsetu/lms-backend/internal/middleware"
)

// CustomCourseController handles custom course operations
type CustomCourseController struct {
	courseService services.CustomCourseService
	logger        zerolog.Logger
}

// NewCustomCourseController creates a new CustomCourseController
func NewCustomCourseController(courseService services.CustomCourseService, logger zerolog.Logger) *CustomCourseController {
	return &CustomCourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// Create stores a new custom course with its module selections and user
// assignments.
func (c *CustomCourseController) Create(ctx *gin.Context) {
	var req dto.CreateCustomCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid custom course payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid request format"))
		return
	}

	id, err := c.courseService.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateCustomCourseResponse{
		Success:        true,
		Message:        "Custom course created successfully",
		CustomCourseID: id,
	})
}

// Update rewrites a custom course
func (c *CustomCourseController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCustomCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid custom course payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid request format"))
		return
	}

	if err := c.courseService.Update(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Custom course updated successfully"))
}

// GetAll returns every custom course with its stored selections, exam summary
// and assigned users.
func (c *CustomCourseController) GetAll(ctx *gin.Context) {
	details, err := c.courseService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(details))
}

// GetByUser returns the custom courses assigned to one user
func (c *CustomCourseController) GetByUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	details, err := c.courseService.GetByUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(details))
}

// GetUserCourseDetail returns the exam-gated per-user course view
func (c *CustomCourseController) GetUserCourseDetail(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid user ID"))
		return
	}
	courseID, err := strconv.ParseInt(ctx.Param("course_id"), 10, 64)
	if err != nil || courseID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid course ID"))
		return
	}

	detail, err := c.courseService.GetUserCourseDetail(ctx.Request.Context(), userID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(detail))
}

// List returns every custom course cross-referenced against the freshly
// fetched external catalog document.
func (c *CustomCourseController) List(ctx *gin.Context) {
	composed, err := c.courseService.ComposeAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(composed))
}
