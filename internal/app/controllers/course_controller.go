package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/learnsetu/lms-backend/internal/app/models/dto"
	"github.com/learnsetu/lms-backend/internal/app/services"
	"github.com/learnsetu/lms-backend/internal/middleware"
)

// CourseController handles catalog browsing operations
type CourseController struct {
	catalogService services.CatalogService
	logger         zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(catalogService services.CatalogService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		catalogService: catalogService,
		logger:         logger,
	}
}

// GetCourseTree returns the full nested catalog tree. An empty catalog
// yields an empty data array, never null.
func (c *CourseController) GetCourseTree(ctx *gin.Context) {
	tree, err := c.catalogService.GetCourseTree(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(tree))
}

// GetCourseModuleSessions returns the course grouped module and session
// listing built from the flat join.
func (c *CourseController) GetCourseModuleSessions(ctx *gin.Context) {
	courses, err := c.catalogService.GetCourseModuleSessions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(courses))
}
