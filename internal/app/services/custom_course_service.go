package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/learnsetu/lms-backend/internal/app/models"
	"github.com/learnsetu/lms-backend/internal/app/models/dto"
	"github.com/learnsetu/lms-backend/internal/app/repositories"
	"github.com/learnsetu/lms-backend/internal/pkg/apperrors"
	"github.com/learnsetu/lms-backend/internal/pkg/catalog"
	"github.com/learnsetu/lms-backend/internal/pkg/logger"
)

// CustomCourseService defines the custom course operations
type CustomCourseService interface {
	Create(ctx context.Context, req dto.CreateCustomCourseRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.UpdateCustomCourseRequest) error
	GetAll(ctx context.Context) ([]models.CustomCourseDetail, error)
	GetByUser(ctx context.Context, userID int64) ([]models.CustomCourseDetail, error)
	GetUserCourseDetail(ctx context.Context, userID, courseID int64) (*dto.UserCourseDetailResponse, error)
	ComposeAll(ctx context.Context) ([]dto.ComposedCustomCourse, error)
}

// customCourseServiceImpl implements the CustomCourseService interface
type customCourseServiceImpl struct {
	courseRepo *repositories.CustomCourseRepository
	fetcher    catalog.Fetcher
	normalizer catalog.IDNormalizer
}

// NewCustomCourseService creates a new custom course service instance
func NewCustomCourseService(courseRepo *repositories.CustomCourseRepository, fetcher catalog.Fetcher, normalizer catalog.IDNormalizer) CustomCourseService {
	return &customCourseServiceImpl{
		courseRepo: courseRepo,
		fetcher:    fetcher,
		normalizer: normalizer,
	}
}

// Create validates and stores a new custom course bundle
func (s *customCourseServiceImpl) Create(ctx context.Context, req dto.CreateCustomCourseRequest) (int64, error) {
	if strings.TrimSpace(req.Title) == "" {
		return 0, apperrors.NewValidationError("Course title is required")
	}

	course := &models.CustomCourse{
		Title:       req.Title,
		Description: req.Description,
		ExamID:      req.ExamID,
	}

	id, err := s.courseRepo.Create(ctx, course, toSelections(req.Modules), req.UserIDs)
	if err != nil {
		return 0, fmt.Errorf("error creating custom course: %w", err)
	}
	return id, nil
}

// Update rewrites a custom course; a supplied module or user list replaces
// the stored set entirely.
func (s *customCourseServiceImpl) Update(ctx context.Context, id int64, req dto.UpdateCustomCourseRequest) error {
	if id <= 0 {
		return apperrors.NewValidationError("Invalid custom course ID")
	}

	course := &models.CustomCourse{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		ExamID:      req.ExamID,
	}

	var selections *[]models.CustomCourseSelection
	if req.Modules != nil {
		sel := toSelections(*req.Modules)
		selections = &sel
	}

	if err := s.courseRepo.Update(ctx, course, selections, req.UserIDs); err != nil {
		if apperrors.Is(err, apperrors.ErrCustomCourseNotFound) {
			return apperrors.ErrCustomCourseNotFound
		}
		return fmt.Errorf("error updating custom course: %w", err)
	}
	return nil
}

// toSelections converts request pairs to storage rows, joining each module
// id list into the persisted comma-delimited form.
func toSelections(pairs []dto.ModuleSelectionRequest) []models.CustomCourseSelection {
	selections := make([]models.CustomCourseSelection, 0, len(pairs))
	for _, pair := range pairs {
		ids := make([]string, 0, len(pair.ModuleIDs))
		for _, id := range pair.ModuleIDs {
			ids = append(ids, strings.TrimSpace(id))
		}
		selections = append(selections, models.CustomCourseSelection{
			CourseID:  pair.CourseID.String(),
			ModuleIDs: strings.Join(ids, ","),
		})
	}
	return selections
}

// GetAll returns all custom courses with their locally stored details
func (s *customCourseServiceImpl) GetAll(ctx context.Context) ([]models.CustomCourseDetail, error) {
	details, err := s.courseRepo.GetAllDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving custom courses: %w", err)
	}
	return details, nil
}

// GetByUser returns the custom courses assigned to one user
func (s *customCourseServiceImpl) GetByUser(ctx context.Context, userID int64) ([]models.CustomCourseDetail, error) {
	if userID <= 0 {
		return nil, apperrors.NewValidationError("Invalid user ID")
	}

	details, err := s.courseRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user custom courses: %w", err)
	}
	return details, nil
}

// GetUserCourseDetail returns the per-user course view. The exam reference
// is withheld until the progress record marks the course completed.
func (s *customCourseServiceImpl) GetUserCourseDetail(ctx context.Context, userID, courseID int64) (*dto.UserCourseDetailResponse, error) {
	detail, err := s.courseRepo.GetUserCourseDetail(ctx, userID, courseID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotAssigned) {
			return nil, apperrors.ErrCourseNotAssigned
		}
		return nil, fmt.Errorf("error retrieving user course detail: %w", err)
	}

	resp := &dto.UserCourseDetailResponse{
		ID:          detail.ID,
		Title:       detail.Title,
		Description: detail.Description,
		ShowExam:    detail.IsCompleted,
	}
	if detail.IsCompleted {
		resp.ExamID = detail.ExamID
	}
	return resp, nil
}

// ComposeAll cross-references every stored custom course against a freshly
// fetched external catalog document. The document is fetched once and reused
// for all rows; a fetch failure fails the whole call, while a stale course
// reference degrades that row to an empty cross-reference.
func (s *customCourseServiceImpl) ComposeAll(ctx context.Context) ([]dto.ComposedCustomCourse, error) {
	details, err := s.courseRepo.GetAllDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving custom courses: %w", err)
	}

	doc, err := s.fetcher.FetchDocument(ctx)
	if err != nil {
		return nil, err
	}

	composed := make([]dto.ComposedCustomCourse, 0, len(details))
	for _, detail := range details {
		composed = append(composed, composeCourse(detail, doc, s.normalizer))
	}
	return composed, nil
}

// composeCourse resolves one custom course's stored selections against the
// catalog document: match the source course by normalized id, then filter
// its sessions to the selected module ids, preserving document order.
func composeCourse(detail models.CustomCourseDetail, doc *catalog.Document, normalizer catalog.IDNormalizer) dto.ComposedCustomCourse {
	out := dto.ComposedCustomCourse{
		ID:             detail.ID,
		Title:          detail.Title,
		Description:    detail.Description,
		ExamID:         detail.ExamID,
		ExamTitle:      detail.ExamTitle,
		DefaultCourses: []dto.ComposedCourse{},
	}

	for _, sel := range detail.Selections {
		course := doc.FindCourse(sel.CourseID, normalizer)
		if course == nil {
			// Stale or bad reference: this row degrades, the batch survives
			logger.Warn().
				Int64("custom_course_id", detail.ID).
				Str("source_course_id", sel.CourseID).
				Msg("No external catalog match for stored course reference")
			continue
		}

		selected := splitModuleIDs(sel.ModuleIDs)
		wanted := make(map[string]struct{}, len(selected))
		for _, id := range selected {
			wanted[id] = struct{}{}
		}

		sessions := []catalog.Session{}
		for _, session := range course.Sessions {
			if _, ok := wanted[session.ID.String()]; ok {
				sessions = append(sessions, session)
			}
		}

		out.DefaultCourses = append(out.DefaultCourses, dto.ComposedCourse{
			ID:          course.ID.String(),
			Title:       course.Title,
			Image:       course.Image,
			Description: course.Description,
			Sessions:    sessions,
		})
	}

	return out
}

// splitModuleIDs parses the persisted comma-delimited module id string. The
// empty string parses to an empty list, not a list of one empty id.
func splitModuleIDs(joined string) []string {
	ids := []string{}
	for _, token := range strings.Split(joined, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		ids = append(ids, token)
	}
	return ids
}
