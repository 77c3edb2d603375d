package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/learnsetu/lms-backend/internal/app/models"
	"github.com/learnsetu/lms-backend/internal/app/models/dto"
	"github.com/learnsetu/lms-backend/internal/app/repositories"
	"github.com/learnsetu/lms-backend/internal/pkg/apperrors"
)

// ExamService defines the exam CRUD operations
type ExamService interface {
	Create(ctx context.Context, req dto.ExamRequest) (int64, error)
	GetAll(ctx context.Context) ([]dto.ExamResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ExamResponse, error)
	Update(ctx context.Context, id int64, req dto.ExamRequest) error
	Delete(ctx context.Context, id int64) error
}

// examServiceImpl implements the ExamService interface
type examServiceImpl struct {
	examRepo *repositories.ExamRepository
}

// NewExamService creates a new exam service instance
func NewExamService(examRepo *repositories.ExamRepository) ExamService {
	return &examServiceImpl{examRepo: examRepo}
}

// validateExam checks that the title is present and questions decodes to a
// JSON array. An empty array is valid; anything that is not an array is not.
func validateExam(req dto.ExamRequest) ([]byte, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("Title and questions array required")
	}

	// Only a JSON array is acceptable. A literal null unmarshals into a nil
	// slice without error, so the array check cannot rely on Unmarshal alone.
	trimmed := bytes.TrimSpace(req.Questions)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, apperrors.NewValidationError("Title and questions array required")
	}

	var questions []json.RawMessage
	if err := json.Unmarshal(trimmed, &questions); err != nil {
		return nil, apperrors.NewValidationError("Title and questions array required")
	}

	return req.Questions, nil
}

// Create validates and stores a new exam
func (s *examServiceImpl) Create(ctx context.Context, req dto.ExamRequest) (int64, error) {
	questions, err := validateExam(req)
	if err != nil {
		return 0, err
	}

	exam := &models.Exam{
		Title:         req.Title,
		Description:   req.Description,
		QuestionsJSON: questions,
	}

	id, err := s.examRepo.Create(ctx, exam)
	if err != nil {
		return 0, fmt.Errorf("error creating exam: %w", err)
	}
	return id, nil
}

// GetAll retrieves all exams with their question lists decoded
func (s *examServiceImpl) GetAll(ctx context.Context) ([]dto.ExamResponse, error) {
	exams, err := s.examRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving exams: %w", err)
	}

	responses := make([]dto.ExamResponse, 0, len(exams))
	for i := range exams {
		responses = append(responses, toExamResponse(&exams[i]))
	}
	return responses, nil
}

// GetByID retrieves a single exam
func (s *examServiceImpl) GetByID(ctx context.Context, id int64) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrExamNotFound) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error retrieving exam: %w", err)
	}

	resp := toExamResponse(exam)
	return &resp, nil
}

// Update validates and rewrites an exam
func (s *examServiceImpl) Update(ctx context.Context, id int64, req dto.ExamRequest) error {
	questions, err := validateExam(req)
	if err != nil {
		return err
	}

	exam := &models.Exam{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		QuestionsJSON: questions,
	}

	if err := s.examRepo.Update(ctx, exam); err != nil {
		if apperrors.Is(err, apperrors.ErrExamNotFound) {
			return apperrors.ErrExamNotFound
		}
		return fmt.Errorf("error updating exam: %w", err)
	}
	return nil
}

// Delete removes an exam
func (s *examServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.examRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrExamNotFound) {
			return apperrors.ErrExamNotFound
		}
		return fmt.Errorf("error deleting exam: %w", err)
	}
	return nil
}

func toExamResponse(exam *models.Exam) dto.ExamResponse {
	questions := json.RawMessage(exam.QuestionsJSON)
	if len(questions) == 0 {
		questions = json.RawMessage("[]")
	}

	return dto.ExamResponse{
		ID:          exam.ID,
		Title:       exam.Title,
		Description: exam.Description,
		Questions:   questions,
		CreatedAt:   exam.CreatedAt.Format(time.RFC3339),
	}
}
