package dto

import (
	"github.com/learnsetu/lms-backend/internal/pkg/catalog"
)

// ModuleSelectionRequest is one (source course, selected modules) pair of a
// custom course payload. CourseID tolerates numeric or string JSON values.
type ModuleSelectionRequest struct {
	CourseID  catalog.ID `json:"course_id"`
	ModuleIDs []string   `json:"module_ids"`
}

// CreateCustomCourseRequest is the custom course creation payload
type CreateCustomCourseRequest struct {
	Title       string                   `json:"title"`
	Description *string                  `json:"description"`
	ExamID      *int64                   `json:"exam_id"`
	Modules     []ModuleSelectionRequest `json:"modules"`
	UserIDs     []int64                  `json:"user_ids"`
}

// UpdateCustomCourseRequest is the custom course update payload. Nil Modules
// or UserIDs leaves the stored set untouched; a non-nil slice (including an
// empty one) replaces it entirely.
type UpdateCustomCourseRequest struct {
	Title       string                    `json:"title"`
	Description *string                   `json:"description"`
	ExamID      *int64                    `json:"exam_id"`
	Modules     *[]ModuleSelectionRequest `json:"modules"`
	UserIDs     *[]int64                  `json:"user_ids"`
}

// CreateCustomCourseResponse is returned on successful creation
type CreateCustomCourseResponse struct {
	Success        bool   `json:"success" example:"true"`
	Message        string `json:"message" example:"Custom course created successfully"`
	CustomCourseID int64  `json:"custom_course_id" example:"7"`
}

// ComposedCourse is a matched external course with its session list filtered
// to the stored module selection, in document order.
type ComposedCourse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Image       string            `json:"image,omitempty"`
	Description string            `json:"description,omitempty"`
	Sessions    []catalog.Session `json:"sessions"`
}

// ComposedCustomCourse is one composer output row: the stored custom course
// cross-referenced against the freshly fetched external catalog.
type ComposedCustomCourse struct {
	ID             int64            `json:"id"`
	Title          string           `json:"title"`
	Description    *string          `json:"description"`
	ExamID         *int64           `json:"exam_id"`
	ExamTitle      *string          `json:"exam_title"`
	DefaultCourses []ComposedCourse `json:"default_courses"`
}

// UserCourseDetailResponse is the exam-gated per-user course view. ExamID is
// only populated when the user has completed the course.
type UserCourseDetailResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ShowExam    bool    `json:"show_exam"`
	ExamID      *int64  `json:"exam_id"`
}
