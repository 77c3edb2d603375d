package dto

import "encoding/json"

// ExamRequest is the create/update payload. Questions must decode to a JSON
// array; an empty array is valid, anything else is rejected.
type ExamRequest struct {
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Questions   json.RawMessage `json:"questions"`
}

// CreateExamResponse is returned on successful creation
type CreateExamResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Exam created successfully"`
	ExamID  int64  `json:"exam_id" example:"3"`
}

// ExamResponse is an exam with its question list decoded back from storage
type ExamResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Questions   json.RawMessage `json:"questions"`
	CreatedAt   string          `json:"created_at,omitempty"`
}
