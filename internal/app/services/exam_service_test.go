package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsetu/lms-backend/internal/app/models"
	"github.com/learnsetu/lms-backend/internal/app/models/dto"
	"github.com/learnsetu/lms-backend/internal/pkg/apperrors"
)

func TestValidateExam(t *testing.T) {
	valid := dto.ExamRequest{
		Title:     "Final",
		Questions: json.RawMessage(`[{"question":"2+2?","options":["3","4"],"answer":1}]`),
	}

	questions, err := validateExam(valid)
	require.NoError(t, err)
	assert.Equal(t, []byte(valid.Questions), questions)

	tests := []struct {
		name string
		req  dto.ExamRequest
	}{
		{"missing title", dto.ExamRequest{Questions: json.RawMessage(`[]`)}},
		{"blank title", dto.ExamRequest{Title: "   ", Questions: json.RawMessage(`[]`)}},
		{"missing questions", dto.ExamRequest{Title: "Final"}},
		{"questions null", dto.ExamRequest{Title: "Final", Questions: json.RawMessage(`null`)}},
		{"questions boolean", dto.ExamRequest{Title: "Final", Questions: json.RawMessage(`true`)}},
		{"questions not an array", dto.ExamRequest{Title: "Final", Questions: json.RawMessage(`{"q":"?"}`)}},
		{"questions not json", dto.ExamRequest{Title: "Final", Questions: json.RawMessage(`not json`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateExam(tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestValidateExamEmptyArray(t *testing.T) {
	req := dto.ExamRequest{Title: "Final", Questions: json.RawMessage(`[]`)}

	questions, err := validateExam(req)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), questions)
}

func TestToExamResponseRoundTrip(t *testing.T) {
	stored := `[{"question":"Capital of India?","options":["Delhi","Mumbai"],"answer":0}]`
	exam := &models.Exam{
		ID:            7,
		Title:         "Geography",
		QuestionsJSON: []byte(stored),
		CreatedAt:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	resp := toExamResponse(exam)

	assert.Equal(t, int64(7), resp.ID)
	assert.JSONEq(t, stored, string(resp.Questions))
	assert.Equal(t, "2026-08-01T12:00:00Z", resp.CreatedAt)

	// The question payload survives a full encode and decode unchanged
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded dto.ExamResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.JSONEq(t, stored, string(decoded.Questions))
}

func TestToExamResponseEmptyQuestions(t *testing.T) {
	exam := &models.Exam{ID: 8, Title: "Draft"}

	resp := toExamResponse(exam)
	assert.Equal(t, json.RawMessage("[]"), resp.Questions)
}
