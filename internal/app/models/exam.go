package models

import "time"

// Exam holds a title, optional description and a serialized question list.
// QuestionsJSON is always a valid JSON array; it is decoded back to the
// question structures on read.
type Exam struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	QuestionsJSON []byte    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
