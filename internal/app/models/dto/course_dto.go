package dto

import (
	"encoding/json"

	"github.com/learnsetu/lms-backend/internal/app/models"
)

// ModuleNode is one module of the nested catalog tree
type ModuleNode struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Sessions []SessionNode `json:"sessions"`
}

// SessionNode is a top-level session with its direct content parts and its
// one-level-deep sub-sessions
type SessionNode struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	ContentParts []ContentPartNode `json:"content_parts"`
	SubSessions  []SubSessionNode  `json:"sub_sessions"`
}

// SubSessionNode is a sub-session; it holds content parts but never nests
// further
type SubSessionNode struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	ContentParts []ContentPartNode `json:"content_parts"`
}

// ContentPartNode groups the ordered content items of a session
type ContentPartNode struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Contents []ContentItemNode `json:"contents"`
}

// ContentItemNode is the tagged union leaf: a video reference or a quiz.
// Its JSON form carries video_link or questions depending on the type, never
// both.
type ContentItemNode struct {
	Index     int
	Type      string
	Title     string
	VideoLink string
	Questions json.RawMessage
}

type videoItemJSON struct {
	Index     int    `json:"index"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	VideoLink string `json:"video_link"`
}

type quizItemJSON struct {
	Index     int             `json:"index"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Questions json.RawMessage `json:"questions"`
}

// MarshalJSON emits the variant matching the type discriminator
func (n ContentItemNode) MarshalJSON() ([]byte, error) {
	if n.Type == models.ContentTypeVideo {
		return json.Marshal(videoItemJSON{
			Index:     n.Index,
			Type:      n.Type,
			Title:     n.Title,
			VideoLink: n.VideoLink,
		})
	}

	questions := n.Questions
	if len(questions) == 0 {
		questions = json.RawMessage("[]")
	}
	return json.Marshal(quizItemJSON{
		Index:     n.Index,
		Type:      models.ContentTypeQuiz,
		Title:     n.Title,
		Questions: questions,
	})
}

// CourseModulesNode is one course of the join-based course→module→session
// listing
type CourseModulesNode struct {
	ID      int64               `json:"id"`
	Title   string              `json:"title"`
	Modules []ModuleSessionNode `json:"modules"`
}

// ModuleSessionNode is a module with its top-level sessions, as emitted by
// the join-based listing
type ModuleSessionNode struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Sessions []SessionSummary `json:"sessions"`
}

// SessionSummary is the slim session view used in join-based listings
type SessionSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
