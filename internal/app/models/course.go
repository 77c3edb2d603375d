package models

// Content item type discriminators
const (
	ContentTypeVideo = "video"
	ContentTypeQuiz  = "quiz"
)

// Course is a locally stored catalog course owning modules
type Course struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Module is a top-level catalog grouping of sessions
type Module struct {
	ID         int64  `json:"-"`
	ModuleCode string `json:"module_code"`
	Title      string `json:"title"`
	CourseID   int64  `json:"-"`
}

// Session is a content-bearing unit under a module. ParentSessionCode is nil
// for top-level sessions; when set it marks the row as a sub-session of the
// referenced session. Sub-sessions nest one level only.
type Session struct {
	ID                int64   `json:"-"`
	SessionCode       string  `json:"session_code"`
	Title             string  `json:"title"`
	ModuleID          int64   `json:"-"`
	ParentSessionCode *string `json:"-"`
}

// ContentPart is a named grouping of ordered content items within a session
// or sub-session
type ContentPart struct {
	ID          int64  `json:"-"`
	PartCode    string `json:"part_code"`
	Title       string `json:"title"`
	SessionCode string `json:"-"`
}

// ContentItem is a leaf unit: a video reference or a quiz with questions.
// QuestionsJSON holds the serialized question array for quiz items.
type ContentItem struct {
	ID            int64   `json:"-"`
	PartCode      string  `json:"-"`
	ContentIndex  int     `json:"index"`
	Type          string  `json:"type"`
	Title         string  `json:"title"`
	VideoLink     *string `json:"-"`
	QuestionsJSON []byte  `json:"-"`
}
