package catalog

import (
	"encoding/json"
	"fmt"
)

// ID is a course or session identifier as the external document carries it.
// The remote feed is inconsistent about identifier types and may emit either
// a JSON string or a bare number; both decode to the string form.
type ID string

// UnmarshalJSON accepts both string and numeric identifiers
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = ID(n.String())
		return nil
	}

	return fmt.Errorf("catalog id must be a string or number, got %s", data)
}

// String returns the identifier as a plain string
func (id ID) String() string {
	return string(id)
}

// Document is the externally-owned catalog snapshot: a list of courses, each
// with its sessions. It is fetched per request and never persisted.
type Document struct {
	Courses []Course `json:"courses"`
}

// Course is one course entry of the external catalog document
type Course struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	Sessions    []Session `json:"sessions"`
}

// Session is one session entry under an external course
type Session struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// FindCourse returns the course whose normalized identifier equals the
// normalized target, or nil when the document has no match.
func (d *Document) FindCourse(target string, normalizer IDNormalizer) *Course {
	want := normalizer.Normalize(target)
	for i := range d.Courses {
		if normalizer.Normalize(d.Courses[i].ID.String()) == want {
			return &d.Courses[i]
		}
	}
	return nil
}
