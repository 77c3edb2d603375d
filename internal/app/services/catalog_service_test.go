package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsetu/lms-backend/internal/app/models"
	"github.com/learnsetu/lms-backend/internal/app/models/dto"
	"github.com/learnsetu/lms-backend/internal/app/repositories"
)

func strPtr(s string) *string { return &s }

func TestAssembleTreeEmptyCatalog(t *testing.T) {
	tree := assembleTree(nil, nil, nil, nil)

	require.NotNil(t, tree)
	assert.Empty(t, tree)

	data, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestAssembleTreeGrouping(t *testing.T) {
	modules := []models.Module{
		{ID: 1, ModuleCode: "m1", Title: "Module One"},
		{ID: 2, ModuleCode: "m2", Title: "Module Two"},
	}
	sessions := []models.Session{
		{ID: 1, SessionCode: "s1", Title: "Session One", ModuleID: 1},
		{ID: 2, SessionCode: "s1a", Title: "Sub Session", ModuleID: 1, ParentSessionCode: strPtr("s1")},
		{ID: 3, SessionCode: "s2", Title: "Session Two", ModuleID: 1},
	}
	parts := []models.ContentPart{
		{ID: 1, PartCode: "p1", Title: "Part One", SessionCode: "s1"},
		{ID: 2, PartCode: "p2", Title: "Sub Part", SessionCode: "s1a"},
	}
	items := []models.ContentItem{
		{ID: 1, PartCode: "p1", ContentIndex: 2, Type: models.ContentTypeQuiz, Title: "Quiz", QuestionsJSON: []byte(`[{"q":"?"}]`)},
		{ID: 2, PartCode: "p1", ContentIndex: 1, Type: models.ContentTypeVideo, Title: "Intro", VideoLink: strPtr("https://v/1")},
	}

	tree := assembleTree(modules, sessions, parts, items)

	require.Len(t, tree, 2)
	assert.Equal(t, "m1", tree[0].ID)
	require.Len(t, tree[0].Sessions, 2)

	s1 := tree[0].Sessions[0]
	assert.Equal(t, "s1", s1.ID)
	require.Len(t, s1.ContentParts, 1)
	require.Len(t, s1.SubSessions, 1)
	assert.Equal(t, "s1a", s1.SubSessions[0].ID)
	require.Len(t, s1.SubSessions[0].ContentParts, 1)
	assert.Empty(t, s1.SubSessions[0].ContentParts[0].Contents)

	// Items sorted ascending by index regardless of row order
	contents := s1.ContentParts[0].Contents
	require.Len(t, contents, 2)
	assert.Equal(t, 1, contents[0].Index)
	assert.Equal(t, models.ContentTypeVideo, contents[0].Type)
	assert.Equal(t, 2, contents[1].Index)
	assert.Equal(t, models.ContentTypeQuiz, contents[1].Type)

	// Session without parts still carries empty collections
	s2 := tree[0].Sessions[1]
	assert.NotNil(t, s2.ContentParts)
	assert.Empty(t, s2.ContentParts)
	assert.NotNil(t, s2.SubSessions)
	assert.Empty(t, s2.SubSessions)

	// Module without sessions renders an empty list, never null
	data, err := json.Marshal(tree[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"m2","title":"Module Two","sessions":[]}`, string(data))
}

func TestAssembleTreeContentItemVariants(t *testing.T) {
	modules := []models.Module{{ID: 1, ModuleCode: "m1", Title: "M"}}
	sessions := []models.Session{{ID: 1, SessionCode: "s1", Title: "S", ModuleID: 1}}
	parts := []models.ContentPart{{ID: 1, PartCode: "p1", Title: "P", SessionCode: "s1"}}
	items := []models.ContentItem{
		{ID: 1, PartCode: "p1", ContentIndex: 1, Type: models.ContentTypeVideo, Title: "V", VideoLink: strPtr("https://v/1")},
		{ID: 2, PartCode: "p1", ContentIndex: 2, Type: models.ContentTypeQuiz, Title: "Q"},
	}

	tree := assembleTree(modules, sessions, parts, items)
	data, err := json.Marshal(tree[0].Sessions[0].ContentParts[0].Contents)
	require.NoError(t, err)

	// Video items carry video_link and no questions; quiz items the inverse,
	// with missing questions defaulting to an empty array
	assert.JSONEq(t, `[
		{"index":1,"type":"video","title":"V","video_link":"https://v/1"},
		{"index":2,"type":"quiz","title":"Q","questions":[]}
	]`, string(data))
}

func TestGroupCourseModules(t *testing.T) {
	rows := []repositories.CourseModuleSessionRow{
		{CourseID: 1, CourseTitle: "C1", ModuleID: 10, ModuleCode: "m10", ModuleTitle: "M10", SessionID: int64Ptr(100), SessionCode: strPtr("s100"), SessionTitle: strPtr("S100")},
		{CourseID: 1, CourseTitle: "C1", ModuleID: 10, ModuleCode: "m10", ModuleTitle: "M10", SessionID: int64Ptr(101), SessionCode: strPtr("s101"), SessionTitle: strPtr("S101")},
		{CourseID: 1, CourseTitle: "C1", ModuleID: 11, ModuleCode: "m11", ModuleTitle: "M11"},
		{CourseID: 2, CourseTitle: "C2", ModuleID: 20, ModuleCode: "m20", ModuleTitle: "M20", SessionID: int64Ptr(200), SessionCode: strPtr("s200"), SessionTitle: strPtr("S200")},
	}

	courses := groupCourseModules(rows)

	require.Len(t, courses, 2)
	assert.Equal(t, "C1", courses[0].Title)
	require.Len(t, courses[0].Modules, 2)
	assert.Equal(t, []string{"s100", "s101"}, sessionIDs(courses[0].Modules[0].Sessions))

	// Left join row with no session produces a module with an empty list
	assert.Equal(t, "m11", courses[0].Modules[1].ID)
	assert.NotNil(t, courses[0].Modules[1].Sessions)
	assert.Empty(t, courses[0].Modules[1].Sessions)

	require.Len(t, courses[1].Modules, 1)
	assert.Equal(t, "m20", courses[1].Modules[0].ID)
}

func int64Ptr(v int64) *int64 { return &v }

func sessionIDs(sessions []dto.SessionSummary) []string {
	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	return ids
}
