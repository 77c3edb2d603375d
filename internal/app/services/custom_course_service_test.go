package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsetu/lms-backend/internal/app/models"
	"github.com/learnsetu/lms-backend/internal/app/models/dto"
	"github.com/learnsetu/lms-backend/internal/pkg/catalog"
)

func TestSplitModuleIDs(t *testing.T) {
	tests := []struct {
		name   string
		joined string
		want   []string
	}{
		{"empty string", "", []string{}},
		{"single id", "s1", []string{"s1"}},
		{"multiple ids", "s1,s2,s3", []string{"s1", "s2", "s3"}},
		{"whitespace around ids", " s1 , s2 ", []string{"s1", "s2"}},
		{"stray commas", "s1,,s2,", []string{"s1", "s2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitModuleIDs(tt.joined))
		})
	}
}

func TestToSelectionsRoundTrip(t *testing.T) {
	pairs := []dto.ModuleSelectionRequest{
		{CourseID: "course-5", ModuleIDs: []string{" s1", "s2 "}},
		{CourseID: "course-7", ModuleIDs: nil},
	}

	selections := toSelections(pairs)

	require.Len(t, selections, 2)
	assert.Equal(t, "s1,s2", selections[0].ModuleIDs)
	assert.Equal(t, []string{"s1", "s2"}, splitModuleIDs(selections[0].ModuleIDs))

	// An empty selection persists as the empty string and parses back empty
	assert.Equal(t, "", selections[1].ModuleIDs)
	assert.Equal(t, []string{}, splitModuleIDs(selections[1].ModuleIDs))
}

func catalogDoc() *catalog.Document {
	return &catalog.Document{
		Courses: []catalog.Course{
			{
				ID:    "5",
				Title: "Spoken English",
				Sessions: []catalog.Session{
					{ID: "s1", Title: "Basics"},
					{ID: "s2", Title: "Grammar"},
					{ID: "s3", Title: "Advanced"},
				},
			},
			{
				ID:    "6",
				Title: "Computer Literacy",
				Sessions: []catalog.Session{
					{ID: "c1", Title: "Hardware"},
				},
			},
		},
	}
}

func TestComposeCourseFiltersSessionsInDocumentOrder(t *testing.T) {
	detail := models.CustomCourseDetail{
		CustomCourse: models.CustomCourse{ID: 1, Title: "Bundle"},
		Selections: []models.CustomCourseSelection{
			{CourseID: "course-5", ModuleIDs: "s2,s1"},
		},
	}

	out := composeCourse(detail, catalogDoc(), catalog.PrefixNormalizer{Prefix: "course-"})

	require.Len(t, out.DefaultCourses, 1)
	composed := out.DefaultCourses[0]
	assert.Equal(t, "5", composed.ID)
	assert.Equal(t, "Spoken English", composed.Title)

	// Sessions keep the catalog document's order, not the selection order
	require.Len(t, composed.Sessions, 2)
	assert.Equal(t, catalog.ID("s1"), composed.Sessions[0].ID)
	assert.Equal(t, catalog.ID("s2"), composed.Sessions[1].ID)
}

func TestComposeCourseNumericNormalizer(t *testing.T) {
	detail := models.CustomCourseDetail{
		CustomCourse: models.CustomCourse{ID: 2, Title: "Bundle"},
		Selections: []models.CustomCourseSelection{
			{CourseID: "course_6", ModuleIDs: "c1"},
		},
	}

	out := composeCourse(detail, catalogDoc(), catalog.NumericSuffixNormalizer{})

	require.Len(t, out.DefaultCourses, 1)
	assert.Equal(t, "Computer Literacy", out.DefaultCourses[0].Title)
}

func TestComposeCourseUnmatchedReferenceDegrades(t *testing.T) {
	detail := models.CustomCourseDetail{
		CustomCourse: models.CustomCourse{ID: 3, Title: "Stale"},
		Selections: []models.CustomCourseSelection{
			{CourseID: "course-999", ModuleIDs: "s1"},
			{CourseID: "course-5", ModuleIDs: "s3"},
		},
	}

	out := composeCourse(detail, catalogDoc(), catalog.PrefixNormalizer{Prefix: "course-"})

	// The stale reference is dropped; the resolvable one still composes
	require.Len(t, out.DefaultCourses, 1)
	assert.Equal(t, "5", out.DefaultCourses[0].ID)
}

func TestComposeCourseNoSelections(t *testing.T) {
	detail := models.CustomCourseDetail{
		CustomCourse: models.CustomCourse{ID: 4, Title: "Empty"},
	}

	out := composeCourse(detail, catalogDoc(), catalog.PrefixNormalizer{Prefix: "course-"})

	assert.NotNil(t, out.DefaultCourses)
	assert.Empty(t, out.DefaultCourses)
}

func TestComposeCourseEmptyModuleSelection(t *testing.T) {
	detail := models.CustomCourseDetail{
		CustomCourse: models.CustomCourse{ID: 5, Title: "No Modules"},
		Selections: []models.CustomCourseSelection{
			{CourseID: "course-5", ModuleIDs: ""},
		},
	}

	out := composeCourse(detail, catalogDoc(), catalog.PrefixNormalizer{Prefix: "course-"})

	// The course matches but no sessions are selected
	require.Len(t, out.DefaultCourses, 1)
	assert.NotNil(t, out.DefaultCourses[0].Sessions)
	assert.Empty(t, out.DefaultCourses[0].Sessions)
}
