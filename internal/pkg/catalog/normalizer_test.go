package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixNormalizer(t *testing.T) {
	n := PrefixNormalizer{Prefix: "course-"}

	assert.Equal(t, "5", n.Normalize("course-5"))
	assert.Equal(t, "5", n.Normalize("5"))
	assert.Equal(t, "5", n.Normalize("  course-5  "))
	assert.Equal(t, "abc", n.Normalize("abc"))
}

func TestPrefixNormalizerEmptyPrefix(t *testing.T) {
	n := PrefixNormalizer{}

	assert.Equal(t, "course-5", n.Normalize(" course-5 "))
}

func TestNumericSuffixNormalizer(t *testing.T) {
	n := NumericSuffixNormalizer{}

	assert.Equal(t, "12", n.Normalize("course_12"))
	assert.Equal(t, "12", n.Normalize("12"))
	assert.Equal(t, "7", n.Normalize("c7"))
	assert.Equal(t, "abc", n.Normalize("abc"), "no numeric suffix falls back to the trimmed id")
	assert.Equal(t, "", n.Normalize("  "))
}

func TestNewNormalizer(t *testing.T) {
	assert.IsType(t, NumericSuffixNormalizer{}, NewNormalizer("numeric", ""))
	assert.Equal(t, PrefixNormalizer{Prefix: "course-"}, NewNormalizer("prefix", "course-"))
	assert.Equal(t, PrefixNormalizer{}, NewNormalizer("bogus", "course-"))
}

func TestFindCourse(t *testing.T) {
	doc := &Document{Courses: []Course{
		{ID: "course-1", Title: "One"},
		{ID: "course-5", Title: "Five"},
	}}

	got := doc.FindCourse("5", PrefixNormalizer{Prefix: "course-"})
	assert.NotNil(t, got)
	assert.Equal(t, "Five", got.Title)

	assert.Nil(t, doc.FindCourse("9", PrefixNormalizer{Prefix: "course-"}))
}
