package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsetu/lms-backend/internal/pkg/apperrors"
)

func TestFetchDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"courses": [
				{"id": 5, "title": "Hindi Basics", "sessions": [
					{"id": "s1", "title": "Intro"},
					{"id": "s2", "title": "Letters"}
				]},
				{"id": "course-6", "title": "English Basics", "sessions": []}
			]
		}`))
	}))
	defer srv.Close()

	doc, err := NewClient(srv.URL).FetchDocument(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Courses, 2)

	// Numeric and string ids both decode to the string form
	assert.Equal(t, ID("5"), doc.Courses[0].ID)
	assert.Equal(t, ID("course-6"), doc.Courses[1].ID)
	require.Len(t, doc.Courses[0].Sessions, 2)
	assert.Equal(t, ID("s1"), doc.Courses[0].Sessions[0].ID)
}

func TestFetchDocumentNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchDocument(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestFetchDocumentBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"courses": [`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).FetchDocument(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestFetchDocumentConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL).FetchDocument(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestIDUnmarshalRejectsObjects(t *testing.T) {
	var id ID
	err := json.Unmarshal([]byte(`{"nested": true}`), &id)
	assert.Error(t, err)
}
