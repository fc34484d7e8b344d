package webclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCourses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("size"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"courses": [
					{"code": "CS101", "name": "Intro to CS", "capacity": 30, "registered": 12, "seatsLeft": 18}
				],
				"pagination": {"currentPage": 1, "pageSize": 50, "totalItems": 1, "totalPages": 1}
			},
			"timestamp": "2024-02-01T09:30:00Z"
		}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)

	catalog, err := client.ListCourses(context.Background(), 1, 50)
	require.NoError(t, err)
	require.Len(t, catalog.Courses, 1)
	assert.Equal(t, "CS101", catalog.Courses[0].Code)
	assert.Equal(t, 18, catalog.Courses[0].SeatsLeft)
}

func TestGetCourse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses/CS101", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {"code": "CS101", "name": "Intro to CS", "capacity": 30, "registered": 0, "seatsLeft": 30},
			"timestamp": "2024-02-01T09:30:00Z"
		}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)

	course, err := client.GetCourse(context.Background(), "CS101")
	require.NoError(t, err)
	assert.Equal(t, "CS101", course.Code)
	assert.Equal(t, 30, course.SeatsLeft)
}

func TestGetCourse_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{
			"success": false,
			"error": {"code": "RES_001", "message": "Course not found", "severity": "ERROR"},
			"timestamp": "2024-02-01T09:30:00Z"
		}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)

	_, err := client.GetCourse(context.Background(), "CS999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Course not found")
	assert.Contains(t, err.Error(), "RES_001")
}

func TestGetCourse_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	serverURL := server.URL
	server.Close()

	client := New(serverURL, time.Second)

	_, err := client.GetCourse(context.Background(), "CS101")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestGetCourse_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)

	_, err := client.GetCourse(context.Background(), "CS101")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestGetCourse_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"data": {}}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.GetCourse(ctx, "CS101")
	assert.Error(t, err)
}
