package ticktick

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient returns a client pointed at a test server that records
// each request and replies with the given status and body.
func newTestClient(t *testing.T, status int, body any, record *http.Request) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if record != nil {
			*record = *r
		}
		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}))
	t.Cleanup(srv.Close)
	return NewClient("test-token", WithBaseURL(srv.URL))
}

func TestListProjects(t *testing.T) {
	var seen http.Request
	client := newTestClient(t, http.StatusOK, []Project{
		{ID: "p1", Name: "Work", Color: "#F18181", ViewMode: "list"},
		{ID: "p2", Name: "Home"},
	}, &seen)

	projects, err := client.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "p1", projects[0].ID)
	assert.Equal(t, "Work", projects[0].Name)
	assert.Equal(t, http.MethodGet, seen.Method)
	assert.Equal(t, "/project", seen.URL.Path)
	assert.Equal(t, "Bearer test-token", seen.Header.Get("Authorization"))
}

func TestGetProjectData(t *testing.T) {
	var seen http.Request
	client := newTestClient(t, http.StatusOK, ProjectData{
		Project: Project{ID: "p1", Name: "Work"},
		Tasks: []Task{
			{ID: "t1", ProjectID: "p1", Title: "Write report", Priority: 5},
		},
	}, &seen)

	data, err := client.GetProjectData(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "/project/p1/data", seen.URL.Path)
	require.Len(t, data.Tasks, 1)
	assert.Equal(t, 5, data.Tasks[0].Priority)
}

func TestGetTask(t *testing.T) {
	var seen http.Request
	client := newTestClient(t, http.StatusOK, Task{
		ID:        "t1",
		ProjectID: "p1",
		Title:     "Buy groceries",
		Items: []ChecklistItem{
			{ID: "i1", Title: "milk", Status: 0},
			{ID: "i2", Title: "bread", Status: 1},
		},
	}, &seen)

	task, err := client.GetTask(context.Background(), "p1", "t1")
	require.NoError(t, err)
	assert.Equal(t, "/project/p1/task/t1", seen.URL.Path)
	require.Len(t, task.Items, 2)
	assert.Equal(t, "milk", task.Items[0].Title)
}

func TestCreateTask(t *testing.T) {
	var seen http.Request
	client := newTestClient(t, http.StatusOK, Task{ID: "server-id", ProjectID: "p1", Title: "New"}, &seen)

	created, err := client.CreateTask(context.Background(), &Task{ProjectID: "p1", Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, seen.Method)
	assert.Equal(t, "/task", seen.URL.Path)
	assert.Equal(t, "application/json", seen.Header.Get("Content-Type"))
	assert.Equal(t, "server-id", created.ID)
}

func TestCompleteTask(t *testing.T) {
	var seen http.Request
	client := newTestClient(t, http.StatusOK, nil, &seen)

	err := client.CompleteTask(context.Background(), "p1", "t1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, seen.Method)
	assert.Equal(t, "/project/p1/task/t1/complete", seen.URL.Path)
}

func TestAPIError(t *testing.T) {
	client := newTestClient(t, http.StatusNotFound, map[string]string{"error": "no such task"}, nil)

	_, err := client.GetTask(context.Background(), "p1", "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "getTask", apiErr.Op)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.True(t, IsNotFound(err))
}

func TestIsNotFoundOtherStatus(t *testing.T) {
	client := newTestClient(t, http.StatusInternalServerError, nil, nil)

	_, err := client.ListProjects(context.Background())
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}
