package ticktick

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/mjkoo/yattmcp/internal/logging"
)

// DefaultBaseURL is the production endpoint of the TickTick Open API.
const DefaultBaseURL = "https://api.ticktick.com/open/v1"

// maxErrorBody caps how much of an error response body is kept on an
// APIError, so a misbehaving upstream cannot bloat logs.
const maxErrorBody = 512

// Client wraps the TickTick Open API. It does not normalize responses;
// all methods return raw API records.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests and self-hosted
// deployments.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient replaces the underlying HTTP client. The replacement
// must carry its own authentication.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithLogger replaces the client's request logger.
func WithLogger(logger logging.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client that authenticates with the given personal
// API token. Timeouts and cancellation are the caller's responsibility
// through the request context.
func NewClient(token string, opts ...Option) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	c := &Client{
		baseURL: DefaultBaseURL,
		httpc:   oauth2.NewClient(context.Background(), src),
		logger:  logging.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues a request and decodes the JSON response into out (if out is
// non-nil). Non-2xx responses become an *APIError carrying op.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", op, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("ticktick %s: %w", op, err)
	}
	defer resp.Body.Close()

	if c.logger != nil {
		status := logging.StatusSuccess
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			status = logging.StatusError
		}
		c.logger.Debug("ticktick request",
			logging.Operation(op), "method", method,
			"status_code", resp.StatusCode, logging.Status(status))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	return nil
}

// ListProjects lists all projects for the authenticated user.
// GET /project
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, "listProjects", http.MethodGet, "/project", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProjectData retrieves a project together with its active tasks.
// GET /project/{id}/data
func (c *Client) GetProjectData(ctx context.Context, projectID string) (*ProjectData, error) {
	var data ProjectData
	if err := c.do(ctx, "getProjectData", http.MethodGet, "/project/"+projectID+"/data", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CreateProject creates a new project.
// POST /project
func (c *Client) CreateProject(ctx context.Context, input ProjectInput) (*Project, error) {
	var created Project
	if err := c.do(ctx, "createProject", http.MethodPost, "/project", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteProject permanently deletes a project and all of its tasks.
// DELETE /project/{id}
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.do(ctx, "deleteProject", http.MethodDelete, "/project/"+projectID, nil, nil)
}

// GetTask retrieves a single task. The API scopes tasks under projects,
// so both identifiers are required.
// GET /project/{pid}/task/{tid}
func (c *Client) GetTask(ctx context.Context, projectID, taskID string) (*Task, error) {
	var task Task
	path := "/project/" + projectID + "/task/" + taskID
	if err := c.do(ctx, "getTask", http.MethodGet, path, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a new task from a raw record.
// POST /task
func (c *Client) CreateTask(ctx context.Context, task *Task) (*Task, error) {
	var created Task
	if err := c.do(ctx, "createTask", http.MethodPost, "/task", task, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTask replaces an existing task with the given record. The API
// has no partial update; the record must carry every field that should
// survive the write.
// POST /task/{id}
func (c *Client) UpdateTask(ctx context.Context, taskID string, task *Task) (*Task, error) {
	var updated Task
	if err := c.do(ctx, "updateTask", http.MethodPost, "/task/"+taskID, task, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CompleteTask marks a task as completed. The Open API has no inverse
// operation; completion is one-way.
// POST /project/{pid}/task/{tid}/complete
func (c *Client) CompleteTask(ctx context.Context, projectID, taskID string) error {
	path := "/project/" + projectID + "/task/" + taskID + "/complete"
	return c.do(ctx, "completeTask", http.MethodPost, path, nil, nil)
}

// DeleteTask deletes a task.
// DELETE /project/{pid}/task/{tid}
func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) error {
	path := "/project/" + projectID + "/task/" + taskID
	return c.do(ctx, "deleteTask", http.MethodDelete, path, nil, nil)
}
