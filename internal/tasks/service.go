package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mjkoo/yattmcp/internal/logging"
	"github.com/mjkoo/yattmcp/internal/ticktick"
)

// Upstream is the slice of the TickTick client the service depends on.
// Defined here so tests can substitute a fake.
type Upstream interface {
	ListProjects(ctx context.Context) ([]ticktick.Project, error)
	GetProjectData(ctx context.Context, projectID string) (*ticktick.ProjectData, error)
	CreateProject(ctx context.Context, input ticktick.ProjectInput) (*ticktick.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	GetTask(ctx context.Context, projectID, taskID string) (*ticktick.Task, error)
	CreateTask(ctx context.Context, task *ticktick.Task) (*ticktick.Task, error)
	UpdateTask(ctx context.Context, taskID string, task *ticktick.Task) (*ticktick.Task, error)
	CompleteTask(ctx context.Context, projectID, taskID string) error
	DeleteTask(ctx context.Context, projectID, taskID string) error
}

// Service implements the task operations on top of the raw client.
// Everything that crosses it is normalized: callers only ever see the
// agent-facing models.
type Service struct {
	upstream Upstream
	inboxID  string
	logger   *slog.Logger
}

// NewService creates a Service. inboxID is the user's inbox project id;
// it may be empty, in which case task creation requires an explicit
// project and the inbox does not appear in listings.
func NewService(upstream Upstream, inboxID string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{upstream: upstream, inboxID: inboxID, logger: logger}
}

// InboxID returns the configured inbox project id, or "".
func (s *Service) InboxID() string {
	return s.inboxID
}

// resolveProject substitutes the inbox for an empty project id.
func (s *Service) resolveProject(projectID string) (string, error) {
	if projectID != "" {
		return projectID, nil
	}
	if s.inboxID == "" {
		return "", &InvalidInputError{Reason: "projectId is required (no inbox project configured)"}
	}
	return s.inboxID, nil
}

// ListProjects returns all projects, with the inbox injected first when
// configured. The inbox is a real project upstream but GET /project
// does not include it.
func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	raw, err := s.upstream.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	projects := make([]Project, 0, len(raw)+1)
	if s.inboxID != "" {
		projects = append(projects, Project{ID: s.inboxID, Name: "Inbox"})
	}
	for _, p := range raw {
		projects = append(projects, ToAgentProject(p))
	}
	return projects, nil
}

// CreateProject creates a project and returns the normalized record.
func (s *Service) CreateProject(ctx context.Context, name, color, viewMode string) (Project, error) {
	if name == "" {
		return Project{}, &InvalidInputError{Reason: "name is required"}
	}
	created, err := s.upstream.CreateProject(ctx, ticktick.ProjectInput{
		Name:     name,
		Color:    color,
		ViewMode: viewMode,
	})
	if err != nil {
		return Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return ToAgentProject(*created), nil
}

// DeleteProject permanently deletes a project and everything in it.
func (s *Service) DeleteProject(ctx context.Context, projectID string) error {
	if projectID == "" {
		return &InvalidInputError{Reason: "projectId is required"}
	}
	if err := s.upstream.DeleteProject(ctx, projectID); err != nil {
		if ticktick.IsNotFound(err) {
			return &NotFoundError{Kind: "project", ID: projectID}
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// ProjectTasks lists the active tasks of one project. An empty
// projectID means the inbox. Completed tasks are not available; the
// upstream's project-data endpoint only returns active tasks.
func (s *Service) ProjectTasks(ctx context.Context, projectID string) ([]Task, error) {
	pid, err := s.resolveProject(projectID)
	if err != nil {
		return nil, err
	}
	data, err := s.upstream.GetProjectData(ctx, pid)
	if err != nil {
		if ticktick.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "project", ID: pid}
		}
		return nil, fmt.Errorf("failed to fetch project %s: %w", pid, err)
	}
	return s.normalizeAll(data.Tasks), nil
}

// normalizeAll converts raw records, dropping any too malformed to
// address. A dropped record is logged rather than failing the whole
// listing.
func (s *Service) normalizeAll(raw []ticktick.Task) []Task {
	tasks := make([]Task, 0, len(raw))
	for i := range raw {
		t, err := ToAgentTask(&raw[i])
		if err != nil {
			s.logger.Warn("skipping malformed task record",
				logging.Project(raw[i].ProjectID), logging.Err(err))
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}

// Get retrieves and normalizes one task.
func (s *Service) Get(ctx context.Context, projectID, taskID string) (Task, error) {
	pid, err := s.resolveProject(projectID)
	if err != nil {
		return Task{}, err
	}
	if taskID == "" {
		return Task{}, &InvalidInputError{Reason: "taskId is required"}
	}
	raw, err := s.upstream.GetTask(ctx, pid, taskID)
	if err != nil {
		if ticktick.IsNotFound(err) {
			return Task{}, &NotFoundError{Kind: "task", ID: taskID}
		}
		return Task{}, fmt.Errorf("failed to fetch task %s: %w", taskID, err)
	}
	return ToAgentTask(raw)
}

// Create creates a task. An empty ProjectID falls back to the inbox.
// The returned task is the server's view of the new record.
func (s *Service) Create(ctx context.Context, t Task) (Task, error) {
	pid, err := s.resolveProject(t.ProjectID)
	if err != nil {
		return Task{}, err
	}
	t.ProjectID = pid
	t.ID = ""

	raw, err := ToUpstreamTask(t, nil)
	if err != nil {
		return Task{}, err
	}
	created, err := s.upstream.CreateTask(ctx, raw)
	if err != nil {
		return Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return ToAgentTask(created)
}

// Update applies a partial update with fetch-merge-replace: the current
// record is fetched, the patch overlaid on its normalized form, and the
// merged result written back as a full replacement. Two round trips,
// last writer wins; there is no optimistic concurrency because the
// upstream offers no version token.
func (s *Service) Update(ctx context.Context, projectID, taskID string, patch TaskPatch) (Task, error) {
	pid, err := s.resolveProject(projectID)
	if err != nil {
		return Task{}, err
	}
	if taskID == "" {
		return Task{}, &InvalidInputError{Reason: "taskId is required"}
	}
	if patch.IsEmpty() {
		return Task{}, &InvalidInputError{Reason: "update contains no fields to change"}
	}

	existing, err := s.upstream.GetTask(ctx, pid, taskID)
	if err != nil {
		if ticktick.IsNotFound(err) {
			return Task{}, &NotFoundError{Kind: "task", ID: taskID}
		}
		return Task{}, fmt.Errorf("failed to fetch task %s for update: %w", taskID, err)
	}
	current, err := ToAgentTask(existing)
	if err != nil {
		return Task{}, err
	}

	merged := patch.apply(current)
	raw, err := ToUpstreamTask(merged, existing)
	if err != nil {
		return Task{}, err
	}
	updated, err := s.upstream.UpdateTask(ctx, taskID, raw)
	if err != nil {
		return Task{}, fmt.Errorf("failed to update task %s: %w", taskID, err)
	}
	return ToAgentTask(updated)
}

// Complete marks a task completed. The transition is one-way; the
// upstream has no uncomplete operation and completed tasks disappear
// from project listings.
func (s *Service) Complete(ctx context.Context, projectID, taskID string) error {
	pid, err := s.resolveProject(projectID)
	if err != nil {
		return err
	}
	if taskID == "" {
		return &InvalidInputError{Reason: "taskId is required"}
	}
	if err := s.upstream.CompleteTask(ctx, pid, taskID); err != nil {
		if ticktick.IsNotFound(err) {
			return &NotFoundError{Kind: "task", ID: taskID}
		}
		return fmt.Errorf("failed to complete task %s: %w", taskID, err)
	}
	s.logger.Debug("task completed", logging.Project(pid), logging.Task(taskID))
	return nil
}

// Delete permanently deletes a task.
func (s *Service) Delete(ctx context.Context, projectID, taskID string) error {
	pid, err := s.resolveProject(projectID)
	if err != nil {
		return err
	}
	if taskID == "" {
		return &InvalidInputError{Reason: "taskId is required"}
	}
	if err := s.upstream.DeleteTask(ctx, pid, taskID); err != nil {
		if ticktick.IsNotFound(err) {
			return &NotFoundError{Kind: "task", ID: taskID}
		}
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	s.logger.Debug("task deleted", logging.Project(pid), logging.Task(taskID))
	return nil
}

// Search filters active tasks across one project or all of them. With
// no ProjectID the search fans out over every listed project plus the
// inbox; a project that fails to load is skipped with a warning so one
// bad project cannot sink the whole search. Only active tasks are
// searchable.
func (s *Service) Search(ctx context.Context, filter Filter) ([]Task, error) {
	if filter.ProjectID != "" {
		tasks, err := s.ProjectTasks(ctx, filter.ProjectID)
		if err != nil {
			return nil, err
		}
		return filter.Apply(tasks), nil
	}

	projects, err := s.upstream.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects for search: %w", err)
	}
	ids := make([]string, 0, len(projects)+1)
	if s.inboxID != "" {
		ids = append(ids, s.inboxID)
	}
	for _, p := range projects {
		ids = append(ids, p.ID)
	}

	matched := make([]Task, 0)
	for _, pid := range ids {
		data, err := s.upstream.GetProjectData(ctx, pid)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn("skipping project during search",
				logging.Project(pid), logging.Err(err))
			continue
		}
		matched = append(matched, filter.Apply(s.normalizeAll(data.Tasks))...)
	}
	return matched, nil
}
