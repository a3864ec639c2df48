package ticktick

// Status codes used by the TickTick API for tasks and checklist items.
// Anything non-zero means completed.
const (
	StatusActive    = 0
	StatusCompleted = 2
)

// Project is a raw TickTick project record as returned by the API.
type Project struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	ViewMode string `json:"viewMode,omitempty"`
	Closed   bool   `json:"closed,omitempty"`
}

// ChecklistItem is a raw subtask record. Item ids are assigned by the
// server and regenerated whenever the parent task is replaced.
type ChecklistItem struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
}

// Task is a raw TickTick task record as returned by the API. Priority
// uses the upstream integer scale (0/1/3/5) and dates use TickTick's
// timestamp format (yyyy-MM-dd'T'HH:mm:ss+0000, no colon in the offset).
type Task struct {
	ID        string          `json:"id,omitempty"`
	ProjectID string          `json:"projectId"`
	Title     string          `json:"title"`
	Content   string          `json:"content,omitempty"`
	Priority  int             `json:"priority"`
	Status    int             `json:"status,omitempty"`
	StartDate string          `json:"startDate,omitempty"`
	DueDate   string          `json:"dueDate,omitempty"`
	IsAllDay  bool            `json:"isAllDay,omitempty"`
	Items     []ChecklistItem `json:"items,omitempty"`
}

// ProjectData is the response of GET /project/{id}/data: the project
// together with its active (uncompleted) tasks. Completed tasks are not
// available from this endpoint.
type ProjectData struct {
	Project Project `json:"project"`
	Tasks   []Task  `json:"tasks"`
}

// ProjectInput carries the fields accepted when creating a project.
type ProjectInput struct {
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	ViewMode string `json:"viewMode,omitempty"`
}
