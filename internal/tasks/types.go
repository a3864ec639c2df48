package tasks

// Priority is the agent-facing priority scale. The upstream integer
// scale never crosses this boundary.
type Priority string

// The four semantic priority levels.
const (
	PriorityNone   Priority = "none"
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// SubTask is an agent-facing checklist item. Upstream item ids and
// status codes are hidden; the server regenerates item ids on every
// write.
type SubTask struct {
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// Task is the agent-facing task model.
//
// StartDate and DueDate are calendar dates ("2025-03-15") for all-day
// tasks and RFC 3339 timestamps otherwise. IsAllDay is derived from the
// date format on write and is never accepted as direct input.
// IsCompleted is read-only outward; the only transition this layer
// offers is false to true via Service.Complete.
type Task struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Title       string    `json:"title"`
	Content     string    `json:"content,omitempty"`
	Priority    Priority  `json:"priority"`
	StartDate   string    `json:"startDate,omitempty"`
	DueDate     string    `json:"dueDate,omitempty"`
	IsAllDay    bool      `json:"isAllDay"`
	IsCompleted bool      `json:"isCompleted"`
	Subtasks    []SubTask `json:"subtasks"`
}

// Project is the agent-facing project model.
type Project struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	ViewMode string `json:"viewMode,omitempty"`
	IsClosed bool   `json:"isClosed"`
}
