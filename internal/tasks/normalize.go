package tasks

import (
	"github.com/mjkoo/yattmcp/internal/ticktick"
)

// ToAgentTask normalizes a raw TickTick task record to the agent-facing
// model. Optional fields tolerate absence; the identity fields do not,
// since a task without them cannot be addressed by any later call.
func ToAgentTask(raw *ticktick.Task) (Task, error) {
	if raw.ID == "" {
		return Task{}, &MalformedRecordError{Missing: "id"}
	}
	if raw.ProjectID == "" {
		return Task{}, &MalformedRecordError{Missing: "projectId"}
	}

	task := Task{
		ID:          raw.ID,
		ProjectID:   raw.ProjectID,
		Title:       raw.Title,
		Content:     raw.Content,
		Priority:    PriorityFromUpstream(raw.Priority),
		IsAllDay:    raw.IsAllDay,
		IsCompleted: raw.Status != ticktick.StatusActive,
		StartDate:   DateFromUpstream(raw.StartDate, raw.IsAllDay),
		DueDate:     DateFromUpstream(raw.DueDate, raw.IsAllDay),
		Subtasks:    make([]SubTask, 0, len(raw.Items)),
	}

	for _, item := range raw.Items {
		task.Subtasks = append(task.Subtasks, SubTask{
			Title:       item.Title,
			IsCompleted: item.Status != ticktick.StatusActive,
		})
	}

	return task, nil
}

// ToUpstreamTask denormalizes an agent-facing task to a raw record
// ready for the upstream's full-replacement write. When existing is
// non-nil the record is built on top of it, preserving server-side
// fields this layer does not model (notably the completion status);
// this is the merge-update path. With a nil existing the record is
// built from scratch for creation.
//
// IsAllDay is derived from the shape of the date inputs (due date
// first, then start date) and never taken from the Task directly.
func ToUpstreamTask(t Task, existing *ticktick.Task) (*ticktick.Task, error) {
	if t.ProjectID == "" {
		return nil, &InvalidInputError{Reason: "projectId is required"}
	}
	if t.Title == "" {
		return nil, &InvalidInputError{Reason: "title is required"}
	}

	code, err := PriorityToUpstream(t.Priority)
	if err != nil {
		return nil, err
	}

	var raw ticktick.Task
	if existing != nil {
		raw = *existing
	}
	raw.ID = t.ID
	raw.ProjectID = t.ProjectID
	raw.Title = t.Title
	raw.Content = t.Content
	raw.Priority = code

	allDay := false
	allDaySet := false
	raw.DueDate = ""
	if t.DueDate != "" {
		upstream, dateAllDay, err := DateToUpstream("dueDate", t.DueDate)
		if err != nil {
			return nil, err
		}
		raw.DueDate = upstream
		allDay, allDaySet = dateAllDay, true
	}
	raw.StartDate = ""
	if t.StartDate != "" {
		upstream, dateAllDay, err := DateToUpstream("startDate", t.StartDate)
		if err != nil {
			return nil, err
		}
		raw.StartDate = upstream
		if !allDaySet {
			allDay = dateAllDay
		}
	}
	raw.IsAllDay = allDay

	// Item ids are server-assigned and regenerated on write, so the
	// replacement list carries titles and statuses only.
	raw.Items = nil
	if len(t.Subtasks) > 0 {
		raw.Items = make([]ticktick.ChecklistItem, 0, len(t.Subtasks))
		for _, st := range t.Subtasks {
			status := ticktick.StatusActive
			if st.IsCompleted {
				status = ticktick.StatusCompleted
			}
			raw.Items = append(raw.Items, ticktick.ChecklistItem{
				Title:  st.Title,
				Status: status,
			})
		}
	}

	return &raw, nil
}

// ToAgentProject normalizes a raw project record.
func ToAgentProject(raw ticktick.Project) Project {
	return Project{
		ID:       raw.ID,
		Name:     raw.Name,
		Color:    raw.Color,
		ViewMode: raw.ViewMode,
		IsClosed: raw.Closed,
	}
}
