package tasks

// TaskPatch carries the fields of a partial update. Nil pointers mean
// "leave unchanged"; for the date fields an explicit empty string
// clears the value. Completion status cannot be patched; the only
// transition is Service.Complete.
type TaskPatch struct {
	Title     *string
	Content   *string
	Priority  *Priority
	StartDate *string
	DueDate   *string
	Subtasks  []SubTask

	// HasSubtasks distinguishes "replace the checklist with this list"
	// (possibly empty) from "leave the checklist alone".
	HasSubtasks bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil &&
		p.Content == nil &&
		p.Priority == nil &&
		p.StartDate == nil &&
		p.DueDate == nil &&
		!p.HasSubtasks
}

// apply overlays the patch on a current agent-facing task and returns
// the merged result. The merge happens in the agent model, before
// denormalization, so untouched fields survive the upstream's
// full-replacement write untouched.
func (p TaskPatch) apply(current Task) Task {
	merged := current
	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.Content != nil {
		merged.Content = *p.Content
	}
	if p.Priority != nil {
		merged.Priority = *p.Priority
	}
	if p.StartDate != nil {
		merged.StartDate = *p.StartDate
	}
	if p.DueDate != nil {
		merged.DueDate = *p.DueDate
	}
	if p.HasSubtasks {
		merged.Subtasks = p.Subtasks
	}
	return merged
}
