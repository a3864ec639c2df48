package tasks

import "fmt"

// InvalidInputError reports a write rejected before any upstream call,
// typically a missing required field.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid task input: " + e.Reason
}

// InvalidDateError reports a date string that matches neither the
// calendar-date nor the date-time shape. Field names the offending
// argument so the agent can correct it.
type InvalidDateError struct {
	Field string
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date format for %s: %q (expected YYYY-MM-DD or ISO 8601 date-time)", e.Field, e.Value)
}

// MalformedRecordError reports an upstream record missing a required
// identity field. This indicates an upstream or programming problem,
// not something the caller can fix.
type MalformedRecordError struct {
	Missing string
}

func (e *MalformedRecordError) Error() string {
	return "malformed upstream record: missing " + e.Missing
}

// NotFoundError reports that the upstream has no record for the given
// identifier. Kind is "task" or "project".
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
