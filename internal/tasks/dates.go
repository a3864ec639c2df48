package tasks

import (
	"time"
)

// Date layouts at the two boundaries. TickTick writes timestamps as
// yyyy-MM-dd'T'HH:mm:ss+0000 with no colon in the offset; agents see
// plain calendar dates for all-day tasks and RFC 3339 otherwise.
const (
	layoutCalendarDate = "2006-01-02"
	layoutUpstream     = "2006-01-02T15:04:05-0700"
)

// inputLayouts are the date-time shapes accepted from the agent, tried
// in order. Naive timestamps (no offset) are taken as UTC.
var inputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// DateToUpstream parses a flexible agent date string and returns the
// upstream timestamp together with the derived all-day flag. A
// calendar-date input means all-day with the time normalized to
// midnight UTC, which is the convention the upstream emits on
// read-back for all-day tasks. Field is only used to name the argument
// in the error.
func DateToUpstream(field, value string) (string, bool, error) {
	if t, err := time.ParseInLocation(layoutCalendarDate, value, time.UTC); err == nil {
		return t.Format(layoutUpstream), true, nil
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.Format(layoutUpstream), false, nil
		}
	}
	return "", false, &InvalidDateError{Field: field, Value: value}
}

// DateFromUpstream converts an upstream timestamp back to the
// agent-facing form: a calendar date when the task is all-day, RFC 3339
// otherwise. An empty timestamp maps to an empty string. A timestamp
// the upstream emitted in a shape we cannot parse is dropped rather
// than failing the read, mirroring the tolerance for unknown priority
// codes.
func DateFromUpstream(value string, isAllDay bool) string {
	if value == "" {
		return ""
	}
	t, err := parseUpstream(value)
	if err != nil {
		return ""
	}
	if isAllDay {
		return t.UTC().Format(layoutCalendarDate)
	}
	return t.Format(time.RFC3339)
}

// parseUpstream parses a timestamp in the upstream's format, accepting
// RFC 3339 as well since some endpoints emit a Z suffix.
func parseUpstream(value string) (time.Time, error) {
	if t, err := time.Parse(layoutUpstream, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// ParseDateBound parses a search filter bound. Calendar dates resolve
// to midnight UTC; date-time values follow the same rules as
// DateToUpstream inputs.
func ParseDateBound(field, value string) (time.Time, error) {
	if t, err := time.ParseInLocation(layoutCalendarDate, value, time.UTC); err == nil {
		return t, nil
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &InvalidDateError{Field: field, Value: value}
}

// dueTime resolves a task's agent-facing due date to an instant for
// range comparisons. The second return is false when the task has no
// due date or it cannot be parsed.
func dueTime(t Task) (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	if parsed, err := time.ParseInLocation(layoutCalendarDate, t.DueDate, time.UTC); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse(time.RFC3339, t.DueDate); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}
