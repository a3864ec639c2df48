package tasks

import (
	"strings"
	"time"
)

// Filter describes a conjunctive task search. Zero-valued fields are
// inactive; an empty Filter matches every task.
type Filter struct {
	// Query is a case-insensitive substring matched against the title.
	Query string
	// Priority restricts results to a single priority level.
	Priority Priority
	// ProjectID restricts the search to one project. When empty, all
	// projects (including the inbox) are searched.
	ProjectID string
	// DateFrom and DateTo bound the due date, inclusive on both ends.
	// A task without a due date never matches an active date bound.
	DateFrom time.Time
	DateTo   time.Time

	hasPriority bool
	hasFrom     bool
	hasTo       bool
}

// NewFilter builds a Filter from the raw string arguments of a search
// request, validating the priority and date bounds.
func NewFilter(query, priority, projectID, dateFrom, dateTo string) (Filter, error) {
	f := Filter{
		Query:     query,
		ProjectID: projectID,
	}
	if priority != "" {
		p, err := ParsePriority(priority)
		if err != nil {
			return Filter{}, err
		}
		f.Priority, f.hasPriority = p, true
	}
	if dateFrom != "" {
		t, err := ParseDateBound("dateFrom", dateFrom)
		if err != nil {
			return Filter{}, err
		}
		f.DateFrom, f.hasFrom = t, true
	}
	if dateTo != "" {
		t, err := ParseDateBound("dateTo", dateTo)
		if err != nil {
			return Filter{}, err
		}
		f.DateTo, f.hasTo = t, true
	}
	return f, nil
}

type predicate func(Task) bool

// predicates returns the active conditions in a fixed order: cheap
// string checks first, date parsing last.
func (f Filter) predicates() []predicate {
	var preds []predicate
	if f.Query != "" {
		needle := strings.ToLower(f.Query)
		preds = append(preds, func(t Task) bool {
			return strings.Contains(strings.ToLower(t.Title), needle)
		})
	}
	if f.hasPriority {
		preds = append(preds, func(t Task) bool {
			return t.Priority == f.Priority
		})
	}
	if f.hasFrom {
		preds = append(preds, func(t Task) bool {
			due, ok := dueTime(t)
			return ok && !due.Before(f.DateFrom)
		})
	}
	if f.hasTo {
		preds = append(preds, func(t Task) bool {
			due, ok := dueTime(t)
			return ok && !due.After(f.DateTo)
		})
	}
	return preds
}

// Matches reports whether the task satisfies every active condition.
// Conditions short-circuit on the first failure.
func (f Filter) Matches(t Task) bool {
	for _, pred := range f.predicates() {
		if !pred(t) {
			return false
		}
	}
	return true
}

// Apply filters tasks, preserving their order. The result is never nil.
func (f Filter) Apply(in []Task) []Task {
	out := make([]Task, 0, len(in))
	preds := f.predicates()
	for _, t := range in {
		ok := true
		for _, pred := range preds {
			if !pred(t) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, t)
		}
	}
	return out
}
