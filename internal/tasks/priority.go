package tasks

import (
	"fmt"
	"log/slog"
	"strings"
)

// The upstream priority scale. TickTick skips 2 and 4.
var priorityToUpstream = map[Priority]int{
	PriorityNone:   0,
	PriorityLow:    1,
	PriorityMedium: 3,
	PriorityHigh:   5,
}

var priorityFromUpstream = func() map[int]Priority {
	m := make(map[int]Priority, len(priorityToUpstream))
	for p, code := range priorityToUpstream {
		m[code] = p
	}
	return m
}()

// ParsePriority validates and canonicalizes a priority string from the
// agent. An empty string is not accepted; callers decide what absence
// means before calling.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := priorityToUpstream[p]; !ok {
		return "", &InvalidInputError{
			Reason: fmt.Sprintf("priority %q must be one of: none, low, medium, high", s),
		}
	}
	return p, nil
}

// PriorityToUpstream converts a semantic priority to the upstream
// integer code.
func PriorityToUpstream(p Priority) (int, error) {
	code, ok := priorityToUpstream[p]
	if !ok {
		return 0, &InvalidInputError{
			Reason: fmt.Sprintf("priority %q must be one of: none, low, medium, high", p),
		}
	}
	return code, nil
}

// PriorityFromUpstream converts an upstream integer code to the
// semantic priority. Unknown codes downgrade to PriorityNone with a
// warning instead of failing the read; an otherwise-valid task must
// stay retrievable even when the upstream grows a new priority level.
func PriorityFromUpstream(code int) Priority {
	if p, ok := priorityFromUpstream[code]; ok {
		return p
	}
	slog.Warn("unknown upstream priority code, defaulting to none", "code", code)
	return PriorityNone
}
