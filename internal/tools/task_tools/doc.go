// Package task_tools registers the MCP tools for TickTick task
// management: retrieval, creation, partial update, search, completion,
// and deletion.
//
// Date arguments accept two shapes everywhere: a plain calendar date
// ("2025-03-15") which marks the task all-day, or an ISO 8601 date-time
// ("2025-03-15T14:30:00Z") for a timed task. Priorities are the
// semantic names "none", "low", "medium", "high".
package task_tools
