package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterConjunction(t *testing.T) {
	taskA := Task{ID: "a", Title: "Alpha", Priority: PriorityHigh, DueDate: "2025-01-15"}
	taskB := Task{ID: "b", Title: "Beta", Priority: PriorityHigh, DueDate: "2025-02-10"}
	taskC := Task{ID: "c", Title: "Gamma", Priority: PriorityLow, DueDate: "2025-01-20"}
	universe := []Task{taskA, taskB, taskC}

	// Priority alone matches A and B; the date bound alone matches A and
	// C; together only A survives.
	filter, err := NewFilter("", "high", "", "", "2025-01-31")
	require.NoError(t, err)

	got := filter.Apply(universe)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	universe := []Task{
		{ID: "a", Title: "one"},
		{ID: "b", Title: "two", DueDate: "2025-06-01"},
	}
	filter, err := NewFilter("", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, universe, filter.Apply(universe))
}

func TestFilterQueryCaseInsensitive(t *testing.T) {
	universe := []Task{
		{ID: "a", Title: "Buy groceries"},
		{ID: "b", Title: "GROCERY run"},
		{ID: "c", Title: "Laundry"},
	}
	filter, err := NewFilter("grocer", "", "", "", "")
	require.NoError(t, err)
	got := filter.Apply(universe)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestFilterDateBoundsInclusive(t *testing.T) {
	universe := []Task{
		{ID: "before", DueDate: "2025-01-09"},
		{ID: "on-from", DueDate: "2025-01-10"},
		{ID: "inside", DueDate: "2025-01-15T12:00:00Z"},
		{ID: "on-to", DueDate: "2025-01-20"},
		{ID: "after", DueDate: "2025-01-21"},
	}
	filter, err := NewFilter("", "", "", "2025-01-10", "2025-01-20")
	require.NoError(t, err)
	got := filter.Apply(universe)
	ids := make([]string, 0, len(got))
	for _, task := range got {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"on-from", "inside", "on-to"}, ids)
}

func TestFilterNoDueDateFailsDateBounds(t *testing.T) {
	universe := []Task{
		{ID: "undated", Title: "match me"},
		{ID: "dated", Title: "match me", DueDate: "2025-01-15"},
	}

	filter, err := NewFilter("match", "", "", "2025-01-01", "")
	require.NoError(t, err)
	got := filter.Apply(universe)
	require.Len(t, got, 1)
	assert.Equal(t, "dated", got[0].ID)

	// Without date bounds the undated task matches again.
	filter, err = NewFilter("match", "", "", "", "")
	require.NoError(t, err)
	assert.Len(t, filter.Apply(universe), 2)
}

func TestNewFilterValidation(t *testing.T) {
	_, err := NewFilter("", "urgent", "", "", "")
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)

	_, err = NewFilter("", "", "", "sometime", "")
	var badDate *InvalidDateError
	require.ErrorAs(t, err, &badDate)
}

func TestFilterPreservesOrder(t *testing.T) {
	universe := []Task{
		{ID: "1", Priority: PriorityHigh},
		{ID: "2", Priority: PriorityLow},
		{ID: "3", Priority: PriorityHigh},
	}
	filter, err := NewFilter("", "high", "", "", "")
	require.NoError(t, err)
	got := filter.Apply(universe)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}
