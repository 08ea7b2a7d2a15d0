package todo

import (
	"cmp"
	"slices"

	"github.com/tally-dev/tally/internal/model"
)

// Status selects tasks by completion.
type Status int

const (
	StatusAny Status = iota
	StatusOpen
	StatusDone
)

// Query filters and orders a view of the task list.
type Query struct {
	Status   Status
	Priority model.Priority // empty matches any
	// SortByPriority orders by priority rank, then due date (tasks without
	// one last), then list position.
	SortByPriority bool
}

// Entry is a task together with its position in the full list, so callers
// can pass Index to Remove or Complete.
type Entry struct {
	Index int
	Task  model.Task
}

// Query returns the tasks matching q.
func (m *Manager) Query(q Query) []Entry {
	var out []Entry
	for i, task := range m.tasks {
		if !q.matches(task) {
			continue
		}
		out = append(out, Entry{Index: i, Task: task})
	}
	if q.SortByPriority {
		slices.SortStableFunc(out, compareEntries)
	}
	return out
}

func (q Query) matches(task model.Task) bool {
	switch q.Status {
	case StatusOpen:
		if task.Completed {
			return false
		}
	case StatusDone:
		if !task.Completed {
			return false
		}
	}
	return q.Priority == "" || task.Priority == q.Priority
}

func compareEntries(a, b Entry) int {
	if c := cmp.Compare(a.Task.Priority.Rank(), b.Task.Priority.Rank()); c != 0 {
		return c
	}
	switch {
	case a.Task.DueDate == "" && b.Task.DueDate != "":
		return 1
	case a.Task.DueDate != "" && b.Task.DueDate == "":
		return -1
	}
	if c := cmp.Compare(a.Task.DueDate, b.Task.DueDate); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}
