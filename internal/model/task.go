package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Priority is a task priority label. Values outside the known set are kept as-is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is used when a task is created or decoded without one.
const DefaultPriority = PriorityLow

// Rank orders priorities for sorting: high=0, medium=1, low=2, anything else=3.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Task is one entry in tasks.json.
type Task struct {
	Description string
	Priority    Priority
	DueDate     string // empty means no due date
	Completed   bool
}

// NewTask builds an open Task, defaulting an empty priority to low.
func NewTask(description string, priority Priority, dueDate string) Task {
	if priority == "" {
		priority = DefaultPriority
	}
	return Task{Description: description, Priority: priority, DueDate: dueDate}
}

// String renders the task the way list views show it.
func (t Task) String() string {
	status := "Not Done"
	if t.Completed {
		status = "Done"
	}
	due := t.DueDate
	if due == "" {
		due = "No due date"
	}
	return fmt.Sprintf("[%s] %s (Priority: %s, Due: %s)", status, t.Description, t.Priority, due)
}

type taskJSON struct {
	Description *string   `json:"description"`
	Priority    *Priority `json:"priority"`
	DueDate     *string   `json:"due_date"`
	Completed   *bool     `json:"completed"`
}

// MarshalJSON writes all four keys; an empty due date is written as null.
func (t Task) MarshalJSON() ([]byte, error) {
	raw := taskJSON{
		Description: &t.Description,
		Priority:    &t.Priority,
		Completed:   &t.Completed,
	}
	if t.DueDate != "" {
		raw.DueDate = &t.DueDate
	}
	return json.Marshal(raw)
}

// UnmarshalJSON reads a task object. Only description is required; the other
// keys fall back to their defaults when missing or null.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw taskJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Description == nil {
		return errors.New("missing key \"description\"")
	}

	task := Task{Description: *raw.Description, Priority: DefaultPriority}
	if raw.Priority != nil && *raw.Priority != "" {
		task.Priority = *raw.Priority
	}
	if raw.DueDate != nil {
		task.DueDate = *raw.DueDate
	}
	if raw.Completed != nil {
		task.Completed = *raw.Completed
	}
	*t = task
	return nil
}
