package todo

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tally-dev/tally/internal/model"
)

// Header is the CSV header used by export.
const Header = "description,priority,due_date,completed"

const (
	numFields      = 4
	colDescription = 0
	colPriority    = 1
	colDueDate     = 2
	colCompleted   = 3
)

// WriteTasks writes tasks as CSV including the header.
func WriteTasks(w io.Writer, tasks []model.Task) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, task := range tasks {
		if err := cw.Write(MarshalTask(task)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadTasks reads tasks from CSV, skipping the header row.
func ReadTasks(r io.Reader) ([]model.Task, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading tasks CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var tasks []model.Task
	for i, rec := range records[1:] {
		task, err := UnmarshalTask(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// MarshalTask converts a Task to a CSV row.
func MarshalTask(task model.Task) []string {
	row := make([]string, numFields)
	row[colDescription] = task.Description
	row[colPriority] = string(task.Priority)
	row[colDueDate] = task.DueDate
	row[colCompleted] = strconv.FormatBool(task.Completed)
	return row
}

// UnmarshalTask converts a CSV row to a Task.
func UnmarshalTask(record []string) (model.Task, error) {
	if len(record) != numFields {
		return model.Task{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if strings.TrimSpace(record[colDescription]) == "" {
		return model.Task{}, ErrMissingInput
	}

	var completed bool
	if record[colCompleted] != "" {
		var err error
		completed, err = strconv.ParseBool(record[colCompleted])
		if err != nil {
			return model.Task{}, fmt.Errorf("parsing completed %q: %w", record[colCompleted], err)
		}
	}

	task := model.NewTask(record[colDescription], model.Priority(record[colPriority]), record[colDueDate])
	task.Completed = completed
	return task, nil
}
