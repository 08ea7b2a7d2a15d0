// Package todo keeps an ordered task list mirrored to a JSON file. Tasks are
// addressed by their position in the list.
package todo

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/store"
)

// DefaultFile is the backing file name used when none is configured.
const DefaultFile = "tasks.json"

var (
	// ErrMissingInput means no description was supplied.
	ErrMissingInput = errors.New("task description is required")
	// ErrInvalidIndex means a position outside 0..len-1 was used.
	ErrInvalidIndex = errors.New("invalid task index")
)

// Manager owns the in-memory tasks and their backing file.
// It is not safe for concurrent use.
type Manager struct {
	path  string
	tasks []model.Task
}

// Open creates a Manager backed by path, loading existing tasks if the file
// is present.
func Open(path string) (*Manager, error) {
	tasks, err := store.Load[model.Task](path)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	log.Debug().Str("path", path).Int("count", len(tasks)).Msg("loaded tasks")
	return &Manager{path: path, tasks: tasks}, nil
}

// Path returns the backing file path.
func (m *Manager) Path() string {
	return m.path
}

// Add appends an open task. An empty priority becomes low.
func (m *Manager) Add(description string, priority model.Priority, dueDate string) error {
	if strings.TrimSpace(description) == "" {
		return ErrMissingInput
	}
	m.tasks = append(m.tasks, model.NewTask(description, priority, dueDate))
	return m.persist()
}

// Import appends tasks with a single persist. Either all of them are
// appended or, if one lacks a description, none are.
func (m *Manager) Import(tasks []model.Task) error {
	for i, task := range tasks {
		if strings.TrimSpace(task.Description) == "" {
			return fmt.Errorf("task %d: %w", i+1, ErrMissingInput)
		}
	}
	m.tasks = append(m.tasks, tasks...)
	return m.persist()
}

// Remove deletes the task at index; later tasks shift down by one.
func (m *Manager) Remove(index int) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	m.tasks = slices.Delete(m.tasks, index, index+1)
	return m.persist()
}

// Complete marks the task at index as completed.
func (m *Manager) Complete(index int) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	m.tasks[index].Completed = true
	return m.persist()
}

// Get returns the task at index.
func (m *Manager) Get(index int) (model.Task, error) {
	if err := m.checkIndex(index); err != nil {
		return model.Task{}, err
	}
	return m.tasks[index], nil
}

// All returns a copy of the tasks in insertion order.
func (m *Manager) All() []model.Task {
	return slices.Clone(m.tasks)
}

// Len returns the number of tasks.
func (m *Manager) Len() int {
	return len(m.tasks)
}

func (m *Manager) checkIndex(index int) error {
	if index < 0 || index >= len(m.tasks) {
		log.Warn().Int("index", index).Int("len", len(m.tasks)).Msg("invalid task index")
		return fmt.Errorf("%w: %d (have %d tasks)", ErrInvalidIndex, index, len(m.tasks))
	}
	return nil
}

func (m *Manager) persist() error {
	if err := store.Save(m.path, m.tasks); err != nil {
		log.Warn().Err(err).Str("path", m.path).Msg("persisting tasks failed")
		return fmt.Errorf("saving tasks: %w", err)
	}
	log.Debug().Str("path", m.path).Int("count", len(m.tasks)).Msg("persisted tasks")
	return nil
}
