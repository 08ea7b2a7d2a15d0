package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/output"
	"github.com/tally-dev/tally/internal/todo"
)

// todoCtx opens the task manager for a command run.
type todoCtx struct {
	opts *options
	file string
}

func (c *todoCtx) open() (*env, *todo.Manager, error) {
	e, err := loadEnv(c.opts)
	if err != nil {
		return nil, nil, err
	}
	m, err := todo.Open(e.dataPath(c.file, e.cfg.TasksPath(e.home)))
	if err != nil {
		return nil, nil, err
	}
	return e, m, nil
}

func newTodoCommand(opts *options) *cobra.Command {
	c := &todoCtx{opts: opts}

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage a to-do list",
	}
	cmd.PersistentFlags().StringVar(&c.file, "file", "", "tasks file (default from config)")

	cmd.AddCommand(
		newTodoListCommand(c),
		newTodoAddCommand(c),
		newTodoRemoveCommand(c),
		newTodoDoneCommand(c),
		newTodoExportCommand(c),
		newTodoImportCommand(c),
	)
	return cmd
}

func newTodoListCommand(c *todoCtx) *cobra.Command {
	var open, done, sortByPriority bool
	var priority string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if open && done {
				return errors.New("cannot use both --open and --done")
			}

			_, m, err := c.open()
			if err != nil {
				return err
			}

			q := todo.Query{Priority: model.Priority(priority), SortByPriority: sortByPriority}
			switch {
			case open:
				q.Status = todo.StatusOpen
			case done:
				q.Status = todo.StatusDone
			}
			output.FormatTasks(cmd.OutOrStdout(), m.Query(q))
			return nil
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "only tasks not yet completed")
	cmd.Flags().BoolVar(&done, "done", false, "only completed tasks")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "only tasks with this priority")
	cmd.Flags().BoolVarP(&sortByPriority, "sort", "s", false, "sort by priority, then due date")

	return cmd
}

func newTodoAddCommand(c *todoCtx) *cobra.Command {
	var priority, due string

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, m, err := c.open()
			if err != nil {
				return err
			}
			if err := m.Add(args[0], model.Priority(priority), due); err != nil {
				return err
			}
			e.commit(fmt.Sprintf("todo: add %s", args[0]), m.Path())

			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s\n", id.FormatRef(m.Len()-1))
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", string(model.DefaultPriority), "high, medium or low")
	cmd.Flags().StringVarP(&due, "due", "d", "", "due date, e.g. 2025-01-31")

	return cmd
}

func newTodoRemoveCommand(c *todoCtx) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskOp(cmd, c, args[0], "remove", func(m *todo.Manager, index int) error {
				return m.Remove(index)
			})
		},
	}
}

func newTodoDoneCommand(c *todoCtx) *cobra.Command {
	return &cobra.Command{
		Use:     "done <n>",
		Aliases: []string{"complete"},
		Short:   "Mark a task completed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskOp(cmd, c, args[0], "complete", func(m *todo.Manager, index int) error {
				return m.Complete(index)
			})
		},
	}
}

// runTaskOp resolves a 1-based task number and applies op to it.
func runTaskOp(cmd *cobra.Command, c *todoCtx, ref, verb string, op func(*todo.Manager, int) error) error {
	index, err := id.ParseRef(ref)
	if err != nil {
		return err
	}

	e, m, err := c.open()
	if err != nil {
		return err
	}

	task, err := m.Get(index)
	if errors.Is(err, todo.ErrInvalidIndex) {
		return fmt.Errorf("invalid task number: %s (have %d tasks)", ref, m.Len())
	}
	if err != nil {
		return err
	}
	if err := op(m, index); err != nil {
		return err
	}
	e.commit(fmt.Sprintf("todo: %s %s", verb, task.Description), m.Path())

	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

func newTodoExportCommand(c *todoCtx) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Write tasks to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := c.open()
			if err != nil {
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating %s: %w", args[0], err)
			}
			defer f.Close()

			if err := todo.WriteTasks(f, m.All()); err != nil {
				return fmt.Errorf("exporting tasks: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to %s\n", m.Len(), args[0])
			return nil
		},
	}
}

func newTodoImportCommand(c *todoCtx) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Append tasks from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			tasks, err := todo.ReadTasks(f)
			if err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}

			e, m, err := c.open()
			if err != nil {
				return err
			}
			if err := m.Import(tasks); err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}
			e.commit(fmt.Sprintf("todo: import %d tasks", len(tasks)), m.Path())

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks\n", len(tasks))
			return nil
		},
	}
}
