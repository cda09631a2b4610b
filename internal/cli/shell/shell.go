// Package shell implements the numbered-menu interactive mode
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/taskr/internal/cli"
	"github.com/thenoetrevino/taskr/internal/models"
	taskservice "github.com/thenoetrevino/taskr/internal/services/task"
)

const rule = "========================================"

// Shell runs the menu loop over a line-oriented reader and writer
type Shell struct {
	svc             taskservice.Service
	in              *bufio.Scanner
	out             io.Writer
	defaultPriority models.Priority
}

// Option configures a Shell
type Option func(*Shell)

// WithDefaultPriority sets the priority used when the user leaves it blank
func WithDefaultPriority(p models.Priority) Option {
	return func(s *Shell) {
		s.defaultPriority = p
	}
}

// New creates a Shell reading commands from in and writing to out
func New(svc taskservice.Service, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		svc:             svc,
		in:              bufio.NewScanner(in),
		out:             out,
		defaultPriority: models.DefaultPriority,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run prints the menu and handles choices until Exit or end of input.
// Validation and storage errors are shown and the loop continues.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, err := s.prompt("Enter your choice (1-7): ")
		if err != nil {
			return s.endOfInput(err)
		}

		switch choice {
		case "1":
			err = s.addTask(ctx)
		case "2":
			err = s.listTasks(ctx)
		case "3":
			err = s.updateStatus(ctx)
		case "4":
			err = s.editTask(ctx)
		case "5":
			err = s.deleteTask(ctx)
		case "6":
			err = s.searchTasks(ctx)
		case "7":
			s.println("👋 Exiting CLI Task Manager. Goodbye!")
			return nil
		default:
			s.println("❌ Invalid choice, try again.")
			continue
		}

		if errors.Is(err, io.EOF) || s.in.Err() != nil {
			return s.endOfInput(err)
		}
		if err != nil {
			if cli.ClassifyError(err) != cli.ExitValidation {
				slog.Error("menu operation failed", "choice", choice, "error", err)
			}
			s.println("❌ Error: " + err.Error())
		}
	}
}

// endOfInput ends the loop once the reader is exhausted. A clean EOF is a
// normal exit; a read failure such as an over-long line is reported.
func (s *Shell) endOfInput(err error) error {
	s.println("")
	if errors.Is(err, io.EOF) {
		return nil
	}
	s.println("❌ Error: failed to read input: " + err.Error())
	return fmt.Errorf("failed to read input: %w", err)
}

func (s *Shell) printMenu() {
	s.println("")
	s.println(rule)
	s.println("📝 Task Manager - CLI Mode")
	s.println(rule)
	s.println("1. Add Task")
	s.println("2. List Tasks")
	s.println("3. Update Task Status")
	s.println("4. Edit Task")
	s.println("5. Delete Task")
	s.println("6. Search Task")
	s.println("7. Exit")
}

func (s *Shell) addTask(ctx context.Context) error {
	title, err := s.prompt("Enter task title: ")
	if err != nil {
		return err
	}
	priority, err := s.prompt(fmt.Sprintf("Priority (Low/Medium/High) [%s]: ", s.defaultPriority))
	if err != nil {
		return err
	}
	dueDate, err := s.prompt("Due date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	if priority == "" {
		priority = string(s.defaultPriority)
	}

	task, err := s.svc.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:    title,
		Priority: priority,
		DueDate:  dueDate,
	})
	if err != nil {
		return err
	}

	s.println(fmt.Sprintf("✅ Task added! (ID: %d)", task.ID))
	return nil
}

func (s *Shell) listTasks(ctx context.Context) error {
	tasks, err := s.svc.ListTasks(ctx, models.Filter{})
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		s.println("No tasks found.")
		return nil
	}
	s.printTasks(tasks)
	return nil
}

func (s *Shell) updateStatus(ctx context.Context) error {
	taskID, err := s.promptID("Enter task ID to update status: ")
	if err != nil {
		return err
	}
	status, err := s.prompt("Enter new status (Pending/Completed): ")
	if err != nil {
		return err
	}

	if err := s.svc.UpdateStatus(ctx, taskID, status); err != nil {
		return err
	}

	s.println("✅ Task status updated!")
	return nil
}

func (s *Shell) editTask(ctx context.Context) error {
	taskID, err := s.promptID("Enter task ID to edit: ")
	if err != nil {
		return err
	}
	title, err := s.prompt("New title (leave blank to skip): ")
	if err != nil {
		return err
	}
	priority, err := s.prompt("New priority (Low/Medium/High, leave blank to skip): ")
	if err != nil {
		return err
	}
	dueDate, err := s.prompt("New due date (YYYY-MM-DD, leave blank to skip): ")
	if err != nil {
		return err
	}

	err = s.svc.EditTask(ctx, taskservice.UpdateTaskRequest{
		TaskID:   taskID,
		Title:    &title,
		Priority: &priority,
		DueDate:  &dueDate,
	})
	if err != nil {
		return err
	}

	s.println("✅ Task updated!")
	return nil
}

func (s *Shell) deleteTask(ctx context.Context) error {
	taskID, err := s.promptID("Enter task ID to delete: ")
	if err != nil {
		return err
	}

	if err := s.svc.DeleteTask(ctx, taskID); err != nil {
		return err
	}

	s.println("✅ Task deleted!")
	return nil
}

func (s *Shell) searchTasks(ctx context.Context) error {
	keyword, err := s.prompt("Enter keyword to search: ")
	if err != nil {
		return err
	}

	tasks, err := s.svc.SearchTasks(ctx, keyword)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		s.println("No tasks found for this keyword.")
		return nil
	}
	s.printTasks(tasks)
	return nil
}

func (s *Shell) printTasks(tasks []*models.Task) {
	for _, t := range tasks {
		s.println(cli.FormatTaskRow(t))
	}
}

// prompt writes label and reads one trimmed line. It returns io.EOF at end
// of input, or the reader's error when a line cannot be read.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// promptID reads a task ID. A non-numeric answer is reported as an error,
// not treated as fatal.
func (s *Shell) promptID(label string) (int, error) {
	answer, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	return cli.ParseTaskID(answer)
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}
