package task

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskr/internal/cli"
	taskservice "github.com/thenoetrevino/taskr/internal/services/task"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task. New tasks start as Pending.

Examples:
  # Simple task (human-readable output)
  taskr add --title="Pay rent" --due=2025-07-01

  # JSON output for scripts
  taskr add --title="Pay rent" --due=2025-07-01 --priority=high --json

  # Quiet mode for bash capture
  TASK_ID=$(taskr add --title="Pay rent" --due=2025-07-01 --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("title", "", "Task title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("due", "", "Due date, YYYY-MM-DD (required)")
	if err := cmd.MarkFlagRequired("due"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("priority", "", "Priority: Low, Medium or High (defaults to the configured default)")

	addAgentFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	dueDate, _ := cmd.Flags().GetString("due")
	priority, _ := cmd.Flags().GetString("priority")
	formatter := formatterFor(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	if strings.TrimSpace(priority) == "" {
		priority = string(cliInstance.App.Config.Priority())
	}

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:    title,
		Priority: priority,
		DueDate:  dueDate,
	})
	if err != nil {
		return formatter.Fail(err, suggestionFor(err))
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.Quiet {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"task":    task,
		})
	}

	fmt.Printf("✓ Task '%s' added successfully (ID: %d)\n", task.Title, task.ID)
	fmt.Printf("  Priority: %s\n", task.Priority)
	fmt.Printf("  Due: %s\n", task.DueDate)
	return nil
}

// suggestionFor returns a hint for common validation errors
func suggestionFor(err error) string {
	switch cli.ErrorCode(err) {
	case "INVALID_DUE_DATE":
		return "Use the YYYY-MM-DD format, e.g. --due=2025-07-01"
	case "INVALID_PRIORITY":
		return "Valid priorities are: Low, Medium, High"
	case "INVALID_STATUS":
		return "Valid statuses are: Pending, Completed"
	default:
		return ""
	}
}
