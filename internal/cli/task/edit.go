package task

import (
	"errors"

	"github.com/spf13/cobra"
	taskservice "github.com/thenoetrevino/taskr/internal/services/task"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's title, priority or due date",
		Long: `Edit a task. Only the flags you pass are changed; status and creation
time are never touched. Unknown task IDs are ignored.

Examples:
  taskr edit 3 --title="Pay rent (July)"
  taskr edit 3 --priority=low --due=2025-07-05
`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("priority", "", "New priority: Low, Medium or High")
	cmd.Flags().String("due", "", "New due date, YYYY-MM-DD")

	addAgentFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	taskID, err := parseIDArg(args, formatter, "Usage: taskr edit <id> [--title] [--priority] [--due]")
	if err != nil {
		return err
	}

	req := taskservice.UpdateTaskRequest{TaskID: taskID}
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("priority") {
		priority, _ := cmd.Flags().GetString("priority")
		req.Priority = &priority
	}
	if cmd.Flags().Changed("due") {
		dueDate, _ := cmd.Flags().GetString("due")
		req.DueDate = &dueDate
	}

	if req.Title == nil && req.Priority == nil && req.DueDate == nil {
		return formatter.Usage(errors.New("nothing to edit"),
			"Pass at least one of --title, --priority or --due")
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	if err := cliInstance.App.TaskService.EditTask(ctx, req); err != nil {
		return formatter.Fail(err, suggestionFor(err))
	}

	return reportTask(cliInstance, cmd, formatter, taskID, "updated")
}
