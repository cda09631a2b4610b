package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskr/internal/cli"
	"github.com/thenoetrevino/taskr/internal/models"
)

// StatusCmd returns the status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set a task's status",
		Long: `Set a task's status to Pending or Completed (case-insensitive).
Unknown task IDs are ignored.

Examples:
  taskr status 3 completed
`,
		Args: cobra.ExactArgs(2),
		RunE: runStatus,
	}

	addAgentFlags(cmd)

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	taskID, err := parseIDArg(args, formatter, "Usage: taskr status <id> <Pending|Completed>")
	if err != nil {
		return err
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	if err := cliInstance.App.TaskService.UpdateStatus(ctx, taskID, args[1]); err != nil {
		return formatter.Fail(err, suggestionFor(err))
	}

	return reportTask(cliInstance, cmd, formatter, taskID, "status updated")
}

// ToggleCmd returns the toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a task between Pending and Completed",
		Args:  cobra.ExactArgs(1),
		RunE:  runToggle,
	}

	addAgentFlags(cmd)

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	taskID, err := parseIDArg(args, formatter, "Usage: taskr toggle <id>")
	if err != nil {
		return err
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	if err := cliInstance.App.TaskService.ToggleStatus(ctx, taskID); err != nil {
		return formatter.Fail(err, "")
	}

	return reportTask(cliInstance, cmd, formatter, taskID, "toggled")
}

// reportTask prints the task after a mutation. A missing task is not an
// error: mutations on unknown IDs succeed without changing anything.
func reportTask(cliInstance *cli.CLI, cmd *cobra.Command, formatter *cli.OutputFormatter, taskID int, verb string) error {
	task, err := cliInstance.App.TaskService.GetTask(cmd.Context(), taskID)
	if errors.Is(err, models.ErrTaskNotFound) {
		task = nil
	} else if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", taskID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"task_id": taskID,
			"found":   task != nil,
			"task":    task,
		})
	}

	if task == nil {
		fmt.Printf("No task with ID %d; nothing changed\n", taskID)
		return nil
	}

	fmt.Printf("✓ Task %d %s\n", taskID, verb)
	fmt.Printf("  %s\n", cli.FormatTaskRow(task))
	return nil
}
