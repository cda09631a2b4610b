package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskr/internal/cli"
	"github.com/thenoetrevino/taskr/internal/models"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, newest first, optionally filtered by status and priority.

Examples:
  taskr list
  taskr list --status=pending --priority=high
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Filter by status: Pending, Completed or All")
	cmd.Flags().String("priority", "", "Filter by priority: Low, Medium, High or All")

	addAgentFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	status, _ := cmd.Flags().GetString("status")
	priority, _ := cmd.Flags().GetString("priority")
	formatter := formatterFor(cmd)

	filter, err := cli.ParseFilter(status, priority)
	if err != nil {
		return formatter.Fail(err, suggestionFor(err))
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	tasks, err := cliInstance.App.TaskService.ListTasks(ctx, filter)
	if err != nil {
		return formatter.Fail(err, "")
	}

	return printTasks(formatter, tasks)
}

// printTasks writes a task listing in the formatter's mode
func printTasks(formatter *cli.OutputFormatter, tasks []*models.Task) error {
	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"tasks":   tasks,
		})
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("Found %d tasks:\n\n", len(tasks))
	for _, t := range tasks {
		fmt.Printf("  %s\n", cli.FormatTaskRow(t))
	}
	return nil
}
