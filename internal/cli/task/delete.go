package task

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task permanently",
		Long: `Delete a task permanently. Asks for confirmation unless --force,
--json or --quiet is given. Unknown task IDs are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation")

	addAgentFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)
	force, _ := cmd.Flags().GetBool("force")

	taskID, err := parseIDArg(args, formatter, "Usage: taskr delete <id>")
	if err != nil {
		return err
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	// Interactive confirmation for human mode only
	if !force && !formatter.JSON && !formatter.Quiet {
		fmt.Printf("Delete task %d? This cannot be undone. [y/N]: ", taskID)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.TaskService.DeleteTask(ctx, taskID); err != nil {
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
		})
	}

	fmt.Printf("✓ Task %d deleted\n", taskID)
	return nil
}
