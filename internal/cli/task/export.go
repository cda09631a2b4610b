package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ExportCmd returns the export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export all tasks to a CSV file",
		Long: `Write every task to a CSV file with the header
ID,Title,Priority,Due Date,Status, newest first. Use "-" to write to stdout.

Examples:
  taskr export tasks.csv
  taskr export - > tasks.csv
`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	addAgentFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)
	path := args[0]

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	if path == "-" {
		if _, err := cliInstance.App.TaskService.ExportCSV(ctx, os.Stdout); err != nil {
			return formatter.Fail(err, "")
		}
		return nil
	}

	count, err := cliInstance.App.TaskService.ExportCSVFile(ctx, path)
	if err != nil {
		return formatter.Fail(err, "Check that the directory exists and is writable")
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", count)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"path":    path,
			"count":   count,
		})
	}

	fmt.Printf("✓ Exported %d tasks to %s\n", count, path)
	return nil
}
