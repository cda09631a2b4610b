// Package task holds the non-interactive task commands (add, list, edit, ...)
package task

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskr/internal/cli"
)

// Commands returns every task subcommand, registered at the top level of the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		StatusCmd(),
		ToggleCmd(),
		EditCmd(),
		DeleteCmd(),
		SearchCmd(),
		ShowCmd(),
		ExportCmd(),
		RemindCmd(),
	}
}

// addAgentFlags registers the --json and --quiet flags
func addAgentFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// openCLI returns the CLI for cmd, reporting initialization failures
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil, cli.Exit(cli.ExitError, err)
	}
	return cliInstance, nil
}

func closeCLI(cliInstance *cli.CLI) {
	if err := cliInstance.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// parseIDArg parses args[0] as a task ID, reporting a usage error if it is not numeric
func parseIDArg(args []string, formatter *cli.OutputFormatter, usage string) (int, error) {
	taskID, err := cli.ParseTaskID(args[0])
	if err != nil {
		return 0, formatter.Usage(err, usage)
	}
	return taskID, nil
}
