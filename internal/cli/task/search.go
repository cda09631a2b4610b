package task

import (
	"strings"

	"github.com/spf13/cobra"
)

// SearchCmd returns the search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search tasks by title",
		Long:  "List tasks whose title contains the keyword, ignoring case, newest first.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}

	addAgentFlags(cmd)

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	tasks, err := cliInstance.App.TaskService.SearchTasks(ctx, strings.Join(args, " "))
	if err != nil {
		return formatter.Fail(err, "")
	}

	return printTasks(formatter, tasks)
}
