package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskr/internal/app"
	"github.com/thenoetrevino/taskr/internal/cli"
	"github.com/thenoetrevino/taskr/internal/cli/shell"
	"github.com/thenoetrevino/taskr/internal/launcher"
)

func shellCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive numbered menu",
		Long: `Start the interactive menu: add, list, update status, edit, delete and
search tasks by number until you choose Exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts.app, cmd.InOrStdin())
		},
	}
}

func tuiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the full-screen task interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts.app)
		},
	}
}

// runModeSelector asks which interface to start. "1" opens the TUI and any
// other answer, including end of input, opens the menu.
func runModeSelector(cmd *cobra.Command, application *app.App) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, "Select mode:")
	fmt.Fprintln(out, "1. TUI Mode")
	fmt.Fprintln(out, "2. CLI Mode")
	fmt.Fprint(out, "Enter choice (1/2): ")

	choice, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return cli.Exit(cli.ExitError, err)
	}

	if strings.TrimSpace(choice) == "1" {
		return runTUI(cmd, application)
	}
	// The menu keeps reading from the same buffered reader
	return runShell(cmd, application, in)
}

func runShell(cmd *cobra.Command, application *app.App, in io.Reader) error {
	s := shell.New(application.TaskService, in, cmd.OutOrStdout(),
		shell.WithDefaultPriority(application.Config.Priority()))
	if err := s.Run(cmd.Context()); err != nil {
		return cli.Exit(cli.ExitError, err)
	}
	return nil
}

func runTUI(cmd *cobra.Command, application *app.App) error {
	if err := launcher.Launch(cmd.Context(), application); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return cli.Exit(cli.ExitError, err)
	}
	return nil
}
