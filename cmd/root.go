package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskr/internal/app"
	"github.com/thenoetrevino/taskr/internal/cli"
	"github.com/thenoetrevino/taskr/internal/cli/styles"
	"github.com/thenoetrevino/taskr/internal/cli/task"
	"github.com/thenoetrevino/taskr/internal/config"
	"github.com/thenoetrevino/taskr/internal/logging"
)

// rootOptions carries the persistent flags and the resources opened for one run
type rootOptions struct {
	dbPath string
	debug  bool

	app       *app.App
	logCloser io.Closer
}

// newRootCmd builds the taskr command tree. Resources opened while running
// it are recorded in opts and released by opts.close.
func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskr",
		Short: "taskr - a personal task tracker",
		Long: `taskr tracks tasks with a title, priority, due date and status in a local
SQLite file. Run it without a subcommand to pick the interactive menu or the
full-screen interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.open(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModeSelector(cmd, opts.app)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Path to the task database (default ~/.taskr/tasks.db)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write debug logs to ~/.taskr/logs/taskr.log")

	rootCmd.AddCommand(task.Commands()...)
	rootCmd.AddCommand(shellCmd(opts), tuiCmd(opts))

	// Flag and argument errors are usage errors
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.Exit(cli.ExitUsage, err)
	})

	return rootCmd
}

// open initializes logging, config and the App, then hands the App to the
// subcommand through its context.
func (o *rootOptions) open(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	closer, err := logging.Init(level)
	if err != nil {
		// Logging is best-effort; stdout stays reserved for command output
		logging.Discard()
	} else {
		o.logCloser = closer
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: failed to load config: %v\n", err)
		return cli.Exit(cli.ExitError, err)
	}
	styles.Init(cfg.ColorScheme)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	application, err := app.Open(ctx, cfg.ResolveDBPath(o.dbPath),
		app.WithConfig(cfg), app.WithLogger(logging.Logger))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: failed to initialize database: %v\n", err)
		return cli.Exit(cli.ExitError, err)
	}
	o.app = application

	cmd.SetContext(cli.WithApp(ctx, application))
	return nil
}

func (o *rootOptions) close() {
	if o.app != nil {
		if err := o.app.Close(); err != nil {
			o.app.Logger.Error("Error closing app", "error", err)
		}
		o.app = nil
	}
	if o.logCloser != nil {
		_ = o.logCloser.Close()
		o.logCloser = nil
	}
}

// Execute runs the command line and exits the process with its exit code
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Run executes the command tree against args and returns the exit code.
// Errors that carry no code come from cobra itself and are usage errors.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &rootOptions{}
	defer opts.close()

	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	return exitCode(rootCmd, err)
}

func exitCode(rootCmd *cobra.Command, err error) int {
	var exitErr *cli.ExitCodeError
	if err == nil || errors.As(err, &exitErr) {
		return cli.ExitCode(err)
	}
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Run '%s --help' for usage.\n", rootCmd.CommandPath())
	return cli.ExitUsage
}
