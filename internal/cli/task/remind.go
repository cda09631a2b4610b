package task

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskr/internal/due"
	"github.com/thenoetrevino/taskr/internal/models"
)

const remindWrapWidth = 80

// RemindCmd returns the remind subcommand
func RemindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Show overdue and due-today tasks",
		Long: `List pending tasks that are overdue or due today.
Completed tasks and tasks without a valid due date are skipped.`,
		Args: cobra.NoArgs,
		RunE: runRemind,
	}

	addAgentFlags(cmd)

	return cmd
}

func runRemind(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	reminders, err := cliInstance.App.TaskService.Reminders(ctx, time.Now())
	if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		for _, t := range append(reminders.Overdue, reminders.DueToday...) {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":   true,
			"overdue":   reminders.Overdue,
			"due_today": reminders.DueToday,
		})
	}

	rendered, err := renderReminders(reminders)
	if err != nil {
		return formatter.Fail(err, "")
	}
	fmt.Print(rendered)
	return nil
}

// RemindersMarkdown formats reminders as a Markdown document
func RemindersMarkdown(r due.Reminders) string {
	var b strings.Builder
	b.WriteString("# Reminders\n\n")

	if r.Empty() {
		b.WriteString("Nothing overdue or due today.\n")
		return b.String()
	}

	writeSection := func(heading string, tasks []*models.Task) {
		if len(tasks) == 0 {
			return
		}
		fmt.Fprintf(&b, "## %s (%d)\n\n", heading, len(tasks))
		for _, t := range tasks {
			fmt.Fprintf(&b, "- **%s** (#%d) due %s, %s priority\n", t.Title, t.ID, t.DueDate, t.Priority)
		}
		b.WriteString("\n")
	}

	writeSection("Overdue", r.Overdue)
	writeSection("Due today", r.DueToday)
	return b.String()
}

func renderReminders(r due.Reminders) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(remindWrapWidth),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return renderer.Render(RemindersMarkdown(r))
}
