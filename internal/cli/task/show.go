package task

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskr/internal/cli/styles"
	"github.com/thenoetrevino/taskr/internal/due"
	"github.com/thenoetrevino/taskr/internal/models"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Long:  "Display a task with its priority, due date urgency, status and creation time.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	addAgentFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	taskID, err := parseIDArg(args, formatter, "Usage: taskr show <id>")
	if err != nil {
		return err
	}

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail(err, "Use 'taskr list' to see existing tasks")
	}

	urgency := due.Classify(task.DueDate, time.Now(), cliInstance.App.DueSoonDays())

	// Output in appropriate format
	if formatter.Quiet {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"task":    task,
			"urgency": urgency.String(),
		})
	}

	fmt.Println(renderTaskCard(task, urgency))
	return nil
}

func renderTaskCard(task *models.Task, urgency due.Urgency) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(task.Title))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Task #%d", task.ID)))
	content.WriteString("\n\n")

	content.WriteString(styles.Field("Priority", styles.RenderPriority(task.Priority)))
	content.WriteString("\n")
	content.WriteString(styles.Field("Due", styles.RenderDue(task.DueDate, urgency)))
	content.WriteString("\n")
	content.WriteString(styles.Field("Status", styles.RenderStatus(task.Status)))
	content.WriteString("\n")

	created := "-"
	if !task.CreatedAt.IsZero() {
		created = task.CreatedAt.Format(models.CreatedAtLayout)
	}
	content.WriteString(styles.Field("Created", styles.ValueStyle.Render(created)))

	return styles.RenderCard(content.String())
}
