package task

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/taskr/internal/cli"
	"github.com/thenoetrevino/taskr/internal/models"
	"github.com/thenoetrevino/taskr/internal/testutil"
	"github.com/thenoetrevino/taskr/internal/testutil/cli"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

func TestEditTask_Positive(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	ctx := context.Background()
	taskID := cli.CreateTestTask(t, db, testutil.TaskFixture{
		Title:    "Old title",
		Priority: models.PriorityLow,
		DueDate:  "2099-01-01",
	})

	t.Run("Edit title only", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{itoa(taskID), "--title", "New title"})

		require.NoError(t, err)
		assert.Contains(t, output, "updated")

		task, err := app.TaskService.GetTask(ctx, taskID)
		require.NoError(t, err)
		assert.Equal(t, "New title", task.Title)
		assert.Equal(t, models.PriorityLow, task.Priority)
		assert.Equal(t, "2099-01-01", task.DueDate)
	})

	t.Run("Edit priority and due date", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{
			itoa(taskID), "--priority", "high", "--due", "2099-02-02", "--quiet",
		})
		require.NoError(t, err)

		task, err := app.TaskService.GetTask(ctx, taskID)
		require.NoError(t, err)
		assert.Equal(t, "New title", task.Title)
		assert.Equal(t, models.PriorityHigh, task.Priority)
		assert.Equal(t, "2099-02-02", task.DueDate)
		assert.Equal(t, models.StatusPending, task.Status)
	})
}

func TestEditTask_Negative(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	taskID := cli.CreateTestTask(t, db, testutil.TaskFixture{Title: "Keep me"})

	t.Run("No flags", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{itoa(taskID), "--json"})

		require.Error(t, err)
		assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))
	})

	t.Run("Bad due date", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, EditCmd(), []string{itoa(taskID), "--due", "tomorrow", "--json"})

		require.Error(t, err)
		assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
		assert.Contains(t, output, "INVALID_DUE_DATE")

		task, err := app.TaskService.GetTask(context.Background(), taskID)
		require.NoError(t, err)
		assert.Equal(t, "2099-12-31", task.DueDate)
	})
}
