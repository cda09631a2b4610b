package task

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clipkg "github.com/thenoetrevino/taskr/internal/cli"
	"github.com/thenoetrevino/taskr/internal/models"
	"github.com/thenoetrevino/taskr/internal/testutil/cli"
)

func TestAddTask_Positive(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	t.Run("Add task human readable", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--title", "Pay rent",
			"--due", "2099-07-01",
			"--priority", "high",
		})

		require.NoError(t, err)
		assert.Contains(t, output, "Task 'Pay rent' added successfully")
		assert.Contains(t, output, "Priority: High")
	})

	t.Run("Add task quiet mode", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--title", "Quiet task",
			"--due", "2099-07-01",
			"--quiet",
		})

		require.NoError(t, err)
		id, convErr := strconv.Atoi(strings.TrimSpace(output))
		require.NoError(t, convErr)

		task, err := app.TaskService.GetTask(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Quiet task", task.Title)
		assert.Equal(t, models.PriorityMedium, task.Priority)
		assert.Equal(t, models.StatusPending, task.Status)
	})

	t.Run("Add task JSON mode", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
			"--title", "JSON task",
			"--due", "2099-07-01",
			"--priority", "LOW",
			"--json",
		})

		require.NoError(t, err)

		var result struct {
			Success bool         `json:"success"`
			Task    *models.Task `json:"task"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		assert.True(t, result.Success)
		assert.Equal(t, "JSON task", result.Task.Title)
		assert.Equal(t, models.PriorityLow, result.Task.Priority)
	})
}

func TestAddTask_UsesConfiguredDefaultPriority(t *testing.T) {
	_, app := cli.SetupCLITest(t)
	app.Config.DefaultPriority = "High"

	output, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{
		"--title", "Configured",
		"--due", "2099-07-01",
		"--quiet",
	})
	require.NoError(t, err)

	id, _ := strconv.Atoi(strings.TrimSpace(output))
	task, err := app.TaskService.GetTask(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, task.Priority)
}

func TestAddTask_Negative(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{"blank title", []string{"--title", "  ", "--due", "2099-01-01"}, "INVALID_TITLE"},
		{"bad due date", []string{"--title", "x", "--due", "01/02/2099"}, "INVALID_DUE_DATE"},
		{"impossible due date", []string{"--title", "x", "--due", "2099-02-30"}, "INVALID_DUE_DATE"},
		{"bad priority", []string{"--title", "x", "--due", "2099-01-01", "--priority", "urgent"}, "INVALID_PRIORITY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := cli.ExecuteCLICommand(t, app, AddCmd(), append(tt.args, "--json"))

			require.Error(t, err)
			assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
			assert.Contains(t, output, tt.wantCode)
		})
	}

	t.Run("missing required flag", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, AddCmd(), []string{"--title", "no due"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "due")
	})

	tasks, err := app.TaskService.ListTasks(context.Background(), models.Filter{})
	require.NoError(t, err)
	assert.Empty(t, tasks, "rejected adds must not write")
}
