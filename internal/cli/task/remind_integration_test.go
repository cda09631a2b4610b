package task

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskr/internal/due"
	"github.com/thenoetrevino/taskr/internal/models"
	"github.com/thenoetrevino/taskr/internal/testutil"
	"github.com/thenoetrevino/taskr/internal/testutil/cli"
)

func TestRemindTasks(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	overdue := cli.CreateTestTask(t, db, testutil.TaskFixture{Title: "Late", DueDate: testutil.DateOffset(-3)})
	today := cli.CreateTestTask(t, db, testutil.TaskFixture{Title: "Today", DueDate: testutil.DateOffset(0)})
	cli.CreateTestTask(t, db, testutil.TaskFixture{Title: "Later", DueDate: testutil.DateOffset(5)})
	cli.CreateTestTask(t, db, testutil.TaskFixture{Title: "Done", DueDate: testutil.DateOffset(-1), Status: models.StatusCompleted})
	cli.CreateTestTask(t, db, testutil.TaskFixture{Title: "Undated", DueDate: "someday"})

	t.Run("JSON splits overdue and due today", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, RemindCmd(), []string{"--json"})
		require.NoError(t, err)

		var result struct {
			Success  bool           `json:"success"`
			Overdue  []*models.Task `json:"overdue"`
			DueToday []*models.Task `json:"due_today"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		require.Len(t, result.Overdue, 1)
		require.Len(t, result.DueToday, 1)
		assert.Equal(t, overdue, result.Overdue[0].ID)
		assert.Equal(t, today, result.DueToday[0].ID)
	})

	t.Run("Markdown rendering", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, RemindCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Late")
		assert.Contains(t, output, "Today")
		assert.NotContains(t, output, "Later")
	})
}

func TestRemindersMarkdown(t *testing.T) {
	empty := RemindersMarkdown(due.Reminders{})
	assert.Contains(t, empty, "Nothing overdue or due today.")

	md := RemindersMarkdown(due.Reminders{
		Overdue: []*models.Task{{ID: 4, Title: "Taxes", DueDate: "2020-04-15", Priority: models.PriorityHigh}},
	})
	assert.Contains(t, md, "## Overdue (1)")
	assert.Contains(t, md, "- **Taxes** (#4) due 2020-04-15, High priority")
	assert.NotContains(t, md, "Due today")
}
