package task

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskr/internal/testutil"
	"github.com/thenoetrevino/taskr/internal/testutil/cli"
)

func TestExportTasks(t *testing.T) {
	db, app := cli.SetupCLITest(t)

	cli.CreateTestTask(t, db, testutil.TaskFixture{Title: "First"})
	cli.CreateTestTask(t, db, testutil.TaskFixture{Title: "Second, with comma"})

	t.Run("Export to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.csv")

		output, err := cli.ExecuteCLICommand(t, app, ExportCmd(), []string{path})

		require.NoError(t, err)
		assert.Contains(t, output, "Exported 2 tasks")

		f, err := os.Open(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"ID", "Title", "Priority", "Due Date", "Status"}, rows[0])
		assert.Equal(t, "Second, with comma", rows[1][1])
	})

	t.Run("Export to stdout", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ExportCmd(), []string{"-"})

		require.NoError(t, err)
		assert.Contains(t, output, "ID,Title,Priority,Due Date,Status")
		assert.Contains(t, output, `"Second, with comma"`)
	})

	t.Run("Unwritable path", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ExportCmd(), []string{
			filepath.Join(t.TempDir(), "missing", "tasks.csv"), "--json",
		})
		assert.Error(t, err)
	})
}
