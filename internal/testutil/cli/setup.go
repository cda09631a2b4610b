package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/taskr/internal/app"
	"github.com/thenoetrevino/taskr/internal/testutil"
)

// SetupCLITest creates a test DB and returns both the DB and App instance.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, db *sql.DB, fx testutil.TaskFixture) int {
	t.Helper()
	return testutil.CreateTestTask(t, db, fx)
}
