package logging

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesTextRecords(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	defer log.SetOutput(os.Stderr)

	var buf bytes.Buffer
	Setup(&buf, slog.LevelInfo)

	slog.Debug("hidden")
	slog.Info("task created", "id", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=\"task created\"")
	assert.Contains(t, out, "id=7")
}

func TestInit_CreatesLogFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	defer log.SetOutput(os.Stderr)
	t.Setenv("HOME", t.TempDir())

	closer, err := Init(slog.LevelDebug)
	require.NoError(t, err)

	slog.Info("hello from test")
	require.NoError(t, closer.Close())

	dir, err := Dir()
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "taskr.log"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "hello from test"))
}
