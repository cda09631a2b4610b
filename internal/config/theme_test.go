package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/taskr/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Create a temporary theme file
	themeContent := []byte(`theme:
  accent: "#FF0000"
  overdue: "#00FF00"
  priority_high: "#0000FF"
`)
	themePath := filepath.Join(t.TempDir(), "taskr-theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify theme was merged
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Overdue != "#00FF00" {
		t.Errorf("Expected overdue to be #00FF00, got %s", cfg.ColorScheme.Overdue)
	}
	if cfg.ColorScheme.PriorityHigh != "#0000FF" {
		t.Errorf("Expected priority_high to be #0000FF, got %s", cfg.ColorScheme.PriorityHigh)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.DueSoon == "" {
		t.Error("Expected due_soon to have default value")
	}
}

func TestPresetDefaults(t *testing.T) {
	for _, name := range []string{"default", "monochrome", "wave", "unknown"} {
		scheme := colors.ColorScheme{Preset: name, Accent: "#123456"}
		scheme.ApplyDefaults()

		if scheme.Accent != "#123456" {
			t.Errorf("%s: custom accent overwritten with %s", name, scheme.Accent)
		}
		if scheme.Overdue == "" || scheme.PriorityLow == "" || scheme.ErrorFg == "" {
			t.Errorf("%s: expected preset to fill missing colors", name)
		}
	}
}
