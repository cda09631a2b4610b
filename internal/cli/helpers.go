package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/taskr/internal/models"
	taskservice "github.com/thenoetrevino/taskr/internal/services/task"
)

// ParseTaskID parses a task ID argument
func ParseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("task ID must be a number, got %q", arg)
	}
	return id, nil
}

// FormatTaskRow renders a task as "[id] title | priority | due_date | status"
func FormatTaskRow(t *models.Task) string {
	return fmt.Sprintf("[%d] %s | %s | %s | %s", t.ID, t.Title, t.Priority, t.DueDate, t.Status)
}

// ParseFilter builds a list filter from optional status and priority strings.
// Empty strings and "all" leave that dimension unfiltered.
func ParseFilter(status, priority string) (models.Filter, error) {
	var filter models.Filter

	if s := strings.TrimSpace(status); s != "" && !strings.EqualFold(s, "all") {
		st, err := models.ParseStatus(s)
		if err != nil {
			return filter, taskservice.ErrInvalidStatus
		}
		filter.Status = &st
	}

	if p := strings.TrimSpace(priority); p != "" && !strings.EqualFold(p, "all") {
		pr, err := models.ParsePriority(p)
		if err != nil {
			return filter, taskservice.ErrInvalidPriority
		}
		filter.Priority = &pr
	}

	return filter, nil
}
