// Package export writes task listings to CSV
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/thenoetrevino/taskr/internal/models"
)

// Header is the first row of every export
var Header = []string{"ID", "Title", "Priority", "Due Date", "Status"}

// WriteCSV writes the header and one row per task, in the order given
func WriteCSV(w io.Writer, tasks []*models.Task) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, t := range tasks {
		row := []string{
			strconv.Itoa(t.ID),
			t.Title,
			string(t.Priority),
			t.DueDate,
			string(t.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write task %d: %w", t.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile creates (or truncates) path and writes the export to it
func WriteCSVFile(path string, tasks []*models.Task) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	return WriteCSV(f, tasks)
}
