package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/thenoetrevino/taskr/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
		if tasks, ok := data.([]*models.Task); ok {
			for _, t := range tasks {
				fmt.Printf("%d\n", t.ID)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns it wrapped with the matching exit code
func (f *OutputFormatter) Fail(err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return Exit(ClassifyError(err), err)
}

// Usage reports a usage problem and returns an ExitUsage error
func (f *OutputFormatter) Usage(err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion("USAGE_ERROR", err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return Exit(ExitUsage, err)
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	switch v := data.(type) {
	case *models.Task:
		fmt.Println(FormatTaskRow(v))
	case []*models.Task:
		if len(v) == 0 {
			fmt.Println("No tasks found")
			return nil
		}
		for _, t := range v {
			fmt.Println(FormatTaskRow(t))
		}
	case string:
		fmt.Println(v)
	default:
		fmt.Printf("%+v\n", data)
	}
	return nil
}
