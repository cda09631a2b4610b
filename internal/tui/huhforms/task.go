package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskr/internal/models"
	taskservice "github.com/thenoetrevino/taskr/internal/services/task"
)

// TaskFormValues holds the fields bound to the add/edit form.
// The form writes through these pointers in place.
type TaskFormValues struct {
	Title    string
	Priority string
	DueDate  string
	Confirm  bool
}

// PriorityOptions returns the select options for the priority field
func PriorityOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(models.Priorities))
	for _, p := range models.Priorities {
		options = append(options, huh.NewOption(string(p), string(p)))
	}
	return options
}

// CreateTaskForm creates a huh form for adding or editing a task.
// Title and due date run the same validators as the service, so a
// completed form never carries a value the service would reject.
func CreateTaskForm(values *TaskFormValues, isEdit bool) *huh.Form {
	heading := "New Task"
	if isEdit {
		heading = "Edit Task"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title(heading).
			Placeholder("Enter task title...").
			CharLimit(255).
			Validate(validateTitle).
			Value(&values.Title),
		huh.NewSelect[string]().
			Key("priority").
			Title("Priority").
			Options(PriorityOptions()...).
			Value(&values.Priority),
		huh.NewInput().
			Key("due").
			Title("Due date").
			Placeholder("YYYY-MM-DD").
			Validate(validateDueDate).
			Value(&values.DueDate),
		huh.NewConfirm().
			Key("confirm").
			Title("Save this task?").
			Affirmative("Yes").
			Negative("No").
			Value(&values.Confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

func validateTitle(s string) error {
	_, err := taskservice.ValidateTitle(s)
	return err
}

func validateDueDate(s string) error {
	_, err := taskservice.ValidateDueDate(s)
	return err
}
