package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskr/internal/config"
	"github.com/thenoetrevino/taskr/internal/due"
	"github.com/thenoetrevino/taskr/internal/models"
	taskservice "github.com/thenoetrevino/taskr/internal/services/task"
	"github.com/thenoetrevino/taskr/internal/tui/huhforms"
	"github.com/thenoetrevino/taskr/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	svc    taskservice.Service
	config *config.Config
	now    func() time.Time

	// tasks is the visible list after filters, search and sort
	tasks []*models.Task

	uiState           *state.UIState
	filterState       *state.FilterState
	sortState         *state.SortState
	searchState       *state.SearchState
	notificationState *state.NotificationState

	searchInput textinput.Model
	exportInput textinput.Model

	taskForm   *huh.Form
	formValues *huhforms.TaskFormValues

	// reminders is shown as a banner until the first key press
	reminders     due.Reminders
	showReminders bool

	styles styles
}

// Option configures a Model
type Option func(*Model)

// WithClock overrides the clock used for urgency and reminders
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// New creates the TUI model and loads the initial task list and reminders
func New(ctx context.Context, svc taskservice.Service, cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "search titles..."
	searchInput.Prompt = ""
	searchInput.CharLimit = 100

	exportInput := textinput.New()
	exportInput.Placeholder = "tasks.csv"
	exportInput.Prompt = ""

	m := Model{
		ctx:               ctx,
		svc:               svc,
		config:            cfg,
		now:               time.Now,
		uiState:           state.NewUIState(),
		filterState:       state.NewFilterState(),
		sortState:         state.NewSortState(),
		searchState:       state.NewSearchState(),
		notificationState: state.NewNotificationState(),
		searchInput:       searchInput,
		exportInput:       exportInput,
		styles:            newStyles(cfg.ColorScheme),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.reload()
	m.loadReminders()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// Tasks returns the tasks currently shown, in display order
func (m Model) Tasks() []*models.Task {
	return m.tasks
}

// Mode returns the current interaction mode
func (m Model) Mode() state.Mode {
	return m.uiState.Mode()
}

// reload fetches tasks for the active search and filters and applies the sort.
// A search query goes through the service so matching follows the store's
// case rules; the filters then narrow the matches.
func (m *Model) reload() {
	var (
		tasks []*models.Task
		err   error
	)
	filter := m.filterState.Filter()

	if m.searchState.IsActive() {
		tasks, err = m.svc.SearchTasks(m.ctx, m.searchState.Query)
		tasks = filterTasks(tasks, filter)
	} else {
		tasks, err = m.svc.ListTasks(m.ctx, filter)
	}
	if err != nil {
		slog.Error("Error loading tasks", "error", err)
		m.notificationState.Add(state.LevelError, "Error loading tasks")
		return
	}

	m.sortState.Apply(tasks)
	m.tasks = tasks
	m.uiState.ClampSelection(len(m.tasks))
}

func (m *Model) loadReminders() {
	reminders, err := m.svc.Reminders(m.ctx, m.now())
	if err != nil {
		slog.Error("Error loading reminders", "error", err)
		return
	}
	m.reminders = reminders
	m.showReminders = !reminders.Empty()
}

// getCurrentTask returns the highlighted task, or nil when the list is empty
func (m Model) getCurrentTask() *models.Task {
	idx := m.uiState.SelectedTask()
	if idx < 0 || idx >= len(m.tasks) {
		return nil
	}
	return m.tasks[idx]
}

// selectTask moves the highlight to the task with id, if it is visible
func (m *Model) selectTask(id int) {
	for i, t := range m.tasks {
		if t.ID == id {
			m.uiState.SetSelectedTask(i)
			return
		}
	}
}

func (m Model) urgency(t *models.Task) due.Urgency {
	if t.IsCompleted() {
		return due.None
	}
	return due.Classify(t.DueDate, m.now(), m.config.DueSoonDays)
}

func filterTasks(tasks []*models.Task, filter models.Filter) []*models.Task {
	out := make([]*models.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
