package database

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/thenoetrevino/taskr/internal/models"
)

// TestTaskCreateRoundTrip tests that a created task reads back with Pending status
func TestTaskCreateRoundTrip(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	task, err := repo.CreateTask(ctx, "Buy milk", "High", "2099-01-01")
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if task.ID <= 0 {
		t.Errorf("Expected positive ID, got %d", task.ID)
	}

	tasks, err := repo.ListTasks(ctx, models.Filter{})
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(tasks))
	}

	got := tasks[0]
	if got.Title != "Buy milk" || got.Priority != models.PriorityHigh || got.DueDate != "2099-01-01" {
		t.Errorf("Unexpected task fields: %+v", got)
	}
	if got.Status != models.StatusPending {
		t.Errorf("Expected status Pending, got %q", got.Status)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should not be zero")
	}
}

// TestTaskCreatedAtUsesLocalClock tests that created_at is stamped from the repo clock
func TestTaskCreatedAtUsesLocalClock(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	fixed := time.Date(2030, 5, 6, 7, 8, 9, 0, time.Local)
	repo.TaskRepo.now = func() time.Time { return fixed }

	task := createTask(t, repo, "Stamp", "Low", "2030-05-07")
	if !task.CreatedAt.Equal(fixed) {
		t.Errorf("Expected created_at %v, got %v", fixed, task.CreatedAt)
	}

	// Edits never touch created_at
	if err := repo.EditTask(context.Background(), task.ID, models.TaskEdit{Title: strPtr("Restamped")}); err != nil {
		t.Fatalf("Failed to edit task: %v", err)
	}
	got, err := repo.GetTask(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("Failed to get task: %v", err)
	}
	if !got.CreatedAt.Equal(fixed) {
		t.Errorf("created_at changed after edit: %v", got.CreatedAt)
	}
}

// TestListOrderingNewestFirst tests that listing returns descending IDs
func TestListOrderingNewestFirst(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	a := createTask(t, repo, "A", "Low", "2099-01-01")
	b := createTask(t, repo, "B", "High", "2099-01-02")
	c := createTask(t, repo, "C", "Medium", "2099-01-03")

	tasks, err := repo.ListTasks(context.Background(), models.Filter{})
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}

	want := []int{c.ID, b.ID, a.ID}
	if got := ids(tasks); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}
}

// TestListFilters tests status and priority filters, alone and combined
func TestListFilters(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	highPending := createTask(t, repo, "hp", "High", "2099-01-01")
	highDone := createTask(t, repo, "hd", "High", "2099-01-01")
	lowPending := createTask(t, repo, "lp", "Low", "2099-01-01")
	lowDone := createTask(t, repo, "ld", "Low", "2099-01-01")

	for _, id := range []int{highDone.ID, lowDone.ID} {
		if err := repo.UpdateTaskStatus(ctx, id, models.StatusCompleted); err != nil {
			t.Fatalf("Failed to update status: %v", err)
		}
	}

	completed := models.StatusCompleted
	pending := models.StatusPending
	high := models.PriorityHigh
	low := models.PriorityLow

	tests := []struct {
		name   string
		filter models.Filter
		want   []int
	}{
		{"no filter", models.Filter{}, []int{lowDone.ID, lowPending.ID, highDone.ID, highPending.ID}},
		{"status only", models.Filter{Status: &completed}, []int{lowDone.ID, highDone.ID}},
		{"priority only", models.Filter{Priority: &high}, []int{highDone.ID, highPending.ID}},
		{"both", models.Filter{Status: &pending, Priority: &low}, []int{lowPending.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := repo.ListTasks(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Failed to list tasks: %v", err)
			}
			if got := ids(tasks); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestListEmptyReturnsEmptySlice tests that an empty table lists as a non-nil empty slice
func TestListEmptyReturnsEmptySlice(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	tasks, err := repo.ListTasks(context.Background(), models.Filter{})
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("Expected empty slice, got %v", tasks)
	}
}

// TestPartialEdit tests that only supplied fields change
func TestPartialEdit(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	task := createTask(t, repo, "Old", "Low", "2099-01-01")

	if err := repo.EditTask(ctx, task.ID, models.TaskEdit{Title: strPtr("New")}); err != nil {
		t.Fatalf("Failed to edit task: %v", err)
	}

	got, err := repo.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("Failed to get task: %v", err)
	}
	if got.Title != "New" {
		t.Errorf("Expected title 'New', got '%s'", got.Title)
	}
	if got.Priority != models.PriorityLow || got.DueDate != "2099-01-01" || got.Status != models.StatusPending {
		t.Errorf("Untouched fields changed: %+v", got)
	}

	// Empty strings count as "not supplied"
	if err := repo.EditTask(ctx, task.ID, models.TaskEdit{Title: strPtr(""), Priority: strPtr("High")}); err != nil {
		t.Fatalf("Failed to edit task: %v", err)
	}
	got, _ = repo.GetTask(ctx, task.ID)
	if got.Title != "New" || got.Priority != models.PriorityHigh {
		t.Errorf("Expected title kept and priority High, got %+v", got)
	}
}

// TestEmptyEditIsNoop tests that an edit with nothing supplied does not write
func TestEmptyEditIsNoop(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	task := createTask(t, repo, "Same", "Medium", "2099-01-01")

	if err := repo.EditTask(context.Background(), task.ID, models.TaskEdit{}); err != nil {
		t.Fatalf("Empty edit should succeed: %v", err)
	}

	got, _ := repo.GetTask(context.Background(), task.ID)
	if !reflect.DeepEqual(got, task) {
		t.Errorf("Task changed after empty edit: %+v vs %+v", got, task)
	}
}

// TestUnknownIDIsNoop tests that mutations on a missing ID succeed and change nothing
func TestUnknownIDIsNoop(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	task := createTask(t, repo, "Keep me", "High", "2099-01-01")

	if err := repo.UpdateTaskStatus(ctx, 9999, models.StatusCompleted); err != nil {
		t.Errorf("UpdateTaskStatus on unknown id returned error: %v", err)
	}
	if err := repo.EditTask(ctx, 9999, models.TaskEdit{Title: strPtr("X")}); err != nil {
		t.Errorf("EditTask on unknown id returned error: %v", err)
	}
	if err := repo.DeleteTask(ctx, 9999); err != nil {
		t.Errorf("DeleteTask on unknown id returned error: %v", err)
	}

	tasks, _ := repo.ListTasks(ctx, models.Filter{})
	if len(tasks) != 1 || !reflect.DeepEqual(tasks[0], task) {
		t.Errorf("Existing task changed: %+v", tasks)
	}
}

// TestDeleteFinality tests that deleted tasks never come back
func TestDeleteFinality(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	gone := createTask(t, repo, "milk run", "Low", "2099-01-01")
	kept := createTask(t, repo, "milk again", "Low", "2099-01-01")

	if err := repo.DeleteTask(ctx, gone.ID); err != nil {
		t.Fatalf("Failed to delete task: %v", err)
	}
	if err := repo.DeleteTask(ctx, gone.ID); err != nil {
		t.Errorf("Re-delete should be a no-op, got %v", err)
	}

	listed, _ := repo.ListTasks(ctx, models.Filter{})
	searched, _ := repo.SearchTasks(ctx, "milk")
	for _, tasks := range [][]*models.Task{listed, searched} {
		if !reflect.DeepEqual(ids(tasks), []int{kept.ID}) {
			t.Errorf("Expected only task %d, got %v", kept.ID, ids(tasks))
		}
	}

	if _, err := repo.GetTask(ctx, gone.ID); !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}

	// IDs are never reused after a delete
	next := createTask(t, repo, "after", "Low", "2099-01-01")
	if next.ID <= kept.ID {
		t.Errorf("Expected new id above %d, got %d", kept.ID, next.ID)
	}
}

// TestSearchIgnoresCase tests substring matching with case folding
func TestSearchIgnoresCase(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	milk := createTask(t, repo, "Buy milk", "High", "2099-01-01")
	upper := createTask(t, repo, "MILKSHAKE", "Low", "2099-01-01")
	createTask(t, repo, "Walk dog", "Low", "2099-01-01")

	tasks, err := repo.SearchTasks(ctx, "Milk")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if want := []int{upper.ID, milk.ID}; !reflect.DeepEqual(ids(tasks), want) {
		t.Errorf("Expected %v, got %v", want, ids(tasks))
	}

	// LIKE wildcards are literal characters here
	none, _ := repo.SearchTasks(ctx, "%")
	if len(none) != 0 {
		t.Errorf("Expected no match for '%%', got %v", ids(none))
	}

	all, _ := repo.SearchTasks(ctx, "")
	if len(all) != 3 {
		t.Errorf("Empty keyword should match all 3 tasks, got %d", len(all))
	}
}

// TestSearchFoldsNonASCII tests case folding beyond ASCII letters
func TestSearchFoldsNonASCII(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	apples := createTask(t, repo, "ÄPFEL kaufen", "Low", "2099-01-01")
	eclair := createTask(t, repo, "Éclair bakery", "Low", "2099-01-01")

	tests := []struct {
		keyword string
		want    []int
	}{
		{"äpfel", []int{apples.ID}},
		{"ÄPFEL", []int{apples.ID}},
		{"éclair", []int{eclair.ID}},
		{"ÉCLAIR", []int{eclair.ID}},
		{"straße", nil},
	}

	for _, tt := range tests {
		tasks, err := repo.SearchTasks(ctx, tt.keyword)
		if err != nil {
			t.Fatalf("Failed to search %q: %v", tt.keyword, err)
		}
		if got := ids(tasks); len(got) != len(tt.want) || (len(got) > 0 && !reflect.DeepEqual(got, tt.want)) {
			t.Errorf("SearchTasks(%q) = %v, want %v", tt.keyword, got, tt.want)
		}
	}
}

// TestGetNotFound tests the lookup error for a missing ID
func TestGetNotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetTask(context.Background(), 42)
	if !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

// TestNullColumnsScanAsEmpty tests rows with NULL optional columns
func TestNullColumnsScanAsEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO tasks (title) VALUES ('bare')`)
	if err != nil {
		t.Fatalf("Failed to insert bare row: %v", err)
	}

	tasks, err := repo.ListTasks(context.Background(), models.Filter{})
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Priority != "" || tasks[0].DueDate != "" || tasks[0].Status != "" {
		t.Errorf("Expected empty optional fields, got %+v", tasks[0])
	}
	if tasks[0].CreatedAt.IsZero() {
		t.Error("Default created_at should be set by the schema")
	}
}
