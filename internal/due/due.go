// Package due derives presentation state from a task's due date.
// Nothing here is persisted; callers recompute it on every render
// because "today" moves.
package due

import (
	"time"

	"github.com/thenoetrevino/taskr/internal/models"
)

// DefaultSoonDays is the inclusive window, in days, for DueSoon
const DefaultSoonDays = 3

// Urgency classifies a due date relative to today
type Urgency int

const (
	// Unknown means the due date is missing or malformed
	Unknown Urgency = iota
	None
	DueSoon
	Overdue
)

func (u Urgency) String() string {
	switch u {
	case Overdue:
		return "overdue"
	case DueSoon:
		return "due soon"
	case None:
		return ""
	default:
		return "no due date"
	}
}

// Tier is the styling class of a priority
type Tier int

const (
	TierOther Tier = iota
	TierLow
	TierMedium
	TierHigh
)

// PriorityTier maps a priority to its styling tier
func PriorityTier(p models.Priority) Tier {
	switch p {
	case models.PriorityHigh:
		return TierHigh
	case models.PriorityMedium:
		return TierMedium
	case models.PriorityLow:
		return TierLow
	default:
		return TierOther
	}
}

// DaysUntil returns the number of calendar days from today to the due date.
// ok is false when dueDate does not parse.
func DaysUntil(dueDate string, today time.Time) (days int, ok bool) {
	d, err := models.ParseDueDate(dueDate)
	if err != nil {
		return 0, false
	}
	return calendarDays(dateOf(today), d), true
}

// Classify returns the urgency of dueDate relative to today.
// soonDays <= 0 falls back to DefaultSoonDays.
func Classify(dueDate string, today time.Time, soonDays int) Urgency {
	if soonDays <= 0 {
		soonDays = DefaultSoonDays
	}

	days, ok := DaysUntil(dueDate, today)
	switch {
	case !ok:
		return Unknown
	case days < 0:
		return Overdue
	case days <= soonDays:
		return DueSoon
	default:
		return None
	}
}

// Reminders groups the tasks that need attention today
type Reminders struct {
	Overdue  []*models.Task
	DueToday []*models.Task
}

// Empty reports whether there is nothing to remind about
func (r Reminders) Empty() bool {
	return len(r.Overdue) == 0 && len(r.DueToday) == 0
}

// Collect splits tasks into overdue and due-today groups.
// Completed tasks and tasks without a valid due date are skipped.
func Collect(tasks []*models.Task, now time.Time) Reminders {
	r := Reminders{Overdue: []*models.Task{}, DueToday: []*models.Task{}}
	for _, t := range tasks {
		if t.IsCompleted() {
			continue
		}
		days, ok := DaysUntil(t.DueDate, now)
		if !ok {
			continue
		}
		switch {
		case days == 0:
			r.DueToday = append(r.DueToday, t)
		case days < 0:
			r.Overdue = append(r.Overdue, t)
		}
	}
	return r
}

func dateOf(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// calendarDays counts whole days between two local midnights.
// Rounding absorbs the hour gained or lost across a DST change.
func calendarDays(from, to time.Time) int {
	hours := to.Sub(from).Hours()
	if hours < 0 {
		return -int(-hours/24 + 0.5)
	}
	return int(hours/24 + 0.5)
}
