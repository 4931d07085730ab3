// Package deadline classifies due dates into urgency buckets and renders the
// matching display labels. Every function takes "today" as a parameter; the
// package never reads the live clock, so results are deterministic given
// (target, today, window).
package deadline

import (
	"fmt"
	"time"
)

// Classification buckets, in order of precedence.
const (
	StatusOverdue = "overdue"
	StatusDueSoon = "due_soon"
	StatusOK      = "ok"
)

// DefaultWindowDays is the reminder window used when none is configured.
const DefaultWindowDays = 15

// DateLayout is the calendar-date format used throughout the record stores.
const DateLayout = "2006-01-02"

// DaysUntil returns the whole calendar days from today until target.
// Time-of-day is discarded on both sides so a deadline later today never
// rounds down to "overdue".
func DaysUntil(target, today time.Time) int {
	t := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(n).Hours() / 24)
}

// Classify buckets a due date relative to today. The due-soon boundary is
// inclusive on both ends: a deadline falling today is due_soon, and so is one
// exactly windowDays out.
func Classify(target, today time.Time, windowDays int) string {
	days := DaysUntil(target, today)
	switch {
	case days < 0:
		return StatusOverdue
	case days <= windowDays:
		return StatusDueSoon
	default:
		return StatusOK
	}
}

// Label renders the human sentence for a due date: "Overdue by N day(s)",
// "Due today", or "Due in N day(s)".
func Label(target, today time.Time) string {
	days := DaysUntil(target, today)
	switch {
	case days < 0:
		return fmt.Sprintf("Overdue by %d %s", -days, plural(-days))
	case days == 0:
		return "Due today"
	default:
		return fmt.Sprintf("Due in %d %s", days, plural(days))
	}
}

func plural(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

// ParseDate parses a stored YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
