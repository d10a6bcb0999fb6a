// Package calendar provides the half-open time windows used for wager
// aggregation. All functions are pure; windows are computed in the location
// carried by the input instant, so callers control the reporting timezone by
// normalizing instants before asking for a window.
package calendar

import "time"

// Window is a half-open instant range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window. An instant exactly at
// Start is inside; an instant exactly at End is not.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Midnight returns the start of the calendar day containing t, in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Day returns the calendar-day window containing t.
func Day(t time.Time) Window {
	start := Midnight(t)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// ISOWeek returns the ISO week window containing t: Monday 00:00:00 through
// the next Monday (exclusive), regardless of the locale's native week start.
func ISOWeek(t time.Time) Window {
	start := Midnight(t)
	switch dow := start.Weekday(); dow {
	case time.Sunday:
		start = start.AddDate(0, 0, -6)
	default:
		start = start.AddDate(0, 0, -(int(dow) - 1))
	}
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// Month returns the calendar-month window containing t.
func Month(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// MonthOf returns the window for the given calendar month (month is 1-12)
// in the given location.
func MonthOf(year int, month time.Month, loc *time.Location) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}
