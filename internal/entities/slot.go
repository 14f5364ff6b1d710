package entities

import "time"

// BusyInterval is an occupied span on the studio calendar. Events without a
// concrete start/end (all-day blocks) come through with zero times and are
// skipped by the availability engine.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CalendarEntry is one event as read from the calendar.
type CalendarEntry struct {
	Summary string    `json:"summary"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// WorkWindow is the bookable span of a single day, in the studio's time zone.
type WorkWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWorkWindow builds the bookable window for the given day between
// startHour and endHour, wall-clock in loc.
func NewWorkWindow(day time.Time, startHour, endHour int, loc *time.Location) WorkWindow {
	return WorkWindow{
		Start: time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, loc),
		End:   time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, loc),
	}
}
