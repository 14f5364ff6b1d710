package service

import (
	"time"

	"tatuagenda/internal/entities"
)

// ComputeAvailableSlots returns the free start times of a day as ordered
// "HH:MM" strings in the window's time zone.
//
// Candidates are generated by stepping the work window by slotInterval;
// generation stops as soon as a session would run past closing time. Each
// busy interval has buffer added to its end (turnaround time after a
// session) and a candidate is dropped iff it truly overlaps an extended
// interval under half-open semantics: touching edges do not conflict. Busy
// intervals may arrive unsorted, overlapping, or partially filled in
// (all-day calendar blocks have no concrete times); entries without a start
// or end are skipped rather than blanking the whole day.
func ComputeAvailableSlots(window entities.WorkWindow, slotInterval, duration, buffer time.Duration, busy []entities.BusyInterval) []string {
	effective := make([]entities.BusyInterval, 0, len(busy))
	for _, b := range busy {
		if b.Start.IsZero() || b.End.IsZero() {
			continue
		}
		effective = append(effective, entities.BusyInterval{Start: b.Start, End: b.End.Add(buffer)})
	}

	loc := window.Start.Location()
	slots := []string{}
	for start := window.Start; ; start = start.Add(slotInterval) {
		end := start.Add(duration)
		if end.After(window.End) {
			break
		}
		if !overlapsAny(start, end, effective) {
			slots = append(slots, start.In(loc).Format("15:04"))
		}
	}
	return slots
}

// overlapsAny reports whether [start, end) intersects any busy interval.
// Intervals are half-open, so end == busy.Start is not a conflict.
func overlapsAny(start, end time.Time, busy []entities.BusyInterval) bool {
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}
