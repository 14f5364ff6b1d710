package repository

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"tatuagenda/internal/entities"
)

type CalendarRepository struct {
	svc        *calendar.Service
	calendarID string
	loc        *time.Location
}

func NewCalendarRepository(svc *calendar.Service, calendarID string, loc *time.Location) *CalendarRepository {
	return &CalendarRepository{svc: svc, calendarID: calendarID, loc: loc}
}

// ListDay returns the events between from and to. All-day events carry no
// dateTime and come back with zero Start/End; callers decide how to treat
// them. An API failure is returned as an error, never as an empty day.
func (r *CalendarRepository) ListDay(ctx context.Context, from, to time.Time) ([]entities.CalendarEntry, error) {
	res, err := r.svc.Events.List(r.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("error listing calendar events: %w", err)
	}

	entries := make([]entities.CalendarEntry, 0, len(res.Items))
	for _, ev := range res.Items {
		entry := entities.CalendarEntry{Summary: ev.Summary}
		if ev.Start != nil && ev.Start.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, ev.Start.DateTime); err == nil {
				entry.Start = t.In(r.loc)
			}
		}
		if ev.End != nil && ev.End.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, ev.End.DateTime); err == nil {
				entry.End = t.In(r.loc)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// InsertEvent submits the authoritative booking event and returns its id.
func (r *CalendarRepository) InsertEvent(ctx context.Context, ev entities.CalendarEvent) (string, error) {
	event := &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start: &calendar.EventDateTime{
			DateTime: ev.Start.Format("2006-01-02T15:04:05"),
			TimeZone: ev.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: ev.End.Format("2006-01-02T15:04:05"),
			TimeZone: ev.TimeZone,
		},
	}

	created, err := r.svc.Events.Insert(r.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("error inserting calendar event: %w", err)
	}
	return created.Id, nil
}
