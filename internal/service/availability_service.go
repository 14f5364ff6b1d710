package service

import (
	"context"
	"log"
	"time"

	"tatuagenda/internal/config"
	"tatuagenda/internal/entities"
	apperrors "tatuagenda/internal/errors"
)

type AvailabilityService struct {
	Calendar CalendarAPI
	Cfg      *config.Config
}

func NewAvailabilityService(calendar CalendarAPI, cfg *config.Config) *AvailabilityService {
	return &AvailabilityService{Calendar: calendar, Cfg: cfg}
}

// AvailableSlots returns the free start times for the given date (YYYY-MM-DD)
// as ordered HH:MM strings. A calendar failure fails the whole query: a
// best-effort list could offer an already-taken slot.
func (s *AvailabilityService) AvailableSlots(ctx context.Context, dateStr string) ([]string, error) {
	day, err := time.ParseInLocation("2006-01-02", dateStr, s.Cfg.Location)
	if err != nil {
		return nil, apperrors.Validation("invalid date, expected YYYY-MM-DD")
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.Cfg.Location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	entries, err := s.Calendar.ListDay(ctx, dayStart, dayEnd)
	if err != nil {
		log.Printf("Error listing calendar events for %s: %v", dateStr, err)
		return nil, apperrors.Upstream("could not read the calendar")
	}

	busy := make([]entities.BusyInterval, 0, len(entries))
	for _, e := range entries {
		busy = append(busy, entities.BusyInterval{Start: e.Start, End: e.End})
	}

	window := entities.NewWorkWindow(day, s.Cfg.WorkStartHour, s.Cfg.WorkEndHour, s.Cfg.Location)
	return ComputeAvailableSlots(window, s.Cfg.SlotInterval(), s.Cfg.Duration(), s.Cfg.Buffer(), busy), nil
}
