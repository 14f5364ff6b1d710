package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"tatuagenda/internal/config"
	"tatuagenda/internal/entities"
)

// AgendaService emails the operator tomorrow's agenda. It runs from a cron
// schedule wired in main; failures are logged by the caller, never retried.
type AgendaService struct {
	Calendar CalendarAPI
	Notifier EmailSender
	Cfg      *config.Config
}

func NewAgendaService(calendar CalendarAPI, notifier EmailSender, cfg *config.Config) *AgendaService {
	return &AgendaService{Calendar: calendar, Notifier: notifier, Cfg: cfg}
}

func (s *AgendaService) SendDailyDigest(ctx context.Context) error {
	if s.Notifier == nil || !s.Notifier.Enabled() || s.Cfg.OperatorEmail == "" {
		log.Println("Agenda digest: notifier not configured, skipping.")
		return nil
	}

	now := time.Now().In(s.Cfg.Location)
	tomorrow := now.AddDate(0, 0, 1)
	dayStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, s.Cfg.Location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	entries, err := s.Calendar.ListDay(ctx, dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("agenda digest: failed to list events: %w", err)
	}
	if len(entries) == 0 {
		log.Printf("Agenda digest: no events on %s, nothing to send.", dayStart.Format("2006-01-02"))
		return nil
	}

	dateFormatted := dayStart.Format("02/01/2006")
	msg := entities.Email{
		To:        s.Cfg.OperatorEmail,
		Subject:   fmt.Sprintf("Agenda de amanhã - %s", dateFormatted),
		PlainBody: digestPlainBody(dateFormatted, entries),
	}
	if err := s.Notifier.Send(ctx, msg); err != nil {
		return fmt.Errorf("agenda digest: failed to send email: %w", err)
	}

	log.Printf("Agenda digest sent for %s (%d events).", dayStart.Format("2006-01-02"), len(entries))
	return nil
}
