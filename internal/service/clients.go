package service

import (
	"context"
	"time"

	"tatuagenda/internal/entities"
)

// Capability interfaces for the external systems the services talk to. The
// concrete implementations live in internal/repository (Google APIs) and in
// this package (SendGrid, Twilio); tests use hand-written fakes.

// CalendarAPI is the system of record. ListDay must surface failures
// distinctly from an empty day.
type CalendarAPI interface {
	ListDay(ctx context.Context, from, to time.Time) ([]entities.CalendarEntry, error)
	InsertEvent(ctx context.Context, ev entities.CalendarEvent) (string, error)
}

// LedgerAPI mirrors bookings into a tabular ledger.
type LedgerAPI interface {
	IsEmpty(ctx context.Context) (bool, error)
	AppendRow(ctx context.Context, values []string) error
}

// FileStoreAPI archives client reference images.
type FileStoreAPI interface {
	Upload(ctx context.Context, data []byte, filename, mimeType string) (entities.StoredFile, error)
	GrantPublicRead(ctx context.Context, fileID string) error
}

// EmailSender notifies the studio operator. Enabled is false when no
// credential is configured; callers then record a no-op instead of failing.
type EmailSender interface {
	Enabled() bool
	Send(ctx context.Context, msg entities.Email) error
}

// PhoneValidator checks that a client phone number is dialable for the
// configured region.
type PhoneValidator interface {
	IsValidDialable(ctx context.Context, number, region string) (bool, error)
}
