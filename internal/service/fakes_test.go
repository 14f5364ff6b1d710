package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tatuagenda/internal/config"
	"tatuagenda/internal/entities"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return &config.Config{
		TimeZone:            "America/Sao_Paulo",
		Location:            loc,
		WorkStartHour:       9,
		WorkEndHour:         21,
		SlotIntervalMinutes: 30,
		DurationMinutes:     60,
		BufferMinutes:       30,
		CalendarID:          "primary",
		PhoneRegion:         "BR",
		WhatsAppNumber:      "5511954480557",
		OperatorEmail:       "studio@example.com",
	}
}

type fakeCalendar struct {
	entries   []entities.CalendarEntry
	listErr   error
	insertErr error

	listCalls  int
	listedFrom time.Time
	listedTo   time.Time
	inserted   []entities.CalendarEvent
}

func (f *fakeCalendar) ListDay(ctx context.Context, from, to time.Time) ([]entities.CalendarEntry, error) {
	f.listCalls++
	f.listedFrom, f.listedTo = from, to
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

func (f *fakeCalendar) InsertEvent(ctx context.Context, ev entities.CalendarEvent) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.inserted = append(f.inserted, ev)
	return "evt-123", nil
}

type fakeLedger struct {
	empty      bool
	isEmptyErr error
	appendErr  error

	isEmptyCalls int
	rows         [][]string
}

func (f *fakeLedger) IsEmpty(ctx context.Context) (bool, error) {
	f.isEmptyCalls++
	if f.isEmptyErr != nil {
		return false, f.isEmptyErr
	}
	return f.empty, nil
}

func (f *fakeLedger) AppendRow(ctx context.Context, values []string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.rows = append(f.rows, values)
	return nil
}

type fakeFiles struct {
	stored    entities.StoredFile
	uploadErr error
	grantErr  error

	uploadedNames []string
	grantedIDs    []string
}

func (f *fakeFiles) Upload(ctx context.Context, data []byte, filename, mimeType string) (entities.StoredFile, error) {
	if f.uploadErr != nil {
		return entities.StoredFile{}, f.uploadErr
	}
	f.uploadedNames = append(f.uploadedNames, filename)
	return f.stored, nil
}

func (f *fakeFiles) GrantPublicRead(ctx context.Context, fileID string) error {
	if f.grantErr != nil {
		return f.grantErr
	}
	f.grantedIDs = append(f.grantedIDs, fileID)
	return nil
}

type fakeEmailSender struct {
	enabled bool
	sendErr error

	sent []entities.Email
}

func (f *fakeEmailSender) Enabled() bool { return f.enabled }

func (f *fakeEmailSender) Send(ctx context.Context, msg entities.Email) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakePhoneValidator struct {
	valid bool
	err   error

	checked []string
}

func (f *fakePhoneValidator) IsValidDialable(ctx context.Context, number, region string) (bool, error) {
	f.checked = append(f.checked, number)
	if f.err != nil {
		return false, f.err
	}
	return f.valid, nil
}
