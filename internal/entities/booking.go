package entities

import "time"

// ReferenceImage is an optional client-supplied image attached to a booking.
type ReferenceImage struct {
	Filename string
	MimeType string
	Data     []byte
}

type BookingRequest struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Idea      string `json:"idea"`
	Reference *ReferenceImage
}

// CalendarEvent is the authoritative event submitted to the calendar.
type CalendarEvent struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
}

// StoredFile identifies an uploaded reference image in the file store.
type StoredFile struct {
	ID       string
	ViewLink string
}

// BookingResult is what a successful booking returns. SideEffects lists the
// outcome of every auxiliary write; none of them affect the booking itself.
type BookingResult struct {
	EventID        string
	WhatsAppNumber string
	SideEffects    []SideEffectOutcome
}
