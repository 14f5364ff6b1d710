package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatuagenda/internal/entities"
	apperrors "tatuagenda/internal/errors"
)

type stubAvailability struct {
	slots []string
	err   error
}

func (s *stubAvailability) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	return s.slots, s.err
}

type stubBookings struct {
	result *entities.BookingResult
	err    error

	received *entities.BookingRequest
}

func (s *stubBookings) CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.BookingResult, error) {
	s.received = req
	return s.result, s.err
}

func TestGetAvailableSlots_MissingDate(t *testing.T) {
	h := NewBookingHandler(&stubAvailability{}, &stubBookings{})

	rec := httptest.NewRecorder()
	h.GetAvailableSlots(rec, httptest.NewRequest("GET", "/api/slots", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailableSlots_ReturnsOrderedList(t *testing.T) {
	h := NewBookingHandler(&stubAvailability{slots: []string{"09:00", "09:30", "13:30"}}, &stubBookings{})

	rec := httptest.NewRecorder()
	h.GetAvailableSlots(rec, httptest.NewRequest("GET", "/api/slots?date=2026-03-10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var slots []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slots))
	assert.Equal(t, []string{"09:00", "09:30", "13:30"}, slots)
}

func TestGetAvailableSlots_EmptyDayIsAnArray(t *testing.T) {
	h := NewBookingHandler(&stubAvailability{slots: nil}, &stubBookings{})

	rec := httptest.NewRecorder()
	h.GetAvailableSlots(rec, httptest.NewRequest("GET", "/api/slots?date=2026-03-10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestGetAvailableSlots_UpstreamFailure(t *testing.T) {
	h := NewBookingHandler(&stubAvailability{err: apperrors.Upstream("could not read the calendar")}, &stubBookings{})

	rec := httptest.NewRecorder()
	h.GetAvailableSlots(rec, httptest.NewRequest("GET", "/api/slots?date=2026-03-10", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "could not read the calendar", resp.Error)
}

func TestCreateBooking_JSONBody(t *testing.T) {
	bookings := &stubBookings{result: &entities.BookingResult{
		EventID:        "evt-123",
		WhatsAppNumber: "5511954480557",
	}}
	h := NewBookingHandler(&stubAvailability{}, bookings)

	body := `{"date":"2026-03-10","time":"14:00","name":"João","phone":"(11) 95448-0557","idea":"Fênix"}`
	req := httptest.NewRequest("POST", "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, bookings.received)
	assert.Equal(t, "2026-03-10", bookings.received.Date)
	assert.Equal(t, "João", bookings.received.Name)
	assert.Nil(t, bookings.received.Reference)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "evt-123", resp.EventID)
	assert.Equal(t, "5511954480557", resp.WhatsAppNumber)
	assert.Empty(t, resp.Warnings)
}

func TestCreateBooking_MultipartWithReference(t *testing.T) {
	bookings := &stubBookings{result: &entities.BookingResult{EventID: "evt-123"}}
	h := NewBookingHandler(&stubAvailability{}, bookings)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("date", "2026-03-10"))
	require.NoError(t, mw.WriteField("time", "14:00"))
	require.NoError(t, mw.WriteField("name", "João"))
	require.NoError(t, mw.WriteField("phone", "(11) 95448-0557"))
	require.NoError(t, mw.WriteField("idea", "Fênix"))
	fw, err := mw.CreateFormFile("reference", "fenix.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/bookings", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, bookings.received.Reference)
	assert.Equal(t, "fenix.png", bookings.received.Reference.Filename)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, bookings.received.Reference.Data)
}

func TestCreateBooking_MultipartWithoutReference(t *testing.T) {
	bookings := &stubBookings{result: &entities.BookingResult{EventID: "evt-123"}}
	h := NewBookingHandler(&stubAvailability{}, bookings)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("date", "2026-03-10"))
	require.NoError(t, mw.WriteField("time", "14:00"))
	require.NoError(t, mw.WriteField("phone", "(11) 95448-0557"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/bookings", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, bookings.received.Reference)
}

func TestCreateBooking_SideEffectWarnings(t *testing.T) {
	bookings := &stubBookings{result: &entities.BookingResult{
		EventID: "evt-123",
		SideEffects: []entities.SideEffectOutcome{
			{System: entities.SystemLedger, Status: entities.StatusFailed, Detail: "could not append the booking row"},
			{System: entities.SystemNotifier, Status: entities.StatusSucceeded},
		},
	}}
	h := NewBookingHandler(&stubAvailability{}, bookings)

	req := httptest.NewRequest("POST", "/api/bookings", strings.NewReader(`{"date":"2026-03-10","time":"14:00","phone":"(11) 95448-0557"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	// Side-effect failures never change the status, only the warnings.
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "ledger")
}

func TestCreateBooking_ValidationFailure(t *testing.T) {
	bookings := &stubBookings{err: apperrors.Validation("invalid phone number")}
	h := NewBookingHandler(&stubAvailability{}, bookings)

	req := httptest.NewRequest("POST", "/api/bookings", strings.NewReader(`{"date":"2026-03-10","time":"14:00","phone":"123"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBooking_AuthoritativeFailure(t *testing.T) {
	bookings := &stubBookings{err: apperrors.Upstream("could not create the booking on the calendar")}
	h := NewBookingHandler(&stubAvailability{}, bookings)

	req := httptest.NewRequest("POST", "/api/bookings", strings.NewReader(`{"date":"2026-03-10","time":"14:00","phone":"(11) 95448-0557"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCreateBooking_MalformedJSON(t *testing.T) {
	h := NewBookingHandler(&stubAvailability{}, &stubBookings{})

	req := httptest.NewRequest("POST", "/api/bookings", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
