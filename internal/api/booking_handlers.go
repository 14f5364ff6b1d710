package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tatuagenda/internal/entities"
	apperrors "tatuagenda/internal/errors"
)

// maxReferenceImageBytes caps the multipart form size for booking requests.
const maxReferenceImageBytes = 10 << 20

type AvailabilityQuerier interface {
	AvailableSlots(ctx context.Context, date string) ([]string, error)
}

type BookingCreator interface {
	CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.BookingResult, error)
}

type BookingHandler struct {
	Availability AvailabilityQuerier
	Bookings     BookingCreator
}

func NewBookingHandler(availability AvailabilityQuerier, bookings BookingCreator) *BookingHandler {
	return &BookingHandler{Availability: availability, Bookings: bookings}
}

func (h *BookingHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, http.StatusBadRequest, "missing date parameter")
		return
	}

	slots, err := h.Availability.AvailableSlots(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if slots == nil {
		slots = []string{}
	}
	writeJSON(w, http.StatusOK, slots)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBookingRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.Bookings.CreateBooking(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := CreateBookingResponse{
		EventID:        result.EventID,
		WhatsAppNumber: result.WhatsAppNumber,
		Message:        "Agendamento criado com sucesso!",
	}
	for _, outcome := range result.SideEffects {
		if outcome.Failed() {
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("%s: %s", outcome.System, outcome.Detail))
		}
	}
	writeJSON(w, http.StatusCreated, resp)
}

// decodeBookingRequest accepts multipart form data (the booking form, with
// an optional reference image) or a plain JSON body.
func decodeBookingRequest(r *http.Request) (*entities.BookingRequest, error) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var body CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, err
		}
		return &entities.BookingRequest{
			Date:  body.Date,
			Time:  body.Time,
			Name:  body.Name,
			Phone: body.Phone,
			Idea:  body.Idea,
		}, nil
	}

	if err := r.ParseMultipartForm(maxReferenceImageBytes); err != nil {
		return nil, err
	}
	req := &entities.BookingRequest{
		Date:  r.FormValue("date"),
		Time:  r.FormValue("time"),
		Name:  r.FormValue("name"),
		Phone: r.FormValue("phone"),
		Idea:  r.FormValue("idea"),
	}

	file, header, err := r.FormFile("reference")
	if err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, err
		}
		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		req.Reference = &entities.ReferenceImage{
			Filename: header.Filename,
			MimeType: mimeType,
			Data:     data,
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		return nil, err
	}

	return req, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		writeError(w, httpErr.Code, httpErr.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
