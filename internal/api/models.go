package api

// Booking
type CreateBookingRequest struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Idea  string `json:"idea"`
}

type CreateBookingResponse struct {
	EventID        string   `json:"event_id"`
	WhatsAppNumber string   `json:"whatsapp_number"`
	Message        string   `json:"message"`
	Warnings       []string `json:"warnings,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
