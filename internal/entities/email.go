package entities

// Email is an operator-facing notification message.
type Email struct {
	To        string
	ToName    string
	Subject   string
	PlainBody string
	HTMLBody  string
}

// BookingEmailData feeds the operator notification templates.
type BookingEmailData struct {
	ClientName    string
	ClientPhone   string
	Idea          string
	ReferenceLink string
	DateFormatted string
	TimeFormatted string
	EventID       string
}
