package service

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"tatuagenda/internal/entities"
)

// SendGridSender sends operator emails through SendGrid. When no API key or
// from-address is configured the sender is disabled; callers check Enabled
// and record a no-op instead of failing.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridSender(apiKey, fromEmail, fromName string) *SendGridSender {
	if apiKey == "" || fromEmail == "" {
		log.Println("WARNING: SendGrid is not configured. Notification emails will be skipped.")
		return &SendGridSender{}
	}
	if fromName == "" {
		fromName = "Tatuagenda"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGridSender) Enabled() bool {
	return s.client != nil
}

func (s *SendGridSender) Send(ctx context.Context, msg entities.Email) error {
	if s.client == nil {
		return fmt.Errorf("sendgrid is not configured")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	htmlBody := msg.HTMLBody
	if htmlBody == "" {
		htmlBody = msg.PlainBody
	}
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainBody, htmlBody)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		log.Printf("SendGrid returned status %d for email to %s: %s", response.StatusCode, msg.To, response.Body)
		return fmt.Errorf("SendGrid returned non-success status %d", response.StatusCode)
	}

	log.Printf("Email sent to %s (subject: %s). Status: %d", msg.To, msg.Subject, response.StatusCode)
	return nil
}
