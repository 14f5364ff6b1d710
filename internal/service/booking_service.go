package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"tatuagenda/internal/config"
	"tatuagenda/internal/entities"
	apperrors "tatuagenda/internal/errors"
)

const (
	defaultClientName  = "Novo Cliente"
	notInformed        = "Não informado"
	uploadFailedMarker = "(falha no upload da imagem de referência)"
)

// BookingService commits bookings to the studio calendar and mirrors them to
// the auxiliary systems. The calendar write is the only authoritative step:
// if it fails the booking fails, and once it succeeds nothing downstream can
// fail the booking anymore. Ledger and email problems are collected as
// per-system outcomes and returned as warnings.
type BookingService struct {
	Calendar CalendarAPI
	Ledger   LedgerAPI
	Files    FileStoreAPI
	Notifier EmailSender
	Phones   PhoneValidator
	Cfg      *config.Config
}

func NewBookingService(calendar CalendarAPI, ledger LedgerAPI, files FileStoreAPI, notifier EmailSender, phones PhoneValidator, cfg *config.Config) *BookingService {
	return &BookingService{
		Calendar: calendar,
		Ledger:   ledger,
		Files:    files,
		Notifier: notifier,
		Phones:   phones,
		Cfg:      cfg,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.BookingResult, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, s.Cfg.Location)
	if err != nil {
		return nil, apperrors.Validation("invalid date or time, expected YYYY-MM-DD and HH:MM")
	}

	ok, err := s.Phones.IsValidDialable(ctx, req.Phone, s.Cfg.PhoneRegion)
	if err != nil {
		log.Printf("Error validating phone %q: %v", req.Phone, err)
		return nil, apperrors.Validation("could not validate the phone number, please try again")
	}
	if !ok {
		return nil, apperrors.Validation("invalid phone number")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultClientName
	}
	idea := strings.TrimSpace(req.Idea)
	if idea == "" {
		idea = notInformed
	}

	var sideEffects []entities.SideEffectOutcome

	// The reference image goes up first because its link is embedded in the
	// event description. An upload failure degrades to a marker in the
	// description; it never blocks the booking. A failed share grant still
	// yields a link, and the link wins over the marker wherever it exists.
	referenceLink := ""
	referenceDetail := ""
	if req.Reference != nil {
		outcome, link := s.uploadReference(ctx, req.Reference)
		sideEffects = append(sideEffects, outcome)
		referenceLink = link
		if link != "" {
			referenceDetail = link
		} else if outcome.Failed() {
			referenceDetail = uploadFailedMarker
		}
	}

	end := start.Add(s.Cfg.Duration())
	event := entities.CalendarEvent{
		Summary:     fmt.Sprintf("Tatuagem - %s", name),
		Description: buildDescription(req.Phone, idea, referenceDetail),
		Start:       start,
		End:         end,
		TimeZone:    s.Cfg.TimeZone,
	}

	eventID, err := s.Calendar.InsertEvent(ctx, event)
	if err != nil {
		log.Printf("Error creating calendar event for %s %s: %v", req.Date, req.Time, err)
		return nil, apperrors.Upstream("could not create the booking on the calendar")
	}

	// From here on the booking is durable; ledger and notifier run in
	// isolation so one failing never keeps the other from running.
	sideEffects = append(sideEffects, s.appendToLedger(ctx, start, name, req.Phone, idea, referenceLink, eventID))
	sideEffects = append(sideEffects, s.notifyOperator(ctx, entities.BookingEmailData{
		ClientName:    name,
		ClientPhone:   req.Phone,
		Idea:          idea,
		ReferenceLink: referenceLink,
		DateFormatted: start.Format("02/01/2006"),
		TimeFormatted: start.Format("15:04"),
		EventID:       eventID,
	}))

	return &entities.BookingResult{
		EventID:        eventID,
		WhatsAppNumber: s.Cfg.WhatsAppNumber,
		SideEffects:    sideEffects,
	}, nil
}

func (s *BookingService) uploadReference(ctx context.Context, ref *entities.ReferenceImage) (entities.SideEffectOutcome, string) {
	if s.Files == nil {
		return entities.SideEffectOutcome{
			System: entities.SystemFileStore,
			Status: entities.StatusSucceeded,
			Detail: "skipped: file store not configured",
		}, ""
	}

	stored, err := s.Files.Upload(ctx, ref.Data, ref.Filename, ref.MimeType)
	if err != nil {
		log.Printf("Error uploading reference image %q: %v", ref.Filename, err)
		return entities.SideEffectOutcome{
			System: entities.SystemFileStore,
			Status: entities.StatusFailed,
			Detail: "reference image upload failed",
		}, ""
	}

	if err := s.Files.GrantPublicRead(ctx, stored.ID); err != nil {
		// The file exists and we have a link; it just may not open for the
		// operator. Keep the link but surface the problem.
		log.Printf("Error sharing reference image %s: %v", stored.ID, err)
		return entities.SideEffectOutcome{
			System: entities.SystemFileStore,
			Status: entities.StatusFailed,
			Detail: "reference image uploaded but could not be shared",
		}, stored.ViewLink
	}

	return entities.SideEffectOutcome{
		System: entities.SystemFileStore,
		Status: entities.StatusSucceeded,
	}, stored.ViewLink
}

func (s *BookingService) appendToLedger(ctx context.Context, start time.Time, name, phone, idea, referenceLink, eventID string) entities.SideEffectOutcome {
	if s.Ledger == nil {
		return entities.SideEffectOutcome{
			System: entities.SystemLedger,
			Status: entities.StatusSucceeded,
			Detail: "skipped: ledger not configured",
		}
	}

	empty, err := s.Ledger.IsEmpty(ctx)
	if err != nil {
		log.Printf("Error checking ledger state: %v", err)
		return entities.SideEffectOutcome{
			System: entities.SystemLedger,
			Status: entities.StatusFailed,
			Detail: "could not read the ledger",
		}
	}
	if empty {
		if err := s.Ledger.AppendRow(ctx, ledgerHeader()); err != nil {
			log.Printf("Error writing ledger header: %v", err)
			return entities.SideEffectOutcome{
				System: entities.SystemLedger,
				Status: entities.StatusFailed,
				Detail: "could not write the ledger header",
			}
		}
	}

	row := []string{
		start.Format("2006-01-02"),
		start.Format("15:04"),
		name,
		phone,
		idea,
		referenceLink,
		eventID,
		time.Now().In(s.Cfg.Location).Format(time.RFC3339),
	}
	if err := s.Ledger.AppendRow(ctx, row); err != nil {
		log.Printf("Error appending booking %s to ledger: %v", eventID, err)
		return entities.SideEffectOutcome{
			System: entities.SystemLedger,
			Status: entities.StatusFailed,
			Detail: "could not append the booking row",
		}
	}

	return entities.SideEffectOutcome{System: entities.SystemLedger, Status: entities.StatusSucceeded}
}

func (s *BookingService) notifyOperator(ctx context.Context, data entities.BookingEmailData) entities.SideEffectOutcome {
	if s.Notifier == nil || !s.Notifier.Enabled() || s.Cfg.OperatorEmail == "" {
		return entities.SideEffectOutcome{
			System: entities.SystemNotifier,
			Status: entities.StatusSucceeded,
			Detail: "skipped: notifier not configured",
		}
	}

	msg := entities.Email{
		To:        s.Cfg.OperatorEmail,
		Subject:   fmt.Sprintf("Novo agendamento - %s às %s", data.DateFormatted, data.TimeFormatted),
		PlainBody: bookingPlainBody(data),
		HTMLBody:  bookingHTMLBody(data),
	}
	if err := s.Notifier.Send(ctx, msg); err != nil {
		log.Printf("Error sending booking notification for %s: %v", data.EventID, err)
		return entities.SideEffectOutcome{
			System: entities.SystemNotifier,
			Status: entities.StatusFailed,
			Detail: "could not send the notification email",
		}
	}

	return entities.SideEffectOutcome{System: entities.SystemNotifier, Status: entities.StatusSucceeded}
}

func buildDescription(phone, idea, referenceDetail string) string {
	desc := fmt.Sprintf("Contato: %s\n\nIdeia da tatuagem: %s", phone, idea)
	if referenceDetail != "" {
		desc += fmt.Sprintf("\n\nImagem de referência: %s", referenceDetail)
	}
	return desc
}

func ledgerHeader() []string {
	return []string{"Data", "Hora", "Nome", "Telefone", "Ideia", "Referência", "Evento", "Criado em"}
}
