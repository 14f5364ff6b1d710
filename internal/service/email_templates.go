package service

import (
	"fmt"
	"html"
	"strings"

	"tatuagenda/internal/entities"
)

func bookingPlainBody(data entities.BookingEmailData) string {
	body := fmt.Sprintf(
		"Novo agendamento confirmado.\n\n"+
			"Data: %s\n"+
			"Horário: %s\n"+
			"Cliente: %s\n"+
			"Contato: %s\n"+
			"Ideia da tatuagem: %s\n",
		data.DateFormatted, data.TimeFormatted, data.ClientName, data.ClientPhone, data.Idea,
	)
	if data.ReferenceLink != "" {
		body += fmt.Sprintf("Imagem de referência: %s\n", data.ReferenceLink)
	}
	body += fmt.Sprintf("\nEvento na agenda: %s\n", data.EventID)
	return body
}

func bookingHTMLBody(data entities.BookingEmailData) string {
	var b strings.Builder
	b.WriteString("<h2>Novo agendamento confirmado</h2>")
	b.WriteString("<ul>")
	fmt.Fprintf(&b, "<li><strong>Data:</strong> %s</li>", html.EscapeString(data.DateFormatted))
	fmt.Fprintf(&b, "<li><strong>Horário:</strong> %s</li>", html.EscapeString(data.TimeFormatted))
	fmt.Fprintf(&b, "<li><strong>Cliente:</strong> %s</li>", html.EscapeString(data.ClientName))
	fmt.Fprintf(&b, "<li><strong>Contato:</strong> %s</li>", html.EscapeString(data.ClientPhone))
	fmt.Fprintf(&b, "<li><strong>Ideia:</strong> %s</li>", html.EscapeString(data.Idea))
	if data.ReferenceLink != "" {
		fmt.Fprintf(&b, `<li><strong>Referência:</strong> <a href="%s">abrir imagem</a></li>`, html.EscapeString(data.ReferenceLink))
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p>Evento na agenda: %s</p>", html.EscapeString(data.EventID))
	return b.String()
}

func digestPlainBody(dateFormatted string, entries []entities.CalendarEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Agenda de %s:\n\n", dateFormatted)
	for _, e := range entries {
		summary := e.Summary
		if summary == "" {
			summary = "(sem título)"
		}
		if e.Start.IsZero() {
			fmt.Fprintf(&b, "- dia inteiro: %s\n", summary)
			continue
		}
		fmt.Fprintf(&b, "- %s às %s: %s\n", e.Start.Format("15:04"), e.End.Format("15:04"), summary)
	}
	return b.String()
}
