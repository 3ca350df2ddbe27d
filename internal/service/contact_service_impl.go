package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/adore/backend/internal/mail"
	"github.com/adore/backend/internal/model"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	sender mail.Sender
}

// NewContactService creates a ContactService that forwards submissions
// through the given mail sender.
func NewContactService(sender mail.Sender) ContactService {
	return &contactServiceImpl{sender: sender}
}

// Submit renders the contact request as an email and sends it. The sender's
// reply-to is set to the visitor's address so the studio can answer directly.
func (s *contactServiceImpl) Submit(ctx context.Context, req *model.ContactRequest) error {
	subject := "New contact request"
	if req.Name != "" {
		subject = fmt.Sprintf("New contact request from %s", req.Name)
	}
	return s.sender.Send(ctx, mail.Message{
		Subject: subject,
		HTML:    renderContactEmail(req),
		ReplyTo: req.Email,
	})
}

// renderContactEmail builds the HTML body for the inbox forward. All visitor
// input is escaped.
func renderContactEmail(req *model.ContactRequest) string {
	row := func(label, value string) string {
		if value == "" {
			return ""
		}
		return fmt.Sprintf("<p><strong>%s:</strong> %s</p>\n", label, html.EscapeString(value))
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">`)
	b.WriteString("\n<h2>New contact request</h2>\n")
	b.WriteString(row("Name", req.Name))
	b.WriteString(row("Email", req.Email))
	b.WriteString(row("Phone", req.Phone))
	b.WriteString(row("Company", req.Company))
	b.WriteString(row("Interested in", req.Interest))
	b.WriteString(row("Message", req.Message))
	b.WriteString("</div>")
	return b.String()
}
