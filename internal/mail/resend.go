package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers email through the Resend API. With an empty API key
// it runs in dev mode: messages are logged instead of sent.
type ResendSender struct {
	client *resend.Client
	from   string
	to     string
}

// NewResendSender creates a ResendSender. from is the verified sender
// address, to the studio inbox receiving contact-form mail.
func NewResendSender(apiKey, from, to string) *ResendSender {
	s := &ResendSender{from: from, to: to}
	if apiKey != "" {
		s.client = resend.NewClient(apiKey)
	}
	return s
}

var _ Sender = (*ResendSender)(nil)

// Send delivers the message, or logs it when no API key is configured.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	if s.client == nil {
		slog.Info("RESEND_API_KEY not set, skipping email send",
			"subject", msg.Subject, "reply_to", msg.ReplyTo)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	slog.Info("email sent", "id", sent.Id, "subject", msg.Subject)
	return nil
}
