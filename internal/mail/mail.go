// Package mail delivers transactional email, currently only the contact-form
// forward to the studio inbox.
package mail

import "context"

// Message is a single outbound email.
type Message struct {
	Subject string
	HTML    string
	ReplyTo string
}

// Sender delivers a message to the configured recipient.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
