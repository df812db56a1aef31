package mailer

import (
	"context"
	"fmt"
)

// Sender is the minimal interface an email provider must implement. It
// receives a fully-prepared Email and handles delivery.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// Email is one transactional message ready for sending. The pipeline
// sends one Email per resolved recipient.
type Email struct {
	Headers map[string]string
	To      string
	Subject string
	HTML    string
	Text    string
	From    string
	ReplyTo string
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" when a name is present, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
