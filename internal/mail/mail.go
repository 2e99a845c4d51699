package mail

import (
	"context"
	"log"
)

// Message is a single outbound email. HTML is the full body; there is no
// plain-text alternative because every recipient path is a phone browser.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers one message and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Disabled logs instead of sending. Used when RESEND_API_KEY is unset so
// local development works without a provider account.
type Disabled struct{}

func (Disabled) Send(_ context.Context, msg Message) (string, error) {
	log.Printf("mail disabled, dropping message to=%s subject=%q", msg.To, msg.Subject)
	return "", nil
}
