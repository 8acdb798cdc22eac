// Package mail sends transactional email through Resend.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("email is not configured")

// Message is a single outbound email.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender delivers Messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Resend implements Sender with the Resend API.
type Resend struct {
	client *resend.Client
	from   string
	log    zerolog.Logger
}

var _ Sender = (*Resend)(nil)

// NewResend returns a Resend sender. With an empty apiKey every Send returns ErrDisabled.
func NewResend(apiKey, from string, httpClient *http.Client, log zerolog.Logger) *Resend {
	r := &Resend{from: from, log: log.With().Str("component", "mail").Logger()}
	if apiKey != "" {
		r.client = resend.NewCustomClient(httpClient, apiKey)
	}
	return r
}

func (r *Resend) Send(ctx context.Context, msg Message) error {
	if r.client == nil {
		return ErrDisabled
	}
	if len(msg.To) == 0 {
		return errors.New("email has no recipients")
	}
	resp, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    r.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("send %q: %w", msg.Subject, err)
	}
	r.log.Info().Str("email_id", resp.Id).Str("subject", msg.Subject).Msg("email sent")
	return nil
}
