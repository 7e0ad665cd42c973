package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/southerntents/quote-backend/pkg/config"
)

// SMTPSender delivers messages to a fixed business recipient over SMTP.
type SMTPSender struct {
	client    *mail.Client
	from      string
	fromName  string
	recipient string
}

// NewSMTPSender builds the SMTP client from config. Credentials are optional
// so local smoke tests can target an unauthenticated relay.
func NewSMTPSender(cfg config.SMTPConfig, recipient string) (*SMTPSender, error) {
	if strings.TrimSpace(recipient) == "" {
		return nil, errors.New("recipient address is required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("building smtp client: %w", err)
	}

	return &SMTPSender{
		client:    client,
		from:      cfg.From,
		fromName:  cfg.FromName,
		recipient: recipient,
	}, nil
}

// Send composes the MIME message and performs a single delivery attempt.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.FromFormat(s.fromName, s.from); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := m.To(s.recipient); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("set reply-to: %w", err)
		}
	}
	m.Subject(msg.Subject)
	// Plain text body first so the HTML alternative is preferred by clients.
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)

	return s.client.DialAndSendWithContext(ctx, m)
}
