// Package email sends the legacy path's notification emails over SMTP:
// an admin notification and a user acknowledgment per submission.
// Delivery is best-effort; the intake pipeline never fails a request
// because a send failed.
package email

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/digiserv/backend/subm"
)

// Mailer sends both notification messages for a stored submission.
type Mailer interface {
	SendSubmissionNotifications(ctx context.Context, s *subm.Submission) error
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// To receives admin notifications; falls back to Username.
	To string
}

type SMTPMailer struct {
	client *mail.Client
	from   string
	to     string
}

func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	to := cfg.To
	if to == "" {
		to = cfg.Username
	}
	return &SMTPMailer{client: client, from: cfg.Username, to: to}, nil
}

// SendSubmissionNotifications sends the admin notification first, then
// the user auto-reply. The first failure aborts and is returned.
func (m *SMTPMailer) SendSubmissionNotifications(ctx context.Context, s *subm.Submission) error {
	adminMsg, err := m.adminNotification(s)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, adminMsg); err != nil {
		return fmt.Errorf("failed to send admin notification: %w", err)
	}

	userMsg, err := m.userAutoReply(s)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, userMsg); err != nil {
		return fmt.Errorf("failed to send user auto-reply: %w", err)
	}
	return nil
}

func (m *SMTPMailer) adminNotification(s *subm.Submission) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat("Digital Services Website", m.from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		return nil, fmt.Errorf("invalid admin address: %w", err)
	}
	if err := msg.ReplyTo(s.Email); err != nil {
		return nil, fmt.Errorf("invalid reply-to address: %w", err)
	}
	msg.Subject(fmt.Sprintf("New Contact Form: %s — %s", s.Subject(), s.Name))

	body, err := renderAdminNotification(s)
	if err != nil {
		return nil, err
	}
	msg.SetBodyString(mail.TypeTextHTML, body)
	return msg, nil
}

func (m *SMTPMailer) userAutoReply(s *subm.Submission) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat("Digital Services Support", m.from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(s.Email); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject("We've received your message — Digital Services")

	body, err := renderUserAutoReply(s)
	if err != nil {
		return nil, err
	}
	msg.SetBodyString(mail.TypeTextHTML, body)
	return msg, nil
}
