package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/An2rei-84/skystore/pkg/config"
)

// Mailer delivers outbound email. Callers are expected to treat delivery
// failure as non-fatal: a failed send must never roll back the operation
// that triggered it.
type Mailer interface {
	Send(subject, body string, to []string) error
}

// New returns an SMTP-backed mailer, or a no-op mailer when outbound
// email is disabled in configuration.
func New(cfg *config.EmailConfig) Mailer {
	if !cfg.Enabled {
		return &Nop{}
	}
	return &SMTP{cfg: cfg}
}

// SMTP sends mail through a plain SMTP relay
type SMTP struct {
	cfg *config.EmailConfig
}

func (m *SMTP) Send(subject, body string, to []string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.Sender,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.Sender, to, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

// Nop discards all mail. Used when EMAIL_ENABLED is false.
type Nop struct{}

func (m *Nop) Send(subject, body string, to []string) error {
	return nil
}
