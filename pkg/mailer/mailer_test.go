package mailer

import (
	"testing"

	"github.com/An2rei-84/skystore/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestNewReturnsNopWhenDisabled(t *testing.T) {
	m := New(&config.EmailConfig{Enabled: false})
	assert.IsType(t, &Nop{}, m)
	assert.NoError(t, m.Send("subject", "body", []string{"a@example.com"}))
}

func TestNewReturnsSMTPWhenEnabled(t *testing.T) {
	m := New(&config.EmailConfig{Enabled: true, Host: "smtp.example.com", Port: "587"})
	assert.IsType(t, &SMTP{}, m)
}

func TestSMTPRejectsEmptyRecipients(t *testing.T) {
	m := &SMTP{cfg: &config.EmailConfig{Host: "smtp.example.com", Port: "587"}}
	assert.Error(t, m.Send("subject", "body", nil))
}
