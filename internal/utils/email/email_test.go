package email

import (
	"errors"
	"io"
	"net/smtp"
	"testing"
	"time"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/loan-service/internal/config"
)

func newTestSender(send sendFunc) *Sender {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: "2525", SenderEmail: "loans@example.com"}
	s := NewSender(cfg, logger)
	s.send = send
	return s
}

func TestSendInstallmentReminder(t *testing.T) {
	var sent *email.Email
	var sentAddr string
	s := newTestSender(func(e *email.Email, addr string, auth smtp.Auth) error {
		sent = e
		sentAddr = addr
		return nil
	})

	due := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	err := s.SendInstallmentReminder("ali@example.com", "Ali", due, decimal.RequireFromString("133.3"), false)
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, "smtp.example.com:2525", sentAddr)
	assert.Equal(t, []string{"ali@example.com"}, sent.To)
	assert.Equal(t, "loans@example.com", sent.From)
	assert.Equal(t, "Upcoming Loan Installment Reminder", sent.Subject)
	assert.Contains(t, string(sent.Text), "133.30")
	assert.Contains(t, string(sent.Text), "2025-06-13")
}

func TestSendInstallmentReminder_Overdue(t *testing.T) {
	var sent *email.Email
	s := newTestSender(func(e *email.Email, addr string, auth smtp.Auth) error {
		sent = e
		return nil
	})

	err := s.SendInstallmentReminder("ali@example.com", "Ali", time.Now(), decimal.NewFromInt(200), true)
	require.NoError(t, err)
	assert.Equal(t, "Overdue Loan Installment Notification", sent.Subject)
	assert.Contains(t, string(sent.Text), "overdue")
}

func TestSendInstallmentReminder_Failure(t *testing.T) {
	s := newTestSender(func(e *email.Email, addr string, auth smtp.Auth) error {
		return errors.New("connection refused")
	})

	err := s.SendInstallmentReminder("ali@example.com", "Ali", time.Now(), decimal.NewFromInt(200), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
