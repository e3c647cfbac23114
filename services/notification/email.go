package notification

import (
	"context"
	"fmt"

	"doctorsportal/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridSender sends emails via the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// SendGridConfig holds configuration for SendGrid.
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// NewSendGridSender creates a new SendGrid email sender. Returns nil when no
// API key is configured; callers should fall back to the stub sender.
func NewSendGridSender(cfg SendGridConfig) *SendGridSender {
	if cfg.APIKey == "" {
		return nil
	}
	if cfg.FromName == "" {
		cfg.FromName = "Doctors Portal"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

// Send sends an email via SendGrid.
func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	if s.client == nil {
		return fmt.Errorf("notification: sendgrid client not configured")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	var message *mail.SGMailV3
	if msg.HTML != "" {
		message = mail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.HTML)
	} else {
		message = mail.NewSingleEmail(from, msg.Subject, to, msg.Body, msg.Body)
	}

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("notification: sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("notification: sendgrid returned status %d", response.StatusCode)
	}

	utils.GetLogger().Info("confirmation email sent",
		zap.String("to", msg.To),
		zap.Int("status", response.StatusCode))
	return nil
}

// StubEmailSender logs emails instead of sending them. Used in development
// and wherever no SendGrid key is configured.
type StubEmailSender struct{}

// Send logs the email but doesn't actually send it.
func (s *StubEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	utils.GetLogger().Info("stub email sender: would send email",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}
