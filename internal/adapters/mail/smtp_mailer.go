// Package mail delivers the password-reset emails. Delivery is an external
// collaborator: a failure here never rolls back token creation.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/minjaeoh/user_auth_app/internal/apperrors"
	portssvc "github.com/minjaeoh/user_auth_app/internal/core/ports/services"
	"github.com/minjaeoh/user_auth_app/internal/platform/config"
)

type SMTPMailer struct {
	client *gomail.Client
	from   string
}

// NewSMTPMailer builds a mailer from the SMTP settings in cfg.
func NewSMTPMailer(cfg *config.Config) (portssvc.MailSenderSvc, error) {
	client, err := gomail.NewClient(cfg.SMTPHost,
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTPUsername),
		gomail.WithPassword(cfg.SMTPPassword),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.EmailFrom}, nil
}

var _ portssvc.MailSenderSvc = (*SMTPMailer)(nil)

const resetMailSubject = "Password reset"

const resetMailBody = `<div style="max-width: 600px; margin: 0 auto; padding: 20px; font-family: Arial, sans-serif;">
  <h1 style="color: #2563eb; text-align: center;">Password reset</h1>
  <p style="margin: 20px 0;">Hello,</p>
  <p>A password reset was requested for your account. Click the link below to set a new password:</p>
  <p style="margin: 30px 0; word-break: break-all;">
    <a href="%[1]s" style="color: #2563eb; text-decoration: underline;">%[1]s</a>
  </p>
  <p style="color: #666; font-size: 14px;">This link is valid for 1 hour.</p>
  <p style="color: #666; font-size: 14px;">If you did not request a reset, you can ignore this email.</p>
</div>`

func (m *SMTPMailer) SendPasswordResetEmail(ctx context.Context, to, resetURL string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("%w: invalid sender address: %v", apperrors.ErrDeliveryFailure, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%w: invalid recipient address: %v", apperrors.ErrDeliveryFailure, err)
	}
	msg.Subject(resetMailSubject)
	msg.SetBodyString(gomail.TypeTextHTML, fmt.Sprintf(resetMailBody, resetURL))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: smtp send failed: %v", apperrors.ErrDeliveryFailure, err)
	}
	return nil
}
