package email

import (
	"fmt"
	"log/slog"

	gomail "gopkg.in/gomail.v2"

	portssvc "github.com/webgroup16/contacts_app/internal/core/ports/services"
)

// SMTPMailer sends transactional mail over SMTP. When no SMTP user is
// configured (local development), messages are logged instead of sent.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewSMTPMailer creates a mailer for the given SMTP server.
func NewSMTPMailer(host string, port int, user, password, from string, logger *slog.Logger) *SMTPMailer {
	var dialer *gomail.Dialer
	if user != "" {
		dialer = gomail.NewDialer(host, port, user, password)
	}
	return &SMTPMailer{
		dialer: dialer,
		from:   from,
		logger: logger,
	}
}

var _ portssvc.EmailSender = (*SMTPMailer)(nil)

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	if m.dialer == nil {
		m.logger.Info("SMTP not configured, logging mail instead",
			slog.String("to", to), slog.String("subject", subject))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// SendConfirmationEmail mails the email-confirmation link.
func (m *SMTPMailer) SendConfirmationEmail(to, username, baseURL, token string) error {
	link := fmt.Sprintf("%s/api/auth/confirmed_email/%s", baseURL, token)
	body := fmt.Sprintf(
		`<p>Hello %s,</p><p>Please confirm your email by following <a href="%s">this link</a>.</p>`,
		username, link,
	)
	return m.send(to, "Confirm your email", body)
}

// SendPasswordResetEmail mails the link to the reset-password page.
func (m *SMTPMailer) SendPasswordResetEmail(to, username, baseURL, token string) error {
	link := fmt.Sprintf("%s/api/auth/reset-password-page?token=%s", baseURL, token)
	body := fmt.Sprintf(
		`<p>Hello %s,</p><p>To reset your password, follow <a href="%s">this link</a>. The link expires in one hour.</p>`,
		username, link,
	)
	return m.send(to, "Reset your password", body)
}
