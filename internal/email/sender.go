package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"opos-parking/internal/config"
)

// Mailer is the transactional-email seam the auth flows depend on. Welcome
// mail is dispatched fire-and-forget; reset mail failures are surfaced so the
// caller can roll the token back.
type Mailer interface {
	SendWelcome(to, name string) error
	SendPasswordReset(to, name, resetURL string) error
}

type SMTPMailer struct {
	cfg       config.SMTPConfig
	templates *TemplateSet
}

func NewSMTPMailer(cfg config.SMTPConfig) (*SMTPMailer, error) {
	templates, err := NewTemplateSet()
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &SMTPMailer{cfg: cfg, templates: templates}, nil
}

func (m *SMTPMailer) SendWelcome(to, name string) error {
	body, err := m.templates.RenderWelcome(name)
	if err != nil {
		return err
	}

	text := fmt.Sprintf("Hi %s, Welcome to Opos Parking.", name)
	return m.send(to, "Welcome To Opos Parking", body, text)
}

func (m *SMTPMailer) SendPasswordReset(to, name, resetURL string) error {
	body, err := m.templates.RenderReset(name, resetURL)
	if err != nil {
		return err
	}

	text := fmt.Sprintf(
		"Forgot your password? Submit your new password and confirmation to: %s. "+
			"If you did not make this request, please ignore this email!", resetURL)
	return m.send(to, "Forgot it? Password reset! (Valid for 10 minutes)", body, text)
}

func (m *SMTPMailer) send(to, subject, htmlBody, textBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)

	return d.DialAndSend(msg)
}
