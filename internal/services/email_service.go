package services

import (
	"errors"
	"fmt"

	"github.com/parasnikum/DevSync/internal/models"
	"github.com/parasnikum/DevSync/pkg/config"
	gomail "gopkg.in/gomail.v2"
)

type EmailService struct {
	smtp config.SMTPConfig
}

func NewEmailService() *EmailService {
	return &EmailService{
		smtp: config.AppConfig.SMTP,
	}
}

// Enabled reports whether SMTP is configured; without it mail sending is a
// no-op so local setups work without a mail server.
func (s *EmailService) Enabled() bool {
	return s.smtp.Host != ""
}

// SendVerificationEmail sends the 6-digit verification code to a new user
func (s *EmailService) SendVerificationEmail(to, code string) error {
	if !s.Enabled() {
		return errors.New("SMTP is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.smtp.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Verify your DevSync account")
	m.SetBody("text/plain", fmt.Sprintf(
		"Your DevSync verification code is %s.\n\nThe code expires in 15 minutes.", code))

	return s.send(m)
}

// SendContactNotification forwards a contact form submission to the
// configured inbox
func (s *EmailService) SendContactNotification(message *models.ContactMessage) error {
	if !s.Enabled() || s.smtp.ContactInbox == "" {
		return errors.New("contact inbox is not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.smtp.From)
	m.SetHeader("To", s.smtp.ContactInbox)
	m.SetHeader("Reply-To", message.Email)
	m.SetHeader("Subject", fmt.Sprintf("DevSync contact form: %s", message.Name))
	m.SetBody("text/plain", fmt.Sprintf("From: %s <%s>\n\n%s", message.Name, message.Email, message.Message))

	return s.send(m)
}

func (s *EmailService) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.smtp.Host, s.smtp.Port, s.smtp.Username, s.smtp.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
