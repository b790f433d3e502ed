package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	CodeSender
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

// SendCode — письмо с одноразовым кодом на адрес оператора.
func (s *emailService) SendCode(destination, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", destination)
	m.SetHeader("Subject", "MUNGA verification passcode")

	body := fmt.Sprintf(`
		<h3>Incoming encrypted mail</h3>
		<p>Your verification passcode:</p>
		<p style="font-size:28px;letter-spacing:0.4em"><strong>%s</strong></p>
		<p>Security protocol: do not share this code.</p>
	`, code)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}
