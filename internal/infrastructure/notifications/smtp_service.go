package notifications

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/mynkprtp/movieApi/domain"
)

// SMTPServiceImpl implements domain.MailService over plain SMTP
type SMTPServiceImpl struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPService creates a new SMTP mail service
func NewSMTPService(host string, port int, username, password, from string) domain.MailService {
	return &SMTPServiceImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send implements domain.MailService. If no sender address is configured,
// the message is printed instead of sent so local runs work without SMTP.
func (s *SMTPServiceImpl) Send(to, subject, body string) error {
	if s.from == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
