package notify

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer delivers one rendered message to the external relay.
type Mailer interface {
	Send(to, subject, html string) error
}

// SMTPMailer delivers over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	return m.dialer.DialAndSend(msg)
}

// LogMailer stands in when no SMTP relay is configured (local development).
type LogMailer struct{}

func (LogMailer) Send(to, subject, _ string) error {
	log.Printf("[mail] would send %q to %s (SMTP not configured)", subject, to)
	return nil
}
