// Package mailer provides SMTP sending and IMAP inbox access.
package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

// OutgoingMessage describes one email to send.
type OutgoingMessage struct {
	Recipient   string
	Subject     string
	Body        string
	HTMLBody    string   // optional HTML alternative part
	Attachments []string // file paths; missing files are skipped
}

// SMTPSender sends mail through a configured SMTP server.
type SMTPSender struct {
	host     string
	port     int
	useTLS   bool
	username string
	password string
	sender   string
}

func NewSMTPSender(host string, port int, useTLS bool, username, password, sender string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		useTLS:   useTLS,
		username: username,
		password: password,
		sender:   sender,
	}
}

// Send delivers the message. Attachment paths that do not exist on disk are
// skipped rather than failing the send.
func (s *SMTPSender) Send(msg OutgoingMessage) error {
	if msg.Recipient == "" {
		return fmt.Errorf("recipient is required")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", msg.Recipient)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}

	for _, path := range msg.Attachments {
		if _, err := os.Stat(path); err == nil {
			m.Attach(path)
		}
	}

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if !s.useTLS {
		d.SSL = false
		d.TLSConfig = nil
	}

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.Recipient, err)
	}
	return nil
}
