package utils

import (
	"github.com/iskiospa/iskio-api/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer delivers HTML email.
type Mailer interface {
	Send(to, subject, body string) error
}

// Mail is the process-wide mailer. It discards messages until SetupMailer installs SMTP.
var Mail Mailer = discardMailer{}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass),
		from:   cfg.EmailUser,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}

func SetupMailer(cfg *config.Config) {
	if !cfg.MailEnabled() {
		logrus.Warn("SMTP not configured, outgoing email is disabled")
		return
	}
	Mail = NewSMTPMailer(cfg)
}

// SendEmailAsync sends in the background and only logs failures.
func SendEmailAsync(to, subject, body string) {
	mailer := Mail
	go func() {
		if err := mailer.Send(to, subject, body); err != nil {
			logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).WithError(err).Error("Failed to send email")
		}
	}()
}

type discardMailer struct{}

func (discardMailer) Send(to, subject, body string) error {
	logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).Debug("Email discarded")
	return nil
}
