package mailer

import (
	"log"
	"os"
	"strconv"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends the password-recovery mails over SMTP. Gmail on 465 (implicit
// SSL) is the deployed setup; gomail switches to STARTTLS on other ports by
// itself.
type Mailer struct {
	Host string
	Port int
	User string
	Pass string
}

// FromEnv builds the mailer from MAIL_* variables, or returns nil when no
// credentials are configured so callers can disable the recovery flow.
func FromEnv() *Mailer {
	user := os.Getenv("MAIL_USER")
	pass := os.Getenv("MAIL_PASS")
	if user == "" || pass == "" {
		log.Println("⚠️ MAIL_USER/MAIL_PASS no configurados, recuperación de clave deshabilitada")
		return nil
	}

	host := os.Getenv("MAIL_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 465
	if p, err := strconv.Atoi(os.Getenv("MAIL_PORT")); err == nil && p > 0 {
		port = p
	}

	return &Mailer{Host: host, Port: port, User: user, Pass: pass}
}

// Send delivers one HTML mail. The error goes back to the caller; nothing
// here retries.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.User)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	d.SSL = m.Port == 465
	return d.DialAndSend(msg)
}
