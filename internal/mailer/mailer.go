// Package mailer sends transactional email rendered from embedded templates.
package mailer

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"gopkg.in/mail.v2"
)

//go:embed "templates"
var templateFS embed.FS

// sendAttempts is how many times a message is retried before giving up.
const sendAttempts = 3

// Mailer wraps an SMTP dialer together with the sender address outgoing mail
// is stamped with, e.g. "Kritika <no-reply@example.com>".
type Mailer struct {
	dialer *mail.Dialer
	sender string
}

// New returns a Mailer configured for the given SMTP server. Dial and send
// operations time out after 5 seconds.
func New(host string, port int, username, password, sender string) Mailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second
	return Mailer{
		dialer: dialer,
		sender: sender,
	}
}

// Send renders the named template file with the given data and mails it to
// the recipient. The template must define "subject", "plainBody" and
// "htmlBody" blocks. Failed sends are retried with a short pause in between.
func (m Mailer) Send(recipient, templateFile string, data interface{}) error {
	tmpl, err := template.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return err
	}
	subject, err := execute(tmpl, "subject", data)
	if err != nil {
		return err
	}
	plainBody, err := execute(tmpl, "plainBody", data)
	if err != nil {
		return err
	}
	htmlBody, err := execute(tmpl, "htmlBody", data)
	if err != nil {
		return err
	}
	msg := mail.NewMessage()
	msg.SetHeader("To", recipient)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plainBody)
	msg.AddAlternative("text/html", htmlBody)
	for i := 1; i <= sendAttempts; i++ {
		err = m.dialer.DialAndSend(msg)
		if err == nil {
			return nil
		}
		time.Sleep(time.Second)
	}
	return err
}

func execute(tmpl *template.Template, name string, data interface{}) (string, error) {
	buf := new(bytes.Buffer)
	err := tmpl.ExecuteTemplate(buf, name, data)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
