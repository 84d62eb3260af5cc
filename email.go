package main

import (
	"errors"
	"io"

	"github.com/go-gomail/gomail"
)

// ---------------------------------------------------------------------------
// Email
// ---------------------------------------------------------------------------

// Attachment is an in-memory file attached to an e-mail.
type Attachment struct {
	Filename string
	Data     []byte
}

var errNoRecipient = errors.New("email from/to not configured")

// sendEmail sends the attachments via SMTP. A nil sender dials the
// configured server.
func sendEmail(cfg *Config, sender gomail.Sender, subject string, attachments ...Attachment) error {
	if cfg.Email.From == "" || cfg.Email.To == "" {
		return &DeliveryError{Channel: "email", Err: errNoRecipient}
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.Email.From)
	msg.SetHeader("To", cfg.Email.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", "Please find the document attached.")

	for _, a := range attachments {
		data := a.Data
		msg.Attach(a.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}

	var err error
	if sender != nil {
		err = gomail.Send(sender, msg)
	} else {
		dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
		err = dialer.DialAndSend(msg)
	}
	if err != nil {
		return &DeliveryError{Channel: "email", Err: err}
	}
	return nil
}

// emailSubject uses the configured subject, or the document title.
func emailSubject(cfg *Config, doc *Document) string {
	if cfg.Email.Subject != "" {
		return cfg.Email.Subject
	}
	if doc.Title != "" {
		return doc.Title
	}
	return doc.Filename
}
