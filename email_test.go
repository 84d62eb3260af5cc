package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/go-gomail/gomail"
)

func emailConfig() *Config {
	cfg := defaultConfig()
	cfg.Email = EmailConfig{From: "billing@example.com", To: "client@example.com"}
	return cfg
}

func TestSendEmail(t *testing.T) {
	var (
		gotFrom string
		gotTo   []string
		raw     bytes.Buffer
	)
	sender := gomail.SendFunc(func(from string, to []string, msg io.WriterTo) error {
		gotFrom, gotTo = from, to
		_, err := msg.WriteTo(&raw)
		return err
	})

	err := sendEmail(emailConfig(), sender, "Invoice 001", Attachment{Filename: "Invoice_001.pdf", Data: []byte("%PDF-1.3 test")})
	if err != nil {
		t.Fatalf("sendEmail() error = %v", err)
	}

	if gotFrom != "billing@example.com" {
		t.Errorf("from = %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "client@example.com" {
		t.Errorf("to = %v", gotTo)
	}
	msg := raw.String()
	for _, want := range []string{"Subject: Invoice 001", `filename="Invoice_001.pdf"`, "application/pdf"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message does not contain %q", want)
		}
	}
}

func TestSendEmailErrors(t *testing.T) {
	failing := gomail.SendFunc(func(string, []string, io.WriterTo) error {
		return errors.New("451 try again later")
	})

	tests := []struct {
		name string
		cfg  *Config
	}{
		{"no recipient", defaultConfig()},
		{"smtp failure", emailConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sendEmail(tt.cfg, failing, "subject", Attachment{Filename: "a.pdf", Data: []byte("x")})
			var de *DeliveryError
			if !errors.As(err, &de) {
				t.Fatalf("sendEmail() error = %v, want *DeliveryError", err)
			}
			if de.Channel != "email" {
				t.Errorf("Channel = %q, want email", de.Channel)
			}
		})
	}
}

func TestEmailSubject(t *testing.T) {
	doc := &Document{Title: "Invoice", Filename: "Invoice_001.pdf"}

	tests := []struct {
		name     string
		subject  string
		title    string
		expected string
	}{
		{"configured", "Your invoice", "Invoice", "Your invoice"},
		{"title", "", "Invoice", "Invoice"},
		{"filename", "", "", "Invoice_001.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Email.Subject = tt.subject
			d := *doc
			d.Title = tt.title
			if got := emailSubject(cfg, &d); got != tt.expected {
				t.Errorf("emailSubject() = %q, want %q", got, tt.expected)
			}
		})
	}
}
