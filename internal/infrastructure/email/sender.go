// Package email sends order notifications over SMTP.
package email

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"farina/pkg/logger"
)

// Config holds SMTP configuration.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Message is a plain-text mail.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers mail synchronously. Volume is a handful of orders per day,
// so there is no queue.
type Sender struct {
	cfg Config
}

// NewSender creates an SMTP sender.
func NewSender(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

// From returns the configured sender address.
func (s *Sender) From() string {
	return s.cfg.From
}

// Send delivers one message with STARTTLS and plain auth.
func (s *Sender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("recipient is required")
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}

	logger.Info(ctx, "email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
