package email

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"oficina/internal/shared/config"
	"oficina/internal/shared/logger"
)

var ErrEmailServiceNotConfigured = errors.New("email service is not configured")

// Message is a rendered email ready to send.
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a message synchronously.
type Sender interface {
	Send(msg Message) error
	Enabled() bool
}

type SMTPEmailService struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

// NewSender returns an SMTP sender, or a sender that refuses every message
// when SMTP host or from address are missing.
func NewSender(cfg config.EmailConfig, log logger.Interface) Sender {
	if !cfg.Enabled() {
		log.Warnw("email disabled: smtp host or from address not configured")
		return disabledSender{}
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	dialer.SSL = cfg.UseSSL

	log.Infow("email service initialized",
		"host", cfg.SMTPHost,
		"port", cfg.SMTPPort,
		"from", cfg.FromAddress,
	)
	return &SMTPEmailService{cfg: cfg, dialer: dialer}
}

func (s *SMTPEmailService) Enabled() bool { return true }

func (s *SMTPEmailService) Send(msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}

	m := gomail.NewMessage()
	if s.cfg.FromName != "" {
		m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	} else {
		m.SetHeader("From", s.cfg.FromAddress)
	}
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	if msg.Text != "" {
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	} else {
		m.SetBody("text/html", msg.HTML)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", strings.Join(msg.To, ","), err)
	}
	return nil
}

type disabledSender struct{}

func (disabledSender) Send(Message) error { return ErrEmailServiceNotConfigured }
func (disabledSender) Enabled() bool      { return false }

// ParseRecipients splits a comma separated list and rejects entries that
// lack an "@" or a ".".
func ParseRecipients(raw string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		addr := strings.TrimSpace(part)
		if addr == "" {
			continue
		}
		if !strings.Contains(addr, "@") || !strings.Contains(addr, ".") {
			return nil, fmt.Errorf("invalid recipient: %s", addr)
		}
		out = append(out, addr)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no recipients")
	}
	return out, nil
}
