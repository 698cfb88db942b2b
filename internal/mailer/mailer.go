package mailer

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Message is one outbound email with both HTML and plain-text bodies.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Config carries the SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Service sends mail through a single SMTP dialer constructed at process
// start. When no credentials are configured it logs the intended send and
// reports success without delivering, so local development works without
// an SMTP account.
type Service struct {
	logger     *logrus.Logger
	dialer     *gomail.Dialer
	from       string
	configured bool
}

// NewService builds the mail service from config.
func NewService(cfg Config, logger *logrus.Logger) *Service {
	s := &Service{logger: logger, from: cfg.From}
	if cfg.Username == "" || cfg.Password == "" {
		logger.Info("SMTP not configured, emails will be logged instead of sent")
		return s
	}
	s.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	s.configured = true
	return s
}

// Configured reports whether a real transport is available.
func (s *Service) Configured() bool {
	return s.configured
}

// Send attempts delivery once. Callers must treat every send as
// best-effort; a failure here never affects the operation that queued the
// message.
func (s *Service) Send(msg Message) error {
	if !s.configured {
		s.logger.WithFields(logrus.Fields{
			"to":      msg.To,
			"subject": msg.Subject,
		}).Info("Email skipped (SMTP not configured)")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}
	s.logger.WithField("to", msg.To).Info("Email sent")
	return nil
}
