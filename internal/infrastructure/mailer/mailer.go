package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	repository "saukstas/internal/domain/repository/mailer"
	"saukstas/pkg/logger"
)

// Sender delivers HTML mail over SMTP. Without credentials every send
// returns repository.ErrDisabled.
type Sender struct {
	cfg    Config
	client *mail.Client
}

func New(cfg Config) (*Sender, error) {
	s := &Sender{cfg: cfg}
	if cfg.Username == "" {
		logger.Warn("mail credentials not set, outbound mail disabled")

		return s, nil
	}

	port := cfg.Port
	if port == 0 {
		port = 587
	}
	timeout := time.Duration(cfg.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(timeout),
	)
	if err != nil {
		return nil, err
	}
	s.client = client

	return s, nil
}

func (s *Sender) Enabled() bool {
	return s.client != nil
}

func (s *Sender) Send(ctx context.Context, msg repository.Message) error {
	if s.client == nil {
		return repository.ErrDisabled
	}

	m := mail.NewMsg()
	if err := m.FromFormat(s.cfg.FromName, s.cfg.Username); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send to %s: %w", msg.To, err)
	}

	return nil
}
