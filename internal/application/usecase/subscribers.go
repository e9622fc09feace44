package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"saukstas/internal/application/validation"
	"saukstas/internal/domain/model"
	"saukstas/internal/domain/repository/database"
	"saukstas/pkg/logger"
)

const (
	msgSubscribed         = "Ačiū! Sėkmingai užsiprenumeravote naujienlaiškį."
	msgAlreadySubscribed  = "Jūs jau esate užsiprenumeravę naujienlaiškį."
	msgUnsubscribed       = "Sėkmingai atsisakėte naujienlaiškio prenumeratos."
	msgNotSubscribed      = "Šis el. pašto adresas nerastas prenumeratorių sąraše."
	msgInvalidUnsubscribe = "Neteisinga prenumeratos atsisakymo nuoroda."
)

// Outcome is a soft result: Success=false is not an error.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SubscriberService struct {
	subscribers database.SubscriberRepository
	tokens      *Tokens
	now         func() time.Time
}

func NewSubscriberService(subscribers database.SubscriberRepository, tokens *Tokens) *SubscriberService {
	return &SubscriberService{
		subscribers: subscribers,
		tokens:      tokens,
		now:         time.Now,
	}
}

// Subscribe is idempotent: an active address is left as is, an inactive one is reactivated.
func (s *SubscriberService) Subscribe(ctx context.Context, rawEmail string) (Outcome, error) {
	email, err := validation.Email(rawEmail)
	if err != nil {
		return Outcome{}, err
	}

	created, err := s.ensureActive(ctx, email)
	if err != nil {
		return Outcome{}, err
	}
	if !created {
		return Outcome{Success: true, Message: msgAlreadySubscribed}, nil
	}

	return Outcome{Success: true, Message: msgSubscribed}, nil
}

// ensureActive reports whether the address was newly activated.
func (s *SubscriberService) ensureActive(ctx context.Context, email string) (bool, error) {
	now := s.now().UTC()

	existing, err := s.subscribers.GetByEmail(ctx, email)
	switch {
	case err == nil && existing.Active:
		return false, nil
	case err == nil:
		if err := s.subscribers.SetActive(ctx, email, true, now); err != nil {
			return false, upstream("failed to reactivate subscriber", err)
		}
		logger.Info("subscriber reactivated", "email", email)

		return true, nil
	case !errors.Is(err, database.ErrNotFound):
		return false, upstream("failed to look up subscriber", err)
	}

	err = s.subscribers.Insert(ctx, &model.Subscriber{
		ID:           uuid.NewString(),
		Email:        email,
		Active:       true,
		SubscribedAt: now,
	})
	if errors.Is(err, database.ErrDuplicate) {
		return false, nil
	}
	if err != nil {
		return false, upstream("failed to save subscriber", err)
	}

	logger.Info("new subscriber", "email", email)

	return true, nil
}

// Unsubscribe deactivates an address. The token must be the one issued for it.
func (s *SubscriberService) Unsubscribe(ctx context.Context, rawEmail, token string) (Outcome, error) {
	email, err := validation.Email(rawEmail)
	if err != nil || !s.tokens.VerifyUnsubscribe(email, token) {
		return Outcome{Success: false, Message: msgInvalidUnsubscribe}, nil
	}

	existing, err := s.subscribers.GetByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) || (err == nil && !existing.Active) {
		return Outcome{Success: false, Message: msgNotSubscribed}, nil
	}
	if err != nil {
		return Outcome{}, upstream("failed to look up subscriber", err)
	}

	if err := s.subscribers.SetActive(ctx, email, false, s.now().UTC()); err != nil {
		return Outcome{}, upstream("failed to unsubscribe", err)
	}

	logger.Info("subscriber left", "email", email)

	return Outcome{Success: true, Message: msgUnsubscribed}, nil
}

func (s *SubscriberService) List(ctx context.Context) ([]model.Subscriber, error) {
	subs, err := s.subscribers.List(ctx, false)
	if err != nil {
		return nil, upstream("failed to list subscribers", err)
	}

	return subs, nil
}

func (s *SubscriberService) Remove(ctx context.Context, rawEmail string) error {
	email, err := validation.Email(rawEmail)
	if err != nil {
		return err
	}

	err = s.subscribers.Delete(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return upstream("failed to remove subscriber", err)
	}

	return nil
}

// Import subscribes every valid address and returns how many were added or reactivated.
func (s *SubscriberService) Import(ctx context.Context, emails []string) (int, error) {
	imported := 0
	for _, raw := range emails {
		email, err := validation.Email(raw)
		if err != nil {
			continue
		}

		created, err := s.ensureActive(ctx, email)
		if err != nil {
			return imported, err
		}
		if created {
			imported++
		}
	}

	return imported, nil
}
