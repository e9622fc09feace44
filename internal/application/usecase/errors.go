package usecase

import (
	"errors"
	"fmt"
	"time"

	"saukstas/internal/domain/repository/database"
	"saukstas/pkg/logger"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrUpstream           = errors.New("upstream failure")
	ErrSetupUnavailable   = errors.New("admin setup is not available")
)

// LockedError is returned while an identity is locked out after too many failed logins.
type LockedError struct {
	Remaining time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("too many failed login attempts, try again in %s", e.Remaining.Round(time.Second))
}

// upstream logs the failure with full detail and wraps it as ErrUpstream.
func upstream(msg string, err error, kv ...any) error {
	logger.Error(msg, append([]any{"err", err}, kv...)...)

	return fmt.Errorf("%w: %s: %w", ErrUpstream, msg, err)
}

// lookup maps a repository miss to ErrNotFound and everything else to ErrUpstream.
func lookup(what string, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}

	return upstream("failed to load "+what, err)
}
