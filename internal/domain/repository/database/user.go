package database

import (
	"context"
	"time"

	"saukstas/internal/domain/model"
)

type UserRepository interface {
	// GetByIdentity matches username or email, case-insensitively.
	GetByIdentity(ctx context.Context, identity string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	Insert(ctx context.Context, user *model.User) error
	CountByRole(ctx context.Context, role string) (int64, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
