package database

import (
	"context"
	"time"

	"saukstas/internal/domain/model"
)

type SubscriberRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	Insert(ctx context.Context, subscriber *model.Subscriber) error
	SetActive(ctx context.Context, email string, active bool, at time.Time) error
	Delete(ctx context.Context, email string) error
	List(ctx context.Context, activeOnly bool) ([]model.Subscriber, error)
	CountActive(ctx context.Context) (int64, error)
}
