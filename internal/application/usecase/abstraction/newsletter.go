package abstraction

import (
	"context"

	"saukstas/internal/application/usecase"
	"saukstas/internal/domain/dto"
	"saukstas/internal/domain/model"
)

type Subscribers interface {
	Subscribe(ctx context.Context, email string) (usecase.Outcome, error)
	Unsubscribe(ctx context.Context, email, token string) (usecase.Outcome, error)
	List(ctx context.Context) ([]model.Subscriber, error)
	Remove(ctx context.Context, email string) error
	Import(ctx context.Context, emails []string) (int, error)
}

type Newsletter interface {
	Send(ctx context.Context, subject, htmlBody string) (dto.SendResult, error)
	SendTest(ctx context.Context, email, recipeID string) error
}
