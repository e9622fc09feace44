package abstraction

import (
	"context"

	"saukstas/internal/application/usecase"
	"saukstas/internal/domain/model"
)

type Auth interface {
	Login(ctx context.Context, identity, password string) (*usecase.LoginResult, error)
	Verify(ctx context.Context, token string) (*model.User, error)
	SetupAdmin(ctx context.Context, in usecase.SetupInput) (*model.User, error)
}
