package database

import (
	"context"

	"saukstas/internal/domain/model"
)

type SettingsRepository interface {
	GetAbout(ctx context.Context) (*model.AboutPage, error)
	PutAbout(ctx context.Context, page *model.AboutPage) error
}
