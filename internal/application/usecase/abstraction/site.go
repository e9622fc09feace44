package abstraction

import (
	"context"

	"saukstas/internal/application/validation"
	"saukstas/internal/domain/dto"
	"saukstas/internal/domain/model"
)

type About interface {
	Get(ctx context.Context) (model.AboutPage, error)
	Update(ctx context.Context, in model.AboutPage, image, sidebar *validation.Image) (model.AboutPage, error)
}

type Dashboard interface {
	Stats(ctx context.Context) (dto.DashboardStats, error)
}

type Media interface {
	Store(ctx context.Context, img *validation.Image, category model.MediaCategory) (dto.StoredFile, error)
	Delete(ctx context.Context, pathOrFilename string) error
	List(ctx context.Context, category string) ([]model.MediaObject, error)
}
