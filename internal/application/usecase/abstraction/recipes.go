package abstraction

import (
	"context"

	"saukstas/internal/application/usecase"
	"saukstas/internal/application/validation"
	"saukstas/internal/domain/dto"
	"saukstas/internal/domain/model"
)

type Recipes interface {
	List(ctx context.Context, f usecase.ListFilter) (dto.RecipePage, error)
	Get(ctx context.Context, id string, includeDrafts bool) (*model.Recipe, error)
	Create(ctx context.Context, form validation.Form, img *validation.Image) (*model.Recipe, error)
	Update(ctx context.Context, id string, form validation.Form, img *validation.Image) (*model.Recipe, error)
	Delete(ctx context.Context, id string) error
}

type Categories interface {
	Rebuild(ctx context.Context) ([]dto.CategoryCount, error)
	Counts() []dto.CategoryCount
}
