package database

import (
	"context"

	"saukstas/internal/domain/model"
)

// RecipeFilter narrows a recipe query. Zero values mean "any".
type RecipeFilter struct {
	Status   model.RecipeStatus
	Category string
	Offset   int64
	Limit    int64
}

type RecipeRepository interface {
	Insert(ctx context.Context, recipe *model.Recipe) error
	Replace(ctx context.Context, recipe *model.Recipe) error
	GetByID(ctx context.Context, id string) (*model.Recipe, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter RecipeFilter) ([]model.Recipe, error)
	Count(ctx context.Context, filter RecipeFilter) (int64, error)
	CountWithImage(ctx context.Context) (int64, error)

	// PublishedCategories returns the category set of every published recipe.
	PublishedCategories(ctx context.Context) ([][]string, error)
}
