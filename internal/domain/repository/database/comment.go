package database

import (
	"context"

	"saukstas/internal/domain/model"
)

type CommentRepository interface {
	Insert(ctx context.Context, comment *model.Comment) error
	Get(ctx context.Context, recipeID, id string) (*model.Comment, error)
	Delete(ctx context.Context, recipeID, id string) error
	DeleteByRecipe(ctx context.Context, recipeID string) (int64, error)
	SetStatus(ctx context.Context, recipeID, id string, status model.CommentStatus) error

	// ListByRecipe returns comments newest first. An empty status lists all.
	ListByRecipe(ctx context.Context, recipeID string, status model.CommentStatus) ([]model.Comment, error)
	List(ctx context.Context, status model.CommentStatus, limit int64) ([]model.Comment, error)
	Count(ctx context.Context, status model.CommentStatus) (int64, error)
}
