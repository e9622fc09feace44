package abstraction

import (
	"context"

	"saukstas/internal/application/validation"
	"saukstas/internal/domain/dto"
	"saukstas/internal/domain/model"
)

type Comments interface {
	List(ctx context.Context, recipeID string) ([]model.Comment, error)
	Add(ctx context.Context, recipeID string, form validation.Form) (*model.Comment, error)
	Delete(ctx context.Context, recipeID, commentID string) error
	Approve(ctx context.Context, recipeID, commentID string) error
	ListAll(ctx context.Context, status string) ([]dto.CommentView, error)
}
