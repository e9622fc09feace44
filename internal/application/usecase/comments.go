package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"saukstas/internal/application/validation"
	"saukstas/internal/domain/dto"
	"saukstas/internal/domain/model"
	"saukstas/internal/domain/repository/database"
	"saukstas/pkg/logger"
)

// CommentService moderates visitor comments: new comments wait as pending until
// an admin approves them, and only approved ones are shown publicly.
type CommentService struct {
	comments database.CommentRepository
	recipes  database.RecipeRepository
	now      func() time.Time
}

func NewCommentService(comments database.CommentRepository, recipes database.RecipeRepository) *CommentService {
	return &CommentService{
		comments: comments,
		recipes:  recipes,
		now:      time.Now,
	}
}

// List returns the approved comments of a published recipe, newest first.
func (s *CommentService) List(ctx context.Context, recipeID string) ([]model.Comment, error) {
	if err := s.requirePublished(ctx, recipeID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByRecipe(ctx, recipeID, model.CommentApproved)
	if err != nil {
		return nil, upstream("failed to list comments", err, "recipe", recipeID)
	}

	return comments, nil
}

func (s *CommentService) Add(ctx context.Context, recipeID string, form validation.Form) (*model.Comment, error) {
	if err := s.requirePublished(ctx, recipeID); err != nil {
		return nil, err
	}

	in, err := validation.Comment(form)
	if err != nil {
		return nil, err
	}

	c := &model.Comment{
		ID:        uuid.NewString(),
		RecipeID:  recipeID,
		Author:    in.Author,
		Email:     in.Email,
		Content:   in.Content,
		Status:    model.CommentPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.comments.Insert(ctx, c); err != nil {
		return nil, upstream("failed to save comment", err, "recipe", recipeID)
	}

	logger.Info("comment received", "recipe", recipeID, "comment", c.ID)

	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, recipeID, commentID string) error {
	err := s.comments.Delete(ctx, recipeID, commentID)
	if errors.Is(err, database.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return upstream("failed to delete comment", err, "comment", commentID)
	}

	return nil
}

func (s *CommentService) Approve(ctx context.Context, recipeID, commentID string) error {
	err := s.comments.SetStatus(ctx, recipeID, commentID, model.CommentApproved)
	if errors.Is(err, database.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return upstream("failed to approve comment", err, "comment", commentID)
	}

	return nil
}

// ListAll is the moderation queue. An empty status lists every comment.
func (s *CommentService) ListAll(ctx context.Context, status string) ([]dto.CommentView, error) {
	st := model.CommentStatus(status)
	if st != model.CommentPending && st != model.CommentApproved {
		st = ""
	}

	comments, err := s.comments.List(ctx, st, 0)
	if err != nil {
		return nil, upstream("failed to list comments", err)
	}

	return s.views(ctx, comments, 0), nil
}

// views attaches recipe titles. A positive truncate shortens the content.
func (s *CommentService) views(ctx context.Context, comments []model.Comment, truncate int) []dto.CommentView {
	titles := make(map[string]string)
	out := make([]dto.CommentView, 0, len(comments))

	for _, c := range comments {
		title, ok := titles[c.RecipeID]
		if !ok {
			if r, err := s.recipes.GetByID(ctx, c.RecipeID); err == nil {
				title = r.Title
			}
			titles[c.RecipeID] = title
		}

		content := c.Content
		if truncate > 0 {
			content = validation.Truncate(content, truncate)
		}

		out = append(out, dto.CommentView{
			ID:          c.ID,
			Author:      c.Author,
			Content:     content,
			RecipeID:    c.RecipeID,
			RecipeTitle: title,
			Status:      string(c.Status),
			CreatedAt:   c.CreatedAt,
		})
	}

	return out
}

func (s *CommentService) requirePublished(ctx context.Context, recipeID string) error {
	r, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return lookup("recipe", err)
	}
	if r.Status != model.StatusPublished {
		return ErrNotFound
	}

	return nil
}
