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

const (
	DefaultPublicLimit = 12
	DefaultAdminLimit  = 10
	MaxLimit           = 50
)

// ListFilter is a recipe listing request. Status is honoured only when Admin is set.
type ListFilter struct {
	Page     int
	Limit    int
	Category string
	Status   string
	Popular  bool
	Admin    bool
}

type RecipeService struct {
	recipes    database.RecipeRepository
	comments   database.CommentRepository
	media      *MediaStore
	categories *CategoryIndex
	now        func() time.Time
}

func NewRecipeService(recipes database.RecipeRepository, comments database.CommentRepository,
	media *MediaStore, categories *CategoryIndex,
) *RecipeService {
	return &RecipeService{
		recipes:    recipes,
		comments:   comments,
		media:      media,
		categories: categories,
		now:        time.Now,
	}
}

func (s *RecipeService) List(ctx context.Context, f ListFilter) (dto.RecipePage, error) {
	filter, page, limit := s.normalize(f)

	if f.Popular && !f.Admin {
		// no popularity metric is tracked: the newest published recipes stand in
		filter.Offset = 0
		items, err := s.recipes.List(ctx, filter)
		if err != nil {
			return dto.RecipePage{}, upstream("failed to list recipes", err)
		}

		return dto.RecipePage{
			Items: s.withURLs(items),
			Meta:  dto.ListMeta{Page: 1, Limit: limit, Total: int64(len(items)), HasMore: false},
		}, nil
	}

	items, err := s.recipes.List(ctx, filter)
	if err != nil {
		return dto.RecipePage{}, upstream("failed to list recipes", err)
	}

	countFilter := filter
	countFilter.Offset, countFilter.Limit = 0, 0
	total, err := s.recipes.Count(ctx, countFilter)
	if err != nil {
		return dto.RecipePage{}, upstream("failed to count recipes", err)
	}

	meta := dto.ListMeta{
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: len(items) == limit,
	}
	if f.Admin {
		meta.Pages = (total + int64(limit) - 1) / int64(limit)
	}

	return dto.RecipePage{Items: s.withURLs(items), Meta: meta}, nil
}

func (s *RecipeService) normalize(f ListFilter) (database.RecipeFilter, int, int) {
	page := f.Page
	if page < 1 {
		page = 1
	}

	limit := f.Limit
	if limit < 1 {
		limit = DefaultPublicLimit
		if f.Admin {
			limit = DefaultAdminLimit
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	filter := database.RecipeFilter{
		Status:   model.StatusPublished,
		Category: f.Category,
		Offset:   int64(page-1) * int64(limit),
		Limit:    int64(limit),
	}
	if f.Admin {
		switch model.RecipeStatus(f.Status) {
		case model.StatusDraft, model.StatusPublished:
			filter.Status = model.RecipeStatus(f.Status)
		default:
			filter.Status = ""
		}
	}

	return filter, page, limit
}

// Get returns a recipe. Drafts are only visible with includeDrafts.
func (s *RecipeService) Get(ctx context.Context, id string, includeDrafts bool) (*model.Recipe, error) {
	r, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, lookup("recipe", err)
	}
	if r.Status != model.StatusPublished && !includeDrafts {
		return nil, ErrNotFound
	}

	s.withURL(r)

	return r, nil
}

func (s *RecipeService) Create(ctx context.Context, form validation.Form, img *validation.Image) (*model.Recipe, error) {
	in, err := validation.Recipe(form)
	if err != nil {
		return nil, err
	}

	r := &model.Recipe{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
	}
	in.Apply(r)

	if img != nil {
		stored, err := s.media.Store(ctx, img, model.MediaRecipes)
		if err != nil {
			return nil, err
		}
		r.Image = stored.Path
	}

	if err := s.recipes.Insert(ctx, r); err != nil {
		s.media.discard(ctx, r.Image)

		return nil, upstream("failed to save recipe", err)
	}

	s.categories.refresh(ctx)
	logger.Info("recipe created", "id", r.ID, "status", r.Status)

	s.withURL(r)

	return r, nil
}

// Update overlays the given form on the stored recipe and validates the result as a whole.
// A new image replaces the old one; "remove_image=true" drops it.
func (s *RecipeService) Update(ctx context.Context, id string, form validation.Form,
	img *validation.Image,
) (*model.Recipe, error) {
	r, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, lookup("recipe", err)
	}

	removeImage := form.Get("remove_image") == "true"
	delete(form, "remove_image")

	in, err := validation.Recipe(validation.RecipeForm(r).Overlay(form))
	if err != nil {
		return nil, err
	}

	oldImage := r.Image
	in.Apply(r)
	now := s.now().UTC()
	r.UpdatedAt = &now

	newImage := ""
	if img != nil {
		stored, err := s.media.Store(ctx, img, model.MediaRecipes)
		if err != nil {
			return nil, err
		}
		newImage = stored.Path
		r.Image = newImage
	} else if removeImage {
		r.Image = ""
	}

	if err := s.recipes.Replace(ctx, r); err != nil {
		s.media.discard(ctx, newImage)
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrNotFound
		}

		return nil, upstream("failed to update recipe", err, "id", id)
	}

	if oldImage != "" && oldImage != r.Image {
		s.media.discard(ctx, oldImage)
	}

	s.categories.refresh(ctx)
	logger.Info("recipe updated", "id", r.ID)

	s.withURL(r)

	return r, nil
}

// Delete removes the recipe image first, then its comments, then the record.
func (s *RecipeService) Delete(ctx context.Context, id string) error {
	r, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return lookup("recipe", err)
	}

	if r.Image != "" {
		s.media.discard(ctx, r.Image)
	}

	if n, err := s.comments.DeleteByRecipe(ctx, id); err != nil {
		logger.Warn("failed to delete recipe comments", "id", id, "err", err)
	} else if n > 0 {
		logger.Debug("recipe comments deleted", "id", id, "count", n)
	}

	if err := s.recipes.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrNotFound
		}

		return upstream("failed to delete recipe", err, "id", id)
	}

	s.categories.refresh(ctx)
	logger.Info("recipe deleted", "id", id)

	return nil
}

func (s *RecipeService) withURL(r *model.Recipe) {
	r.ImageURL = s.media.URL(r.Image)
}

func (s *RecipeService) withURLs(items []model.Recipe) []model.Recipe {
	for i := range items {
		s.withURL(&items[i])
	}

	return items
}
