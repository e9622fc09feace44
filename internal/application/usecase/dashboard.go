package usecase

import (
	"context"

	"saukstas/internal/domain/dto"
	"saukstas/internal/domain/model"
	"saukstas/internal/domain/repository/database"
)

const (
	recentRecipes       = 3
	recentComments      = 2
	recentCommentLength = 50
)

type Dashboard struct {
	recipes     database.RecipeRepository
	comments    database.CommentRepository
	subscribers database.SubscriberRepository
	commentSvc  *CommentService
	media       *MediaStore
}

func NewDashboard(recipes database.RecipeRepository, comments database.CommentRepository,
	subscribers database.SubscriberRepository, commentSvc *CommentService, media *MediaStore,
) *Dashboard {
	return &Dashboard{
		recipes:     recipes,
		comments:    comments,
		subscribers: subscribers,
		commentSvc:  commentSvc,
		media:       media,
	}
}

func (d *Dashboard) Stats(ctx context.Context) (dto.DashboardStats, error) {
	var (
		stats dto.DashboardStats
		err   error
	)

	counts := []struct {
		dst *int64
		fn  func() (int64, error)
	}{
		{&stats.Recipes.Total, func() (int64, error) { return d.recipes.Count(ctx, database.RecipeFilter{}) }},
		{&stats.Recipes.Published, func() (int64, error) {
			return d.recipes.Count(ctx, database.RecipeFilter{Status: model.StatusPublished})
		}},
		{&stats.Recipes.Draft, func() (int64, error) {
			return d.recipes.Count(ctx, database.RecipeFilter{Status: model.StatusDraft})
		}},
		{&stats.Comments.Total, func() (int64, error) { return d.comments.Count(ctx, "") }},
		{&stats.Comments.Pending, func() (int64, error) { return d.comments.Count(ctx, model.CommentPending) }},
		{&stats.Comments.Approved, func() (int64, error) { return d.comments.Count(ctx, model.CommentApproved) }},
		{&stats.Media.Total, func() (int64, error) { return d.recipes.CountWithImage(ctx) }},
		{&stats.Subscribers, func() (int64, error) { return d.subscribers.CountActive(ctx) }},
	}
	for _, c := range counts {
		if *c.dst, err = c.fn(); err != nil {
			return dto.DashboardStats{}, upstream("failed to collect dashboard stats", err)
		}
	}

	recipes, err := d.recipes.List(ctx, database.RecipeFilter{Limit: recentRecipes})
	if err != nil {
		return dto.DashboardStats{}, upstream("failed to list recent recipes", err)
	}
	stats.RecentRecipes = make([]dto.RecentRecipe, 0, len(recipes))
	for _, r := range recipes {
		stats.RecentRecipes = append(stats.RecentRecipes, dto.RecentRecipe{
			ID:        r.ID,
			Title:     r.Title,
			Status:    string(r.Status),
			Image:     d.media.URL(r.Image),
			CreatedAt: r.CreatedAt,
		})
	}

	comments, err := d.comments.List(ctx, "", recentComments)
	if err != nil {
		return dto.DashboardStats{}, upstream("failed to list recent comments", err)
	}
	stats.RecentComments = d.commentSvc.views(ctx, comments, recentCommentLength)

	return stats, nil
}
