package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saukstas/internal/application/validation"
	"saukstas/internal/domain/model"
)

type recipeFixture struct {
	recipes  *fakeRecipes
	comments *fakeComments
	blobs    *fakeBlobs
	index    *CategoryIndex
	svc      *RecipeService
}

func newRecipeFixture(recipes ...model.Recipe) *recipeFixture {
	f := &recipeFixture{
		recipes:  newFakeRecipes(recipes...),
		comments: &fakeComments{},
		blobs:    newFakeBlobs(),
	}
	media := NewMediaStore(f.blobs, f.blobs, f.blobs)
	f.index = NewCategoryIndex(f.recipes)
	f.svc = NewRecipeService(f.recipes, f.comments, media, f.index)

	return f
}

func seedRecipes(published, drafts int) []model.Recipe {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	out := make([]model.Recipe, 0, published+drafts)
	for i := 0; i < published+drafts; i++ {
		status := model.StatusPublished
		if i >= published {
			status = model.StatusDraft
		}
		out = append(out, model.Recipe{
			ID:         fmt.Sprintf("r%02d", i),
			Title:      fmt.Sprintf("Receptas %d", i),
			Status:     status,
			Categories: []string{"Sriubos"},
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}

	return out
}

func pngImage() *validation.Image {
	return &validation.Image{Data: []byte("\x89PNG\r\n\x1a\nfake"), MIME: "image/png"}
}

func recipeForm(title string) validation.Form {
	return validation.NewForm(map[string][]string{
		"title":         {title},
		"categories[]":  {"Desertai"},
		"ingredients[]": {"miltai"},
		"steps[]":       {"kepti"},
		"status":        {"published"},
	})
}

func TestListPublicPaging(t *testing.T) {
	f := newRecipeFixture(seedRecipes(20, 1)...)
	ctx := context.Background()

	first, err := f.svc.List(ctx, ListFilter{Page: 1})
	require.NoError(t, err)
	second, err := f.svc.List(ctx, ListFilter{Page: 2})
	require.NoError(t, err)

	assert.Len(t, first.Items, 12)
	assert.True(t, first.Meta.HasMore)
	assert.Equal(t, int64(20), first.Meta.Total)
	assert.Len(t, second.Items, 8)
	assert.False(t, second.Meta.HasMore)
	assert.Zero(t, first.Meta.Pages)

	seen := make(map[string]bool)
	for _, r := range append(first.Items, second.Items...) {
		assert.Equal(t, model.StatusPublished, r.Status)
		assert.False(t, seen[r.ID], "duplicate %s", r.ID)
		seen[r.ID] = true
	}
	assert.Equal(t, "r19", first.Items[0].ID)
}

func TestListHasMoreOnExactPage(t *testing.T) {
	f := newRecipeFixture(seedRecipes(12, 0)...)

	page, err := f.svc.List(context.Background(), ListFilter{Page: 1})
	require.NoError(t, err)

	// has_more is a heuristic: a full page always reports more
	assert.True(t, page.Meta.HasMore)
}

func TestListNormalizesArguments(t *testing.T) {
	f := newRecipeFixture(seedRecipes(3, 2)...)
	ctx := context.Background()

	tests := []struct {
		name      string
		filter    ListFilter
		wantLimit int
		wantItems int
	}{
		{name: "public default", filter: ListFilter{Page: -3}, wantLimit: DefaultPublicLimit, wantItems: 3},
		{name: "public ignores status", filter: ListFilter{Status: "draft"}, wantLimit: DefaultPublicLimit, wantItems: 3},
		{name: "limit capped", filter: ListFilter{Limit: 500}, wantLimit: MaxLimit, wantItems: 3},
		{name: "admin default", filter: ListFilter{Admin: true}, wantLimit: DefaultAdminLimit, wantItems: 5},
		{name: "admin drafts", filter: ListFilter{Admin: true, Status: "draft"}, wantLimit: DefaultAdminLimit, wantItems: 2},
		{name: "admin all", filter: ListFilter{Admin: true, Status: "all"}, wantLimit: DefaultAdminLimit, wantItems: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := f.svc.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, page.Meta.Limit)
			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, 1, page.Meta.Page)
		})
	}
}

func TestListAdminPages(t *testing.T) {
	f := newRecipeFixture(seedRecipes(15, 6)...)

	page, err := f.svc.List(context.Background(), ListFilter{Admin: true, Page: 3})
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Meta.Pages)
	assert.Len(t, page.Items, 1)
}

func TestListPopular(t *testing.T) {
	f := newRecipeFixture(seedRecipes(20, 0)...)

	page, err := f.svc.List(context.Background(), ListFilter{Popular: true, Limit: 4, Page: 3})
	require.NoError(t, err)

	assert.Len(t, page.Items, 4)
	assert.False(t, page.Meta.HasMore)
	assert.Equal(t, 1, page.Meta.Page)
	assert.Equal(t, "r19", page.Items[0].ID)
}

func TestGetHidesDrafts(t *testing.T) {
	f := newRecipeFixture(seedRecipes(1, 1)...)
	ctx := context.Background()

	_, err := f.svc.Get(ctx, "r01", false)
	assert.ErrorIs(t, err, ErrNotFound)

	r, err := f.svc.Get(ctx, "r01", true)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, r.Status)

	_, err = f.svc.Get(ctx, "missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateStoresImageAndRebuildsCounts(t *testing.T) {
	f := newRecipeFixture()

	r, err := f.svc.Create(context.Background(), recipeForm("Tinginys"), pngImage())
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.True(t, strings.HasPrefix(r.Image, "recipes/"))
	assert.True(t, strings.HasSuffix(r.Image, ".png"))
	assert.Equal(t, "http://cdn.test/"+r.Image, r.ImageURL)
	assert.True(t, f.blobs.has(r.Image))
	assert.Equal(t, []string{"Desertai"}, r.Categories)

	counts := f.index.Counts()
	require.Len(t, counts, 1)
	assert.Equal(t, "Desertai", counts[0].Name)
	assert.Equal(t, 1, counts[0].Count)
}

func TestCreateRejectsInvalidFormWithoutWrites(t *testing.T) {
	f := newRecipeFixture()
	form := recipeForm("ab")

	_, err := f.svc.Create(context.Background(), form, pngImage())

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Zero(t, f.recipes.inserts)
	assert.Empty(t, f.blobs.objects)
}

func TestCreateRollsBackImageOnSaveFailure(t *testing.T) {
	f := newRecipeFixture()
	f.recipes.insertErr = errBoom

	_, err := f.svc.Create(context.Background(), recipeForm("Tinginys"), pngImage())

	assert.ErrorIs(t, err, ErrUpstream)
	assert.Empty(t, f.blobs.objects)
	assert.Len(t, f.blobs.removed, 1)
}

func TestUpdatePartialFormKeepsOtherFields(t *testing.T) {
	seed := model.Recipe{
		ID: "r1", Title: "Senas", Status: model.StatusDraft, Servings: 2,
		Categories:  []string{"Sriubos"},
		Ingredients: []string{"vanduo"}, Steps: []string{"virti"},
		CreatedAt: time.Now().UTC(),
	}
	f := newRecipeFixture(seed)

	r, err := f.svc.Update(context.Background(), "r1",
		validation.NewForm(map[string][]string{"status": {"published"}}), nil)
	require.NoError(t, err)

	assert.Equal(t, "Senas", r.Title)
	assert.Equal(t, 2, r.Servings)
	assert.Equal(t, model.StatusPublished, r.Status)
	assert.NotNil(t, r.UpdatedAt)
	assert.Equal(t, []string{"vanduo"}, r.Ingredients)

	counts := f.index.Counts()
	require.Len(t, counts, 1)
	assert.Equal(t, "Sriubos", counts[0].Name)
}

func TestUpdateReplacesImage(t *testing.T) {
	f := newRecipeFixture()
	ctx := context.Background()
	created, err := f.svc.Create(ctx, recipeForm("Tinginys"), pngImage())
	require.NoError(t, err)
	oldImage := created.Image

	updated, err := f.svc.Update(ctx, created.ID, validation.Form{}, pngImage())
	require.NoError(t, err)

	assert.NotEqual(t, oldImage, updated.Image)
	assert.True(t, f.blobs.has(updated.Image))
	assert.False(t, f.blobs.has(oldImage))
}

func TestUpdateKeepsOldImageWhenSaveFails(t *testing.T) {
	f := newRecipeFixture()
	ctx := context.Background()
	created, err := f.svc.Create(ctx, recipeForm("Tinginys"), pngImage())
	require.NoError(t, err)

	f.recipes.replaceErr = errBoom
	_, err = f.svc.Update(ctx, created.ID, validation.Form{}, pngImage())

	assert.ErrorIs(t, err, ErrUpstream)
	assert.True(t, f.blobs.has(created.Image))
	assert.Len(t, f.blobs.objects, 1)
}

func TestUpdateRemoveImage(t *testing.T) {
	f := newRecipeFixture()
	ctx := context.Background()
	created, err := f.svc.Create(ctx, recipeForm("Tinginys"), pngImage())
	require.NoError(t, err)

	form := validation.NewForm(map[string][]string{"remove_image": {"true"}})
	updated, err := f.svc.Update(ctx, created.ID, form, nil)
	require.NoError(t, err)

	assert.Empty(t, updated.Image)
	assert.Empty(t, updated.ImageURL)
	assert.Empty(t, f.blobs.objects)
}

func TestUpdateMissing(t *testing.T) {
	f := newRecipeFixture()

	_, err := f.svc.Update(context.Background(), "nope", recipeForm("Tinginys"), nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name      string
		withImage bool
	}{
		{name: "with image", withImage: true},
		{name: "without image"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRecipeFixture()
			ctx := context.Background()

			var img *validation.Image
			if tt.withImage {
				img = pngImage()
			}
			created, err := f.svc.Create(ctx, recipeForm("Tinginys"), img)
			require.NoError(t, err)
			f.comments.items = []model.Comment{{ID: "c1", RecipeID: created.ID}, {ID: "c2", RecipeID: "other"}}

			require.NoError(t, f.svc.Delete(ctx, created.ID))

			_, err = f.svc.Get(ctx, created.ID, true)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Empty(t, f.blobs.objects)
			if tt.withImage {
				assert.Equal(t, []string{created.Image}, f.blobs.removed)
			} else {
				assert.Empty(t, f.blobs.removed)
			}
			assert.Len(t, f.comments.items, 1)
			assert.Empty(t, f.index.Counts())
		})
	}
}

func TestDeleteMissing(t *testing.T) {
	f := newRecipeFixture()

	assert.ErrorIs(t, f.svc.Delete(context.Background(), "nope"), ErrNotFound)
}
