package handler

import (
	"context"
	"time"

	"saukstas/internal/application/usecase"
	"saukstas/internal/application/validation"
	"saukstas/internal/domain/dto"
	"saukstas/internal/domain/model"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type fakeRecipes struct {
	filter  usecase.ListFilter
	form    validation.Form
	img     *validation.Image
	drafts  bool
	err     error
	deleted string
}

func (f *fakeRecipes) List(_ context.Context, filter usecase.ListFilter) (dto.RecipePage, error) {
	f.filter = filter
	if f.err != nil {
		return dto.RecipePage{}, f.err
	}

	return dto.RecipePage{
		Items: []model.Recipe{{ID: "r1", Title: "Kugelis", Status: model.StatusPublished}},
		Meta:  dto.ListMeta{Page: 1, Limit: 12, Total: 1},
	}, nil
}

func (f *fakeRecipes) Get(_ context.Context, id string, includeDrafts bool) (*model.Recipe, error) {
	f.drafts = includeDrafts
	if f.err != nil {
		return nil, f.err
	}

	return &model.Recipe{ID: id, Title: "Kugelis"}, nil
}

func (f *fakeRecipes) Create(_ context.Context, form validation.Form, img *validation.Image) (*model.Recipe, error) {
	f.form, f.img = form, img
	if f.err != nil {
		return nil, f.err
	}

	return &model.Recipe{ID: "new", Title: form.Get("title")}, nil
}

func (f *fakeRecipes) Update(_ context.Context, id string, form validation.Form, img *validation.Image) (*model.Recipe, error) {
	f.form, f.img = form, img
	if f.err != nil {
		return nil, f.err
	}

	return &model.Recipe{ID: id, Title: form.Get("title")}, nil
}

func (f *fakeRecipes) Delete(_ context.Context, id string) error {
	f.deleted = id

	return f.err
}

type fakeComments struct {
	form validation.Form
}

func (f *fakeComments) List(context.Context, string) ([]model.Comment, error) {
	return []model.Comment{}, nil
}

func (f *fakeComments) Add(_ context.Context, recipeID string, form validation.Form) (*model.Comment, error) {
	f.form = form
	if recipeID != "r1" {
		return nil, usecase.ErrNotFound
	}

	return &model.Comment{
		ID: "c1", RecipeID: recipeID, Author: form.Get("author"), Content: form.Get("content"),
		Status: model.CommentPending, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeComments) Delete(context.Context, string, string) error {
	return nil
}

func (f *fakeComments) Approve(_ context.Context, _, commentID string) error {
	if commentID != "c1" {
		return usecase.ErrNotFound
	}

	return nil
}

func (f *fakeComments) ListAll(context.Context, string) ([]dto.CommentView, error) {
	return []dto.CommentView{}, nil
}

type fakeAuth struct {
	err error
}

func (f *fakeAuth) Login(_ context.Context, identity, _ string) (*usecase.LoginResult, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &usecase.LoginResult{
		Token:     "signed",
		ExpiresAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		User:      &model.User{ID: "u1", Username: identity, PasswordHash: "secret-hash", Role: model.RoleAdmin},
	}, nil
}

func (f *fakeAuth) Verify(context.Context, string) (*model.User, error) {
	return &model.User{ID: "u1", Username: "admin", Role: model.RoleAdmin}, nil
}

func (f *fakeAuth) SetupAdmin(_ context.Context, in usecase.SetupInput) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &model.User{ID: "u1", Username: in.Username, Role: model.RoleAdmin}, nil
}

type fakeSubscribers struct {
	email   string
	token   string
	emails  []string
	removed string
}

func (f *fakeSubscribers) Subscribe(_ context.Context, email string) (usecase.Outcome, error) {
	f.email = email

	return usecase.Outcome{Success: true, Message: "ok"}, nil
}

func (f *fakeSubscribers) Unsubscribe(_ context.Context, email, token string) (usecase.Outcome, error) {
	f.email, f.token = email, token

	return usecase.Outcome{Success: false, Message: "invalid link"}, nil
}

func (f *fakeSubscribers) List(context.Context) ([]model.Subscriber, error) {
	return []model.Subscriber{}, nil
}

func (f *fakeSubscribers) Remove(_ context.Context, email string) error {
	f.removed = email

	return nil
}

func (f *fakeSubscribers) Import(_ context.Context, emails []string) (int, error) {
	f.emails = emails

	return len(emails), nil
}

type fakeNewsletter struct {
	subject, content string
	err              error
}

func (f *fakeNewsletter) Send(_ context.Context, subject, content string) (dto.SendResult, error) {
	f.subject, f.content = subject, content
	if f.err != nil {
		return dto.SendResult{}, f.err
	}

	return dto.SendResult{Sent: 2, Total: 3}, nil
}

func (f *fakeNewsletter) SendTest(context.Context, string, string) error {
	return f.err
}

type fakeAbout struct {
	page           model.AboutPage
	image, sidebar *validation.Image
}

func (f *fakeAbout) Get(context.Context) (model.AboutPage, error) {
	return model.DefaultAboutPage(), nil
}

func (f *fakeAbout) Update(_ context.Context, in model.AboutPage, image, sidebar *validation.Image) (model.AboutPage, error) {
	f.page, f.image, f.sidebar = in, image, sidebar

	return in, nil
}

type fakeMedia struct {
	category model.MediaCategory
	deleted  string
}

func (f *fakeMedia) Store(_ context.Context, _ *validation.Image, category model.MediaCategory) (dto.StoredFile, error) {
	f.category = category

	return dto.StoredFile{Filename: "1-ab.png", Path: string(category) + "/1-ab.png", URL: "http://cdn/x"}, nil
}

func (f *fakeMedia) Delete(_ context.Context, path string) error {
	f.deleted = path

	return nil
}

func (f *fakeMedia) List(context.Context, string) ([]model.MediaObject, error) {
	return []model.MediaObject{}, nil
}
