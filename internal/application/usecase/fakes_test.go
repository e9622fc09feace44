package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"saukstas/internal/domain/entity"
	"saukstas/internal/domain/model"
	"saukstas/internal/domain/repository/database"
	"saukstas/internal/domain/repository/mailer"
)

var errBoom = errors.New("boom")

type fakeRecipes struct {
	mu         sync.Mutex
	items      map[string]model.Recipe
	insertErr  error
	replaceErr error
	inserts    int
}

func newFakeRecipes(recipes ...model.Recipe) *fakeRecipes {
	f := &fakeRecipes{items: make(map[string]model.Recipe)}
	for _, r := range recipes {
		f.items[r.ID] = r
	}

	return f
}

func (f *fakeRecipes) Insert(_ context.Context, r *model.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserts++
	f.items[r.ID] = *r

	return nil
}

func (f *fakeRecipes) Replace(_ context.Context, r *model.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.replaceErr != nil {
		return f.replaceErr
	}
	if _, ok := f.items[r.ID]; !ok {
		return database.ErrNotFound
	}
	f.items[r.ID] = *r

	return nil
}

func (f *fakeRecipes) GetByID(_ context.Context, id string) (*model.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.items[id]
	if !ok {
		return nil, database.ErrNotFound
	}

	return &r, nil
}

func (f *fakeRecipes) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return database.ErrNotFound
	}
	delete(f.items, id)

	return nil
}

func (f *fakeRecipes) matching(filter database.RecipeFilter) []model.Recipe {
	out := make([]model.Recipe, 0)
	for _, r := range f.items {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.Category != "" && !contains(r.Categories, filter.Category) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out
}

func (f *fakeRecipes) List(_ context.Context, filter database.RecipeFilter) ([]model.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.matching(filter)
	if filter.Offset >= int64(len(all)) {
		return []model.Recipe{}, nil
	}
	all = all[filter.Offset:]
	if filter.Limit > 0 && int64(len(all)) > filter.Limit {
		all = all[:filter.Limit]
	}

	return all, nil
}

func (f *fakeRecipes) Count(_ context.Context, filter database.RecipeFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return int64(len(f.matching(filter))), nil
}

func (f *fakeRecipes) CountWithImage(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.items {
		if r.Image != "" {
			n++
		}
	}

	return n, nil
}

func (f *fakeRecipes) PublishedCategories(_ context.Context) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out [][]string
	for _, r := range f.items {
		if r.Status == model.StatusPublished {
			out = append(out, r.Categories)
		}
	}

	return out, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}

	return false
}

type fakeComments struct {
	mu      sync.Mutex
	items   []model.Comment
	inserts int
}

func (f *fakeComments) Insert(_ context.Context, c *model.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts++
	f.items = append(f.items, *c)

	return nil
}

func (f *fakeComments) find(recipeID, id string) int {
	for i, c := range f.items {
		if c.ID == id && c.RecipeID == recipeID {
			return i
		}
	}

	return -1
}

func (f *fakeComments) Get(_ context.Context, recipeID, id string) (*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(recipeID, id)
	if i < 0 {
		return nil, database.ErrNotFound
	}
	c := f.items[i]

	return &c, nil
}

func (f *fakeComments) Delete(_ context.Context, recipeID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(recipeID, id)
	if i < 0 {
		return database.ErrNotFound
	}
	f.items = append(f.items[:i], f.items[i+1:]...)

	return nil
}

func (f *fakeComments) DeleteByRecipe(_ context.Context, recipeID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.items[:0]
	var n int64
	for _, c := range f.items {
		if c.RecipeID == recipeID {
			n++

			continue
		}
		kept = append(kept, c)
	}
	f.items = kept

	return n, nil
}

func (f *fakeComments) SetStatus(_ context.Context, recipeID, id string, status model.CommentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(recipeID, id)
	if i < 0 {
		return database.ErrNotFound
	}
	f.items[i].Status = status

	return nil
}

func (f *fakeComments) filter(recipeID string, status model.CommentStatus, limit int64) []model.Comment {
	out := make([]model.Comment, 0)
	for _, c := range f.items {
		if recipeID != "" && c.RecipeID != recipeID {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}

	return out
}

func (f *fakeComments) ListByRecipe(_ context.Context, recipeID string, status model.CommentStatus) ([]model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.filter(recipeID, status, 0), nil
}

func (f *fakeComments) List(_ context.Context, status model.CommentStatus, limit int64) ([]model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.filter("", status, limit), nil
}

func (f *fakeComments) Count(_ context.Context, status model.CommentStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return int64(len(f.filter("", status, 0))), nil
}

type fakeSubscribers struct {
	mu    sync.Mutex
	items map[string]model.Subscriber
}

func newFakeSubscribers(emails ...string) *fakeSubscribers {
	f := &fakeSubscribers{items: make(map[string]model.Subscriber)}
	for i, e := range emails {
		f.items[e] = model.Subscriber{
			ID: e, Email: e, Active: true,
			SubscribedAt: time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC),
		}
	}

	return f
}

func (f *fakeSubscribers) GetByEmail(_ context.Context, email string) (*model.Subscriber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[email]
	if !ok {
		return nil, database.ErrNotFound
	}

	return &s, nil
}

func (f *fakeSubscribers) Insert(_ context.Context, s *model.Subscriber) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[s.Email]; ok {
		return database.ErrDuplicate
	}
	f.items[s.Email] = *s

	return nil
}

func (f *fakeSubscribers) SetActive(_ context.Context, email string, active bool, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[email]
	if !ok {
		return database.ErrNotFound
	}
	s.Active = active
	if active {
		s.SubscribedAt, s.UnsubscribedAt = at, nil
	} else {
		s.UnsubscribedAt = &at
	}
	f.items[email] = s

	return nil
}

func (f *fakeSubscribers) Delete(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[email]; !ok {
		return database.ErrNotFound
	}
	delete(f.items, email)

	return nil
}

func (f *fakeSubscribers) List(_ context.Context, activeOnly bool) ([]model.Subscriber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Subscriber, 0)
	for _, s := range f.items {
		if activeOnly && !s.Active {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })

	return out, nil
}

func (f *fakeSubscribers) CountActive(ctx context.Context) (int64, error) {
	subs, _ := f.List(ctx, true)

	return int64(len(subs)), nil
}

type fakeSettings struct {
	page *model.AboutPage
	err  error
}

func (f *fakeSettings) GetAbout(_ context.Context) (*model.AboutPage, error) {
	if f.page == nil {
		return nil, database.ErrNotFound
	}
	p := *f.page

	return &p, nil
}

func (f *fakeSettings) PutAbout(_ context.Context, page *model.AboutPage) error {
	if f.err != nil {
		return f.err
	}
	p := *page
	f.page = &p

	return nil
}

type fakeUsers struct {
	mu    sync.Mutex
	users []model.User
	touch int
}

func (f *fakeUsers) GetByIdentity(_ context.Context, identity string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Username, identity) || (u.Email != "" && strings.EqualFold(u.Email, identity)) {
			return &u, nil
		}
	}

	return nil, database.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}

	return nil, database.ErrNotFound
}

func (f *fakeUsers) Insert(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Username, user.Username) {
			return database.ErrDuplicate
		}
	}
	f.users = append(f.users, *user)

	return nil
}

func (f *fakeUsers) CountByRole(_ context.Context, role string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}

	return n, nil
}

func (f *fakeUsers) TouchLastLogin(_ context.Context, _ string, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touch++

	return nil
}

type fakeAttempts struct {
	mu    sync.Mutex
	items map[string]model.LoginAttempts
}

func newFakeAttempts() *fakeAttempts {
	return &fakeAttempts{items: make(map[string]model.LoginAttempts)}
}

func (f *fakeAttempts) Load(_ context.Context, key string) (model.LoginAttempts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.items[key], nil
}

func (f *fakeAttempts) Update(_ context.Context, key string, _ time.Duration,
	fn func(model.LoginAttempts) model.LoginAttempts,
) (model.LoginAttempts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[key] = fn(f.items[key])

	return f.items[key], nil
}

func (f *fakeAttempts) Clear(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, key)

	return nil
}

// fakeBlobs implements the uploader, remover and lister over a map.
type fakeBlobs struct {
	mu        sync.Mutex
	objects   map[string][]byte
	removed   []string
	uploadErr error
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: make(map[string][]byte)}
}

func (f *fakeBlobs) Upload(_ context.Context, key string, body io.Reader, _ int64, contentType string) (entity.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return entity.UploadResult{}, f.uploadErr
	}
	var buf bytes.Buffer
	n, _ := io.Copy(&buf, body)
	f.objects[key] = buf.Bytes()

	return entity.UploadResult{Key: key, URL: f.URL(key), Size: n, ContentType: contentType}, nil
}

func (f *fakeBlobs) URL(key string) string {
	return "http://cdn.test/" + key
}

func (f *fakeBlobs) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, key)
	delete(f.objects, key)

	return nil
}

func (f *fakeBlobs) List(_ context.Context, prefix string) ([]model.MediaObject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.MediaObject, 0)
	for k, v := range f.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, model.MediaObject{Path: k, URL: f.URL(k), Size: int64(len(v))})
		}
	}

	return out, nil
}

func (f *fakeBlobs) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]

	return ok
}

type fakeSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	fail map[string]bool
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[msg.To] {
		return errBoom
	}
	f.sent = append(f.sent, msg)

	return nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
