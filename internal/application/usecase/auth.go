package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"saukstas/internal/application/validation"
	"saukstas/internal/domain/model"
	"saukstas/internal/domain/repository/attempts"
	"saukstas/internal/domain/repository/database"
	"saukstas/pkg/logger"
)

type AuthConfig struct {
	MaxAttempts int
	Lockout     time.Duration
	SetupKey    string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *model.User
}

type SetupInput struct {
	SetupKey string
	Username string
	Email    string
	Password string
}

// Authenticator checks admin credentials and tracks failed attempts per identity.
type Authenticator struct {
	users     database.UserRepository
	attempts  attempts.Store
	tokens    *Tokens
	cfg       AuthConfig
	cost      int
	dummyHash []byte
	now       func() time.Time
}

func NewAuthenticator(users database.UserRepository, store attempts.Store, tokens *Tokens,
	cfg AuthConfig,
) *Authenticator {
	return newAuthenticator(users, store, tokens, cfg, bcrypt.DefaultCost)
}

func newAuthenticator(users database.UserRepository, store attempts.Store, tokens *Tokens,
	cfg AuthConfig, cost int,
) *Authenticator {
	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)
	if err != nil {
		logger.Error("failed to build dummy hash", "err", err)
	}

	return &Authenticator{
		users:     users,
		attempts:  store,
		tokens:    tokens,
		cfg:       cfg,
		cost:      cost,
		dummyHash: dummy,
		now:       time.Now,
	}
}

// Login checks credentials. Failures are counted per account, so the username
// and the email of one admin share a budget. Unknown identities are counted by
// the identity itself.
func (a *Authenticator) Login(ctx context.Context, identity, password string) (*LoginResult, error) {
	identity = strings.ToLower(strings.TrimSpace(identity))
	if identity == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := a.users.GetByIdentity(ctx, identity)
	switch {
	case errors.Is(err, database.ErrNotFound):
		user = nil
	case err != nil:
		return nil, upstream("failed to load user", err)
	}

	key := attemptKey(identity, user)
	now := a.now()
	rec, err := a.attempts.Load(ctx, key)
	if err != nil {
		return nil, upstream("failed to load login attempts", err)
	}
	if rec.Locked(now) {
		return nil, &LockedError{Remaining: rec.LockedUntil.Sub(now)}
	}

	if user == nil {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))

		return nil, a.fail(ctx, key, now)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil ||
		user.Role != model.RoleAdmin {
		return nil, a.fail(ctx, key, now)
	}

	if err := a.attempts.Clear(ctx, key); err != nil {
		logger.Warn("failed to clear login attempts", "key", key, "err", err)
	}
	if err := a.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		logger.Warn("failed to update last login", "user", user.ID, "err", err)
	}
	user.LastLogin = &now

	token, exp, err := a.tokens.IssueSession(user)
	if err != nil {
		return nil, upstream("failed to issue token", err)
	}

	logger.Info("admin logged in", "user", user.Username)

	return &LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}

func attemptKey(identity string, user *model.User) string {
	if user != nil {
		return "user:" + user.ID
	}

	return "identity:" + identity
}

func (a *Authenticator) fail(ctx context.Context, key string, now time.Time) error {
	rec, err := a.attempts.Update(ctx, key, a.cfg.Lockout, func(cur model.LoginAttempts) model.LoginAttempts {
		return cur.Fail(now, a.cfg.MaxAttempts, a.cfg.Lockout)
	})
	if err != nil {
		return upstream("failed to save login attempts", err)
	}

	if rec.Locked(now) {
		logger.Warn("login locked", "key", key, "failures", rec.Failures)

		return &LockedError{Remaining: rec.LockedUntil.Sub(now)}
	}

	return ErrInvalidCredentials
}

// Verify resolves a bearer token to its admin user.
func (a *Authenticator) Verify(ctx context.Context, token string) (*model.User, error) {
	claims, err := a.tokens.ParseSession(token)
	if err != nil {
		return nil, err
	}

	user, err := a.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, upstream("failed to load user", err)
	}
	if user.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}

	return user, nil
}

// SetupAdmin creates the single admin account. It works once, and only with the shared setup key.
func (a *Authenticator) SetupAdmin(ctx context.Context, in SetupInput) (*model.User, error) {
	if a.cfg.SetupKey == "" {
		return nil, ErrSetupUnavailable
	}
	if subtle.ConstantTimeCompare([]byte(in.SetupKey), []byte(a.cfg.SetupKey)) != 1 {
		return nil, ErrForbidden
	}

	n, err := a.users.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return nil, upstream("failed to count admins", err)
	}
	if n > 0 {
		return nil, ErrSetupUnavailable
	}

	username := strings.TrimSpace(in.Username)
	var errs validation.Errors
	if len([]rune(username)) < 3 {
		errs = append(errs, "username must be at least 3 characters")
	}
	if len(in.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	email := ""
	if strings.TrimSpace(in.Email) != "" {
		if email, err = validation.Email(in.Email); err != nil {
			errs = append(errs, "email must be a valid email address")
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), a.cost)
	if err != nil {
		return nil, upstream("failed to hash password", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		CreatedAt:    a.now().UTC(),
	}
	if err := a.users.Insert(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, validation.Errors{"username is already taken"}
		}

		return nil, upstream("failed to create admin", err)
	}

	logger.Info("admin account created", "user", username)

	return user, nil
}
