package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"saukstas/internal/domain/model"
)

const (
	purposeSession     = "session"
	purposeUnsubscribe = "unsubscribe"
)

type Claims struct {
	UserID   string `json:"uid,omitempty"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	Purpose  string `json:"purpose"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies HS256 tokens for admin sessions and unsubscribe links.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (t *Tokens) IssueSession(u *model.User) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl)

	claims := Claims{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
		Purpose:  purposeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}

	return signed, exp, nil
}

func (t *Tokens) ParseSession(token string) (*Claims, error) {
	claims, err := t.parse(token)
	if err != nil || claims.Purpose != purposeSession || claims.UserID == "" {
		return nil, ErrUnauthorized
	}

	return claims, nil
}

// IssueUnsubscribe returns a non-expiring token bound to email.
func (t *Tokens) IssueUnsubscribe(email string) (string, error) {
	claims := Claims{
		Purpose: purposeUnsubscribe,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  email,
			IssuedAt: jwt.NewNumericDate(t.now()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *Tokens) VerifyUnsubscribe(email, token string) bool {
	claims, err := t.parse(token)
	if err != nil {
		return false
	}

	return claims.Purpose == purposeUnsubscribe && claims.Subject == email
}

func (t *Tokens) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
