package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"saukstas/internal/application/usecase"
	"saukstas/internal/domain/model"
	"saukstas/internal/presentation"
)

type stubAuth struct{}

func (stubAuth) Login(context.Context, string, string) (*usecase.LoginResult, error) {
	return nil, usecase.ErrInvalidCredentials
}

func (stubAuth) Verify(_ context.Context, token string) (*model.User, error) {
	switch token {
	case "good":
		return &model.User{ID: "u1", Username: "admin", Role: model.RoleAdmin}, nil
	case "editor":
		return nil, usecase.ErrForbidden
	default:
		return nil, usecase.ErrUnauthorized
	}
}

func (stubAuth) SetupAdmin(context.Context, usecase.SetupInput) (*model.User, error) {
	return nil, usecase.ErrSetupUnavailable
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name            string
		header          string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "Missing Authorization header",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "missing Authorization header",
		},
		{
			name:            "Wrong prefix",
			header:          "Basic sometoken",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "missing Bearer prefix",
		},
		{
			name:            "Empty token",
			header:          "Bearer   ",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "empty bearer token",
		},
		{
			name:            "Invalid token",
			header:          "Bearer expired",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Unauthorized",
		},
		{
			name:            "Not an admin",
			header:          "Bearer editor",
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "Forbidden",
		},
		{
			name:            "Success",
			header:          "Bearer good",
			expectedStatus:  http.StatusOK,
			expectedMessage: "admin",
		},
	}

	e := echo.New()
	handler := func(c echo.Context) error {
		user, _ := c.Get(presentation.UserKey).(*model.User)

		return c.String(http.StatusOK, user.Username)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				req.Header.Set(presentation.AuthKey, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := AuthMiddleware(stubAuth{})(handler)
			_ = mw(c)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedMessage)
		})
	}
}

func TestRateLimit(t *testing.T) {
	e := echo.New()
	e.Use(RateLimit(2))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.RemoteAddr = "10.0.0.1:1234"
		last = httptest.NewRecorder()
		e.ServeHTTP(last, req)
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "30", last.Header().Get(presentation.RetryAfter))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
