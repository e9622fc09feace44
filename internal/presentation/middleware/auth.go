package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"saukstas/internal/application/usecase"
	"saukstas/internal/application/usecase/abstraction"
	"saukstas/internal/presentation"
)

// AuthMiddleware admits requests carrying a valid admin bearer token and
// stores the resolved user under presentation.UserKey.
func AuthMiddleware(auth abstraction.Auth) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, err := bearerToken(ctx.Request().Header.Get(presentation.AuthKey))
			if err != nil {
				ctx.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

				return presentation.Failure(ctx, http.StatusUnauthorized, err.Error())
			}

			user, err := auth.Verify(ctx.Request().Context(), token)
			if err != nil {
				if errors.Is(err, usecase.ErrUnauthorized) {
					ctx.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer error="invalid_token"`)
				}

				return presentation.Fail(ctx, err)
			}

			ctx.Set(presentation.UserKey, user)

			return next(ctx)
		}
	}
}

func bearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("missing Authorization header")
	}
	if !strings.HasPrefix(authHeader, presentation.BearerPrefix) {
		return "", errors.New("missing Bearer prefix")
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, presentation.BearerPrefix))
	if token == "" {
		return "", errors.New("empty bearer token")
	}

	return token, nil
}
