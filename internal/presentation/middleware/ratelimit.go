package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"saukstas/internal/presentation"
	"saukstas/pkg/logger"
)

// RateLimit allows perMinute requests per client IP, refilled evenly over the
// minute. Rejected requests get 429 with Retry-After.
func RateLimit(perMinute int) echo.MiddlewareFunc {
	if perMinute < 1 {
		perMinute = 1
	}
	wait := 60.0 / float64(perMinute)

	return echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Method == http.MethodOptions
		},
		Store: echoMiddleware.NewRateLimiterMemoryStoreWithConfig(echoMiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(perMinute) / 60),
			Burst:     perMinute,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Warn("rate limiter could not identify client", "err", err)

			return presentation.Failure(c, http.StatusForbidden, "Forbidden")
		},
		DenyHandler: func(c echo.Context, identifier string, _ error) error {
			logger.Debug("rate limited", "ip", identifier, "uri", c.Request().RequestURI)
			c.Response().Header().Set(presentation.RetryAfter, presentation.RetryAfterSeconds(wait))

			return presentation.Failure(c, http.StatusTooManyRequests, "Too many requests, please try again later")
		},
	})
}
