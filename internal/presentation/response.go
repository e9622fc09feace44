package presentation

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"saukstas/internal/application/usecase"
	"saukstas/internal/application/validation"
	"saukstas/pkg/logger"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Meta    any      `json:"meta,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

func OKWithMeta(c echo.Context, data, meta any) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Meta: meta})
}

func Message(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: msg})
}

func Failure(c echo.Context, status int, msg string) error {
	return c.JSON(status, Envelope{Success: false, Error: msg})
}

// Fail renders err with the status of its class. Upstream detail never reaches the client.
func Fail(c echo.Context, err error) error {
	var (
		verrs  validation.Errors
		locked *usecase.LockedError
		herr   *echo.HTTPError
	)

	switch {
	case errors.As(err, &verrs):
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: "Validation failed", Errors: verrs})
	case errors.As(err, &locked):
		c.Response().Header().Set(RetryAfter, RetryAfterSeconds(locked.Remaining.Seconds()))

		return Failure(c, http.StatusTooManyRequests, locked.Error())
	case errors.Is(err, usecase.ErrNotFound):
		return Failure(c, http.StatusNotFound, "Not found")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return Failure(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, usecase.ErrUnauthorized):
		return Failure(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, usecase.ErrForbidden):
		return Failure(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, usecase.ErrSetupUnavailable):
		return Failure(c, http.StatusConflict, "Admin setup is not available")
	case errors.As(err, &herr):
		return Failure(c, herr.Code, http.StatusText(herr.Code))
	}

	if !errors.Is(err, usecase.ErrUpstream) {
		logger.Error("request failed", "method", c.Request().Method, "uri", c.Request().RequestURI, "err", err)
	}

	return Failure(c, http.StatusInternalServerError, "Internal server error")
}

// ErrorHandler renders errors that escape the handlers, such as unknown routes
// and oversized bodies, in the same envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if ferr := Fail(c, err); ferr != nil {
		logger.Error("failed to write error response", "err", ferr)
	}
}

// RetryAfterSeconds formats a wait as a Retry-After value of at least one second.
func RetryAfterSeconds(seconds float64) string {
	return strconv.Itoa(int(math.Max(1, math.Ceil(seconds))))
}
