package middleware

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"saukstas/pkg/logger"
)

// RequestLogger writes one line per request through the process logger.
func RequestLogger() echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v echoMiddleware.RequestLoggerValues) error {
			kv := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"ip", v.RemoteIP,
			}
			switch {
			case v.Error != nil:
				logger.Error("request", append(kv, "err", v.Error)...)
			case v.Status >= 500:
				logger.Error("request", kv...)
			default:
				logger.Info("request", kv...)
			}

			return nil
		},
	})
}
