package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/observability"
)

// HeaderRequestID carries the correlation id across services. Incoming ids
// are trusted; a fresh one is minted when absent.
const HeaderRequestID = "X-Request-ID"

const requestIDContextKey = "request-id"

// RegisterMiddleware attaches the cross-cutting middleware stack.
func RegisterMiddleware(e *echo.Echo, logger *slog.Logger) {
	e.Use(recoverMiddleware(logger))
	e.Use(requestIDMiddleware())
	e.Use(observabilityMiddleware(logger))
}

func requestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			reqID := ctx.Request().Header.Get(HeaderRequestID)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			ctx.Set(requestIDContextKey, reqID)
			ctx.Response().Header().Set(HeaderRequestID, reqID)
			return next(ctx)
		}
	}
}

func observabilityMiddleware(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			route := ctx.Path()
			if route == "" {
				route = ctx.Request().URL.Path
			}
			status := strconv.Itoa(ctx.Response().Status)

			observability.HTTPRequestsTotal.WithLabelValues(ctx.Request().Method, route, status).Inc()
			observability.HTTPRequestDuration.WithLabelValues(ctx.Request().Method, route, status).
				Observe(time.Since(start).Seconds())

			args := []any{
				"method", ctx.Request().Method,
				"route", route,
				"status", ctx.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", ctx.RealIP(),
			}
			if reqID, ok := ctx.Get(requestIDContextKey).(string); ok && reqID != "" {
				args = append(args, "request_id", reqID)
			}
			logger.Info("http_request", args...)

			return nil
		}
	}
}

func recoverMiddleware(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered", "error", rec)
					err = ctx.JSON(http.StatusInternalServerError,
						ErrorResponse{Code: http.StatusInternalServerError, Message: "internal error"})
				}
			}()
			return next(ctx)
		}
	}
}
