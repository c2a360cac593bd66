// Package context carries the request id and a scoped logger through echo and
// context.Context. HTTP requests and scheduled sync jobs both open a scope;
// the sync orchestrator narrows it to one org or integration account so that
// adapter and repository log lines carry the same keys.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
)

// HeaderXRequestID is read from callers and echoed back on every response.
const HeaderXRequestID = "X-Request-Id"

// Log attribute keys shared by every scoped logger.
const (
	AttrRequestID = "request_id"
	AttrOrgID     = "orgID"
	AttrProvider  = "provider"
	AttrAccountID = "accountID"
)

// echo stores values by string key.
const echoRequestIDKey = AttrRequestID

// GetRequestID returns the id set by the request id middleware, or a fresh
// one when the middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" outside a scope.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the scoped logger, or fallback outside a scope.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithRequestScope opens a scope for one request or job run.
func WithRequestScope(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	logger := base.With(slog.String(AttrRequestID, requestID))
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, logger), logger
}

// WithOrg narrows the current scope to one org.
func WithOrg(ctx context.Context, fallback *slog.Logger, orgID uuid.UUID) (context.Context, *slog.Logger) {
	logger := GetLoggerOrDefault(ctx, fallback).With(slog.String(AttrOrgID, orgID.String()))

	return WithLogger(ctx, logger), logger
}

// WithAccount narrows the current scope to one integration account. The org
// key comes from the enclosing WithOrg scope.
func WithAccount(ctx context.Context, fallback *slog.Logger, provider string, accountID uuid.UUID) (context.Context, *slog.Logger) {
	logger := GetLoggerOrDefault(ctx, fallback).With(
		slog.String(AttrProvider, provider),
		slog.String(AttrAccountID, accountID.String()),
	)

	return WithLogger(ctx, logger), logger
}
