package middleware

import (
	"net/http"
	"strconv"

	"performiq/config"
	"performiq/internal/delivery/http/response"
	domainerrors "performiq/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware applies a per-IP request budget to public routes.
type RateLimitMiddleware struct {
	enabled    bool
	limit      int
	retryAfter string
	store      echomiddleware.RateLimiterStore
}

// NewRateLimitMiddleware builds a token bucket that refills rateLimit.requests
// per rateLimit.window, with the full budget available as burst.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	rl := cfg.RateLimit
	perSecond := float64(rl.Requests) / rl.Window.Seconds()

	return &RateLimitMiddleware{
		enabled:    rl.Enabled,
		limit:      rl.Requests,
		retryAfter: strconv.Itoa(int(rl.Window.Seconds())),
		store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     rl.Requests,
			ExpiresIn: rl.Window,
		}),
	}
}

// Handle returns the middleware. It is a no-op when rate limiting is disabled.
func (m *RateLimitMiddleware) Handle() echo.MiddlewareFunc {
	if !m.enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	limiter := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: m.store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			c.Response().Header().Set("Retry-After", m.retryAfter)

			return response.Error(c, http.StatusTooManyRequests,
				domainerrors.ErrRateLimited.ErrorCode(), domainerrors.ErrRateLimited.Message(), "")
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		limited := limiter(next)

		return func(c echo.Context) error {
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(m.limit))

			return limited(c)
		}
	}
}
