package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"performiq/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedEcho(enabled bool, requests int) *echo.Echo {
	cfg := &config.Config{}
	cfg.RateLimit.Enabled = enabled
	cfg.RateLimit.Requests = requests
	cfg.RateLimit.Window = time.Minute

	e := echo.New()
	e.Use(NewRateLimitMiddleware(cfg).Handle())
	e.GET("/api/events", okHandler)

	return e
}

func doRequest(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRateLimitMiddleware_DeniesOverBudget(t *testing.T) {
	e := newRateLimitedEcho(true, 3)

	for range 3 {
		rec := doRequest(e, "10.0.0.1")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := doRequest(e, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Too many requests")

	// Budgets are per client.
	assert.Equal(t, http.StatusOK, doRequest(e, "10.0.0.2").Code)
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	e := newRateLimitedEcho(false, 1)

	for range 5 {
		assert.Equal(t, http.StatusOK, doRequest(e, "10.0.0.1").Code)
	}
}
