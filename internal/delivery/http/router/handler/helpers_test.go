package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"performiq/config"
	"performiq/internal/delivery/http/middleware"
	"performiq/internal/delivery/http/validator"
	"performiq/internal/domain/constants"
	"performiq/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	testOrgID  = uuid.MustParse("5b0e8f4e-3c0a-4b8e-9d3e-2f4b6a1c7d90")
	testUserID = uuid.MustParse("9a7c1e2d-6b4f-4a3e-8c1d-0e2f3a4b5c6d")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.BaseURL = "https://app.example.com"

	return cfg
}

// newContext builds an echo context for target with path params bound in order.
func newContext(method, target string, authenticated bool, names []string, values ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if authenticated {
		middleware.SetClaims(c, &service.Claims{UserID: testUserID, OrgID: testOrgID, Roles: []string{constants.RoleAdmin}})
	}

	return c, rec
}
