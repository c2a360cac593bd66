// Package handler contains the echo handlers of the public API.
package handler

import (
	"net/http"
	"time"

	"performiq/internal/delivery/http/middleware"
	"performiq/internal/delivery/http/response"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// orgID reads the org placed on the context by the auth middleware. When it is
// missing the 401 has already been written and ok is false.
func orgID(c echo.Context) (id uuid.UUID, ok bool, err error) {
	id, ok = middleware.OrgID(c)
	if !ok {
		return uuid.Nil, false, response.Unauthorized(c, "INVALID_TOKEN", "Organization missing from token")
	}

	return id, true, nil
}

func providerParam(c echo.Context) (entity.Provider, error) {
	provider, err := entity.ParseProvider(c.Param("provider"))
	if err != nil {
		return "", domainerrors.ErrInvalidProvider
	}

	return provider, nil
}
