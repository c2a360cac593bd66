package handler

import (
	"net/http"

	"performiq/internal/delivery/http/response"
	"performiq/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IntegrationHandlerParams holds dependencies for IntegrationHandler, injected by Fx.
type IntegrationHandlerParams struct {
	fx.In

	IntegrationUC usecase.IntegrationUsecase
}

// IntegrationHandler serves the authenticated integration routes.
type IntegrationHandler struct {
	integrationUC usecase.IntegrationUsecase
}

// NewIntegrationHandler is the constructor for IntegrationHandler
func NewIntegrationHandler(params IntegrationHandlerParams) *IntegrationHandler {
	return &IntegrationHandler{
		integrationUC: params.IntegrationUC,
	}
}

// ConnectResponse carries the provider authorization URL.
type ConnectResponse struct {
	URL string `json:"url"`
}

// ListIntegrations handles GET /api/integrations
func (h *IntegrationHandler) ListIntegrations(c echo.Context) error {
	orgID, ok, err := orgID(c)
	if !ok {
		return err
	}

	list, err := h.integrationUC.ListIntegrations(c.Request().Context(), orgID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, list)
}

// Connect handles POST /api/integrations/:provider/connect
func (h *IntegrationHandler) Connect(c echo.Context) error {
	orgID, ok, err := orgID(c)
	if !ok {
		return err
	}

	provider, err := providerParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	url, err := h.integrationUC.ConnectURL(c.Request().Context(), orgID, provider)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, ConnectResponse{URL: url})
}

// Disconnect handles POST /api/integrations/:provider/disconnect
func (h *IntegrationHandler) Disconnect(c echo.Context) error {
	orgID, ok, err := orgID(c)
	if !ok {
		return err
	}

	provider, err := providerParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.integrationUC.Disconnect(c.Request().Context(), orgID, provider); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}
