package handler

import (
	"log/slog"
	"net/url"

	"performiq/config"
	deliverycontext "performiq/internal/delivery/context"
	"performiq/internal/delivery/http/response"
	"performiq/internal/domain/service"
	"performiq/internal/infra/realtime"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"nhooyr.io/websocket"
)

// WebSocketHandlerParams holds dependencies for WebSocketHandler, injected by Fx.
type WebSocketHandlerParams struct {
	fx.In

	TokenSvc service.TokenService
	Hub      *realtime.Hub
	Config   *config.Config
	Logger   *slog.Logger
}

// WebSocketHandler upgrades authenticated clients onto the realtime hub.
type WebSocketHandler struct {
	tokenSvc       service.TokenService
	hub            *realtime.Hub
	originPatterns []string
	logger         *slog.Logger
}

// NewWebSocketHandler is the constructor for WebSocketHandler
func NewWebSocketHandler(params WebSocketHandlerParams) *WebSocketHandler {
	var patterns []string
	if u, err := url.Parse(params.Config.App.BaseURL); err == nil && u.Host != "" {
		patterns = append(patterns, u.Host)
	}

	return &WebSocketHandler{
		tokenSvc:       params.TokenSvc,
		hub:            params.Hub,
		originPatterns: patterns,
		logger:         params.Logger,
	}
}

// Connect handles GET /ws?token=<jwt>. Browsers cannot set headers on a
// websocket handshake, so the access token travels in the query string.
func (h *WebSocketHandler) Connect(c echo.Context) error {
	claims, err := h.tokenSvc.ValidateToken(c.QueryParam("token"))
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		With(slog.String("orgID", claims.OrgID.String()))

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		// Accept has already written the handshake failure.
		logger.Warn("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.CloseNow()

	logger.Info("WebSocket client connected")
	if err := h.hub.Serve(c.Request().Context(), conn, claims.OrgID); err != nil {
		logger.Debug("WebSocket client closed", slog.Any("error", err))
	}

	return nil
}
