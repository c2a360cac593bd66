// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"performiq/internal/delivery/http/middleware"
	"performiq/internal/delivery/http/router/handler"
	"performiq/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IntegrationHandler *handler.IntegrationHandler
	OAuthHandler       *handler.OAuthHandler
	AdminHandler       *handler.AdminHandler
	EventHandler       *handler.EventHandler
	WebSocketHandler   *handler.WebSocketHandler
	AuthMiddleware     *middleware.AuthMiddleware
	RateLimit          *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	limit := r.params.RateLimit.Handle()

	e.GET("/health", handler.HealthCheck)

	// Provider redirects; the org comes from the state token, not from auth.
	oauthGroup := e.Group("/oauth", limit)
	{
		oauthGroup.GET("/:provider/callback", r.params.OAuthHandler.Callback)
	}

	api := e.Group("/api", limit, auth.Authenticate)

	integrations := api.Group("/integrations")
	{
		integrations.GET("", r.params.IntegrationHandler.ListIntegrations)
		integrations.POST("/:provider/connect", r.params.IntegrationHandler.Connect)
		integrations.POST("/:provider/disconnect", r.params.IntegrationHandler.Disconnect)
	}

	api.GET("/events", r.params.EventHandler.ListEvents)

	admin := api.Group("/admin", auth.RequireRole(constants.RoleAdmin))
	{
		admin.POST("/jobs/run", r.params.AdminHandler.RunJobs)
		admin.GET("/jobs/status", r.params.AdminHandler.JobStatus)
	}

	e.GET("/ws", r.params.WebSocketHandler.Connect)
}
