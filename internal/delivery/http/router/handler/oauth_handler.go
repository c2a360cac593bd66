package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"performiq/config"
	deliverycontext "performiq/internal/delivery/context"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/errors"
	"performiq/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Values in the script block are JS-escaped by html/template.
var callbackPage = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
  <head><title>Integration Connected</title></head>
  <body>
    <h1>Successfully connected {{.Provider}}!</h1>
    <p>You can close this window.</p>
    <script>
      if (window.opener) {
        window.opener.postMessage({ type: 'oauth_complete', provider: {{.Provider}} }, {{.Origin}});
      }
    </script>
  </body>
</html>
`))

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	IntegrationUC usecase.IntegrationUsecase
	Config        *config.Config
	Logger        *slog.Logger
}

// OAuthHandler serves the provider redirect. The browser lands here without
// our token, so errors are plain text.
type OAuthHandler struct {
	integrationUC usecase.IntegrationUsecase
	origin        string
	logger        *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	return &OAuthHandler{
		integrationUC: params.IntegrationUC,
		origin:        params.Config.App.BaseURL,
		logger:        params.Logger,
	}
}

// Callback handles GET /oauth/:provider/callback
func (h *OAuthHandler) Callback(c echo.Context) error {
	provider, err := providerParam(c)
	if err != nil {
		return h.fail(c, err)
	}

	input := &usecase.CallbackInput{Provider: provider}
	if err := c.Bind(input); err != nil {
		return h.fail(c, domainerrors.ErrInvalidCallback)
	}
	input.Provider = provider

	account, err := h.integrationUC.HandleCallback(c.Request().Context(), input)
	if err != nil {
		return h.fail(c, err)
	}

	h.log(c).Info("OAuth callback successful",
		slog.String("provider", provider.String()),
		slog.String("orgID", account.OrgID.String()),
	)

	var page bytes.Buffer
	if err := callbackPage.Execute(&page, map[string]string{
		"Provider": provider.String(),
		"Origin":   h.origin,
	}); err != nil {
		return errors.Wrap(err, "render callback page")
	}

	return c.HTML(http.StatusOK, page.String())
}

func (h *OAuthHandler) fail(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		h.log(c).Warn("OAuth callback rejected",
			slog.String("provider", c.Param("provider")),
			slog.String("code", appErr.ErrorCode()),
			slog.Any("error", err),
		)

		msg := appErr.Message()
		if appErr.HTTPCode() == http.StatusServiceUnavailable && appErr.Details() != "" {
			msg += " - " + appErr.Details()
		}

		return c.String(appErr.HTTPCode(), msg)
	}

	h.log(c).Error("OAuth callback error", slog.String("provider", c.Param("provider")), slog.Any("error", err))

	return c.String(http.StatusInternalServerError, domainerrors.ErrOAuthExchangeFailed.Message())
}

func (h *OAuthHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}
