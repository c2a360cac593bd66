// Package zoom implements the Zoom OAuth flow. Meeting ingestion is not built yet.
package zoom

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/url"
	"time"

	"performiq/config"
	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/service"
	"performiq/internal/infra/httpclient"
	"performiq/internal/infra/provider/common"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Endpoints are the Zoom URLs the adapter talks to.
type Endpoints struct {
	AuthURL  string
	TokenURL string
	APIBase  string
}

// DefaultEndpoints point at zoom.us.
var DefaultEndpoints = Endpoints{
	AuthURL:  "https://zoom.us/oauth/authorize",
	TokenURL: "https://zoom.us/oauth/token",
	APIBase:  "https://api.zoom.us/v2",
}

const fallbackAccountID = "zoom_user"

type adapter struct {
	cfg       *config.Config
	creds     config.ProviderCredentials
	endpoints Endpoints
	http      *httpclient.Client
	recorder  *common.SyncStateRecorder
	logger    *slog.Logger
}

// New builds the Zoom adapter.
func New(params common.Params) service.ProviderAdapter {
	return NewWithEndpoints(params, DefaultEndpoints)
}

// NewWithEndpoints builds the Zoom adapter against custom endpoints.
func NewWithEndpoints(params common.Params, endpoints Endpoints) service.ProviderAdapter {
	return &adapter{
		cfg:       params.Config,
		creds:     params.Config.Providers.Zoom,
		endpoints: endpoints,
		http:      params.HTTP,
		recorder:  &common.SyncStateRecorder{States: params.SyncStates, Logger: params.Logger},
		logger:    params.Logger,
	}
}

func (a *adapter) Provider() entity.Provider {
	return entity.ProviderZoom
}

func (a *adapter) redirectURI() string {
	return common.RedirectURI(a.cfg, a.creds, entity.ProviderZoom)
}

// ConnectURL omits scopes; Zoom uses the ones configured on the app.
func (a *adapter) ConnectURL(state string) (string, error) {
	if err := common.RequireCredentials(a.creds, false); err != nil {
		return "", err
	}

	cfg := &oauth2.Config{
		ClientID:    a.creds.ClientID,
		RedirectURL: a.redirectURI(),
		Endpoint:    oauth2.Endpoint{AuthURL: a.endpoints.AuthURL, TokenURL: a.endpoints.TokenURL},
	}

	return cfg.AuthCodeURL(state), nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ExchangeCode authenticates the client with HTTP Basic auth.
func (a *adapter) ExchangeCode(ctx context.Context, code string) (*service.ExchangeResult, error) {
	if err := common.RequireCredentials(a.creds, true); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", a.redirectURI())

	basic := base64.StdEncoding.EncodeToString([]byte(a.creds.ClientID + ":" + a.creds.ClientSecret))
	headers := map[string]string{"Authorization": "Basic " + basic}

	var resp tokenResponse
	if err := a.http.PostForm(ctx, a.endpoints.TokenURL, form, headers, &resp); err != nil {
		return nil, common.ExchangeError(entity.ProviderZoom, err)
	}
	if resp.AccessToken == "" {
		return nil, &domainerrors.OAuthExchangeError{Provider: entity.ProviderZoom.String(), Reason: "missing access token"}
	}

	tokens := &entity.TokenSet{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		Scope:        resp.Scope,
		ExpiresIn:    resp.ExpiresIn,
	}
	tokens.Expiry = tokens.ExpiresAt(time.Now().UTC())

	result := &service.ExchangeResult{Tokens: tokens, ExternalAccountID: fallbackAccountID}

	var user userResponse
	if err := a.http.GetJSON(ctx, a.endpoints.APIBase+"/users/me", common.BearerHeaders(resp.AccessToken), &user); err != nil {
		a.logger.WarnContext(ctx, "Failed to look up Zoom user", slog.Any("error", err))

		return result, nil
	}
	if user.ID != "" {
		result.ExternalAccountID = user.ID
	}
	result.ExternalAccountEmail = user.Email

	return result, nil
}

func (a *adapter) Sync(ctx context.Context, orgID, accountID uuid.UUID, _ string) (*entity.SyncResult, error) {
	return common.NotImplementedSync(ctx, a.recorder, orgID, entity.ProviderZoom, accountID), nil
}
