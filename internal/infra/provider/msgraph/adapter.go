// Package msgraph implements the Microsoft identity platform flow shared by
// the Outlook and Teams integrations. Ingestion is not built yet.
package msgraph

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"performiq/config"
	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/service"
	"performiq/internal/infra/httpclient"
	"performiq/internal/infra/provider/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Requested scopes per product.
var (
	OutlookScopes = []string{"openid", "profile", "email", "Mail.Read", "offline_access"}
	TeamsScopes   = []string{"openid", "profile", "email", "Chat.Read", "ChannelMessage.Read.All", "offline_access"}
)

// Endpoints are the Microsoft identity platform URLs.
type Endpoints struct {
	AuthURL  string
	TokenURL string
}

// DefaultEndpoints use the multi-tenant "common" authority.
var DefaultEndpoints = Endpoints{
	AuthURL:  "https://login.microsoftonline.com/common/oauth2/v2.0/authorize",
	TokenURL: "https://login.microsoftonline.com/common/oauth2/v2.0/token",
}

// fallbackAccountID keys accounts whose token carries no object id.
const fallbackAccountID = "account"

type adapter struct {
	provider  entity.Provider
	scopes    []string
	cfg       *config.Config
	creds     config.ProviderCredentials
	endpoints Endpoints
	http      *httpclient.Client
	recorder  *common.SyncStateRecorder
	logger    *slog.Logger
}

// NewOutlook builds the Outlook adapter.
func NewOutlook(params common.Params) service.ProviderAdapter {
	return newAdapter(params, entity.ProviderOutlook, OutlookScopes, DefaultEndpoints)
}

// NewTeams builds the Teams adapter.
func NewTeams(params common.Params) service.ProviderAdapter {
	return newAdapter(params, entity.ProviderTeams, TeamsScopes, DefaultEndpoints)
}

// NewWithEndpoints builds either adapter against custom endpoints.
func NewWithEndpoints(params common.Params, provider entity.Provider, endpoints Endpoints) service.ProviderAdapter {
	scopes := OutlookScopes
	if provider == entity.ProviderTeams {
		scopes = TeamsScopes
	}

	return newAdapter(params, provider, scopes, endpoints)
}

func newAdapter(params common.Params, provider entity.Provider, scopes []string, endpoints Endpoints) *adapter {
	return &adapter{
		provider:  provider,
		scopes:    scopes,
		cfg:       params.Config,
		creds:     params.Config.Providers.Microsoft,
		endpoints: endpoints,
		http:      params.HTTP,
		recorder:  &common.SyncStateRecorder{States: params.SyncStates, Logger: params.Logger},
		logger:    params.Logger,
	}
}

func (a *adapter) Provider() entity.Provider {
	return a.provider
}

func (a *adapter) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     a.creds.ClientID,
		ClientSecret: a.creds.ClientSecret,
		RedirectURL:  common.RedirectURI(a.cfg, a.creds, a.provider),
		Scopes:       a.scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  a.endpoints.AuthURL,
			TokenURL: a.endpoints.TokenURL,
		},
	}
}

func (a *adapter) ConnectURL(state string) (string, error) {
	if err := common.RequireCredentials(a.creds, false); err != nil {
		return "", err
	}

	return a.oauthConfig().AuthCodeURL(state), nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
	IDToken      string `json:"id_token"`
}

// idClaims are the identity claims read from the id_token.
type idClaims struct {
	ObjectID          string `json:"oid"`
	Email             string `json:"email"`
	PreferredUsername string `json:"preferred_username"`
	jwt.RegisteredClaims
}

func (a *adapter) ExchangeCode(ctx context.Context, code string) (*service.ExchangeResult, error) {
	if err := common.RequireCredentials(a.creds, true); err != nil {
		return nil, err
	}

	cfg := a.oauthConfig()
	form := url.Values{}
	form.Set("client_id", cfg.ClientID)
	form.Set("client_secret", cfg.ClientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", cfg.RedirectURL)
	form.Set("grant_type", "authorization_code")
	form.Set("scope", strings.Join(a.scopes, " "))

	var resp tokenResponse
	if err := a.http.PostForm(ctx, a.endpoints.TokenURL, form, nil, &resp); err != nil {
		return nil, common.ExchangeError(a.provider, err)
	}
	if resp.AccessToken == "" {
		return nil, &domainerrors.OAuthExchangeError{Provider: a.provider.String(), Reason: "missing access token"}
	}

	tokens := &entity.TokenSet{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		Scope:        resp.Scope,
		ExpiresIn:    resp.ExpiresIn,
	}
	tokens.Expiry = tokens.ExpiresAt(time.Now().UTC())

	accountID, email := a.identity(ctx, resp.IDToken)

	return &service.ExchangeResult{
		Tokens:               tokens,
		ExternalAccountID:    accountID,
		ExternalAccountEmail: email,
	}, nil
}

// identity reads the account from the id_token. The token arrives straight
// from the token endpoint over TLS, so its signature is not verified here.
func (a *adapter) identity(ctx context.Context, idToken string) (string, string) {
	if idToken == "" {
		return fallbackAccountID, ""
	}

	claims := &idClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		a.logger.WarnContext(ctx, "Failed to read Microsoft id_token", slog.String("provider", a.provider.String()), slog.Any("error", err))

		return fallbackAccountID, ""
	}

	email := claims.Email
	if email == "" {
		email = claims.PreferredUsername
	}

	switch {
	case claims.ObjectID != "":
		return claims.ObjectID, email
	case email != "":
		return email, email
	default:
		return fallbackAccountID, ""
	}
}

func (a *adapter) Sync(ctx context.Context, orgID, accountID uuid.UUID, _ string) (*entity.SyncResult, error) {
	return common.NotImplementedSync(ctx, a.recorder, orgID, a.provider, accountID), nil
}
