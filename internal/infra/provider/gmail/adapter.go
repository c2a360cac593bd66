// Package gmail implements the Google OAuth flow and Gmail ingestion through
// the Gmail v1 API.
package gmail

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"performiq/config"
	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/repository"
	"performiq/internal/domain/service"
	"performiq/internal/errors"
	"performiq/internal/infra/httpclient"
	"performiq/internal/infra/provider/common"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Scope is the read-only Gmail scope.
const Scope = "https://www.googleapis.com/auth/gmail.readonly"

// Endpoints are the Google URLs the adapter talks to.
type Endpoints struct {
	AuthURL  string
	TokenURL string
	// APIBase is the Gmail API root, with a trailing slash.
	APIBase string
}

// DefaultEndpoints point at Google.
var DefaultEndpoints = Endpoints{
	AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
	APIBase:  "https://gmail.googleapis.com/",
}

const (
	userID       = "me"
	rawEventType = "email"
)

type adapter struct {
	cfg       *config.Config
	creds     config.ProviderCredentials
	endpoints Endpoints
	http      *httpclient.Client
	vault     service.TokenVault
	accounts  repository.IntegrationAccountRepository
	txManager repository.TransactionManager
	recorder  *common.SyncStateRecorder
	logger    *slog.Logger
}

// New builds the Gmail adapter against Google.
func New(params common.Params) service.ProviderAdapter {
	return NewWithEndpoints(params, DefaultEndpoints)
}

// NewWithEndpoints builds the Gmail adapter against custom endpoints.
func NewWithEndpoints(params common.Params, endpoints Endpoints) service.ProviderAdapter {
	return &adapter{
		cfg:       params.Config,
		creds:     params.Config.Providers.Google,
		endpoints: endpoints,
		http:      params.HTTP,
		vault:     params.Vault,
		accounts:  params.Accounts,
		txManager: params.TxManager,
		recorder:  &common.SyncStateRecorder{States: params.SyncStates, Logger: params.Logger},
		logger:    params.Logger,
	}
}

func (a *adapter) Provider() entity.Provider {
	return entity.ProviderGmail
}

func (a *adapter) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     a.creds.ClientID,
		ClientSecret: a.creds.ClientSecret,
		RedirectURL:  common.RedirectURI(a.cfg, a.creds, entity.ProviderGmail),
		Scopes:       []string{Scope},
		Endpoint: oauth2.Endpoint{
			AuthURL:  a.endpoints.AuthURL,
			TokenURL: a.endpoints.TokenURL,
		},
	}
}

// ConnectURL requests offline access with forced consent so a refresh token is issued.
func (a *adapter) ConnectURL(state string) (string, error) {
	if err := common.RequireCredentials(a.creds, false); err != nil {
		return "", err
	}

	return a.oauthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
}

func (a *adapter) ExchangeCode(ctx context.Context, code string) (*service.ExchangeResult, error) {
	if err := common.RequireCredentials(a.creds, true); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client_id", a.creds.ClientID)
	form.Set("client_secret", a.creds.ClientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", common.RedirectURI(a.cfg, a.creds, entity.ProviderGmail))
	form.Set("grant_type", "authorization_code")

	var resp tokenResponse
	if err := a.http.PostForm(ctx, a.endpoints.TokenURL, form, nil, &resp); err != nil {
		return nil, common.ExchangeError(entity.ProviderGmail, err)
	}
	if resp.AccessToken == "" {
		return nil, &domainerrors.OAuthExchangeError{Provider: entity.ProviderGmail.String(), Reason: "missing access token"}
	}

	tokens := &entity.TokenSet{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		Scope:        resp.Scope,
		ExpiresIn:    resp.ExpiresIn,
	}
	tokens.Expiry = tokens.ExpiresAt(time.Now().UTC())

	srv, err := a.newService(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: resp.AccessToken, TokenType: "Bearer"}))
	if err != nil {
		return nil, common.ExchangeError(entity.ProviderGmail, err)
	}

	var profile *gmailapi.Profile
	err = a.http.Retry(ctx, "gmail profile", func(ctx context.Context) (int, time.Duration, error) {
		var err error
		profile, err = srv.Users.GetProfile(userID).Context(ctx).Do()

		return apiStatus(err)
	})
	if err != nil {
		return nil, &domainerrors.OAuthExchangeError{Provider: entity.ProviderGmail.String(), Reason: "failed to fetch Gmail profile: " + err.Error()}
	}
	if profile.EmailAddress == "" {
		return nil, &domainerrors.OAuthExchangeError{Provider: entity.ProviderGmail.String(), Reason: "profile has no email address"}
	}

	return &service.ExchangeResult{
		Tokens:               tokens,
		ExternalAccountID:    profile.EmailAddress,
		ExternalAccountEmail: profile.EmailAddress,
	}, nil
}

func (a *adapter) newService(ctx context.Context, src oauth2.TokenSource) (*gmailapi.Service, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.http.HTTPClient())

	srv, err := gmailapi.NewService(ctx,
		option.WithHTTPClient(oauth2.NewClient(ctx, src)),
		option.WithEndpoint(a.endpoints.APIBase),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create gmail service")
	}

	return srv, nil
}

// refreshRecorder remembers the last token minted by a refresh so it can be persisted.
type refreshRecorder struct {
	src oauth2.TokenSource

	mu        sync.Mutex
	refreshed *oauth2.Token
}

func (r *refreshRecorder) Token() (*oauth2.Token, error) {
	tok, err := r.src.Token()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.refreshed = tok
	r.mu.Unlock()

	return tok, nil
}

func (r *refreshRecorder) last() *oauth2.Token {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.refreshed
}

func (a *adapter) Sync(ctx context.Context, orgID, accountID uuid.UUID, tokenEncrypted string) (*entity.SyncResult, error) {
	processed, err := a.sync(ctx, orgID, accountID, tokenEncrypted)

	return common.Finish(ctx, a.recorder, orgID, entity.ProviderGmail, accountID, processed, err), nil
}

func (a *adapter) sync(ctx context.Context, orgID, accountID uuid.UUID, tokenEncrypted string) (int, error) {
	tokens, err := common.DecryptAccessToken(a.vault, entity.ProviderGmail, tokenEncrypted)
	if err != nil {
		return 0, err
	}

	current := &oauth2.Token{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    "Bearer",
	}
	if tokens.Expiry != nil {
		current.Expiry = *tokens.Expiry
	}

	// The inner source only ever refreshes; the reuse wrapper serves the
	// stored token until it expires.
	refreshCtx := context.WithValue(ctx, oauth2.HTTPClient, a.http.HTTPClient())
	recorder := &refreshRecorder{src: a.oauthConfig().TokenSource(refreshCtx, &oauth2.Token{RefreshToken: tokens.RefreshToken})}
	src := oauth2.ReuseTokenSource(current, recorder)

	srv, err := a.newService(ctx, src)
	if err != nil {
		return 0, &domainerrors.SyncProviderError{Provider: entity.ProviderGmail.String(), Op: "create client", Err: err}
	}

	processed, syncErr := a.syncMessages(ctx, srv, orgID)

	if tok := recorder.last(); tok != nil {
		a.persistRefreshedToken(ctx, accountID, tokens, tok)
	}

	return processed, syncErr
}

func (a *adapter) syncMessages(ctx context.Context, srv *gmailapi.Service, orgID uuid.UUID) (int, error) {
	query := fmt.Sprintf("newer_than:%dd", max(int(a.cfg.Sync.Window.Hours()/24), 1))
	processed := 0
	pageToken := ""

	for page := 0; page < a.cfg.Sync.GmailMaxPages; page++ {
		call := srv.Users.Messages.List(userID).Q(query).MaxResults(int64(a.cfg.Sync.GmailPageSize))
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		var list *gmailapi.ListMessagesResponse
		err := a.http.Retry(ctx, "gmail messages.list", func(ctx context.Context) (int, time.Duration, error) {
			var err error
			list, err = call.Context(ctx).Do()

			return apiStatus(err)
		})
		if err != nil {
			return processed, &domainerrors.SyncProviderError{Provider: entity.ProviderGmail.String(), Op: "list messages", Err: err}
		}

		if len(list.Messages) == 0 {
			a.logger.InfoContext(ctx, "No Gmail messages found", slog.String("orgID", orgID.String()))

			return processed, nil
		}

		a.logger.InfoContext(ctx, "Found Gmail messages",
			slog.Int("messageCount", len(list.Messages)),
			slog.String("orgID", orgID.String()),
		)

		for _, ref := range list.Messages {
			if ctx.Err() != nil {
				return processed, errors.WithStack(ctx.Err())
			}
			if err := a.ingest(ctx, srv, orgID, ref.Id); err != nil {
				a.logger.WarnContext(ctx, "Failed to ingest Gmail message", slog.Any("error", err))

				continue
			}
			processed++
		}

		pageToken = list.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return processed, nil
}

func (a *adapter) ingest(ctx context.Context, srv *gmailapi.Service, orgID uuid.UUID, messageID string) error {
	var msg *gmailapi.Message
	err := a.http.Retry(ctx, "gmail messages.get", func(ctx context.Context) (int, time.Duration, error) {
		var err error
		msg, err = srv.Users.Messages.Get(userID, messageID).
			Format("metadata").
			MetadataHeaders(MetadataHeaders...).
			Context(ctx).
			Do()

		return apiStatus(err)
	})
	if err != nil {
		return &domainerrors.SyncItemError{Provider: entity.ProviderGmail.String(), ExternalID: messageID, Err: err}
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return &domainerrors.SyncItemError{Provider: entity.ProviderGmail.String(), ExternalID: messageID, Err: err}
	}

	event := NormalizeMessage(orgID, msg)
	item := common.Item{
		Raw: &entity.RawEvent{
			OrgID:      orgID,
			Provider:   entity.ProviderGmail,
			EventType:  rawEventType,
			OccurredAt: event.OccurredAt,
			ExternalID: event.ExternalID,
			Payload:    payload,
		},
		Event: event,
	}
	if err := common.Ingest(ctx, a.txManager, item); err != nil {
		return &domainerrors.SyncItemError{Provider: entity.ProviderGmail.String(), ExternalID: messageID, Err: err}
	}

	return nil
}

// persistRefreshedToken re-encrypts a refreshed access token. Google keeps
// the refresh token stable, so the stored one is carried over when absent.
func (a *adapter) persistRefreshedToken(ctx context.Context, accountID uuid.UUID, old *entity.TokenSet, tok *oauth2.Token) {
	if tok.AccessToken == "" || tok.AccessToken == old.AccessToken {
		return
	}

	updated := &entity.TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Scope:        old.Scope,
	}
	if updated.RefreshToken == "" {
		updated.RefreshToken = old.RefreshToken
	}
	if !tok.Expiry.IsZero() {
		expiry := tok.Expiry.UTC()
		updated.Expiry = &expiry
	}

	blob, err := a.vault.EncryptTokens(updated)
	if err != nil {
		a.logger.ErrorContext(ctx, "Failed to encrypt refreshed Gmail token", slog.Any("error", err))

		return
	}
	if err := a.accounts.UpdateToken(ctx, accountID, blob, updated.Expiry); err != nil {
		a.logger.ErrorContext(ctx, "Failed to persist refreshed Gmail token", slog.Any("error", err))

		return
	}

	a.logger.InfoContext(ctx, "Refreshed Gmail access token", slog.String("accountID", accountID.String()))
}

// apiStatus reports the HTTP status and Retry-After hint of a Gmail API error
// so httpclient.Retry can classify it. Status 0 means no response arrived.
func apiStatus(err error) (int, time.Duration, error) {
	if err == nil {
		return 0, 0, nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code, httpclient.RetryAfter(apiErr.Header), err
	}

	return 0, 0, err
}
