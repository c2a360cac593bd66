// Package slack implements the Slack OAuth v2 flow and channel history ingestion.
package slack

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"performiq/config"
	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/repository"
	"performiq/internal/domain/service"
	"performiq/internal/errors"
	"performiq/internal/infra/httpclient"
	"performiq/internal/infra/provider/common"
	"performiq/internal/infra/provider/normalize"

	"github.com/google/uuid"
)

// Scopes requested on connect.
var Scopes = []string{
	"channels:history",
	"channels:read",
	"groups:history",
	"groups:read",
	"im:history",
	"im:read",
	"mpim:history",
	"mpim:read",
	"users:read",
	"team:read",
}

// Endpoints are the Slack URLs the adapter talks to.
type Endpoints struct {
	AuthURL string
	APIBase string
}

// DefaultEndpoints point at slack.com.
var DefaultEndpoints = Endpoints{
	AuthURL: "https://slack.com/oauth/v2/authorize",
	APIBase: "https://slack.com/api",
}

const rawEventType = "message"

type adapter struct {
	cfg       *config.Config
	creds     config.ProviderCredentials
	endpoints Endpoints
	http      *httpclient.Client
	vault     service.TokenVault
	txManager repository.TransactionManager
	recorder  *common.SyncStateRecorder
	logger    *slog.Logger
	now       func() time.Time
}

// New builds the Slack adapter against the public API.
func New(params common.Params) service.ProviderAdapter {
	return NewWithEndpoints(params, DefaultEndpoints)
}

// NewWithEndpoints builds the Slack adapter against custom endpoints.
func NewWithEndpoints(params common.Params, endpoints Endpoints) service.ProviderAdapter {
	return &adapter{
		cfg:       params.Config,
		creds:     params.Config.Providers.Slack,
		endpoints: endpoints,
		http:      params.HTTP,
		vault:     params.Vault,
		txManager: params.TxManager,
		recorder:  &common.SyncStateRecorder{States: params.SyncStates, Logger: params.Logger},
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (a *adapter) Provider() entity.Provider {
	return entity.ProviderSlack
}

func (a *adapter) redirectURI() string {
	return common.RedirectURI(a.cfg, a.creds, entity.ProviderSlack)
}

// ConnectURL builds the authorize URL. Slack wants comma separated scopes.
func (a *adapter) ConnectURL(state string) (string, error) {
	if err := common.RequireCredentials(a.creds, false); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("client_id", a.creds.ClientID)
	params.Set("scope", strings.Join(Scopes, ","))
	params.Set("redirect_uri", a.redirectURI())
	params.Set("state", state)

	return a.endpoints.AuthURL + "?" + params.Encode(), nil
}

type oauthResponse struct {
	OK          bool   `json:"ok"`
	Error       string `json:"error"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	Team        struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
}

func (a *adapter) ExchangeCode(ctx context.Context, code string) (*service.ExchangeResult, error) {
	if err := common.RequireCredentials(a.creds, true); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("client_id", a.creds.ClientID)
	form.Set("client_secret", a.creds.ClientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", a.redirectURI())

	var resp oauthResponse
	if err := a.http.PostForm(ctx, a.endpoints.APIBase+"/oauth.v2.access", form, nil, &resp); err != nil {
		return nil, common.ExchangeError(entity.ProviderSlack, err)
	}

	a.logger.DebugContext(ctx, "Slack token exchange response", slog.Bool("ok", resp.OK))

	if !resp.OK || resp.AccessToken == "" {
		reason := resp.Error
		if reason == "" {
			reason = "unknown error"
		}

		return nil, &domainerrors.OAuthExchangeError{Provider: entity.ProviderSlack.String(), Reason: reason}
	}
	if resp.Team.ID == "" {
		return nil, &domainerrors.OAuthExchangeError{Provider: entity.ProviderSlack.String(), Reason: "missing team id"}
	}

	return &service.ExchangeResult{
		Tokens: &entity.TokenSet{
			AccessToken: resp.AccessToken,
			TokenType:   resp.TokenType,
			Scope:       resp.Scope,
		},
		ExternalAccountID:   resp.Team.ID,
		ExternalAccountName: resp.Team.Name,
	}, nil
}

func (a *adapter) Sync(ctx context.Context, orgID, accountID uuid.UUID, tokenEncrypted string) (*entity.SyncResult, error) {
	processed, err := a.sync(ctx, orgID, tokenEncrypted)

	return common.Finish(ctx, a.recorder, orgID, entity.ProviderSlack, accountID, processed, err), nil
}

type listResponse struct {
	OK               bool      `json:"ok"`
	Error            string    `json:"error"`
	Channels         []Channel `json:"channels"`
	ResponseMetadata struct {
		NextCursor string `json:"next_cursor"`
	} `json:"response_metadata"`
}

type historyResponse struct {
	OK               bool              `json:"ok"`
	Error            string            `json:"error"`
	Messages         []json.RawMessage `json:"messages"`
	HasMore          bool              `json:"has_more"`
	ResponseMetadata struct {
		NextCursor string `json:"next_cursor"`
	} `json:"response_metadata"`
}

func (a *adapter) sync(ctx context.Context, orgID uuid.UUID, tokenEncrypted string) (int, error) {
	tokens, err := common.DecryptAccessToken(a.vault, entity.ProviderSlack, tokenEncrypted)
	if err != nil {
		return 0, err
	}
	headers := common.BearerHeaders(tokens.AccessToken)

	channels, err := a.listChannels(ctx, headers)
	if err != nil {
		return 0, &domainerrors.SyncProviderError{Provider: entity.ProviderSlack.String(), Op: "list channels", Err: err}
	}

	a.logger.InfoContext(ctx, "Fetched Slack channels",
		slog.Int("channelCount", len(channels)),
		slog.String("orgID", orgID.String()),
	)

	oldest := normalize.FormatSlackTS(a.now().Add(-a.cfg.Sync.Window))

	processed := 0
	for _, channel := range channels {
		if ctx.Err() != nil {
			return processed, errors.WithStack(ctx.Err())
		}
		processed += a.syncChannel(ctx, orgID, channel, oldest, headers)
	}

	return processed, nil
}

func (a *adapter) listChannels(ctx context.Context, headers map[string]string) ([]Channel, error) {
	limit := a.cfg.Sync.SlackChannelLimit
	channels := make([]Channel, 0, limit)
	cursor := ""

	for len(channels) < limit {
		params := url.Values{}
		params.Set("types", "public_channel,private_channel")
		params.Set("limit", strconv.Itoa(a.cfg.Sync.SlackPageSize))
		if cursor != "" {
			params.Set("cursor", cursor)
		}

		var resp listResponse
		if err := a.http.GetJSON(ctx, a.endpoints.APIBase+"/conversations.list?"+params.Encode(), headers, &resp); err != nil {
			return nil, err
		}
		if !resp.OK {
			return nil, errors.Errorf("slack API error: %s", resp.Error)
		}

		channels = append(channels, resp.Channels...)

		cursor = resp.ResponseMetadata.NextCursor
		if cursor == "" {
			break
		}
	}

	if len(channels) > limit {
		channels = channels[:limit]
	}

	return channels, nil
}

// syncChannel ingests one channel's recent history. Failures are logged and
// the channel is abandoned; whatever was ingested before counts.
func (a *adapter) syncChannel(ctx context.Context, orgID uuid.UUID, channel Channel, oldest string, headers map[string]string) int {
	processed := 0
	cursor := ""

	for {
		params := url.Values{}
		params.Set("channel", channel.ID)
		params.Set("oldest", oldest)
		params.Set("limit", strconv.Itoa(a.cfg.Sync.SlackPageSize))
		if cursor != "" {
			params.Set("cursor", cursor)
		}

		var resp historyResponse
		if err := a.http.GetJSON(ctx, a.endpoints.APIBase+"/conversations.history?"+params.Encode(), headers, &resp); err != nil {
			a.logger.WarnContext(ctx, "Failed to fetch channel history",
				slog.String("channel", channel.ID),
				slog.Any("error", err),
			)

			return processed
		}
		if !resp.OK {
			a.logger.WarnContext(ctx, "Failed to fetch channel history",
				slog.String("channel", channel.ID),
				slog.String("error", resp.Error),
			)

			return processed
		}

		a.logger.DebugContext(ctx, "Fetched channel messages",
			slog.String("channel", channel.Name),
			slog.Int("messageCount", len(resp.Messages)),
		)

		for _, raw := range resp.Messages {
			if err := a.ingest(ctx, orgID, channel, raw); err != nil {
				if !errors.Is(err, errSkipped) {
					a.logger.WarnContext(ctx, "Failed to ingest Slack message", slog.Any("error", err))
				}

				continue
			}
			processed++
		}

		cursor = resp.ResponseMetadata.NextCursor
		if !resp.HasMore || cursor == "" {
			return processed
		}
	}
}

var errSkipped = errors.New("message skipped")

func (a *adapter) ingest(ctx context.Context, orgID uuid.UUID, channel Channel, raw json.RawMessage) error {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return &domainerrors.SyncItemError{Provider: entity.ProviderSlack.String(), ExternalID: channel.ID, Err: err}
	}
	if ShouldSkip(&msg) {
		return errSkipped
	}

	event, err := NormalizeMessage(orgID, channel, &msg)
	if err != nil {
		return &domainerrors.SyncItemError{Provider: entity.ProviderSlack.String(), ExternalID: ExternalID(channel.ID, msg.TS), Err: err}
	}

	item := common.Item{
		Raw: &entity.RawEvent{
			OrgID:      orgID,
			Provider:   entity.ProviderSlack,
			EventType:  rawEventType,
			OccurredAt: event.OccurredAt,
			ExternalID: event.ExternalID,
			Payload:    raw,
		},
		Event: event,
	}
	if err := common.Ingest(ctx, a.txManager, item); err != nil {
		return &domainerrors.SyncItemError{Provider: entity.ProviderSlack.String(), ExternalID: event.ExternalID, Err: err}
	}

	return nil
}
