package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/service"
	"performiq/internal/infra/provider/providertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlack struct {
	listCalls    atomic.Int32
	failList     bool
	failChannel  string
	oauthPayload map[string]any
}

func (f *fakeSlack) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/oauth.v2.access":
		_ = r.ParseForm()
		if r.PostForm.Get("code") == "" {
			http.Error(w, "missing code", http.StatusBadRequest)

			return
		}
		_ = json.NewEncoder(w).Encode(f.oauthPayload)
	case "/conversations.list":
		f.listCalls.Add(1)
		if f.failList {
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "invalid_auth"})

			return
		}
		if r.URL.Query().Get("cursor") == "" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"ok":                true,
				"channels":          []map[string]any{{"id": "C1", "name": "general"}},
				"response_metadata": map[string]any{"next_cursor": "page2"},
			})

			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":       true,
			"channels": []map[string]any{{"id": "C2", "name": "random"}},
		})
	case "/conversations.history":
		channel := r.URL.Query().Get("channel")
		if r.Header.Get("Authorization") != "Bearer xoxb-token" {
			http.Error(w, "bad token", http.StatusUnauthorized)

			return
		}
		if channel == f.failChannel {
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "not_in_channel"})

			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok": true,
			"messages": []map[string]any{
				{"type": "message", "user": "U1", "text": "hi", "ts": "1700000000.000100"},
				{"type": "message", "user": "U2", "text": "reply", "ts": "1700000001.000100", "thread_ts": "1700000000.000100"},
				{"type": "message", "user": "U3", "subtype": "channel_join", "text": "joined", "ts": "1700000002.000100"},
				{"type": "message", "text": "bot says", "ts": "1700000003.000100"},
			},
		})
	default:
		http.NotFound(w, r)
	}
}

func newTestAdapter(t *testing.T, fake *fakeSlack) (*providertest.Env, service.ProviderAdapter) {
	t.Helper()

	env := providertest.New(t, fake)
	env.Params.Config.Providers.Slack.ClientID = "client-id"
	env.Params.Config.Providers.Slack.ClientSecret = "client-secret"

	adapter := NewWithEndpoints(env.Params, Endpoints{
		AuthURL: env.Server.URL + "/authorize",
		APIBase: env.Server.URL,
	})

	return env, adapter
}

func TestConnectURL(t *testing.T) {
	_, adapter := newTestAdapter(t, &fakeSlack{})

	raw, err := adapter.ConnectURL("state-123")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "http://localhost:5000/oauth/slack/callback", q.Get("redirect_uri"))
	assert.Equal(t, strings.Join(Scopes, ","), q.Get("scope"))
}

func TestConnectURLNotConfigured(t *testing.T) {
	env := providertest.New(t, &fakeSlack{})
	adapter := New(env.Params)

	_, err := adapter.ConnectURL("state")
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotConfigured)
}

func TestExchangeCode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, adapter := newTestAdapter(t, &fakeSlack{oauthPayload: map[string]any{
			"ok":           true,
			"access_token": "xoxb-token",
			"token_type":   "bot",
			"scope":        "channels:read",
			"team":         map[string]any{"id": "T1", "name": "Acme"},
		}})

		result, err := adapter.ExchangeCode(context.Background(), "code")
		require.NoError(t, err)
		assert.Equal(t, "T1", result.ExternalAccountID)
		assert.Equal(t, "Acme", result.ExternalAccountName)
		assert.Equal(t, "xoxb-token", result.Tokens.AccessToken)
		assert.False(t, result.Tokens.HasRefreshToken())
	})

	t.Run("slack rejects code", func(t *testing.T) {
		_, adapter := newTestAdapter(t, &fakeSlack{oauthPayload: map[string]any{"ok": false, "error": "invalid_code"}})

		_, err := adapter.ExchangeCode(context.Background(), "code")
		var exchangeErr *domainerrors.OAuthExchangeError
		require.ErrorAs(t, err, &exchangeErr)
		assert.Equal(t, "invalid_code", exchangeErr.Reason)
	})

	t.Run("http failure", func(t *testing.T) {
		_, adapter := newTestAdapter(t, &fakeSlack{})

		_, err := adapter.ExchangeCode(context.Background(), "")
		var exchangeErr *domainerrors.OAuthExchangeError
		require.ErrorAs(t, err, &exchangeErr)
		assert.Equal(t, http.StatusBadRequest, exchangeErr.Status)
	})
}

func TestSyncIsIdempotent(t *testing.T) {
	fake := &fakeSlack{}
	env, adapter := newTestAdapter(t, fake)
	account := env.SeedAccount(t, entity.ProviderSlack, "T1", &entity.TokenSet{AccessToken: "xoxb-token"})
	ctx := context.Background()

	first, err := adapter.Sync(ctx, env.OrgID, account.ID, account.TokenEncrypted)
	require.NoError(t, err)
	assert.True(t, first.Success)
	assert.Equal(t, entity.SyncStatusSucceeded, first.Status)
	assert.Equal(t, 4, first.EventsProcessed)

	second, err := adapter.Sync(ctx, env.OrgID, account.ID, account.TokenEncrypted)
	require.NoError(t, err)
	assert.Equal(t, 4, second.EventsProcessed)

	assert.Equal(t, int64(4), env.Count(t, "events"))
	assert.Equal(t, int64(4), env.Count(t, "raw_events"))

	states := env.SyncStates(t)
	require.Len(t, states, 1)
	assert.NotNil(t, states[0].LastSuccessAt)
	assert.Nil(t, states[0].LastError)

	events := env.Events(t)
	var reply *entity.NormalizedEvent
	for _, e := range events {
		if e.ExternalID == "C1:1700000001.000100" {
			reply = e
		}
	}
	require.NotNil(t, reply)
	assert.Equal(t, "C1:1700000000.000100", *reply.ChannelOrThreadID)
}

func TestSyncContinuesPastChannelFailure(t *testing.T) {
	env, adapter := newTestAdapter(t, &fakeSlack{failChannel: "C1"})
	account := env.SeedAccount(t, entity.ProviderSlack, "T1", &entity.TokenSet{AccessToken: "xoxb-token"})

	result, err := adapter.Sync(context.Background(), env.OrgID, account.ID, account.TokenEncrypted)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.EventsProcessed)
}

func TestSyncListingFailure(t *testing.T) {
	env, adapter := newTestAdapter(t, &fakeSlack{failList: true})
	account := env.SeedAccount(t, entity.ProviderSlack, "T1", &entity.TokenSet{AccessToken: "xoxb-token"})

	result, err := adapter.Sync(context.Background(), env.OrgID, account.ID, account.TokenEncrypted)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, entity.SyncStatusFailed, result.Status)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "invalid_auth")

	states := env.SyncStates(t)
	require.Len(t, states, 1)
	require.NotNil(t, states[0].LastError)
	assert.Nil(t, states[0].LastSuccessAt)
}

func TestSyncUndecryptableToken(t *testing.T) {
	env, adapter := newTestAdapter(t, &fakeSlack{})
	account := env.SeedAccount(t, entity.ProviderSlack, "T1", &entity.TokenSet{AccessToken: "xoxb-token"})

	result, err := adapter.Sync(context.Background(), env.OrgID, account.ID, "not-a-blob")
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "decrypt tokens")
}
