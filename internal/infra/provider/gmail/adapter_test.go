package gmail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"performiq/config"
	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/service"
	"performiq/internal/infra/httpclient"
	"performiq/internal/infra/provider/providertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGoogle struct {
	accessToken string
	failList    bool
	// listOutages answers that many messages.list calls with 503 first.
	listOutages atomic.Int32
	listCalls   atomic.Int32
}

func (f *fakeGoogle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.URL.Path == "/token" {
		_ = r.ParseForm()
		switch r.PostForm.Get("grant_type") {
		case "authorization_code":
			if r.PostForm.Get("code") == "bad" {
				http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)

				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token":  f.accessToken,
				"refresh_token": "refresh-1",
				"expires_in":    3600,
				"token_type":    "Bearer",
				"scope":         Scope,
			})
		case "refresh_token":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token": f.accessToken,
				"expires_in":   3600,
				"token_type":   "Bearer",
			})
		default:
			http.Error(w, "unsupported grant", http.StatusBadRequest)
		}

		return
	}

	if r.Header.Get("Authorization") != "Bearer "+f.accessToken {
		http.Error(w, `{"error":{"code":401,"message":"unauthorized"}}`, http.StatusUnauthorized)

		return
	}

	switch {
	case r.URL.Path == "/gmail/v1/users/me/profile":
		_ = json.NewEncoder(w).Encode(map[string]any{"emailAddress": "ann@example.com"})
	case r.URL.Path == "/gmail/v1/users/me/messages":
		f.listCalls.Add(1)
		if f.listOutages.Add(-1) >= 0 {
			w.Header().Set("Retry-After", "0")
			http.Error(w, `{"error":{"code":503,"message":"unavailable"}}`, http.StatusServiceUnavailable)

			return
		}
		if f.failList {
			http.Error(w, `{"error":{"code":500,"message":"backend"}}`, http.StatusInternalServerError)

			return
		}
		if !strings.HasPrefix(r.URL.Query().Get("q"), "newer_than:7d") {
			http.Error(w, "bad query", http.StatusBadRequest)

			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"messages": []map[string]any{{"id": "m1", "threadId": "t1"}, {"id": "m2", "threadId": "t1"}, {"id": "missing"}},
		})
	case strings.HasPrefix(r.URL.Path, "/gmail/v1/users/me/messages/"):
		id := strings.TrimPrefix(r.URL.Path, "/gmail/v1/users/me/messages/")
		if id == "missing" {
			http.Error(w, `{"error":{"code":404,"message":"not found"}}`, http.StatusNotFound)

			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":           id,
			"threadId":     "t1",
			"labelIds":     []string{"INBOX"},
			"snippet":      "hello " + id,
			"internalDate": "1700000000000",
			"payload": map[string]any{
				"headers": []map[string]string{
					{"name": "From", "value": "Ann <ann@example.com>"},
					{"name": "To", "value": "bob@example.com"},
					{"name": "Subject", "value": "status"},
				},
			},
		})
	default:
		http.NotFound(w, r)
	}
}

func newTestAdapter(t *testing.T, fake *fakeGoogle) (*providertest.Env, service.ProviderAdapter) {
	t.Helper()

	env := providertest.New(t, fake)
	env.Params.Config.Providers.Google.ClientID = "google-client"
	env.Params.Config.Providers.Google.ClientSecret = "google-secret"

	adapter := NewWithEndpoints(env.Params, Endpoints{
		AuthURL:  env.Server.URL + "/auth",
		TokenURL: env.Server.URL + "/token",
		APIBase:  env.Server.URL + "/",
	})

	return env, adapter
}

func TestConnectURL(t *testing.T) {
	_, adapter := newTestAdapter(t, &fakeGoogle{})

	raw, err := adapter.ConnectURL("abc")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "google-client", q.Get("client_id"))
	assert.Equal(t, Scope, q.Get("scope"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "abc", q.Get("state"))
	assert.Equal(t, "http://localhost:5000/oauth/gmail/callback", q.Get("redirect_uri"))
}

func TestExchangeCode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, adapter := newTestAdapter(t, &fakeGoogle{accessToken: "access-1"})

		result, err := adapter.ExchangeCode(context.Background(), "good")
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", result.ExternalAccountID)
		assert.Equal(t, "ann@example.com", result.ExternalAccountEmail)
		assert.True(t, result.Tokens.HasRefreshToken())
		require.NotNil(t, result.Tokens.Expiry)
		assert.WithinDuration(t, time.Now().Add(time.Hour), *result.Tokens.Expiry, time.Minute)
	})

	t.Run("rejected code", func(t *testing.T) {
		_, adapter := newTestAdapter(t, &fakeGoogle{accessToken: "access-1"})

		_, err := adapter.ExchangeCode(context.Background(), "bad")
		var exchangeErr *domainerrors.OAuthExchangeError
		require.ErrorAs(t, err, &exchangeErr)
		assert.Equal(t, http.StatusBadRequest, exchangeErr.Status)
	})
}

func TestSyncIsIdempotent(t *testing.T) {
	env, adapter := newTestAdapter(t, &fakeGoogle{accessToken: "access-1"})
	account := env.SeedAccount(t, entity.ProviderGmail, "ann@example.com", &entity.TokenSet{AccessToken: "access-1"})
	ctx := context.Background()

	for range 2 {
		result, err := adapter.Sync(ctx, env.OrgID, account.ID, account.TokenEncrypted)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 2, result.EventsProcessed)
	}

	assert.Equal(t, int64(2), env.Count(t, "events"))
	assert.Equal(t, int64(2), env.Count(t, "raw_events"))

	events := env.Events(t)
	require.Len(t, events, 2)
	assert.Equal(t, "ann@example.com", *events[0].ActorEmail)
	assert.Len(t, events[0].Participants, 2)
}

func TestSyncRefreshesExpiredToken(t *testing.T) {
	env, adapter := newTestAdapter(t, &fakeGoogle{accessToken: "fresh"})
	expired := time.Now().Add(-time.Hour)
	account := env.SeedAccount(t, entity.ProviderGmail, "ann@example.com", &entity.TokenSet{
		AccessToken:  "stale",
		RefreshToken: "refresh-1",
		Expiry:       &expired,
	})

	result, err := adapter.Sync(context.Background(), env.OrgID, account.ID, account.TokenEncrypted)
	require.NoError(t, err)
	assert.True(t, result.Success)

	stored, err := env.Params.Accounts.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.NotEqual(t, account.TokenEncrypted, stored.TokenEncrypted)
	require.NotNil(t, stored.TokenExpiresAt)

	tokens, err := env.Vault.DecryptTokens(stored.TokenEncrypted)
	require.NoError(t, err)
	assert.Equal(t, "fresh", tokens.AccessToken)
	assert.Equal(t, "refresh-1", tokens.RefreshToken)
}

func TestSyncListingFailure(t *testing.T) {
	env, adapter := newTestAdapter(t, &fakeGoogle{accessToken: "access-1", failList: true})
	account := env.SeedAccount(t, entity.ProviderGmail, "ann@example.com", &entity.TokenSet{AccessToken: "access-1"})

	result, err := adapter.Sync(context.Background(), env.OrgID, account.ID, account.TokenEncrypted)
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "list messages")

	states := env.SyncStates(t)
	require.Len(t, states, 1)
	require.NotNil(t, states[0].LastError)
}

func TestSyncRetriesTransientListFailure(t *testing.T) {
	fake := &fakeGoogle{accessToken: "access-1"}
	fake.listOutages.Store(2)

	env := providertest.New(t, fake)
	env.Params.Config.Providers.Google.ClientID = "google-client"
	env.Params.Config.Providers.Google.ClientSecret = "google-secret"
	env.Params.HTTP = httpclient.NewWithOptions(config.HTTPClientConfig{
		Timeout:    5 * time.Second,
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
	}, env.Server.Client(), nil)
	adapter := NewWithEndpoints(env.Params, Endpoints{
		AuthURL:  env.Server.URL + "/auth",
		TokenURL: env.Server.URL + "/token",
		APIBase:  env.Server.URL + "/",
	})
	account := env.SeedAccount(t, entity.ProviderGmail, "ann@example.com", &entity.TokenSet{AccessToken: "access-1"})

	result, err := adapter.Sync(context.Background(), env.OrgID, account.ID, account.TokenEncrypted)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.EventsProcessed)
	assert.Equal(t, int32(3), fake.listCalls.Load())
}
