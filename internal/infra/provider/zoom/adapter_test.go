package zoom

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"performiq/internal/domain/entity"
	"performiq/internal/infra/provider/providertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoomAdapter(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "zoom-access",
			"refresh_token": "zoom-refresh",
			"expires_in":    3600,
			"token_type":    "bearer",
		})
	})
	mux.HandleFunc("/v2/users/me", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "z-123", "email": "host@example.com"})
	})

	env := providertest.New(t, mux)
	env.Params.Config.Providers.Zoom.ClientID = "zid"
	env.Params.Config.Providers.Zoom.ClientSecret = "zsecret"

	adapter := NewWithEndpoints(env.Params, Endpoints{
		AuthURL:  env.Server.URL + "/oauth/authorize",
		TokenURL: env.Server.URL + "/oauth/token",
		APIBase:  env.Server.URL + "/v2",
	})

	t.Run("connect url", func(t *testing.T) {
		raw, err := adapter.ConnectURL("s1")
		require.NoError(t, err)

		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "zid", u.Query().Get("client_id"))
		assert.Equal(t, "code", u.Query().Get("response_type"))
		assert.Empty(t, u.Query().Get("scope"))
	})

	t.Run("exchange uses basic auth", func(t *testing.T) {
		result, err := adapter.ExchangeCode(context.Background(), "code")
		require.NoError(t, err)

		assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("zid:zsecret")), gotAuth)
		assert.Equal(t, "z-123", result.ExternalAccountID)
		assert.Equal(t, "host@example.com", result.ExternalAccountEmail)
		assert.True(t, result.Tokens.HasRefreshToken())
	})

	t.Run("sync is not implemented", func(t *testing.T) {
		account := env.SeedAccount(t, entity.ProviderZoom, "z-123", &entity.TokenSet{AccessToken: "zoom-access"})

		result, err := adapter.Sync(context.Background(), env.OrgID, account.ID, account.TokenEncrypted)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, entity.SyncStatusNotImplemented, result.Status)
		assert.Equal(t, 0, result.EventsProcessed)
		require.NotNil(t, result.Error)
		assert.Equal(t, entity.NotImplementedMessage, *result.Error)

		states := env.SyncStates(t)
		require.Len(t, states, 1)
		require.NotNil(t, states[0].LastError)
		assert.Equal(t, entity.NotImplementedMessage, *states[0].LastError)
	})
}
