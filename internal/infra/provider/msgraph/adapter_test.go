package msgraph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/infra/provider/providertest"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test"))
	require.NoError(t, err)

	return signed
}

func TestMicrosoftAdapters(t *testing.T) {
	var gotScope string
	var token string
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotScope = r.PostForm.Get("scope")
		if r.PostForm.Get("code") == "denied" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)

			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "ms-access",
			"refresh_token": "ms-refresh",
			"expires_in":    3600,
			"token_type":    "Bearer",
			"id_token":      token,
		})
	})

	env := providertest.New(t, mux)
	env.Params.Config.Providers.Microsoft.ClientID = "ms-client"
	env.Params.Config.Providers.Microsoft.ClientSecret = "ms-secret"
	endpoints := Endpoints{AuthURL: env.Server.URL + "/authorize", TokenURL: env.Server.URL + "/token"}

	outlook := NewWithEndpoints(env.Params, entity.ProviderOutlook, endpoints)
	teams := NewWithEndpoints(env.Params, entity.ProviderTeams, endpoints)

	t.Run("connect urls carry product scopes", func(t *testing.T) {
		raw, err := teams.ConnectURL("s")
		require.NoError(t, err)
		u, err := url.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, strings.Join(TeamsScopes, " "), u.Query().Get("scope"))
		assert.Equal(t, "http://localhost:5000/oauth/teams/callback", u.Query().Get("redirect_uri"))

		raw, err = outlook.ConnectURL("s")
		require.NoError(t, err)
		assert.Contains(t, raw, "Mail.Read")
	})

	t.Run("exchange reads identity from id_token", func(t *testing.T) {
		token = idToken(t, jwt.MapClaims{"oid": "object-1", "preferred_username": "ann@contoso.com"})

		result, err := outlook.ExchangeCode(context.Background(), "code")
		require.NoError(t, err)
		assert.Equal(t, strings.Join(OutlookScopes, " "), gotScope)
		assert.Equal(t, "object-1", result.ExternalAccountID)
		assert.Equal(t, "ann@contoso.com", result.ExternalAccountEmail)
		assert.True(t, result.Tokens.HasRefreshToken())
	})

	t.Run("exchange without id_token falls back", func(t *testing.T) {
		token = ""

		result, err := teams.ExchangeCode(context.Background(), "code")
		require.NoError(t, err)
		assert.Equal(t, fallbackAccountID, result.ExternalAccountID)
	})

	t.Run("exchange failure", func(t *testing.T) {
		_, err := teams.ExchangeCode(context.Background(), "denied")
		var exchangeErr *domainerrors.OAuthExchangeError
		require.ErrorAs(t, err, &exchangeErr)
		assert.Equal(t, "teams", exchangeErr.Provider)
	})

	t.Run("sync is a stub", func(t *testing.T) {
		account := env.SeedAccount(t, entity.ProviderOutlook, "object-1", &entity.TokenSet{AccessToken: "ms-access"})

		result, err := outlook.Sync(context.Background(), env.OrgID, account.ID, account.TokenEncrypted)
		require.NoError(t, err)
		assert.Equal(t, entity.SyncStatusNotImplemented, result.Status)
		assert.True(t, result.Success)
	})
}
