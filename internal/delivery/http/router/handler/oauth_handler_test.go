package handler

import (
	"net/http"
	"testing"

	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/errors"
	mockUsecase "performiq/internal/mocks/usecase"
	"performiq/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOAuthHandler(t *testing.T) (*OAuthHandler, *mockUsecase.MockIntegrationUsecase) {
	uc := mockUsecase.NewMockIntegrationUsecase(t)

	return NewOAuthHandler(OAuthHandlerParams{
		IntegrationUC: uc,
		Config:        testConfig(),
		Logger:        discardLogger(),
	}), uc
}

func TestOAuthHandler_Callback_Success(t *testing.T) {
	h, uc := newOAuthHandler(t)
	c, rec := newContext(http.MethodGet, "/oauth/slack/callback?code=abc&state=xyz", false,
		[]string{"provider"}, "slack")

	uc.EXPECT().HandleCallback(mock.Anything, &usecase.CallbackInput{
		Provider: entity.ProviderSlack,
		Code:     "abc",
		State:    "xyz",
	}).Return(&entity.IntegrationAccount{ID: uuid.New(), OrgID: testOrgID, Provider: entity.ProviderSlack}, nil)

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Successfully connected slack!")
	assert.Contains(t, body, "oauth_complete")
	assert.Contains(t, body, `provider: "slack"`)
	assert.Contains(t, body, "app.example.com")
}

func TestOAuthHandler_Callback_Errors(t *testing.T) {
	tests := []struct {
		name       string
		provider   string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "invalid provider", provider: "myspace", wantStatus: http.StatusBadRequest, wantBody: "Invalid provider"},
		{name: "unavailable", provider: "gmail", err: domainerrors.ErrEncryptionNotConfigured, wantStatus: http.StatusServiceUnavailable, wantBody: "OAuth is not available - Token encryption is not configured"},
		{name: "missing params", provider: "gmail", err: domainerrors.ErrInvalidCallback, wantStatus: http.StatusBadRequest, wantBody: "Invalid callback parameters"},
		{name: "replayed state", provider: "gmail", err: domainerrors.ErrOAuthStateInvalid, wantStatus: http.StatusBadRequest, wantBody: "Invalid or expired state"},
		{name: "state mismatch", provider: "gmail", err: domainerrors.ErrOAuthStateMismatch, wantStatus: http.StatusBadRequest, wantBody: "State provider mismatch"},
		{name: "exchange failure", provider: "gmail", err: &domainerrors.OAuthExchangeError{Provider: "gmail", Status: 400, Reason: "invalid_grant"}, wantStatus: http.StatusInternalServerError, wantBody: "Failed to complete OAuth flow"},
		{name: "unexpected error", provider: "gmail", err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantBody: "Failed to complete OAuth flow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newOAuthHandler(t)
			if tt.err != nil {
				uc.EXPECT().HandleCallback(mock.Anything, mock.Anything).Return(nil, tt.err)
			}
			c, rec := newContext(http.MethodGet, "/oauth/"+tt.provider+"/callback?code=abc&state=xyz", false,
				[]string{"provider"}, tt.provider)

			require.NoError(t, h.Callback(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "invalid_grant")
		})
	}
}

func TestOAuthHandler_Callback_MissingCodeReachesUsecase(t *testing.T) {
	h, uc := newOAuthHandler(t)
	c, rec := newContext(http.MethodGet, "/oauth/slack/callback?state=xyz", false,
		[]string{"provider"}, "slack")

	// The usecase decides between 503 and 400, so the handler passes empty values through.
	uc.EXPECT().HandleCallback(mock.Anything, &usecase.CallbackInput{
		Provider: entity.ProviderSlack,
		State:    "xyz",
	}).Return(nil, domainerrors.ErrInvalidCallback)

	require.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid callback parameters")
}
