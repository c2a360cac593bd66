package handler

import (
	"net/http"
	"testing"

	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	mockUsecase "performiq/internal/mocks/usecase"
	"performiq/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newIntegrationHandler(t *testing.T) (*IntegrationHandler, *mockUsecase.MockIntegrationUsecase) {
	uc := mockUsecase.NewMockIntegrationUsecase(t)

	return NewIntegrationHandler(IntegrationHandlerParams{IntegrationUC: uc}), uc
}

func TestIntegrationHandler_ListIntegrations(t *testing.T) {
	h, uc := newIntegrationHandler(t)
	c, rec := newContext(http.MethodGet, "/api/integrations", true, nil)

	uc.EXPECT().ListIntegrations(mock.Anything, testOrgID).Return(&usecase.IntegrationList{
		Integrations: []*entity.Integration{{ID: uuid.New(), OrgID: testOrgID, Provider: entity.ProviderSlack, Status: entity.IntegrationStatusConnected}},
		OAuthEnabled: true,
	}, nil)

	require.NoError(t, h.ListIntegrations(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"oauthEnabled":true`)
	assert.Contains(t, rec.Body.String(), `"provider":"slack"`)
}

func TestIntegrationHandler_RequiresOrg(t *testing.T) {
	h, _ := newIntegrationHandler(t)
	c, rec := newContext(http.MethodGet, "/api/integrations", false, nil)

	require.NoError(t, h.ListIntegrations(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIntegrationHandler_Connect(t *testing.T) {
	tests := []struct {
		name       string
		provider   string
		setup      func(uc *mockUsecase.MockIntegrationUsecase)
		wantStatus int
		wantBody   string
	}{
		{
			name:     "returns url",
			provider: "slack",
			setup: func(uc *mockUsecase.MockIntegrationUsecase) {
				uc.EXPECT().ConnectURL(mock.Anything, testOrgID, entity.ProviderSlack).
					Return("https://slack.com/oauth/v2/authorize?state=abc", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"url":"https://slack.com/oauth/v2/authorize?state=abc"`,
		},
		{
			name:       "invalid provider",
			provider:   "myspace",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"code":"INVALID_PROVIDER"`,
		},
		{
			name:     "encryption missing",
			provider: "gmail",
			setup: func(uc *mockUsecase.MockIntegrationUsecase) {
				uc.EXPECT().ConnectURL(mock.Anything, testOrgID, entity.ProviderGmail).
					Return("", domainerrors.ErrEncryptionNotConfigured)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"error":"OAuth is not available"`,
		},
		{
			name:     "provider not configured",
			provider: "zoom",
			setup: func(uc *mockUsecase.MockIntegrationUsecase) {
				uc.EXPECT().ConnectURL(mock.Anything, testOrgID, entity.ProviderZoom).
					Return("", domainerrors.ErrProviderNotConfigured)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"code":"PROVIDER_NOT_CONFIGURED"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newIntegrationHandler(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			c, rec := newContext(http.MethodPost, "/api/integrations/"+tt.provider+"/connect", true,
				[]string{"provider"}, tt.provider)

			require.NoError(t, h.Connect(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestIntegrationHandler_Disconnect(t *testing.T) {
	h, uc := newIntegrationHandler(t)
	c, rec := newContext(http.MethodPost, "/api/integrations/teams/disconnect", true, []string{"provider"}, "teams")

	uc.EXPECT().Disconnect(mock.Anything, testOrgID, entity.ProviderTeams).Return(nil)

	require.NoError(t, h.Disconnect(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
