package usecase

import (
	"context"

	"performiq/internal/domain/entity"

	"github.com/google/uuid"
)

// IntegrationList is the integrations page payload.
type IntegrationList struct {
	Integrations []*entity.Integration `json:"integrations"`
	OAuthEnabled bool                  `json:"oauthEnabled"`
}

// CallbackInput carries the query parameters of an OAuth redirect.
type CallbackInput struct {
	Provider entity.Provider
	Code     string `query:"code"`
	State    string `query:"state"`
}

// IntegrationUsecase defines the connect, callback and disconnect flows.
type IntegrationUsecase interface {
	// ListIntegrations returns the org's integrations and whether OAuth can run at all.
	ListIntegrations(ctx context.Context, orgID uuid.UUID) (*IntegrationList, error)

	// ConnectURL issues a state token and returns the provider authorization URL.
	ConnectURL(ctx context.Context, orgID uuid.UUID, provider entity.Provider) (string, error)

	// HandleCallback consumes the state, exchanges the code and stores the encrypted tokens.
	HandleCallback(ctx context.Context, input *CallbackInput) (*entity.IntegrationAccount, error)

	// Disconnect marks the integration disconnected. Accounts and tokens are kept.
	Disconnect(ctx context.Context, orgID uuid.UUID, provider entity.Provider) error
}
