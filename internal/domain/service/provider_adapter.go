package service

import (
	"context"

	"performiq/internal/domain/entity"

	"github.com/google/uuid"
)

// ExchangeResult is what a successful authorization code exchange yields.
type ExchangeResult struct {
	Tokens               *entity.TokenSet
	ExternalAccountID    string
	ExternalAccountEmail string
	ExternalAccountName  string
}

// ProviderAdapter is the per-provider OAuth and ingestion contract.
type ProviderAdapter interface {
	Provider() entity.Provider

	// ConnectURL builds the authorization redirect carrying state.
	ConnectURL(state string) (string, error)

	// ExchangeCode trades an authorization code for tokens and the external account identity.
	ExchangeCode(ctx context.Context, code string) (*ExchangeResult, error)

	// Sync ingests recent activity for one account and records its SyncState.
	Sync(ctx context.Context, orgID, accountID uuid.UUID, tokenEncrypted string) (*entity.SyncResult, error)
}

// ProviderRegistry resolves adapters by provider.
type ProviderRegistry interface {
	Adapter(provider entity.Provider) (ProviderAdapter, bool)
	Providers() []entity.Provider
}
