// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"performiq/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for integration persistence.
var (
	// ErrIntegrationNotFound is returned when an org has no integration for a provider.
	ErrIntegrationNotFound = errors.New("integration not found")
	// ErrAccountNotFound is returned when an integration account does not exist.
	ErrAccountNotFound = errors.New("integration account not found")
)

// IntegrationRepository stores the org-level provider connection records.
type IntegrationRepository interface {
	// Upsert inserts or updates the integration keyed on (org, provider) and returns the stored row.
	Upsert(ctx context.Context, integration *entity.Integration) (*entity.Integration, error)

	// FindByOrgAndProvider returns ErrIntegrationNotFound when absent.
	FindByOrgAndProvider(ctx context.Context, orgID uuid.UUID, provider entity.Provider) (*entity.Integration, error)

	// ListByOrg returns every integration of an org, oldest first.
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*entity.Integration, error)

	// UpdateStatus changes the status only; accounts and tokens are untouched.
	UpdateStatus(ctx context.Context, orgID uuid.UUID, provider entity.Provider, status entity.IntegrationStatus) error
}

// IntegrationAccountRepository stores connected external identities and their encrypted tokens.
type IntegrationAccountRepository interface {
	// Upsert inserts or updates the account keyed on (org, provider, external account id).
	Upsert(ctx context.Context, account *entity.IntegrationAccount) (*entity.IntegrationAccount, error)

	// FindByID returns ErrAccountNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.IntegrationAccount, error)

	// ListByOrg returns every account of an org.
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*entity.IntegrationAccount, error)

	// ListOrgIDs returns up to limit distinct org ids that own at least one account.
	ListOrgIDs(ctx context.Context, limit int) ([]uuid.UUID, error)

	// UpdateToken replaces the encrypted token blob after a refresh.
	UpdateToken(ctx context.Context, id uuid.UUID, tokenEncrypted string, expiresAt *time.Time) error
}
