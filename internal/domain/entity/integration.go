package entity

import (
	"time"

	"github.com/google/uuid"
)

// IntegrationStatus is the connection state of an org's provider integration.
type IntegrationStatus string

const (
	IntegrationStatusConnected    IntegrationStatus = "connected"
	IntegrationStatusDisconnected IntegrationStatus = "disconnected"
)

// Integration is the org-level record that a provider has been connected.
// There is at most one per (org, provider).
type Integration struct {
	ID          uuid.UUID         `json:"id"`
	OrgID       uuid.UUID         `json:"org_id"`
	Provider    Provider          `json:"provider"`
	Status      IntegrationStatus `json:"status"`
	ConnectedAt time.Time         `json:"connected_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// IntegrationAccount is one connected external identity (workspace, mailbox, tenant).
// Accounts are never deleted; reconnecting upserts on (org, provider, external account id).
type IntegrationAccount struct {
	ID                   uuid.UUID  `json:"id"`
	OrgID                uuid.UUID  `json:"org_id"`
	IntegrationID        uuid.UUID  `json:"integration_id"`
	Provider             Provider   `json:"provider"`
	ExternalAccountID    string     `json:"external_account_id"`
	ExternalAccountEmail *string    `json:"external_account_email,omitempty"`
	TokenEncrypted       string     `json:"-"`
	TokenExpiresAt       *time.Time `json:"token_expires_at,omitempty"`
	RefreshTokenPresent  bool       `json:"refresh_token_present"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// SyncState is the per-account bookkeeping row, overwritten after every sync attempt.
type SyncState struct {
	ID                   uuid.UUID  `json:"id"`
	OrgID                uuid.UUID  `json:"org_id"`
	Provider             Provider   `json:"provider"`
	IntegrationAccountID uuid.UUID  `json:"integration_account_id"`
	LastSyncedAt         time.Time  `json:"last_synced_at"`
	LastSuccessAt        *time.Time `json:"last_success_at,omitempty"`
	LastError            *string    `json:"last_error,omitempty"`
}
