package repository

import (
	"context"

	"performiq/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncStateRepository stores the latest sync attempt per account.
type SyncStateRepository interface {
	// Upsert overwrites the row keyed on (org, provider, account).
	Upsert(ctx context.Context, state *entity.SyncState) error

	// ListByOrg returns the sync states of an org.
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*entity.SyncState, error)
}
