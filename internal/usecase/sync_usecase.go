package usecase

import (
	"context"

	"performiq/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncResults maps each synced provider to its merged result.
type SyncResults map[entity.Provider]*entity.SyncResult

// SyncUsecase runs provider ingestion for one org or for every org.
type SyncUsecase interface {
	// RunSyncForOrg syncs every integration account of an org. An org without
	// accounts yields an empty map.
	RunSyncForOrg(ctx context.Context, orgID uuid.UUID) (SyncResults, error)

	// RunSyncForAllOrgs syncs every org owning at least one account. A failing
	// org is logged and does not stop the sweep.
	RunSyncForAllOrgs(ctx context.Context) error

	// GetSyncStatus returns the latest sync state of each account of an org.
	GetSyncStatus(ctx context.Context, orgID uuid.UUID) ([]*entity.SyncState, error)
}
