package postgres

import (
	"context"

	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/repository"
	"performiq/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// syncStateRepository implements the repository.SyncStateRepository interface.
type syncStateRepository struct {
	db *gorm.DB
}

// NewSyncStateRepository is the constructor for syncStateRepository.
func NewSyncStateRepository(db *gorm.DB) repository.SyncStateRepository {
	return &syncStateRepository{db: db}
}

// Upsert overwrites the state in place. A failed attempt keeps the previous
// last_success_at so operators can see when the account last worked.
func (repo *syncStateRepository) Upsert(ctx context.Context, state *entity.SyncState) error {
	m := &model.SyncStateModel{
		ID:                   uuid.New(),
		OrgID:                state.OrgID,
		Provider:             state.Provider.String(),
		IntegrationAccountID: state.IntegrationAccountID,
		LastSyncedAt:         state.LastSyncedAt.UTC(),
		LastSuccessAt:        utcPtr(state.LastSuccessAt),
		LastError:            state.LastError,
	}

	updates := []string{"last_synced_at", "last_error"}
	if state.LastSuccessAt != nil {
		updates = append(updates, "last_success_at")
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "org_id"}, {Name: "provider"}, {Name: "integration_account_id"}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).
		Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert sync state")
	}

	return nil
}

func (repo *syncStateRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*entity.SyncState, error) {
	var models []*model.SyncStateModel

	if err := repo.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("last_synced_at DESC").
		Find(&models).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []*entity.SyncState{}, nil
		}

		return nil, errors.Wrap(err, "failed to list sync states")
	}

	out := make([]*entity.SyncState, 0, len(models))
	for _, m := range models {
		out = append(out, &entity.SyncState{
			ID:                   m.ID,
			OrgID:                m.OrgID,
			Provider:             entity.Provider(m.Provider),
			IntegrationAccountID: m.IntegrationAccountID,
			LastSyncedAt:         m.LastSyncedAt,
			LastSuccessAt:        m.LastSuccessAt,
			LastError:            m.LastError,
		})
	}

	return out, nil
}
