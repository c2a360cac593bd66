// Package postgres contains the GORM implementation of the persistence layer.
// Upserts use portable ON CONFLICT clauses, so the same repositories run on
// PostgreSQL in production and SQLite in development and tests.
package postgres

import (
	"context"
	"time"

	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/repository"
	"performiq/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// integrationRepository implements the repository.IntegrationRepository interface.
type integrationRepository struct {
	db *gorm.DB
}

// NewIntegrationRepository is the constructor for integrationRepository.
func NewIntegrationRepository(db *gorm.DB) repository.IntegrationRepository {
	return &integrationRepository{db: db}
}

func (repo *integrationRepository) Upsert(ctx context.Context, integration *entity.Integration) (*entity.Integration, error) {
	now := time.Now().UTC()
	m := &model.IntegrationModel{
		ID:          uuid.New(),
		OrgID:       integration.OrgID,
		Provider:    integration.Provider.String(),
		Status:      string(integration.Status),
		ConnectedAt: now,
		UpdatedAt:   now,
	}
	if !integration.ConnectedAt.IsZero() {
		m.ConnectedAt = integration.ConnectedAt.UTC()
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "org_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "connected_at", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid integration")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert integration")
	}

	return repo.FindByOrgAndProvider(ctx, integration.OrgID, integration.Provider)
}

func (repo *integrationRepository) FindByOrgAndProvider(ctx context.Context, orgID uuid.UUID, provider entity.Provider) (*entity.Integration, error) {
	var m model.IntegrationModel

	if err := repo.db.WithContext(ctx).
		Where("org_id = ? AND provider = ?", orgID, provider.String()).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIntegrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find integration")
	}

	return toIntegrationDomain(&m), nil
}

func (repo *integrationRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*entity.Integration, error) {
	var models []*model.IntegrationModel

	if err := repo.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("connected_at ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list integrations")
	}

	out := make([]*entity.Integration, 0, len(models))
	for _, m := range models {
		out = append(out, toIntegrationDomain(m))
	}

	return out, nil
}

func (repo *integrationRepository) UpdateStatus(ctx context.Context, orgID uuid.UUID, provider entity.Provider, status entity.IntegrationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IntegrationModel{}).
		Where("org_id = ? AND provider = ?", orgID, provider.String()).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update integration status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIntegrationNotFound
	}

	return nil
}

func toIntegrationDomain(m *model.IntegrationModel) *entity.Integration {
	return &entity.Integration{
		ID:          m.ID,
		OrgID:       m.OrgID,
		Provider:    entity.Provider(m.Provider),
		Status:      entity.IntegrationStatus(m.Status),
		ConnectedAt: m.ConnectedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
