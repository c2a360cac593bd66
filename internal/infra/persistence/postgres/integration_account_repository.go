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

// integrationAccountRepository implements the repository.IntegrationAccountRepository interface.
type integrationAccountRepository struct {
	db *gorm.DB
}

// NewIntegrationAccountRepository is the constructor for integrationAccountRepository.
func NewIntegrationAccountRepository(db *gorm.DB) repository.IntegrationAccountRepository {
	return &integrationAccountRepository{db: db}
}

func (repo *integrationAccountRepository) Upsert(ctx context.Context, account *entity.IntegrationAccount) (*entity.IntegrationAccount, error) {
	now := time.Now().UTC()
	m := fromAccountDomain(account)
	m.ID = uuid.New()
	m.CreatedAt = now
	m.UpdatedAt = now

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "org_id"}, {Name: "provider"}, {Name: "external_account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"integration_id",
				"external_account_email",
				"token_encrypted",
				"token_expires_at",
				"refresh_token_present",
				"updated_at",
			}),
		}).
		Create(m).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid integration reference")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert integration account")
	}

	var stored model.IntegrationAccountModel
	if err := repo.db.WithContext(ctx).
		Where("org_id = ? AND provider = ? AND external_account_id = ?", m.OrgID, m.Provider, m.ExternalAccountID).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload integration account")
	}

	return toAccountDomain(&stored), nil
}

func (repo *integrationAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.IntegrationAccount, error) {
	var m model.IntegrationAccountModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find integration account")
	}

	return toAccountDomain(&m), nil
}

func (repo *integrationAccountRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*entity.IntegrationAccount, error) {
	var models []*model.IntegrationAccountModel

	if err := repo.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list integration accounts")
	}

	out := make([]*entity.IntegrationAccount, 0, len(models))
	for _, m := range models {
		out = append(out, toAccountDomain(m))
	}

	return out, nil
}

func (repo *integrationAccountRepository) ListOrgIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.IntegrationAccountModel{}).
		Distinct("org_id").
		Order("org_id").
		Limit(limit).
		Pluck("org_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list org ids")
	}

	return ids, nil
}

func (repo *integrationAccountRepository) UpdateToken(ctx context.Context, id uuid.UUID, tokenEncrypted string, expiresAt *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IntegrationAccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"token_encrypted":  tokenEncrypted,
			"token_expires_at": utcPtr(expiresAt),
			"updated_at":       time.Now().UTC(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func toAccountDomain(m *model.IntegrationAccountModel) *entity.IntegrationAccount {
	return &entity.IntegrationAccount{
		ID:                   m.ID,
		OrgID:                m.OrgID,
		IntegrationID:        m.IntegrationID,
		Provider:             entity.Provider(m.Provider),
		ExternalAccountID:    m.ExternalAccountID,
		ExternalAccountEmail: m.ExternalAccountEmail,
		TokenEncrypted:       m.TokenEncrypted,
		TokenExpiresAt:       m.TokenExpiresAt,
		RefreshTokenPresent:  m.RefreshTokenPresent,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func fromAccountDomain(a *entity.IntegrationAccount) *model.IntegrationAccountModel {
	return &model.IntegrationAccountModel{
		ID:                   a.ID,
		OrgID:                a.OrgID,
		IntegrationID:        a.IntegrationID,
		Provider:             a.Provider.String(),
		ExternalAccountID:    a.ExternalAccountID,
		ExternalAccountEmail: a.ExternalAccountEmail,
		TokenEncrypted:       a.TokenEncrypted,
		TokenExpiresAt:       utcPtr(a.TokenExpiresAt),
		RefreshTokenPresent:  a.RefreshTokenPresent,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()

	return &u
}
