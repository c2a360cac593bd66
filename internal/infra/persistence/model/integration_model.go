package model

import (
	"time"

	"github.com/google/uuid"
)

// IntegrationModel is the GORM-specific struct for the 'integrations' table.
type IntegrationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_integrations_org_provider,priority:1"`
	Provider    string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_integrations_org_provider,priority:2"`
	Status      string    `gorm:"type:varchar(32);not null"`
	ConnectedAt time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (IntegrationModel) TableName() string {
	return "integrations"
}

// IntegrationAccountModel is the GORM-specific struct for the 'integration_accounts' table.
// The token column only ever holds vault ciphertext.
type IntegrationAccountModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrgID                uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_accounts_org_provider_external,priority:1"`
	IntegrationID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Provider             string     `gorm:"type:varchar(32);not null;uniqueIndex:uq_accounts_org_provider_external,priority:2"`
	ExternalAccountID    string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_accounts_org_provider_external,priority:3"`
	ExternalAccountEmail *string    `gorm:"type:varchar(320)"`
	TokenEncrypted       string     `gorm:"type:text;not null"`
	TokenExpiresAt       *time.Time
	RefreshTokenPresent  bool `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (IntegrationAccountModel) TableName() string {
	return "integration_accounts"
}

// SyncStateModel is the GORM-specific struct for the 'sync_state' table.
type SyncStateModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID                uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_sync_state_account,priority:1"`
	Provider             string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_sync_state_account,priority:2"`
	IntegrationAccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_sync_state_account,priority:3"`
	LastSyncedAt         time.Time `gorm:"not null"`
	LastSuccessAt        *time.Time
	LastError            *string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (SyncStateModel) TableName() string {
	return "sync_state"
}
