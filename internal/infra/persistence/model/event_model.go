package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventModel is the GORM-specific struct for the normalized 'events' table.
type EventModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrgID             uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_events_external,priority:1;index:idx_events_org_occurred,priority:1"`
	Provider          string         `gorm:"type:varchar(32);not null;uniqueIndex:uq_events_external,priority:2"`
	Type              string         `gorm:"type:varchar(32);not null"`
	OccurredAt        time.Time      `gorm:"not null;index:idx_events_org_occurred,priority:2"`
	ActorExternalID   *string        `gorm:"type:varchar(255)"`
	ActorEmail        *string        `gorm:"type:varchar(320)"`
	ChannelOrThreadID *string        `gorm:"type:varchar(255)"`
	ExternalID        string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_events_external,priority:3"`
	Subject           *string        `gorm:"type:varchar(500)"`
	BodyPreview       *string        `gorm:"type:varchar(500)"`
	Participants      datatypes.JSON `gorm:"not null"`
	Metadata          datatypes.JSON `gorm:"not null"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// RawEventModel is the GORM-specific struct for the 'raw_events' table.
type RawEventModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrgID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_raw_events_external,priority:1"`
	Provider   string         `gorm:"type:varchar(32);not null;uniqueIndex:uq_raw_events_external,priority:2"`
	EventType  string         `gorm:"type:varchar(64);not null"`
	OccurredAt time.Time      `gorm:"not null"`
	ExternalID string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_raw_events_external,priority:3"`
	Payload    datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RawEventModel) TableName() string {
	return "raw_events"
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&IntegrationModel{},
		&IntegrationAccountModel{},
		&SyncStateModel{},
		&EventModel{},
		&RawEventModel{},
	}
}
