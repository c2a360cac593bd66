package service

import (
	"context"
	"time"

	"performiq/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncEventType names a notification emitted by the sync engine.
type SyncEventType string

const (
	SyncEventCompleted SyncEventType = "sync.completed"
)

// SyncEvent is broadcast after an org sync finishes.
type SyncEvent struct {
	RequestID   string                                 `json:"request_id,omitempty"` // For distributed tracing
	Type        SyncEventType                          `json:"type"`
	OrgID       uuid.UUID                              `json:"org_id"`
	Results     map[entity.Provider]*entity.SyncResult `json:"results"`
	CompletedAt time.Time                              `json:"completed_at"`
}

// SyncNotifier receives sync events. Failures are logged by the caller and
// never fail the sync itself.
type SyncNotifier interface {
	NotifySync(ctx context.Context, event *SyncEvent) error
}

// EventPublisher forwards sync events to a message queue.
type EventPublisher interface {
	SyncNotifier

	// Close releases any resources held by the publisher
	Close() error
}
