package repository

import (
	"context"

	"performiq/internal/domain/entity"
)

// EventRepository stores raw provider payloads and their normalized form.
// Both upserts are idempotent on (org, provider, external id).
type EventRepository interface {
	UpsertRaw(ctx context.Context, event *entity.RawEvent) error
	UpsertNormalized(ctx context.Context, event *entity.NormalizedEvent) error

	// List returns events matching filter, newest first, at most filter.Limit rows.
	List(ctx context.Context, filter entity.EventFilter) ([]*entity.NormalizedEvent, error)
}
