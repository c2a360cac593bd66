package usecase

import (
	"context"
	"time"

	"performiq/internal/domain/entity"

	"github.com/google/uuid"
)

// Event listing bounds.
const (
	DefaultEventLimit = 50
	MaxEventLimit     = 100
)

// EventQuery is the parsed filter of an event listing request.
type EventQuery struct {
	OrgID    uuid.UUID
	From     *time.Time
	To       *time.Time
	Type     *entity.EventType
	Provider *entity.Provider
	Cursor   *time.Time
	Limit    int
}

// Pagination describes how to fetch the next page.
type Pagination struct {
	Limit      int        `json:"limit"`
	HasMore    bool       `json:"hasMore"`
	NextCursor *time.Time `json:"nextCursor"`
}

// EventPage is one page of normalized events, newest first.
type EventPage struct {
	Events     []*entity.NormalizedEvent `json:"events"`
	Pagination Pagination                `json:"pagination"`
}

// EventUsecase reads the normalized activity feed.
type EventUsecase interface {
	ListEvents(ctx context.Context, query *EventQuery) (*EventPage, error)
}
