package impl

import (
	"context"
	"log/slog"

	deliverycontext "performiq/internal/delivery/context"
	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/repository"
	"performiq/internal/domain/service"
	"performiq/internal/errors"
	"performiq/internal/usecase"
)

type eventService struct {
	events       repository.EventRepository
	availability service.Availability
	logger       *slog.Logger
}

// NewEventService creates a new event service instance
func NewEventService(events repository.EventRepository, availability service.Availability, logger *slog.Logger) usecase.EventUsecase {
	return &eventService{
		events:       events,
		availability: availability,
		logger:       logger,
	}
}

// ListEvents returns one page of events, newest first. The next cursor is the
// occurredAt of the last event and is only set when the page is full.
func (s *eventService) ListEvents(ctx context.Context, query *usecase.EventQuery) (*usecase.EventPage, error) {
	limit := query.Limit
	if limit == 0 {
		limit = usecase.DefaultEventLimit
	}
	if limit < 1 || limit > usecase.MaxEventLimit {
		return nil, domainerrors.ErrValidationFailed.WithDetails("limit must be between 1 and 100")
	}
	if query.From != nil && query.To != nil && query.From.After(*query.To) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from must not be after to")
	}

	page := &usecase.EventPage{
		Events:     []*entity.NormalizedEvent{},
		Pagination: usecase.Pagination{Limit: limit},
	}
	if !s.availability.DatabaseConfigured {
		return page, nil
	}

	events, err := s.events.List(ctx, entity.EventFilter{
		OrgID:    query.OrgID,
		From:     query.From,
		To:       query.To,
		Type:     query.Type,
		Provider: query.Provider,
		Cursor:   query.Cursor,
		Limit:    limit,
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to fetch events",
			slog.String("orgID", query.OrgID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to list events")
	}

	if events != nil {
		page.Events = events
	}
	if len(events) == limit {
		next := events[len(events)-1].OccurredAt
		page.Pagination.HasMore = true
		page.Pagination.NextCursor = &next
	}

	return page, nil
}
