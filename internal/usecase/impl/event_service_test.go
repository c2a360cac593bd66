package impl

import (
	"context"
	"testing"
	"time"

	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/service"
	mockRepo "performiq/internal/mocks/repository"
	"performiq/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventsAt(orgID uuid.UUID, start time.Time, n int) []*entity.NormalizedEvent {
	out := make([]*entity.NormalizedEvent, 0, n)
	for i := range n {
		out = append(out, &entity.NormalizedEvent{
			ID:         uuid.New(),
			OrgID:      orgID,
			Provider:   entity.ProviderSlack,
			Type:       entity.EventTypeMessage,
			OccurredAt: start.Add(-time.Duration(i) * time.Minute),
			ExternalID: uuid.NewString(),
		})
	}

	return out
}

func TestEventService_ListEvents_FullPageSetsCursor(t *testing.T) {
	events := mockRepo.NewMockEventRepository(t)
	svc := NewEventService(events, available(), newDiscardLogger())

	ctx := context.Background()
	orgID := uuid.New()
	provider := entity.ProviderSlack
	page := eventsAt(orgID, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), 3)

	events.EXPECT().List(ctx, entity.EventFilter{OrgID: orgID, Provider: &provider, Limit: 3}).Return(page, nil)

	got, err := svc.ListEvents(ctx, &usecase.EventQuery{OrgID: orgID, Provider: &provider, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, got.Events, 3)
	assert.True(t, got.Pagination.HasMore)
	require.NotNil(t, got.Pagination.NextCursor)
	assert.Equal(t, page[2].OccurredAt, *got.Pagination.NextCursor)
}

func TestEventService_ListEvents_ShortPageAndDefaultLimit(t *testing.T) {
	events := mockRepo.NewMockEventRepository(t)
	svc := NewEventService(events, available(), newDiscardLogger())

	ctx := context.Background()
	orgID := uuid.New()

	events.EXPECT().List(ctx, entity.EventFilter{OrgID: orgID, Limit: usecase.DefaultEventLimit}).
		Return(eventsAt(orgID, time.Now(), 2), nil)

	got, err := svc.ListEvents(ctx, &usecase.EventQuery{OrgID: orgID})
	require.NoError(t, err)
	assert.Len(t, got.Events, 2)
	assert.Equal(t, usecase.DefaultEventLimit, got.Pagination.Limit)
	assert.False(t, got.Pagination.HasMore)
	assert.Nil(t, got.Pagination.NextCursor)
}

func TestEventService_ListEvents_Validation(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	tests := []struct {
		name  string
		query *usecase.EventQuery
	}{
		{name: "limit above max", query: &usecase.EventQuery{Limit: 101}},
		{name: "negative limit", query: &usecase.EventQuery{Limit: -1}},
		{name: "inverted range", query: &usecase.EventQuery{From: &from, To: &to}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewEventService(mockRepo.NewMockEventRepository(t), available(), newDiscardLogger())

			_, err := svc.ListEvents(context.Background(), tt.query)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestEventService_ListEvents_WithoutDatabase(t *testing.T) {
	svc := NewEventService(mockRepo.NewMockEventRepository(t), service.Availability{}, newDiscardLogger())

	got, err := svc.ListEvents(context.Background(), &usecase.EventQuery{OrgID: uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, got.Events)
	assert.NotNil(t, got.Events)
}
