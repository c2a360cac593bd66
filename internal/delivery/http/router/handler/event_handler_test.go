package handler

import (
	"net/http"
	"testing"
	"time"

	"performiq/internal/domain/entity"
	mockUsecase "performiq/internal/mocks/usecase"
	"performiq/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventHandler_ListEvents_ParsesFilters(t *testing.T) {
	uc := mockUsecase.NewMockEventUsecase(t)
	h := NewEventHandler(EventHandlerParams{EventUC: uc})

	c, rec := newContext(http.MethodGet,
		"/api/events?from=2026-03-01T00:00:00Z&to=2026-03-02T00:00:00Z&type=email_event&provider=gmail&limit=20&cursor=2026-03-01T12:30:00Z",
		true, nil)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	cursor := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	uc.EXPECT().ListEvents(mock.Anything, mock.MatchedBy(func(q *usecase.EventQuery) bool {
		return q.OrgID == testOrgID &&
			q.Limit == 20 &&
			q.From.Equal(from) && q.To.Equal(to) && q.Cursor.Equal(cursor) &&
			*q.Type == entity.EventTypeEmail &&
			*q.Provider == entity.ProviderGmail
	})).Return(&usecase.EventPage{
		Events:     []*entity.NormalizedEvent{},
		Pagination: usecase.Pagination{Limit: 20},
	}, nil)

	require.NoError(t, h.ListEvents(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"events":[],"pagination":{"limit":20,"hasMore":false,"nextCursor":null}}`, rec.Body.String())
}

func TestEventHandler_ListEvents_RejectsBadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "limit too large", query: "limit=500"},
		{name: "limit not a number", query: "limit=ten"},
		{name: "unknown type", query: "type=fax_event"},
		{name: "unknown provider", query: "provider=myspace"},
		{name: "bad from", query: "from=yesterday"},
		{name: "bad cursor", query: "cursor=2026-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewEventHandler(EventHandlerParams{EventUC: mockUsecase.NewMockEventUsecase(t)})
			c, rec := newContext(http.MethodGet, "/api/events?"+tt.query, true, nil)

			require.NoError(t, h.ListEvents(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"VALIDATION_FAILED"`)
		})
	}
}
