package handler

import (
	"net/http"
	"time"

	"performiq/internal/delivery/http/response"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/entity"
	"performiq/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
}

// EventHandler serves the normalized event feed.
type EventHandler struct {
	eventUC usecase.EventUsecase
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
	}
}

// ListEventsRequest is the query string of GET /api/events. Times are RFC3339.
type ListEventsRequest struct {
	From     string `query:"from"`
	To       string `query:"to"`
	Type     string `query:"type" validate:"omitempty,event_type"`
	Provider string `query:"provider" validate:"omitempty,provider"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Cursor   string `query:"cursor"`
}

// ListEvents handles GET /api/events
func (h *EventHandler) ListEvents(c echo.Context) error {
	orgID, ok, err := orgID(c)
	if !ok {
		return err
	}

	var req ListEventsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid query parameters", err.Error())
	}

	query := &usecase.EventQuery{OrgID: orgID, Limit: req.Limit}
	for _, field := range []struct {
		name  string
		value string
		dst   **time.Time
	}{
		{"from", req.From, &query.From},
		{"to", req.To, &query.To},
		{"cursor", req.Cursor, &query.Cursor},
	} {
		if field.value == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, field.value)
		if err != nil {
			return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
				"Invalid query parameters", field.name+" must be an RFC3339 timestamp")
		}
		*field.dst = &t
	}
	if req.Type != "" {
		eventType := entity.EventType(req.Type)
		query.Type = &eventType
	}
	if req.Provider != "" {
		provider := entity.Provider(req.Provider)
		query.Provider = &provider
	}

	page, err := h.eventUC.ListEvents(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, page)
}
