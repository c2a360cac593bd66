package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies a normalized activity record.
type EventType string

const (
	EventTypeMessage EventType = "message_event"
	EventTypeEmail   EventType = "email_event"
	EventTypeMeeting EventType = "meeting_event"
	EventTypeCall    EventType = "call_event"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeMessage, EventTypeEmail, EventTypeMeeting, EventTypeCall:
		return true
	default:
		return false
	}
}

// Participant is an address taking part in an event.
type Participant struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Participant roles for email events.
const (
	ParticipantRoleFrom = "from"
	ParticipantRoleTo   = "to"
	ParticipantRoleCc   = "cc"
)

// NormalizedEvent is the provider-independent shape of an activity record.
// Unique on (OrgID, Provider, ExternalID).
type NormalizedEvent struct {
	ID                uuid.UUID      `json:"id"`
	OrgID             uuid.UUID      `json:"org_id"`
	Provider          Provider       `json:"provider"`
	Type              EventType      `json:"type"`
	OccurredAt        time.Time      `json:"occurred_at"`
	ActorExternalID   *string        `json:"actor_external_id,omitempty"`
	ActorEmail        *string        `json:"actor_email,omitempty"`
	ChannelOrThreadID *string        `json:"channel_or_thread_id,omitempty"`
	ExternalID        string         `json:"external_id"`
	Subject           *string        `json:"subject,omitempty"`
	BodyPreview       *string        `json:"body_preview,omitempty"`
	Participants      []Participant  `json:"participants"`
	Metadata          map[string]any `json:"metadata"`
	CreatedAt         time.Time      `json:"created_at"`
}

// RawEvent keeps the provider payload verbatim. Same uniqueness as NormalizedEvent.
type RawEvent struct {
	ID         uuid.UUID `json:"id"`
	OrgID      uuid.UUID `json:"org_id"`
	Provider   Provider  `json:"provider"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	ExternalID string    `json:"external_id"`
	Payload    []byte    `json:"payload"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventFilter narrows an event listing. Cursor returns events strictly older than it.
type EventFilter struct {
	OrgID    uuid.UUID
	From     *time.Time
	To       *time.Time
	Type     *EventType
	Provider *Provider
	Cursor   *time.Time
	Limit    int
}
