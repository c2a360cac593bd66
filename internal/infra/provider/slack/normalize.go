package slack

import (
	"fmt"

	"performiq/internal/domain/entity"
	"performiq/internal/infra/provider/normalize"

	"github.com/google/uuid"
)

// Channel is the subset of a conversations.list entry the sync uses.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Reaction is one emoji reaction on a message.
type Reaction struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Message is a conversations.history entry.
type Message struct {
	Type       string     `json:"type"`
	User       string     `json:"user,omitempty"`
	Text       string     `json:"text"`
	TS         string     `json:"ts"`
	ThreadTS   string     `json:"thread_ts,omitempty"`
	ReplyCount int        `json:"reply_count,omitempty"`
	Reactions  []Reaction `json:"reactions,omitempty"`
	Subtype    string     `json:"subtype,omitempty"`
}

// ShouldSkip drops bot/system messages and membership churn.
func ShouldSkip(m *Message) bool {
	return m.User == "" || m.Subtype == "channel_join" || m.Subtype == "channel_leave"
}

// ExternalID is the stable key of a message: channel id and ts.
func ExternalID(channelID, ts string) string {
	return fmt.Sprintf("%s:%s", channelID, ts)
}

// NormalizeMessage maps a Slack message to a message_event.
func NormalizeMessage(orgID uuid.UUID, channel Channel, m *Message) (*entity.NormalizedEvent, error) {
	occurredAt, err := normalize.ParseSlackTS(m.TS)
	if err != nil {
		return nil, err
	}

	threadID := channel.ID
	if m.ThreadTS != "" {
		threadID = ExternalID(channel.ID, m.ThreadTS)
	}

	reactions := 0
	for _, r := range m.Reactions {
		reactions += r.Count
	}

	metadata := map[string]any{
		"channelName":   channel.Name,
		"replyCount":    m.ReplyCount,
		"reactionCount": reactions,
		"isThreadReply": m.ThreadTS != "" && m.ThreadTS != m.TS,
	}
	if m.Subtype != "" {
		metadata["subtype"] = m.Subtype
	}

	return &entity.NormalizedEvent{
		OrgID:             orgID,
		Provider:          entity.ProviderSlack,
		Type:              entity.EventTypeMessage,
		OccurredAt:        occurredAt,
		ActorExternalID:   normalize.StringPtr(m.User),
		ChannelOrThreadID: &threadID,
		ExternalID:        ExternalID(channel.ID, m.TS),
		BodyPreview:       normalize.TruncatePtr(m.Text, normalize.PreviewLimit),
		Participants:      []entity.Participant{},
		Metadata:          metadata,
	}, nil
}
