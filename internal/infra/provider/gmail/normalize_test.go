package gmail

import (
	"testing"
	"time"

	"performiq/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmailapi "google.golang.org/api/gmail/v1"
)

func message(headers map[string]string) *gmailapi.Message {
	m := &gmailapi.Message{
		Id:           "m1",
		ThreadId:     "t1",
		LabelIds:     []string{"INBOX"},
		Snippet:      "quarterly numbers",
		InternalDate: 1700000000123,
		Payload:      &gmailapi.MessagePart{},
	}
	for name, value := range headers {
		m.Payload.Headers = append(m.Payload.Headers, &gmailapi.MessagePartHeader{Name: name, Value: value})
	}

	return m
}

func TestNormalizeMessage(t *testing.T) {
	orgID := uuid.New()
	event := NormalizeMessage(orgID, message(map[string]string{
		"from":    `"Ann Lee" <ann@example.com>`,
		"To":      "bob@example.com, Carol <carol@example.com>",
		"Cc":      "dan@example.com",
		"Subject": "Q3 report",
	}))

	assert.Equal(t, entity.ProviderGmail, event.Provider)
	assert.Equal(t, entity.EventTypeEmail, event.Type)
	assert.Equal(t, "m1", event.ExternalID)
	assert.Equal(t, "t1", *event.ChannelOrThreadID)
	assert.Equal(t, "ann@example.com", *event.ActorEmail)
	assert.Equal(t, "Q3 report", *event.Subject)
	assert.Equal(t, "quarterly numbers", *event.BodyPreview)
	assert.True(t, event.OccurredAt.Equal(time.UnixMilli(1700000000123)))
	assert.Equal(t, []entity.Participant{
		{Email: "ann@example.com", Role: entity.ParticipantRoleFrom},
		{Email: "bob@example.com", Role: entity.ParticipantRoleTo},
		{Email: "carol@example.com", Role: entity.ParticipantRoleTo},
		{Email: "dan@example.com", Role: entity.ParticipantRoleCc},
	}, event.Participants)
	assert.Equal(t, []string{"INBOX"}, event.Metadata["labelIds"])
}

func TestParticipants_RepeatedAddresses(t *testing.T) {
	got := Participants(message(map[string]string{
		"From": "ann@example.com",
		"To":   "bob@example.com, Bob <bob@example.com>",
		"Cc":   "bob@example.com",
	}))

	assert.Equal(t, []entity.Participant{
		{Email: "ann@example.com", Role: entity.ParticipantRoleFrom},
		{Email: "bob@example.com", Role: entity.ParticipantRoleTo},
		{Email: "bob@example.com", Role: entity.ParticipantRoleCc},
	}, got)
}

func TestNormalizeMessageWithoutHeaders(t *testing.T) {
	event := NormalizeMessage(uuid.New(), message(nil))

	assert.Nil(t, event.ActorEmail)
	assert.Nil(t, event.Subject)
	require.NotNil(t, event.Participants)
	assert.Empty(t, event.Participants)
	assert.NotContains(t, event.Metadata, "fromHeader")
}
