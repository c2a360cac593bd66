package slack

import (
	"strings"
	"testing"
	"time"

	"performiq/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldSkip(t *testing.T) {
	assert.True(t, ShouldSkip(&Message{Text: "bot"}))
	assert.True(t, ShouldSkip(&Message{User: "U1", Subtype: "channel_join"}))
	assert.True(t, ShouldSkip(&Message{User: "U1", Subtype: "channel_leave"}))
	assert.False(t, ShouldSkip(&Message{User: "U1", Subtype: "thread_broadcast"}))
	assert.False(t, ShouldSkip(&Message{User: "U1"}))
}

func TestNormalizeMessage(t *testing.T) {
	orgID := uuid.New()
	channel := Channel{ID: "C1", Name: "general"}

	t.Run("top level message", func(t *testing.T) {
		event, err := NormalizeMessage(orgID, channel, &Message{
			User:       "U1",
			Text:       "hello",
			TS:         "1700000000.000100",
			ReplyCount: 2,
			Reactions:  []Reaction{{Name: "+1", Count: 2}, {Name: "eyes", Count: 1}},
		})
		require.NoError(t, err)

		assert.Equal(t, orgID, event.OrgID)
		assert.Equal(t, entity.ProviderSlack, event.Provider)
		assert.Equal(t, entity.EventTypeMessage, event.Type)
		assert.Equal(t, "C1:1700000000.000100", event.ExternalID)
		assert.Equal(t, "C1", *event.ChannelOrThreadID)
		assert.Equal(t, "U1", *event.ActorExternalID)
		assert.Equal(t, "hello", *event.BodyPreview)
		assert.True(t, event.OccurredAt.Equal(time.Unix(1700000000, 100000)))
		assert.Equal(t, 3, event.Metadata["reactionCount"])
		assert.Equal(t, 2, event.Metadata["replyCount"])
		assert.Equal(t, false, event.Metadata["isThreadReply"])
		assert.Equal(t, "general", event.Metadata["channelName"])
		assert.NotContains(t, event.Metadata, "subtype")
	})

	t.Run("thread reply", func(t *testing.T) {
		event, err := NormalizeMessage(orgID, channel, &Message{
			User:     "U2",
			Text:     strings.Repeat("x", 600),
			TS:       "1700000100.000200",
			ThreadTS: "1700000000.000100",
			Subtype:  "thread_broadcast",
		})
		require.NoError(t, err)

		assert.Equal(t, "C1:1700000000.000100", *event.ChannelOrThreadID)
		assert.Equal(t, true, event.Metadata["isThreadReply"])
		assert.Equal(t, "thread_broadcast", event.Metadata["subtype"])
		assert.Len(t, []rune(*event.BodyPreview), 500)
		assert.True(t, strings.HasSuffix(*event.BodyPreview, "..."))
	})

	t.Run("invalid ts", func(t *testing.T) {
		_, err := NormalizeMessage(orgID, channel, &Message{User: "U1", TS: "nope"})
		assert.Error(t, err)
	})
}
