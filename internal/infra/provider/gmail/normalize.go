package gmail

import (
	"strings"

	"performiq/internal/domain/entity"
	"performiq/internal/infra/provider/normalize"

	"github.com/google/uuid"
	gmailapi "google.golang.org/api/gmail/v1"
)

// MetadataHeaders are the headers requested with format=metadata.
var MetadataHeaders = []string{"From", "To", "Cc", "Subject"}

// Header returns the first header named name, case-insensitively.
func Header(m *gmailapi.Message, name string) string {
	if m.Payload == nil {
		return ""
	}
	for _, h := range m.Payload.Headers {
		if h != nil && strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}

	return ""
}

// Participants lists the sender, then To and Cc recipients. Repeats inside one
// header collapse; an address in both To and Cc keeps one entry per role.
func Participants(m *gmailapi.Message) []entity.Participant {
	participants := []entity.Participant{}

	if from := normalize.FirstEmail(Header(m, "From")); from != "" {
		participants = append(participants, entity.Participant{Email: from, Role: entity.ParticipantRoleFrom})
	}
	for _, email := range normalize.Emails(Header(m, "To")) {
		participants = append(participants, entity.Participant{Email: email, Role: entity.ParticipantRoleTo})
	}
	for _, email := range normalize.Emails(Header(m, "Cc")) {
		participants = append(participants, entity.Participant{Email: email, Role: entity.ParticipantRoleCc})
	}

	return participants
}

// NormalizeMessage maps a metadata-format Gmail message to an email_event.
func NormalizeMessage(orgID uuid.UUID, m *gmailapi.Message) *entity.NormalizedEvent {
	from := Header(m, "From")

	labels := m.LabelIds
	if labels == nil {
		labels = []string{}
	}

	metadata := map[string]any{"labelIds": labels}
	if from != "" {
		metadata["fromHeader"] = from
	}

	return &entity.NormalizedEvent{
		OrgID:             orgID,
		Provider:          entity.ProviderGmail,
		Type:              entity.EventTypeEmail,
		OccurredAt:        normalize.ParseGmailInternalDate(m.InternalDate),
		ActorEmail:        normalize.StringPtr(normalize.FirstEmail(from)),
		ChannelOrThreadID: normalize.StringPtr(m.ThreadId),
		ExternalID:        m.Id,
		Subject:           normalize.TruncatePtr(Header(m, "Subject"), normalize.PreviewLimit),
		BodyPreview:       normalize.TruncatePtr(m.Snippet, normalize.PreviewLimit),
		Participants:      Participants(m),
		Metadata:          metadata,
	}
}
