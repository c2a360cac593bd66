package postgres

import (
	"context"
	"encoding/json"
	"time"

	"performiq/internal/domain/entity"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/domain/repository"
	"performiq/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

var eventConflictColumns = []clause.Column{{Name: "org_id"}, {Name: "provider"}, {Name: "external_id"}}

func (repo *eventRepository) UpsertRaw(ctx context.Context, event *entity.RawEvent) error {
	payload := event.Payload
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	m := &model.RawEventModel{
		ID:         uuid.New(),
		OrgID:      event.OrgID,
		Provider:   event.Provider.String(),
		EventType:  event.EventType,
		OccurredAt: event.OccurredAt.UTC(),
		ExternalID: event.ExternalID,
		Payload:    datatypes.JSON(payload),
		CreatedAt:  time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   eventConflictColumns,
			DoUpdates: clause.AssignmentColumns([]string{"event_type", "occurred_at", "payload"}),
		}).
		Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert raw event")
	}

	return nil
}

func (repo *eventRepository) UpsertNormalized(ctx context.Context, event *entity.NormalizedEvent) error {
	m, err := fromEventDomain(event)
	if err != nil {
		return err
	}
	m.ID = uuid.New()
	m.CreatedAt = time.Now().UTC()

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: eventConflictColumns,
			DoUpdates: clause.AssignmentColumns([]string{
				"type",
				"occurred_at",
				"actor_external_id",
				"actor_email",
				"channel_or_thread_id",
				"subject",
				"body_preview",
				"participants",
				"metadata",
			}),
		}).
		Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert event")
	}

	return nil
}

func (repo *eventRepository) List(ctx context.Context, filter entity.EventFilter) ([]*entity.NormalizedEvent, error) {
	query := repo.db.WithContext(ctx).Where("org_id = ?", filter.OrgID)

	if filter.From != nil {
		query = query.Where("occurred_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		query = query.Where("occurred_at <= ?", filter.To.UTC())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Provider != nil {
		query = query.Where("provider = ?", filter.Provider.String())
	}
	if filter.Cursor != nil {
		query = query.Where("occurred_at < ?", filter.Cursor.UTC())
	}

	var models []*model.EventModel
	if err := query.
		Order("occurred_at DESC").
		Order("id DESC").
		Limit(filter.Limit).
		Find(&models).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []*entity.NormalizedEvent{}, nil
		}

		return nil, errors.Wrap(err, "failed to list events")
	}

	out := make([]*entity.NormalizedEvent, 0, len(models))
	for _, m := range models {
		ev, err := toEventDomain(m)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}

	return out, nil
}

func fromEventDomain(e *entity.NormalizedEvent) (*model.EventModel, error) {
	participants := e.Participants
	if participants == nil {
		participants = []entity.Participant{}
	}
	participantsJSON, err := json.Marshal(participants)
	if err != nil {
		return nil, errors.Wrap(err, "encode participants")
	}

	metadata := e.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return nil, errors.Wrap(err, "encode metadata")
	}

	return &model.EventModel{
		ID:                e.ID,
		OrgID:             e.OrgID,
		Provider:          e.Provider.String(),
		Type:              string(e.Type),
		OccurredAt:        e.OccurredAt.UTC(),
		ActorExternalID:   e.ActorExternalID,
		ActorEmail:        e.ActorEmail,
		ChannelOrThreadID: e.ChannelOrThreadID,
		ExternalID:        e.ExternalID,
		Subject:           e.Subject,
		BodyPreview:       e.BodyPreview,
		Participants:      datatypes.JSON(participantsJSON),
		Metadata:          datatypes.JSON(metadataJSON),
	}, nil
}

func toEventDomain(m *model.EventModel) (*entity.NormalizedEvent, error) {
	ev := &entity.NormalizedEvent{
		ID:                m.ID,
		OrgID:             m.OrgID,
		Provider:          entity.Provider(m.Provider),
		Type:              entity.EventType(m.Type),
		OccurredAt:        m.OccurredAt,
		ActorExternalID:   m.ActorExternalID,
		ActorEmail:        m.ActorEmail,
		ChannelOrThreadID: m.ChannelOrThreadID,
		ExternalID:        m.ExternalID,
		Subject:           m.Subject,
		BodyPreview:       m.BodyPreview,
		Participants:      []entity.Participant{},
		Metadata:          map[string]any{},
		CreatedAt:         m.CreatedAt,
	}

	if len(m.Participants) > 0 {
		if err := json.Unmarshal(m.Participants, &ev.Participants); err != nil {
			return nil, errors.Wrap(err, "decode participants")
		}
	}
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &ev.Metadata); err != nil {
			return nil, errors.Wrap(err, "decode metadata")
		}
	}

	return ev, nil
}
