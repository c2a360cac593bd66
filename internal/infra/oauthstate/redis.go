package oauthstate

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"performiq/internal/domain/entity"
	"performiq/internal/domain/service"
	"performiq/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore shares states across instances. Keys expire through Redis TTL
// and GETDEL makes consumption atomic.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

var _ service.OAuthStateStore = (*RedisStore)(nil)

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration, logger *slog.Logger, opts ...Option) *RedisStore {
	o := buildOptions(opts)

	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		now:    o.now,
		logger: logger,
	}
}

func (s *RedisStore) Create(ctx context.Context, orgID uuid.UUID, provider entity.Provider) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(entity.OAuthState{OrgID: orgID, Provider: provider, CreatedAt: s.now().UTC()})
	if err != nil {
		return "", errors.WithStack(err)
	}

	if err := s.client.Set(ctx, s.prefix+token, payload, s.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "store oauth state")
	}

	return token, nil
}

func (s *RedisStore) Validate(ctx context.Context, token string) (*entity.OAuthState, error) {
	payload, err := s.client.GetDel(ctx, s.prefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		s.logger.WarnContext(ctx, "OAuth state not found")

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "consume oauth state")
	}

	var state entity.OAuthState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, errors.Wrap(err, "decode oauth state")
	}
	if state.Expired(s.now(), s.ttl) {
		s.logger.WarnContext(ctx, "OAuth state expired",
			slog.String("provider", state.Provider.String()),
			slog.String("org_id", state.OrgID.String()),
		)

		return nil, nil
	}

	return &state, nil
}

// Sweep is a no-op; Redis expires keys itself.
func (s *RedisStore) Sweep(_ context.Context) int {
	return 0
}
