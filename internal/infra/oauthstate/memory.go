// Package oauthstate issues and consumes single-use OAuth state tokens.
package oauthstate

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"performiq/internal/domain/entity"
	"performiq/internal/domain/service"
	"performiq/internal/errors"

	"github.com/google/uuid"
)

// tokenBytes of entropy are hex encoded into a 64 character token.
const tokenBytes = 32

// Option customizes a store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides time.Now, letting tests drive expiry.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// MemoryStore keeps states in process memory. Suitable for a single instance.
type MemoryStore struct {
	mu     sync.Mutex
	states map[string]entity.OAuthState
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

var _ service.OAuthStateStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store whose entries live for ttl.
func NewMemoryStore(ttl time.Duration, logger *slog.Logger, opts ...Option) *MemoryStore {
	o := buildOptions(opts)

	return &MemoryStore{
		states: make(map[string]entity.OAuthState),
		ttl:    ttl,
		now:    o.now,
		logger: logger,
	}
}

func (s *MemoryStore) Create(_ context.Context, orgID uuid.UUID, provider entity.Provider) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.states[token] = entity.OAuthState{OrgID: orgID, Provider: provider, CreatedAt: s.now()}
	s.mu.Unlock()

	return token, nil
}

func (s *MemoryStore) Validate(ctx context.Context, token string) (*entity.OAuthState, error) {
	s.mu.Lock()
	state, ok := s.states[token]
	// Consumed even when expired so a token is never accepted twice.
	delete(s.states, token)
	s.mu.Unlock()

	if !ok {
		s.logger.WarnContext(ctx, "OAuth state not found")

		return nil, nil
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

func (s *MemoryStore) Sweep(_ context.Context) int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, state := range s.states {
		if state.Expired(now, s.ttl) {
			delete(s.states, token)
			removed++
		}
	}

	return removed
}

// Len reports how many states are held.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.states)
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate oauth state")
	}

	return hex.EncodeToString(buf), nil
}
