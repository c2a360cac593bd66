package service

import (
	"context"

	"performiq/internal/domain/entity"

	"github.com/google/uuid"
)

// OAuthStateStore issues single-use anti-CSRF state tokens.
type OAuthStateStore interface {
	// Create binds a fresh token to (org, provider).
	Create(ctx context.Context, orgID uuid.UUID, provider entity.Provider) (string, error)

	// Validate consumes token. Unknown, reused and expired tokens return (nil, nil).
	Validate(ctx context.Context, token string) (*entity.OAuthState, error)

	// Sweep drops expired entries and reports how many were removed.
	Sweep(ctx context.Context) int
}
