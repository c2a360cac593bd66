package entity

import (
	"time"

	"github.com/google/uuid"
)

// OAuthState is the payload bound to an anti-CSRF state token.
type OAuthState struct {
	OrgID     uuid.UUID `json:"org_id"`
	Provider  Provider  `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the state is older than ttl at now.
func (s *OAuthState) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) > ttl
}

// TokenSet is the provider credential bundle that gets encrypted at rest.
type TokenSet struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	TokenType    string     `json:"token_type,omitempty"`
	Scope        string     `json:"scope,omitempty"`
	ExpiresIn    int64      `json:"expires_in,omitempty"`
	Expiry       *time.Time `json:"expiry,omitempty"`
}

// HasRefreshToken reports whether the set can be refreshed without user interaction.
func (t *TokenSet) HasRefreshToken() bool {
	return t != nil && t.RefreshToken != ""
}

// ExpiresAt returns the absolute expiry, deriving it from ExpiresIn relative to issuedAt.
func (t *TokenSet) ExpiresAt(issuedAt time.Time) *time.Time {
	if t == nil {
		return nil
	}
	if t.Expiry != nil {
		return t.Expiry
	}
	if t.ExpiresIn <= 0 {
		return nil
	}
	at := issuedAt.Add(time.Duration(t.ExpiresIn) * time.Second)

	return &at
}
