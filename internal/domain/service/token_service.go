package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	OrgID  uuid.UUID `json:"org_id"`
	Roles  []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens. The websocket endpoint and
// the auth middleware share it.
type TokenService interface {
	// GenerateAccessToken signs a token for a user acting inside an org.
	GenerateAccessToken(userID, orgID uuid.UUID, roles []string) (string, error)

	// ValidateToken parses and verifies a token, returning its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
