package middleware

import (
	"slices"
	"strings"

	"performiq/internal/delivery/http/response"
	"performiq/internal/domain/constants"
	"performiq/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXOrgID lets a client pin the org it expects to act on.
const HeaderXOrgID = "X-Org-Id"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the user, org and
// roles on the echo context. A X-Org-Id header that disagrees with the token
// is rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		if header := c.Request().Header.Get(HeaderXOrgID); header != "" {
			requested, err := uuid.Parse(header)
			if err != nil || requested != claims.OrgID {
				return response.Forbidden(c, "FORBIDDEN", "Not a member of this organization")
			}
		}

		SetClaims(c, claims)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(constants.ContextKeyRoles).([]string)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !slices.Contains(roles, requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// SetClaims stores validated claims on the echo context.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(constants.ContextKeyUserID, claims.UserID)
	c.Set(constants.ContextKeyOrgID, claims.OrgID)
	c.Set(constants.ContextKeyRoles, claims.Roles)
}

// OrgID returns the org set by Authenticate.
func OrgID(c echo.Context) (uuid.UUID, bool) {
	orgID, ok := c.Get(constants.ContextKeyOrgID).(uuid.UUID)

	return orgID, ok && orgID != uuid.Nil
}
