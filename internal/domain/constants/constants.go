// Package constants defines string values shared across layers.
package constants

// Pub/Sub providers for sync notifications.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// OAuth state store backends.
const (
	StateStoreMemory = "memory"
	StateStoreRedis  = "redis"
)

// Roles carried in access token claims.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID = "userID"
	ContextKeyOrgID  = "orgID"
	ContextKeyRoles  = "roles"
)
