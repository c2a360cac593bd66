package service

import domainerrors "performiq/internal/domain/errors"

// Availability records which optional subsystems came up at startup.
type Availability struct {
	EncryptionConfigured bool
	DatabaseConfigured   bool
}

// OAuthEnabled reports whether connect and callback flows can run.
func (a Availability) OAuthEnabled() bool {
	return a.EncryptionConfigured && a.DatabaseConfigured
}

// Check returns the 503 error describing the first missing subsystem.
func (a Availability) Check() error {
	if !a.EncryptionConfigured {
		return domainerrors.ErrEncryptionNotConfigured
	}
	if !a.DatabaseConfigured {
		return domainerrors.ErrDatabaseNotConfigured
	}

	return nil
}
