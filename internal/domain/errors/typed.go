package errors

import (
	"fmt"
	"net/http"
)

// ConfigurationError reports a missing or malformed setting detected at startup.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration %s: %s", e.Setting, e.Reason)
}

// CryptoError is returned by the token vault for any encrypt or decrypt failure.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	if e.Err == nil {
		return "crypto " + e.Op + " failed"
	}

	return "crypto " + e.Op + ": " + e.Err.Error()
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// OAuthExchangeError reports a rejected authorization code exchange.
type OAuthExchangeError struct {
	Provider string
	Status   int
	Reason   string
}

func (e *OAuthExchangeError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s token exchange failed (status %d): %s", e.Provider, e.Status, e.Reason)
	}

	return fmt.Sprintf("%s token exchange failed: %s", e.Provider, e.Reason)
}

// HTTPCode maps exchange failures to 500 for the callback route.
func (e *OAuthExchangeError) HTTPCode() int { return http.StatusInternalServerError }

// ErrorCode returns the business error code
func (e *OAuthExchangeError) ErrorCode() string { return ErrOAuthExchangeFailed.ErrorCode() }

// Message returns the user-friendly error message
func (e *OAuthExchangeError) Message() string { return ErrOAuthExchangeFailed.Message() }

// Details returns detailed error information
func (e *OAuthExchangeError) Details() string { return e.Error() }

// SyncProviderError aborts a whole provider sync (listing or auth failure).
type SyncProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *SyncProviderError) Error() string {
	return fmt.Sprintf("%s sync %s: %v", e.Provider, e.Op, e.Err)
}

func (e *SyncProviderError) Unwrap() error {
	return e.Err
}

// SyncItemError is a single-item failure; the sync logs it and moves on.
type SyncItemError struct {
	Provider   string
	ExternalID string
	Err        error
}

func (e *SyncItemError) Error() string {
	return fmt.Sprintf("%s item %s: %v", e.Provider, e.ExternalID, e.Err)
}

func (e *SyncItemError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is a non-2xx response from a provider API.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, e.Body)
}
