package entity

import "performiq/internal/errors"

// SyncStatus is the outcome of one provider sync.
type SyncStatus string

const (
	SyncStatusSucceeded      SyncStatus = "succeeded"
	SyncStatusFailed         SyncStatus = "failed"
	SyncStatusNotImplemented SyncStatus = "not_implemented"
)

// NotImplementedMessage is recorded for providers whose ingestion is a stub.
const NotImplementedMessage = "Not implemented"

// SyncResult reports what a provider sync did. Stubs report Success with the
// NotImplemented status so callers can tell them apart from real successes.
type SyncResult struct {
	Status          SyncStatus `json:"status"`
	Success         bool       `json:"success"`
	EventsProcessed int        `json:"eventsProcessed"`
	Cursor          *string    `json:"cursor,omitempty"`
	Error           *string    `json:"error,omitempty"`
}

// SucceededResult builds a successful result.
func SucceededResult(events int) *SyncResult {
	return &SyncResult{Status: SyncStatusSucceeded, Success: true, EventsProcessed: events}
}

// FailedResult builds a failed result carrying msg.
func FailedResult(msg string) *SyncResult {
	return &SyncResult{Status: SyncStatusFailed, Success: false, Error: &msg}
}

// NotImplementedResult builds the result returned by stub providers.
func NotImplementedResult() *SyncResult {
	msg := NotImplementedMessage

	return &SyncResult{Status: SyncStatusNotImplemented, Success: true, Error: &msg}
}

// Merge folds other into r for accounts sharing a provider. Events add up,
// success requires both, and errors are joined.
func (r *SyncResult) Merge(other *SyncResult) {
	if other == nil {
		return
	}
	r.EventsProcessed += other.EventsProcessed
	r.Success = r.Success && other.Success

	switch {
	case r.Status == SyncStatusFailed || other.Status == SyncStatusFailed:
		r.Status = SyncStatusFailed
	case r.Status == SyncStatusSucceeded || other.Status == SyncStatusSucceeded:
		r.Status = SyncStatusSucceeded
	}

	if other.Error != nil {
		if r.Error == nil {
			msg := *other.Error
			r.Error = &msg
		} else if *r.Error != *other.Error {
			msg := errors.Append(errors.New(*r.Error), errors.New(*other.Error)).Error()
			r.Error = &msg
		}
	}
	if other.Cursor != nil {
		r.Cursor = other.Cursor
	}
}
