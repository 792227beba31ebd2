package syncjob

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SyncJobError field limits
const (
	MaxErrorCodeLength        = 100
	MaxErrorMessageLength     = 2000
	MaxRecordIdentifierLength = 500
)

// SyncJobError records one failure that occurred while a job was running.
// It is owned by a single SyncJob and never changes after creation.
type SyncJobError struct {
	id               uuid.UUID
	errorCode        string
	errorMessage     string
	recordIdentifier *string
	occurredAt       time.Time
}

// NewSyncJobError validates and creates a SyncJobError.
// A record identifier that is blank after trimming is stored as absent.
func NewSyncJobError(code, message string, recordID *string) shared.ResultOf[*SyncJobError] {
	code = strings.TrimSpace(code)
	message = strings.TrimSpace(message)

	if code == "" {
		return shared.FailureOf[*SyncJobError](ErrErrorEmptyCode)
	}
	if utf8.RuneCountInString(code) > MaxErrorCodeLength {
		return shared.FailureOf[*SyncJobError](ErrErrorCodeTooLong)
	}
	if message == "" {
		return shared.FailureOf[*SyncJobError](ErrErrorEmptyMessage)
	}
	if utf8.RuneCountInString(message) > MaxErrorMessageLength {
		return shared.FailureOf[*SyncJobError](ErrErrorMessageTooLong)
	}

	var record *string
	if recordID != nil {
		trimmed := strings.TrimSpace(*recordID)
		if utf8.RuneCountInString(trimmed) > MaxRecordIdentifierLength {
			return shared.FailureOf[*SyncJobError](ErrErrorRecordIDTooLong)
		}
		if trimmed != "" {
			record = &trimmed
		}
	}

	return shared.SuccessOf(&SyncJobError{
		id:               uuid.New(),
		errorCode:        code,
		errorMessage:     message,
		recordIdentifier: record,
		occurredAt:       time.Now(),
	})
}

// GetID returns the error identifier
func (e *SyncJobError) GetID() uuid.UUID { return e.id }

// GetCreatedAt returns when the error occurred
func (e *SyncJobError) GetCreatedAt() time.Time { return e.occurredAt }

// GetUpdatedAt returns when the error occurred; errors are never updated
func (e *SyncJobError) GetUpdatedAt() time.Time { return e.occurredAt }

// ErrorCode returns the error code
func (e *SyncJobError) ErrorCode() string { return e.errorCode }

// ErrorMessage returns the error message
func (e *SyncJobError) ErrorMessage() string { return e.errorMessage }

// RecordIdentifier returns the identifier of the record that failed, if known
func (e *SyncJobError) RecordIdentifier() (string, bool) {
	if e.recordIdentifier == nil {
		return "", false
	}
	return *e.recordIdentifier, true
}

// OccurredAt returns when the error occurred
func (e *SyncJobError) OccurredAt() time.Time { return e.occurredAt }

// Equals returns true if other is the same error entity
func (e *SyncJobError) Equals(other shared.Entity) bool {
	return shared.SameIdentity(e, other)
}

var _ shared.Entity = (*SyncJobError)(nil)
