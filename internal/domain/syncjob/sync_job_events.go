package syncjob

import (
	"time"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeSyncJob = "SyncJob"

// Event type constants
const (
	EventTypeSyncJobCreated         = "SyncJobCreated"
	EventTypeSyncJobStarted         = "SyncJobStarted"
	EventTypeSyncJobProgressUpdated = "SyncJobProgressUpdated"
	EventTypeSyncJobCompleted       = "SyncJobCompleted"
	EventTypeSyncJobFailed          = "SyncJobFailed"
	EventTypeSyncJobCancelled       = "SyncJobCancelled"
)

// SyncJobCreatedEvent is published when a new sync job is created
type SyncJobCreatedEvent struct {
	shared.BaseDomainEvent
	JobID         uuid.UUID   `json:"job_id"`
	JobType       SyncJobType `json:"job_type"`
	LdcAccountID  *uuid.UUID  `json:"ldc_account_id,omitempty"`
	CorrelationID *uuid.UUID  `json:"correlation_id,omitempty"`
}

// NewSyncJobCreatedEvent creates a new SyncJobCreatedEvent
func NewSyncJobCreatedEvent(job *SyncJob) *SyncJobCreatedEvent {
	return &SyncJobCreatedEvent{
		BaseDomainEvent: newSyncJobEvent(EventTypeSyncJobCreated, job),
		JobID:           job.ID,
		JobType:         job.jobType,
		LdcAccountID:    job.LdcAccountID(),
		CorrelationID:   job.CorrelationID(),
	}
}

// SyncJobStartedEvent is published when a sync job starts running
type SyncJobStartedEvent struct {
	shared.BaseDomainEvent
	JobID        uuid.UUID   `json:"job_id"`
	JobType      SyncJobType `json:"job_type"`
	TotalRecords int         `json:"total_records"`
	StartedAt    time.Time   `json:"started_at"`
}

// NewSyncJobStartedEvent creates a new SyncJobStartedEvent
func NewSyncJobStartedEvent(job *SyncJob) *SyncJobStartedEvent {
	return &SyncJobStartedEvent{
		BaseDomainEvent: newSyncJobEvent(EventTypeSyncJobStarted, job),
		JobID:           job.ID,
		JobType:         job.jobType,
		TotalRecords:    job.statistics.TotalRecords(),
		StartedAt:       *job.startedAt,
	}
}

// SyncJobProgressUpdatedEvent is published when a running job reports progress
type SyncJobProgressUpdatedEvent struct {
	shared.BaseDomainEvent
	JobID              uuid.UUID       `json:"job_id"`
	ProcessedRecords   int             `json:"processed_records"`
	TotalRecords       int             `json:"total_records"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage"`
}

// NewSyncJobProgressUpdatedEvent creates a new SyncJobProgressUpdatedEvent
func NewSyncJobProgressUpdatedEvent(job *SyncJob) *SyncJobProgressUpdatedEvent {
	return &SyncJobProgressUpdatedEvent{
		BaseDomainEvent:    newSyncJobEvent(EventTypeSyncJobProgressUpdated, job),
		JobID:              job.ID,
		ProcessedRecords:   job.statistics.ProcessedRecords(),
		TotalRecords:       job.statistics.TotalRecords(),
		ProgressPercentage: job.statistics.ProgressPercentage(),
	}
}

// SyncJobCompletedEvent is published when a job completes, fully or partially.
// Status distinguishes the two outcomes.
type SyncJobCompletedEvent struct {
	shared.BaseDomainEvent
	JobID             uuid.UUID     `json:"job_id"`
	Status            SyncJobStatus `json:"status"`
	TotalRecords      int           `json:"total_records"`
	SuccessfulRecords int           `json:"successful_records"`
	FailedRecords     int           `json:"failed_records"`
	SkippedRecords    int           `json:"skipped_records"`
	ErrorCount        int           `json:"error_count"`
	CompletedAt       time.Time     `json:"completed_at"`
}

// NewSyncJobCompletedEvent creates a new SyncJobCompletedEvent
func NewSyncJobCompletedEvent(job *SyncJob) *SyncJobCompletedEvent {
	return &SyncJobCompletedEvent{
		BaseDomainEvent:   newSyncJobEvent(EventTypeSyncJobCompleted, job),
		JobID:             job.ID,
		Status:            job.status,
		TotalRecords:      job.statistics.TotalRecords(),
		SuccessfulRecords: job.statistics.SuccessfulRecords(),
		FailedRecords:     job.statistics.FailedRecords(),
		SkippedRecords:    job.statistics.SkippedRecords(),
		ErrorCount:        len(job.errors),
		CompletedAt:       *job.completedAt,
	}
}

// IsPartial returns true if the job completed with failed records
func (e *SyncJobCompletedEvent) IsPartial() bool {
	return e.Status == SyncJobStatusPartiallyCompleted
}

// SyncJobFailedEvent is published when a running job fails
type SyncJobFailedEvent struct {
	shared.BaseDomainEvent
	JobID      uuid.UUID `json:"job_id"`
	Reason     string    `json:"reason"`
	ErrorCount int       `json:"error_count"`
	FailedAt   time.Time `json:"failed_at"`
}

// NewSyncJobFailedEvent creates a new SyncJobFailedEvent
func NewSyncJobFailedEvent(job *SyncJob, reason string) *SyncJobFailedEvent {
	return &SyncJobFailedEvent{
		BaseDomainEvent: newSyncJobEvent(EventTypeSyncJobFailed, job),
		JobID:           job.ID,
		Reason:          reason,
		ErrorCount:      len(job.errors),
		FailedAt:        *job.completedAt,
	}
}

// SyncJobCancelledEvent is published when a pending or running job is cancelled
type SyncJobCancelledEvent struct {
	shared.BaseDomainEvent
	JobID          uuid.UUID     `json:"job_id"`
	Reason         string        `json:"reason"`
	PreviousStatus SyncJobStatus `json:"previous_status"`
	CancelledAt    time.Time     `json:"cancelled_at"`
}

// NewSyncJobCancelledEvent creates a new SyncJobCancelledEvent
func NewSyncJobCancelledEvent(job *SyncJob, reason string, previous SyncJobStatus) *SyncJobCancelledEvent {
	return &SyncJobCancelledEvent{
		BaseDomainEvent: newSyncJobEvent(EventTypeSyncJobCancelled, job),
		JobID:           job.ID,
		Reason:          reason,
		PreviousStatus:  previous,
		CancelledAt:     *job.completedAt,
	}
}

func newSyncJobEvent(eventType string, job *SyncJob) shared.BaseDomainEvent {
	return shared.NewBaseDomainEvent(eventType, AggregateTypeSyncJob, job.ID, job.tenantID.Value())
}
