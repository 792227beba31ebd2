package syncjob

import (
	"strings"
	"time"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// SyncJob tracks one synchronization run from creation to a terminal state.
//
// Lifecycle:
//
//	Pending -> Running -> Completed | PartiallyCompleted | Failed | Cancelled
//	Pending -> Cancelled
//
// startedAt is set exactly once by Start; completedAt is set exactly once by the
// terminal transition. Errors are append-only and only recorded while running.
type SyncJob struct {
	shared.BaseAggregateRoot
	tenantID      valueobject.TenantID
	jobType       SyncJobType
	status        SyncJobStatus
	ldcAccountID  *uuid.UUID
	correlationID *uuid.UUID
	statistics    SyncJobStatistics
	errors        []*SyncJobError
	startedAt     *time.Time
	completedAt   *time.Time
}

// Create creates a pending sync job. ldcAccountID and correlationID are optional,
// but when provided they must not be the nil UUID. Panics on a zero tenant.
func Create(
	tenantID valueobject.TenantID,
	jobType SyncJobType,
	ldcAccountID *uuid.UUID,
	correlationID *uuid.UUID,
) shared.ResultOf[*SyncJob] {
	if tenantID.IsZero() {
		panic("syncjob: Create requires a tenant id")
	}
	if !jobType.IsValid() {
		return shared.FailureOf[*SyncJob](invalidJobType(jobType))
	}
	if ldcAccountID != nil && *ldcAccountID == uuid.Nil {
		return shared.FailureOf[*SyncJob](ErrEmptyLdcAccountID)
	}
	if correlationID != nil && *correlationID == uuid.Nil {
		return shared.FailureOf[*SyncJob](ErrEmptyCorrelationID)
	}

	job := &SyncJob{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		tenantID:          tenantID,
		jobType:           jobType,
		status:            SyncJobStatusPending,
		ldcAccountID:      copyUUID(ldcAccountID),
		correlationID:     copyUUID(correlationID),
		statistics:        EmptySyncJobStatistics(),
		errors:            make([]*SyncJobError, 0),
	}
	job.RaiseDomainEvent(NewSyncJobCreatedEvent(job))

	return shared.SuccessOf(job)
}

// Start moves a pending job to Running with the expected number of records
func (j *SyncJob) Start(totalRecords int) shared.Result {
	if j.status != SyncJobStatusPending {
		return shared.Failure(invalidTransition("start", j.status))
	}
	if totalRecords < 0 {
		return shared.Failure(ErrNegativeTotalRecords)
	}

	now := time.Now()
	j.status = SyncJobStatusRunning
	j.startedAt = &now
	j.statistics = InitialSyncJobStatistics(totalRecords).Value()
	j.UpdatedAt = now
	j.RaiseDomainEvent(NewSyncJobStartedEvent(j))

	return shared.Success()
}

// UpdateProgress replaces the job statistics with a newer snapshot.
// Progress is not required to be monotonic.
func (j *SyncJob) UpdateProgress(statistics SyncJobStatistics) shared.Result {
	if j.status != SyncJobStatusRunning {
		return shared.Failure(invalidTransition("update progress of", j.status))
	}

	j.statistics = statistics
	j.Touch()
	j.RaiseDomainEvent(NewSyncJobProgressUpdatedEvent(j))

	return shared.Success()
}

// RecordError appends an error to a running job. No event is raised.
func (j *SyncJob) RecordError(code, message string, recordID *string) shared.Result {
	if j.status != SyncJobStatusRunning {
		return shared.Failure(invalidTransition("record an error on", j.status))
	}

	created := NewSyncJobError(code, message, recordID)
	if created.IsFailure() {
		return created.Result()
	}

	j.errors = append(j.errors, created.Value())
	j.Touch()

	return shared.Success()
}

// Complete finishes a running job successfully
func (j *SyncJob) Complete(finalStatistics SyncJobStatistics) shared.Result {
	if j.status != SyncJobStatusRunning {
		return shared.Failure(invalidTransition("complete", j.status))
	}

	j.finish(SyncJobStatusCompleted)
	j.statistics = finalStatistics
	j.RaiseDomainEvent(NewSyncJobCompletedEvent(j))

	return shared.Success()
}

// CompletePartially finishes a running job whose final statistics report failed records
func (j *SyncJob) CompletePartially(finalStatistics SyncJobStatistics) shared.Result {
	if j.status != SyncJobStatusRunning {
		return shared.Failure(invalidTransition("partially complete", j.status))
	}
	if finalStatistics.FailedRecords() == 0 {
		return shared.Failure(ErrNoFailedRecords)
	}

	j.finish(SyncJobStatusPartiallyCompleted)
	j.statistics = finalStatistics
	j.RaiseDomainEvent(NewSyncJobCompletedEvent(j))

	return shared.Success()
}

// Fail marks a running job as failed
func (j *SyncJob) Fail(reason string) shared.Result {
	if j.status != SyncJobStatusRunning {
		return shared.Failure(invalidTransition("fail", j.status))
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return shared.Failure(ErrEmptyReason)
	}

	j.finish(SyncJobStatusFailed)
	j.RaiseDomainEvent(NewSyncJobFailedEvent(j, reason))

	return shared.Success()
}

// Cancel cancels a pending or running job
func (j *SyncJob) Cancel(reason string) shared.Result {
	if j.status != SyncJobStatusPending && j.status != SyncJobStatusRunning {
		return shared.Failure(invalidTransition("cancel", j.status))
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return shared.Failure(ErrEmptyReason)
	}

	previous := j.status
	j.finish(SyncJobStatusCancelled)
	j.RaiseDomainEvent(NewSyncJobCancelledEvent(j, reason, previous))

	return shared.Success()
}

func (j *SyncJob) finish(status SyncJobStatus) {
	now := time.Now()
	j.status = status
	j.completedAt = &now
	j.UpdatedAt = now
}

// Duration returns how long the job has run: nil if it never started,
// the elapsed time so far while running, or the total run time once finished
func (j *SyncJob) Duration() *time.Duration {
	if j.startedAt == nil {
		return nil
	}
	end := time.Now()
	if j.completedAt != nil {
		end = *j.completedAt
	}
	d := end.Sub(*j.startedAt)
	return &d
}

// IsTerminal returns true if the job has reached a terminal state
func (j *SyncJob) IsTerminal() bool {
	return j.status.IsTerminal()
}

// IsPending returns true if the job has not started
func (j *SyncJob) IsPending() bool {
	return j.status == SyncJobStatusPending
}

// IsRunning returns true if the job is running
func (j *SyncJob) IsRunning() bool {
	return j.status == SyncJobStatusRunning
}

// HasErrors returns true if any error was recorded
func (j *SyncJob) HasErrors() bool {
	return len(j.errors) > 0
}

// ErrorCount returns the number of recorded errors
func (j *SyncJob) ErrorCount() int {
	return len(j.errors)
}

// TenantID returns the owning tenant
func (j *SyncJob) TenantID() valueobject.TenantID {
	return j.tenantID
}

// JobType returns the job type
func (j *SyncJob) JobType() SyncJobType {
	return j.jobType
}

// Status returns the current status
func (j *SyncJob) Status() SyncJobStatus {
	return j.status
}

// LdcAccountID returns the LDC account the job is scoped to, if any
func (j *SyncJob) LdcAccountID() *uuid.UUID {
	return copyUUID(j.ldcAccountID)
}

// CorrelationID returns the correlation id supplied at creation, if any
func (j *SyncJob) CorrelationID() *uuid.UUID {
	return copyUUID(j.correlationID)
}

// Statistics returns the latest statistics snapshot
func (j *SyncJob) Statistics() SyncJobStatistics {
	return j.statistics
}

// Errors returns the recorded errors in the order they occurred
func (j *SyncJob) Errors() []*SyncJobError {
	errs := make([]*SyncJobError, len(j.errors))
	copy(errs, j.errors)
	return errs
}

// StartedAt returns when the job started, if it has
func (j *SyncJob) StartedAt() *time.Time {
	return copyTime(j.startedAt)
}

// CompletedAt returns when the job reached a terminal state, if it has
func (j *SyncJob) CompletedAt() *time.Time {
	return copyTime(j.completedAt)
}

// Clone returns a deep copy of the job without its pending domain events
func (j *SyncJob) Clone() *SyncJob {
	c := *j
	c.ClearDomainEvents()
	c.ldcAccountID = copyUUID(j.ldcAccountID)
	c.correlationID = copyUUID(j.correlationID)
	c.errors = j.Errors()
	c.startedAt = copyTime(j.startedAt)
	c.completedAt = copyTime(j.completedAt)
	return &c
}

func copyUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
