package syncjob

import (
	"time"

	"github.com/ccasync/backend/internal/domain/syncjob"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateJobRequest represents a request to create a sync job
type CreateJobRequest struct {
	TenantID      string     `json:"tenant_id"`
	JobType       string     `json:"job_type"`
	LdcAccountID  *uuid.UUID `json:"ldc_account_id"`
	CorrelationID *uuid.UUID `json:"correlation_id"`
}

// StatisticsInput carries record counts reported by a sync worker
type StatisticsInput struct {
	TotalRecords      int `json:"total_records"`
	ProcessedRecords  int `json:"processed_records"`
	SuccessfulRecords int `json:"successful_records"`
	FailedRecords     int `json:"failed_records"`
	SkippedRecords    int `json:"skipped_records"`
}

// RecordErrorRequest represents a per-record failure reported by a sync worker
type RecordErrorRequest struct {
	ErrorCode        string  `json:"error_code"`
	ErrorMessage     string  `json:"error_message"`
	RecordIdentifier *string `json:"record_identifier"`
}

// SyncJobStatisticsResponse is the response view of SyncJobStatistics
type SyncJobStatisticsResponse struct {
	TotalRecords       int             `json:"total_records"`
	ProcessedRecords   int             `json:"processed_records"`
	SuccessfulRecords  int             `json:"successful_records"`
	FailedRecords      int             `json:"failed_records"`
	SkippedRecords     int             `json:"skipped_records"`
	RemainingRecords   int             `json:"remaining_records"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage"`
}

// SyncJobErrorResponse is the response view of a SyncJobError
type SyncJobErrorResponse struct {
	ID               uuid.UUID `json:"id"`
	ErrorCode        string    `json:"error_code"`
	ErrorMessage     string    `json:"error_message"`
	RecordIdentifier *string   `json:"record_identifier,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// SyncJobResponse represents a sync job in API responses
type SyncJobResponse struct {
	ID            uuid.UUID                 `json:"id"`
	TenantID      string                    `json:"tenant_id"`
	JobType       string                    `json:"job_type"`
	Status        string                    `json:"status"`
	LdcAccountID  *uuid.UUID                `json:"ldc_account_id,omitempty"`
	CorrelationID *uuid.UUID                `json:"correlation_id,omitempty"`
	Statistics    SyncJobStatisticsResponse `json:"statistics"`
	Errors        []SyncJobErrorResponse    `json:"errors"`
	StartedAt     *time.Time                `json:"started_at,omitempty"`
	CompletedAt   *time.Time                `json:"completed_at,omitempty"`
	Duration      *time.Duration            `json:"duration,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
	Version       int                       `json:"version"`
}

// ToSyncJobResponse converts a SyncJob aggregate to its response view
func ToSyncJobResponse(job *syncjob.SyncJob) SyncJobResponse {
	stats := job.Statistics()
	errs := job.Errors()
	errResponses := make([]SyncJobErrorResponse, len(errs))
	for i, e := range errs {
		errResponses[i] = SyncJobErrorResponse{
			ID:           e.GetID(),
			ErrorCode:    e.ErrorCode(),
			ErrorMessage: e.ErrorMessage(),
			OccurredAt:   e.OccurredAt(),
		}
		if recordID, ok := e.RecordIdentifier(); ok {
			errResponses[i].RecordIdentifier = &recordID
		}
	}

	return SyncJobResponse{
		ID:            job.ID,
		TenantID:      job.TenantID().Value(),
		JobType:       job.JobType().String(),
		Status:        job.Status().String(),
		LdcAccountID:  job.LdcAccountID(),
		CorrelationID: job.CorrelationID(),
		Statistics: SyncJobStatisticsResponse{
			TotalRecords:       stats.TotalRecords(),
			ProcessedRecords:   stats.ProcessedRecords(),
			SuccessfulRecords:  stats.SuccessfulRecords(),
			FailedRecords:      stats.FailedRecords(),
			SkippedRecords:     stats.SkippedRecords(),
			RemainingRecords:   stats.RemainingRecords(),
			ProgressPercentage: stats.ProgressPercentage(),
		},
		Errors:      errResponses,
		StartedAt:   job.StartedAt(),
		CompletedAt: job.CompletedAt(),
		Duration:    job.Duration(),
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
		Version:     job.GetVersion(),
	}
}

// ToSyncJobResponses converts a slice of SyncJob aggregates
func ToSyncJobResponses(jobs []*syncjob.SyncJob) []SyncJobResponse {
	responses := make([]SyncJobResponse, len(jobs))
	for i, job := range jobs {
		responses[i] = ToSyncJobResponse(job)
	}
	return responses
}
