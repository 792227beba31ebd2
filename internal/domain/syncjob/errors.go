package syncjob

import (
	"fmt"

	"github.com/ccasync/backend/internal/domain/shared"
)

// Error codes raised by the syncjob package
const (
	CodeInvalidJobType         = "SyncJob.InvalidJobType"
	CodeEmptyLdcAccountID      = "SyncJob.EmptyLdcAccountId"
	CodeEmptyCorrelationID     = "SyncJob.EmptyCorrelationId"
	CodeNegativeTotalRecords   = "SyncJob.NegativeTotalRecords"
	CodeInvalidStateTransition = "SyncJob.InvalidStateTransition"
	CodeNoFailedRecords        = "SyncJob.NoFailedRecords"
	CodeEmptyReason            = "SyncJob.EmptyReason"

	CodeStatsNegativeTotal      = "SyncJobStatistics.NegativeTotalRecords"
	CodeStatsNegativeProcessed  = "SyncJobStatistics.NegativeProcessedRecords"
	CodeStatsNegativeSuccessful = "SyncJobStatistics.NegativeSuccessfulRecords"
	CodeStatsNegativeFailed     = "SyncJobStatistics.NegativeFailedRecords"
	CodeStatsNegativeSkipped    = "SyncJobStatistics.NegativeSkippedRecords"
	CodeStatsProcessedExceeds   = "SyncJobStatistics.ProcessedExceedsTotal"
	CodeStatsOutcomesExceed     = "SyncJobStatistics.OutcomesExceedProcessed"

	CodeErrorEmptyCode       = "SyncJobError.EmptyErrorCode"
	CodeErrorCodeTooLong     = "SyncJobError.ErrorCodeTooLong"
	CodeErrorEmptyMessage    = "SyncJobError.EmptyErrorMessage"
	CodeErrorMessageTooLong  = "SyncJobError.ErrorMessageTooLong"
	CodeErrorRecordIDTooLong = "SyncJobError.RecordIdentifierTooLong"
)

// SyncJob errors
var (
	ErrEmptyLdcAccountID    = shared.NewError(CodeEmptyLdcAccountID, "LDC account id cannot be empty when provided")
	ErrEmptyCorrelationID   = shared.NewError(CodeEmptyCorrelationID, "Correlation id cannot be empty when provided")
	ErrNegativeTotalRecords = shared.NewError(CodeNegativeTotalRecords, "Total records cannot be negative")
	ErrNoFailedRecords      = shared.NewError(CodeNoFailedRecords, "Final statistics report no failed records, use Complete instead")
	ErrEmptyReason          = shared.NewError(CodeEmptyReason, "Reason cannot be empty")
)

// SyncJobStatistics errors
var (
	ErrStatsNegativeTotal      = shared.NewError(CodeStatsNegativeTotal, "Total records cannot be negative")
	ErrStatsNegativeProcessed  = shared.NewError(CodeStatsNegativeProcessed, "Processed records cannot be negative")
	ErrStatsNegativeSuccessful = shared.NewError(CodeStatsNegativeSuccessful, "Successful records cannot be negative")
	ErrStatsNegativeFailed     = shared.NewError(CodeStatsNegativeFailed, "Failed records cannot be negative")
	ErrStatsNegativeSkipped    = shared.NewError(CodeStatsNegativeSkipped, "Skipped records cannot be negative")
	ErrStatsProcessedExceeds   = shared.NewError(CodeStatsProcessedExceeds, "Processed records cannot exceed total records")
	ErrStatsOutcomesExceed     = shared.NewError(CodeStatsOutcomesExceed,
		"Successful, failed and skipped records together cannot exceed processed records")
)

// SyncJobError errors
var (
	ErrErrorEmptyCode       = shared.NewError(CodeErrorEmptyCode, "Error code cannot be empty")
	ErrErrorCodeTooLong     = shared.NewError(CodeErrorCodeTooLong, fmt.Sprintf("Error code cannot exceed %d characters", MaxErrorCodeLength))
	ErrErrorEmptyMessage    = shared.NewError(CodeErrorEmptyMessage, "Error message cannot be empty")
	ErrErrorMessageTooLong  = shared.NewError(CodeErrorMessageTooLong, fmt.Sprintf("Error message cannot exceed %d characters", MaxErrorMessageLength))
	ErrErrorRecordIDTooLong = shared.NewError(CodeErrorRecordIDTooLong,
		fmt.Sprintf("Record identifier cannot exceed %d characters", MaxRecordIdentifierLength))
)

func invalidJobType(t SyncJobType) shared.Error {
	return shared.NewError(CodeInvalidJobType, fmt.Sprintf("Invalid sync job type: %s", t))
}

func invalidTransition(action string, from SyncJobStatus) shared.Error {
	return shared.NewError(CodeInvalidStateTransition, fmt.Sprintf("Cannot %s a sync job in status %s", action, from))
}
