package syncjob

import (
	"fmt"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SyncJobStatistics is an immutable snapshot of record counts for a sync job.
// Invariants: every count is non-negative, processed <= total, and
// successful + failed + skipped <= processed.
type SyncJobStatistics struct {
	totalRecords      int
	processedRecords  int
	successfulRecords int
	failedRecords     int
	skippedRecords    int
}

// NewSyncJobStatistics validates and creates statistics.
// The first violated invariant determines the error.
func NewSyncJobStatistics(total, processed, successful, failed, skipped int) shared.ResultOf[SyncJobStatistics] {
	switch {
	case total < 0:
		return shared.FailureOf[SyncJobStatistics](ErrStatsNegativeTotal)
	case processed < 0:
		return shared.FailureOf[SyncJobStatistics](ErrStatsNegativeProcessed)
	case successful < 0:
		return shared.FailureOf[SyncJobStatistics](ErrStatsNegativeSuccessful)
	case failed < 0:
		return shared.FailureOf[SyncJobStatistics](ErrStatsNegativeFailed)
	case skipped < 0:
		return shared.FailureOf[SyncJobStatistics](ErrStatsNegativeSkipped)
	case processed > total:
		return shared.FailureOf[SyncJobStatistics](ErrStatsProcessedExceeds)
	case successful+failed+skipped > processed:
		return shared.FailureOf[SyncJobStatistics](ErrStatsOutcomesExceed)
	}

	return shared.SuccessOf(SyncJobStatistics{
		totalRecords:      total,
		processedRecords:  processed,
		successfulRecords: successful,
		failedRecords:     failed,
		skippedRecords:    skipped,
	})
}

// InitialSyncJobStatistics returns statistics for a job that has not processed anything yet
func InitialSyncJobStatistics(total int) shared.ResultOf[SyncJobStatistics] {
	return NewSyncJobStatistics(total, 0, 0, 0, 0)
}

// EmptySyncJobStatistics returns the all-zero placeholder used before a job starts
func EmptySyncJobStatistics() SyncJobStatistics {
	return SyncJobStatistics{}
}

// TotalRecords returns the number of records the job expects to process
func (s SyncJobStatistics) TotalRecords() int { return s.totalRecords }

// ProcessedRecords returns the number of records processed so far
func (s SyncJobStatistics) ProcessedRecords() int { return s.processedRecords }

// SuccessfulRecords returns the number of records synchronized successfully
func (s SyncJobStatistics) SuccessfulRecords() int { return s.successfulRecords }

// FailedRecords returns the number of records that failed
func (s SyncJobStatistics) FailedRecords() int { return s.failedRecords }

// SkippedRecords returns the number of records skipped
func (s SyncJobStatistics) SkippedRecords() int { return s.skippedRecords }

// ProgressPercentage returns processed/total*100 rounded to two decimal places.
// It is zero when total is zero.
func (s SyncJobStatistics) ProgressPercentage() decimal.Decimal {
	if s.totalRecords == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.processedRecords)).
		Mul(hundred).
		DivRound(decimal.NewFromInt(int64(s.totalRecords)), 2)
}

// RemainingRecords returns the number of records not yet processed
func (s SyncJobStatistics) RemainingRecords() int {
	return s.totalRecords - s.processedRecords
}

// HasFailures returns true if any record failed
func (s SyncJobStatistics) HasFailures() bool {
	return s.failedRecords > 0
}

// IsFullyProcessed returns true when every expected record has been processed
func (s SyncJobStatistics) IsFullyProcessed() bool {
	return s.processedRecords == s.totalRecords
}

// Equals returns true if both snapshots hold the same counts
func (s SyncJobStatistics) Equals(other SyncJobStatistics) bool {
	return shared.ValueObjectsEqual(s, other)
}

// EqualityComponents implements shared.ValueObject
func (s SyncJobStatistics) EqualityComponents() []any {
	return []any{s.totalRecords, s.processedRecords, s.successfulRecords, s.failedRecords, s.skippedRecords}
}

// String returns a compact summary
func (s SyncJobStatistics) String() string {
	return fmt.Sprintf("%d/%d processed (%s%%): %d ok, %d failed, %d skipped",
		s.processedRecords, s.totalRecords, s.ProgressPercentage().StringFixed(2),
		s.successfulRecords, s.failedRecords, s.skippedRecords)
}
