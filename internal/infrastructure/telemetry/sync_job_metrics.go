package telemetry

import (
	"context"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/syncjob"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names
const (
	MetricSyncJobsCreated  = "ccasync.sync_jobs.created"
	MetricSyncJobsStarted  = "ccasync.sync_jobs.started"
	MetricSyncJobsFinished = "ccasync.sync_jobs.finished"
	MetricSyncRecords      = "ccasync.sync_records.processed"
	MetricSyncErrors       = "ccasync.sync_errors.recorded"
)

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewSyncJobMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}

// SyncJobMetrics turns sync job lifecycle events into counters. It is registered
// with the event dispatcher like any other handler.
type SyncJobMetrics struct {
	created  *Counter
	started  *Counter
	finished *Counter
	records  *Counter
	errors   *Counter
}

// NewSyncJobMetrics creates the sync job instruments on meter
func NewSyncJobMetrics(meter metric.Meter) (*SyncJobMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	m := &SyncJobMetrics{}
	var err error
	if m.created, err = NewCounter(meter, MetricSyncJobsCreated, "Sync jobs created", "{job}"); err != nil {
		return nil, err
	}
	if m.started, err = NewCounter(meter, MetricSyncJobsStarted, "Sync jobs started", "{job}"); err != nil {
		return nil, err
	}
	if m.finished, err = NewCounter(meter, MetricSyncJobsFinished, "Sync jobs that reached a terminal status", "{job}"); err != nil {
		return nil, err
	}
	if m.records, err = NewCounter(meter, MetricSyncRecords, "Records processed by completed sync jobs", "{record}"); err != nil {
		return nil, err
	}
	if m.errors, err = NewCounter(meter, MetricSyncErrors, "Errors recorded by finished sync jobs", "{error}"); err != nil {
		return nil, err
	}
	return m, nil
}

// Handle records the event
func (m *SyncJobMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	tenant := AttrTenantID.String(event.TenantID())

	switch e := event.(type) {
	case *syncjob.SyncJobCreatedEvent:
		m.created.Inc(ctx, tenant, AttrJobType.String(e.JobType.String()))
	case *syncjob.SyncJobStartedEvent:
		m.started.Inc(ctx, tenant, AttrJobType.String(e.JobType.String()))
	case *syncjob.SyncJobCompletedEvent:
		m.finished.Inc(ctx, tenant, statusAttr(e.Status))
		m.records.Add(ctx, int64(e.SuccessfulRecords), tenant, AttrRecordOutcome.String(RecordOutcomeSuccessful))
		m.records.Add(ctx, int64(e.FailedRecords), tenant, AttrRecordOutcome.String(RecordOutcomeFailed))
		m.records.Add(ctx, int64(e.SkippedRecords), tenant, AttrRecordOutcome.String(RecordOutcomeSkipped))
		m.errors.Add(ctx, int64(e.ErrorCount), tenant)
	case *syncjob.SyncJobFailedEvent:
		m.finished.Inc(ctx, tenant, statusAttr(syncjob.SyncJobStatusFailed))
		m.errors.Add(ctx, int64(e.ErrorCount), tenant)
	case *syncjob.SyncJobCancelledEvent:
		m.finished.Inc(ctx, tenant, statusAttr(syncjob.SyncJobStatusCancelled))
	}
	return nil
}

// EventTypes returns the sync job lifecycle events the handler counts
func (m *SyncJobMetrics) EventTypes() []string {
	return []string{
		syncjob.EventTypeSyncJobCreated,
		syncjob.EventTypeSyncJobStarted,
		syncjob.EventTypeSyncJobCompleted,
		syncjob.EventTypeSyncJobFailed,
		syncjob.EventTypeSyncJobCancelled,
	}
}

func statusAttr(status syncjob.SyncJobStatus) attribute.KeyValue {
	return AttrJobStatus.String(status.String())
}

var _ shared.EventHandler = (*SyncJobMetrics)(nil)
