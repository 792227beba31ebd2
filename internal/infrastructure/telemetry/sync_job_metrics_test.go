package telemetry_test

import (
	"context"
	"testing"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/shared/valueobject"
	"github.com/ccasync/backend/internal/domain/syncjob"
	"github.com/ccasync/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const metricsTenant = "clean-power-sf"

type metricsFixture struct {
	reader  *sdkmetric.ManualReader
	metrics *telemetry.SyncJobMetrics
}

func newMetricsFixture(t *testing.T) *metricsFixture {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := telemetry.NewSyncJobMetrics(provider.Meter("test"))
	require.NoError(t, err)
	return &metricsFixture{reader: reader, metrics: m}
}

func (f *metricsFixture) handle(t *testing.T, events ...shared.DomainEvent) {
	t.Helper()
	for _, e := range events {
		require.NoError(t, f.metrics.Handle(context.Background(), e))
	}
}

// sum returns the counter value for the data point carrying exactly attrs
func (f *metricsFixture) sum(t *testing.T, name string, attrs ...attribute.KeyValue) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, f.reader.Collect(context.Background(), &rm))

	want := attribute.NewSet(attrs...)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			data, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range data.DataPoints {
				if dp.Attributes.Equals(&want) {
					return dp.Value
				}
			}
		}
	}
	return 0
}

func runningJob(t *testing.T, jobType syncjob.SyncJobType, total int) *syncjob.SyncJob {
	t.Helper()
	job := syncjob.Create(valueobject.MustNewTenantID(metricsTenant), jobType, nil, nil).Value()
	require.True(t, job.Start(total).IsSuccess())
	return job
}

func statistics(t *testing.T, total, processed, successful, failed, skipped int) syncjob.SyncJobStatistics {
	t.Helper()
	stats, err := syncjob.NewSyncJobStatistics(total, processed, successful, failed, skipped).Unwrap()
	require.NoError(t, err)
	return stats
}

func TestNewSyncJobMetrics_NilMeter(t *testing.T) {
	m, err := telemetry.NewSyncJobMetrics(nil)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, telemetry.ErrMeterNil)
	assert.Equal(t, "NewSyncJobMetrics: meter cannot be nil", err.Error())
}

func TestNewSyncJobMetrics_NoopMeter(t *testing.T) {
	m, err := telemetry.NewSyncJobMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	job := runningJob(t, syncjob.SyncJobTypeFullSync, 10)
	for _, e := range job.DomainEvents() {
		assert.NoError(t, m.Handle(context.Background(), e))
	}
}

func TestSyncJobMetrics_CreatedAndStarted(t *testing.T) {
	f := newMetricsFixture(t)

	full := runningJob(t, syncjob.SyncJobTypeFullSync, 100)
	incremental := runningJob(t, syncjob.SyncJobTypeIncrementalSync, 5)
	f.handle(t, full.DomainEvents()...)
	f.handle(t, incremental.DomainEvents()...)

	tenant := telemetry.AttrTenantID.String(metricsTenant)
	assert.Equal(t, int64(1), f.sum(t, telemetry.MetricSyncJobsCreated, tenant, telemetry.AttrJobType.String("full_sync")))
	assert.Equal(t, int64(1), f.sum(t, telemetry.MetricSyncJobsStarted, tenant, telemetry.AttrJobType.String("incremental_sync")))
	assert.Equal(t, int64(1), f.sum(t, telemetry.MetricSyncJobsStarted, tenant, telemetry.AttrJobType.String("full_sync")))
}

func TestSyncJobMetrics_Finished(t *testing.T) {
	f := newMetricsFixture(t)
	tenant := telemetry.AttrTenantID.String(metricsTenant)

	completed := runningJob(t, syncjob.SyncJobTypeCustomerSync, 10)
	completed.ClearDomainEvents()
	require.True(t, completed.Complete(statistics(t, 10, 10, 9, 0, 1)).IsSuccess())
	f.handle(t, completed.DomainEvents()...)

	partial := runningJob(t, syncjob.SyncJobTypeCustomerSync, 10)
	partial.ClearDomainEvents()
	require.True(t, partial.RecordError("CRM_TIMEOUT", "request timed out", nil).IsSuccess())
	require.True(t, partial.RecordError("CRM_TIMEOUT", "request timed out", nil).IsSuccess())
	require.True(t, partial.CompletePartially(statistics(t, 10, 10, 6, 4, 0)).IsSuccess())
	f.handle(t, partial.DomainEvents()...)

	failed := runningJob(t, syncjob.SyncJobTypeAccountSync, 3)
	failed.ClearDomainEvents()
	require.True(t, failed.RecordError("AUTH", "token rejected", nil).IsSuccess())
	require.True(t, failed.Fail("crm credentials revoked").IsSuccess())
	f.handle(t, failed.DomainEvents()...)

	cancelled := syncjob.Create(valueobject.MustNewTenantID(metricsTenant), syncjob.SyncJobTypeFullSync, nil, nil).Value()
	cancelled.ClearDomainEvents()
	require.True(t, cancelled.Cancel("superseded").IsSuccess())
	f.handle(t, cancelled.DomainEvents()...)

	status := func(s string) attribute.KeyValue { return telemetry.AttrJobStatus.String(s) }
	outcome := func(s string) attribute.KeyValue { return telemetry.AttrRecordOutcome.String(s) }

	assert.Equal(t, int64(1), f.sum(t, telemetry.MetricSyncJobsFinished, tenant, status("completed")))
	assert.Equal(t, int64(1), f.sum(t, telemetry.MetricSyncJobsFinished, tenant, status("partially_completed")))
	assert.Equal(t, int64(1), f.sum(t, telemetry.MetricSyncJobsFinished, tenant, status("failed")))
	assert.Equal(t, int64(1), f.sum(t, telemetry.MetricSyncJobsFinished, tenant, status("cancelled")))

	assert.Equal(t, int64(15), f.sum(t, telemetry.MetricSyncRecords, tenant, outcome(telemetry.RecordOutcomeSuccessful)))
	assert.Equal(t, int64(4), f.sum(t, telemetry.MetricSyncRecords, tenant, outcome(telemetry.RecordOutcomeFailed)))
	assert.Equal(t, int64(1), f.sum(t, telemetry.MetricSyncRecords, tenant, outcome(telemetry.RecordOutcomeSkipped)))

	assert.Equal(t, int64(3), f.sum(t, telemetry.MetricSyncErrors, tenant))
}

func TestSyncJobMetrics_EventTypes(t *testing.T) {
	f := newMetricsFixture(t)
	assert.ElementsMatch(t, []string{
		syncjob.EventTypeSyncJobCreated,
		syncjob.EventTypeSyncJobStarted,
		syncjob.EventTypeSyncJobCompleted,
		syncjob.EventTypeSyncJobFailed,
		syncjob.EventTypeSyncJobCancelled,
	}, f.metrics.EventTypes())
}
