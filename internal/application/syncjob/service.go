package syncjob

import (
	"context"
	"fmt"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/shared/valueobject"
	"github.com/ccasync/backend/internal/domain/syncjob"
	"github.com/ccasync/backend/internal/infrastructure/logger"
	"github.com/ccasync/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service drives sync jobs through their lifecycle. Each mutating call runs in its own
// transaction: load, mutate, save, dispatch the raised events, then commit. Any failure
// along the way rolls the transaction back, so a failed dispatch leaves the job unchanged
// and the events are raised again on retry.
type Service struct {
	sessions   SessionFactory
	dispatcher shared.DomainEventDispatcher
	logger     *zap.Logger
}

// NewService creates a new Service
func NewService(sessions SessionFactory, dispatcher shared.DomainEventDispatcher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		sessions:   sessions,
		dispatcher: dispatcher,
		logger:     log.Named("syncjob"),
	}
}

// CreateJob creates a pending sync job
func (s *Service) CreateJob(ctx context.Context, req CreateJobRequest) (*SyncJobResponse, error) {
	ctx, span := telemetry.StartSyncJobSpan(ctx, "create", req.TenantID, uuid.Nil)
	defer span.End()
	telemetry.SetAttributes(span, telemetry.SpanAttrJobType, req.JobType)

	tenantID, err := valueobject.NewTenantID(req.TenantID).Unwrap()
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	ctx, log := logger.WithTenantID(ctx, s.logger, tenantID.Value())
	if req.CorrelationID != nil {
		ctx, log = logger.WithCorrelationID(ctx, log, req.CorrelationID.String())
	}

	created := syncjob.Create(tenantID, syncjob.SyncJobType(req.JobType), req.LdcAccountID, req.CorrelationID)
	job, err := created.Unwrap()
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrJobID, job.ID)

	err = s.inTransaction(ctx, func(session Session) (*syncjob.SyncJob, error) {
		if err := session.Jobs().Add(ctx, job); err != nil {
			return nil, err
		}
		return job, nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetOK(span)
	log.Info("sync job created",
		zap.String("job_id", job.ID.String()),
		zap.String("job_type", job.JobType().String()),
	)
	response := ToSyncJobResponse(job)
	return &response, nil
}

// StartJob moves a pending job to running
func (s *Service) StartJob(ctx context.Context, tenantID string, jobID uuid.UUID, totalRecords int) (*SyncJobResponse, error) {
	return s.mutate(ctx, tenantID, jobID, "start", func(job *syncjob.SyncJob) shared.Result {
		return job.Start(totalRecords)
	})
}

// UpdateProgress replaces the statistics of a running job
func (s *Service) UpdateProgress(ctx context.Context, tenantID string, jobID uuid.UUID, input StatisticsInput) (*SyncJobResponse, error) {
	return s.mutate(ctx, tenantID, jobID, "update_progress", func(job *syncjob.SyncJob) shared.Result {
		return shared.BindResult(input.toStatistics(), job.UpdateProgress)
	})
}

// RecordError appends a record-level error to a running job
func (s *Service) RecordError(ctx context.Context, tenantID string, jobID uuid.UUID, req RecordErrorRequest) (*SyncJobResponse, error) {
	return s.mutate(ctx, tenantID, jobID, "record_error", func(job *syncjob.SyncJob) shared.Result {
		return job.RecordError(req.ErrorCode, req.ErrorMessage, req.RecordIdentifier)
	})
}

// CompleteJob completes a running job
func (s *Service) CompleteJob(ctx context.Context, tenantID string, jobID uuid.UUID, input StatisticsInput) (*SyncJobResponse, error) {
	return s.mutate(ctx, tenantID, jobID, "complete", func(job *syncjob.SyncJob) shared.Result {
		return shared.BindResult(input.toStatistics(), job.Complete)
	})
}

// CompleteJobPartially completes a running job that had failed records
func (s *Service) CompleteJobPartially(ctx context.Context, tenantID string, jobID uuid.UUID, input StatisticsInput) (*SyncJobResponse, error) {
	return s.mutate(ctx, tenantID, jobID, "complete_partially", func(job *syncjob.SyncJob) shared.Result {
		return shared.BindResult(input.toStatistics(), job.CompletePartially)
	})
}

// FinishJob completes a running job, partially when any record failed
func (s *Service) FinishJob(ctx context.Context, tenantID string, jobID uuid.UUID, input StatisticsInput) (*SyncJobResponse, error) {
	return s.mutate(ctx, tenantID, jobID, "finish", func(job *syncjob.SyncJob) shared.Result {
		return shared.BindResult(input.toStatistics(), func(stats syncjob.SyncJobStatistics) shared.Result {
			if stats.HasFailures() {
				return job.CompletePartially(stats)
			}
			return job.Complete(stats)
		})
	})
}

// FailJob marks a running job as failed
func (s *Service) FailJob(ctx context.Context, tenantID string, jobID uuid.UUID, reason string) (*SyncJobResponse, error) {
	return s.mutate(ctx, tenantID, jobID, "fail", func(job *syncjob.SyncJob) shared.Result {
		return job.Fail(reason)
	})
}

// CancelJob cancels a pending or running job
func (s *Service) CancelJob(ctx context.Context, tenantID string, jobID uuid.UUID, reason string) (*SyncJobResponse, error) {
	return s.mutate(ctx, tenantID, jobID, "cancel", func(job *syncjob.SyncJob) shared.Result {
		return job.Cancel(reason)
	})
}

// GetJob returns a sync job of the tenant
func (s *Service) GetJob(ctx context.Context, tenantID string, jobID uuid.UUID) (*SyncJobResponse, error) {
	tenant, err := valueobject.NewTenantID(tenantID).Unwrap()
	if err != nil {
		return nil, err
	}
	job, err := loadForTenant(ctx, s.sessions.NewSession().Jobs(), tenant, jobID)
	if err != nil {
		return nil, err
	}
	response := ToSyncJobResponse(job)
	return &response, nil
}

// ListActiveJobs returns the tenant's pending and running jobs, oldest first
func (s *Service) ListActiveJobs(ctx context.Context, tenantID string) ([]SyncJobResponse, error) {
	tenant, err := valueobject.NewTenantID(tenantID).Unwrap()
	if err != nil {
		return nil, err
	}
	jobs, err := s.sessions.NewSession().Jobs().GetBySpecification(ctx,
		shared.And(syncjob.ByTenant(tenant), syncjob.Active()))
	if err != nil {
		return nil, fmt.Errorf("listing active sync jobs: %w", err)
	}
	return ToSyncJobResponses(jobs), nil
}

// mutate loads a job of the tenant, applies op and persists the result in one transaction
func (s *Service) mutate(
	ctx context.Context,
	tenantID string,
	jobID uuid.UUID,
	action string,
	op func(job *syncjob.SyncJob) shared.Result,
) (*SyncJobResponse, error) {
	ctx, span := telemetry.StartSyncJobSpan(ctx, action, tenantID, jobID)
	defer span.End()

	tenant, err := valueobject.NewTenantID(tenantID).Unwrap()
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	ctx, log := logger.WithTenantID(ctx, s.logger, tenant.Value())
	ctx, log = logger.WithJobID(ctx, log, jobID.String())

	var updated *syncjob.SyncJob
	err = s.inTransaction(ctx, func(session Session) (*syncjob.SyncJob, error) {
		job, err := loadForTenant(ctx, session.Jobs(), tenant, jobID)
		if err != nil {
			return nil, err
		}
		if err := op(job).Err(); err != nil {
			return nil, err
		}
		if err := session.Jobs().Update(ctx, job); err != nil {
			return nil, err
		}
		updated = job
		return job, nil
	})
	traceID := zap.String("trace_id", telemetry.GetTraceID(ctx))
	if err != nil {
		telemetry.RecordError(span, err)
		log.Warn("sync job operation rejected", zap.String("action", action), traceID, zap.Error(err))
		return nil, err
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrJobStatus, updated.Status(),
		telemetry.SpanAttrTotalRecords, updated.Statistics().TotalRecords(),
	)
	telemetry.SetOK(span)

	log.Info("sync job updated",
		zap.String("action", action),
		zap.String("status", updated.Status().String()),
		traceID,
	)
	response := ToSyncJobResponse(updated)
	return &response, nil
}

// inTransaction runs fn in a new session's transaction. After fn succeeds the changes are
// saved, the job's events dispatched and cleared, and the transaction committed.
func (s *Service) inTransaction(ctx context.Context, fn func(session Session) (*syncjob.SyncJob, error)) (err error) {
	session := s.sessions.NewSession()
	uow := session.UnitOfWork()
	if err := uow.BeginTransaction(ctx); err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := uow.Rollback(ctx); rbErr != nil {
			s.logger.Error("rollback failed", zap.Error(rbErr))
		}
	}()

	job, err := fn(session)
	if err != nil {
		return err
	}
	if _, err = uow.SaveChanges(ctx); err != nil {
		return fmt.Errorf("saving sync job: %w", err)
	}
	if err = s.dispatcher.DispatchAll(ctx, job.DomainEvents()); err != nil {
		return fmt.Errorf("dispatching sync job events: %w", err)
	}
	job.ClearDomainEvents()

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("committing sync job: %w", err)
	}
	return nil
}

func loadForTenant(ctx context.Context, repo syncjob.SyncJobRepository, tenant valueobject.TenantID, jobID uuid.UUID) (*syncjob.SyncJob, error) {
	job, err := repo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.TenantID().Equals(tenant) {
		return nil, shared.ErrNotFound(syncjob.AggregateTypeSyncJob, jobID)
	}
	return job, nil
}

func (in StatisticsInput) toStatistics() shared.ResultOf[syncjob.SyncJobStatistics] {
	return syncjob.NewSyncJobStatistics(
		in.TotalRecords,
		in.ProcessedRecords,
		in.SuccessfulRecords,
		in.FailedRecords,
		in.SkippedRecords,
	)
}
