package syncjob

import (
	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/ccasync/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// SyncJobRepository defines the persistence contract for sync jobs
type SyncJobRepository interface {
	shared.Repository[*SyncJob]
}

// ByTenant selects jobs owned by the tenant
func ByTenant(tenantID valueobject.TenantID) shared.Specification[*SyncJob] {
	return shared.SpecificationFunc[*SyncJob](func(j *SyncJob) bool {
		return j.tenantID.Equals(tenantID)
	})
}

// ByStatus selects jobs in any of the given statuses
func ByStatus(statuses ...SyncJobStatus) shared.Specification[*SyncJob] {
	return shared.SpecificationFunc[*SyncJob](func(j *SyncJob) bool {
		for _, s := range statuses {
			if j.status == s {
				return true
			}
		}
		return false
	})
}

// ByLdcAccount selects jobs scoped to the LDC account
func ByLdcAccount(ldcAccountID uuid.UUID) shared.Specification[*SyncJob] {
	return shared.SpecificationFunc[*SyncJob](func(j *SyncJob) bool {
		return j.ldcAccountID != nil && *j.ldcAccountID == ldcAccountID
	})
}

// ByCorrelation selects jobs created with the correlation id
func ByCorrelation(correlationID uuid.UUID) shared.Specification[*SyncJob] {
	return shared.SpecificationFunc[*SyncJob](func(j *SyncJob) bool {
		return j.correlationID != nil && *j.correlationID == correlationID
	})
}

// Active selects jobs that have not reached a terminal state
func Active() shared.Specification[*SyncJob] {
	return ByStatus(SyncJobStatusPending, SyncJobStatusRunning)
}
