package syncjob

// SyncJobStatus represents the lifecycle state of a sync job
type SyncJobStatus string

const (
	SyncJobStatusPending            SyncJobStatus = "pending"
	SyncJobStatusRunning            SyncJobStatus = "running"
	SyncJobStatusCompleted          SyncJobStatus = "completed"
	SyncJobStatusFailed             SyncJobStatus = "failed"
	SyncJobStatusCancelled          SyncJobStatus = "cancelled"
	SyncJobStatusPartiallyCompleted SyncJobStatus = "partially_completed"
)

// IsValid checks if the status is valid
func (s SyncJobStatus) IsValid() bool {
	switch s {
	case SyncJobStatusPending, SyncJobStatusRunning, SyncJobStatusCompleted,
		SyncJobStatusFailed, SyncJobStatusCancelled, SyncJobStatusPartiallyCompleted:
		return true
	}
	return false
}

// IsTerminal returns true if no further transitions are permitted from this status
func (s SyncJobStatus) IsTerminal() bool {
	switch s {
	case SyncJobStatusCompleted, SyncJobStatusFailed, SyncJobStatusCancelled, SyncJobStatusPartiallyCompleted:
		return true
	}
	return false
}

// String returns the string representation
func (s SyncJobStatus) String() string {
	return string(s)
}

// SyncJobType identifies what a sync job synchronizes
type SyncJobType string

const (
	SyncJobTypeFullSync        SyncJobType = "full_sync"
	SyncJobTypeIncrementalSync SyncJobType = "incremental_sync"
	SyncJobTypeAccountSync     SyncJobType = "account_sync"
	SyncJobTypeCustomerSync    SyncJobType = "customer_sync"
	SyncJobTypeLdcAccountSync  SyncJobType = "ldc_account_sync"
)

// IsValid checks if the job type is valid
func (t SyncJobType) IsValid() bool {
	switch t {
	case SyncJobTypeFullSync, SyncJobTypeIncrementalSync, SyncJobTypeAccountSync,
		SyncJobTypeCustomerSync, SyncJobTypeLdcAccountSync:
		return true
	}
	return false
}

// String returns the string representation
func (t SyncJobType) String() string {
	return string(t)
}
