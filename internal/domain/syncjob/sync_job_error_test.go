package syncjob

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewSyncJobError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		recordID   *string
		wantCode   string
		wantRecord string
		hasRecord  bool
	}{
		{name: "with record", code: "CONN_TIMEOUT", message: "timeout", recordID: strPtr("REC-1"),
			wantRecord: "REC-1", hasRecord: true},
		{name: "without record", code: "CONN_TIMEOUT", message: "timeout"},
		{name: "blank record stored as absent", code: "CONN_TIMEOUT", message: "timeout", recordID: strPtr("   ")},
		{name: "record trimmed", code: "E1", message: "m", recordID: strPtr("  REC-2 "), wantRecord: "REC-2", hasRecord: true},
		{name: "code at limit", code: strings.Repeat("C", MaxErrorCodeLength), message: "m"},
		{name: "message at limit", code: "E1", message: strings.Repeat("m", MaxErrorMessageLength)},
		{name: "empty code", code: "  ", message: "m", wantCode: CodeErrorEmptyCode},
		{name: "code too long", code: strings.Repeat("C", MaxErrorCodeLength+1), message: "m", wantCode: CodeErrorCodeTooLong},
		{name: "empty message", code: "E1", message: "", wantCode: CodeErrorEmptyMessage},
		{name: "message too long", code: "E1", message: strings.Repeat("m", MaxErrorMessageLength+1),
			wantCode: CodeErrorMessageTooLong},
		{name: "record too long", code: "E1", message: "m", recordID: strPtr(strings.Repeat("r", MaxRecordIdentifierLength+1)),
			wantCode: CodeErrorRecordIDTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewSyncJobError(tt.code, tt.message, tt.recordID)
			if tt.wantCode != "" {
				require.True(t, result.IsFailure())
				assert.Equal(t, tt.wantCode, result.Error().Code)
				return
			}
			require.True(t, result.IsSuccess())
			syncErr := result.Value()
			assert.NotEqual(t, uuid.Nil, syncErr.GetID())
			assert.Equal(t, strings.TrimSpace(tt.code), syncErr.ErrorCode())
			assert.Equal(t, strings.TrimSpace(tt.message), syncErr.ErrorMessage())
			record, ok := syncErr.RecordIdentifier()
			assert.Equal(t, tt.hasRecord, ok)
			assert.Equal(t, tt.wantRecord, record)
			assert.WithinDuration(t, time.Now(), syncErr.OccurredAt(), time.Second)
		})
	}
}

func TestSyncJobError_Identity(t *testing.T) {
	a := NewSyncJobError("E1", "same", nil).Value()
	b := NewSyncJobError("E1", "same", nil).Value()

	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b))
	assert.Equal(t, a.OccurredAt(), a.GetCreatedAt())
	assert.Equal(t, a.OccurredAt(), a.GetUpdatedAt())
}
