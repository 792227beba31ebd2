package syncjob

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSyncJobStatistics(t *testing.T) {
	tests := []struct {
		name                                         string
		total, processed, successful, failed, skipped int
		wantCode                                     string
	}{
		{name: "all zero", total: 0, processed: 0},
		{name: "nothing processed", total: 100, processed: 0},
		{name: "partly processed", total: 100, processed: 50, successful: 45, failed: 3, skipped: 2},
		{name: "outcomes below processed", total: 100, processed: 50, successful: 10},
		{name: "fully processed", total: 100, processed: 100, successful: 95, failed: 5},
		{name: "negative total", total: -1, wantCode: CodeStatsNegativeTotal},
		{name: "negative processed", total: 10, processed: -1, wantCode: CodeStatsNegativeProcessed},
		{name: "negative successful", total: 10, processed: 5, successful: -1, wantCode: CodeStatsNegativeSuccessful},
		{name: "negative failed", total: 10, processed: 5, failed: -1, wantCode: CodeStatsNegativeFailed},
		{name: "negative skipped", total: 10, processed: 5, skipped: -1, wantCode: CodeStatsNegativeSkipped},
		{name: "processed exceeds total", total: 10, processed: 11, wantCode: CodeStatsProcessedExceeds},
		{name: "outcomes exceed processed", total: 10, processed: 5, successful: 3, failed: 2, skipped: 1,
			wantCode: CodeStatsOutcomesExceed},
		{name: "negativity checked before ordering", total: -5, processed: 10, wantCode: CodeStatsNegativeTotal},
		{name: "processed checked before outcomes", total: 5, processed: 6, successful: 7,
			wantCode: CodeStatsProcessedExceeds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewSyncJobStatistics(tt.total, tt.processed, tt.successful, tt.failed, tt.skipped)
			if tt.wantCode != "" {
				require.True(t, result.IsFailure())
				assert.Equal(t, tt.wantCode, result.Error().Code)
				return
			}
			require.True(t, result.IsSuccess())
			stats := result.Value()
			assert.Equal(t, tt.total, stats.TotalRecords())
			assert.Equal(t, tt.processed, stats.ProcessedRecords())
			assert.Equal(t, tt.successful, stats.SuccessfulRecords())
			assert.Equal(t, tt.failed, stats.FailedRecords())
			assert.Equal(t, tt.skipped, stats.SkippedRecords())
		})
	}
}

func TestNewSyncJobStatistics_AcceptsEveryConsistentCombination(t *testing.T) {
	const limit = 6
	for total := 0; total <= limit; total++ {
		for processed := 0; processed <= total; processed++ {
			for successful := 0; successful <= processed; successful++ {
				for failed := 0; successful+failed <= processed; failed++ {
					for skipped := 0; successful+failed+skipped <= processed; skipped++ {
						result := NewSyncJobStatistics(total, processed, successful, failed, skipped)
						require.True(t, result.IsSuccess(), "(%d,%d,%d,%d,%d)", total, processed, successful, failed, skipped)

						want := decimal.Zero
						if total > 0 {
							want = decimal.NewFromFloat(float64(processed) / float64(total) * 100).Round(2)
						}
						assert.True(t, want.Equal(result.Value().ProgressPercentage()),
							"percentage for %d/%d: want %s got %s", processed, total, want, result.Value().ProgressPercentage())
					}
				}
			}
		}
	}
}

func TestNewSyncJobStatistics_RejectsEveryInconsistentCombination(t *testing.T) {
	const limit = 4
	for total := 0; total <= limit; total++ {
		for processed := 0; processed <= limit+1; processed++ {
			for outcomes := 0; outcomes <= limit+2; outcomes++ {
				result := NewSyncJobStatistics(total, processed, outcomes, 0, 0)
				switch {
				case processed > total:
					require.True(t, result.IsFailure())
					assert.Equal(t, CodeStatsProcessedExceeds, result.Error().Code)
				case outcomes > processed:
					require.True(t, result.IsFailure())
					assert.Equal(t, CodeStatsOutcomesExceed, result.Error().Code)
				default:
					assert.True(t, result.IsSuccess())
				}
			}
		}
	}
}

func TestSyncJobStatistics_ProgressPercentage(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		processed int
		want      string
	}{
		{"empty", 0, 0, "0"},
		{"none processed", 100, 0, "0"},
		{"half", 100, 50, "50"},
		{"complete", 100, 100, "100"},
		{"one third", 3, 1, "33.33"},
		{"two thirds", 3, 2, "66.67"},
		{"one eighth", 8, 1, "12.5"},
		{"large totals", 1_000_000, 999_999, "100"},
		{"rounds half away from zero", 4000, 1, "0.03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := NewSyncJobStatistics(tt.total, tt.processed, 0, 0, 0).Value()
			assert.Equal(t, tt.want, stats.ProgressPercentage().String())
		})
	}
}

// Exact ties at the second decimal round away from zero, never to even.
func TestSyncJobStatistics_ProgressPercentage_Ties(t *testing.T) {
	tests := []struct {
		total     int
		processed int
		exact     string
		want      string
		toEven    string
	}{
		{4000, 1, "0.025", "0.03", "0.02"},
		{800, 1, "0.125", "0.13", "0.12"},
		{800, 5, "0.625", "0.63", "0.62"},
		{800, 17, "2.125", "2.13", "2.12"},
		{8000, 1, "0.0125", "0.01", "0.01"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.processed, tt.total), func(t *testing.T) {
			exact := decimal.NewFromInt(int64(tt.processed)).Mul(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(int64(tt.total)))
			require.Equal(t, tt.exact, exact.String())
			require.Equal(t, tt.toEven, exact.RoundBank(2).String())

			stats := NewSyncJobStatistics(tt.total, tt.processed, 0, 0, 0).Value()
			assert.Equal(t, tt.want, stats.ProgressPercentage().String())
		})
	}
}

func TestSyncJobStatistics_Derived(t *testing.T) {
	stats := NewSyncJobStatistics(100, 60, 50, 7, 3).Value()

	assert.Equal(t, 40, stats.RemainingRecords())
	assert.True(t, stats.HasFailures())
	assert.False(t, stats.IsFullyProcessed())
	assert.Equal(t, "60/100 processed (60.00%): 50 ok, 7 failed, 3 skipped", stats.String())

	done := NewSyncJobStatistics(10, 10, 10, 0, 0).Value()
	assert.False(t, done.HasFailures())
	assert.True(t, done.IsFullyProcessed())
}

func TestSyncJobStatistics_Constructors(t *testing.T) {
	empty := EmptySyncJobStatistics()
	assert.Equal(t, 0, empty.TotalRecords())
	assert.True(t, empty.ProgressPercentage().IsZero())

	initial := InitialSyncJobStatistics(250)
	require.True(t, initial.IsSuccess())
	assert.True(t, initial.Value().Equals(NewSyncJobStatistics(250, 0, 0, 0, 0).Value()))

	assert.Equal(t, CodeStatsNegativeTotal, InitialSyncJobStatistics(-1).Error().Code)
}

func TestSyncJobStatistics_Equality(t *testing.T) {
	a := NewSyncJobStatistics(10, 5, 3, 1, 1).Value()
	b := NewSyncJobStatistics(10, 5, 3, 1, 1).Value()
	c := NewSyncJobStatistics(10, 5, 3, 2, 0).Value()

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
