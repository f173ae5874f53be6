package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindow(t *testing.T) {
	now := time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		period    AnalyticsPeriod
		wantStart time.Time
	}{
		{"weekly", AnalyticsPeriodWeekly, time.Date(2025, 3, 24, 10, 0, 0, 0, time.UTC)},
		{"monthly", AnalyticsPeriodMonthly, now.AddDate(0, -1, 0)},
		{"yearly", AnalyticsPeriodYearly, time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ResolveWindow(tt.period, DateRange{}, now)

			require.NotNil(t, r.Start)
			require.NotNil(t, r.End)
			assert.Equal(t, tt.wantStart, *r.Start)
			assert.Equal(t, now, *r.End)
		})
	}

	t.Run("custom keeps explicit bounds", func(t *testing.T) {
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		r := ResolveWindow(AnalyticsPeriodCustom, DateRange{Start: &start}, now)

		assert.Equal(t, &start, r.Start)
		assert.Nil(t, r.End)
	})

	t.Run("empty token is unbounded without explicit dates", func(t *testing.T) {
		r := ResolveWindow("", DateRange{}, now)

		assert.Nil(t, r.Start)
		assert.Nil(t, r.End)
	})
}

func TestWeeklyWindowExcludesOlderTransactions(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	r := ResolveWindow(AnalyticsPeriodWeekly, DateRange{}, now)

	require.NotNil(t, r.Start)
	assert.True(t, now.AddDate(0, 0, -10).Before(*r.Start))
	assert.False(t, now.AddDate(0, 0, -2).Before(*r.Start))
}

func TestParseRangeBound(t *testing.T) {
	start, err := ParseRangeBound("2025-02-03", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), *start)

	end, err := ParseRangeBound("2025-02-03", true)
	require.NoError(t, err)
	assert.Equal(t, EndOfDay(*start), *end)

	exact, err := ParseRangeBound("2025-02-03T10:00:00Z", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC), *exact, "timestamps are not widened")

	none, err := ParseRangeBound("  ", true)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = ParseRangeBound("03/02/2025", false)
	assert.ErrorIs(t, err, ErrUnparseableDate)
}

func TestAnalyticsPeriod_IsValid(t *testing.T) {
	for _, p := range []AnalyticsPeriod{"", "weekly", "monthly", "yearly", "custom"} {
		assert.True(t, p.IsValid(), string(p))
	}
	assert.False(t, AnalyticsPeriod("daily").IsValid())
}
