package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screentime/domain/dataset"
)

// TestSleepTrendRecoversLinearFit tests that perfectly linear data
// recovers its slope and intercept.
func TestSleepTrendRecoversLinearFit(t *testing.T) {
	// sleep = 10 - 0.5 * screen
	records := []dataset.Record{
		{DailyScreenTime: 0, SleepHours: 10},
		{DailyScreenTime: 2, SleepHours: 9},
		{DailyScreenTime: 4, SleepHours: 8},
		{DailyScreenTime: 8, SleepHours: 6},
	}

	trend := SleepTrend(records)

	require.True(t, trend.HasData)
	assert.InDelta(t, -0.5, trend.Slope, 1e-9)
	assert.InDelta(t, 10.0, trend.Intercept, 1e-9)
}

// TestSleepTrendUndefined tests the degenerate inputs that leave the fit
// undefined.
func TestSleepTrendUndefined(t *testing.T) {
	tests := []struct {
		name    string
		records []dataset.Record
	}{
		{"empty", nil},
		{"single point", []dataset.Record{{DailyScreenTime: 3, SleepHours: 8}}},
		{"zero variance", []dataset.Record{
			{DailyScreenTime: 3, SleepHours: 8},
			{DailyScreenTime: 3, SleepHours: 7},
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			trend := SleepTrend(test.records)
			assert.False(t, trend.HasData)
		})
	}
}
