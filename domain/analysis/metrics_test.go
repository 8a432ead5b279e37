package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screentime/domain/dataset"
)

func classified(records []dataset.Record) []dataset.Record {
	dataset.Classify(records)
	return records
}

// TestSummarizeThreeRowScenario covers the reference scenario: screen
// times [1, 5, 9] with health issues [No, Yes, Yes].
func TestSummarizeThreeRowScenario(t *testing.T) {
	records := classified([]dataset.Record{
		{DailyScreenTime: 1, ReportedHealthIssues: dataset.HealthIssuesNo},
		{DailyScreenTime: 5, ReportedHealthIssues: dataset.HealthIssuesYes},
		{DailyScreenTime: 9, ReportedHealthIssues: dataset.HealthIssuesYes},
	})

	summary := Summarize(records)

	require.True(t, summary.HasData)
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 5.0, summary.MeanScreenTime, 1e-9)
	assert.InDelta(t, 66.7, summary.HealthIssuesPct, 0.05)
	// Rows with 5 and 9 hours are High and Very High Risk.
	assert.InDelta(t, 66.7, summary.ElevatedRiskPct, 0.05)
}

// TestSummarizeEmptyView tests the defined no-data state: no NaN, no
// panic, zero metrics.
func TestSummarizeEmptyView(t *testing.T) {
	summary := Summarize(nil)

	assert.False(t, summary.HasData)
	assert.Equal(t, 0, summary.Count)
	assert.False(t, math.IsNaN(summary.MeanScreenTime))
	assert.Zero(t, summary.MeanScreenTime)
	assert.Zero(t, summary.HealthIssuesPct)
	assert.Zero(t, summary.ElevatedRiskPct)
}

func TestMeanScreenTimeByAge(t *testing.T) {
	records := []dataset.Record{
		{Age: 12, DailyScreenTime: 4},
		{Age: 10, DailyScreenTime: 2},
		{Age: 12, DailyScreenTime: 6},
		{Age: 10, DailyScreenTime: 3},
	}

	byAge := MeanScreenTimeByAge(records)

	require.Len(t, byAge, 2)
	assert.Equal(t, 10, byAge[0].Age)
	assert.InDelta(t, 2.5, byAge[0].Mean, 1e-9)
	assert.Equal(t, 2, byAge[0].Count)
	assert.Equal(t, 12, byAge[1].Age)
	assert.InDelta(t, 5.0, byAge[1].Mean, 1e-9)
}

func TestMeanScreenTimeByDevice(t *testing.T) {
	records := []dataset.Record{
		{DeviceType: "Tablet", DailyScreenTime: 2},
		{DeviceType: "Smartphone", DailyScreenTime: 5},
		{DeviceType: "Smartphone", DailyScreenTime: 3},
	}

	byDevice := MeanScreenTimeByDevice(records)

	require.Len(t, byDevice, 2)
	assert.Equal(t, "Smartphone", byDevice[0].Group)
	assert.InDelta(t, 4.0, byDevice[0].Mean, 1e-9)
	assert.Equal(t, "Tablet", byDevice[1].Group)
	assert.InDelta(t, 2.0, byDevice[1].Mean, 1e-9)
}

func TestMeanScreenTimeByAcademicPerformance(t *testing.T) {
	records := []dataset.Record{
		{AcademicPerformance: "Average", DailyScreenTime: 4},
		{AcademicPerformance: "Excellent", DailyScreenTime: 1},
		{AcademicPerformance: "Average", DailyScreenTime: 6},
	}

	byPerf := MeanScreenTimeByAcademicPerformance(records)

	require.Len(t, byPerf, 2)
	assert.Equal(t, "Average", byPerf[0].Group)
	assert.InDelta(t, 5.0, byPerf[0].Mean, 1e-9)
	assert.Equal(t, "Excellent", byPerf[1].Group)
}

func TestPurposeDistribution(t *testing.T) {
	records := []dataset.Record{
		{Purpose: "Gaming"},
		{Purpose: "Education"},
		{Purpose: "Gaming"},
		{Purpose: "Social Media"},
		{Purpose: "Gaming"},
		{Purpose: "Education"},
	}

	dist := PurposeDistribution(records)

	require.Len(t, dist, 3)
	assert.Equal(t, CategoryCount{Value: "Gaming", Count: 3}, dist[0])
	assert.Equal(t, CategoryCount{Value: "Education", Count: 2}, dist[1])
	assert.Equal(t, CategoryCount{Value: "Social Media", Count: 1}, dist[2])
}

func TestRiskDistributionSeverityOrder(t *testing.T) {
	records := classified([]dataset.Record{
		{DailyScreenTime: 1},
		{DailyScreenTime: 7},
		{DailyScreenTime: 8},
	})

	dist := RiskDistribution(records)

	// All four categories present, severity order, zero counts included.
	require.Len(t, dist, 4)
	assert.Equal(t, CategoryCount{Value: "Low Risk", Count: 1}, dist[0])
	assert.Equal(t, CategoryCount{Value: "Moderate Risk", Count: 0}, dist[1])
	assert.Equal(t, CategoryCount{Value: "High Risk", Count: 0}, dist[2])
	assert.Equal(t, CategoryCount{Value: "Very High Risk", Count: 2}, dist[3])
}

func TestHealthIssueBreakdown(t *testing.T) {
	records := []dataset.Record{
		{Age: 10, DailyScreenTime: 6, SleepHours: 6, DeviceType: "Smartphone", ReportedHealthIssues: dataset.HealthIssuesYes},
		{Age: 10, DailyScreenTime: 8, SleepHours: 5, DeviceType: "Smartphone", ReportedHealthIssues: dataset.HealthIssuesYes},
		{Age: 14, DailyScreenTime: 2, SleepHours: 9, DeviceType: "Tablet", ReportedHealthIssues: dataset.HealthIssuesNo},
	}

	subgroup := HealthIssueBreakdown(records)

	require.True(t, subgroup.HasData)
	assert.Equal(t, 2, subgroup.Count)
	assert.InDelta(t, 7.0, subgroup.MeanScreenTime, 1e-9)
	assert.InDelta(t, 5.5, subgroup.MeanSleepHours, 1e-9)
	require.Len(t, subgroup.AgeDistribution, 1)
	assert.Equal(t, 10, subgroup.AgeDistribution[0].Age)
	assert.Equal(t, 2, subgroup.AgeDistribution[0].Count)
	require.Len(t, subgroup.DeviceDistribution, 1)
	assert.Equal(t, "Smartphone", subgroup.DeviceDistribution[0].Value)
}

func TestHealthIssueBreakdownEmpty(t *testing.T) {
	records := []dataset.Record{
		{ReportedHealthIssues: dataset.HealthIssuesNo},
	}

	subgroup := HealthIssueBreakdown(records)
	assert.False(t, subgroup.HasData)
	assert.Zero(t, subgroup.Count)
}
