package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"screentime/domain/dataset"
)

// Summary holds the headline metrics for a filtered view. When the view
// is empty HasData is false and every numeric field is zero; callers
// render a "no data" state instead of the numbers.
type Summary struct {
	Count               int     `json:"count"`
	MeanScreenTime      float64 `json:"mean_screen_time"`
	HealthIssuesPct     float64 `json:"health_issues_pct"`
	MeanSleepHours      float64 `json:"mean_sleep_hours"`
	MeanOutdoorActivity float64 `json:"mean_outdoor_activity"`
	ElevatedRiskPct     float64 `json:"elevated_risk_pct"`
	HasData             bool    `json:"has_data"`
}

// AgeMean is the mean screen time for a single observed age.
type AgeMean struct {
	Age   int     `json:"age"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// GroupMean is the mean screen time for a categorical group.
type GroupMean struct {
	Group string  `json:"group"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// CategoryCount is one bucket of a value-frequency distribution.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// HealthSubgroup describes the rows with reported health issues.
type HealthSubgroup struct {
	Count              int             `json:"count"`
	MeanScreenTime     float64         `json:"mean_screen_time"`
	MeanSleepHours     float64         `json:"mean_sleep_hours"`
	AgeDistribution    []AgeMean       `json:"age_distribution"`
	DeviceDistribution []CategoryCount `json:"device_distribution"`
	HasData            bool            `json:"has_data"`
}

// Summarize computes the headline metrics over a filtered view.
func Summarize(records []dataset.Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	screen := make([]float64, len(records))
	sleep := make([]float64, len(records))
	outdoor := make([]float64, len(records))
	healthYes := 0
	elevated := 0

	for i, r := range records {
		screen[i] = r.DailyScreenTime
		sleep[i] = r.SleepHours
		outdoor[i] = r.OutdoorActivity
		if r.HasHealthIssues() {
			healthYes++
		}
		if r.RiskCategory.IsElevated() {
			elevated++
		}
	}

	meanScreen, _ := stats.Mean(screen)
	meanSleep, _ := stats.Mean(sleep)
	meanOutdoor, _ := stats.Mean(outdoor)
	n := float64(len(records))

	return Summary{
		Count:               len(records),
		MeanScreenTime:      meanScreen,
		HealthIssuesPct:     float64(healthYes) / n * 100,
		MeanSleepHours:      meanSleep,
		MeanOutdoorActivity: meanOutdoor,
		ElevatedRiskPct:     float64(elevated) / n * 100,
		HasData:             true,
	}
}

// MeanScreenTimeByAge groups mean screen time by observed age, ascending.
func MeanScreenTimeByAge(records []dataset.Record) []AgeMean {
	groups := make(map[int][]float64)
	for _, r := range records {
		groups[r.Age] = append(groups[r.Age], r.DailyScreenTime)
	}

	ages := make([]int, 0, len(groups))
	for age := range groups {
		ages = append(ages, age)
	}
	sort.Ints(ages)

	result := make([]AgeMean, 0, len(ages))
	for _, age := range ages {
		mean, _ := stats.Mean(groups[age])
		result = append(result, AgeMean{Age: age, Mean: mean, Count: len(groups[age])})
	}
	return result
}

// MeanScreenTimeByDevice groups mean screen time by device type.
func MeanScreenTimeByDevice(records []dataset.Record) []GroupMean {
	return groupedMean(records, func(r dataset.Record) string { return r.DeviceType })
}

// MeanScreenTimeByAcademicPerformance groups mean screen time by academic
// performance band.
func MeanScreenTimeByAcademicPerformance(records []dataset.Record) []GroupMean {
	return groupedMean(records, func(r dataset.Record) string { return r.AcademicPerformance })
}

// PurposeDistribution counts records per usage purpose, most frequent
// first, ties broken by name for stable output.
func PurposeDistribution(records []dataset.Record) []CategoryCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Purpose]++
	}

	result := make([]CategoryCount, 0, len(counts))
	for value, count := range counts {
		result = append(result, CategoryCount{Value: value, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})
	return result
}

// RiskDistribution counts records per risk category, in severity order.
// All four categories are always present so chart axes stay stable.
func RiskDistribution(records []dataset.Record) []CategoryCount {
	counts := make(map[dataset.RiskCategory]int)
	for _, r := range records {
		counts[r.RiskCategory]++
	}

	result := make([]CategoryCount, 0, len(dataset.RiskCategories))
	for _, c := range dataset.RiskCategories {
		result = append(result, CategoryCount{Value: string(c), Count: counts[c]})
	}
	return result
}

// HealthIssueBreakdown summarizes the subgroup that reported health
// issues. An empty subgroup yields HasData == false.
func HealthIssueBreakdown(records []dataset.Record) HealthSubgroup {
	subgroup := make([]dataset.Record, 0)
	for _, r := range records {
		if r.HasHealthIssues() {
			subgroup = append(subgroup, r)
		}
	}
	if len(subgroup) == 0 {
		return HealthSubgroup{}
	}

	screen := make([]float64, len(subgroup))
	sleep := make([]float64, len(subgroup))
	deviceCounts := make(map[string]int)
	for i, r := range subgroup {
		screen[i] = r.DailyScreenTime
		sleep[i] = r.SleepHours
		deviceCounts[r.DeviceType]++
	}

	meanScreen, _ := stats.Mean(screen)
	meanSleep, _ := stats.Mean(sleep)

	ageDist := make([]AgeMean, 0)
	ageCounts := make(map[int]int)
	for _, r := range subgroup {
		ageCounts[r.Age]++
	}
	ages := make([]int, 0, len(ageCounts))
	for age := range ageCounts {
		ages = append(ages, age)
	}
	sort.Ints(ages)
	for _, age := range ages {
		ageDist = append(ageDist, AgeMean{Age: age, Count: ageCounts[age]})
	}

	devices := make([]CategoryCount, 0, len(deviceCounts))
	for device, count := range deviceCounts {
		devices = append(devices, CategoryCount{Value: device, Count: count})
	}
	sort.Slice(devices, func(i, j int) bool {
		if devices[i].Count != devices[j].Count {
			return devices[i].Count > devices[j].Count
		}
		return devices[i].Value < devices[j].Value
	})

	return HealthSubgroup{
		Count:              len(subgroup),
		MeanScreenTime:     meanScreen,
		MeanSleepHours:     meanSleep,
		AgeDistribution:    ageDist,
		DeviceDistribution: devices,
		HasData:            true,
	}
}

func groupedMean(records []dataset.Record, key func(dataset.Record) string) []GroupMean {
	groups := make(map[string][]float64)
	for _, r := range records {
		groups[key(r)] = append(groups[key(r)], r.DailyScreenTime)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]GroupMean, 0, len(names))
	for _, name := range names {
		mean, _ := stats.Mean(groups[name])
		result = append(result, GroupMean{Group: name, Mean: mean, Count: len(groups[name])})
	}
	return result
}
