package analysis

import (
	"fmt"

	"screentime/domain/dataset"
)

// Recommendation trigger thresholds. These are domain parameters, kept as
// named constants so they can be tuned and tested independently.
const (
	ExcessiveScreenHours    = 6.0
	MinSleepHours           = 7.0
	MinOutdoorHours         = 1.0
	HealthIssuePctThreshold = 5.0
)

// Recommendations derives advisory messages from a filtered view. Each
// rule triggers independently; an empty view produces no messages.
func Recommendations(records []dataset.Record) []string {
	excessiveScreen := 0
	lowSleep := 0
	lowOutdoor := 0
	healthYes := 0

	for _, r := range records {
		if r.DailyScreenTime > ExcessiveScreenHours {
			excessiveScreen++
		}
		if r.SleepHours < MinSleepHours {
			lowSleep++
		}
		if r.OutdoorActivity < MinOutdoorHours {
			lowOutdoor++
		}
		if r.HasHealthIssues() {
			healthYes++
		}
	}

	var recommendations []string

	if excessiveScreen > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"%d children have excessive screen time (>%.0f hours/day). Consider implementing screen time limits.",
			excessiveScreen, ExcessiveScreenHours))
	}
	if lowSleep > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"%d children are getting insufficient sleep (<%.0f hours). Promote better sleep hygiene.",
			lowSleep, MinSleepHours))
	}
	if lowOutdoor > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"%d children have minimal outdoor activity (<%.0f hour). Encourage more physical activities.",
			lowOutdoor, MinOutdoorHours))
	}

	if len(records) > 0 {
		healthPct := float64(healthYes) / float64(len(records)) * 100
		if healthPct > HealthIssuePctThreshold {
			recommendations = append(recommendations, fmt.Sprintf(
				"%.1f%% of children report health issues. Consider wellness programs.", healthPct))
		}
	}

	return recommendations
}
