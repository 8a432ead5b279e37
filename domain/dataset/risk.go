package dataset

// RiskCategory is the health-risk label derived from daily screen time.
type RiskCategory string

const (
	RiskLow      RiskCategory = "Low Risk"
	RiskModerate RiskCategory = "Moderate Risk"
	RiskHigh     RiskCategory = "High Risk"
	RiskVeryHigh RiskCategory = "Very High Risk"
)

// Risk tier boundaries in hours per day. Each boundary is the inclusive
// lower bound of its tier, so a value sitting exactly on a boundary falls
// into the higher category.
const (
	ModerateRiskHours = 2.0
	HighRiskHours     = 4.0
	VeryHighRiskHours = 6.0
)

// RiskCategories lists all categories in severity order.
var RiskCategories = []RiskCategory{RiskLow, RiskModerate, RiskHigh, RiskVeryHigh}

// ClassifyRisk maps daily screen time to a risk category. It is a pure
// function of its input; callers are expected to have validated that
// hours is non-negative.
func ClassifyRisk(hours float64) RiskCategory {
	switch {
	case hours < ModerateRiskHours:
		return RiskLow
	case hours < HighRiskHours:
		return RiskModerate
	case hours < VeryHighRiskHours:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

// IsElevated reports whether the category counts toward the high-risk
// share shown in the dashboard metrics.
func (c RiskCategory) IsElevated() bool {
	return c == RiskHigh || c == RiskVeryHigh
}

// String returns the display label.
func (c RiskCategory) String() string { return string(c) }

// Classify derives the risk category for every record in place.
// Classification is idempotent: re-running it never changes an already
// classified record.
func Classify(records []Record) {
	for i := range records {
		records[i].RiskCategory = ClassifyRisk(records[i].DailyScreenTime)
	}
}
