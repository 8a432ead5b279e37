package dataset

// Record represents a single surveyed child in the screen-time dataset.
type Record struct {
	Age                  int     `json:"age"`
	Gender               string  `json:"gender"`
	DailyScreenTime      float64 `json:"daily_screen_time"`
	DeviceType           string  `json:"device_type"`
	Purpose              string  `json:"purpose"`
	CityType             string  `json:"city_type"`
	AcademicPerformance  string  `json:"academic_performance"`
	SleepHours           float64 `json:"sleep_hours"`
	OutdoorActivity      float64 `json:"outdoor_activity"`
	ReportedHealthIssues string  `json:"reported_health_issues"`

	// RiskCategory is derived from DailyScreenTime at load time. It is
	// never read from or written to the input file.
	RiskCategory RiskCategory `json:"risk_category"`
}

// HasHealthIssues reports whether the child has reported health issues.
func (r Record) HasHealthIssues() bool {
	return r.ReportedHealthIssues == HealthIssuesYes
}

// Column names of the input file header. The header match is case-sensitive.
const (
	ColAge                  = "Age"
	ColGender               = "Gender"
	ColDailyScreenTime      = "Daily_Screen_Time"
	ColDeviceType           = "Device_Type"
	ColPurpose              = "Purpose"
	ColCityType             = "City_Type"
	ColAcademicPerformance  = "Academic_Performance"
	ColSleepHours           = "Sleep_Hours"
	ColOutdoorActivity      = "Outdoor_Activity"
	ColReportedHealthIssues = "Reported_Health_Issues"
)

// Columns is the canonical column order used for both schema validation
// and export serialization.
var Columns = []string{
	ColAge,
	ColGender,
	ColDailyScreenTime,
	ColDeviceType,
	ColPurpose,
	ColCityType,
	ColAcademicPerformance,
	ColSleepHours,
	ColOutdoorActivity,
	ColReportedHealthIssues,
}

// Accepted values for the Reported_Health_Issues column.
const (
	HealthIssuesYes = "Yes"
	HealthIssuesNo  = "No"
)
