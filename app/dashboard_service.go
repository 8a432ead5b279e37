package app

import (
	"context"
	"fmt"

	"screentime/adapters/tabular"
	"screentime/domain/analysis"
	"screentime/domain/dataset"
	"screentime/domain/filter"
	"screentime/internal/errors"
)

// DashboardView bundles every aggregate the dashboard renders for one
// filter selection. It is recomputed from scratch on each request; the
// only state carried between requests is the memoized snapshot.
type DashboardView struct {
	SnapshotID           string                   `json:"snapshot_id"`
	Filter               filter.Filter            `json:"filter"`
	TotalRecords         int                      `json:"total_records"`
	Summary              analysis.Summary         `json:"summary"`
	ScreenTimeByAge      []analysis.AgeMean       `json:"screen_time_by_age"`
	ScreenTimeByDevice   []analysis.GroupMean     `json:"screen_time_by_device"`
	ScreenTimeByAcademic []analysis.GroupMean     `json:"screen_time_by_academic"`
	PurposeDistribution  []analysis.CategoryCount `json:"purpose_distribution"`
	RiskDistribution     []analysis.CategoryCount `json:"risk_distribution"`
	HealthSubgroup       analysis.HealthSubgroup  `json:"health_subgroup"`
	SleepScatter         []analysis.Point         `json:"sleep_scatter"`
	SleepTrend           analysis.Trend           `json:"sleep_trend"`
	Recommendations      []string                 `json:"recommendations"`
}

// Export formats offered for the filtered view.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Export is a serialized filtered view ready for download.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DashboardService runs the per-request pipeline: memoized load, filter,
// aggregate.
type DashboardService struct {
	datasets *DatasetService
}

// NewDashboardService creates a dashboard service over the dataset service.
func NewDashboardService(datasets *DatasetService) *DashboardService {
	return &DashboardService{datasets: datasets}
}

// Options returns the observed filter domains of the dataset.
func (s *DashboardService) Options(ctx context.Context) (filter.Options, error) {
	snapshot, err := s.datasets.Load(ctx)
	if err != nil {
		return filter.Options{}, err
	}
	return snapshot.Options, nil
}

// DefaultFilter returns the filter selecting the whole dataset.
func (s *DashboardService) DefaultFilter(ctx context.Context) (filter.Filter, error) {
	snapshot, err := s.datasets.Load(ctx)
	if err != nil {
		return filter.Filter{}, err
	}
	return filter.Default(snapshot.Records), nil
}

// View applies the filter and computes every dashboard aggregate.
func (s *DashboardService) View(ctx context.Context, f filter.Filter) (*DashboardView, error) {
	snapshot, err := s.datasets.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filter.Apply(snapshot.Records, f)

	return &DashboardView{
		SnapshotID:           snapshot.ID,
		Filter:               f.Normalize(),
		TotalRecords:         len(snapshot.Records),
		Summary:              analysis.Summarize(filtered),
		ScreenTimeByAge:      analysis.MeanScreenTimeByAge(filtered),
		ScreenTimeByDevice:   analysis.MeanScreenTimeByDevice(filtered),
		ScreenTimeByAcademic: analysis.MeanScreenTimeByAcademicPerformance(filtered),
		PurposeDistribution:  analysis.PurposeDistribution(filtered),
		RiskDistribution:     analysis.RiskDistribution(filtered),
		HealthSubgroup:       analysis.HealthIssueBreakdown(filtered),
		SleepScatter:         analysis.SleepScatter(filtered),
		SleepTrend:           analysis.SleepTrend(filtered),
		Recommendations:      analysis.Recommendations(filtered),
	}, nil
}

// FilteredRecords returns the rows of the current filtered view, for the
// export path.
func (s *DashboardService) FilteredRecords(ctx context.Context, f filter.Filter) ([]dataset.Record, error) {
	snapshot, err := s.datasets.Load(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(snapshot.Records, f), nil
}

// ExportView serializes the filtered view back to the input schema.
func (s *DashboardService) ExportView(ctx context.Context, f filter.Filter, format string) (*Export, error) {
	records, err := s.FilteredRecords(ctx, f)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV, "":
		data, err := tabular.MarshalCSV(records)
		if err != nil {
			return nil, err
		}
		return &Export{
			Filename:    "filtered_screen_time_data.csv",
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case FormatXLSX:
		data, err := tabular.MarshalXLSX(records)
		if err != nil {
			return nil, err
		}
		return &Export{
			Filename:    "filtered_screen_time_data.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unsupported export format %q", format))
	}
}
