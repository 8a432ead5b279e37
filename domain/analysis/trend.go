package analysis

import (
	"gonum.org/v1/gonum/stat"

	"screentime/domain/dataset"
)

// Trend is an ordinary least squares fit of sleep hours against daily
// screen time, used for the scatter-chart trendline.
type Trend struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	HasData   bool    `json:"has_data"`
}

// Point is one (screen time, sleep hours) observation for the scatter
// chart.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SleepScatter projects the filtered view onto the scatter-chart axes.
func SleepScatter(records []dataset.Record) []Point {
	points := make([]Point, len(records))
	for i, r := range records {
		points[i] = Point{X: r.DailyScreenTime, Y: r.SleepHours}
	}
	return points
}

// SleepTrend fits sleep hours as a linear function of screen time. Fewer
// than two points, or screen-time values with zero variance, leave the
// fit undefined.
func SleepTrend(records []dataset.Record) Trend {
	if len(records) < 2 {
		return Trend{}
	}

	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	for i, r := range records {
		xs[i] = r.DailyScreenTime
		ys[i] = r.SleepHours
	}

	if stat.Variance(xs, nil) == 0 {
		return Trend{}
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return Trend{Slope: slope, Intercept: intercept, HasData: true}
}
