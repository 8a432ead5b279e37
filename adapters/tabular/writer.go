package tabular

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/xuri/excelize/v2"

	"screentime/domain/dataset"
	"screentime/internal/errors"
)

// MarshalCSV serializes records back to the input schema as CSV bytes.
// The derived risk category is not persisted; the loader recomputes it.
func MarshalCSV(records []dataset.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(dataset.Columns); err != nil {
		return nil, errors.Wrap(err, "failed to write CSV header")
	}
	for _, r := range records {
		if err := w.Write(recordCells(r)); err != nil {
			return nil, errors.Wrap(err, "failed to write CSV row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush CSV")
	}
	return buf.Bytes(), nil
}

// MarshalXLSX serializes records to an Excel workbook (Sheet1) with the
// same header schema as the CSV form.
func MarshalXLSX(records []dataset.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(dataset.Columns))
	for i, col := range dataset.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		return nil, errors.Wrap(err, "failed to write XLSX header")
	}

	for i, r := range records {
		row := []interface{}{
			r.Age,
			r.Gender,
			r.DailyScreenTime,
			r.DeviceType,
			r.Purpose,
			r.CityType,
			r.AcademicPerformance,
			r.SleepHours,
			r.OutdoorActivity,
			r.ReportedHealthIssues,
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "failed to compute XLSX cell reference")
		}
		if err := f.SetSheetRow("Sheet1", cellRef, &row); err != nil {
			return nil, errors.Wrap(err, "failed to write XLSX row")
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to serialize XLSX workbook")
	}
	return buf.Bytes(), nil
}

// recordCells formats a record in canonical column order. Floats use the
// shortest representation that round-trips exactly.
func recordCells(r dataset.Record) []string {
	return []string{
		strconv.Itoa(r.Age),
		r.Gender,
		formatFloat(r.DailyScreenTime),
		r.DeviceType,
		r.Purpose,
		r.CityType,
		r.AcademicPerformance,
		formatFloat(r.SleepHours),
		formatFloat(r.OutdoorActivity),
		r.ReportedHealthIssues,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
