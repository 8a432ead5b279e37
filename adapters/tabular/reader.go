package tabular

import (
	"encoding/csv"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"screentime/domain/dataset"
	"screentime/internal/errors"
)

// DataReader reads the screen-time dataset from CSV or Excel files.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for the given file; the format is picked
// from the extension, defaulting to CSV.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadRecords reads and validates the dataset. A missing file yields a
// DATA_NOT_FOUND error; any header or row that does not match the schema
// fails fast with SCHEMA_INVALID so bad data never reaches analysis.
func (r *DataReader) ReadRecords() ([]dataset.Record, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.DataNotFound(r.filePath)
	}

	startTime := time.Now()
	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}
	log.Printf("[DataReader] %s file read in %.2fms (%d rows)",
		strings.ToUpper(r.fileType), float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	if len(rows) == 0 {
		return nil, errors.SchemaInvalid("file has no header row")
	}

	return parseRows(rows)
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", r.filePath)
	}
	return rows, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open Excel file %s", r.filePath)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read Sheet1")
	}
	return rows, nil
}

// parseRows validates the header against the canonical schema and parses
// every data row into a typed Record.
func parseRows(rows [][]string) ([]dataset.Record, error) {
	columnIndex, err := validateHeader(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]dataset.Record, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		record, err := parseRecord(rows[i], columnIndex, i+1)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	log.Printf("[DataReader] dataset parsed (%d records)", len(records))
	return records, nil
}

// validateHeader checks that the header carries exactly the schema
// columns, case-sensitive, in any order.
func validateHeader(headerRow []string) (map[string]int, error) {
	columnIndex := make(map[string]int, len(headerRow))
	for i, header := range headerRow {
		name := strings.TrimSpace(header)
		if _, dup := columnIndex[name]; dup {
			return nil, errors.SchemaInvalidf("duplicate column %q", name)
		}
		columnIndex[name] = i
	}

	for _, col := range dataset.Columns {
		if _, ok := columnIndex[col]; !ok {
			return nil, errors.SchemaInvalidf("missing required column %q", col)
		}
	}
	if len(columnIndex) != len(dataset.Columns) {
		for name := range columnIndex {
			if !isSchemaColumn(name) {
				return nil, errors.SchemaInvalidf("unknown column %q", name)
			}
		}
	}

	return columnIndex, nil
}

func isSchemaColumn(name string) bool {
	for _, col := range dataset.Columns {
		if col == name {
			return true
		}
	}
	return false
}

func parseRecord(row []string, columnIndex map[string]int, lineNum int) (dataset.Record, error) {
	cell := func(col string) string {
		idx := columnIndex[col]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	age, err := parseAge(cell(dataset.ColAge), lineNum)
	if err != nil {
		return dataset.Record{}, err
	}

	screenTime, err := parseNonNegativeFloat(cell(dataset.ColDailyScreenTime), dataset.ColDailyScreenTime, lineNum)
	if err != nil {
		return dataset.Record{}, err
	}
	sleepHours, err := parseNonNegativeFloat(cell(dataset.ColSleepHours), dataset.ColSleepHours, lineNum)
	if err != nil {
		return dataset.Record{}, err
	}
	outdoor, err := parseNonNegativeFloat(cell(dataset.ColOutdoorActivity), dataset.ColOutdoorActivity, lineNum)
	if err != nil {
		return dataset.Record{}, err
	}

	record := dataset.Record{
		Age:                 age,
		Gender:              cell(dataset.ColGender),
		DailyScreenTime:     screenTime,
		DeviceType:          cell(dataset.ColDeviceType),
		Purpose:             cell(dataset.ColPurpose),
		CityType:            cell(dataset.ColCityType),
		AcademicPerformance: cell(dataset.ColAcademicPerformance),
		SleepHours:          sleepHours,
		OutdoorActivity:     outdoor,
	}

	for _, categorical := range []struct {
		column string
		value  string
	}{
		{dataset.ColGender, record.Gender},
		{dataset.ColDeviceType, record.DeviceType},
		{dataset.ColPurpose, record.Purpose},
		{dataset.ColCityType, record.CityType},
		{dataset.ColAcademicPerformance, record.AcademicPerformance},
	} {
		if categorical.value == "" {
			return dataset.Record{}, errors.SchemaInvalidf("row %d: empty value for %s", lineNum, categorical.column)
		}
	}

	health := cell(dataset.ColReportedHealthIssues)
	if health != dataset.HealthIssuesYes && health != dataset.HealthIssuesNo {
		return dataset.Record{}, errors.SchemaInvalidf(
			"row %d: %s must be %q or %q, got %q",
			lineNum, dataset.ColReportedHealthIssues, dataset.HealthIssuesYes, dataset.HealthIssuesNo, health)
	}
	record.ReportedHealthIssues = health

	return record, nil
}

func parseAge(value string, lineNum int) (int, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.SchemaInvalidf("row %d: %s is not numeric: %q", lineNum, dataset.ColAge, value)
	}
	if f < 0 {
		return 0, errors.SchemaInvalidf("row %d: %s is negative: %q", lineNum, dataset.ColAge, value)
	}
	if f != math.Trunc(f) {
		return 0, errors.SchemaInvalidf("row %d: %s must be a whole number: %q", lineNum, dataset.ColAge, value)
	}
	return int(f), nil
}

func parseNonNegativeFloat(value, column string, lineNum int) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.SchemaInvalidf("row %d: %s is not numeric: %q", lineNum, column, value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.SchemaInvalidf("row %d: %s is not finite: %q", lineNum, column, value)
	}
	if f < 0 {
		return 0, errors.SchemaInvalidf("row %d: %s is negative: %q", lineNum, column, value)
	}
	return f, nil
}
