package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"screentime/adapters/tabular"
	"screentime/app"
)

const fixtureCSV = `Age,Gender,Daily_Screen_Time,Device_Type,Purpose,City_Type,Academic_Performance,Sleep_Hours,Outdoor_Activity,Reported_Health_Issues
8,Male,1.5,Tablet,Education,Urban,Excellent,9.5,2,No
10,Female,3.2,Smartphone,Social Media,Urban,Average,8,1.5,No
12,Male,4.8,Laptop,Gaming,Rural,Average,7.2,1,Yes
14,Female,6.5,Smartphone,Gaming,Rural,Below Average,6.5,0.5,Yes
`

func newTestServer(t *testing.T, csvContent string) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "data.csv")
	if csvContent != "" {
		if err := os.WriteFile(path, []byte(csvContent), 0o644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
	}

	datasets := app.NewDatasetService(tabular.NewDataReader(path))
	server, err := NewServer(app.NewDashboardService(datasets))
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return server
}

func doRequest(t *testing.T, server *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)
	return w
}

// TestIndexRendersFilterOptions tests that the dashboard page carries the
// observed filter domains.
func TestIndexRendersFilterOptions(t *testing.T) {
	server := newTestServer(t, fixtureCSV)

	w := doRequest(t, server, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, expected := range []string{"Smartphone", "Tablet", "Urban", "Rural", "Female", "Male"} {
		if !strings.Contains(body, expected) {
			t.Errorf("index missing filter option %q", expected)
		}
	}
}

// TestIndexMissingDataFile tests that a missing dataset yields a notice
// instead of a partial dashboard.
func TestIndexMissingDataFile(t *testing.T) {
	server := newTestServer(t, "")

	w := doRequest(t, server, "/")

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Dataset unavailable") {
		t.Error("expected dataset-unavailable notice in body")
	}
}

// TestDashboardAPIDefaultView tests the JSON view with no filters.
func TestDashboardAPIDefaultView(t *testing.T) {
	server := newTestServer(t, fixtureCSV)

	w := doRequest(t, server, "/api/dashboard")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var view app.DashboardView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode view: %v", err)
	}

	if view.TotalRecords != 4 || view.Summary.Count != 4 {
		t.Errorf("expected full dataset, got total=%d count=%d", view.TotalRecords, view.Summary.Count)
	}
	if !view.Summary.HasData {
		t.Error("expected summary data")
	}
	if len(view.RiskDistribution) != 4 {
		t.Errorf("expected 4 risk buckets, got %d", len(view.RiskDistribution))
	}
}

// TestDashboardAPIFiltered tests query-parameter filtering.
func TestDashboardAPIFiltered(t *testing.T) {
	server := newTestServer(t, fixtureCSV)

	w := doRequest(t, server, "/api/dashboard?gender=Female&city_type=Rural")

	var view app.DashboardView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode view: %v", err)
	}

	if view.Summary.Count != 1 {
		t.Errorf("expected 1 matching record, got %d", view.Summary.Count)
	}
}

// TestDashboardAPIEmptyResult tests the no-data JSON state.
func TestDashboardAPIEmptyResult(t *testing.T) {
	server := newTestServer(t, fixtureCSV)

	w := doRequest(t, server, "/api/dashboard?gender=Other")

	var view app.DashboardView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode view: %v", err)
	}

	if view.Summary.HasData || view.Summary.Count != 0 {
		t.Errorf("expected empty no-data view, got %+v", view.Summary)
	}
}

// TestDashboardAPIBadAgeParam tests input validation.
func TestDashboardAPIBadAgeParam(t *testing.T) {
	server := newTestServer(t, fixtureCSV)

	w := doRequest(t, server, "/api/dashboard?age_min=young")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// TestFilterOptionsAPI tests the observed domain endpoint.
func TestFilterOptionsAPI(t *testing.T) {
	server := newTestServer(t, fixtureCSV)

	w := doRequest(t, server, "/api/filters")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"age_min":8`) || !strings.Contains(body, `"age_max":14`) {
		t.Errorf("unexpected options payload: %s", body)
	}
}

// TestExportDownload tests the CSV download of the filtered view.
func TestExportDownload(t *testing.T) {
	server := newTestServer(t, fixtureCSV)

	w := doRequest(t, server, "/export?gender=Male")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if disposition := w.Header().Get("Content-Disposition"); !strings.Contains(disposition, "filtered_screen_time_data.csv") {
		t.Errorf("unexpected disposition: %s", disposition)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 3 { // header + 2 male rows
		t.Errorf("expected 3 lines, got %d: %v", len(lines), lines)
	}
}

// TestExportUnsupportedFormat tests format validation.
func TestExportUnsupportedFormat(t *testing.T) {
	server := newTestServer(t, fixtureCSV)

	w := doRequest(t, server, "/export?format=pdf")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// TestReportPage tests the rendered insight report.
func TestReportPage(t *testing.T) {
	server := newTestServer(t, fixtureCSV)

	w := doRequest(t, server, "/report")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Screen Time Insight Report") {
		t.Error("report heading missing")
	}
	if !strings.Contains(body, "insufficient sleep") {
		t.Error("expected sleep recommendation in report")
	}
}
