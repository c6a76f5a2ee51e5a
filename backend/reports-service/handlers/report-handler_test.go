package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"projectflow/backend/reports-service/models"
	"projectflow/backend/reports-service/repositories"
	"projectflow/backend/reports-service/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *mux.Router {
	h := NewReportHandler(services.NewReportService(repositories.NewMemoryReportRepository(repositories.SeedReports()), 0))
	r := mux.NewRouter()
	r.HandleFunc("/api/reports/templates", h.GetTemplates).Methods(http.MethodGet)
	r.HandleFunc("/api/reports/options", h.GetOptions).Methods(http.MethodGet)
	r.HandleFunc("/api/reports/recent", h.GetRecent).Methods(http.MethodGet)
	r.HandleFunc("/api/reports/generate", h.Generate).Methods(http.MethodPost)
	return r
}

func TestGetTemplates(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/templates", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var templates []models.ReportTemplate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &templates))
	require.Len(t, templates, 4)
	assert.Equal(t, "project-summary", templates[0].ID)
}

func TestGetOptions(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/options", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var options models.ReportOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
	assert.Len(t, options.Teams, 6)
	assert.Equal(t, []string{"pdf", "excel", "csv"}, options.Formats)
}

func TestGetRecentRejectsBadLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/recent?limit=-2", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateRequiresEditorRole(t *testing.T) {
	body := `{"template":"project-summary"}`

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/reports/generate", strings.NewReader(body)))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/reports/generate", strings.NewReader(body))
	req.Header.Set("Role", "Viewer")
	rec = httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGenerate(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/reports/generate", strings.NewReader(`{"template":"project-summary","name":"Sprint 3","format":"csv"}`))
	req.Header.Set("Role", "admin")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var report models.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "Sprint 3", report.Name)
	assert.Equal(t, "512 KB", report.Size)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reports/recent", nil))
	var recent []models.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recent))
	require.Len(t, recent, 4)
	assert.Equal(t, "Sprint 3", recent[0].Name)
}

func TestGenerateRejectsUnknownTemplate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/reports/generate", strings.NewReader(`{"template":"nope"}`))
	req.Header.Set("Role", "Planner")
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
