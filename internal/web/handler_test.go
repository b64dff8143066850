package web

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pmoreport/internal/config"
	"pmoreport/internal/tracker"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := config.Config{OutputDir: t.TempDir(), MaxUploadMB: 16}
	handler := NewReportHandler(cfg, tracker.NewExtractor(cfg), nil)
	return NewRouter(handler)
}

func trackerXLSX(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	buf := bytes.NewBuffer(nil)
	_, err := f.WriteTo(buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	body := bytes.NewBuffer(nil)
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/reports", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadGeneratesBundle(t *testing.T) {
	router := testRouter(t)
	blob := trackerXLSX(t, [][]any{
		{"Project Name", "Budget (Spent)", "Budget Remaining", "Project health (on track - at risk - off track)"},
		{"Alpha", "1,000.00SAR", "500SAR", "on track"},
		{"Beta", "200", "800", "at risk"},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "tracker.xlsx", blob))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		ReportID     string `json:"report_id"`
		ProjectCount int    `json:"project_count"`
		DownloadURL  string `json:"download_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.ProjectCount)
	assert.NotEmpty(t, resp.ReportID)
	assert.Equal(t, "/api/reports/"+resp.ReportID+"/download", resp.DownloadURL)

	// The bundle is downloadable right away.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, resp.DownloadURL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "PMO_Reports.zip")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")), "body should be a zip")
}

func TestUploadRejectsNonXLSX(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "tracker.csv", []byte("a,b,c")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ".xlsx")
}

func TestUploadRejectsMissingFile(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reports", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no file provided")
}

func TestUploadReportsIngestError(t *testing.T) {
	router := testRouter(t)
	blob := trackerXLSX(t, [][]any{
		{"Vendor", "Budget (Spent)"},
		{"TechCorp", "100"},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "tracker.xlsx", blob))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing critical columns")
}

func TestDownloadValidation(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reports/not-a-uuid/download", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	missing := "/api/reports/00000000-0000-0000-0000-000000000000/download"
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, missing, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
