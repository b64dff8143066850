package web

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pmoreport/internal/config"
	"pmoreport/internal/llm"
	"pmoreport/internal/logger"
	"pmoreport/internal/report"
	"pmoreport/internal/tracker"
)

// ReportHandler serves tracker uploads and finished report bundles. The
// formatter is optional; nil skips the polish step.
type ReportHandler struct {
	cfg       config.Config
	extractor *tracker.Extractor
	formatter llm.Formatter
}

func NewReportHandler(cfg config.Config, extractor *tracker.Extractor, formatter llm.Formatter) *ReportHandler {
	return &ReportHandler{cfg: cfg, extractor: extractor, formatter: formatter}
}

// Upload ingests an uploaded tracker workbook, generates the report bundle,
// and returns a download URL. File-level ingestion errors come back as 400
// with the engine's message.
func (h *ReportHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please upload an Excel file (.xlsx)"})
		return
	}

	maxBytes := int64(h.cfg.MaxUploadMB) << 20
	if header.Size > maxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("file exceeds %d MB limit", h.cfg.MaxUploadMB)})
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	records, err := h.extractor.Ingest(content, header.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	records = llm.PolishRecords(ctx, h.formatter, records)

	reportID := uuid.New().String()
	dir := filepath.Join(h.cfg.OutputDir, reportID)
	if _, err := report.WriteBundle(records, dir); err != nil {
		logger.WithContext(ctx).Error("report bundle failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate reports"})
		return
	}

	logger.WithContext(ctx).Info("report generated",
		"report_id", reportID, "projects", len(records), "filename", header.Filename)

	c.JSON(http.StatusOK, gin.H{
		"report_id":     reportID,
		"project_count": len(records),
		"message":       fmt.Sprintf("successfully generated reports for %d projects", len(records)),
		"download_url":  fmt.Sprintf("/api/reports/%s/download", reportID),
	})
}

// Download streams a previously generated bundle.
func (h *ReportHandler) Download(c *gin.Context) {
	reportID := c.Param("id")
	if _, err := uuid.Parse(reportID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	zipPath := filepath.Join(h.cfg.OutputDir, reportID, "PMO_Reports.zip")
	if _, err := os.Stat(zipPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.FileAttachment(zipPath, "PMO_Reports.zip")
}
