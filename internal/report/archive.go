package report

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"pmoreport/internal"
)

const (
	bundlePDF  = "PMO_Project_Reports.pdf"
	bundleXLSX = "PMO_Project_Reports.xlsx"
	bundleDOCX = "PMO_Project_Reports.docx"

	individualDir = "individual_reports"
	bundleZip     = "PMO_Reports.zip"
)

// WriteBundle renders every output format into dir plus one PDF per project,
// then zips the lot. Returns the zip path.
func WriteBundle(records []internal.ProjectRecord, dir string) (string, error) {
	if err := os.MkdirAll(filepath.Join(dir, individualDir), 0o755); err != nil {
		return "", err
	}

	if err := WritePDF(records, filepath.Join(dir, bundlePDF)); err != nil {
		return "", err
	}
	if err := WriteWorkbook(records, filepath.Join(dir, bundleXLSX)); err != nil {
		return "", err
	}
	if err := WriteWord(records, filepath.Join(dir, bundleDOCX)); err != nil {
		return "", err
	}

	entries := []string{bundlePDF, bundleXLSX, bundleDOCX}
	for _, rec := range records {
		name := filepath.Join(individualDir, safeFileName(rec.Name)+"_Report.pdf")
		if err := WritePDF([]internal.ProjectRecord{rec}, filepath.Join(dir, name)); err != nil {
			return "", err
		}
		entries = append(entries, name)
	}

	zipPath := filepath.Join(dir, bundleZip)
	if err := writeZip(zipPath, dir, entries); err != nil {
		return "", err
	}
	return zipPath, nil
}

func writeZip(zipPath, baseDir string, entries []string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, entry := range entries {
		src, err := os.Open(filepath.Join(baseDir, entry))
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(entry))
		if err != nil {
			_ = src.Close()
			return err
		}
		if _, err := io.Copy(w, src); err != nil {
			_ = src.Close()
			return err
		}
		_ = src.Close()
	}
	return zw.Close()
}

// safeFileName keeps letters, digits, spaces, dashes and underscores of the
// first 50 runes, then replaces spaces with underscores.
func safeFileName(name string) string {
	runes := []rune(name)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	var b strings.Builder
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" {
		cleaned = "project"
	}
	return strings.ReplaceAll(cleaned, " ", "_")
}
