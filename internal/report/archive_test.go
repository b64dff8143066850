package report

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteBundle(t *testing.T) {
	dir := t.TempDir()
	zipPath, err := WriteBundle(testRecords(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if zipPath != filepath.Join(dir, "PMO_Reports.zip") {
		t.Fatalf("zip path=%q", zipPath)
	}

	for _, name := range []string{bundlePDF, bundleXLSX, bundleDOCX} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", name)
		}
	}

	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true
	}
	want := []string{
		bundlePDF, bundleXLSX, bundleDOCX,
		"individual_reports/Alpha_-_Infrastructure_Initiative_Report.pdf",
		"individual_reports/Beta_ComplianceUpgrade_Report.pdf",
	}
	for _, name := range want {
		if !names[name] {
			t.Fatalf("missing zip entry %q (have %v)", name, names)
		}
	}
}

func TestSafeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Alpha Project", want: "Alpha_Project"},
		{in: "Beta: Compliance/Upgrade?", want: "Beta_ComplianceUpgrade"},
		{in: "///", want: "project"},
		{in: "", want: "project"},
	}
	for _, tc := range cases {
		if got := safeFileName(tc.in); got != tc.want {
			t.Fatalf("%q: got %q want %q", tc.in, got, tc.want)
		}
	}
}
