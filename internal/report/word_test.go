package report

import (
	"os"
	"path/filepath"
	"testing"

	"pmoreport/internal"
)

func TestWriteWord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")
	if err := WriteWord(testRecords(), path); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// docx is a zip container.
	if len(content) < 2 || content[0] != 'P' || content[1] != 'K' {
		t.Fatalf("not a docx, size=%d", len(content))
	}
}

func TestWordHealthColor(t *testing.T) {
	cases := []struct {
		level internal.HealthLevel
		want  string
	}{
		{level: internal.HealthPositive, want: "33B24C"},
		{level: internal.HealthCaution, want: "FF9900"},
		{level: internal.HealthNegative, want: "CC3333"},
		{level: internal.HealthUnknown, want: "808080"},
	}
	for _, tc := range cases {
		if got := wordHealthColor(tc.level); got != tc.want {
			t.Fatalf("%v: got %q want %q", tc.level, got, tc.want)
		}
	}
}
