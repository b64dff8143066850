package tracker

import (
	"os"
	"path/filepath"
	"testing"

	"pmoreport/internal"
)

func TestWriteSampleTracker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.xlsx")
	if err := WriteSampleTracker(path, 5); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	records, err := testExtractor().Ingest(content, "sample.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 5 {
		t.Fatalf("len=%d", len(records))
	}
	for _, rec := range records {
		if rec.Name == "" {
			t.Fatal("blank name")
		}
		if rec.BudgetTotal <= 0 {
			t.Fatalf("%s: budget total %v", rec.Name, rec.BudgetTotal)
		}
		if rec.HealthLevel == internal.HealthUnknown {
			t.Fatalf("%s: health %q unclassified", rec.Name, rec.Health)
		}
	}
}
