package util

import (
	"strings"
	"testing"

	"pmoreport/internal"
)

func TestNormalizeSpaces(t *testing.T) {
	got := NormalizeSpaces("  risk one\n\trisk   two  ")
	if got != "risk one risk two" {
		t.Fatalf("got %q", got)
	}
}

func TestIsPlaceholder(t *testing.T) {
	for _, v := range []string{"TBD", "n/a", "NA", "none", "-", "--", "Owner to share details", "To be provided later"} {
		if !IsPlaceholder(v) {
			t.Fatalf("%q should be a placeholder", v)
		}
	}
	// Short tokens match whole-string only: "na" inside a word is content.
	for _, v := range []string{"Final review", "Natural gas pipeline", "on track"} {
		if IsPlaceholder(v) {
			t.Fatalf("%q should not be a placeholder", v)
		}
	}
}

func TestCleanText(t *testing.T) {
	if got := CleanText("", 500); got != internal.Placeholder {
		t.Fatalf("blank: got %q", got)
	}
	if got := CleanText("  TBD ", 500); got != internal.Placeholder {
		t.Fatalf("placeholder: got %q", got)
	}
	if got := CleanText("line one\nline two", 500); got != "line one line two" {
		t.Fatalf("collapse: got %q", got)
	}

	long := strings.Repeat("x", 600)
	got := CleanText(long, 500)
	if len([]rune(got)) != 503 || !strings.HasSuffix(got, "...") {
		t.Fatalf("truncate: len=%d got=%q", len([]rune(got)), got[:20])
	}
}
