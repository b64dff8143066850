package tracker

import (
	"testing"
	"time"

	"pmoreport/internal"
)

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	future := now.AddDate(0, 0, 90)
	if got := DaysRemaining(&future, now); got != 90 {
		t.Fatalf("future: got %d", got)
	}

	past := now.AddDate(0, 0, -30)
	if got := DaysRemaining(&past, now); got != 0 {
		t.Fatalf("past: got %d", got)
	}

	if got := DaysRemaining(nil, now); got != 0 {
		t.Fatalf("nil: got %d", got)
	}
}

func TestBudgetSplit(t *testing.T) {
	spent, remaining := BudgetSplit(1000, 500)
	if spent != 66.7 || remaining != 33.3 {
		t.Fatalf("got %v / %v", spent, remaining)
	}

	spent, remaining = BudgetSplit(0, 0)
	if spent != 0 || remaining != 0 {
		t.Fatalf("zero total: got %v / %v", spent, remaining)
	}
}

func TestClassifyHealth(t *testing.T) {
	cases := []struct {
		input string
		want  internal.HealthLevel
	}{
		{input: "on track", want: internal.HealthPositive},
		{input: "On-Track", want: internal.HealthPositive},
		{input: "Project is ON TRACK overall", want: internal.HealthPositive},
		{input: "at risk", want: internal.HealthCaution},
		{input: "slightly at-risk", want: internal.HealthCaution},
		{input: "off track", want: internal.HealthNegative},
		{input: "delayed by vendor", want: internal.HealthNegative},
		// Positive phrasing wins even when negative words appear later.
		{input: "on track but delivery delayed", want: internal.HealthPositive},
		{input: "", want: internal.HealthUnknown},
		{input: "pending review", want: internal.HealthUnknown},
	}

	for _, tc := range cases {
		if got := ClassifyHealth(tc.input); got != tc.want {
			t.Fatalf("%q: got %v want %v", tc.input, got, tc.want)
		}
	}
}
