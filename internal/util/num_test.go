package util

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "currency suffix", input: "5,004,225.00SAR", want: 5004225.00},
		{name: "dollar prefix", input: "$1,200", want: 1200},
		{name: "plain number", input: "42.5", want: 42.5},
		{name: "lowercase suffix", input: "300sar", want: 300},
		{name: "surrounding spaces", input: "  1,000 ", want: 1000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAmount(tc.input, 0)
			if got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestParseAmountFallback(t *testing.T) {
	if got := ParseAmount("", 7); got != 7 {
		t.Fatalf("blank: got %v", got)
	}
	if got := ParseAmount("pending approval", 7); got != 7 {
		t.Fatalf("garbage: got %v", got)
	}
}

func TestParsePercent(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "percent sign", input: "40%", want: 40},
		{name: "plain", input: "40", want: 40},
		{name: "fraction scales", input: "0.4", want: 40},
		{name: "one scales", input: "1", want: 100},
		{name: "above one kept", input: "1.5", want: 1.5},
		{name: "decimal percent", input: "66.7%", want: 66.7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParsePercent(tc.input, 0)
			if got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}

	if got := ParsePercent("n/a", 55); got != 55 {
		t.Fatalf("fallback: got %v", got)
	}
}

func TestRound1(t *testing.T) {
	if got := Round1(66.666); got != 66.7 {
		t.Fatalf("got %v", got)
	}
	if got := Round1(10); got != 10 {
		t.Fatalf("got %v", got)
	}
}
