package util

import (
	"math"
	"strconv"
	"strings"
)

var amountCleaner = strings.NewReplacer(",", "", "SAR", "", "sar", "", "$", "")

// ParseAmount converts a raw currency cell into a float amount. Thousands
// separators and currency markers are stripped before parsing. Returns
// fallback on blank input or parse failure, never an error.
func ParseAmount(value string, fallback float64) float64 {
	cleaned := strings.TrimSpace(amountCleaner.Replace(value))
	if cleaned == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

// ParsePercent converts a raw progress cell into a percentage. Values at or
// below 1 are treated as fractions and scaled, so "0.4" and "40%" both parse
// to 40. Returns fallback on blank input or parse failure.
func ParsePercent(value string, fallback float64) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, "%", ""))
	if cleaned == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return fallback
	}
	if parsed <= 1 {
		return parsed * 100
	}
	return parsed
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
