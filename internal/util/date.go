package util

import (
	"strings"
	"time"
)

// Month-first for ambiguous slash dates, matching the tracker's convention.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	// excelize renders date-typed cells through the default number format,
	// which yields two-digit-year strings like "3/15/26 00:00".
	"1/2/06 15:04",
	"1/2/06",
	"01/02/06",
	"01-02-06",
	"01-02-2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

// ParseDate attempts a best-effort parse of a raw date cell. Returns nil when
// the value is blank or matches no known layout.
func ParseDate(value string) *time.Time {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return &parsed
		}
	}
	return nil
}
