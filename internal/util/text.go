package util

import (
	"strings"

	"pmoreport/internal"
)

var placeholderTokens = map[string]struct{}{
	"tbd":  {},
	"n/a":  {},
	"na":   {},
	"none": {},
	"nil":  {},
	"-":    {},
	"--":   {},
}

var placeholderPhrases = []string{"owner to share", "to be provided"}

// NormalizeSpaces collapses all internal whitespace runs, newlines included,
// to single spaces and trims the ends.
func NormalizeSpaces(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

// IsPlaceholder reports whether a cleaned value is a stand-in the owner typed
// instead of real content.
func IsPlaceholder(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	if _, ok := placeholderTokens[lower]; ok {
		return true
	}
	for _, phrase := range placeholderPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// CleanText normalizes a free-text cell for display: blank and placeholder
// values become the canonical placeholder, whitespace is collapsed, and the
// result is truncated to maxLen runes with an ellipsis marker.
func CleanText(value string, maxLen int) string {
	cleaned := NormalizeSpaces(value)
	if cleaned == "" || IsPlaceholder(cleaned) {
		return internal.Placeholder
	}
	runes := []rune(cleaned)
	if maxLen > 0 && len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return cleaned
}
