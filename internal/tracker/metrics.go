package tracker

import (
	"strings"
	"time"

	"pmoreport/internal"
	"pmoreport/internal/util"
)

// DaysRemaining returns whole days between now and the contract end, floored
// at zero. A missing end date counts as zero.
func DaysRemaining(end *time.Time, now time.Time) int {
	if end == nil {
		return 0
	}
	days := int(end.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// BudgetSplit returns the spent and remaining shares of the total budget as
// percentages rounded to one decimal. A zero total yields (0, 0).
func BudgetSplit(spent, remaining float64) (float64, float64) {
	total := spent + remaining
	if total == 0 {
		return 0, 0
	}
	return util.Round1(spent / total * 100), util.Round1(remaining / total * 100)
}

// ClassifyHealth buckets a narrative health value. Checks run in fixed
// order (positive, caution, negative): a value containing several phrases
// keeps the first match, which downstream report colors rely on.
func ClassifyHealth(health string) internal.HealthLevel {
	status := strings.ToLower(strings.TrimSpace(health))
	if status == "" {
		return internal.HealthUnknown
	}
	switch {
	case strings.Contains(status, "on track") || strings.Contains(status, "on-track"):
		return internal.HealthPositive
	case strings.Contains(status, "at risk") || strings.Contains(status, "at-risk"):
		return internal.HealthCaution
	case strings.Contains(status, "off track") || strings.Contains(status, "off-track") || strings.Contains(status, "delayed"):
		return internal.HealthNegative
	}
	return internal.HealthUnknown
}
