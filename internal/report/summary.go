package report

import (
	"pmoreport/internal"
	"pmoreport/internal/tracker"
	"pmoreport/internal/util"
)

// Summary carries portfolio-level figures shared by the workbook dashboard
// and the PDF cover page.
type Summary struct {
	Total    int
	OnTrack  int
	AtRisk   int
	OffTrack int

	TotalBudget float64
	TotalSpent  float64
	AvgProgress float64
}

func BuildSummary(records []internal.ProjectRecord) Summary {
	s := Summary{Total: len(records)}
	for _, rec := range records {
		switch tracker.ClassifyHealth(rec.Health) {
		case internal.HealthPositive:
			s.OnTrack++
		case internal.HealthCaution:
			s.AtRisk++
		case internal.HealthNegative:
			s.OffTrack++
		}
		s.TotalBudget += rec.BudgetTotal
		s.TotalSpent += rec.BudgetSpent
		s.AvgProgress += rec.TimelineActual
	}
	if s.Total > 0 {
		s.AvgProgress = util.Round1(s.AvgProgress / float64(s.Total))
	}
	return s
}
