package report

import (
	"testing"

	"pmoreport/internal"
)

func testRecords() []internal.ProjectRecord {
	return []internal.ProjectRecord{
		{
			Number:             "PRJ-1000",
			Name:               "Alpha - Infrastructure Initiative",
			Category:           "Infrastructure",
			Status:             "In Progress",
			GM:                 "Ahmed Al-Rashid",
			Director:           "John Williams",
			OperationalLead:    "Tom Wilson",
			Vendor:             "TechCorp Solutions",
			ContractEndDate:    "15 Mar 2026",
			DaysRemaining:      73,
			BudgetSpent:        1000,
			BudgetRemaining:    500,
			BudgetTotal:        1500,
			BudgetSpentPct:     66.7,
			BudgetRemainingPct: 33.3,
			TimelineActual:     60,
			TimelinePlanned:    50,
			ScheduleVariance:   10,
			KPI:                "SLA: 99.9% uptime | Current: 99.95%",
			ServicePerf:        "95%",
			Health:             "on track",
			HealthLevel:        internal.HealthPositive,
			Issues:             "Resource availability constraints",
			Risks:              "Potential budget overrun due to scope changes",
			CurrentActs:        "Development of core modules",
			FutureActs:         "Deploy to production environment",
			Comments:           "Weekly steering committee meetings ongoing.",
		},
		{
			Number:          "PRJ-1001",
			Name:            "Beta: Compliance/Upgrade?",
			ContractEndDate: internal.EndDateUnknown,
			BudgetSpent:     200,
			BudgetRemaining: 800,
			BudgetTotal:     1000,
			TimelineActual:  30,
			TimelinePlanned: 45,
			ServicePerf:     "TBD",
			Health:          "at risk",
			HealthLevel:     internal.HealthCaution,
			KPI:             internal.Placeholder,
			Issues:          internal.Placeholder,
			Risks:           internal.Placeholder,
			CurrentActs:     internal.Placeholder,
			FutureActs:      internal.Placeholder,
			Comments:        internal.Placeholder,
		},
	}
}

func TestBuildSummary(t *testing.T) {
	sum := BuildSummary(testRecords())
	if sum.Total != 2 {
		t.Fatalf("total=%d", sum.Total)
	}
	if sum.OnTrack != 1 || sum.AtRisk != 1 || sum.OffTrack != 0 {
		t.Fatalf("health counts=%d/%d/%d", sum.OnTrack, sum.AtRisk, sum.OffTrack)
	}
	if sum.TotalBudget != 2500 || sum.TotalSpent != 1200 {
		t.Fatalf("budget=%v spent=%v", sum.TotalBudget, sum.TotalSpent)
	}
	if sum.AvgProgress != 45 {
		t.Fatalf("avg=%v", sum.AvgProgress)
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	sum := BuildSummary(nil)
	if sum.Total != 0 || sum.AvgProgress != 0 {
		t.Fatalf("got %+v", sum)
	}
}
