package tracker

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	sampleCategories = []string{"Infrastructure", "Digital Transformation", "Operations", "Compliance", "Innovation"}
	sampleStatuses   = []string{"In Progress", "Planning", "Execution", "Testing", "Closing"}
	sampleGMs        = []string{"Ahmed Al-Rashid", "Sarah Johnson", "Mohammed Al-Qahtani", "Lisa Chen", "David Smith"}
	sampleDirectors  = []string{"John Williams", "Fatima Al-Zahrani", "Robert Brown", "Aisha Khan", "Michael Davis"}
	sampleLeads      = []string{"Tom Wilson", "Nora Al-Saud", "Jennifer Lee", "Ali Hassan", "Emma Thompson"}
	sampleVendors    = []string{"TechCorp Solutions", "GlobalIT Services", "Digital Partners", "Systems Inc", "CloudTech Pro"}

	sampleCurrentActs = []string{
		"Requirements gathering and stakeholder alignment",
		"System architecture design and review",
		"Development of core modules",
		"Integration testing with existing systems",
		"User acceptance testing preparation",
		"Documentation and training material development",
	}
	sampleFutureActs = []string{
		"Deploy to production environment",
		"Conduct end-user training sessions",
		"Implement monitoring and alerting",
		"Perform post-implementation review",
		"Establish support processes",
		"Plan for phase 2 enhancements",
	}
	sampleIssues = []string{
		"Resource availability constraints",
		"Scope creep requiring change control",
		"Integration challenges with legacy systems",
		"Vendor delivery delays",
		"Budget approval pending",
	}
	sampleRisks = []string{
		"Potential budget overrun due to scope changes",
		"Key resource dependency - single point of failure",
		"Timeline compression may impact quality",
		"Third-party system compatibility uncertain",
		"User adoption challenges anticipated",
	}
	sampleKPIs = []string{
		"SLA: 99.9% uptime | Current: 99.95%",
		"Response Time: <2s target | Current: 1.8s",
		"User Satisfaction: >4.0 target | Current: 4.2",
		"Defect Rate: <5% target | Current: 3.2%",
		"On-time Delivery: 95% target | Current: 92%",
	}
	sampleComments = []string{
		"Weekly steering committee meetings ongoing.",
		"Awaiting stakeholder approval for next phase.",
		"Resource augmentation in progress.",
		"Quality metrics within acceptable range.",
	}
)

// Headers use the messy real-world spellings so the generated file exercises
// the column resolver the way actual trackers do.
var sampleHeaders = []string{
	"#", "Project Name", "Project Category", "Project Status",
	"GM", "SPLD Director / GM", "Project operational Lead",
	"Contract End Date", "Days Remaining (Until Contract End)",
	"Budget (Spent)", "Budget Remaining",
	"timeline Actual", "timeline planned",
	"Service delivery Performance KPI", "Service delivery Performance",
	"Project health (on track - at risk - off track)",
	"Issues (From Owner List)", "Risks",
	"Current activites", "Future Activites",
	"Comments  to the owner", "Vendor",
}

// WriteSampleTracker generates a representative tracker workbook with mixed
// value formats (currency suffixes, percent strings, slash dates).
func WriteSampleTracker(outputPath string, rows int) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, "PMO Tracker"); err != nil {
		return err
	}
	sheet = "PMO Tracker"

	for i, h := range sampleHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	now := time.Now()
	for i := 0; i < rows; i++ {
		start := now.AddDate(0, 0, -(30 + rand.Intn(335)))
		end := start.AddDate(0, 0, 90+rand.Intn(640))
		elapsed := now.Sub(start).Hours() / 24
		total := end.Sub(start).Hours() / 24

		planned := elapsed / total * 100 * (0.9 + rand.Float64()*0.2)
		if planned > 100 {
			planned = 100
		}
		actual := planned + (rand.Float64()*25 - 15)
		if actual < 0 {
			actual = 0
		}
		if actual > 100 {
			actual = 100
		}

		totalBudget := float64(500000 + rand.Intn(9500000))
		spent := totalBudget * actual / 100 * (0.8 + rand.Float64()*0.4)
		remaining := totalBudget - spent
		if remaining < 0 {
			remaining = 0
		}

		health := "on track"
		switch variance := actual - planned; {
		case variance <= -10:
			health = "off track"
		case variance <= -5:
			health = "at risk"
		}

		daysLeft := int(end.Sub(now).Hours() / 24)
		if daysLeft < 0 {
			daysLeft = 0
		}

		category := sampleCategories[rand.Intn(len(sampleCategories))]
		values := []any{
			fmt.Sprintf("PRJ-%d", 1000+i),
			fmt.Sprintf("Project %c - %s Initiative", 'A'+rune(i%26), category),
			category,
			sampleStatuses[rand.Intn(len(sampleStatuses))],
			sampleGMs[rand.Intn(len(sampleGMs))],
			sampleDirectors[rand.Intn(len(sampleDirectors))],
			sampleLeads[rand.Intn(len(sampleLeads))],
			end.Format("01/02/2006"),
			daysLeft,
			fmt.Sprintf("%.2fSAR", spent),
			fmt.Sprintf("%.2fSAR", remaining),
			fmt.Sprintf("%.1f%%", actual),
			fmt.Sprintf("%.1f%%", planned),
			sampleKPIs[rand.Intn(len(sampleKPIs))],
			fmt.Sprintf("%d%%", 85+rand.Intn(15)),
			health,
			sampleIssues[rand.Intn(len(sampleIssues))],
			sampleRisks[rand.Intn(len(sampleRisks))],
			sampleCurrentActs[rand.Intn(len(sampleCurrentActs))],
			sampleFutureActs[rand.Intn(len(sampleFutureActs))],
			"Project progressing as per revised plan. "+sampleComments[rand.Intn(len(sampleComments))],
			sampleVendors[rand.Intn(len(sampleVendors))],
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
