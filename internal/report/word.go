package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fumiama/go-docx"

	"pmoreport/internal"
)

const tableWidthDXA = 9026

func wordHealthColor(level internal.HealthLevel) string {
	switch level {
	case internal.HealthPositive:
		return "33B24C"
	case internal.HealthCaution:
		return "FF9900"
	case internal.HealthNegative:
		return "CC3333"
	}
	return "808080"
}

// WriteWord renders the status report as a Word document, one section per
// project with a page break between projects.
func WriteWord(records []internal.ProjectRecord, outputPath string) error {
	doc := docx.New().WithDefaultTheme()

	for i, rec := range records {
		writeProjectSection(doc, rec)
		if i < len(records)-1 {
			doc.AddParagraph().AddPageBreaks()
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeProjectSection(doc *docx.Docx, rec internal.ProjectRecord) {
	title := doc.AddParagraph()
	title.AddText("Project Status Report").Size("36").Bold()
	title.Justification("center")

	date := doc.AddParagraph()
	date.AddText("Report Date: " + time.Now().Format("02/01/2006")).Size("20").Color("666666")
	date.Justification("end")

	name := doc.AddParagraph()
	name.AddText(rec.Name).Size("28").Bold().Color(brandOrange)

	info := doc.AddParagraph()
	info.AddText(fmt.Sprintf("Category: %s  |  Status: %s  |  Vendor: %s",
		rec.Category, rec.Status, truncateRunes(rec.Vendor, 50))).Size("20")

	peopleHeaders := []string{"Sponsor GM", "Director", "Project Lead", "Contract End", "Days Remaining"}
	peopleValues := []string{rec.GM, rec.Director, rec.OperationalLead, rec.ContractEndDate, fmt.Sprintf("%d", rec.DaysRemaining)}
	people := doc.AddTable(2, len(peopleHeaders), tableWidthDXA, nil)
	for i, h := range peopleHeaders {
		people.TableRows[0].TableCells[i].AddParagraph().AddText(h).Bold()
	}
	for i, v := range peopleValues {
		people.TableRows[1].TableCells[i].AddParagraph().AddText(v)
	}

	wordSection(doc, "Project Timeline")
	doc.AddParagraph().AddText(fmt.Sprintf("Actual Progress: %.1f%%", rec.TimelineActual)).Size("20")
	doc.AddParagraph().AddText(fmt.Sprintf("Planned Progress: %.1f%%", rec.TimelinePlanned)).Size("20")
	variance := doc.AddParagraph().AddText(fmt.Sprintf("Schedule Variance: %+.1f%%", rec.ScheduleVariance)).Size("20")
	if rec.ScheduleVariance >= 0 {
		variance.Color("008000")
	} else {
		variance.Color("CC0000")
	}

	wordSection(doc, "Budget Utilization")
	doc.AddParagraph().AddText(fmt.Sprintf("Total Budget: %s SAR", formatAmount(rec.BudgetTotal))).Size("20")
	doc.AddParagraph().AddText(fmt.Sprintf("Spent: %s SAR (%.1f%%)", formatAmount(rec.BudgetSpent), rec.BudgetSpentPct)).Size("20")
	doc.AddParagraph().AddText(fmt.Sprintf("Remaining: %s SAR (%.1f%%)", formatAmount(rec.BudgetRemaining), rec.BudgetRemainingPct)).Size("20")

	wordSection(doc, "Overall Project Health")
	badge := rec.Health
	if badge == "" {
		badge = "TBD"
	}
	doc.AddParagraph().AddText("  "+badge+"  ").Size("22").Bold().Color(wordHealthColor(rec.HealthLevel))

	wordSection(doc, "Service Delivery KPI")
	doc.AddParagraph().AddText(rec.KPI).Size("20")

	wordSection(doc, "Current Activities")
	doc.AddParagraph().AddText(rec.CurrentActs).Size("20")

	wordSection(doc, "Future Activities")
	doc.AddParagraph().AddText(rec.FutureActs).Size("20")

	wordSection(doc, "Risks & Issues")
	risks := doc.AddTable(3, 2, tableWidthDXA, nil)
	risks.TableRows[0].TableCells[0].AddParagraph().AddText("Type").Bold()
	risks.TableRows[0].TableCells[1].AddParagraph().AddText("Description").Bold()
	risks.TableRows[1].TableCells[0].AddParagraph().AddText("Issues")
	risks.TableRows[1].TableCells[1].AddParagraph().AddText(rec.Issues)
	risks.TableRows[2].TableCells[0].AddParagraph().AddText("Risks")
	risks.TableRows[2].TableCells[1].AddParagraph().AddText(rec.Risks)

	if rec.Comments != "" && rec.Comments != internal.Placeholder {
		wordSection(doc, "Comments / Notes")
		doc.AddParagraph().AddText(rec.Comments).Size("20")
	}

	wordSection(doc, "Deliverables / Milestones")
	deliverables := doc.AddTable(2, 5, tableWidthDXA, nil)
	deliverableHeaders := []string{"Deliverable Name", "Contractual Date", "Planned Date", "% Done", "Status"}
	for i, h := range deliverableHeaders {
		deliverables.TableRows[0].TableCells[i].AddParagraph().AddText(h).Bold()
	}
	placeholderRow := []string{"[To be added manually]", "-", "-", "-", "-"}
	for i, v := range placeholderRow {
		deliverables.TableRows[1].TableCells[i].AddParagraph().AddText(v)
	}
}

func wordSection(doc *docx.Docx, title string) {
	p := doc.AddParagraph()
	p.AddText(title).Size("24").Bold().Color(brandOrange)
}
