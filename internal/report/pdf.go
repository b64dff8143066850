package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"pmoreport/internal"
)

type rgb struct{ r, g, b int }

var (
	pdfOrange   = rgb{224, 112, 32}
	pdfDarkGray = rgb{38, 38, 38}
	pdfMidGray  = rgb{64, 64, 64}
	pdfLight    = rgb{240, 240, 240}

	pdfGreen   = rgb{51, 178, 76}
	pdfAmber   = rgb{255, 153, 0}
	pdfRed     = rgb{204, 51, 51}
	pdfNeutral = rgb{128, 128, 128}
)

func healthColor(level internal.HealthLevel) rgb {
	switch level {
	case internal.HealthPositive:
		return pdfGreen
	case internal.HealthCaution:
		return pdfAmber
	case internal.HealthNegative:
		return pdfRed
	}
	return pdfNeutral
}

// WritePDF renders the status report as landscape A4, one page per project,
// with a portfolio summary page in front when the report covers more than one
// project.
func WritePDF(records []internal.ProjectRecord, outputPath string) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.SetMargins(12, 12, 12)

	if len(records) > 1 {
		writeSummaryPage(pdf, records)
	}
	for _, rec := range records {
		writeProjectPage(pdf, rec)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(outputPath)
}

func writeSummaryPage(pdf *fpdf.Fpdf, records []internal.ProjectRecord) {
	sum := BuildSummary(records)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(pdfOrange.r, pdfOrange.g, pdfOrange.b)
	pdf.CellFormat(0, 12, "PMO Portfolio Summary", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, "Report Date: "+time.Now().Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	rows := [][2]string{
		{"Total Projects", fmt.Sprintf("%d", sum.Total)},
		{"On Track", fmt.Sprintf("%d", sum.OnTrack)},
		{"At Risk", fmt.Sprintf("%d", sum.AtRisk)},
		{"Off Track/Delayed", fmt.Sprintf("%d", sum.OffTrack)},
		{"Total Budget", formatAmount(sum.TotalBudget) + " SAR"},
		{"Total Spent", formatAmount(sum.TotalSpent) + " SAR"},
		{"Average Progress", fmt.Sprintf("%.1f%%", sum.AvgProgress)},
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(pdfDarkGray.r, pdfDarkGray.g, pdfDarkGray.b)
	pdf.CellFormat(90, 8, "Metric", "1", 0, "L", true, 0, "")
	pdf.CellFormat(90, 8, "Value", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range rows {
		fill := i%2 == 1
		pdf.SetFillColor(pdfLight.r, pdfLight.g, pdfLight.b)
		pdf.CellFormat(90, 7, row[0], "1", 0, "L", fill, 0, "")
		pdf.CellFormat(90, 7, row[1], "1", 1, "L", fill, 0, "")
	}
}

func writeProjectPage(pdf *fpdf.Fpdf, rec internal.ProjectRecord) {
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(pdfDarkGray.r, pdfDarkGray.g, pdfDarkGray.b)
	pdf.CellFormat(usable-60, 9, "Project Status Report", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(60, 9, "Report Date: "+time.Now().Format("02/01/2006"), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(pdfOrange.r, pdfOrange.g, pdfOrange.b)
	pdf.CellFormat(0, 9, rec.Name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	info := fmt.Sprintf("Category: %s   |   Status: %s   |   Vendor: %s", rec.Category, rec.Status, truncateRunes(rec.Vendor, 50))
	pdf.CellFormat(0, 6, info, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// People and dates strip.
	peopleHeaders := []string{"Sponsor GM", "Director", "Project Lead", "Contract End", "Days Remaining"}
	peopleValues := []string{rec.GM, rec.Director, rec.OperationalLead, rec.ContractEndDate, fmt.Sprintf("%d", rec.DaysRemaining)}
	colW := usable / float64(len(peopleHeaders))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(pdfDarkGray.r, pdfDarkGray.g, pdfDarkGray.b)
	for _, h := range peopleHeaders {
		pdf.CellFormat(colW, 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(pdfMidGray.r, pdfMidGray.g, pdfMidGray.b)
	for _, v := range peopleValues {
		pdf.CellFormat(colW, 7, truncateRunes(v, 30), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(10)

	// Two columns: metrics on the left, health and activities on the right.
	colTop := pdf.GetY()
	halfW := usable/2 - 4

	sectionTitle(pdf, "Project Timeline")
	metricLine(pdf, halfW, fmt.Sprintf("Actual Progress: %.1f%%", rec.TimelineActual))
	metricLine(pdf, halfW, fmt.Sprintf("Planned Progress: %.1f%%", rec.TimelinePlanned))
	if rec.ScheduleVariance >= 0 {
		pdf.SetTextColor(0, 128, 0)
	} else {
		pdf.SetTextColor(204, 0, 0)
	}
	metricLine(pdf, halfW, fmt.Sprintf("Schedule Variance: %+.1f%%", rec.ScheduleVariance))
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	sectionTitle(pdf, "Budget Utilization")
	metricLine(pdf, halfW, fmt.Sprintf("Total Budget: %s SAR", formatAmount(rec.BudgetTotal)))
	metricLine(pdf, halfW, fmt.Sprintf("Spent: %s SAR (%.1f%%)", formatAmount(rec.BudgetSpent), rec.BudgetSpentPct))
	metricLine(pdf, halfW, fmt.Sprintf("Remaining: %s SAR (%.1f%%)", formatAmount(rec.BudgetRemaining), rec.BudgetRemainingPct))
	pdf.Ln(3)

	sectionTitle(pdf, "Service Delivery KPI")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(halfW, 5, rec.KPI, "", "L", false)
	leftBottom := pdf.GetY()

	// Right column.
	rightX := left + usable/2 + 4
	pdf.SetXY(rightX, colTop)
	sectionTitleAt(pdf, rightX, "Overall Project Health")

	hc := healthColor(rec.HealthLevel)
	badge := rec.Health
	if badge == "" {
		badge = "TBD"
	}
	pdf.SetX(rightX)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(hc.r, hc.g, hc.b)
	pdf.CellFormat(halfW, 8, "  "+badge+"  ", "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	sectionTitleAt(pdf, rightX, "Current Activities")
	pdf.SetX(rightX)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(halfW, 5, rec.CurrentActs, "", "L", false)
	pdf.Ln(2)

	sectionTitleAt(pdf, rightX, "Future Activities")
	pdf.SetX(rightX)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(halfW, 5, rec.FutureActs, "", "L", false)

	if pdf.GetY() < leftBottom {
		pdf.SetY(leftBottom)
	}
	pdf.Ln(4)

	// Risks and issues table across the full width.
	sectionTitle(pdf, "Risks & Issues")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(pdfDarkGray.r, pdfDarkGray.g, pdfDarkGray.b)
	pdf.CellFormat(30, 7, "Type", "1", 0, "L", true, 0, "")
	pdf.CellFormat(usable-30, 7, "Description", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(pdfLight.r, pdfLight.g, pdfLight.b)
	riskRows := [][2]string{{"Issues", rec.Issues}, {"Risks", rec.Risks}}
	for _, row := range riskRows {
		y := pdf.GetY()
		pdf.CellFormat(30, 7, row[0], "1", 0, "L", true, 0, "")
		pdf.MultiCell(usable-30, 7, row[1], "1", "L", true)
		if pdf.GetY() < y+7 {
			pdf.SetY(y + 7)
		}
	}

	if rec.Comments != "" && rec.Comments != internal.Placeholder {
		pdf.Ln(3)
		sectionTitle(pdf, "Comments / Notes")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(usable, 5, rec.Comments, "", "L", false)
	}
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(pdfOrange.r, pdfOrange.g, pdfOrange.b)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func sectionTitleAt(pdf *fpdf.Fpdf, x float64, title string) {
	pdf.SetX(x)
	sectionTitle(pdf, title)
}

func metricLine(pdf *fpdf.Fpdf, w float64, text string) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(w, 5, text, "", 1, "L", false, 0, "")
}
