package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"pmoreport/internal"
)

const (
	brandOrange = "E07020"
	darkGray    = "404040"

	fillOnTrack  = "C6EFCE"
	fillAtRisk   = "FFEB9C"
	fillOffTrack = "FFC7CE"
	fontOnTrack  = "006100"
	fontAtRisk   = "9C5700"
	fontOffTrack = "9C0006"
)

// Sheet names beyond the first ten projects are skipped to keep workbooks
// manageable; the All Projects sheet still lists everything.
const maxProjectSheets = 10

type workbookStyles struct {
	title     int
	header    int
	subheader int
	data      int
	label     int
	money     int
	percent   int
	healthPos int
	healthCau int
	healthNeg int
}

// WriteWorkbook renders the full XLSX report: a dashboard, an all-projects
// table, and one detail sheet per project.
func WriteWorkbook(records []internal.ProjectRecord, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return err
	}

	if err := f.SetSheetName(f.GetSheetName(0), "Dashboard"); err != nil {
		return err
	}
	if err := writeDashboard(f, styles, records); err != nil {
		return err
	}
	if err := writeAllProjects(f, styles, records); err != nil {
		return err
	}
	for i, rec := range records {
		if i >= maxProjectSheets {
			break
		}
		if err := writeProjectSheet(f, styles, rec, i+1); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	var s workbookStyles
	var err error

	thin := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	moneyFmt := "#,##0.00"
	pctFmt := "0.0\"%\""

	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 20, Bold: true, Color: brandOrange},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 14, Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{brandOrange}},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	}); err != nil {
		return s, err
	}
	if s.subheader, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{darkGray}},
		Border:    thin,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return s, err
	}
	if s.data, err = f.NewStyle(&excelize.Style{Border: thin}); err != nil {
		return s, err
	}
	if s.label, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, Border: thin}); err != nil {
		return s, err
	}
	if s.money, err = f.NewStyle(&excelize.Style{Border: thin, CustomNumFmt: &moneyFmt}); err != nil {
		return s, err
	}
	if s.percent, err = f.NewStyle(&excelize.Style{Border: thin, CustomNumFmt: &pctFmt}); err != nil {
		return s, err
	}
	if s.healthPos, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Color: fontOnTrack},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillOnTrack}},
		Border: thin,
	}); err != nil {
		return s, err
	}
	if s.healthCau, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Color: fontAtRisk},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillAtRisk}},
		Border: thin,
	}); err != nil {
		return s, err
	}
	if s.healthNeg, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Color: fontOffTrack},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillOffTrack}},
		Border: thin,
	}); err != nil {
		return s, err
	}
	return s, nil
}

func (s workbookStyles) healthStyle(level internal.HealthLevel) int {
	switch level {
	case internal.HealthPositive:
		return s.healthPos
	case internal.HealthCaution:
		return s.healthCau
	case internal.HealthNegative:
		return s.healthNeg
	}
	return s.data
}

func setCell(f *excelize.File, sheet string, col, row int, value any, style int) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellValue(sheet, cell, value)
	if style != 0 {
		_ = f.SetCellStyle(sheet, cell, cell, style)
	}
}

func writeDashboard(f *excelize.File, styles workbookStyles, records []internal.ProjectRecord) error {
	const sheet = "Dashboard"
	sum := BuildSummary(records)

	setCell(f, sheet, 1, 1, "PMO Project Status Dashboard", styles.title)
	_ = f.MergeCell(sheet, "A1", "G1")
	setCell(f, sheet, 1, 2, "Report Date: "+time.Now().Format("02/01/2006"), 0)
	_ = f.MergeCell(sheet, "A2", "G2")

	setCell(f, sheet, 1, 4, "Summary Statistics", styles.header)
	_ = f.MergeCell(sheet, "A4", "C4")

	stats := [][2]any{
		{"Metric", "Value"},
		{"Total Projects", sum.Total},
		{"On Track", sum.OnTrack},
		{"At Risk", sum.AtRisk},
		{"Off Track/Delayed", sum.OffTrack},
		{"Total Budget", fmt.Sprintf("%s SAR", formatAmount(sum.TotalBudget))},
		{"Total Spent", fmt.Sprintf("%s SAR", formatAmount(sum.TotalSpent))},
		{"Average Progress", fmt.Sprintf("%.1f%%", sum.AvgProgress)},
	}
	for i, row := range stats {
		style := styles.data
		if i == 0 {
			style = styles.subheader
		}
		setCell(f, sheet, 1, 5+i, row[0], style)
		setCell(f, sheet, 2, 5+i, row[1], style)
	}

	setCell(f, sheet, 5, 4, "Health Status Overview", styles.header)
	_ = f.MergeCell(sheet, "E4", "G4")

	health := []struct {
		label string
		count int
		style int
	}{
		{"On Track", sum.OnTrack, styles.healthPos},
		{"At Risk", sum.AtRisk, styles.healthCau},
		{"Off Track", sum.OffTrack, styles.healthNeg},
	}
	setCell(f, sheet, 5, 5, "Status", styles.subheader)
	setCell(f, sheet, 6, 5, "Count", styles.subheader)
	setCell(f, sheet, 7, 5, "Percentage", styles.subheader)
	for i, h := range health {
		pct := 0.0
		if sum.Total > 0 {
			pct = float64(h.count) / float64(sum.Total) * 100
		}
		setCell(f, sheet, 5, 6+i, h.label, h.style)
		setCell(f, sheet, 6, 6+i, h.count, styles.data)
		setCell(f, sheet, 7, 6+i, fmt.Sprintf("%.1f%%", pct), styles.data)
	}

	return f.SetColWidth(sheet, "A", "G", 20)
}

var allProjectsHeaders = []string{
	"Project #", "Project Name", "Category", "Status", "Health",
	"GM", "Director", "Lead", "End Date", "Days Remaining",
	"Total Budget (SAR)", "Spent (SAR)", "Spent %", "Remaining (SAR)",
	"Timeline Actual %", "Timeline Planned %", "Schedule Variance %",
	"Current Activities", "Risks", "Issues",
}

func writeAllProjects(f *excelize.File, styles workbookStyles, records []internal.ProjectRecord) error {
	const sheet = "All Projects"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	for i, h := range allProjectsHeaders {
		setCell(f, sheet, i+1, 1, h, styles.subheader)
	}

	for i, rec := range records {
		r := i + 2
		setCell(f, sheet, 1, r, rec.Number, styles.data)
		setCell(f, sheet, 2, r, rec.Name, styles.data)
		setCell(f, sheet, 3, r, rec.Category, styles.data)
		setCell(f, sheet, 4, r, rec.Status, styles.data)
		setCell(f, sheet, 5, r, rec.Health, styles.healthStyle(rec.HealthLevel))
		setCell(f, sheet, 6, r, rec.GM, styles.data)
		setCell(f, sheet, 7, r, rec.Director, styles.data)
		setCell(f, sheet, 8, r, rec.OperationalLead, styles.data)
		setCell(f, sheet, 9, r, rec.ContractEndDate, styles.data)
		setCell(f, sheet, 10, r, rec.DaysRemaining, styles.data)
		setCell(f, sheet, 11, r, rec.BudgetTotal, styles.money)
		setCell(f, sheet, 12, r, rec.BudgetSpent, styles.money)
		setCell(f, sheet, 13, r, rec.BudgetSpentPct, styles.percent)
		setCell(f, sheet, 14, r, rec.BudgetRemaining, styles.money)
		setCell(f, sheet, 15, r, rec.TimelineActual, styles.percent)
		setCell(f, sheet, 16, r, rec.TimelinePlanned, styles.percent)
		setCell(f, sheet, 17, r, rec.ScheduleVariance, styles.percent)
		setCell(f, sheet, 18, r, truncateRunes(rec.CurrentActs, 200), styles.data)
		setCell(f, sheet, 19, r, truncateRunes(rec.Risks, 200), styles.data)
		setCell(f, sheet, 20, r, truncateRunes(rec.Issues, 200), styles.data)
	}

	last, _ := excelize.CoordinatesToCellName(len(allProjectsHeaders), len(records)+1)
	if err := f.AutoFilter(sheet, "A1:"+last, nil); err != nil {
		return err
	}
	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "T", 18)
}

func writeProjectSheet(f *excelize.File, styles workbookStyles, rec internal.ProjectRecord, index int) error {
	sheet := sheetName(rec.Name, index)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	setCell(f, sheet, 1, 1, "Project Report: "+rec.Name, styles.title)
	_ = f.MergeCell(sheet, "A1", "D1")

	rows := []struct {
		label string
		value any
		style int
	}{
		{"Field", "Value", styles.subheader},
		{"Project Name", rec.Name, 0},
		{"Category", rec.Category, 0},
		{"Status", rec.Status, 0},
		{"Health", rec.Health, styles.healthStyle(rec.HealthLevel)},
		{"Sponsor GM", rec.GM, 0},
		{"Director", rec.Director, 0},
		{"Project Lead", rec.OperationalLead, 0},
		{"Vendor", rec.Vendor, 0},
		{"Contract End Date", rec.ContractEndDate, 0},
		{"Days Remaining", rec.DaysRemaining, 0},
		{"Total Budget", fmt.Sprintf("%s SAR", formatAmount(rec.BudgetTotal)), 0},
		{"Spent", fmt.Sprintf("%s SAR (%.1f%%)", formatAmount(rec.BudgetSpent), rec.BudgetSpentPct), 0},
		{"Remaining", fmt.Sprintf("%s SAR (%.1f%%)", formatAmount(rec.BudgetRemaining), rec.BudgetRemainingPct), 0},
		{"Actual Progress", fmt.Sprintf("%.1f%%", rec.TimelineActual), 0},
		{"Planned Progress", fmt.Sprintf("%.1f%%", rec.TimelinePlanned), 0},
		{"Schedule Variance", fmt.Sprintf("%+.1f%%", rec.ScheduleVariance), 0},
		{"Service Delivery KPI", rec.KPI, 0},
		{"Current Activities", rec.CurrentActs, 0},
		{"Future Activities", rec.FutureActs, 0},
		{"Risks", rec.Risks, 0},
		{"Issues", rec.Issues, 0},
		{"Comments", rec.Comments, 0},
	}
	for i, row := range rows {
		labelStyle := styles.label
		valueStyle := row.style
		if i == 0 {
			labelStyle = styles.subheader
		}
		if valueStyle == 0 {
			valueStyle = styles.data
		}
		setCell(f, sheet, 1, 3+i, row.label, labelStyle)
		setCell(f, sheet, 2, 3+i, row.value, valueStyle)
	}

	if err := f.SetColWidth(sheet, "A", "A", 25); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "B", 60)
}

// sheetName fits Excel's 31-char limit and strips characters Excel rejects.
func sheetName(name string, index int) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, name)
	cleaned = truncateRunes(cleaned, 25)
	return fmt.Sprintf("%d. %s", index, strings.TrimSpace(cleaned))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
