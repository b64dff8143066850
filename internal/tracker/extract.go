package tracker

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"pmoreport/internal"
	"pmoreport/internal/config"
	"pmoreport/internal/util"
)

const (
	defaultTextMaxLen = 500
	defaultKPIMaxLen  = 200

	endDateLayout = "02 Jan 2006"
)

// Extractor turns uploaded tracker workbooks into normalized project records.
type Extractor struct {
	textMaxLen int
	kpiMaxLen  int
	now        func() time.Time
}

func NewExtractor(cfg config.Config) *Extractor {
	e := &Extractor{
		textMaxLen: cfg.TextMaxLen,
		kpiMaxLen:  cfg.KPIMaxLen,
		now:        time.Now,
	}
	if e.textMaxLen <= 0 {
		e.textMaxLen = defaultTextMaxLen
	}
	if e.kpiMaxLen <= 0 {
		e.kpiMaxLen = defaultKPIMaxLen
	}
	return e
}

// Ingest decodes workbook bytes, resolves columns once against the header row,
// and extracts one record per row with a non-blank project name. The first
// worksheet only is read. All failures come back as descriptive errors; no
// partial result is returned alongside one.
func (e *Extractor) Ingest(content []byte, filename string) ([]internal.ProjectRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("read workbook %s: %w", filename, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", filename)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no valid projects found in %s", filename)
	}

	cmap := ResolveColumns(rows[0])
	if _, ok := cmap.Lookup(internal.FieldProjectName); !ok {
		return nil, fmt.Errorf("missing critical columns: %s", internal.FieldProjectName)
	}

	records := make([]internal.ProjectRecord, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		name := strings.TrimSpace(cmap.cell(cells, internal.FieldProjectName, ""))
		if name == "" {
			continue
		}
		records = append(records, e.extractRecord(cells, cmap))
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no valid projects found in %s", filename)
	}
	return records, nil
}

// extractRecord is a pure function of one row and the column map: every field
// parse falls back to its documented default, so a bad cell never loses the
// rest of the row.
func (e *Extractor) extractRecord(cells []string, cmap ColumnMap) internal.ProjectRecord {
	get := func(key internal.FieldKey) string {
		return strings.TrimSpace(cmap.cell(cells, key, ""))
	}

	rec := internal.ProjectRecord{
		Number:          get(internal.FieldProjectNumber),
		Name:            get(internal.FieldProjectName),
		Category:        get(internal.FieldProjectCategory),
		Status:          get(internal.FieldProjectStatus),
		GM:              get(internal.FieldGM),
		Director:        get(internal.FieldDirector),
		OperationalLead: get(internal.FieldOperationalLead),
		Vendor:          get(internal.FieldVendor),
	}

	now := e.now()
	endDate := util.ParseDate(get(internal.FieldContractEndDate))
	if endDate != nil {
		rec.ContractEndDate = endDate.Format(endDateLayout)
	} else {
		rec.ContractEndDate = internal.EndDateUnknown
	}
	rec.DaysRemaining = DaysRemaining(endDate, now)

	// Some trackers carry a maintained day-count column; trust it when the
	// date-derived value bottoms out at zero.
	explicitDays := util.ParseAmount(get(internal.FieldDaysRemaining), 0)
	if rec.DaysRemaining == 0 && explicitDays > 0 {
		rec.DaysRemaining = int(explicitDays)
	}

	rec.BudgetSpent = util.ParseAmount(get(internal.FieldBudgetSpent), 0)
	rec.BudgetRemaining = util.ParseAmount(get(internal.FieldBudgetRemaining), 0)
	rec.BudgetTotal = rec.BudgetSpent + rec.BudgetRemaining
	rec.BudgetSpentPct, rec.BudgetRemainingPct = BudgetSplit(rec.BudgetSpent, rec.BudgetRemaining)

	actual := util.ParsePercent(get(internal.FieldTimelineActual), 0)
	planned := util.ParsePercent(get(internal.FieldTimelinePlanned), 0)
	rec.TimelineActual = util.Round1(actual)
	rec.TimelinePlanned = util.Round1(planned)
	rec.ScheduleVariance = util.Round1(actual - planned)

	rec.KPI = util.CleanText(get(internal.FieldKPI), e.kpiMaxLen)
	rec.ServicePerf = get(internal.FieldServicePerf)
	if rec.ServicePerf == "" {
		rec.ServicePerf = "TBD"
	}
	rec.Health = get(internal.FieldProjectHealth)
	rec.HealthLevel = ClassifyHealth(rec.Health)

	rec.Issues = util.CleanText(get(internal.FieldIssues), e.textMaxLen)
	rec.Risks = util.CleanText(get(internal.FieldRisks), e.textMaxLen)
	rec.CurrentActs = util.CleanText(get(internal.FieldCurrentActs), e.textMaxLen)
	rec.FutureActs = util.CleanText(get(internal.FieldFutureActs), e.textMaxLen)
	rec.Comments = util.CleanText(get(internal.FieldComments), e.textMaxLen)

	return rec
}
