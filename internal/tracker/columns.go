package tracker

import (
	"strings"

	"pmoreport/internal"
)

// Candidate header names per logical field, in priority order: the first
// candidate that matches a header wins, so a more specific header beats a
// generic one when both appear in the same file. Spellings mirror the tracker
// templates in circulation, typos included.
var fieldCandidates = map[internal.FieldKey][]string{
	internal.FieldProjectNumber:   {"#", "No", "Number", "Project #", "ID"},
	internal.FieldProjectName:     {"Project Name", "Name", "Project Title"},
	internal.FieldProjectCategory: {"Project Category", "Category", "Type"},
	internal.FieldProjectStatus:   {"Project Status", "Status"},
	internal.FieldGM:              {"GM", "General Manager", "Sponsor GM"},
	internal.FieldDirector:        {"SPLD Director / GM", "Director", "SPLD Director", "Project Director"},
	internal.FieldOperationalLead: {"Project operational Lead", "Operational Lead", "Lead", "Project Lead", "Project Manager"},
	internal.FieldContractEndDate: {"Contract End Date", "End Date", "Finish Date", "Deadline"},
	internal.FieldDaysRemaining:   {"Days Remaining (Until Contract End)", "Days Remaining", "Days Left"},
	internal.FieldBudgetSpent:     {"Budget (Spent)", "Budget Spent", "Spent", "Actual Cost"},
	internal.FieldBudgetRemaining: {"Budget Remaining", "Remaining Budget", "Budget Left"},
	internal.FieldTimelineActual:  {"timeline Actual", "Actual Progress", "Actual %", "Progress Actual"},
	internal.FieldTimelinePlanned: {"timeline planned", "Planned Progress", "Planned %", "Progress Planned"},
	internal.FieldKPI:             {"Service delivery Performance KPI", "KPI", "Performance KPI"},
	internal.FieldServicePerf:     {"Service delivery Performance", "Performance", "Service Performance"},
	internal.FieldProjectHealth:   {"Project health (on track - at risk - off track)", "Project Health", "Health", "Status Health"},
	internal.FieldIssues:          {"Issues (From Owner List)", "Issues", "Current Issues"},
	internal.FieldRisks:           {"Risks", "Risk", "Project Risks"},
	internal.FieldCurrentActs:     {"Current activites", "Current Activities", "Current Work"},
	internal.FieldFutureActs:      {"Future Activites", "Future Activities", "Next Steps", "Upcoming Activities"},
	internal.FieldComments:        {"Comments  to the owner", "Comments", "Notes", "Owner Comments"},
	internal.FieldVendor:          {"Vendor", "Supplier", "Contractor"},
}

var fieldOrder = []internal.FieldKey{
	internal.FieldProjectNumber,
	internal.FieldProjectName,
	internal.FieldProjectCategory,
	internal.FieldProjectStatus,
	internal.FieldGM,
	internal.FieldDirector,
	internal.FieldOperationalLead,
	internal.FieldContractEndDate,
	internal.FieldDaysRemaining,
	internal.FieldBudgetSpent,
	internal.FieldBudgetRemaining,
	internal.FieldTimelineActual,
	internal.FieldTimelinePlanned,
	internal.FieldKPI,
	internal.FieldServicePerf,
	internal.FieldProjectHealth,
	internal.FieldIssues,
	internal.FieldRisks,
	internal.FieldCurrentActs,
	internal.FieldFutureActs,
	internal.FieldComments,
	internal.FieldVendor,
}

// ColumnMap is the per-file resolution of logical fields to column indexes.
// Built once per workbook and read-only afterwards.
type ColumnMap struct {
	index   map[internal.FieldKey]int
	Missing []internal.FieldKey
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// ResolveColumns matches the header row against the candidate table. Headers
// compare case-insensitively with surrounding whitespace stripped; the first
// header occurrence wins when duplicates exist.
func ResolveColumns(headers []string) ColumnMap {
	byName := make(map[string]int, len(headers))
	for i, h := range headers {
		norm := normalizeHeader(h)
		if _, seen := byName[norm]; !seen {
			byName[norm] = i
		}
	}

	cmap := ColumnMap{index: make(map[internal.FieldKey]int, len(fieldOrder))}
	for _, key := range fieldOrder {
		found := false
		for _, candidate := range fieldCandidates[key] {
			if idx, ok := byName[normalizeHeader(candidate)]; ok {
				cmap.index[key] = idx
				found = true
				break
			}
		}
		if !found {
			cmap.Missing = append(cmap.Missing, key)
		}
	}
	return cmap
}

// Lookup returns the column index for a field, if resolved.
func (m ColumnMap) Lookup(key internal.FieldKey) (int, bool) {
	idx, ok := m.index[key]
	return idx, ok
}

// cell returns the raw value for a field from one row of cells, or fallback
// when the field is unresolved or the row is short.
func (m ColumnMap) cell(cells []string, key internal.FieldKey, fallback string) string {
	idx, ok := m.index[key]
	if !ok || idx >= len(cells) {
		return fallback
	}
	return cells[idx]
}
