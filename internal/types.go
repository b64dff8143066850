package internal

// FieldKey is a logical tracker field, independent of the header text a given
// upload uses for it.
type FieldKey string

const (
	FieldProjectNumber   FieldKey = "project_number"
	FieldProjectName     FieldKey = "project_name"
	FieldProjectCategory FieldKey = "project_category"
	FieldProjectStatus   FieldKey = "project_status"
	FieldGM              FieldKey = "gm"
	FieldDirector        FieldKey = "director"
	FieldOperationalLead FieldKey = "operational_lead"
	FieldContractEndDate FieldKey = "contract_end_date"
	FieldDaysRemaining   FieldKey = "days_remaining"
	FieldBudgetSpent     FieldKey = "budget_spent"
	FieldBudgetRemaining FieldKey = "budget_remaining"
	FieldTimelineActual  FieldKey = "timeline_actual"
	FieldTimelinePlanned FieldKey = "timeline_planned"
	FieldKPI             FieldKey = "kpi"
	FieldServicePerf     FieldKey = "service_performance"
	FieldProjectHealth   FieldKey = "project_health"
	FieldIssues          FieldKey = "issues"
	FieldRisks           FieldKey = "risks"
	FieldCurrentActs     FieldKey = "current_activities"
	FieldFutureActs      FieldKey = "future_activities"
	FieldComments        FieldKey = "comments"
	FieldVendor          FieldKey = "vendor"
)

// Placeholder is substituted for blank or placeholder-phrase text fields.
const Placeholder = "[To be provided]"

// EndDateUnknown is the display sentinel for a missing or unparsable contract
// end date.
const EndDateUnknown = "[TBD]"

type HealthLevel string

const (
	HealthPositive HealthLevel = "positive"
	HealthCaution  HealthLevel = "caution"
	HealthNegative HealthLevel = "negative"
	HealthUnknown  HealthLevel = "unknown"
)

// ProjectRecord is the normalized output of one tracker row. All derived
// fields are computed at extraction; renderers treat records read-only.
type ProjectRecord struct {
	Number   string
	Name     string
	Category string
	Status   string

	GM              string
	Director        string
	OperationalLead string
	Vendor          string

	ContractEndDate string
	DaysRemaining   int

	BudgetSpent        float64
	BudgetRemaining    float64
	BudgetTotal        float64
	BudgetSpentPct     float64
	BudgetRemainingPct float64

	TimelineActual   float64
	TimelinePlanned  float64
	ScheduleVariance float64

	KPI         string
	ServicePerf string
	Health      string
	HealthLevel HealthLevel

	Issues      string
	Risks       string
	CurrentActs string
	FutureActs  string
	Comments    string
}
