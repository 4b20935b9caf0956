package ports

import "context"

// BudgetActualRow is one aggregated row per timesheet entry. Centi values
// are hours multiplied by 100 and rounded to an integer; consumers that sum
// across rows sum the integers and divide once, which keeps repeated
// summation stable to 0.01h.
type BudgetActualRow struct {
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	Engagement string `json:"engagement"`
	Activity   string `json:"activity"`
	// Month is the UTC calendar year-month of Start ("YYYY-MM"), empty when
	// Start does not parse.
	Month      string `json:"month"`
	ActivityID string `json:"activityId"`

	BudgetHours float64 `json:"budget"`
	BudgetCenti int     `json:"budgetCenti"`

	ActualHours   float64 `json:"actual"`
	ActualCenti   int     `json:"actualCenti"`
	ActualMinutes int     `json:"actualMinutes"`
}

// MonthlyTotal is the per-user, per-month hour total used by the dashboard.
type MonthlyTotal struct {
	UserName   string  `json:"userName"`
	Month      string  `json:"month"`
	TotalHours float64 `json:"totalHours"`
}

// ReportService computes derived report rows from the raw timesheet.
type ReportService interface {
	// BudgetActuals joins the timesheet against the activity master and
	// returns one aggregated row per entry. Fails with domain.ErrNoData when
	// the timesheet has no data rows.
	BudgetActuals(ctx context.Context) ([]BudgetActualRow, error)

	// MonthlySummary returns total hours grouped by user name and month.
	MonthlySummary(ctx context.Context) ([]MonthlyTotal, error)
}
