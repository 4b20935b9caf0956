package service

import (
	"math"
	"time"

	"github.com/kintai/timesheet-system/internal/core/domain"
	"github.com/kintai/timesheet-system/internal/core/ports"
)

// sheetTimeLayouts are the timestamp shapes the spreadsheet is known to
// contain. Cells are free text; anything else fails to parse and degrades
// the row instead of the request.
var sheetTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseSheetTime parses a raw timestamp cell.
func parseSheetTime(s string) (time.Time, bool) {
	for _, layout := range sheetTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// elapsedMinutes is round((end-start)/60000) clamped to zero. Rounding comes
// first so a -20s entry counts as 0, not -1. Inverted ranges are malformed
// input; they collapse to zero minutes rather than going negative.
func elapsedMinutes(start, end time.Time) int {
	m := int(math.Round(end.Sub(start).Minutes()))
	if m < 0 {
		return 0
	}
	return m
}

// monthOf buckets a timestamp into its UTC calendar year-month.
func monthOf(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// hoursToCenti converts decimal hours to integer centi-hours.
func hoursToCenti(hours float64) int {
	return int(math.Round(hours * 100))
}

// minutesToCenti converts whole minutes to integer centi-hours. Going
// through the integer intermediate keeps sums over many rows exact to 0.01h:
// three 20-minute entries make exactly 100 centi-hours, where summing three
// pre-rounded 0.33h values would not.
func minutesToCenti(minutes int) int {
	return int(math.Round(float64(minutes) * 100 / 60))
}

type activityKey struct {
	engagement string
	activity   string
}

// indexActivities builds the (engagement, activity) lookup over the master.
// First occurrence wins on duplicates.
func indexActivities(master []domain.Activity) map[activityKey]domain.Activity {
	index := make(map[activityKey]domain.Activity, len(master))
	for _, a := range master {
		k := activityKey{engagement: a.Engagement, activity: a.Name}
		if _, seen := index[k]; !seen {
			index[k] = a
		}
	}
	return index
}

// Aggregate turns raw timesheet entries plus the activity master into one
// budget-vs-actual row per entry. Rows are emitted one-to-one and never
// pre-grouped; grouping by activity or month is a presentation concern.
//
// Degradation rules: an unparseable Start leaves the month empty, an
// unparseable Start or End leaves minutes at zero, and a master miss leaves
// the budget at zero with an empty activity id. No row is ever dropped.
func Aggregate(entries []domain.TimeEntry, master []domain.Activity) []ports.BudgetActualRow {
	index := indexActivities(master)

	rows := make([]ports.BudgetActualRow, 0, len(entries))
	for _, e := range entries {
		var minutes int
		var month string

		start, startOK := parseSheetTime(e.Start)
		end, endOK := parseSheetTime(e.End)
		if startOK {
			month = monthOf(start)
		}
		if startOK && endOK {
			minutes = elapsedMinutes(start, end)
		}

		meta := index[activityKey{engagement: e.Engagement, activity: e.Activity}]
		actualCenti := minutesToCenti(minutes)

		rows = append(rows, ports.BudgetActualRow{
			UserID:        e.UserID,
			UserName:      e.UserName,
			Engagement:    e.Engagement,
			Activity:      e.Activity,
			Month:         month,
			ActivityID:    meta.ID,
			BudgetHours:   meta.BudgetHours,
			BudgetCenti:   hoursToCenti(meta.BudgetHours),
			ActualHours:   float64(actualCenti) / 100,
			ActualCenti:   actualCenti,
			ActualMinutes: minutes,
		})
	}
	return rows
}

// SummarizeMonthly totals hours per (user name, month). Minutes are summed
// as integers and converted to hours once at the end. Rows with no user name
// or with timestamps that do not parse are skipped. Output order follows
// first appearance in the input.
func SummarizeMonthly(entries []domain.TimeEntry) []ports.MonthlyTotal {
	type groupKey struct {
		userName string
		month    string
	}

	totals := make(map[groupKey]int)
	var order []groupKey

	for _, e := range entries {
		if e.UserName == "" {
			continue
		}
		start, startOK := parseSheetTime(e.Start)
		end, endOK := parseSheetTime(e.End)
		if !startOK || !endOK {
			continue
		}

		k := groupKey{userName: e.UserName, month: monthOf(start)}
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += elapsedMinutes(start, end)
	}

	out := make([]ports.MonthlyTotal, 0, len(order))
	for _, k := range order {
		out = append(out, ports.MonthlyTotal{
			UserName:   k.userName,
			Month:      k.month,
			TotalHours: float64(minutesToCenti(totals[k])) / 100,
		})
	}
	return out
}
