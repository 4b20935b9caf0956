package domain

import "errors"

var ErrEntryNotFound = errors.New("entry not found")
var ErrNoData = errors.New("no data rows")
var ErrMissingColumn = errors.New("required column not found")

// TimeEntry is a single timesheet row as stored in the spreadsheet.
// Start and End are kept verbatim; the sheet is the source of truth and
// malformed timestamps must survive a round trip (they degrade during
// aggregation instead of failing it).
type TimeEntry struct {
	ID         string `json:"id"`
	EnteredAt  string `json:"enteredAt,omitempty"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Engagement string `json:"engagement"`
	Activity   string `json:"activity"`
	Location   string `json:"location"`
	Details    string `json:"details"`
}
