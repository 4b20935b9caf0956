package domain

// Activity is one row of the activity master: a task type within an
// engagement carrying a planned hour allocation. An activity name is unique
// within an engagement.
type Activity struct {
	Engagement  string  `json:"engagement"`
	ID          string  `json:"activity_id"`
	Name        string  `json:"activity"`
	BudgetHours float64 `json:"budget"`
}

// Engagement is a client/project grouping. Color is the calendar display
// color configured on the Engagements sheet.
type Engagement struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DefaultEngagementColor is used when the color cell is blank.
const DefaultEngagementColor = "#3788d8"
