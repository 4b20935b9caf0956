package sheets

import (
	"context"
	"strconv"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

// Master data layouts.
const (
	activitiesRange  = "Activities!A:D"
	locationsRange   = "Locations!A2:A"
	engagementsRange = "Engagements!A2:B"

	colActivityID  = "ActivityID"
	colBudgetHours = "BudgetHours"
)

// ReferenceRepository reads the read-only master sheets.
type ReferenceRepository struct {
	client *Client
}

func NewReferenceRepository(client *Client) *ReferenceRepository {
	return &ReferenceRepository{client: client}
}

func (r *ReferenceRepository) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	rows, err := r.client.Values(ctx, activitiesRange)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, domain.ErrNoData
	}

	cols, err := resolveColumns(rows[0], colEngagement, colActivityID, colActivity, colBudgetHours)
	if err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, 0, len(rows)-1)
	for _, row := range rows[1:] {
		activities = append(activities, domain.Activity{
			Engagement:  cell(row, cols[colEngagement]),
			ID:          cell(row, cols[colActivityID]),
			Name:        cell(row, cols[colActivity]),
			BudgetHours: parseBudget(cell(row, cols[colBudgetHours])),
		})
	}
	return activities, nil
}

func (r *ReferenceRepository) ListLocations(ctx context.Context) ([]string, error) {
	rows, err := r.client.Values(ctx, locationsRange)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNoData
	}

	locations := make([]string, 0, len(rows))
	for _, row := range rows {
		if name := cell(row, 0); name != "" {
			locations = append(locations, name)
		}
	}
	if len(locations) == 0 {
		return nil, domain.ErrNoData
	}
	return locations, nil
}

func (r *ReferenceRepository) ListEngagements(ctx context.Context) ([]domain.Engagement, error) {
	rows, err := r.client.Values(ctx, engagementsRange)
	if err != nil {
		return nil, err
	}

	engagements := make([]domain.Engagement, 0, len(rows))
	for _, row := range rows {
		name := cell(row, 0)
		if name == "" {
			continue
		}
		color := cell(row, 1)
		if color == "" {
			color = domain.DefaultEngagementColor
		}
		engagements = append(engagements, domain.Engagement{Name: name, Color: color})
	}
	return engagements, nil
}

// parseBudget tolerates blank and malformed budget cells, defaulting to 0.
func parseBudget(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
