package ports

import (
	"context"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

// ReferenceRepository reads the read-only master sheets.
type ReferenceRepository interface {
	// ListActivities returns the activity master. Returns domain.ErrNoData
	// when the sheet holds nothing beyond its header.
	ListActivities(ctx context.Context) ([]domain.Activity, error)

	// ListLocations returns the configured work locations. Returns
	// domain.ErrNoData when empty.
	ListLocations(ctx context.Context) ([]string, error)

	// ListEngagements returns every engagement with its display color.
	ListEngagements(ctx context.Context) ([]domain.Engagement, error)
}
