package ports

import (
	"context"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

// ReferenceService exposes the read-only master data to the UI.
type ReferenceService interface {
	Activities(ctx context.Context) ([]domain.Activity, error)
	Locations(ctx context.Context) ([]string, error)
}
