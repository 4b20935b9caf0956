package service

import (
	"context"

	"github.com/kintai/timesheet-system/internal/core/domain"
	"github.com/kintai/timesheet-system/internal/core/ports"
)

// ReferenceService hands the activity and location masters to the UI.
type ReferenceService struct {
	references ports.ReferenceRepository
}

func NewReferenceService(references ports.ReferenceRepository) *ReferenceService {
	return &ReferenceService{references: references}
}

func (s *ReferenceService) Activities(ctx context.Context) ([]domain.Activity, error) {
	return s.references.ListActivities(ctx)
}

func (s *ReferenceService) Locations(ctx context.Context) ([]string, error) {
	return s.references.ListLocations(ctx)
}
