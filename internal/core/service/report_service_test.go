package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

type stubReferenceRepository struct {
	activitiesFn  func(ctx context.Context) ([]domain.Activity, error)
	locationsFn   func(ctx context.Context) ([]string, error)
	engagementsFn func(ctx context.Context) ([]domain.Engagement, error)
}

func (s *stubReferenceRepository) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return s.activitiesFn(ctx)
}

func (s *stubReferenceRepository) ListLocations(ctx context.Context) ([]string, error) {
	return s.locationsFn(ctx)
}

func (s *stubReferenceRepository) ListEngagements(ctx context.Context) ([]domain.Engagement, error) {
	return s.engagementsFn(ctx)
}

func TestReportService_BudgetActuals_JoinsMaster(t *testing.T) {
	entries := &stubEntryRepository{
		listFn: func(ctx context.Context) ([]domain.TimeEntry, error) {
			return []domain.TimeEntry{
				{
					ID: "1", UserID: "7", UserName: "Alice",
					Start: "2025-05-12T09:00:00Z", End: "2025-05-12T10:30:00Z",
					Engagement: "ACME", Activity: "Dev",
				},
			}, nil
		},
	}
	refs := &stubReferenceRepository{
		activitiesFn: func(ctx context.Context) ([]domain.Activity, error) {
			return []domain.Activity{
				{Engagement: "ACME", ID: "A1", Name: "Dev", BudgetHours: 10},
			}, nil
		},
	}
	svc := NewReportService(entries, refs, zerolog.Nop())

	rows, err := svc.BudgetActuals(context.Background())
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.ActivityID != "A1" || row.BudgetCenti != 1000 {
		t.Fatalf("master join failed: %+v", row)
	}
	if row.Month != "2025-05" || row.ActualCenti != 150 {
		t.Fatalf("aggregation wrong: %+v", row)
	}
}

func TestReportService_BudgetActuals_EmptyTimesheetFails(t *testing.T) {
	entries := &stubEntryRepository{
		listFn: func(ctx context.Context) ([]domain.TimeEntry, error) {
			return nil, nil
		},
	}
	refs := &stubReferenceRepository{
		activitiesFn: func(ctx context.Context) ([]domain.Activity, error) {
			t.Fatalf("master should not be read")
			return nil, nil
		},
	}
	svc := NewReportService(entries, refs, zerolog.Nop())

	if _, err := svc.BudgetActuals(context.Background()); !errors.Is(err, domain.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestReportService_BudgetActuals_EmptyMasterTolerated(t *testing.T) {
	entries := &stubEntryRepository{
		listFn: func(ctx context.Context) ([]domain.TimeEntry, error) {
			return []domain.TimeEntry{
				{ID: "1", UserID: "7", Start: "2025-05-12T09:00:00Z", End: "2025-05-12T09:30:00Z", Engagement: "ACME", Activity: "Dev"},
			}, nil
		},
	}
	refs := &stubReferenceRepository{
		activitiesFn: func(ctx context.Context) ([]domain.Activity, error) {
			return nil, domain.ErrNoData
		},
	}
	svc := NewReportService(entries, refs, zerolog.Nop())

	rows, err := svc.BudgetActuals(context.Background())
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if rows[0].BudgetCenti != 0 || rows[0].ActivityID != "" {
		t.Fatalf("expected zero budget on empty master: %+v", rows[0])
	}
}

func TestReportService_MonthlySummary(t *testing.T) {
	entries := &stubEntryRepository{
		listFn: func(ctx context.Context) ([]domain.TimeEntry, error) {
			return []domain.TimeEntry{
				{UserName: "Alice", Start: "2025-05-12T09:00:00Z", End: "2025-05-12T10:00:00Z"},
				{UserName: "Alice", Start: "2025-05-20T09:00:00Z", End: "2025-05-20T09:30:00Z"},
				{UserName: "Bob", Start: "2025-06-01T09:00:00Z", End: "2025-06-01T11:00:00Z"},
			}, nil
		},
	}
	refs := &stubReferenceRepository{}
	svc := NewReportService(entries, refs, zerolog.Nop())

	totals, err := svc.MonthlySummary(context.Background())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(totals))
	}
	if totals[0].UserName != "Alice" || totals[0].Month != "2025-05" || totals[0].TotalHours != 1.5 {
		t.Fatalf("unexpected first group: %+v", totals[0])
	}
	if totals[1].UserName != "Bob" || totals[1].TotalHours != 2 {
		t.Fatalf("unexpected second group: %+v", totals[1])
	}
}
