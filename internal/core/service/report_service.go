package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kintai/timesheet-system/internal/api/metrics"
	"github.com/kintai/timesheet-system/internal/core/domain"
	"github.com/kintai/timesheet-system/internal/core/ports"
)

// ReportService computes budget-vs-actual and monthly summary rows. Both
// reports re-read the sheet on every call; nothing is cached between
// requests.
type ReportService struct {
	entries    ports.EntryRepository
	references ports.ReferenceRepository
	logger     zerolog.Logger
}

func NewReportService(entries ports.EntryRepository, references ports.ReferenceRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{entries: entries, references: references, logger: logger}
}

func (s *ReportService) BudgetActuals(ctx context.Context) ([]ports.BudgetActualRow, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	// A header-only (or empty) timesheet is a hard failure for the whole
	// report, unlike per-row degradation inside the aggregation.
	if len(entries) == 0 {
		return nil, domain.ErrNoData
	}

	master, err := s.references.ListActivities(ctx)
	if err != nil && err != domain.ErrNoData {
		return nil, err
	}

	rows := Aggregate(entries, master)
	metrics.RowsAggregatedTotal.Add(float64(len(rows)))
	s.logger.Debug().Int("rows", len(rows)).Msg("budget-actuals computed")
	return rows, nil
}

func (s *ReportService) MonthlySummary(ctx context.Context) ([]ports.MonthlyTotal, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	return SummarizeMonthly(entries), nil
}
