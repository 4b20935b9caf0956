package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/kintai/timesheet-system/internal/core/domain"
	"github.com/kintai/timesheet-system/internal/core/ports"
)

func exportFixture() *stubEntryRepository {
	return &stubEntryRepository{
		listFn: func(ctx context.Context) ([]domain.TimeEntry, error) {
			return []domain.TimeEntry{
				{
					ID: "1", UserID: "7", UserName: "Alice",
					Start: "2025-05-12T09:00:00Z", End: "2025-05-12T10:40:00Z",
					Engagement: "ACME", Activity: "Dev", Location: "Office",
					Details: `said "hi"`,
				},
				{
					ID: "2", UserID: "8", UserName: "Bob",
					Start: "2025-05-13T09:00:00Z", End: "2025-05-13T09:30:00Z",
					Engagement: "ACME", Activity: "QA",
				},
				{
					ID: "3", UserID: "7", UserName: "Alice",
					Start: "not a date", End: "2025-05-14T09:00:00Z",
					Engagement: "ACME", Activity: "Dev",
				},
				{
					ID: "4", UserID: "7", UserName: "Alice",
					Start: "2025-06-01T09:00:00Z", End: "2025-06-01T10:00:00Z",
					Engagement: "ACME", Activity: "Dev",
				},
			}, nil
		},
	}
}

func TestExportService_CSV(t *testing.T) {
	svc := NewExportService(exportFixture(), zerolog.Nop())

	file, err := svc.Export(context.Background(), ports.ExportInput{
		StartDate: "2025-05-01",
		EndDate:   "2025-05-31",
		Format:    ports.FormatCSV,
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if file.Filename != "export_2025-05-01_2025-05-31.csv" {
		t.Fatalf("unexpected filename: %s", file.Filename)
	}

	body := string(file.Data)
	if !strings.HasPrefix(body, "\uFEFF") {
		t.Fatalf("missing UTF-8 BOM")
	}

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(body, "\uFEFF"), "\n"), "\n")
	// Header plus rows 1 and 2: row 3 has an unparseable start, row 4 is
	// outside the range.
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != `"DataID","UserID","UserName","Start","End","Engagement","Activity","Location","Details","Date","Hours"` {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	// 100 minutes rounds to the nearest quarter hour: 1.75.
	if !strings.Contains(lines[1], `"2025-05-12","1.75"`) {
		t.Fatalf("derived columns wrong: %s", lines[1])
	}
	// Embedded quotes are doubled.
	if !strings.Contains(lines[1], `"said ""hi"""`) {
		t.Fatalf("quote escaping wrong: %s", lines[1])
	}
}

func TestExportService_UserFilter(t *testing.T) {
	svc := NewExportService(exportFixture(), zerolog.Nop())

	file, err := svc.Export(context.Background(), ports.ExportInput{
		UserID:    "8",
		StartDate: "2025-05-01",
		EndDate:   "2025-05-31",
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if strings.Contains(string(file.Data), "Alice") {
		t.Fatalf("filter leaked other users")
	}
}

func TestExportService_XLSX(t *testing.T) {
	svc := NewExportService(exportFixture(), zerolog.Nop())

	file, err := svc.Export(context.Background(), ports.ExportInput{
		StartDate: "2025-05-01",
		EndDate:   "2025-05-31",
		Format:    ports.FormatXLSX,
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if file.Filename != "export_2025-05-01_2025-05-31.xlsx" {
		t.Fatalf("unexpected filename: %s", file.Filename)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("Timesheet")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "DataID" || rows[1][2] != "Alice" {
		t.Fatalf("unexpected cells: %+v", rows[:2])
	}
}

func TestExportService_NoMatchingRows(t *testing.T) {
	svc := NewExportService(exportFixture(), zerolog.Nop())

	_, err := svc.Export(context.Background(), ports.ExportInput{
		StartDate: "2030-01-01",
		EndDate:   "2030-12-31",
	})
	if !errors.Is(err, domain.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestExportService_UnsupportedFormat(t *testing.T) {
	svc := NewExportService(exportFixture(), zerolog.Nop())

	_, err := svc.Export(context.Background(), ports.ExportInput{
		StartDate: "2025-05-01",
		EndDate:   "2025-05-31",
		Format:    "pdf",
	})
	if err == nil || !strings.Contains(err.Error(), "unsupported export format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}
