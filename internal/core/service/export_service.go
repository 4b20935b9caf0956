package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/kintai/timesheet-system/internal/api/metrics"
	"github.com/kintai/timesheet-system/internal/core/domain"
	"github.com/kintai/timesheet-system/internal/core/ports"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	utf8BOM         = "\uFEFF"
	exportSheetName = "Timesheet"
)

// exportHeaders is the column order of generated files: the stored row minus
// the entry timestamp, plus the derived Date and Hours columns.
var exportHeaders = []string{
	"DataID", "UserID", "UserName", "Start", "End",
	"Engagement", "Activity", "Location", "Details", "Date", "Hours",
}

// ExportService renders filtered timesheet rows as CSV or XLSX attachments.
type ExportService struct {
	entries ports.EntryRepository
	logger  zerolog.Logger
}

func NewExportService(entries ports.EntryRepository, logger zerolog.Logger) *ExportService {
	return &ExportService{entries: entries, logger: logger}
}

func (s *ExportService) Export(ctx context.Context, in ports.ExportInput) (*ports.ExportFile, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrNoData
	}

	rows := filterExportRows(entries, in)
	if len(rows) == 0 {
		return nil, domain.ErrNoData
	}

	format := in.Format
	if format == "" {
		format = ports.FormatCSV
	}

	var data []byte
	var contentType string
	switch format {
	case ports.FormatXLSX:
		data, err = renderXLSX(rows)
		if err != nil {
			return nil, err
		}
		contentType = xlsxContentType
	case ports.FormatCSV:
		data = renderCSV(rows)
		contentType = csvContentType
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}

	metrics.ExportsTotal.WithLabelValues(format).Inc()
	s.logger.Info().Int("rows", len(rows)).Str("format", format).Msg("export generated")

	return &ports.ExportFile{
		Filename:    fmt.Sprintf("export_%s_%s.%s", in.StartDate, in.EndDate, format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// filterExportRows applies the user and date-range filter and derives the
// Date and Hours columns. Rows whose timestamps do not parse are excluded:
// they cannot be compared against the range.
func filterExportRows(entries []domain.TimeEntry, in ports.ExportInput) [][]string {
	var rows [][]string
	for _, e := range entries {
		if in.UserID != "" && e.UserID != in.UserID {
			continue
		}

		start, startOK := parseSheetTime(e.Start)
		end, endOK := parseSheetTime(e.End)
		if !startOK || !endOK {
			continue
		}

		startDate := start.UTC().Format("2006-01-02")
		endDate := end.UTC().Format("2006-01-02")
		if startDate < in.StartDate || endDate > in.EndDate {
			continue
		}

		rows = append(rows, []string{
			e.ID, e.UserID, e.UserName, e.Start, e.End,
			e.Engagement, e.Activity, e.Location, e.Details,
			startDate, quarterHours(start, end),
		})
	}
	return rows
}

// quarterHours formats the elapsed time rounded to the nearest quarter hour
// with two decimals, e.g. 100 minutes -> "1.75".
func quarterHours(start, end time.Time) string {
	hours := end.Sub(start).Minutes() / 60
	return fmt.Sprintf("%.2f", math.Round(hours*4)/4)
}

// renderCSV writes a UTF-8 CSV with a byte-order mark so spreadsheet tools
// detect the encoding. Every field is quoted.
func renderCSV(rows [][]string) []byte {
	var b strings.Builder
	b.WriteString(utf8BOM)
	writeCSVLine(&b, exportHeaders)
	for _, row := range rows {
		writeCSVLine(&b, row)
	}
	return []byte(b.String())
}

func writeCSVLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func renderXLSX(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheetName, cell, &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
