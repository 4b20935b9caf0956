package sheets

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

// TimeSheet layout. Rows are appended in this column order; reads resolve
// the header by name so column drift is caught early instead of silently
// shifting fields.
const (
	timesheetSheet   = "TimeSheet"
	timesheetRange   = "TimeSheet!A:J"
	timesheetIDRange = "TimeSheet!A:A"

	colDataID     = "DataID"
	colEnteredAt  = "EnteredAt"
	colUserID     = "UserID"
	colUserName   = "UserName"
	colStart      = "Start"
	colEnd        = "End"
	colEngagement = "Engagement"
	colActivity   = "Activity"
	colLocation   = "Location"
	colDetails    = "Details"
)

var timesheetColumns = []string{
	colDataID, colEnteredAt, colUserID, colUserName, colStart,
	colEnd, colEngagement, colActivity, colLocation, colDetails,
}

// EntryRepository stores timesheet rows on the TimeSheet sheet.
type EntryRepository struct {
	client *Client
	// sheetGID is the grid id of the TimeSheet sheet, needed for positional
	// row deletion.
	sheetGID int64
}

func NewEntryRepository(client *Client, sheetGID int64) *EntryRepository {
	return &EntryRepository{client: client, sheetGID: sheetGID}
}

func (r *EntryRepository) List(ctx context.Context) ([]domain.TimeEntry, error) {
	rows, err := r.client.Values(ctx, timesheetRange)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []domain.TimeEntry{}, nil
	}

	cols, err := resolveColumns(rows[0], timesheetColumns...)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.TimeEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		entries = append(entries, domain.TimeEntry{
			ID:         cell(row, cols[colDataID]),
			EnteredAt:  cell(row, cols[colEnteredAt]),
			UserID:     cell(row, cols[colUserID]),
			UserName:   cell(row, cols[colUserName]),
			Start:      cell(row, cols[colStart]),
			End:        cell(row, cols[colEnd]),
			Engagement: cell(row, cols[colEngagement]),
			Activity:   cell(row, cols[colActivity]),
			Location:   cell(row, cols[colLocation]),
			Details:    cell(row, cols[colDetails]),
		})
	}
	return entries, nil
}

func (r *EntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	row := []string{
		id, entry.EnteredAt, entry.UserID, entry.UserName, entry.Start,
		entry.End, entry.Engagement, entry.Activity, entry.Location, entry.Details,
	}
	if err := r.client.Append(ctx, timesheetRange, row); err != nil {
		return nil, fmt.Errorf("append entry: %w", err)
	}

	created := *entry
	created.ID = id
	return &created, nil
}

// nextID allocates max existing numeric id + 1, or "1" on an empty sheet.
// Non-numeric cells in the id column are skipped.
func (r *EntryRepository) nextID(ctx context.Context) (string, error) {
	rows, err := r.client.Values(ctx, timesheetIDRange)
	if err != nil {
		return "", err
	}

	maxID := 0
	seen := false
	for i, row := range rows {
		if i == 0 {
			continue
		}
		n, err := strconv.Atoi(cell(row, 0))
		if err != nil {
			continue
		}
		seen = true
		if n > maxID {
			maxID = n
		}
	}
	if !seen {
		return "1", nil
	}
	return strconv.Itoa(maxID + 1), nil
}

func (r *EntryRepository) Update(ctx context.Context, id string, entry *domain.TimeEntry) error {
	rows, err := r.client.Values(ctx, timesheetRange)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return domain.ErrEntryNotFound
	}

	cols, err := resolveColumns(rows[0],
		colDataID, colStart, colEnd, colEngagement, colActivity, colLocation, colDetails)
	if err != nil {
		return err
	}

	rowIdx := findRow(rows, cols[colDataID], id)
	if rowIdx < 0 {
		return domain.ErrEntryNotFound
	}

	// Rewrite the span from Start through Details in one update, placing
	// each field at its resolved offset.
	first, last := cols[colStart], cols[colStart]
	updated := map[int]string{
		cols[colStart]:      entry.Start,
		cols[colEnd]:        entry.End,
		cols[colEngagement]: entry.Engagement,
		cols[colActivity]:   entry.Activity,
		cols[colLocation]:   entry.Location,
		cols[colDetails]:    entry.Details,
	}
	for idx := range updated {
		if idx < first {
			first = idx
		}
		if idx > last {
			last = idx
		}
	}

	span := make([]string, last-first+1)
	for idx, v := range updated {
		span[idx-first] = v
	}

	rng := fmt.Sprintf("%s!%s%d:%s%d",
		timesheetSheet, columnLetter(first), rowIdx+1, columnLetter(last), rowIdx+1)
	return r.client.Update(ctx, rng, [][]string{span})
}

func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	rows, err := r.client.Values(ctx, timesheetRange)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return domain.ErrEntryNotFound
	}

	cols, err := resolveColumns(rows[0], colDataID)
	if err != nil {
		return err
	}

	rowIdx := findRow(rows, cols[colDataID], id)
	if rowIdx < 0 {
		return domain.ErrEntryNotFound
	}

	return r.client.DeleteRows(ctx, r.sheetGID, rowIdx, rowIdx+1)
}

// findRow returns the zero-based index (header included) of the first data
// row whose key column equals value, or -1.
func findRow(rows [][]string, keyCol int, value string) int {
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if cell(row, keyCol) == value {
			return i
		}
	}
	return -1
}
