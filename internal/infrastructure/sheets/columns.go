package sheets

import (
	"fmt"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

// resolveColumns maps each required header name to its zero-based column
// index via first-match exact comparison. A missing name is a configuration
// error — the sheet's shape no longer matches the application — and is
// reported through domain.ErrMissingColumn, distinct from "no data rows".
// Duplicate headers are not supported; the first occurrence wins.
func resolveColumns(header []string, names ...string) (map[string]int, error) {
	cols := make(map[string]int, len(names))
	for _, name := range names {
		idx := -1
		for i, h := range header {
			if h == name {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, fmt.Errorf("%w: %q", domain.ErrMissingColumn, name)
		}
		cols[name] = idx
	}
	return cols, nil
}

// cell reads a column defensively: the API omits trailing empty cells, so
// short rows are normal.
func cell(row []string, idx int) string {
	if idx >= 0 && idx < len(row) {
		return row[idx]
	}
	return ""
}

// columnLetter converts a zero-based column index to A1 notation
// (0 -> "A", 25 -> "Z", 26 -> "AA").
func columnLetter(idx int) string {
	letter := ""
	for idx >= 0 {
		letter = string(rune('A'+idx%26)) + letter
		idx = idx/26 - 1
	}
	return letter
}
