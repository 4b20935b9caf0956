package sheets

import (
	"errors"
	"testing"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

func TestResolveColumns(t *testing.T) {
	header := []string{"DataID", "Start", "End", "Start"}

	cols, err := resolveColumns(header, "Start", "DataID")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	// First occurrence wins on duplicate headers.
	if cols["Start"] != 1 || cols["DataID"] != 0 {
		t.Fatalf("unexpected mapping: %+v", cols)
	}
}

func TestResolveColumns_Missing(t *testing.T) {
	_, err := resolveColumns([]string{"DataID"}, "DataID", "Start")
	if !errors.Is(err, domain.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	if err.Error() != `required column not found: "Start"` {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestResolveColumns_ExactMatchOnly(t *testing.T) {
	_, err := resolveColumns([]string{"dataid", " DataID"}, "DataID")
	if !errors.Is(err, domain.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn for case/space variants, got %v", err)
	}
}

func TestCell_ShortRow(t *testing.T) {
	row := []string{"a", "b"}
	if got := cell(row, 1); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := cell(row, 5); got != "" {
		t.Fatalf("expected empty for out-of-range, got %q", got)
	}
	if got := cell(row, -1); got != "" {
		t.Fatalf("expected empty for negative, got %q", got)
	}
}

func TestColumnLetter(t *testing.T) {
	cases := map[int]string{
		0:   "A",
		1:   "B",
		25:  "Z",
		26:  "AA",
		27:  "AB",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}
	for idx, want := range cases {
		if got := columnLetter(idx); got != want {
			t.Errorf("columnLetter(%d) = %q, want %q", idx, got, want)
		}
	}
}
