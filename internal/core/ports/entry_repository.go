package ports

import (
	"context"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

// EntryRepository persists timesheet rows in the row store.
type EntryRepository interface {
	// List returns every data row of the timesheet range. An empty sheet
	// (header only, or nothing at all) yields an empty slice, not an error;
	// callers that require data decide what "no data" means.
	List(ctx context.Context) ([]domain.TimeEntry, error)

	// Create appends the entry and assigns it the next free id
	// (max existing numeric id + 1, "1" on an empty sheet). The stored
	// entry, with its id set, is returned.
	Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error)

	// Update rewrites the Start..Details cells of the row whose id matches.
	Update(ctx context.Context, id string, entry *domain.TimeEntry) error

	// Delete removes the row whose id matches by positional deletion.
	Delete(ctx context.Context, id string) error
}
