package ports

import (
	"context"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

// CreateEntryInput carries the user-supplied fields of a new timesheet row.
// The id, entry timestamp, and denormalized user name are assigned by the
// service.
type CreateEntryInput struct {
	UserID     string
	Start      string
	End        string
	Engagement string
	Activity   string
	Location   string
	Details    string
}

// UpdateEntryInput carries the mutable fields of an existing row.
type UpdateEntryInput struct {
	Start      string
	End        string
	Engagement string
	Activity   string
	Location   string
	Details    string
}

// EntryService defines timesheet CRUD use cases.
type EntryService interface {
	List(ctx context.Context) ([]domain.TimeEntry, error)
	Create(ctx context.Context, in CreateEntryInput) (*domain.TimeEntry, error)
	Update(ctx context.Context, id string, in UpdateEntryInput) error
	Delete(ctx context.Context, id string) error
}
