package ports

import (
	"context"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

// UserService exposes the per-user reads the UI needs after login.
type UserService interface {
	Role(ctx context.Context, userID string) (string, error)
	Permissions(ctx context.Context, userID string) (*domain.Permissions, error)

	// Engagements returns the engagement master filtered down to the names
	// the user is permitted to book time against.
	Engagements(ctx context.Context, userID string) ([]domain.Engagement, error)
}
