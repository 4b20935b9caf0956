package ports

import (
	"context"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

// UserRepository reads and mutates rows of the Users sheet.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, newPassword string) error
}
