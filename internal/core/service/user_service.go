package service

import (
	"context"

	"github.com/kintai/timesheet-system/internal/core/domain"
	"github.com/kintai/timesheet-system/internal/core/ports"
)

// UserService exposes role, permission, and engagement reads for a user.
type UserService struct {
	users      ports.UserRepository
	references ports.ReferenceRepository
}

func NewUserService(users ports.UserRepository, references ports.ReferenceRepository) *UserService {
	return &UserService{users: users, references: references}
}

func (s *UserService) Role(ctx context.Context, userID string) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.Role == "" {
		return "", domain.ErrUserNotFound
	}
	return user.Role, nil
}

func (s *UserService) Permissions(ctx context.Context, userID string) (*domain.Permissions, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	perms := user.Permissions
	return &perms, nil
}

// Engagements intersects the engagement master with the names the user is
// permitted to book against, preserving master order and colors.
func (s *UserService) Engagements(ctx context.Context, userID string) ([]domain.Engagement, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	all, err := s.references.ListEngagements(ctx)
	if err != nil {
		return nil, err
	}

	permitted := make(map[string]struct{}, len(user.Engagements))
	for _, name := range user.Engagements {
		permitted[name] = struct{}{}
	}

	filtered := make([]domain.Engagement, 0, len(all))
	for _, eng := range all {
		if _, ok := permitted[eng.Name]; ok {
			filtered = append(filtered, eng)
		}
	}
	return filtered, nil
}
