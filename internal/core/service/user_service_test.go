package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

func TestUserService_Role_EmptyRoleIsNotFound(t *testing.T) {
	users := &stubUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Role: ""}, nil
		},
	}
	svc := NewUserService(users, &stubReferenceRepository{})

	if _, err := svc.Role(context.Background(), "7"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Role(t *testing.T) {
	users := &stubUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Role: "admin"}, nil
		},
	}
	svc := NewUserService(users, &stubReferenceRepository{})

	role, err := svc.Role(context.Background(), "7")
	if err != nil {
		t.Fatalf("role failed: %v", err)
	}
	if role != "admin" {
		t.Fatalf("expected admin, got %s", role)
	}
}

func TestUserService_Permissions(t *testing.T) {
	users := &stubUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{
				ID:          id,
				Permissions: domain.Permissions{CanViewReport: true},
			}, nil
		},
	}
	svc := NewUserService(users, &stubReferenceRepository{})

	perms, err := svc.Permissions(context.Background(), "7")
	if err != nil {
		t.Fatalf("permissions failed: %v", err)
	}
	if !perms.CanViewReport || perms.CanExportAll {
		t.Fatalf("unexpected permissions: %+v", perms)
	}
}

func TestUserService_Engagements_IntersectsInMasterOrder(t *testing.T) {
	users := &stubUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Engagements: []string{"Gamma", "Alpha"}}, nil
		},
	}
	refs := &stubReferenceRepository{
		engagementsFn: func(ctx context.Context) ([]domain.Engagement, error) {
			return []domain.Engagement{
				{Name: "Alpha", Color: "#111111"},
				{Name: "Beta", Color: "#222222"},
				{Name: "Gamma", Color: domain.DefaultEngagementColor},
			}, nil
		},
	}
	svc := NewUserService(users, refs)

	engagements, err := svc.Engagements(context.Background(), "7")
	if err != nil {
		t.Fatalf("engagements failed: %v", err)
	}
	if len(engagements) != 2 {
		t.Fatalf("expected 2 engagements, got %d", len(engagements))
	}
	// Master order wins over the user's list order.
	if engagements[0].Name != "Alpha" || engagements[1].Name != "Gamma" {
		t.Fatalf("unexpected order: %+v", engagements)
	}
	if engagements[1].Color != domain.DefaultEngagementColor {
		t.Fatalf("color not carried: %+v", engagements[1])
	}
}
