package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

type stubUserRepository struct {
	findByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn       func(ctx context.Context, id string) (*domain.User, error)
	updatePasswordFn func(ctx context.Context, userID, newPassword string) error
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserRepository) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	return s.updatePasswordFn(ctx, userID, newPassword)
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &stubUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email != "alice@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return &domain.User{ID: "7", Email: email, Password: "secret"}, nil
		},
	}
	svc := NewAuthService(repo, "test-secret", time.Hour)

	result, err := svc.Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.UserID != "7" {
		t.Fatalf("expected user id 7, got %s", result.UserID)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["user_id"] != "7" {
		t.Fatalf("expected user_id claim 7, got %v", claims["user_id"])
	}
	if claims["email"] != "alice@example.com" {
		t.Fatalf("expected email claim, got %v", claims["email"])
	}
}

func TestAuthService_Login_BcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &stubUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "7", Email: email, Password: string(hash)}, nil
		},
	}
	svc := NewAuthService(repo, "test-secret", time.Hour)

	if _, err := svc.Login(context.Background(), "alice@example.com", "secret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &stubUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "7", Email: email, Password: "secret"}, nil
		},
	}
	svc := NewAuthService(repo, "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), "alice@example.com", "nope")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	repo := &stubUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	svc := NewAuthService(repo, "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), "nobody@example.com", "secret")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	repo := &stubUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			t.Fatalf("repo should not be called")
			return nil, nil
		},
	}
	svc := NewAuthService(repo, "test-secret", time.Hour)

	if _, err := svc.Login(context.Background(), "", "secret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.c", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	var written string
	repo := &stubUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Password: "old"}, nil
		},
		updatePasswordFn: func(ctx context.Context, userID, newPassword string) error {
			written = newPassword
			return nil
		},
	}
	svc := NewAuthService(repo, "test-secret", time.Hour)

	if err := svc.ChangePassword(context.Background(), "7", "old", "new"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if written != "new" {
		t.Fatalf("expected new password written, got %q", written)
	}
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	repo := &stubUserRepository{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Password: "old"}, nil
		},
		updatePasswordFn: func(ctx context.Context, userID, newPassword string) error {
			t.Fatalf("should not write")
			return nil
		},
	}
	svc := NewAuthService(repo, "test-secret", time.Hour)

	err := svc.ChangePassword(context.Background(), "7", "wrong", "new")
	if !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}
