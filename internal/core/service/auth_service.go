package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kintai/timesheet-system/internal/api/metrics"
	"github.com/kintai/timesheet-system/internal/core/domain"
	"github.com/kintai/timesheet-system/internal/core/ports"
)

// AuthService implements login and password change against the Users sheet.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			metrics.LoginFailuresTotal.Inc()
			// A missing user and a wrong password look the same to the client.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(user.Password, password) {
		metrics.LoginFailuresTotal.Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{UserID: user.ID, Token: token}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if userID == "" || currentPassword == "" || newPassword == "" {
		return domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !verifyPassword(user.Password, currentPassword) {
		return domain.ErrPasswordMismatch
	}

	return s.repo.UpdatePassword(ctx, userID, newPassword)
}

// verifyPassword compares the given password against the stored cell. The
// sheet historically holds plaintext; cells that look like bcrypt hashes are
// verified as such, so rows can be hardened without a code change.
func verifyPassword(stored, given string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
