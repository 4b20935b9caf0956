package ports

import "context"

// LoginResult is returned on a successful credential check.
type LoginResult struct {
	UserID string
	Token  string
}

// AuthService defines credential operations.
type AuthService interface {
	// Login compares the given credentials against the Users sheet and, on
	// an exact match, returns the user id plus a signed session token.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// ChangePassword verifies the current password and writes the new one.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
