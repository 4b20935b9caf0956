package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrPasswordMismatch = errors.New("current password is incorrect")
var ErrForbidden = errors.New("access forbidden")

// Permissions are the per-user capability flags stored as TRUE/FALSE cells
// on the Users sheet.
type Permissions struct {
	CanExportAll      bool `json:"canExportAll"`
	CanViewReport     bool `json:"canViewReport"`
	CanViewUserReport bool `json:"canViewUserReport"`
	CanViewDashboard  bool `json:"canViewDashboard"`
}

// User models a row of the Users sheet. Password holds the cell value as
// stored; it never leaves the service.
type User struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	Password    string      `json:"-"`
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Engagements []string    `json:"engagements,omitempty"`
	Permissions Permissions `json:"permissions"`
}
