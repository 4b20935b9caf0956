package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/kintai/timesheet-system/internal/core/domain"
)

// Users sheet layout.
const (
	usersSheet = "Users"
	usersRange = "Users!A:Z"

	colUserEmail      = "Email"
	colUserPassword   = "Password"
	colUserRole       = "UserRole"
	colUserEngagement = "Engagements"
	colExportAll      = "ExportAll"
	colViewReport     = "ViewReport"
	colViewUserReport = "ViewUserReport"
	colViewDashboard  = "ViewDashboard"
)

var userColumns = []string{
	colUserID, colUserEmail, colUserPassword, colUserRole, colUserName,
	colUserEngagement, colExportAll, colViewReport, colViewUserReport, colViewDashboard,
}

// UserRepository reads and mutates the Users sheet.
type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(ctx, colUserEmail, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.find(ctx, colUserID, id)
}

func (r *UserRepository) find(ctx context.Context, keyColumn, value string) (*domain.User, error) {
	rows, cols, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := findRow(rows, cols[keyColumn], value)
	if idx < 0 {
		return nil, domain.ErrUserNotFound
	}
	return rowToUser(rows[idx], cols), nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	rows, cols, err := r.load(ctx)
	if err != nil {
		return err
	}

	idx := findRow(rows, cols[colUserID], userID)
	if idx < 0 {
		return domain.ErrUserNotFound
	}

	rng := fmt.Sprintf("%s!%s%d", usersSheet, columnLetter(cols[colUserPassword]), idx+1)
	return r.client.Update(ctx, rng, [][]string{{newPassword}})
}

// load fetches the whole Users range and resolves the layout once per
// request.
func (r *UserRepository) load(ctx context.Context) ([][]string, map[string]int, error) {
	rows, err := r.client.Values(ctx, usersRange)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, domain.ErrNoData
	}

	cols, err := resolveColumns(rows[0], userColumns...)
	if err != nil {
		return nil, nil, err
	}
	return rows, cols, nil
}

func rowToUser(row []string, cols map[string]int) *domain.User {
	return &domain.User{
		ID:          cell(row, cols[colUserID]),
		Email:       cell(row, cols[colUserEmail]),
		Password:    cell(row, cols[colUserPassword]),
		Name:        cell(row, cols[colUserName]),
		Role:        cell(row, cols[colUserRole]),
		Engagements: splitEngagements(cell(row, cols[colUserEngagement])),
		Permissions: domain.Permissions{
			CanExportAll:      parseFlag(cell(row, cols[colExportAll])),
			CanViewReport:     parseFlag(cell(row, cols[colViewReport])),
			CanViewUserReport: parseFlag(cell(row, cols[colViewUserReport])),
			CanViewDashboard:  parseFlag(cell(row, cols[colViewDashboard])),
		},
	}
}

// splitEngagements parses the comma-separated permitted engagement names.
func splitEngagements(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// parseFlag matches the sheet's TRUE/FALSE cells; anything but TRUE is off.
func parseFlag(v string) bool {
	return strings.ToUpper(strings.TrimSpace(v)) == "TRUE"
}
