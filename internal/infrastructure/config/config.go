package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	// Timezone is the wall clock used for entry timestamps on new rows.
	Timezone string `env:"TIMEZONE,  default=Asia/Tokyo"`

	Sheets SheetsConfig
}

// SheetsConfig identifies the backing spreadsheet and the service account
// authorized to read and write it.
type SheetsConfig struct {
	SpreadsheetID string `env:"SHEET_ID, required"`
	ProjectID     string `env:"GOOGLE_PROJECT_ID, required"`
	PrivateKey    string `env:"GOOGLE_PRIVATE_KEY, required"`
	ClientEmail   string `env:"GOOGLE_CLIENT_EMAIL, required"`
	// TimesheetGID is the grid id of the TimeSheet sheet, used for
	// positional row deletion.
	TimesheetGID int64 `env:"TIMESHEET_SHEET_GID, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
