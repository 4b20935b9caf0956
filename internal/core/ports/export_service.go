package ports

import "context"

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ExportInput selects the rows and format of a timesheet export.
type ExportInput struct {
	// UserID limits the export to one user's rows; empty exports everyone.
	UserID string
	// StartDate and EndDate bound the export, inclusive, as "YYYY-MM-DD".
	StartDate string
	EndDate   string
	Format    string
}

// ExportFile is a generated attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders filtered timesheet rows as a downloadable file.
type ExportService interface {
	Export(ctx context.Context, in ExportInput) (*ExportFile, error)
}
