package results

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/footslip/internal/services/results Service

import "context"

// Service defines the interface for the results view
type Service interface {
	// GetReport derives the statistics shown for a session result
	GetReport(ctx context.Context, input *GetReportInput) (*GetReportOutput, error)

	// Export builds the JSON summary document and its file name
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)

	// SaveExport writes the JSON summary into a directory
	SaveExport(ctx context.Context, input *SaveExportInput) (*SaveExportOutput, error)
}
