package results

import (
	"github.com/KirkDiggler/footslip/internal/common/clock"
	"github.com/KirkDiggler/footslip/internal/models"
)

const (
	// FileNamePrefix starts every export file name
	FileNamePrefix = "footslip-results-"

	// GeneratedAtLayout is ISO-8601 in UTC with milliseconds
	GeneratedAtLayout = "2006-01-02T15:04:05.000Z"
)

// Config holds the dependencies of the results service
type Config struct {
	// Clock stamps exports
	Clock clock.Clock
}

type GetReportInput struct {
	Result *models.SessionResult
}

type GetReportOutput struct {
	Report *models.Report
}

type ExportInput struct {
	Result *models.SessionResult
}

type ExportOutput struct {
	Summary *models.Summary

	// Data is the encoded document
	Data []byte

	// FileName is footslip-results-<unix ms>.json
	FileName string
}

type SaveExportInput struct {
	Result *models.SessionResult
	Dir    string
}

type SaveExportOutput struct {
	// Path is where the document was written
	Path     string
	FileName string
}
