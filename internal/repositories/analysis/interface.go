package analysis

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/footslip/internal/repositories/analysis Repository

import (
	"context"

	"github.com/KirkDiggler/footslip/internal/models"
)

// Repository defines the interface for automated analysis storage
type Repository interface {
	// SaveAnalysis persists an analysis
	SaveAnalysis(ctx context.Context, input *SaveAnalysisInput) error

	// GetAnalysis retrieves the analysis for a session key
	GetAnalysis(ctx context.Context, input *GetAnalysisInput) (*models.Analysis, error)

	// DeleteAnalysis removes the analysis for a session key
	DeleteAnalysis(ctx context.Context, input *DeleteAnalysisInput) error
}
