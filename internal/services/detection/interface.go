package detection

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/footslip/internal/services/detection Detector,Service

import (
	"context"

	"github.com/KirkDiggler/footslip/internal/models"
)

// Service defines the interface for the automated detection flow
type Service interface {
	// GetAnalysis returns the analysis state, idle if none exists
	GetAnalysis(ctx context.Context, input *GetAnalysisInput) (*GetAnalysisOutput, error)

	// SelectFile records the file to analyze if it is a video
	SelectFile(ctx context.Context, input *SelectFileInput) (*SelectFileOutput, error)

	// RunAnalysis plays the scripted progress sequence and blocks until the detector result is ready
	RunAnalysis(ctx context.Context, input *RunAnalysisInput) (*RunAnalysisOutput, error)

	// StartAnalysis runs the analysis in the background
	StartAnalysis(ctx context.Context, input *StartAnalysisInput) (*StartAnalysisOutput, error)

	// DiscardSession cancels any run and forgets the analysis
	DiscardSession(ctx context.Context, input *DiscardSessionInput) (*DiscardSessionOutput, error)
}

// Detector turns a video into per-player fall counts
type Detector interface {
	Detect(ctx context.Context, file *models.VideoFile) (*models.SessionResult, error)
}
