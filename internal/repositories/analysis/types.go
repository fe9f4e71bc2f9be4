package analysis

import (
	"errors"

	"github.com/KirkDiggler/footslip/internal/models"
)

// ErrAnalysisNotFound is returned when a session key has no analysis
var ErrAnalysisNotFound = errors.New("analysis not found")

type SaveAnalysisInput struct {
	Analysis *models.Analysis
}

type GetAnalysisInput struct {
	SessionID string
}

type DeleteAnalysisInput struct {
	SessionID string
}
