package detection

import (
	"context"

	"github.com/KirkDiggler/footslip/internal/models"
)

// MockMatchDuration is the duration reported by MockDetector, a full 90 minutes
const MockMatchDuration = 5400

// MockDetector returns the same result for every file without reading it
type MockDetector struct{}

// NewMockDetector creates the placeholder detector
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// Detect returns five numbered players and ten falls over 90 minutes
func (d *MockDetector) Detect(ctx context.Context, file *models.VideoFile) (*models.SessionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return models.NewSessionResult([]models.Player{
		{ID: "1", Name: "Player #10", Falls: 3},
		{ID: "2", Name: "Player #7", Falls: 1},
		{ID: "3", Name: "Player #23", Falls: 2},
		{ID: "4", Name: "Player #15", Falls: 0},
		{ID: "5", Name: "Player #9", Falls: 4},
	}, MockMatchDuration), nil
}
