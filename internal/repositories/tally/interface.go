package tally

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/footslip/internal/repositories/tally Repository

import (
	"context"

	"github.com/KirkDiggler/footslip/internal/models"
)

// Repository defines the interface for manual session storage
type Repository interface {
	// SaveSession persists a manual session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a manual session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.ManualSession, error)

	// DeleteSession removes a manual session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
