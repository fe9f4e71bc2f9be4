package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/footslip/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/footslip/internal/models"
)

// Repository defines the interface for mode controller state storage
type Repository interface {
	// SaveState persists the view state for a session key
	SaveState(ctx context.Context, input *SaveStateInput) error

	// GetState retrieves the view state for a session key
	GetState(ctx context.Context, input *GetStateInput) (*models.ViewState, error)

	// DeleteState removes the view state for a session key
	DeleteState(ctx context.Context, input *DeleteStateInput) error
}
