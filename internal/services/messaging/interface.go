package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/footslip/internal/services/messaging Service

import "context"

// Service is the interface for the commentary shown next to the tallies
type Service interface {
	// GetFallMessage returns a line for a freshly recorded fall
	GetFallMessage(ctx context.Context, input *GetFallMessageInput) (*GetFallMessageOutput, error)

	// GetStatusMessage returns a line describing the current view
	GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error)

	// GetResultsMessage returns the headline for a finished match
	GetResultsMessage(ctx context.Context, input *GetResultsMessageInput) (*GetResultsMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
