package mode

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/footslip/internal/services/mode Service,ViewService

import "context"

// Service defines the interface for the view mode controller
type Service interface {
	// GetState returns the current view state, landing for an unseen session
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// SelectMode moves from landing to manual or automatic
	SelectMode(ctx context.Context, input *SelectModeInput) (*SelectModeOutput, error)

	// GoHome returns to landing from any mode, discarding the result
	GoHome(ctx context.Context, input *GoHomeInput) (*GoHomeOutput, error)

	// Complete hands a session result from a counting mode to the results view
	Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error)

	// NewSession leaves the results view for a fresh landing screen
	NewSession(ctx context.Context, input *NewSessionInput) (*NewSessionOutput, error)
}

// ViewService is implemented by the state owners of the counting views.
// The controller calls Teardown when their view is left.
type ViewService interface {
	Teardown(ctx context.Context, sessionID string) error
}

// ViewFunc adapts a function to the ViewService interface
type ViewFunc func(ctx context.Context, sessionID string) error

// Teardown calls f
func (f ViewFunc) Teardown(ctx context.Context, sessionID string) error {
	return f(ctx, sessionID)
}
