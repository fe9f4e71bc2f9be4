package mode

import (
	"github.com/KirkDiggler/footslip/internal/common/clock"
	"github.com/KirkDiggler/footslip/internal/models"
	sessionRepo "github.com/KirkDiggler/footslip/internal/repositories/session"
)

// Config holds the dependencies of the mode service
type Config struct {
	// Repository stores view state per session key
	Repository sessionRepo.Repository

	// Clock stamps state changes
	Clock clock.Clock

	// ManualView owns the state of the manual tally view, optional
	ManualView ViewService

	// AutomaticView owns the state of the automatic detection view, optional
	AutomaticView ViewService
}

// GetStateInput contains the session key to look up
type GetStateInput struct {
	SessionID string
}

// GetStateOutput contains the current view state
type GetStateOutput struct {
	State *models.ViewState
}

// SelectModeInput contains the counting mode to enter
type SelectModeInput struct {
	SessionID string
	Mode      models.Mode
}

// SelectModeOutput contains the state after the transition
type SelectModeOutput struct {
	State *models.ViewState
}

// GoHomeInput contains the session key to reset to landing
type GoHomeInput struct {
	SessionID string
}

// GoHomeOutput contains the state after the transition
type GoHomeOutput struct {
	State *models.ViewState

	// Previous is the mode that was left
	Previous models.Mode
}

// CompleteInput contains the result produced by a counting mode
type CompleteInput struct {
	SessionID string
	Result    *models.SessionResult
}

// CompleteOutput contains the state after the transition
type CompleteOutput struct {
	State *models.ViewState
}

// NewSessionInput contains the session key to restart
type NewSessionInput struct {
	SessionID string
}

// NewSessionOutput contains the state after the transition
type NewSessionOutput struct {
	State *models.ViewState
}
