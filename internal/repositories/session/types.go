package session

import (
	"errors"

	"github.com/KirkDiggler/footslip/internal/models"
)

// ErrStateNotFound is returned when a session key has no stored state
var ErrStateNotFound = errors.New("view state not found")

type SaveStateInput struct {
	State *models.ViewState
}

type GetStateInput struct {
	SessionID string
}

type DeleteStateInput struct {
	SessionID string
}
