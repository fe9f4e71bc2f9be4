package tally

import (
	"errors"

	"github.com/KirkDiggler/footslip/internal/models"
)

// ErrSessionNotFound is returned when no manual session exists for a key
var ErrSessionNotFound = errors.New("manual session not found")

type SaveSessionInput struct {
	Session *models.ManualSession
}

type GetSessionInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}
