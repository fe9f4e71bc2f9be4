package tally

import (
	"time"

	"github.com/KirkDiggler/footslip/internal/common/clock"
	"github.com/KirkDiggler/footslip/internal/common/schedule"
	"github.com/KirkDiggler/footslip/internal/common/uuid"
	"github.com/KirkDiggler/footslip/internal/models"
	tallyRepo "github.com/KirkDiggler/footslip/internal/repositories/tally"
)

// DefaultTickInterval is how often a running match clock is persisted
const DefaultTickInterval = time.Second

// Config holds the dependencies of the tally service
type Config struct {
	// Repository stores manual sessions per session key
	Repository tallyRepo.Repository

	// Clock drives the match clock
	Clock clock.Clock

	// UUIDGenerator assigns player IDs
	UUIDGenerator uuid.UUID

	// Tasks runs the tick task of each running match
	Tasks *schedule.Registry

	// TickInterval defaults to DefaultTickInterval
	TickInterval time.Duration
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionOutput struct {
	Session *models.ManualSession
}

type AddPlayerInput struct {
	SessionID string
	Name      string
}

type AddPlayerOutput struct {
	// Player is the new player, nil when the name was rejected
	Player *models.Player

	// Added is false when the name was empty after trimming
	Added bool

	Session *models.ManualSession
}

type RemovePlayerInput struct {
	SessionID string
	PlayerID  string
}

type RemovePlayerOutput struct {
	// Removed is false when no player had the ID
	Removed bool

	Session *models.ManualSession
}

type AdjustFallsInput struct {
	SessionID string
	PlayerID  string

	// Delta is +1 to record a fall or -1 to undo one
	Delta int
}

type AdjustFallsOutput struct {
	Player  *models.Player
	Session *models.ManualSession
}

type StartMatchInput struct {
	SessionID string
}

type StartMatchOutput struct {
	// Resumed is true when the clock continued from banked time
	Resumed bool

	Session *models.ManualSession
}

type PauseMatchInput struct {
	SessionID string
}

type PauseMatchOutput struct {
	Session *models.ManualSession
}

type ResetMatchInput struct {
	SessionID string
}

type ResetMatchOutput struct {
	Session *models.ManualSession
}

type FinishMatchInput struct {
	SessionID string
}

type FinishMatchOutput struct {
	Result  *models.SessionResult
	Session *models.ManualSession
}

type DiscardSessionInput struct {
	SessionID string
}

type DiscardSessionOutput struct{}
