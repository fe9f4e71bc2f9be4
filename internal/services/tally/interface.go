package tally

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/footslip/internal/services/tally Service

import "context"

// Service defines the interface for the manual tally
type Service interface {
	// GetSession returns the manual session, empty if none exists
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// AddPlayer appends a named player to the roster
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer drops a player from the roster
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// AdjustFalls records or undoes one fall for a player
	AdjustFalls(ctx context.Context, input *AdjustFallsInput) (*AdjustFallsOutput, error)

	// StartMatch starts or resumes the match clock
	StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error)

	// PauseMatch stops the match clock, keeping the elapsed time
	PauseMatch(ctx context.Context, input *PauseMatchInput) (*PauseMatchOutput, error)

	// ResetMatch zeroes the clock and all falls, keeping the roster
	ResetMatch(ctx context.Context, input *ResetMatchInput) (*ResetMatchOutput, error)

	// FinishMatch stops the clock and packages the session result
	FinishMatch(ctx context.Context, input *FinishMatchInput) (*FinishMatchOutput, error)

	// DiscardSession stops the clock and forgets the session
	DiscardSession(ctx context.Context, input *DiscardSessionInput) (*DiscardSessionOutput, error)
}
