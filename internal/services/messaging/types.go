package messaging

import (
	"github.com/KirkDiggler/footslip/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// Config contains configuration for the messaging service
type Config struct {
	// Seed fixes the message selection for tests, zero picks a time based seed
	Seed int64
}

// GetFallMessageInput contains parameters for getting a fall message
type GetFallMessageInput struct {
	// PlayerName is the player who went down
	PlayerName string

	// Falls is the player's tally including this fall
	Falls int

	// Tone is the preferred tone (optional)
	Tone MessageTone
}

// GetFallMessageOutput contains the fall message
type GetFallMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetStatusMessageInput contains the state to describe
type GetStatusMessageInput struct {
	Mode models.Mode

	// Active is true while the manual match clock runs
	Active bool

	// AnalysisStatus is the automated run state in automatic mode
	AnalysisStatus models.AnalysisStatus
}

// GetStatusMessageOutput contains the status message
type GetStatusMessageOutput struct {
	Message string
}

// GetResultsMessageInput contains the report highlights
type GetResultsMessageInput struct {
	Contact    models.ContactLevel
	TotalFalls int

	// TopPlayerName is empty when nobody fell
	TopPlayerName string
}

// GetResultsMessageOutput contains the results headline
type GetResultsMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains the error to explain
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the error message
type GetErrorMessageOutput struct {
	Message string
}
