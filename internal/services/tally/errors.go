package tally

// TallyError is a custom error type for manual tally errors
type TallyError string

// Error implements the error interface
func (e TallyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrPlayerNotFound   TallyError = "player not found"
	ErrInvalidDelta     TallyError = "fall adjustment must be +1 or -1"
	ErrNoPlayers        TallyError = "add at least one player before starting the match"
	ErrEmptySessionID   TallyError = "session ID cannot be empty"
	ErrNilConfig        TallyError = "config cannot be nil"
	ErrNilRepository    TallyError = "manual session repository cannot be nil"
	ErrNilClock         TallyError = "clock cannot be nil"
	ErrNilUUIDGenerator TallyError = "UUID generator cannot be nil"
	ErrNilTasks         TallyError = "task registry cannot be nil"
)
