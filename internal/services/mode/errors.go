package mode

// ModeError is a custom error type for view mode errors
type ModeError string

// Error implements the error interface
func (e ModeError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidTransition ModeError = "invalid mode transition"
	ErrInvalidMode       ModeError = "unknown mode"
	ErrNilResult         ModeError = "session result cannot be nil"
	ErrEmptySessionID    ModeError = "session ID cannot be empty"
	ErrNilConfig         ModeError = "config cannot be nil"
	ErrNilRepository     ModeError = "view state repository cannot be nil"
	ErrNilClock          ModeError = "clock cannot be nil"
)
