package detection

// DetectionError is a custom error type for automated detection errors
type DetectionError string

// Error implements the error interface
func (e DetectionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoFile             DetectionError = "select a video file before starting the analysis"
	ErrAnalysisInProgress DetectionError = "analysis already in progress"
	ErrShuttingDown       DetectionError = "detection service is shutting down"
	ErrEmptySessionID     DetectionError = "session ID cannot be empty"
	ErrNilConfig          DetectionError = "config cannot be nil"
	ErrNilRepository      DetectionError = "analysis repository cannot be nil"
	ErrNilClock           DetectionError = "clock cannot be nil"
	ErrNilTasks           DetectionError = "task registry cannot be nil"
)
