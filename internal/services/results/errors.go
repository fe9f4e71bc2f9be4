package results

// ResultsError is a custom error type for results errors
type ResultsError string

// Error implements the error interface
func (e ResultsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilResult ResultsError = "session result cannot be nil"
	ErrEmptyDir  ResultsError = "export directory cannot be empty"
	ErrNilConfig ResultsError = "config cannot be nil"
	ErrNilClock  ResultsError = "clock cannot be nil"
)
