package detection

import (
	"time"

	"github.com/KirkDiggler/footslip/internal/common/clock"
	"github.com/KirkDiggler/footslip/internal/common/schedule"
	"github.com/KirkDiggler/footslip/internal/models"
	analysisRepo "github.com/KirkDiggler/footslip/internal/repositories/analysis"
)

const (
	// DefaultStepDelay is the pause before each checkpoint
	DefaultStepDelay = 800 * time.Millisecond

	// DefaultHandoffDelay is the pause between the last checkpoint and the result
	DefaultHandoffDelay = time.Second
)

// Checkpoints is the scripted progress sequence
var Checkpoints = []models.Checkpoint{
	{Progress: 10, Message: "Uploading video..."},
	{Progress: 25, Message: "Analyzing video frames..."},
	{Progress: 45, Message: "Detecting players..."},
	{Progress: 65, Message: "Identifying fall patterns..."},
	{Progress: 80, Message: "Processing fall events..."},
	{Progress: 95, Message: "Generating report..."},
	{Progress: 100, Message: "Analysis complete!"},
}

// Config holds the dependencies of the detection service
type Config struct {
	// Repository stores the analysis per session key
	Repository analysisRepo.Repository

	// Clock times the scripted steps
	Clock clock.Clock

	// Tasks runs background analyses
	Tasks *schedule.Registry

	// Detector produces the result, defaults to MockDetector
	Detector Detector

	// StepDelay defaults to DefaultStepDelay
	StepDelay time.Duration

	// HandoffDelay defaults to DefaultHandoffDelay, negative skips it
	HandoffDelay time.Duration
}

// ProgressFunc is called after each checkpoint is reached
type ProgressFunc func(checkpoint models.Checkpoint)

// FinishFunc is called once a background analysis ends, with a nil result on failure
type FinishFunc func(result *models.SessionResult, err error)

type GetAnalysisInput struct {
	SessionID string
}

type GetAnalysisOutput struct {
	Analysis *models.Analysis
}

type SelectFileInput struct {
	SessionID   string
	Name        string
	ContentType string
	Size        int64
}

type SelectFileOutput struct {
	// Accepted is false when the file is not a video
	Accepted bool

	Analysis *models.Analysis
}

type RunAnalysisInput struct {
	SessionID  string
	OnProgress ProgressFunc
}

type RunAnalysisOutput struct {
	Result *models.SessionResult
}

type StartAnalysisInput struct {
	SessionID  string
	OnProgress ProgressFunc
	OnFinish   FinishFunc
}

type StartAnalysisOutput struct {
	Analysis *models.Analysis
}

type DiscardSessionInput struct {
	SessionID string
}

type DiscardSessionOutput struct{}
