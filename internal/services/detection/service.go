package detection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/footslip/internal/common/clock"
	"github.com/KirkDiggler/footslip/internal/common/schedule"
	"github.com/KirkDiggler/footslip/internal/models"
	analysisRepo "github.com/KirkDiggler/footslip/internal/repositories/analysis"
	"github.com/rs/zerolog/log"
)

const taskKeyPrefix = "analysis:"

// service implements the Service interface
type service struct {
	mu           sync.Mutex
	repo         analysisRepo.Repository
	clock        clock.Clock
	tasks        *schedule.Registry
	detector     Detector
	stepDelay    time.Duration
	handoffDelay time.Duration

	// runs holds the ID of the newest run per session
	runs    map[string]uint64
	nextRun uint64
}

// New creates a new detection service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Tasks == nil {
		return nil, ErrNilTasks
	}

	detector := cfg.Detector
	if detector == nil {
		detector = NewMockDetector()
	}

	stepDelay := cfg.StepDelay
	if stepDelay <= 0 {
		stepDelay = DefaultStepDelay
	}

	handoffDelay := cfg.HandoffDelay
	if handoffDelay < 0 {
		handoffDelay = 0
	} else if handoffDelay == 0 {
		handoffDelay = DefaultHandoffDelay
	}

	return &service{
		repo:         cfg.Repository,
		clock:        cfg.Clock,
		tasks:        cfg.Tasks,
		detector:     detector,
		stepDelay:    stepDelay,
		handoffDelay: handoffDelay,
		runs:         make(map[string]uint64),
	}, nil
}

// GetAnalysis returns the analysis state, idle if none exists
func (s *service) GetAnalysis(ctx context.Context, input *GetAnalysisInput) (*GetAnalysisOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	analysis, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetAnalysisOutput{Analysis: analysis}, nil
}

// SelectFile records the file to analyze if it is a video
func (s *service) SelectFile(ctx context.Context, input *SelectFileInput) (*SelectFileOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	analysis, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if !models.IsVideo(input.ContentType) {
		return &SelectFileOutput{Analysis: analysis}, nil
	}

	if analysis.Status == models.AnalysisStatusProcessing {
		return nil, ErrAnalysisInProgress
	}

	analysis.File = &models.VideoFile{
		Name:        input.Name,
		ContentType: input.ContentType,
		Size:        input.Size,
	}
	analysis.Status = models.AnalysisStatusIdle
	analysis.Progress = 0
	analysis.Step = ""
	analysis.Result = nil

	if err := s.save(ctx, analysis); err != nil {
		return nil, err
	}

	log.Debug().
		Str("session_id", input.SessionID).
		Str("file", input.Name).
		Int64("size", input.Size).
		Msg("video selected")

	return &SelectFileOutput{
		Accepted: true,
		Analysis: analysis,
	}, nil
}

// RunAnalysis plays the scripted progress sequence and blocks until the detector result is ready
func (s *service) RunAnalysis(ctx context.Context, input *RunAnalysisInput) (*RunAnalysisOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	file, run, err := s.begin(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.play(ctx, input.SessionID, run, file, input.OnProgress)
	if err != nil {
		return nil, err
	}

	return &RunAnalysisOutput{Result: result}, nil
}

// StartAnalysis runs the analysis in the background. OnFinish is called exactly
// once unless StartAnalysis itself returns an error.
func (s *service) StartAnalysis(ctx context.Context, input *StartAnalysisInput) (*StartAnalysisOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	file, run, err := s.begin(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	sessionID := input.SessionID
	onProgress := input.OnProgress
	onFinish := input.OnFinish
	started := s.tasks.Go(taskKeyPrefix+sessionID, func(ctx context.Context) {
		result, err := s.play(ctx, sessionID, run, file, onProgress)
		if onFinish != nil {
			onFinish(result, err)
		}
	})
	if !started {
		s.reset(context.WithoutCancel(ctx), sessionID, run)
		return nil, ErrShuttingDown
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	analysis, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &StartAnalysisOutput{Analysis: analysis}, nil
}

// DiscardSession cancels any run and forgets the analysis
func (s *service) DiscardSession(ctx context.Context, input *DiscardSessionInput) (*DiscardSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks.Cancel(taskKeyPrefix + input.SessionID)
	delete(s.runs, input.SessionID)
	if err := s.repo.DeleteAnalysis(ctx, &analysisRepo.DeleteAnalysisInput{
		SessionID: input.SessionID,
	}); err != nil {
		return nil, fmt.Errorf("failed to delete analysis: %w", err)
	}

	return &DiscardSessionOutput{}, nil
}

// Teardown discards the analysis when the automatic view is left
func (s *service) Teardown(ctx context.Context, sessionID string) error {
	_, err := s.DiscardSession(ctx, &DiscardSessionInput{SessionID: sessionID})
	return err
}

// begin moves an idle or complete analysis with a file into processing and
// returns the ID of the new run. Older runs of the session stop writing state.
func (s *service) begin(ctx context.Context, sessionID string) (*models.VideoFile, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	analysis, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}

	if analysis.File == nil {
		return nil, 0, ErrNoFile
	}

	if analysis.Status == models.AnalysisStatusProcessing {
		return nil, 0, ErrAnalysisInProgress
	}

	analysis.Status = models.AnalysisStatusProcessing
	analysis.Progress = 0
	analysis.Step = ""
	analysis.Result = nil
	if err := s.save(ctx, analysis); err != nil {
		return nil, 0, err
	}

	s.nextRun++
	run := s.nextRun
	s.runs[sessionID] = run

	log.Info().
		Str("session_id", sessionID).
		Str("file", analysis.File.Name).
		Uint64("run", run).
		Msg("analysis started")

	return analysis.File, run, nil
}

// play walks the checkpoints, waits for the handoff and asks the detector for
// the result. A cancelled context leaves the analysis idle.
func (s *service) play(ctx context.Context, sessionID string, run uint64, file *models.VideoFile, onProgress ProgressFunc) (*models.SessionResult, error) {
	for _, checkpoint := range Checkpoints {
		if err := s.wait(ctx, s.stepDelay); err != nil {
			s.reset(context.WithoutCancel(ctx), sessionID, run)
			return nil, err
		}

		if err := s.advance(ctx, sessionID, run, checkpoint); err != nil {
			s.reset(context.WithoutCancel(ctx), sessionID, run)
			return nil, err
		}

		if onProgress != nil {
			onProgress(checkpoint)
		}
	}

	if err := s.wait(ctx, s.handoffDelay); err != nil {
		s.reset(context.WithoutCancel(ctx), sessionID, run)
		return nil, err
	}

	result, err := s.detector.Detect(ctx, file)
	if err != nil {
		s.reset(context.WithoutCancel(ctx), sessionID, run)
		return nil, fmt.Errorf("failed to detect falls: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.active(ctx, sessionID, run); err != nil {
		s.resetLocked(context.WithoutCancel(ctx), sessionID, run)
		return nil, err
	}

	analysis, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	analysis.Result = result.Clone()
	if err := s.save(ctx, analysis); err != nil {
		return nil, err
	}

	log.Info().
		Str("session_id", sessionID).
		Uint64("run", run).
		Int("players", len(result.Players)).
		Int("total_falls", result.TotalFalls).
		Msg("analysis finished")

	return result, nil
}

// advance records a reached checkpoint
func (s *service) advance(ctx context.Context, sessionID string, run uint64, checkpoint models.Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// discard may have won the lock after the timer fired
	if err := s.active(ctx, sessionID, run); err != nil {
		return err
	}

	analysis, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}

	analysis.Progress = checkpoint.Progress
	analysis.Step = checkpoint.Message
	if checkpoint.Progress >= 100 {
		analysis.Status = models.AnalysisStatusComplete
	}
	return s.save(ctx, analysis)
}

// active reports context.Canceled once the run is cancelled or a newer run
// of the session has started. Callers hold s.mu.
func (s *service) active(ctx context.Context, sessionID string, run uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.runs[sessionID] != run {
		return context.Canceled
	}
	return nil
}

// reset returns an interrupted analysis to idle, keeping the file. A discarded
// analysis stays deleted and a newer run is left alone.
func (s *service) reset(ctx context.Context, sessionID string, run uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked(ctx, sessionID, run)
}

func (s *service) resetLocked(ctx context.Context, sessionID string, run uint64) {
	if s.runs[sessionID] != run {
		return
	}

	analysis, err := s.repo.GetAnalysis(ctx, &analysisRepo.GetAnalysisInput{
		SessionID: sessionID,
	})
	if err != nil {
		if !errors.Is(err, analysisRepo.ErrAnalysisNotFound) {
			log.Error().Err(err).Str("session_id", sessionID).Msg("failed to load interrupted analysis")
		}
		return
	}

	analysis.Status = models.AnalysisStatusIdle
	analysis.Progress = 0
	analysis.Step = ""
	analysis.Result = nil
	if err := s.save(ctx, analysis); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to reset interrupted analysis")
		return
	}

	log.Info().Str("session_id", sessionID).Uint64("run", run).Msg("analysis cancelled")
}

func (s *service) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := s.clock.NewTimer(d)
	select {
	case <-ctx.Done():
		clock.StopTimer(timer)
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

// load returns the stored analysis or an idle one for an unseen key
func (s *service) load(ctx context.Context, sessionID string) (*models.Analysis, error) {
	analysis, err := s.repo.GetAnalysis(ctx, &analysisRepo.GetAnalysisInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, analysisRepo.ErrAnalysisNotFound) {
			return models.NewAnalysis(sessionID), nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return analysis, nil
}

func (s *service) save(ctx context.Context, analysis *models.Analysis) error {
	if err := s.repo.SaveAnalysis(ctx, &analysisRepo.SaveAnalysisInput{
		Analysis: analysis,
	}); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}
