package mode

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/footslip/internal/common/clock"
	"github.com/KirkDiggler/footslip/internal/models"
	sessionRepo "github.com/KirkDiggler/footslip/internal/repositories/session"
	"github.com/rs/zerolog/log"
)

// service implements the Service interface
type service struct {
	mu            sync.Mutex
	repo          sessionRepo.Repository
	clock         clock.Clock
	manualView    ViewService
	automaticView ViewService
}

// New creates a new mode service
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

	return &service{
		repo:          cfg.Repository,
		clock:         cfg.Clock,
		manualView:    cfg.ManualView,
		automaticView: cfg.AutomaticView,
	}, nil
}

// GetState returns the current view state, landing for an unseen session
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetStateOutput{State: state}, nil
}

// SelectMode moves from landing to manual or automatic
func (s *service) SelectMode(ctx context.Context, input *SelectModeInput) (*SelectModeOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	if !input.Mode.IsValid() {
		return nil, ErrInvalidMode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if state.Mode != models.ModeLanding || !input.Mode.IsCounting() {
		return nil, ErrInvalidTransition
	}

	state.Mode = input.Mode
	state.Result = nil
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	log.Debug().Str("session_id", input.SessionID).Str("mode", string(input.Mode)).Msg("mode selected")

	return &SelectModeOutput{State: state}, nil
}

// GoHome returns to landing from any mode, discarding the result
func (s *service) GoHome(ctx context.Context, input *GoHomeInput) (*GoHomeOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	previous := state.Mode
	if err := s.teardown(ctx, input.SessionID, previous); err != nil {
		return nil, err
	}

	state.Mode = models.ModeLanding
	state.Result = nil
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	return &GoHomeOutput{
		State:    state,
		Previous: previous,
	}, nil
}

// Complete hands a session result from a counting mode to the results view
func (s *service) Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	if input.Result == nil {
		return nil, ErrNilResult
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if !state.Mode.IsCounting() || !state.Mode.CanTransitionTo(models.ModeResults) {
		return nil, ErrInvalidTransition
	}

	if err := s.teardown(ctx, input.SessionID, state.Mode); err != nil {
		return nil, err
	}

	state.Mode = models.ModeResults
	state.Result = input.Result.Clone()
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	log.Info().
		Str("session_id", input.SessionID).
		Int("total_falls", state.Result.TotalFalls).
		Int("match_duration", state.Result.MatchDuration).
		Msg("session completed")

	return &CompleteOutput{State: state}, nil
}

// NewSession leaves the results view for a fresh landing screen
func (s *service) NewSession(ctx context.Context, input *NewSessionInput) (*NewSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if state.Mode != models.ModeResults {
		return nil, ErrInvalidTransition
	}

	state.Mode = models.ModeLanding
	state.Result = nil
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	return &NewSessionOutput{State: state}, nil
}

// load returns the stored state or a landing state for an unseen key
func (s *service) load(ctx context.Context, sessionID string) (*models.ViewState, error) {
	state, err := s.repo.GetState(ctx, &sessionRepo.GetStateInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrStateNotFound) {
			return &models.ViewState{
				SessionID: sessionID,
				Mode:      models.ModeLanding,
			}, nil
		}
		return nil, fmt.Errorf("failed to get view state: %w", err)
	}

	if !state.Mode.IsValid() {
		state.Mode = models.ModeLanding
		state.Result = nil
	}

	return state, nil
}

func (s *service) save(ctx context.Context, state *models.ViewState) error {
	state.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveState(ctx, &sessionRepo.SaveStateInput{
		State: state,
	}); err != nil {
		return fmt.Errorf("failed to save view state: %w", err)
	}
	return nil
}

// teardown releases the state owned by the view being left
func (s *service) teardown(ctx context.Context, sessionID string, leaving models.Mode) error {
	var view ViewService
	switch leaving {
	case models.ModeManual:
		view = s.manualView
	case models.ModeAutomatic:
		view = s.automaticView
	}

	if view == nil {
		return nil
	}

	if err := view.Teardown(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to tear down %s view: %w", leaving, err)
	}
	return nil
}
