package tally

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/footslip/internal/common/clock"
	"github.com/KirkDiggler/footslip/internal/common/schedule"
	"github.com/KirkDiggler/footslip/internal/common/uuid"
	"github.com/KirkDiggler/footslip/internal/models"
	tallyRepo "github.com/KirkDiggler/footslip/internal/repositories/tally"
	"github.com/rs/zerolog/log"
)

const taskKeyPrefix = "tally:"

// service implements the Service interface
type service struct {
	mu            sync.Mutex
	repo          tallyRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	tasks         *schedule.Registry
	tickInterval  time.Duration
}

// New creates a new tally service
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

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Tasks == nil {
		return nil, ErrNilTasks
	}

	tickInterval := cfg.TickInterval
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}

	return &service{
		repo:          cfg.Repository,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		tasks:         cfg.Tasks,
		tickInterval:  tickInterval,
	}, nil
}

// GetSession returns the manual session, empty if none exists
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	session.ElapsedSeconds = session.ElapsedAt(s.clock.Now())

	return &GetSessionOutput{Session: session}, nil
}

// AddPlayer appends a named player to the roster
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return &AddPlayerOutput{Session: session}, nil
	}

	player := models.Player{
		ID:   s.uuidGenerator.NewUUID(),
		Name: name,
	}
	session.Players = append(session.Players, player)

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	log.Debug().Str("session_id", input.SessionID).Str("player", name).Msg("player added")

	return &AddPlayerOutput{
		Player:  &player,
		Added:   true,
		Session: session,
	}, nil
}

// RemovePlayer drops a player from the roster
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	idx := session.FindPlayer(input.PlayerID)
	if idx < 0 {
		return &RemovePlayerOutput{Session: session}, nil
	}
	session.Players = append(session.Players[:idx], session.Players[idx+1:]...)

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return &RemovePlayerOutput{
		Removed: true,
		Session: session,
	}, nil
}

// AdjustFalls records or undoes one fall for a player
func (s *service) AdjustFalls(ctx context.Context, input *AdjustFallsInput) (*AdjustFallsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	if input.Delta != 1 && input.Delta != -1 {
		return nil, ErrInvalidDelta
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	idx := session.FindPlayer(input.PlayerID)
	if idx < 0 {
		return nil, ErrPlayerNotFound
	}

	player := &session.Players[idx]
	player.Falls += input.Delta
	if player.Falls < 0 {
		player.Falls = 0
	}
	if input.Delta > 0 {
		now := s.clock.Now()
		player.LastFallAt = &now
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	updated := player.Clone()
	return &AdjustFallsOutput{
		Player:  &updated,
		Session: session,
	}, nil
}

// StartMatch starts or resumes the match clock
func (s *service) StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if len(session.Players) == 0 {
		return nil, ErrNoPlayers
	}

	resumed := session.BankedSeconds > 0
	if session.Active {
		session.ElapsedSeconds = session.ElapsedAt(s.clock.Now())
		return &StartMatchOutput{Resumed: resumed, Session: session}, nil
	}

	now := s.clock.Now()
	session.Active = true
	session.StartedAt = &now
	session.ElapsedSeconds = session.BankedSeconds

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	sessionID := input.SessionID
	s.tasks.Go(taskKeyPrefix+sessionID, func(ctx context.Context) {
		s.runClock(ctx, sessionID)
	})

	log.Info().Str("session_id", sessionID).Bool("resumed", resumed).Msg("match clock started")

	return &StartMatchOutput{
		Resumed: resumed,
		Session: session,
	}, nil
}

// PauseMatch stops the match clock, keeping the elapsed time
func (s *service) PauseMatch(ctx context.Context, input *PauseMatchInput) (*PauseMatchOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if !session.Active {
		return &PauseMatchOutput{Session: session}, nil
	}

	s.stopClock(session)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	log.Info().Str("session_id", input.SessionID).Int("elapsed", session.ElapsedSeconds).Msg("match clock paused")

	return &PauseMatchOutput{Session: session}, nil
}

// ResetMatch zeroes the clock and all falls, keeping the roster
func (s *service) ResetMatch(ctx context.Context, input *ResetMatchInput) (*ResetMatchOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	s.tasks.Cancel(taskKeyPrefix + input.SessionID)
	session.Active = false
	session.StartedAt = nil
	session.BankedSeconds = 0
	session.ElapsedSeconds = 0
	for i := range session.Players {
		session.Players[i].Falls = 0
		session.Players[i].LastFallAt = nil
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return &ResetMatchOutput{Session: session}, nil
}

// FinishMatch stops the clock and packages the session result
func (s *service) FinishMatch(ctx context.Context, input *FinishMatchInput) (*FinishMatchOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Active {
		s.stopClock(session)
		if err := s.save(ctx, session); err != nil {
			return nil, err
		}
	}

	result := models.NewSessionResult(session.Players, session.ElapsedSeconds)

	log.Info().
		Str("session_id", input.SessionID).
		Int("players", len(result.Players)).
		Int("total_falls", result.TotalFalls).
		Int("match_duration", result.MatchDuration).
		Msg("match finished")

	return &FinishMatchOutput{
		Result:  result,
		Session: session,
	}, nil
}

// DiscardSession stops the clock and forgets the session
func (s *service) DiscardSession(ctx context.Context, input *DiscardSessionInput) (*DiscardSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks.Cancel(taskKeyPrefix + input.SessionID)
	if err := s.repo.DeleteSession(ctx, &tallyRepo.DeleteSessionInput{
		SessionID: input.SessionID,
	}); err != nil {
		return nil, fmt.Errorf("failed to delete manual session: %w", err)
	}

	return &DiscardSessionOutput{}, nil
}

// Teardown discards the session when the manual view is left
func (s *service) Teardown(ctx context.Context, sessionID string) error {
	_, err := s.DiscardSession(ctx, &DiscardSessionInput{SessionID: sessionID})
	return err
}

// stopClock banks the running time and cancels the tick task. Caller holds mu.
func (s *service) stopClock(session *models.ManualSession) {
	s.tasks.Cancel(taskKeyPrefix + session.ID)
	elapsed := session.ElapsedAt(s.clock.Now())
	session.Active = false
	session.StartedAt = nil
	session.BankedSeconds = elapsed
	session.ElapsedSeconds = elapsed
}

// runClock persists the elapsed time once per tick until cancelled
func (s *service) runClock(ctx context.Context, sessionID string) {
	ticker := s.clock.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if err := s.tick(ctx, sessionID); err != nil {
				log.Error().Err(err).Str("session_id", sessionID).Msg("failed to advance match clock")
			}
		}
	}
}

func (s *service) tick(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// pause or reset may have won the lock after this tick fired
	if ctx.Err() != nil {
		return nil
	}

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.Active {
		return nil
	}

	elapsed := session.ElapsedAt(s.clock.Now())
	if elapsed == session.ElapsedSeconds {
		return nil
	}
	session.ElapsedSeconds = elapsed
	return s.save(ctx, session)
}

// load returns the stored session or an empty one for an unseen key
func (s *service) load(ctx context.Context, sessionID string) (*models.ManualSession, error) {
	session, err := s.repo.GetSession(ctx, &tallyRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, tallyRepo.ErrSessionNotFound) {
			return models.NewManualSession(sessionID), nil
		}
		return nil, fmt.Errorf("failed to get manual session: %w", err)
	}
	return session, nil
}

func (s *service) save(ctx context.Context, session *models.ManualSession) error {
	session.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveSession(ctx, &tallyRepo.SaveSessionInput{
		Session: session,
	}); err != nil {
		return fmt.Errorf("failed to save manual session: %w", err)
	}
	return nil
}
