package tally

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/footslip/internal/models"
)

// memoryRepository keeps sessions in a map. Values are cloned on the way in and
// out so callers never share state with the store.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.ManualSession
}

// NewMemory creates an in-memory manual session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*models.ManualSession),
	}
}

func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[input.Session.ID] = input.Session.Clone()
	return nil
}

func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.ManualSession, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, input.SessionID)
	return nil
}
