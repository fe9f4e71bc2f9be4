package session

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/footslip/internal/models"
)

type memoryRepository struct {
	mu     sync.RWMutex
	states map[string]*models.ViewState
}

// NewMemory creates an in-memory view state repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		states: make(map[string]*models.ViewState),
	}
}

func (r *memoryRepository) SaveState(ctx context.Context, input *SaveStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}
	if input.State.SessionID == "" {
		return errors.New("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[input.State.SessionID] = input.State.Clone()
	return nil
}

func (r *memoryRepository) GetState(ctx context.Context, input *GetStateInput) (*models.ViewState, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.states[input.SessionID]
	if !ok {
		return nil, ErrStateNotFound
	}
	return state.Clone(), nil
}

func (r *memoryRepository) DeleteState(ctx context.Context, input *DeleteStateInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, input.SessionID)
	return nil
}
