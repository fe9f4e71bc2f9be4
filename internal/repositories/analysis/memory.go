package analysis

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/footslip/internal/models"
)

type memoryRepository struct {
	mu       sync.RWMutex
	analyses map[string]*models.Analysis
}

// NewMemory creates an in-memory analysis repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		analyses: make(map[string]*models.Analysis),
	}
}

func (r *memoryRepository) SaveAnalysis(ctx context.Context, input *SaveAnalysisInput) error {
	if input == nil || input.Analysis == nil {
		return errors.New("input and analysis cannot be nil")
	}
	if input.Analysis.ID == "" {
		return errors.New("analysis ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.analyses[input.Analysis.ID] = input.Analysis.Clone()
	return nil
}

func (r *memoryRepository) GetAnalysis(ctx context.Context, input *GetAnalysisInput) (*models.Analysis, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.analyses[input.SessionID]
	if !ok {
		return nil, ErrAnalysisNotFound
	}
	return a.Clone(), nil
}

func (r *memoryRepository) DeleteAnalysis(ctx context.Context, input *DeleteAnalysisInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.analyses, input.SessionID)
	return nil
}
