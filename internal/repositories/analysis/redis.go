package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/footslip/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	analysisKeyPrefix = "analysis:"
)

// Config holds configuration for the Redis analysis repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL bounds how long an untouched analysis survives; zero keeps it until deleted
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed analysis repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

// SaveAnalysis persists an analysis to Redis
func (r *redisRepository) SaveAnalysis(ctx context.Context, input *SaveAnalysisInput) error {
	if input == nil || input.Analysis == nil {
		return errors.New("input and analysis cannot be nil")
	}
	if input.Analysis.ID == "" {
		return errors.New("analysis ID cannot be empty")
	}

	analysisJSON, err := json.Marshal(input.Analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	analysisKey := fmt.Sprintf("%s%s", analysisKeyPrefix, input.Analysis.ID)
	if err := r.client.Set(ctx, analysisKey, analysisJSON, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	return nil
}

// GetAnalysis retrieves an analysis from Redis
func (r *redisRepository) GetAnalysis(ctx context.Context, input *GetAnalysisInput) (*models.Analysis, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	analysisKey := fmt.Sprintf("%s%s", analysisKeyPrefix, input.SessionID)
	analysisJSON, err := r.client.Get(ctx, analysisKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var a models.Analysis
	if err := json.Unmarshal([]byte(analysisJSON), &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}

	return &a, nil
}

// DeleteAnalysis removes an analysis from Redis
func (r *redisRepository) DeleteAnalysis(ctx context.Context, input *DeleteAnalysisInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	analysisKey := fmt.Sprintf("%s%s", analysisKeyPrefix, input.SessionID)
	if err := r.client.Del(ctx, analysisKey).Err(); err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}

	return nil
}
