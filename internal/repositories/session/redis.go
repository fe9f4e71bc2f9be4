package session

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
	stateKeyPrefix = "view:"
)

// Config holds configuration for the Redis view state repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL bounds how long an untouched state survives; zero keeps it until deleted
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed view state repository
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

// SaveState persists a view state to Redis
func (r *redisRepository) SaveState(ctx context.Context, input *SaveStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}
	if input.State.SessionID == "" {
		return errors.New("session ID cannot be empty")
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	stateKey := fmt.Sprintf("%s%s", stateKeyPrefix, input.State.SessionID)
	if err := r.client.Set(ctx, stateKey, stateJSON, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}

// GetState retrieves a view state from Redis
func (r *redisRepository) GetState(ctx context.Context, input *GetStateInput) (*models.ViewState, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	stateKey := fmt.Sprintf("%s%s", stateKeyPrefix, input.SessionID)
	stateJSON, err := r.client.Get(ctx, stateKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to get state: %w", err)
	}

	var state models.ViewState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	return &state, nil
}

// DeleteState removes a view state from Redis
func (r *redisRepository) DeleteState(ctx context.Context, input *DeleteStateInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	stateKey := fmt.Sprintf("%s%s", stateKeyPrefix, input.SessionID)
	if err := r.client.Del(ctx, stateKey).Err(); err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}

	return nil
}
