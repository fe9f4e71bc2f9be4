// Package app wires repositories and services from the loaded configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/footslip/internal/common/clock"
	"github.com/KirkDiggler/footslip/internal/common/schedule"
	"github.com/KirkDiggler/footslip/internal/common/uuid"
	"github.com/KirkDiggler/footslip/internal/config"
	analysisRepo "github.com/KirkDiggler/footslip/internal/repositories/analysis"
	sessionRepo "github.com/KirkDiggler/footslip/internal/repositories/session"
	tallyRepo "github.com/KirkDiggler/footslip/internal/repositories/tally"
	"github.com/KirkDiggler/footslip/internal/services/detection"
	"github.com/KirkDiggler/footslip/internal/services/messaging"
	"github.com/KirkDiggler/footslip/internal/services/mode"
	"github.com/KirkDiggler/footslip/internal/services/results"
	"github.com/KirkDiggler/footslip/internal/services/tally"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Config holds what the application is built from
type Config struct {
	// Settings is the loaded configuration
	Settings *config.Config

	// Clock defaults to the system clock
	Clock clock.Clock

	// RedisClient overrides the client built from Settings.Store for the redis backend
	RedisClient *redis.Client

	// Detector defaults to the placeholder detector
	Detector detection.Detector
}

// App is the set of services shared by the front ends
type App struct {
	Settings  *config.Config
	Mode      mode.Service
	Tally     tally.Service
	Detection detection.Service
	Results   results.Service
	Messaging messaging.Service

	tasks       *schedule.Registry
	redisClient *redis.Client
	ownsRedis   bool
}

type repositories struct {
	sessions sessionRepo.Repository
	tallies  tallyRepo.Repository
	analyses analysisRepo.Repository
}

// New builds the repositories and services
func New(ctx context.Context, cfg *Config) (*App, error) {
	if cfg == nil || cfg.Settings == nil {
		return nil, errors.New("config and settings cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	a := &App{
		Settings: cfg.Settings,
		tasks:    schedule.NewRegistry(),
	}

	repos, err := a.setupRepositories(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	tallySvc, err := tally.New(&tally.Config{
		Repository:    repos.tallies,
		Clock:         clk,
		UUIDGenerator: uuid.New(),
		Tasks:         a.tasks,
		TickInterval:  cfg.Settings.Match.TickInterval,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create tally service: %w", err)
	}

	detectionSvc, err := detection.New(&detection.Config{
		Repository:   repos.analyses,
		Clock:        clk,
		Tasks:        a.tasks,
		Detector:     cfg.Detector,
		StepDelay:    cfg.Settings.Detection.StepDelay,
		HandoffDelay: handoffDelay(cfg.Settings.Detection.HandoffDelay),
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create detection service: %w", err)
	}

	modeSvc, err := mode.New(&mode.Config{
		Repository:    repos.sessions,
		Clock:         clk,
		ManualView:    mode.ViewFunc(tallySvc.Teardown),
		AutomaticView: mode.ViewFunc(detectionSvc.Teardown),
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create mode service: %w", err)
	}

	resultsSvc, err := results.New(&results.Config{
		Clock: clk,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create results service: %w", err)
	}

	messagingSvc, err := messaging.New(&messaging.Config{
		Seed: cfg.Settings.Messages.Seed,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	a.Mode = modeSvc
	a.Tally = tallySvc
	a.Detection = detectionSvc
	a.Results = resultsSvc
	a.Messaging = messagingSvc

	log.Info().Str("store", cfg.Settings.Store.Backend).Msg("services ready")

	return a, nil
}

// handoffDelay maps a configured zero to "no delay", which the detection
// service spells as a negative value
func handoffDelay(d time.Duration) time.Duration {
	if d == 0 {
		return -1
	}
	return d
}

func (a *App) setupRepositories(ctx context.Context, cfg *Config) (*repositories, error) {
	store := cfg.Settings.Store
	if store.Backend != config.StoreRedis {
		return &repositories{
			sessions: sessionRepo.NewMemory(),
			tallies:  tallyRepo.NewMemory(),
			analyses: analysisRepo.NewMemory(),
		}, nil
	}

	client := cfg.RedisClient
	if client == nil {
		client = redis.NewClient(&redis.Options{
			Addr:     store.Addr,
			Password: store.Password,
			DB:       store.DB,
		})
		a.ownsRedis = true
	}
	a.redisClient = client

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: client, TTL: store.TTL})
	if err != nil {
		return nil, fmt.Errorf("failed to create view state repository: %w", err)
	}

	tallies, err := tallyRepo.NewRedis(&tallyRepo.Config{RedisClient: client, TTL: store.TTL})
	if err != nil {
		return nil, fmt.Errorf("failed to create manual session repository: %w", err)
	}

	analyses, err := analysisRepo.NewRedis(&analysisRepo.Config{RedisClient: client, TTL: store.TTL})
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis repository: %w", err)
	}

	return &repositories{
		sessions: sessions,
		tallies:  tallies,
		analyses: analyses,
	}, nil
}

// Close stops every background task and releases the Redis client it created
func (a *App) Close() error {
	a.tasks.Close()

	if a.redisClient != nil && a.ownsRedis {
		if err := a.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis client: %w", err)
		}
	}
	return nil
}
