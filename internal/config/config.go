// Package config loads FootSlip settings from defaults, an optional YAML file,
// a .env file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/KirkDiggler/footslip/internal/common/logging"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is the full application configuration
type Config struct {
	Log       logging.Config  `yaml:"log"`
	Store     StoreConfig     `yaml:"store"`
	Discord   DiscordConfig   `yaml:"discord"`
	Match     MatchConfig     `yaml:"match"`
	Detection DetectionConfig `yaml:"detection"`
	Export    ExportConfig    `yaml:"export"`
	Messages  MessagesConfig  `yaml:"messages"`
}

// StoreConfig selects where session state lives. Redis only holds live state
// with a TTL, never a match history.
type StoreConfig struct {
	Backend  string        `yaml:"backend"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type DiscordConfig struct {
	Token         string `yaml:"token"`
	ApplicationID string `yaml:"application_id"`

	// GuildID registers commands in one guild for development
	GuildID string `yaml:"guild_id"`
}

type MatchConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

type DetectionConfig struct {
	StepDelay    time.Duration `yaml:"step_delay"`
	HandoffDelay time.Duration `yaml:"handoff_delay"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

type MessagesConfig struct {
	// Seed fixes the commentary selection, zero seeds from the clock
	Seed int64 `yaml:"seed"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Log: logging.Config{
			Level:  "info",
			Pretty: true,
		},
		Store: StoreConfig{
			Backend: StoreMemory,
			Addr:    "localhost:6379",
			TTL:     12 * time.Hour,
		},
		Match: MatchConfig{
			TickInterval: time.Second,
		},
		Detection: DetectionConfig{
			StepDelay:    800 * time.Millisecond,
			HandoffDelay: time.Second,
		},
		Export: ExportConfig{
			Dir: ".",
		},
	}
}

// Load builds the configuration. An empty path skips the YAML file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotEnv reads .env style files into the environment. Missing files are
// ignored and variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Validate checks the configuration for values the services cannot run with
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreMemory:
	case StoreRedis:
		if c.Store.Addr == "" {
			return errors.New("store.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if c.Store.TTL < 0 {
		return errors.New("store.ttl cannot be negative")
	}

	if c.Match.TickInterval <= 0 {
		return errors.New("match.tick_interval must be positive")
	}

	if c.Detection.StepDelay <= 0 {
		return errors.New("detection.step_delay must be positive")
	}

	if c.Detection.HandoffDelay < 0 {
		return errors.New("detection.handoff_delay cannot be negative")
	}

	if c.Export.Dir == "" {
		return errors.New("export.dir cannot be empty")
	}

	return nil
}

// ValidateDiscord checks the settings only the bot needs
func (c *Config) ValidateDiscord() error {
	if c.Discord.Token == "" {
		return errors.New("DISCORD_TOKEN environment variable is required")
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	c.Log.Level = getEnv("FOOTSLIP_LOG_LEVEL", c.Log.Level)
	c.Log.File = getEnv("FOOTSLIP_LOG_FILE", c.Log.File)
	c.Store.Backend = getEnv("FOOTSLIP_STORE", c.Store.Backend)
	c.Store.Addr = getEnv("REDIS_ADDR", c.Store.Addr)
	c.Store.Password = getEnv("REDIS_PASSWORD", c.Store.Password)
	c.Discord.Token = getEnv("DISCORD_TOKEN", c.Discord.Token)
	c.Discord.ApplicationID = getEnv("APPLICATION_ID", c.Discord.ApplicationID)
	c.Discord.GuildID = getEnv("GUILD_ID", c.Discord.GuildID)
	c.Export.Dir = getEnv("FOOTSLIP_EXPORT_DIR", c.Export.Dir)

	var err error
	if c.Log.Pretty, err = getEnvAsBool("FOOTSLIP_LOG_PRETTY", c.Log.Pretty); err != nil {
		return err
	}
	if c.Store.DB, err = getEnvAsInt("REDIS_DB", c.Store.DB); err != nil {
		return err
	}
	if c.Store.TTL, err = getEnvAsDuration("FOOTSLIP_STATE_TTL", c.Store.TTL); err != nil {
		return err
	}
	if c.Match.TickInterval, err = getEnvAsDuration("FOOTSLIP_TICK_INTERVAL", c.Match.TickInterval); err != nil {
		return err
	}
	if c.Detection.StepDelay, err = getEnvAsDuration("FOOTSLIP_STEP_DELAY", c.Detection.StepDelay); err != nil {
		return err
	}
	if c.Detection.HandoffDelay, err = getEnvAsDuration("FOOTSLIP_HANDOFF_DELAY", c.Detection.HandoffDelay); err != nil {
		return err
	}
	seed, err := getEnvAsInt("FOOTSLIP_MESSAGE_SEED", int(c.Messages.Seed))
	if err != nil {
		return err
	}
	c.Messages.Seed = int64(seed)
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
