// Package config loads the service configuration from a YAML file, falling
// back to environment variables when the file is absent.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration settings.
type Config struct {
	Postgres    PostgresConfig    `yaml:"postgres"`
	NATS        NATSConfig        `yaml:"nats"`
	HTTP        HTTPConfig        `yaml:"http"`
	Matchmaking MatchmakingConfig `yaml:"matchmaking"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// HTTPConfig holds the read-only API configuration.
type HTTPConfig struct {
	Address       string  `yaml:"address"`
	RatePerSecond float64 `yaml:"rate_per_second"`
	RateBurst     int     `yaml:"rate_burst"`
}

// MatchmakingConfig holds the engine's tunable constants. The schema default
// rating of 0 is a placeholder; StartingRating is the real baseline applied
// when a profile is created.
type MatchmakingConfig struct {
	MatchSize      int           `yaml:"match_size"`      // total players per match, even
	StartingRating int           `yaml:"starting_rating"` // baseline rating for new profiles
	KFactor        float64       `yaml:"k_factor"`        // rating sensitivity
	RatingScale    float64       `yaml:"rating_scale"`    // logistic expectation scale
	CountDraws     bool          `yaml:"count_draws"`     // tally draws in a separate counter when true
	MaxRetries     uint64        `yaml:"max_retries"`     // bounded conflict retries
	RetryInterval  time.Duration `yaml:"retry_interval"`  // initial backoff interval
}

// LoadConfig loads the configuration from a YAML file. If the file does not
// exist, configuration is read from environment variables instead.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return loadConfigFromEnv()
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadConfigFromEnv() (*Config, error) {
	cfg := Config{
		Postgres: PostgresConfig{DSN: os.Getenv("POSTGRES_DSN")},
		NATS:     NATSConfig{URL: os.Getenv("NATS_URL")},
		HTTP:     HTTPConfig{Address: os.Getenv("HTTP_ADDRESS")},
	}

	if v := os.Getenv("MATCH_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MATCH_SIZE: %w", err)
		}
		cfg.Matchmaking.MatchSize = size
	}
	if v := os.Getenv("STARTING_RATING"); v != "" {
		rating, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid STARTING_RATING: %w", err)
		}
		cfg.Matchmaking.StartingRating = rating
	}
	if v := os.Getenv("K_FACTOR"); v != "" {
		k, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid K_FACTOR: %w", err)
		}
		cfg.Matchmaking.KFactor = k
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.RatePerSecond == 0 {
		c.HTTP.RatePerSecond = 10
	}
	if c.HTTP.RateBurst == 0 {
		c.HTTP.RateBurst = 20
	}
	if c.Matchmaking.MatchSize == 0 {
		c.Matchmaking.MatchSize = 8
	}
	if c.Matchmaking.StartingRating == 0 {
		c.Matchmaking.StartingRating = 1000
	}
	if c.Matchmaking.KFactor == 0 {
		c.Matchmaking.KFactor = 32
	}
	if c.Matchmaking.RatingScale == 0 {
		c.Matchmaking.RatingScale = 400
	}
	if c.Matchmaking.MaxRetries == 0 {
		c.Matchmaking.MaxRetries = 3
	}
	if c.Matchmaking.RetryInterval == 0 {
		c.Matchmaking.RetryInterval = 25 * time.Millisecond
	}
}

// Validate checks the loaded configuration for invariant violations.
func (c *Config) Validate() error {
	if c.Postgres.DSN == "" {
		return fmt.Errorf("postgres DSN is required")
	}
	if c.NATS.URL == "" {
		return fmt.Errorf("NATS URL is required")
	}
	if c.Matchmaking.MatchSize < 2 || c.Matchmaking.MatchSize%2 != 0 {
		return fmt.Errorf("match size must be an even number >= 2, got %d", c.Matchmaking.MatchSize)
	}
	if c.Matchmaking.KFactor <= 0 {
		return fmt.Errorf("k factor must be positive, got %v", c.Matchmaking.KFactor)
	}
	if c.Matchmaking.RatingScale <= 0 {
		return fmt.Errorf("rating scale must be positive, got %v", c.Matchmaking.RatingScale)
	}
	return nil
}
