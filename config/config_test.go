package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
postgres:
  dsn: postgres://localhost:5432/rbw
nats:
  url: nats://localhost:4222
matchmaking:
  match_size: 4
  starting_rating: 1200
  k_factor: 24
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/rbw", cfg.Postgres.DSN)
	assert.Equal(t, 4, cfg.Matchmaking.MatchSize)
	assert.Equal(t, 1200, cfg.Matchmaking.StartingRating)
	assert.Equal(t, float64(24), cfg.Matchmaking.KFactor)
	// Defaults fill the rest.
	assert.Equal(t, float64(400), cfg.Matchmaking.RatingScale)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
postgres:
  dsn: postgres://localhost:5432/rbw
nats:
  url: nats://localhost:4222
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Matchmaking.MatchSize)
	assert.Equal(t, 1000, cfg.Matchmaking.StartingRating)
	assert.Equal(t, float64(32), cfg.Matchmaking.KFactor)
	assert.False(t, cfg.Matchmaking.CountDraws)
}

func TestLoadConfig_RejectsOddMatchSize(t *testing.T) {
	path := writeConfigFile(t, `
postgres:
  dsn: postgres://localhost:5432/rbw
nats:
  url: nats://localhost:4222
matchmaking:
  match_size: 5
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RequiresDSN(t *testing.T) {
	path := writeConfigFile(t, `
nats:
  url: nats://localhost:4222
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
