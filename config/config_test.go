package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServeConfigDefaults(t *testing.T) {
	cfg := &ServeConfig{}
	err := cfg.Load(nil)
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestServeConfigOverride(t *testing.T) {
	cfg := &ServeConfig{}
	err := cfg.Load([]string{"-addr", ":9090"})
	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestSimulateConfigDefaults(t *testing.T) {
	cfg := &SimulateConfig{}
	err := cfg.Load(nil)
	assert.NoError(t, err)
	assert.Equal(t, 1000, cfg.NumGames)
	assert.Equal(t, "greedy", cfg.Player1)
	assert.Equal(t, "greedy", cfg.Player2)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.Verbose)
}

func TestSimulateConfigOverride(t *testing.T) {
	cfg := &SimulateConfig{}
	err := cfg.Load([]string{"-n", "50", "-p1", "random", "-p2", "weighted", "-seed", "9", "-verbose"})
	assert.NoError(t, err)
	assert.Equal(t, 50, cfg.NumGames)
	assert.Equal(t, "random", cfg.Player1)
	assert.Equal(t, "weighted", cfg.Player2)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.True(t, cfg.Verbose)
}
