package config

import (
	"os"
	"testing"

	"github.com/ceruleanoak/hanafuda-sub000/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HH_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HH_SIMULATION_SEED", "123")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal(20, cfg.Simulation.Rounds)
	a.Equal(6, cfg.Simulation.DeckThreshold)
	// file values lose to the environment
	a.Equal(int64(123), cfg.Simulation.Seed)
	// absent keys keep their defaults
	a.Equal(10, cfg.Simulation.MaxRedeals)

	// ensure that it's only loaded once
	_ = os.Setenv("HH_SIMULATION_SEED", "456")
	// ensure we aren't using a pointer
	cfg.Simulation.Seed = -1
	cfg = Instance()
	a.Equal(int64(123), cfg.Simulation.Seed)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("HH_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Simulation.Rounds)
	assert.Equal(t, 4, cfg.Simulation.DeckThreshold)
}
