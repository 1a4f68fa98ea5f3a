package config

import (
	"os"

	"github.com/ceruleanoak/hanafuda-sub000/internal/util"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hachi-hachi simulator
type Config struct {
	loaded bool

	Log struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`

	Simulation struct {
		// Rounds is the number of rounds to play
		Rounds int `yaml:"rounds" envconfig:"rounds"`
		// Seed shuffles deterministically when non-zero. 0 picks a random seed.
		Seed int64 `yaml:"seed" envconfig:"seed"`
		// DeckThreshold is the remaining-deck size at which automated players
		// stop risking
		DeckThreshold int `yaml:"deckThreshold" envconfig:"deck_threshold"`
		// MaxRedeals bounds the four-of-a-month redeal loop
		MaxRedeals int `yaml:"maxRedeals" envconfig:"max_redeals"`
	} `yaml:"simulation"`
}

// DefaultConfig returns the configuration before any file or environment
// overrides are applied
func DefaultConfig() Config {
	var c Config
	c.Log.Level = "info"
	c.Simulation.Rounds = 1
	c.Simulation.DeckThreshold = 4
	c.Simulation.MaxRedeals = 10

	return c
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// the defaults plus environment overrides are used instead.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("HH_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("hh", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
