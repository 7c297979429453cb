package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hordebreak/server/internal/world"
	"hordebreak/server/logging"
)

// runConfig is the operator-facing server configuration, loadable from a
// YAML file and overridable by flags.
type runConfig struct {
	Addr string `yaml:"addr"`

	Seed               int64   `yaml:"seed"`
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	BossTriggerSeconds float64 `yaml:"bossTriggerSeconds"`
	SpawnBaseInterval  float64 `yaml:"spawnBaseInterval"`
	SpawnMinInterval   float64 `yaml:"spawnMinInterval"`
	DraftSize          int     `yaml:"draftSize"`
	Weapon             string  `yaml:"weapon"`

	Logging loggingConfig `yaml:"logging"`
}

type loggingConfig struct {
	Sinks       []string `yaml:"sinks"`
	JSONPath    string   `yaml:"jsonPath"`
	Color       bool     `yaml:"color"`
	MinSeverity string   `yaml:"minSeverity"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		Addr: ":8080",
		Logging: loggingConfig{
			Sinks:    []string{"console"},
			JSONPath: "events.ndjson",
		},
	}
}

// loadRunConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// worldConfig translates the operator config into simulation settings.
func (c runConfig) worldConfig() world.Config {
	return world.Config{
		Seed:               c.Seed,
		Width:              c.Width,
		Height:             c.Height,
		BossTriggerSeconds: c.BossTriggerSeconds,
		SpawnBaseInterval:  c.SpawnBaseInterval,
		SpawnMinInterval:   c.SpawnMinInterval,
		DraftSize:          c.DraftSize,
		PlayerWeaponID:     c.Weapon,
	}
}

// loggingRouterConfig translates the operator config for the event router.
func (c runConfig) loggingRouterConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if len(c.Logging.Sinks) > 0 {
		cfg.EnabledSinks = c.Logging.Sinks
	}
	if c.Logging.JSONPath != "" {
		cfg.JSON.FilePath = c.Logging.JSONPath
	}
	cfg.Console.UseColor = c.Logging.Color
	switch c.Logging.MinSeverity {
	case "debug":
		cfg.MinimumSeverity = logging.SeverityDebug
	case "warn":
		cfg.MinimumSeverity = logging.SeverityWarn
	case "error":
		cfg.MinimumSeverity = logging.SeverityError
	}
	return cfg
}
