package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 2.0
	DefaultSpins    = 100
	DefaultRadius   = 1.0
	DefaultPhantom  = "ring"
	DefaultScenario = "drift"
)

// Config carries the run parameters of a trajectory evaluation. Motion
// definitions themselves are never serialized; scenarios are selected by
// preset name.
type Config struct {
	Phantom  string  `yaml:"phantom"`
	Scenario string  `yaml:"scenario"`
	Spins    int     `yaml:"spins"`
	Radius   float64 `yaml:"radius"`
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	Seed     int64   `yaml:"seed"`
	DataDir  string  `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Phantom:  DefaultPhantom,
		Scenario: DefaultScenario,
		Spins:    DefaultSpins,
		Radius:   DefaultRadius,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		DataDir:  ".spinmotion",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	if c.Spins <= 0 {
		return fmt.Errorf("spins must be positive, got %d", c.Spins)
	}
	return nil
}
