package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlpha     = 0.3
	DefaultDelta     = 0.1
	DefaultSavings   = 0.3
	DefaultCapital   = 2.0
	DefaultHorizon   = 150
	DefaultTolerance = 1e-6
)

type Config struct {
	Model          string  `yaml:"model"`
	Alpha          float64 `yaml:"alpha"`
	Delta          float64 `yaml:"delta"`
	Savings        float64 `yaml:"savings"`
	InitialCapital float64 `yaml:"k0"`
	Horizon        int     `yaml:"horizon"`
	Tolerance      float64 `yaml:"tolerance"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:          "solow",
		Alpha:          DefaultAlpha,
		Delta:          DefaultDelta,
		Savings:        DefaultSavings,
		InitialCapital: DefaultCapital,
		Horizon:        DefaultHorizon,
		Tolerance:      DefaultTolerance,
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
