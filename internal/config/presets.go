package config

import "sort"

var Presets = map[string]*Config{
	"baseline": {
		Model: "solow", Alpha: 0.3, Delta: 0.1, Savings: 0.3,
		InitialCapital: 2.0, Horizon: 150, Tolerance: 1e-6,
	},
	"thrifty": {
		Model: "solow", Alpha: 0.3, Delta: 0.1, Savings: 0.6,
		InitialCapital: 2.0, Horizon: 200, Tolerance: 1e-6,
	},
	"spendthrift": {
		Model: "solow", Alpha: 0.3, Delta: 0.1, Savings: 0.05,
		InitialCapital: 2.0, Horizon: 200, Tolerance: 1e-6,
	},
	"golden-rule": {
		Model: "solow", Alpha: 0.3, Delta: 0.1, Savings: 0.3,
		InitialCapital: 2.0, Horizon: 300, Tolerance: 1e-6,
	},
	"rapid-decay": {
		Model: "solow", Alpha: 0.3, Delta: 0.5, Savings: 0.3,
		InitialCapital: 5.0, Horizon: 100, Tolerance: 1e-6,
	},
	"overshoot": {
		Model: "solow", Alpha: 0.3, Delta: 0.1, Savings: 0.3,
		InitialCapital: 12.0, Horizon: 300, Tolerance: 1e-6,
	},
}

// GetPreset returns a copy, so callers may tweak it freely without
// poisoning later lookups.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
