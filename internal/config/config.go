// Package config loads the league configuration from YAML, falling back to
// sane defaults when the file is absent so the server starts without any
// local setup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lineup-advisor-mcp/internal/scoring"
)

// WaiverSettings tune the free-agent upgrade scan. ExcludeIDs is the
// injectable blocklist: roster-data policy, not algorithmic logic.
type WaiverSettings struct {
	MinGain         float64  `yaml:"min_gain"`
	MaxPerPosition  int      `yaml:"max_per_position"`
	MaxTotal        int      `yaml:"max_total"`
	MaxAlternatives int      `yaml:"max_alternatives"`
	ExcludeIDs      []string `yaml:"exclude_ids"`
}

// AutoSubSettings tune the contingency advisor.
type AutoSubSettings struct {
	RequireLaterStart bool `yaml:"require_later_start"`
}

// League is the full league configuration.
type League struct {
	RosterPositions []string        `yaml:"roster_positions"`
	Scoring         scoring.Weights `yaml:"scoring"`
	Waiver          WaiverSettings  `yaml:"waiver"`
	AutoSub         AutoSubSettings `yaml:"auto_sub"`
	CacheTTLMinutes int             `yaml:"cache_ttl_minutes"`
}

// Default is a standard 9-slot half-PPR league.
func Default() League {
	return League{
		RosterPositions: []string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "K", "DEF"},
		Scoring:         scoring.Default(),
		Waiver: WaiverSettings{
			MinGain:         1.5,
			MaxPerPosition:  3,
			MaxTotal:        10,
			MaxAlternatives: 2,
		},
		CacheTTLMinutes: 30,
	}
}

// Load reads a league config file. A missing file yields the defaults; a
// present but malformed file is an error.
func Load(path string) (League, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return League{}, fmt.Errorf("read league config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return League{}, fmt.Errorf("parse league config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return League{}, fmt.Errorf("validate league config: %w", err)
	}
	return cfg, nil
}

func validate(cfg League) error {
	if len(cfg.RosterPositions) == 0 {
		return fmt.Errorf("roster_positions must not be empty")
	}
	if cfg.Waiver.MinGain < 0 {
		return fmt.Errorf("waiver.min_gain must not be negative")
	}
	return nil
}
