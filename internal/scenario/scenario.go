// Package scenario loads simulation configurations from YAML files and
// resolves them against a venue catalog.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/gymsim/internal/energy"
	"github.com/talgya/gymsim/internal/engine"
	"github.com/talgya/gymsim/internal/gym"
	"github.com/talgya/gymsim/internal/jumps"
	"github.com/talgya/gymsim/internal/stats"
)

// File is the top-level YAML document: either a single scenario or a list
// of chained sections.
type File struct {
	Scenario *Section  `yaml:"scenario"`
	Sections []Section `yaml:"sections"`
}

// Section is one simulation span in YAML form. Stat-keyed values are maps
// ("strength: 1") so files stay readable.
type Section struct {
	Days     int `yaml:"days"`
	StartDay int `yaml:"start_day"`
	EndDay   int `yaml:"end_day"`

	Initial map[string]float64 `yaml:"initial"`
	Weights map[string]float64 `yaml:"weights"`
	Perks   map[string]float64 `yaml:"perks"`

	Happiness         float64 `yaml:"happiness"`
	HoursPerDay       float64 `yaml:"hours_per_day"`
	ConsumablesPerDay int     `yaml:"consumables_per_day"`
	Refill            bool    `yaml:"refill"`
	BarMax            int     `yaml:"bar_max"`
	BonusEnergy       float64 `yaml:"bonus_energy"`

	UnlockSpeed        float64 `yaml:"unlock_speed"`
	InitialEnergySpent float64 `yaml:"initial_energy_spent"`
	LockedVenue        string  `yaml:"locked_venue"`
	SampleEvery        int     `yaml:"sample_every"`

	Drift *driftSection  `yaml:"drift"`
	Jumps []jumps.Config `yaml:"jumps"`
}

type driftSection struct {
	Percent   float64            `yaml:"percent"`
	EveryDays int                `yaml:"every_days"`
	Target    map[string]float64 `yaml:"target"`
}

// Load reads and parses a scenario file. A missing file is an error: a
// scenario is required input, not an optional override.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if f.Scenario == nil && len(f.Sections) == 0 {
		return nil, fmt.Errorf("scenario file defines neither a scenario nor sections")
	}
	if f.Scenario != nil && len(f.Sections) > 0 {
		return nil, fmt.Errorf("scenario file defines both a scenario and sections")
	}
	return &f, nil
}

// Configs resolves the file into engine configurations against a catalog.
// Venue names go through fuzzy resolution so typos get suggestions.
func (f *File) Configs(catalog gym.Catalog) ([]engine.Config, error) {
	if f.Scenario != nil {
		cfg, err := f.Scenario.toConfig(catalog)
		if err != nil {
			return nil, err
		}
		return []engine.Config{cfg}, nil
	}

	configs := make([]engine.Config, 0, len(f.Sections))
	for i := range f.Sections {
		cfg, err := f.Sections[i].toConfig(catalog)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i+1, err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func (s *Section) toConfig(catalog gym.Catalog) (engine.Config, error) {
	initial, err := toVector(s.Initial)
	if err != nil {
		return engine.Config{}, fmt.Errorf("initial: %w", err)
	}
	weights, err := toArray(s.Weights)
	if err != nil {
		return engine.Config{}, fmt.Errorf("weights: %w", err)
	}
	perks, err := toArray(s.Perks)
	if err != nil {
		return engine.Config{}, fmt.Errorf("perks: %w", err)
	}

	cfg := engine.Config{
		Initial:            initial,
		InitialEnergySpent: s.InitialEnergySpent,
		Weights:            weights,
		Perks:              perks,
		Happiness:          s.Happiness,
		HoursPerDay:        s.HoursPerDay,
		ConsumablesPerDay:  s.ConsumablesPerDay,
		Refill:             s.Refill,
		BarMax:             s.BarMax,
		BonusEnergy:        s.BonusEnergy,
		UnlockSpeed:        s.UnlockSpeed,
		Jumps:              s.Jumps,
		Days:               s.Days,
		StartDay:           s.StartDay,
		EndDay:             s.EndDay,
		SampleEvery:        s.SampleEvery,
	}

	if s.LockedVenue != "" {
		v, err := catalog.Resolve(s.LockedVenue)
		if err != nil {
			return engine.Config{}, err
		}
		cfg.LockedVenue = v.ID
	}

	if s.Drift != nil {
		target, err := toArray(s.Drift.Target)
		if err != nil {
			return engine.Config{}, fmt.Errorf("drift target: %w", err)
		}
		cfg.Drift = &energy.DriftPolicy{
			Percent:   s.Drift.Percent,
			EveryDays: s.Drift.EveryDays,
			Target:    target,
		}
	}
	return cfg, nil
}

func toVector(m map[string]float64) (stats.Vector, error) {
	var v stats.Vector
	for name, value := range m {
		st, err := stats.ParseStat(name)
		if err != nil {
			return stats.Vector{}, err
		}
		v.Set(st, value)
	}
	return v, nil
}

func toArray(m map[string]float64) ([stats.NumStats]float64, error) {
	var a [stats.NumStats]float64
	for name, value := range m {
		st, err := stats.ParseStat(name)
		if err != nil {
			return a, err
		}
		a[st] = value
	}
	return a, nil
}
