// Package engine runs the day-by-day gym progression simulation.
package engine

import (
	"errors"
	"fmt"

	"github.com/talgya/gymsim/internal/energy"
	"github.com/talgya/gymsim/internal/gym"
	"github.com/talgya/gymsim/internal/jumps"
	"github.com/talgya/gymsim/internal/stats"
)

// ErrInvalidConfiguration marks configuration errors that fail a run before
// any day is simulated. There are no partial results: a run either returns a
// complete result or one of these.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config is the full set of knobs for one simulated span of days.
type Config struct {
	// Initial is the character's stats at the start of the span.
	Initial stats.Vector `json:"initial"`

	// InitialEnergySpent seeds the cumulative venue-unlock counter, letting
	// a run start mid-progression. Section chaining threads it between
	// sections.
	InitialEnergySpent float64 `json:"initial_energy_spent,omitempty"`

	// Weights is the relative training priority per stat; it need not sum
	// to 1. A zero weight means the stat is never trained.
	Weights [stats.NumStats]float64 `json:"weights"`

	// Perks is the passive per-stat gain bonus in percent.
	Perks [stats.NumStats]float64 `json:"perks"`

	// Happiness is the ordinary training happiness baseline.
	Happiness float64 `json:"happiness"`

	// Daily energy inputs.
	HoursPerDay    float64 `json:"hours_per_day"`
	ConsumablesPerDay int  `json:"consumables_per_day"`
	Refill         bool    `json:"refill"`
	BarMax         int     `json:"bar_max,omitempty"`
	BonusEnergy    float64 `json:"bonus_energy,omitempty"`

	// UnlockSpeed divides venue unlock thresholds; 0 means 1.
	UnlockSpeed float64 `json:"unlock_speed,omitempty"`

	// LockedVenue pins every training action to one venue by ID, bypassing
	// unlock thresholds. Used to study a single venue in isolation.
	LockedVenue string `json:"locked_venue,omitempty"`

	// Drift optionally rebalances weights on a cadence.
	Drift *energy.DriftPolicy `json:"drift,omitempty"`

	// Jumps are the enabled jump events.
	Jumps []jumps.Config `json:"jumps,omitempty"`

	// Day range. Single-section runs set Days (1..Days). Chained sections
	// set StartDay/EndDay in the global day range instead.
	Days     int `json:"days,omitempty"`
	StartDay int `json:"start_day,omitempty"`
	EndDay   int `json:"end_day,omitempty"`

	// SampleEvery snapshots every Nth day. First day, last day and jump
	// days are always snapshotted. 0 means only those mandatory days.
	SampleEvery int `json:"sample_every,omitempty"`
}

// span returns the inclusive global day range for the config.
func (c *Config) span() (int, int) {
	if c.StartDay > 0 && c.EndDay > 0 {
		return c.StartDay, c.EndDay
	}
	return 1, c.Days
}

// validate checks semantic consistency against the catalog. Shape errors
// (types, missing fields) are the scenario loader's concern.
func (c *Config) validate(catalog gym.Catalog) error {
	first, last := c.span()
	if first <= 0 || last < first {
		return fmt.Errorf("%w: day range %d..%d", ErrInvalidConfiguration, first, last)
	}

	totalWeight := 0.0
	for _, w := range c.Weights {
		if w < 0 {
			return fmt.Errorf("%w: negative stat weight", ErrInvalidConfiguration)
		}
		totalWeight += w
	}
	if totalWeight == 0 {
		return fmt.Errorf("%w: all stat weights are zero", ErrInvalidConfiguration)
	}

	if c.LockedVenue != "" {
		v := catalog.ByID(c.LockedVenue)
		if v == nil {
			return fmt.Errorf("%w: locked venue %q not in catalog", ErrInvalidConfiguration, c.LockedVenue)
		}
		if !v.OffersAny(c.Weights) {
			return fmt.Errorf("%w: locked venue %q offers none of the weighted stats", ErrInvalidConfiguration, c.LockedVenue)
		}
	}

	for i := range c.Jumps {
		if _, err := c.Jumps[i].Build(c.Happiness); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
	}
	return nil
}

// driftPolicy resolves the drift target: a zero target vector means "hold
// the initial stat ratio".
func (c *Config) driftPolicy() *energy.DriftPolicy {
	if c.Drift == nil {
		return nil
	}
	p := *c.Drift
	zero := true
	for _, t := range p.Target {
		if t > 0 {
			zero = false
			break
		}
	}
	if zero {
		for _, st := range stats.AllStats() {
			p.Target[st] = c.Initial.Get(st)
		}
	}
	return &p
}
