package engine

import (
	"github.com/talgya/gymsim/internal/jumps"
	"github.com/talgya/gymsim/internal/stats"
)

// Session is one distinct training session within a day. Jump sessions and
// ordinary training on the same day use different effective happiness, so
// each is recorded with its own partial deltas.
type Session struct {
	Label     string                  `json:"label"` // "jump" or "training"
	Happiness float64                 `json:"happiness"`
	Energy    float64                 `json:"energy"` // energy actually spent
	Gains     stats.Vector            `json:"gains"`
	Venues    [stats.NumStats]string  `json:"venues"` // empty = stat not trained
	Note      string                  `json:"note,omitempty"`
}

// DailySnapshot captures full state at the end of a sampled day.
type DailySnapshot struct {
	Day         int                    `json:"day"`
	Stats       stats.Vector           `json:"stats"`
	Venues      [stats.NumStats]string `json:"venues"`
	EnergySpent float64                `json:"energy_spent"` // cumulative

	// Sessions is populated when more than one distinct session occurred
	// (a jump followed by ordinary training); otherwise the day's single
	// session is summarised by the top-level fields.
	Sessions []Session `json:"sessions,omitempty"`
}

// FeatureResult aggregates one enabled feature's contribution over a run.
// The Features map holds only kinds that actually fired or were configured,
// so consumers enumerate present features instead of null-checking a flat
// bag of optionals.
type FeatureResult struct {
	Kind        jumps.Kind   `json:"kind"`
	Jumps       int          `json:"jumps"`
	Cost        float64      `json:"cost"`
	Income      float64      `json:"income"`
	BonusEnergy float64      `json:"bonus_energy"`
	Gains       stats.Vector `json:"gains"`

	// AvgGainPerJump is Gains.Total()/Jumps, recomputed from summed totals
	// when sections are merged.
	AvgGainPerJump float64 `json:"avg_gain_per_jump"`

	// Occurrences holds per-firing gain attribution for kinds that need it
	// (Diabetes Day: jump 1 vs jump 2).
	Occurrences []stats.Vector `json:"occurrences,omitempty"`
}

func (f *FeatureResult) recomputeAvg() {
	if f.Jumps > 0 {
		f.AvgGainPerJump = f.Gains.Total() / float64(f.Jumps)
	} else {
		f.AvgGainPerJump = 0
	}
}

// Result is the complete outcome of a simulation run.
type Result struct {
	FirstDay    int             `json:"first_day"`
	LastDay     int             `json:"last_day"`
	Snapshots   []DailySnapshot `json:"snapshots"`
	Final       stats.Vector    `json:"final"`
	EnergySpent float64         `json:"energy_spent"` // cumulative, for chaining

	Features map[jumps.Kind]*FeatureResult `json:"features,omitempty"`
}

// feature returns (creating if needed) the aggregate slot for a kind.
func (r *Result) feature(kind jumps.Kind) *FeatureResult {
	if r.Features == nil {
		r.Features = make(map[jumps.Kind]*FeatureResult)
	}
	f, ok := r.Features[kind]
	if !ok {
		f = &FeatureResult{Kind: kind}
		r.Features[kind] = f
	}
	return f
}

// merge folds a later section's result into r. Day indices are already
// global, so snapshots concatenate; per-kind totals sum and averages are
// recomputed from the summed totals rather than averaged across sections.
func (r *Result) merge(next *Result) {
	r.LastDay = next.LastDay
	r.Snapshots = append(r.Snapshots, next.Snapshots...)
	r.Final = next.Final
	r.EnergySpent = next.EnergySpent

	for kind, nf := range next.Features {
		f := r.feature(kind)
		f.Jumps += nf.Jumps
		f.Cost += nf.Cost
		f.Income += nf.Income
		f.BonusEnergy += nf.BonusEnergy
		f.Gains = f.Gains.Plus(nf.Gains)
		f.Occurrences = append(f.Occurrences, nf.Occurrences...)
		f.recomputeAvg()
	}
}
