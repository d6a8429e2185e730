package energy

import (
	"math"

	"github.com/talgya/gymsim/internal/stats"
)

// DriftPolicy periodically rebalances training weights so stats that lag
// behind their target share receive more energy going forward. It is a
// feedback loop over the simulation's own output: Rebalance reads the stats
// the run has actually produced so far.
type DriftPolicy struct {
	// Percent controls correction strength; 0 disables correction, 100
	// applies the full target/actual ratio.
	Percent float64 `json:"percent" yaml:"percent"`

	// EveryDays is the rebalance cadence, counted from the start of the run.
	EveryDays int `json:"every_days" yaml:"every_days"`

	// Target is the desired stat ratio. A zero vector means "hold the
	// initial ratio", resolved by the engine before the run starts.
	Target [stats.NumStats]float64 `json:"target" yaml:"target,flow"`
}

// Due reports whether the policy should rebalance on the given day of the
// run (1-based, relative to the run start).
func (p *DriftPolicy) Due(runDay int) bool {
	if p == nil || p.EveryDays <= 0 || runDay <= 0 {
		return false
	}
	return runDay%p.EveryDays == 0
}

// Rebalance derives new weights from the base weights and the currently
// achieved stats. Each weight is scaled by (targetShare/actualShare)
// raised to Percent/100, so a stat sitting below its target share gains
// weight and one ahead of target loses it. Stats with a zero base weight
// stay at zero.
func (p *DriftPolicy) Rebalance(base [stats.NumStats]float64, current stats.Vector) [stats.NumStats]float64 {
	if p == nil || p.Percent <= 0 {
		return base
	}

	targetTotal := 0.0
	for _, t := range p.Target {
		targetTotal += t
	}
	curTotal := current.Total()
	if targetTotal <= 0 || curTotal <= 0 {
		return base
	}

	exp := p.Percent / 100
	out := base
	for _, st := range stats.AllStats() {
		if base[st] <= 0 {
			continue
		}
		targetShare := p.Target[st] / targetTotal
		actualShare := current.Get(st) / curTotal
		if targetShare <= 0 || actualShare <= 0 {
			continue
		}
		out[st] = base[st] * math.Pow(targetShare/actualShare, exp)
	}
	return out
}
