// Package energy models the daily training energy budget and its split
// across the four stats.
package energy

import (
	"math"

	"github.com/talgya/gymsim/internal/stats"
)

const (
	// RegenPerHour is the natural energy regeneration rate (5 per 15 min).
	RegenPerHour = 20

	// ConsumableEnergy is the energy granted by one energy consumable.
	ConsumableEnergy = 250

	// BarSmall and BarLarge are the two possible energy bar maximums. A
	// refill restores one full bar.
	BarSmall = 100
	BarLarge = 150
)

// Daily computes the total training energy available on one day. Hours
// played are clamped to a full day; consumables and the flat bonus are
// additive; a refill adds one full bar.
func Daily(hoursPlayed float64, consumables int, refill bool, barMax int, bonusFlat float64) float64 {
	hours := hoursPlayed
	if hours < 0 {
		hours = 0
	}
	if hours > 24 {
		hours = 24
	}
	if barMax != BarSmall && barMax != BarLarge {
		barMax = BarLarge
	}

	total := hours*RegenPerHour + float64(consumables)*ConsumableEnergy + bonusFlat
	if refill {
		total += float64(barMax)
	}
	if total < 0 {
		return 0
	}
	return total
}

// Allocate splits total energy across the four stats in proportion to the
// weights. A zero weight yields zero energy for that stat. Callers validate
// that at least one weight is positive; with all-zero weights the split is
// all zeros.
func Allocate(total float64, weights [stats.NumStats]float64) [stats.NumStats]float64 {
	var out [stats.NumStats]float64
	if total <= 0 {
		return out
	}

	sum := 0.0
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	if sum <= 0 {
		return out
	}

	for _, st := range stats.AllStats() {
		if weights[st] > 0 {
			out[st] = total * weights[st] / sum
		}
	}
	return out
}

// Trains converts a stat's energy share into whole training actions at a
// venue's per-train cost. Remainder energy is lost, matching the modeled
// mechanic: partial trains do not carry over to the next day.
func Trains(share, energyPerTrain float64) int {
	if share <= 0 || energyPerTrain <= 0 {
		return 0
	}
	return int(math.Floor(share / energyPerTrain))
}
