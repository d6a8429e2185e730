// Package formula implements the closed-form gym training gain computation.
// The constants were reverse-engineered from observed in-game gains; treat a
// mismatch against fresh observations as a calibration task, not a logic bug.
package formula

import (
	"math"

	"github.com/talgya/gymsim/internal/stats"
)

const (
	// MaxHappiness is the asymptotic happiness value the game allows. Jump
	// events that max out happiness train at exactly this value.
	MaxHappiness = 99999

	// Stats at or above dampThreshold are compressed before entering the
	// formula, giving diminishing returns for extremely high stats.
	dampThreshold = 50_000_000
	dampDivisor   = 8.77635

	happyLogDivisor = 250
	happyLogCoeff   = 0.07
	happyExponent   = 1.05

	outputDivisor = 200_000
)

// Per-stat lookup constants. Index by stats.Stat.
// Defense is the only stat with a negative B term.
var (
	lookupA = [stats.NumStats]float64{1600, 1600, 2100, 1800}
	lookupB = [stats.NumStats]float64{1700, 2000, -600, 1500}
)

// RoundN rounds v half-away-from-zero to n decimal places.
func RoundN(v float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(v*p) / p
}

// Percentage computes base*pct/100 with an intermediate rounding pass.
// The two-stage rounding matters: 175 at 70% is 122.49999999999999 under
// IEEE doubles, and a single math.Round would floor the .5 boundary to 122
// where the game resolves it to 123.
func Percentage(base, pct float64) float64 {
	return math.Round(RoundN(base*pct/100, 2))
}

// HappyMult returns the happiness multiplier applied to the current stat
// term. The inner log term is rounded to 4 decimals before scaling, and the
// final multiplier is rounded to 4 decimals again; both roundings are part
// of the observed behaviour and must not be collapsed into one.
func HappyMult(happiness float64) float64 {
	inner := RoundN(math.Log(1+happiness/happyLogDivisor), 4)
	return RoundN(1+happyLogCoeff*inner, 4)
}

// effectiveStat compresses stat values above the damping threshold.
func effectiveStat(current float64) float64 {
	if current < dampThreshold {
		return current
	}
	return (current-dampThreshold)/(dampDivisor*math.Log(current)) + dampThreshold
}

// Gain returns the stat increase from training once at a venue. It is pure
// and bit-for-bit deterministic for identical inputs.
//
// dots is the venue's quality rating for the stat, energyPerTrain the
// venue's energy cost per action, perkPct the passive per-stat bonus in
// percent. A non-positive dots or energy yields zero.
func Gain(st stats.Stat, current, happiness, perkPct, dots, energyPerTrain float64) float64 {
	if dots <= 0 || energyPerTrain <= 0 {
		return 0
	}
	h := happiness
	if h < 0 {
		h = 0
	}
	if h > MaxHappiness {
		h = MaxHappiness
	}

	s := effectiveStat(current)
	base := s*HappyMult(h) +
		8*math.Pow(h, happyExponent) +
		(1-math.Pow(h/MaxHappiness, 2))*lookupA[st] +
		lookupB[st]

	gain := dots * energyPerTrain * base / outputDivisor * (1 + perkPct/100)
	if gain < 0 {
		return 0
	}
	return gain
}
