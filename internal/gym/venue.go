// Package gym provides the training venue catalog and venue selection.
package gym

import (
	"github.com/talgya/gymsim/internal/stats"
)

// Requirement is a dynamic eligibility predicate for specialty venues. It is
// re-evaluated against the current stat snapshot on every selection, so a
// venue can drop back out of eligibility as stats drift.
type Requirement func(stats.Vector) bool

// Venue is a single training location. Immutable once built.
type Venue struct {
	ID   string
	Name string

	// Dots holds the per-stat quality rating, indexed by stats.Stat.
	// Zero means the venue does not offer that stat.
	Dots [stats.NumStats]float64

	// Energy is the energy cost per training action.
	Energy float64

	// Unlock is the cumulative energy spent required to unlock the venue.
	Unlock float64

	// Requires is nil for standard venues. Specialty venues set it and stay
	// locked until the predicate holds, regardless of energy spent.
	Requires Requirement
}

// Offers reports whether the venue trains the given stat.
func (v *Venue) Offers(st stats.Stat) bool {
	return v.Dots[st] > 0
}

// OffersAny reports whether the venue trains any stat with a positive weight.
func (v *Venue) OffersAny(weights [stats.NumStats]float64) bool {
	for _, st := range stats.AllStats() {
		if weights[st] > 0 && v.Offers(st) {
			return true
		}
	}
	return false
}

// Catalog is an ordered list of venues. Order matters: selection ties break
// toward the earlier entry.
type Catalog []Venue

// ByID returns the venue with the given ID, or nil.
func (c Catalog) ByID(id string) *Venue {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}

// Best returns the highest-dots venue for a stat among venues that offer the
// stat, are unlocked at the given cumulative energy spend, and whose
// requirement (if any) holds for the current stats. An unlock-speed benefit
// divides the threshold. The bool result is false when no venue qualifies;
// that is a per-stat per-day condition, not an error.
func (c Catalog) Best(st stats.Stat, energySpent, unlockSpeed float64, current stats.Vector) (*Venue, bool) {
	if unlockSpeed <= 0 {
		unlockSpeed = 1
	}
	var best *Venue
	for i := range c {
		v := &c[i]
		if !v.Offers(st) {
			continue
		}
		if energySpent < v.Unlock/unlockSpeed {
			continue
		}
		if v.Requires != nil && !v.Requires(current) {
			continue
		}
		if best == nil || v.Dots[st] > best.Dots[st] {
			best = v
		}
	}
	return best, best != nil
}

// dominanceRatio is how far ahead a specialty venue requires its side to be:
// the favoured stat (or stat pair) must be at least 125% of the opposition.
const dominanceRatio = 1.25

// SingleStatDominant builds a requirement that the given stat is at least
// 125% of the next-highest stat.
func SingleStatDominant(st stats.Stat) Requirement {
	return func(v stats.Vector) bool {
		return v.Get(st) >= dominanceRatio*v.MaxOther(st)
	}
}

// PairDominant builds a requirement that the combined pair is at least 125%
// of the combined remaining two stats.
func PairDominant(a, b stats.Stat) Requirement {
	return func(v stats.Vector) bool {
		side := v.Get(a) + v.Get(b)
		other := v.Total() - side
		return side >= dominanceRatio*other
	}
}
