package jumps

import (
	"fmt"

	"github.com/talgya/gymsim/internal/formula"
	"github.com/talgya/gymsim/internal/stats"
)

// Periodic covers the item-consuming jump kinds: eDVD, candy, stacked candy
// and energy items. They fire every interval from a start day until an
// optional jump-count or stat-target limit is reached.
type Periodic struct {
	kind     Kind
	start    int
	interval int

	maxJumps    int
	targetStat  stats.Stat
	hasTarget   bool
	targetValue float64

	quantity      int
	happyPerItem  float64
	energyPerItem float64
	unitCost      float64
	factionPct    float64
	jumpEnergy    float64
	stacked       bool

	baseHappiness float64
	fired         int
}

func (c Config) buildPeriodic(baseHappiness float64) (*Periodic, error) {
	if c.IntervalDays <= 0 {
		return nil, fmt.Errorf("jump %s: interval_days must be positive", c.Kind)
	}
	if c.Quantity <= 0 {
		return nil, fmt.Errorf("jump %s: quantity must be positive", c.Kind)
	}
	st, hasTarget, err := c.targetStat()
	if err != nil {
		return nil, err
	}
	if hasTarget && c.TargetValue <= 0 {
		return nil, fmt.Errorf("jump %s: target_stat set without target_value", c.Kind)
	}

	p := &Periodic{
		kind:          c.Kind,
		start:         c.StartDay,
		interval:      c.IntervalDays,
		maxJumps:      c.MaxJumps,
		targetStat:    st,
		hasTarget:     hasTarget,
		targetValue:   c.TargetValue,
		quantity:      c.Quantity,
		happyPerItem:  c.HappyPerItem,
		energyPerItem: c.EnergyPerItem,
		unitCost:      c.UnitCost,
		factionPct:    c.FactionPct,
		jumpEnergy:    c.JumpEnergy,
		baseHappiness: baseHappiness,
	}
	if p.start <= 0 {
		p.start = 1
	}

	switch c.Kind {
	case KindEDVD:
		if p.happyPerItem == 0 {
			p.happyPerItem = DefaultEDVDHappy
		}
	case KindCandy:
		if p.happyPerItem == 0 {
			p.happyPerItem = DefaultCandyHappy
		}
	case KindStackedCandy:
		if p.happyPerItem == 0 {
			p.happyPerItem = DefaultCandyHappy
		}
		// Stacking pairs each candy with the combination consumable,
		// doubling the happiness yield of the stack.
		p.stacked = true
	case KindEnergyItem:
		if p.energyPerItem == 0 {
			p.energyPerItem = DefaultItemEnergy
		}
	}
	// A happiness jump trains with stockpiled energy; without it the
	// override would have nothing to apply to.
	if p.happyPerItem > 0 && p.jumpEnergy == 0 {
		p.jumpEnergy = DefaultJumpEnergy
	}
	return p, nil
}

func (p *Periodic) Kind() Kind { return p.kind }

// ShouldFire honours the day schedule first, then the optional limits:
// an absolute jump count and a stat-target total. Either configured limit
// stops further firing even when the schedule would trigger.
func (p *Periodic) ShouldFire(day int, led *Ledger) bool {
	if day < p.start || (day-p.start)%p.interval != 0 {
		return false
	}
	if p.maxJumps > 0 && p.fired >= p.maxJumps {
		return false
	}
	if p.hasTarget && led.Stats.Get(p.targetStat) >= p.targetValue {
		return false
	}
	return true
}

func (p *Periodic) Effect(day int, led *Ledger) Effect {
	p.fired++
	led.Fired[p.kind]++

	eff := Effect{
		Cost: float64(p.quantity) * p.unitCost,
		Note: fmt.Sprintf("%s jump %d: %d items", p.kind, p.fired, p.quantity),
	}

	if p.happyPerItem > 0 {
		boost := float64(p.quantity) * p.happyPerItem
		if p.stacked {
			boost *= 2
		}
		if p.factionPct > 0 {
			boost += formula.Percentage(boost, p.factionPct)
		}
		hap := p.baseHappiness + boost
		if hap > formula.MaxHappiness {
			hap = formula.MaxHappiness
		}
		eff.Happiness = hap
	}

	if p.energyPerItem > 0 {
		bonus := float64(p.quantity) * p.energyPerItem
		if p.factionPct > 0 {
			bonus += formula.Percentage(bonus, p.factionPct)
		}
		eff.BonusEnergy = bonus
	}
	eff.BonusEnergy += p.jumpEnergy

	return eff
}
