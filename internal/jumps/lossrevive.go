package jumps

import "fmt"

// LossRevive is the one energy-reducing, income-producing event: the
// character throws fights for paying revive customers. It subtracts from the
// day's ordinary training budget (applied before allocation) and adds to a
// currency aggregate; it never touches stats.
type LossRevive struct {
	start    int
	interval int
	losses   int
	payout   float64
	maxJumps int
	fired    int
}

func (c Config) buildLossRevive() (*LossRevive, error) {
	if c.IntervalDays <= 0 {
		return nil, fmt.Errorf("jump %s: interval_days must be positive", c.Kind)
	}
	if c.Losses <= 0 {
		return nil, fmt.Errorf("jump %s: losses must be positive", c.Kind)
	}
	l := &LossRevive{
		start:    c.StartDay,
		interval: c.IntervalDays,
		losses:   c.Losses,
		payout:   c.Payout,
		maxJumps: c.MaxJumps,
	}
	if l.start <= 0 {
		l.start = 1
	}
	return l, nil
}

func (l *LossRevive) Kind() Kind { return KindLossRevive }

func (l *LossRevive) ShouldFire(day int, led *Ledger) bool {
	if day < l.start || (day-l.start)%l.interval != 0 {
		return false
	}
	if l.maxJumps > 0 && l.fired >= l.maxJumps {
		return false
	}
	return true
}

func (l *LossRevive) Effect(day int, led *Ledger) Effect {
	l.fired++
	led.Fired[KindLossRevive]++
	return Effect{
		EnergyPenalty: float64(l.losses) * LossEnergyCost,
		Income:        float64(l.losses) * l.payout,
		Note:          fmt.Sprintf("loss/revive: %d losses sold", l.losses),
	}
}
