package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/gymsim/internal/energy"
	"github.com/talgya/gymsim/internal/formula"
	"github.com/talgya/gymsim/internal/gym"
	"github.com/talgya/gymsim/internal/jumps"
	"github.com/talgya/gymsim/internal/stats"
)

// Simulate runs one configuration over its day range. The catalog is
// read-only and may be shared between concurrent runs; everything mutable
// is local to the run, so identical inputs produce bit-identical results.
func Simulate(catalog gym.Catalog, cfg Config) (*Result, error) {
	if err := cfg.validate(catalog); err != nil {
		return nil, err
	}

	events := make([]jumps.Event, 0, len(cfg.Jumps))
	for _, jc := range cfg.Jumps {
		ev, err := jc.Build(cfg.Happiness)
		if err != nil {
			// validate already built every config once.
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		events = append(events, ev)
	}

	r := &run{
		catalog:     catalog,
		cfg:         cfg,
		events:      events,
		ledger:      jumps.NewLedger(cfg.Initial),
		baseWeights: cfg.Weights,
		weights:     cfg.Weights,
		drift:       cfg.driftPolicy(),
		current:     cfg.Initial,
		spent:       cfg.InitialEnergySpent,
	}
	if cfg.LockedVenue != "" {
		r.locked = catalog.ByID(cfg.LockedVenue)
	}
	return r.run(), nil
}

// run holds the mutable state of one simulation run.
type run struct {
	catalog gym.Catalog
	cfg     Config
	events  []jumps.Event
	ledger  *jumps.Ledger
	locked  *gym.Venue
	drift   *energy.DriftPolicy

	baseWeights [stats.NumStats]float64
	weights     [stats.NumStats]float64
	current     stats.Vector
	spent       float64
}

// firedEffect pairs an event with the effect it produced today.
type firedEffect struct {
	event  jumps.Event
	effect jumps.Effect
}

func (r *run) run() *Result {
	first, last := r.cfg.span()
	res := &Result{FirstDay: first, LastDay: last, Final: r.current}
	for _, ev := range r.events {
		res.feature(ev.Kind())
	}

	for day := first; day <= last; day++ {
		runDay := day - first + 1

		// Events see the stats achieved by the end of the previous day.
		r.ledger.Stats = r.current

		if r.drift.Due(runDay) {
			r.weights = r.drift.Rebalance(r.baseWeights, r.current)
		}

		// 1. Jump events.
		var fired []firedEffect
		jumpHappiness := 0.0
		jumpBudget := 0.0
		ordinaryExtra := 0.0
		penalty := 0.0
		for _, ev := range r.events {
			if !ev.ShouldFire(day, r.ledger) {
				continue
			}
			eff := ev.Effect(day, r.ledger)
			fired = append(fired, firedEffect{event: ev, effect: eff})

			f := res.feature(ev.Kind())
			f.Jumps++
			f.Cost += eff.Cost
			f.Income += eff.Income
			f.BonusEnergy += eff.BonusEnergy

			if eff.Happiness > 0 {
				// Overrides compose: the strongest happiness wins and the
				// contributed energies pool into one jump session.
				if eff.Happiness > jumpHappiness {
					jumpHappiness = eff.Happiness
				}
				jumpBudget += eff.BonusEnergy
			} else {
				ordinaryExtra += eff.BonusEnergy
			}
			penalty += eff.EnergyPenalty

			slog.Debug("jump fired", "day", day, "kind", ev.Kind(), "note", eff.Note)
		}

		var sessions []Session

		// Jump session: pooled event energy at the overridden happiness.
		if jumpHappiness > 0 && jumpBudget > 0 {
			sess := r.trainSession(jumpBudget, jumpHappiness, "jump")
			r.attribute(res, fired, jumpBudget, sess.Gains)
			sessions = append(sessions, sess)
		}

		// 2–3. Ordinary daily energy, minus any loss/revive deduction.
		daily := energy.Daily(r.cfg.HoursPerDay, r.cfg.ConsumablesPerDay, r.cfg.Refill, r.cfg.BarMax, r.cfg.BonusEnergy)
		budget := daily + ordinaryExtra - penalty
		if budget < 0 {
			budget = 0
		}
		if budget > 0 {
			sessions = append(sessions, r.trainSession(budget, r.cfg.Happiness, "training"))
		}

		// 4. Snapshot.
		sampled := day == first || day == last || len(fired) > 0 ||
			(r.cfg.SampleEvery > 0 && runDay%r.cfg.SampleEvery == 0)
		if sampled {
			res.Snapshots = append(res.Snapshots, r.snapshot(day, sessions))
		}
	}

	res.Final = r.current
	res.EnergySpent = r.spent
	for _, f := range res.Features {
		f.recomputeAvg()
	}

	slog.Debug("section complete",
		"first_day", first,
		"last_day", last,
		"final_total", res.Final.Total(),
		"energy_spent", res.EnergySpent,
	)
	return res
}

// trainSession allocates a budget across the weighted stats, resolves the
// best venue per stat and applies the growth formula once per whole training
// action, compounding within the session.
func (r *run) trainSession(budget, happiness float64, label string) Session {
	sess := Session{Label: label, Happiness: happiness}
	alloc := energy.Allocate(budget, r.weights)

	for _, st := range stats.AllStats() {
		share := alloc[st]
		if share <= 0 {
			continue
		}

		venue := r.locked
		if venue == nil {
			v, ok := r.catalog.Best(st, r.spent, r.cfg.UnlockSpeed, r.current)
			if !ok {
				// Ineligible today: no venue trains this stat. Zero spend,
				// zero gain, and the snapshot shows the stat untrained.
				continue
			}
			venue = v
		} else if !venue.Offers(st) {
			continue
		}
		sess.Venues[st] = venue.ID

		trains := energy.Trains(share, venue.Energy)
		if trains == 0 {
			continue
		}
		for t := 0; t < trains; t++ {
			gain := formula.Gain(st, r.current.Get(st), happiness, r.cfg.Perks[st], venue.Dots[st], venue.Energy)
			r.current.Add(st, gain)
			sess.Gains.Add(st, gain)
		}
		used := float64(trains) * venue.Energy
		r.spent += used
		sess.Energy += used
	}
	return sess
}

// attribute splits a jump session's gains across the events that funded it,
// proportionally to the energy each contributed. Diabetes Day occurrences
// additionally record their own share for jump-1 vs jump-2 reporting.
func (r *run) attribute(res *Result, fired []firedEffect, total float64, gains stats.Vector) {
	if total <= 0 {
		return
	}
	for _, fe := range fired {
		if fe.effect.Happiness <= 0 || fe.effect.BonusEnergy <= 0 {
			continue
		}
		share := gains.Scale(fe.effect.BonusEnergy / total)
		f := res.feature(fe.event.Kind())
		f.Gains = f.Gains.Plus(share)
		if fe.event.Kind() == jumps.KindDiabetesDay {
			f.Occurrences = append(f.Occurrences, share)
		}
	}
}

// snapshot records end-of-day state. With a single session the day is
// summarised flat; with several (jump plus ordinary training) the
// per-session detail is kept so each session's gains stay attributable.
func (r *run) snapshot(day int, sessions []Session) DailySnapshot {
	snap := DailySnapshot{
		Day:         day,
		Stats:       r.current,
		EnergySpent: r.spent,
	}
	switch len(sessions) {
	case 0:
	case 1:
		snap.Venues = sessions[0].Venues
	default:
		snap.Venues = sessions[len(sessions)-1].Venues
		snap.Sessions = sessions
	}
	return snap
}
