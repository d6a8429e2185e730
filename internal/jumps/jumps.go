// Package jumps implements the library of happiness- and energy-boosting
// events layered on top of ordinary daily training. Each kind is a
// self-contained strategy: it decides whether it fires on a day, reports its
// effect on that day's training, and accounts its own cost or income.
package jumps

import (
	"fmt"

	"github.com/talgya/gymsim/internal/stats"
)

// Kind identifies a jump event variant.
type Kind string

const (
	KindEDVD         Kind = "edvd"
	KindCandy        Kind = "candy"
	KindStackedCandy Kind = "stacked-candy"
	KindEnergyItem   Kind = "energy-item"
	KindLossRevive   Kind = "loss-revive"
	KindDiabetesDay  Kind = "diabetes-day"
)

// Effect is what one event contributes to a single day.
type Effect struct {
	// Happiness overrides the day's training happiness for the jump
	// session when positive. Zero means no override: the event's bonus
	// energy trains at ordinary happiness.
	Happiness float64

	// BonusEnergy is extra training energy granted for the day.
	BonusEnergy float64

	// EnergyPenalty is energy removed from the ordinary budget before
	// allocation (loss/revive).
	EnergyPenalty float64

	// Cost and Income are currency amounts attributed to the event.
	Cost   float64
	Income float64

	Note string
}

// Ledger carries the per-run state events consult when deciding whether to
// fire: counts so far and the stats achieved by the end of the previous day.
type Ledger struct {
	Fired map[Kind]int
	Stats stats.Vector
}

// NewLedger returns an empty ledger for one run.
func NewLedger(initial stats.Vector) *Ledger {
	return &Ledger{Fired: make(map[Kind]int), Stats: initial}
}

// Event is the shared contract all jump kinds implement. Events hold their
// own mutable firing state, so a fresh set must be built for every run.
type Event interface {
	Kind() Kind
	ShouldFire(day int, led *Ledger) bool
	Effect(day int, led *Ledger) Effect
}

// Per-kind default magnitudes, applied by Build when the config leaves the
// corresponding field zero.
const (
	DefaultEDVDHappy   = 2500 // happiness per erotic DVD
	DefaultCandyHappy  = 35   // happiness per candy
	DefaultItemEnergy  = 30   // energy per energy drink
	DefaultJumpEnergy  = 400  // energy stockpiled for a happiness jump: a saved full bar plus one consumable
	LossEnergyCost     = 25   // energy consumed per thrown loss
	DefaultPairEnergy  = 150  // the fixed consumable pair on Diabetes Day
	couponEnergyTier   = 50   // hotel coupon energy per tier
	eggEnergyTier      = 50   // green egg energy per tier
	seasonalMailEnergy = 25
	logoClickEnergy    = 50
)

// Config is the declarative description of one jump event. Kind selects the
// variant; the remaining fields apply per kind and default sensibly when
// zero.
type Config struct {
	Kind Kind `json:"kind" yaml:"kind"`

	// Scheduling for periodic kinds.
	StartDay     int `json:"start_day,omitempty" yaml:"start_day,omitempty"`
	IntervalDays int `json:"interval_days,omitempty" yaml:"interval_days,omitempty"`

	// Limits: whichever is configured and reached first stops firing.
	MaxJumps    int     `json:"max_jumps,omitempty" yaml:"max_jumps,omitempty"`
	TargetStat  string  `json:"target_stat,omitempty" yaml:"target_stat,omitempty"`
	TargetValue float64 `json:"target_value,omitempty" yaml:"target_value,omitempty"`

	// Consumption for periodic kinds.
	Quantity     int     `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	HappyPerItem float64 `json:"happy_per_item,omitempty" yaml:"happy_per_item,omitempty"`
	EnergyPerItem float64 `json:"energy_per_item,omitempty" yaml:"energy_per_item,omitempty"`
	UnitCost     float64 `json:"unit_cost,omitempty" yaml:"unit_cost,omitempty"`
	FactionPct   float64 `json:"faction_pct,omitempty" yaml:"faction_pct,omitempty"`

	// JumpEnergy is the energy stockpiled for a happiness jump's own
	// training session. Defaults to DefaultJumpEnergy for happiness kinds.
	JumpEnergy float64 `json:"jump_energy,omitempty" yaml:"jump_energy,omitempty"`

	// Loss/revive.
	Losses int     `json:"losses,omitempty" yaml:"losses,omitempty"`
	Payout float64 `json:"payout,omitempty" yaml:"payout,omitempty"`

	// Diabetes Day.
	Days            []int   `json:"days,omitempty" yaml:"days,omitempty"`
	HotelCoupons    int     `json:"hotel_coupons,omitempty" yaml:"hotel_coupons,omitempty"`
	HotelCouponTier int     `json:"hotel_coupon_tier,omitempty" yaml:"hotel_coupon_tier,omitempty"`
	GreenEggTier    int     `json:"green_egg_tier,omitempty" yaml:"green_egg_tier,omitempty"`
	SeasonalMail    bool    `json:"seasonal_mail,omitempty" yaml:"seasonal_mail,omitempty"`
	LogoClick       bool    `json:"logo_click,omitempty" yaml:"logo_click,omitempty"`
	PairEnergy      float64 `json:"pair_energy,omitempty" yaml:"pair_energy,omitempty"`
	PairCost        float64 `json:"pair_cost,omitempty" yaml:"pair_cost,omitempty"`
}

// Build constructs a fresh event from the config. baseHappiness is the
// run's ordinary happiness, which happiness jumps boost from.
func (c Config) Build(baseHappiness float64) (Event, error) {
	switch c.Kind {
	case KindEDVD, KindCandy, KindStackedCandy, KindEnergyItem:
		return c.buildPeriodic(baseHappiness)
	case KindLossRevive:
		return c.buildLossRevive()
	case KindDiabetesDay:
		return c.buildDiabetes()
	case "":
		return nil, fmt.Errorf("jump event missing kind")
	}
	return nil, fmt.Errorf("unknown jump kind %q", c.Kind)
}

func (c Config) targetStat() (stats.Stat, bool, error) {
	if c.TargetStat == "" {
		return 0, false, nil
	}
	st, err := stats.ParseStat(c.TargetStat)
	if err != nil {
		return 0, false, fmt.Errorf("jump %s: %w", c.Kind, err)
	}
	return st, true, nil
}
