package jumps

import (
	"fmt"

	"github.com/talgya/gymsim/internal/formula"
)

// DiabetesDay is the multi-source happiness jump. It fires on one or two
// configured days, drives training happiness to the real maximum, and stacks
// bonus energy from up to four sub-sources on top of a fixed consumable
// pair. The single-use sources (green egg, seasonal mail, logo click) are
// depleted greedily by the first firing; hotel coupons are drawn from a
// configured count, one per firing. A second firing therefore never repeats
// a bonus the first already consumed.
type DiabetesDay struct {
	days []int

	couponsLeft int
	couponTier  int
	eggTier     int
	mail        bool
	logo        bool

	eggUsed  bool
	mailUsed bool
	logoUsed bool

	pairEnergy float64
	pairCost   float64
	fired      int
}

func (c Config) buildDiabetes() (*DiabetesDay, error) {
	if len(c.Days) == 0 || len(c.Days) > 2 {
		return nil, fmt.Errorf("jump %s: needs one or two firing days, got %d", c.Kind, len(c.Days))
	}
	for _, d := range c.Days {
		if d <= 0 {
			return nil, fmt.Errorf("jump %s: firing day %d out of range", c.Kind, d)
		}
	}
	if len(c.Days) == 2 && c.Days[0] == c.Days[1] {
		return nil, fmt.Errorf("jump %s: duplicate firing day %d", c.Kind, c.Days[0])
	}
	if c.HotelCouponTier < 0 || c.HotelCouponTier > 3 {
		return nil, fmt.Errorf("jump %s: hotel coupon tier %d out of range", c.Kind, c.HotelCouponTier)
	}
	if c.GreenEggTier < 0 || c.GreenEggTier > 3 {
		return nil, fmt.Errorf("jump %s: green egg tier %d out of range", c.Kind, c.GreenEggTier)
	}

	d := &DiabetesDay{
		days:        append([]int(nil), c.Days...),
		couponsLeft: c.HotelCoupons,
		couponTier:  c.HotelCouponTier,
		eggTier:     c.GreenEggTier,
		mail:        c.SeasonalMail,
		logo:        c.LogoClick,
		pairEnergy:  c.PairEnergy,
		pairCost:    c.PairCost,
	}
	if d.pairEnergy == 0 {
		d.pairEnergy = DefaultPairEnergy
	}
	return d, nil
}

func (d *DiabetesDay) Kind() Kind { return KindDiabetesDay }

func (d *DiabetesDay) ShouldFire(day int, led *Ledger) bool {
	for _, fd := range d.days {
		if fd == day {
			return true
		}
	}
	return false
}

func (d *DiabetesDay) Effect(day int, led *Ledger) Effect {
	d.fired++
	led.Fired[KindDiabetesDay]++

	bonus := d.pairEnergy
	if d.couponsLeft > 0 && d.couponTier > 0 {
		bonus += float64(d.couponTier) * couponEnergyTier
		d.couponsLeft--
	}
	if d.eggTier > 0 && !d.eggUsed {
		bonus += float64(d.eggTier) * eggEnergyTier
		d.eggUsed = true
	}
	if d.mail && !d.mailUsed {
		bonus += seasonalMailEnergy
		d.mailUsed = true
	}
	if d.logo && !d.logoUsed {
		bonus += logoClickEnergy
		d.logoUsed = true
	}

	return Effect{
		Happiness:   formula.MaxHappiness,
		BonusEnergy: bonus,
		Cost:        d.pairCost,
		Note:        fmt.Sprintf("diabetes day jump %d", d.fired),
	}
}

// Occurrence reports how many times the event has fired so far, used by the
// driver to attribute gains to jump 1 vs jump 2.
func (d *DiabetesDay) Occurrence() int { return d.fired }
