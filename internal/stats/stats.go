// Package stats provides the four-stat data model shared across the engine.
package stats

import (
	"fmt"
	"strings"
)

// Stat identifies one of the four trainable stats.
type Stat uint8

const (
	Strength Stat = iota
	Speed
	Defense
	Dexterity
)

// NumStats is the number of trainable stats.
const NumStats = 4

// AllStats returns the stats in canonical order.
func AllStats() [NumStats]Stat {
	return [NumStats]Stat{Strength, Speed, Defense, Dexterity}
}

// String returns the lowercase stat name.
func (s Stat) String() string {
	switch s {
	case Strength:
		return "strength"
	case Speed:
		return "speed"
	case Defense:
		return "defense"
	case Dexterity:
		return "dexterity"
	default:
		return "unknown"
	}
}

// ParseStat converts a stat name (any case, common abbreviations accepted)
// into a Stat.
func ParseStat(name string) (Stat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "strength", "str":
		return Strength, nil
	case "speed", "spd":
		return Speed, nil
	case "defense", "defence", "def":
		return Defense, nil
	case "dexterity", "dex":
		return Dexterity, nil
	}
	return 0, fmt.Errorf("unknown stat %q", name)
}

// Vector is a character's four stats at a point in time. Components are
// never negative and unbounded above.
type Vector struct {
	Strength  float64 `json:"strength"`
	Speed     float64 `json:"speed"`
	Defense   float64 `json:"defense"`
	Dexterity float64 `json:"dexterity"`
}

// Get returns the value of one stat.
func (v Vector) Get(s Stat) float64 {
	switch s {
	case Strength:
		return v.Strength
	case Speed:
		return v.Speed
	case Defense:
		return v.Defense
	case Dexterity:
		return v.Dexterity
	default:
		return 0
	}
}

// Set overwrites the value of one stat.
func (v *Vector) Set(s Stat, value float64) {
	switch s {
	case Strength:
		v.Strength = value
	case Speed:
		v.Speed = value
	case Defense:
		v.Defense = value
	case Dexterity:
		v.Dexterity = value
	}
}

// Add increases one stat by delta.
func (v *Vector) Add(s Stat, delta float64) {
	v.Set(s, v.Get(s)+delta)
}

// Plus returns the component-wise sum of two vectors.
func (v Vector) Plus(o Vector) Vector {
	return Vector{
		Strength:  v.Strength + o.Strength,
		Speed:     v.Speed + o.Speed,
		Defense:   v.Defense + o.Defense,
		Dexterity: v.Dexterity + o.Dexterity,
	}
}

// Minus returns the component-wise difference v - o.
func (v Vector) Minus(o Vector) Vector {
	return Vector{
		Strength:  v.Strength - o.Strength,
		Speed:     v.Speed - o.Speed,
		Defense:   v.Defense - o.Defense,
		Dexterity: v.Dexterity - o.Dexterity,
	}
}

// Scale returns the vector multiplied component-wise by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{
		Strength:  v.Strength * f,
		Speed:     v.Speed * f,
		Defense:   v.Defense * f,
		Dexterity: v.Dexterity * f,
	}
}

// Total returns the sum of all four stats.
func (v Vector) Total() float64 {
	return v.Strength + v.Speed + v.Defense + v.Dexterity
}

// Max returns the highest stat value.
func (v Vector) Max() float64 {
	max := v.Strength
	for _, s := range AllStats() {
		if v.Get(s) > max {
			max = v.Get(s)
		}
	}
	return max
}

// MaxOther returns the highest stat value excluding the given stat.
func (v Vector) MaxOther(exclude Stat) float64 {
	max := 0.0
	for _, s := range AllStats() {
		if s == exclude {
			continue
		}
		if v.Get(s) > max {
			max = v.Get(s)
		}
	}
	return max
}
