package energy

import (
	"math"
	"testing"

	"github.com/talgya/gymsim/internal/stats"
)

func TestDaily(t *testing.T) {
	tests := []struct {
		name        string
		hours       float64
		consumables int
		refill      bool
		barMax      int
		bonus       float64
		want        float64
	}{
		{"regen only", 10, 0, false, BarLarge, 0, 200},
		{"full day", 24, 0, false, BarLarge, 0, 480},
		{"hours clamp high", 30, 0, false, BarLarge, 0, 480},
		{"hours clamp low", -5, 0, false, BarLarge, 0, 0},
		{"consumables", 0, 3, false, BarLarge, 0, 750},
		{"refill large bar", 0, 0, true, BarLarge, 0, 150},
		{"refill small bar", 0, 0, true, BarSmall, 0, 100},
		{"odd bar max falls back to large", 0, 0, true, 120, 0, 150},
		{"flat bonus", 0, 0, false, BarLarge, 30, 30},
		{"heavy day", 24, 3, true, BarLarge, 0, 1380},
	}
	for _, tc := range tests {
		got := Daily(tc.hours, tc.consumables, tc.refill, tc.barMax, tc.bonus)
		if got != tc.want {
			t.Errorf("%s: Daily = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAllocateProportions(t *testing.T) {
	weights := [stats.NumStats]float64{2, 1, 1, 0}
	got := Allocate(400, weights)

	want := [stats.NumStats]float64{200, 100, 100, 0}
	if got != want {
		t.Fatalf("Allocate(400, 2:1:1:0) = %v, want %v", got, want)
	}
}

func TestAllocateConservesEnergy(t *testing.T) {
	weights := [stats.NumStats]float64{3, 5, 7, 11}
	total := 1000.0
	got := Allocate(total, weights)

	sum := 0.0
	for _, s := range got {
		sum += s
	}
	if math.Abs(sum-total) > 1e-9 {
		t.Errorf("shares sum to %v, want %v", sum, total)
	}
	// Larger weight, larger share.
	if !(got[stats.Strength] < got[stats.Speed] && got[stats.Speed] < got[stats.Defense] && got[stats.Defense] < got[stats.Dexterity]) {
		t.Errorf("shares not ordered by weight: %v", got)
	}
}

func TestAllocateDegenerate(t *testing.T) {
	var zero [stats.NumStats]float64
	if got := Allocate(500, zero); got != zero {
		t.Errorf("all-zero weights: got %v, want zeros", got)
	}
	if got := Allocate(0, [stats.NumStats]float64{1, 1, 1, 1}); got != zero {
		t.Errorf("zero total: got %v, want zeros", got)
	}
	// Negative weights are ignored, not subtracted.
	got := Allocate(300, [stats.NumStats]float64{1, -5, 2, 0})
	want := [stats.NumStats]float64{100, 0, 200, 0}
	if got != want {
		t.Errorf("negative weight: got %v, want %v", got, want)
	}
}

func TestTrains(t *testing.T) {
	tests := []struct {
		share, perTrain float64
		want            int
	}{
		{100, 10, 10},
		{99, 10, 9},
		{9, 10, 0},
		{0, 10, 0},
		{100, 0, 0},
		{-50, 10, 0},
		{125, 25, 5},
	}
	for _, tc := range tests {
		if got := Trains(tc.share, tc.perTrain); got != tc.want {
			t.Errorf("Trains(%v, %v) = %d, want %d", tc.share, tc.perTrain, got, tc.want)
		}
	}
}

func TestDriftDue(t *testing.T) {
	p := &DriftPolicy{Percent: 50, EveryDays: 7}
	for _, day := range []int{7, 14, 70} {
		if !p.Due(day) {
			t.Errorf("day %d should be due", day)
		}
	}
	for _, day := range []int{0, 1, 6, 8} {
		if p.Due(day) {
			t.Errorf("day %d should not be due", day)
		}
	}

	var nilPolicy *DriftPolicy
	if nilPolicy.Due(7) {
		t.Error("nil policy is never due")
	}
	disabled := &DriftPolicy{Percent: 50, EveryDays: 0}
	if disabled.Due(7) {
		t.Error("zero cadence is never due")
	}
}

func TestRebalancePullsTowardTarget(t *testing.T) {
	base := [stats.NumStats]float64{1, 1, 1, 1}
	p := &DriftPolicy{
		Percent:   100,
		EveryDays: 7,
		Target:    [stats.NumStats]float64{1, 1, 1, 1},
	}

	// Strength ran ahead of its quarter share, dexterity fell behind.
	current := stats.Vector{Strength: 4000, Speed: 2000, Defense: 2000, Dexterity: 1000}
	out := p.Rebalance(base, current)

	if out[stats.Strength] >= base[stats.Strength] {
		t.Errorf("over-target stat should lose weight: %v", out[stats.Strength])
	}
	if out[stats.Dexterity] <= base[stats.Dexterity] {
		t.Errorf("under-target stat should gain weight: %v", out[stats.Dexterity])
	}
	if out[stats.Speed] != out[stats.Defense] {
		t.Errorf("equally placed stats should match: %v vs %v", out[stats.Speed], out[stats.Defense])
	}

	// Full-strength correction is the exact target/actual ratio. Speed holds
	// a 2/9 share against a 1/4 target.
	wantSpeed := base[stats.Speed] * (0.25 / (2000.0 / 9000.0))
	if math.Abs(out[stats.Speed]-wantSpeed) > 1e-12 {
		t.Errorf("speed weight %v, want %v", out[stats.Speed], wantSpeed)
	}
}

func TestRebalancePercentDampens(t *testing.T) {
	base := [stats.NumStats]float64{1, 1, 1, 1}
	current := stats.Vector{Strength: 4000, Speed: 2000, Defense: 2000, Dexterity: 1000}
	target := [stats.NumStats]float64{1, 1, 1, 1}

	full := (&DriftPolicy{Percent: 100, EveryDays: 7, Target: target}).Rebalance(base, current)
	half := (&DriftPolicy{Percent: 50, EveryDays: 7, Target: target}).Rebalance(base, current)

	// The half-strength correction lands between the base weight and the
	// full correction.
	if !(full[stats.Dexterity] > half[stats.Dexterity] && half[stats.Dexterity] > base[stats.Dexterity]) {
		t.Errorf("dexterity: base %v, half %v, full %v", base[stats.Dexterity], half[stats.Dexterity], full[stats.Dexterity])
	}
	if !(full[stats.Strength] < half[stats.Strength] && half[stats.Strength] < base[stats.Strength]) {
		t.Errorf("strength: base %v, half %v, full %v", base[stats.Strength], half[stats.Strength], full[stats.Strength])
	}
}

func TestRebalanceEdgeCases(t *testing.T) {
	base := [stats.NumStats]float64{1, 1, 0, 1}
	current := stats.Vector{Strength: 100, Speed: 100, Defense: 100, Dexterity: 100}

	// Zero percent and nil policy are no-ops.
	if got := (&DriftPolicy{Percent: 0, EveryDays: 7, Target: [stats.NumStats]float64{1, 1, 1, 1}}).Rebalance(base, current); got != base {
		t.Errorf("zero percent changed weights: %v", got)
	}
	var nilPolicy *DriftPolicy
	if got := nilPolicy.Rebalance(base, current); got != base {
		t.Errorf("nil policy changed weights: %v", got)
	}

	// A zero base weight stays zero even when the target wants the stat.
	p := &DriftPolicy{Percent: 100, EveryDays: 7, Target: [stats.NumStats]float64{1, 1, 1, 1}}
	out := p.Rebalance(base, current)
	if out[stats.Defense] != 0 {
		t.Errorf("zero base weight must stay zero, got %v", out[stats.Defense])
	}

	// Fresh accounts with zero stats cannot be rebalanced yet.
	if got := p.Rebalance(base, stats.Vector{}); got != base {
		t.Errorf("zero current stats changed weights: %v", got)
	}
}
