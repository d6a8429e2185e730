package engine

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/talgya/gymsim/internal/energy"
	"github.com/talgya/gymsim/internal/gym"
	"github.com/talgya/gymsim/internal/jumps"
	"github.com/talgya/gymsim/internal/stats"
)

func baseConfig(days int) Config {
	return Config{
		Initial:           stats.Vector{Strength: 10000, Speed: 10000, Defense: 10000, Dexterity: 10000},
		Weights:           [stats.NumStats]float64{1, 1, 1, 1},
		Happiness:         5025,
		HoursPerDay:       16,
		ConsumablesPerDay: 2,
		Refill:            true,
		Days:              days,
	}
}

func TestSimulateDeterministic(t *testing.T) {
	catalog := gym.DefaultCatalog()
	cfg := baseConfig(120)
	cfg.Drift = &energy.DriftPolicy{Percent: 50, EveryDays: 14}
	cfg.Jumps = []jumps.Config{
		{Kind: jumps.KindEDVD, StartDay: 10, IntervalDays: 30, Quantity: 2},
		{Kind: jumps.KindEnergyItem, IntervalDays: 7, Quantity: 3},
		{Kind: jumps.KindDiabetesDay, Days: []int{40, 100}, HotelCoupons: 1, HotelCouponTier: 2},
	}

	a, err := Simulate(catalog, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(catalog, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical configurations must produce identical results")
	}
}

func TestSimulateGrowsMonotonically(t *testing.T) {
	catalog := gym.DefaultCatalog()
	cfg := baseConfig(90)
	cfg.SampleEvery = 7

	res, err := Simulate(catalog, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Snapshots) < 10 {
		t.Fatalf("expected weekly snapshots, got %d", len(res.Snapshots))
	}

	prev := cfg.Initial
	prevSpent := 0.0
	for _, snap := range res.Snapshots {
		for _, st := range stats.AllStats() {
			if snap.Stats.Get(st) < prev.Get(st) {
				t.Fatalf("day %d: %s decreased from %v to %v", snap.Day, st, prev.Get(st), snap.Stats.Get(st))
			}
		}
		if snap.EnergySpent < prevSpent {
			t.Fatalf("day %d: cumulative energy decreased", snap.Day)
		}
		prev = snap.Stats
		prevSpent = snap.EnergySpent
	}

	for _, st := range stats.AllStats() {
		if res.Final.Get(st) <= cfg.Initial.Get(st) {
			t.Errorf("%s did not grow over 90 days", st)
		}
	}
}

func TestZeroWeightStatNeverTrains(t *testing.T) {
	catalog := gym.DefaultCatalog()
	cfg := baseConfig(60)
	cfg.Weights = [stats.NumStats]float64{1, 0, 1, 1}

	res, err := Simulate(catalog, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if res.Final.Speed != cfg.Initial.Speed {
		t.Errorf("speed changed from %v to %v with zero weight", cfg.Initial.Speed, res.Final.Speed)
	}
	if res.Final.Strength <= cfg.Initial.Strength {
		t.Error("weighted stats should still grow")
	}
}

func TestChainingMatchesSingleRun(t *testing.T) {
	catalog := gym.DefaultCatalog()

	single := baseConfig(0)
	single.StartDay = 1
	single.EndDay = 60

	part1 := single
	part1.EndDay = 30
	part2 := single
	part2.StartDay = 31
	part2.EndDay = 60
	part2.Initial = stats.Vector{} // overwritten by the carried state

	whole, err := Simulate(catalog, single)
	if err != nil {
		t.Fatal(err)
	}
	chained, err := SimulateChained(catalog, []Config{part1, part2})
	if err != nil {
		t.Fatal(err)
	}

	if whole.Final != chained.Final {
		t.Errorf("final stats diverge: single %+v, chained %+v", whole.Final, chained.Final)
	}
	if whole.EnergySpent != chained.EnergySpent {
		t.Errorf("energy spent diverges: single %v, chained %v", whole.EnergySpent, chained.EnergySpent)
	}
	if chained.FirstDay != 1 || chained.LastDay != 60 {
		t.Errorf("chained day range %d..%d, want 1..60", chained.FirstDay, chained.LastDay)
	}
}

func TestSectionParameterChangeTakesEffect(t *testing.T) {
	catalog := gym.DefaultCatalog()

	idle := baseConfig(0)
	idle.StartDay = 1
	idle.EndDay = 30
	idle.HoursPerDay = 2
	idle.ConsumablesPerDay = 0
	idle.Refill = false

	active := idle
	active.StartDay = 31
	active.EndDay = 60
	active.HoursPerDay = 24
	active.ConsumablesPerDay = 3
	active.Refill = true

	res, err := SimulateChained(catalog, []Config{idle, active})
	if err != nil {
		t.Fatal(err)
	}

	// 30 idle days at 40 energy, then 30 heavy days at 1380.
	want := 30.0*40 + 30.0*1380
	slack := want * 0.02 // floor losses at the venue granularity
	if res.EnergySpent > want || res.EnergySpent < want-slack {
		t.Errorf("energy spent %v, want just under %v", res.EnergySpent, want)
	}
}

func TestInvalidConfigurations(t *testing.T) {
	catalog := gym.DefaultCatalog()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero days", func(c *Config) { c.Days = 0 }},
		{"all weights zero", func(c *Config) { c.Weights = [stats.NumStats]float64{} }},
		{"negative weight", func(c *Config) { c.Weights[stats.Speed] = -1 }},
		{"unknown locked venue", func(c *Config) { c.LockedVenue = "nonexistent" }},
		{"locked venue offers nothing weighted", func(c *Config) {
			c.LockedVenue = "beach-bods" // no dexterity
			c.Weights = [stats.NumStats]float64{0, 0, 0, 1}
		}},
		{"broken jump", func(c *Config) {
			c.Jumps = []jumps.Config{{Kind: jumps.KindEDVD, Quantity: 1}}
		}},
	}
	for _, tc := range tests {
		cfg := baseConfig(30)
		tc.mutate(&cfg)
		_, err := Simulate(catalog, cfg)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%s: got %v, want ErrInvalidConfiguration", tc.name, err)
		}
	}
}

func TestChainValidation(t *testing.T) {
	catalog := gym.DefaultCatalog()

	mk := func(start, end int) Config {
		c := baseConfig(0)
		c.StartDay = start
		c.EndDay = end
		return c
	}

	tests := []struct {
		name     string
		sections []Config
		want     string
	}{
		{"empty", nil, "no sections"},
		{"gap", []Config{mk(1, 30), mk(32, 60)}, "gap"},
		{"overlap", []Config{mk(1, 30), mk(30, 60)}, "overlaps"},
		{"missing range", []Config{{Initial: stats.Vector{}, Weights: [stats.NumStats]float64{1, 1, 1, 1}, Days: 30}}, "start_day"},
	}
	for _, tc := range tests {
		_, err := SimulateChained(catalog, tc.sections)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%s: got %v, want ErrInvalidConfiguration", tc.name, err)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestLockedVenuePinsSelection(t *testing.T) {
	catalog := gym.DefaultCatalog()
	cfg := baseConfig(90)
	cfg.LockedVenue = "premier"
	cfg.SampleEvery = 10

	res, err := Simulate(catalog, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, snap := range res.Snapshots {
		for _, st := range stats.AllStats() {
			if v := snap.Venues[st]; v != "" && v != "premier" {
				t.Fatalf("day %d: trained %s at %s despite venue lock", snap.Day, st, v)
			}
		}
	}
}

func TestVenueProgressionUnlocksUpward(t *testing.T) {
	catalog := gym.DefaultCatalog()
	cfg := baseConfig(200)
	cfg.SampleEvery = 5

	res, err := Simulate(catalog, cfg)
	if err != nil {
		t.Fatal(err)
	}

	// With balanced weights the chosen venue's strength dots never step
	// backwards as spending accumulates.
	prevDots := 0.0
	for _, snap := range res.Snapshots {
		id := snap.Venues[stats.Strength]
		if id == "" {
			continue
		}
		v := catalog.ByID(id)
		if v == nil {
			t.Fatalf("day %d: unknown venue %q in snapshot", snap.Day, id)
		}
		if v.Dots[stats.Strength] < prevDots {
			t.Fatalf("day %d: venue quality regressed to %s", snap.Day, id)
		}
		prevDots = v.Dots[stats.Strength]
	}
	if prevDots <= 2.0 {
		t.Error("200 heavy days should progress past the starter venue")
	}
}

func TestJumpDayRecordsTwoSessions(t *testing.T) {
	catalog := gym.DefaultCatalog()
	cfg := baseConfig(10)
	cfg.Jumps = []jumps.Config{
		{Kind: jumps.KindEDVD, StartDay: 5, IntervalDays: 30, Quantity: 2},
	}

	res, err := Simulate(catalog, cfg)
	if err != nil {
		t.Fatal(err)
	}

	var jumpDay *DailySnapshot
	for i := range res.Snapshots {
		if res.Snapshots[i].Day == 5 {
			jumpDay = &res.Snapshots[i]
		}
	}
	if jumpDay == nil {
		t.Fatal("jump day missing from snapshots")
	}
	if len(jumpDay.Sessions) != 2 {
		t.Fatalf("jump day has %d sessions, want 2", len(jumpDay.Sessions))
	}
	jump, ordinary := jumpDay.Sessions[0], jumpDay.Sessions[1]
	if jump.Label != "jump" || ordinary.Label != "training" {
		t.Errorf("session labels %q, %q", jump.Label, ordinary.Label)
	}
	if jump.Happiness <= ordinary.Happiness {
		t.Errorf("jump session happiness %v should exceed ordinary %v", jump.Happiness, ordinary.Happiness)
	}
	if jump.Gains.Total() <= 0 {
		t.Error("jump session produced no gains")
	}

	f := res.Features[jumps.KindEDVD]
	if f == nil || f.Jumps != 1 {
		t.Fatalf("feature aggregate wrong: %+v", f)
	}
	if f.Gains.Total() <= 0 || f.AvgGainPerJump != f.Gains.Total() {
		t.Errorf("single-jump average %v, want %v", f.AvgGainPerJump, f.Gains.Total())
	}
}

func TestJumpOutgainsOrdinaryDay(t *testing.T) {
	catalog := gym.DefaultCatalog()

	plain := baseConfig(30)
	boosted := plain
	boosted.Jumps = []jumps.Config{
		{Kind: jumps.KindEDVD, StartDay: 15, IntervalDays: 60, Quantity: 4},
	}

	a, err := Simulate(catalog, plain)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(catalog, boosted)
	if err != nil {
		t.Fatal(err)
	}
	if b.Final.Total() <= a.Final.Total() {
		t.Errorf("jump run total %v not above plain run %v", b.Final.Total(), a.Final.Total())
	}
}

func TestLossReviveShrinksTrainingAndEarns(t *testing.T) {
	catalog := gym.DefaultCatalog()

	plain := baseConfig(30)
	selling := plain
	selling.Jumps = []jumps.Config{
		{Kind: jumps.KindLossRevive, IntervalDays: 1, Losses: 4, Payout: 1_000_000},
	}

	a, err := Simulate(catalog, plain)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(catalog, selling)
	if err != nil {
		t.Fatal(err)
	}

	if b.Final.Total() >= a.Final.Total() {
		t.Error("selling losses must cost stat growth")
	}
	f := b.Features[jumps.KindLossRevive]
	if f == nil || f.Jumps != 30 {
		t.Fatalf("loss/revive fired %v times, want 30", f)
	}
	if f.Income != 30*4*1_000_000 {
		t.Errorf("income %v, want %v", f.Income, 30.0*4*1_000_000)
	}
	if f.Gains.Total() != 0 {
		t.Error("loss/revive must not be attributed stat gains")
	}
}

func TestDiabetesDayOccurrences(t *testing.T) {
	catalog := gym.DefaultCatalog()
	cfg := baseConfig(250)
	cfg.Jumps = []jumps.Config{
		{Kind: jumps.KindDiabetesDay, Days: []int{40, 220}, GreenEggTier: 3, SeasonalMail: true, LogoClick: true},
	}

	res, err := Simulate(catalog, cfg)
	if err != nil {
		t.Fatal(err)
	}
	f := res.Features[jumps.KindDiabetesDay]
	if f == nil || f.Jumps != 2 {
		t.Fatalf("diabetes day fired %v times, want 2", f)
	}
	if len(f.Occurrences) != 2 {
		t.Fatalf("occurrences %d, want 2", len(f.Occurrences))
	}
	for i, occ := range f.Occurrences {
		if occ.Total() <= 0 {
			t.Errorf("occurrence %d recorded no gains", i+1)
		}
	}

	sum := f.Occurrences[0].Plus(f.Occurrences[1])
	for _, st := range stats.AllStats() {
		if diff := sum.Get(st) - f.Gains.Get(st); diff > 1e-9 || diff < -1e-9 {
			t.Errorf("occurrence shares do not sum to the aggregate for %s", st)
		}
	}
}

func TestConfiguredFeaturePresentEvenIfNeverFired(t *testing.T) {
	catalog := gym.DefaultCatalog()
	cfg := baseConfig(10)
	cfg.Jumps = []jumps.Config{
		{Kind: jumps.KindCandy, StartDay: 50, IntervalDays: 30, Quantity: 10},
	}

	res, err := Simulate(catalog, cfg)
	if err != nil {
		t.Fatal(err)
	}
	f := res.Features[jumps.KindCandy]
	if f == nil {
		t.Fatal("configured feature missing from results")
	}
	if f.Jumps != 0 || f.Gains.Total() != 0 || f.AvgGainPerJump != 0 {
		t.Errorf("never-fired feature has activity: %+v", f)
	}
}

func TestDriftShiftsEnergyTowardLaggingStat(t *testing.T) {
	catalog := gym.DefaultCatalog()

	cfg := baseConfig(180)
	cfg.Initial = stats.Vector{Strength: 50000, Speed: 10000, Defense: 10000, Dexterity: 10000}
	cfg.Drift = &energy.DriftPolicy{
		Percent:   100,
		EveryDays: 7,
		Target:    [stats.NumStats]float64{1, 1, 1, 1},
	}

	drifted, err := Simulate(catalog, cfg)
	if err != nil {
		t.Fatal(err)
	}
	plain := cfg
	plain.Drift = nil
	flat, err := Simulate(catalog, plain)
	if err != nil {
		t.Fatal(err)
	}

	// Drift chases the equal-share target, so the lagging stats close more
	// of their gap to strength than they do without it.
	gapDrift := drifted.Final.Strength - drifted.Final.Speed
	gapFlat := flat.Final.Strength - flat.Final.Speed
	if gapDrift >= gapFlat {
		t.Errorf("drift gap %v not below flat gap %v", gapDrift, gapFlat)
	}
}

func TestYearLongRun(t *testing.T) {
	catalog := gym.DefaultCatalog()
	cfg := Config{
		Initial:           stats.Vector{Strength: 80000, Speed: 80000, Defense: 80000, Dexterity: 80000},
		Weights:           [stats.NumStats]float64{1, 1, 1, 1},
		Happiness:         5025,
		HoursPerDay:       24,
		ConsumablesPerDay: 3,
		Refill:            true,
		Days:              365,
		SampleEvery:       30,
	}

	res, err := Simulate(catalog, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, st := range stats.AllStats() {
		if res.Final.Get(st) <= 80000 {
			t.Errorf("%s finished at %v, want growth over a year", st, res.Final.Get(st))
		}
	}
	// 1380 energy per day, minus floor losses at venue granularity.
	if res.EnergySpent < 365*1300 {
		t.Errorf("energy spent %v is implausibly low for a maxed year", res.EnergySpent)
	}
	if res.FirstDay != 1 || res.LastDay != 365 {
		t.Errorf("day range %d..%d", res.FirstDay, res.LastDay)
	}
}
