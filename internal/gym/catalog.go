package gym

import (
	"github.com/talgya/gymsim/internal/stats"
)

// DefaultCatalog returns the built-in venue list. Unlock thresholds are
// cumulative energy spent. Dots order: strength, speed, defense, dexterity;
// zero means the stat is not offered there.
//
// The list is returned fresh on every call so runs never share mutable data.
func DefaultCatalog() Catalog {
	c := Catalog{
		// Lightweight: 5 energy per train.
		{ID: "premier", Name: "Premier Fitness", Dots: [4]float64{2.0, 2.0, 2.0, 2.0}, Energy: 5, Unlock: 0},
		{ID: "average-joes", Name: "Average Joes", Dots: [4]float64{2.4, 2.4, 2.8, 2.4}, Energy: 5, Unlock: 200},
		{ID: "woodys", Name: "Woody's Workout Club", Dots: [4]float64{2.8, 3.2, 3.0, 2.8}, Energy: 5, Unlock: 500},
		{ID: "beach-bods", Name: "Beach Bods", Dots: [4]float64{3.2, 3.2, 3.2, 0}, Energy: 5, Unlock: 1000},
		{ID: "silver", Name: "Silver Gym", Dots: [4]float64{3.4, 3.6, 3.4, 3.2}, Energy: 5, Unlock: 2000},
		{ID: "pour-femme", Name: "Pour Femme", Dots: [4]float64{3.4, 3.6, 3.6, 3.8}, Energy: 5, Unlock: 2750},
		{ID: "davies-den", Name: "Davies Den", Dots: [4]float64{3.7, 0, 3.7, 3.7}, Energy: 5, Unlock: 3000},
		{ID: "global", Name: "Global Gym", Dots: [4]float64{4.0, 4.0, 4.0, 4.0}, Energy: 5, Unlock: 3500},

		// Middleweight: 10 energy per train.
		{ID: "knuckle-heads", Name: "Knuckle Heads", Dots: [4]float64{4.8, 4.4, 4.0, 4.2}, Energy: 10, Unlock: 4000},
		{ID: "pioneer", Name: "Pioneer Fitness", Dots: [4]float64{4.4, 4.6, 4.8, 4.4}, Energy: 10, Unlock: 6000},
		{ID: "anabolic", Name: "Anabolic Anomalies", Dots: [4]float64{5.0, 4.6, 5.2, 4.6}, Energy: 10, Unlock: 7000},
		{ID: "core", Name: "Core", Dots: [4]float64{5.0, 5.2, 5.0, 5.0}, Energy: 10, Unlock: 8000},
		{ID: "racing-fitness", Name: "Racing Fitness", Dots: [4]float64{5.0, 5.4, 4.8, 5.2}, Energy: 10, Unlock: 11000},
		{ID: "complete-cardio", Name: "Complete Cardio", Dots: [4]float64{5.5, 5.8, 5.5, 5.2}, Energy: 10, Unlock: 12420},
		{ID: "legs-bums-tums", Name: "Legs, Bums and Tums", Dots: [4]float64{0, 5.6, 5.6, 5.8}, Energy: 10, Unlock: 18000},
		{ID: "deep-burn", Name: "Deep Burn", Dots: [4]float64{6.0, 6.0, 6.0, 6.0}, Energy: 10, Unlock: 18100},

		// Heavyweight: 10 energy per train.
		{ID: "apollo", Name: "Apollo Gym", Dots: [4]float64{6.3, 6.3, 6.3, 6.3}, Energy: 10, Unlock: 24140},
		{ID: "gun-shop", Name: "Gun Shop", Dots: [4]float64{6.6, 6.4, 6.2, 6.2}, Energy: 10, Unlock: 31260},
		{ID: "force-training", Name: "Force Training", Dots: [4]float64{6.4, 6.6, 6.4, 6.8}, Energy: 10, Unlock: 36610},
		{ID: "cha-chas", Name: "Cha Cha's", Dots: [4]float64{6.4, 6.4, 6.8, 7.0}, Energy: 10, Unlock: 46640},
		{ID: "atlas", Name: "Atlas", Dots: [4]float64{7.0, 6.4, 6.4, 6.6}, Energy: 10, Unlock: 56520},
		{ID: "last-round", Name: "Last Round", Dots: [4]float64{6.8, 6.6, 7.0, 6.6}, Energy: 10, Unlock: 67775},
		{ID: "the-edge", Name: "The Edge", Dots: [4]float64{6.8, 7.0, 7.0, 6.8}, Energy: 10, Unlock: 84535},
		{ID: "georges", Name: "George's", Dots: [4]float64{7.3, 7.3, 7.3, 7.3}, Energy: 10, Unlock: 106305},

		// Specialty: pair venues at 25 energy, single-stat venues at 50.
		{ID: "balboas", Name: "Balboas Gym", Dots: [4]float64{0, 0, 7.5, 7.5}, Energy: 25, Unlock: 445425},
		{ID: "frontline", Name: "Frontline Fitness", Dots: [4]float64{7.5, 7.5, 0, 0}, Energy: 25, Unlock: 451000},
		{ID: "gym-3000", Name: "Gym 3000", Dots: [4]float64{8.0, 0, 0, 0}, Energy: 50, Unlock: 725000},
		{ID: "isoyamas", Name: "Mr. Isoyamas", Dots: [4]float64{0, 0, 8.0, 0}, Energy: 50, Unlock: 725000},
		{ID: "total-rebound", Name: "Total Rebound", Dots: [4]float64{0, 8.0, 0, 0}, Energy: 50, Unlock: 997500},
		{ID: "elites", Name: "Elites", Dots: [4]float64{0, 0, 0, 8.0}, Energy: 50, Unlock: 997500},
	}

	attachRequirements(c)
	return c
}

// attachRequirements wires the dynamic predicates onto specialty venues.
// Kept separate from the data table so YAML-loaded catalogs reuse it via
// requirement keywords.
func attachRequirements(c Catalog) {
	for i := range c {
		switch c[i].ID {
		case "balboas":
			c[i].Requires = PairDominant(stats.Defense, stats.Dexterity)
		case "frontline":
			c[i].Requires = PairDominant(stats.Strength, stats.Speed)
		case "gym-3000":
			c[i].Requires = SingleStatDominant(stats.Strength)
		case "isoyamas":
			c[i].Requires = SingleStatDominant(stats.Defense)
		case "total-rebound":
			c[i].Requires = SingleStatDominant(stats.Speed)
		case "elites":
			c[i].Requires = SingleStatDominant(stats.Dexterity)
		}
	}
}
