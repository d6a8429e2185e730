package gym

import (
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/talgya/gymsim/internal/stats"
)

// venueFile is the YAML shape for a catalog override file.
type venueFile struct {
	Venues []venueEntry `yaml:"venues"`
}

type venueEntry struct {
	ID       string             `yaml:"id"`
	Name     string             `yaml:"name"`
	Energy   float64            `yaml:"energy"`
	Unlock   float64            `yaml:"unlock"`
	Dots     map[string]float64 `yaml:"dots"`
	Requires string             `yaml:"requires,omitempty"`
}

// LoadCatalog reads a venue catalog from a YAML file. Requirement keywords:
// "strength-dominant", "speed-dominant", "defense-dominant",
// "dexterity-dominant", "strength-speed-dominant",
// "defense-dexterity-dominant".
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file venueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Venues) == 0 {
		return nil, fmt.Errorf("catalog %s defines no venues", path)
	}

	catalog := make(Catalog, 0, len(file.Venues))
	for _, e := range file.Venues {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog venue %q missing id", e.Name)
		}
		if e.Energy <= 0 {
			return nil, fmt.Errorf("venue %s: energy per train must be positive", e.ID)
		}

		v := Venue{ID: e.ID, Name: e.Name, Energy: e.Energy, Unlock: e.Unlock}
		for name, dots := range e.Dots {
			st, err := stats.ParseStat(name)
			if err != nil {
				return nil, fmt.Errorf("venue %s: %w", e.ID, err)
			}
			if dots < 0 {
				return nil, fmt.Errorf("venue %s: negative dots for %s", e.ID, st)
			}
			v.Dots[st] = dots
		}

		if e.Requires != "" {
			req, err := parseRequirement(e.Requires)
			if err != nil {
				return nil, fmt.Errorf("venue %s: %w", e.ID, err)
			}
			v.Requires = req
		}

		catalog = append(catalog, v)
	}
	return catalog, nil
}

func parseRequirement(keyword string) (Requirement, error) {
	switch keyword {
	case "strength-dominant":
		return SingleStatDominant(stats.Strength), nil
	case "speed-dominant":
		return SingleStatDominant(stats.Speed), nil
	case "defense-dominant":
		return SingleStatDominant(stats.Defense), nil
	case "dexterity-dominant":
		return SingleStatDominant(stats.Dexterity), nil
	case "strength-speed-dominant":
		return PairDominant(stats.Strength, stats.Speed), nil
	case "defense-dexterity-dominant":
		return PairDominant(stats.Defense, stats.Dexterity), nil
	}
	return nil, fmt.Errorf("unknown requirement keyword %q", keyword)
}

// Resolve finds a venue by ID or display name, case-insensitively. On a miss
// it suggests the nearest name within a small edit distance so scenario-file
// typos produce a useful error.
func (c Catalog) Resolve(name string) (*Venue, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i := range c {
		if strings.ToLower(c[i].ID) == want || strings.ToLower(c[i].Name) == want {
			return &c[i], nil
		}
	}

	bestDist := -1
	bestID := ""
	for i := range c {
		for _, cand := range []string{c[i].ID, strings.ToLower(c[i].Name)} {
			dist := levenshtein.ComputeDistance(want, cand)
			if dist > editLimit(len(cand)) {
				continue
			}
			if bestDist == -1 || dist < bestDist {
				bestDist = dist
				bestID = c[i].ID
			}
		}
	}
	if bestID != "" {
		return nil, fmt.Errorf("unknown venue %q (did you mean %q?)", name, bestID)
	}
	return nil, fmt.Errorf("unknown venue %q", name)
}

func editLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
