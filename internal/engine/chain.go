package engine

import (
	"fmt"

	"github.com/talgya/gymsim/internal/gym"
)

// SimulateChained runs several configurations end to end, each covering a
// sub-range of the global day range. The final stats and cumulative energy
// spent of one section seed the next exactly; snapshots keep global day
// indices; per-section aggregates are summed and per-jump averages
// recomputed from the summed totals.
//
// Sections must be contiguous: any gap, overlap or bad day range fails the
// whole operation before a single day is simulated.
func SimulateChained(catalog gym.Catalog, sections []Config) (*Result, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no sections", ErrInvalidConfiguration)
	}
	if err := validateSections(catalog, sections); err != nil {
		return nil, err
	}

	var combined *Result
	carryStats := sections[0].Initial
	carrySpent := sections[0].InitialEnergySpent

	for i := range sections {
		cfg := sections[i]
		cfg.Initial = carryStats
		cfg.InitialEnergySpent = carrySpent

		res, err := Simulate(catalog, cfg)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i+1, err)
		}

		carryStats = res.Final
		carrySpent = res.EnergySpent

		if combined == nil {
			combined = res
		} else {
			combined.merge(res)
		}
	}
	return combined, nil
}

// validateSections checks every section individually and the contiguity of
// the whole chain.
func validateSections(catalog gym.Catalog, sections []Config) error {
	prevEnd := 0
	for i := range sections {
		first, last := sections[i].span()
		if sections[i].StartDay <= 0 || sections[i].EndDay <= 0 {
			return fmt.Errorf("%w: section %d must set start_day and end_day", ErrInvalidConfiguration, i+1)
		}
		if last < first {
			return fmt.Errorf("%w: section %d day range %d..%d", ErrInvalidConfiguration, i+1, first, last)
		}
		if i > 0 && first != prevEnd+1 {
			if first <= prevEnd {
				return fmt.Errorf("%w: section %d overlaps previous (day %d <= %d)", ErrInvalidConfiguration, i+1, first, prevEnd)
			}
			return fmt.Errorf("%w: gap between day %d and section %d starting day %d", ErrInvalidConfiguration, prevEnd, i+1, first)
		}
		prevEnd = last

		if err := sections[i].validate(catalog); err != nil {
			return fmt.Errorf("section %d: %w", i+1, err)
		}
	}
	return nil
}
