package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/talgya/gymsim/internal/engine"
	"github.com/talgya/gymsim/internal/stats"
)

// WriteCSV writes the sampled snapshots as flat rows. With perSession set,
// days with multiple training sessions expand to one row per session,
// otherwise every snapshot is a single row.
func WriteCSV(w io.Writer, res *engine.Result, perSession bool) error {
	cw := csv.NewWriter(w)

	header := []string{"day", "session", "happiness", "energy",
		"strength", "speed", "defense", "dexterity",
		"venue_strength", "venue_speed", "venue_defense", "venue_dexterity",
		"energy_spent_cumulative", "note"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, snap := range res.Snapshots {
		if perSession && len(snap.Sessions) > 0 {
			for _, sess := range snap.Sessions {
				row := []string{
					strconv.Itoa(snap.Day),
					sess.Label,
					fcell(sess.Happiness),
					fcell(sess.Energy),
					fcell(sess.Gains.Strength),
					fcell(sess.Gains.Speed),
					fcell(sess.Gains.Defense),
					fcell(sess.Gains.Dexterity),
					sess.Venues[stats.Strength],
					sess.Venues[stats.Speed],
					sess.Venues[stats.Defense],
					sess.Venues[stats.Dexterity],
					fcell(snap.EnergySpent),
					sess.Note,
				}
				if err := cw.Write(row); err != nil {
					return fmt.Errorf("write csv row: %w", err)
				}
			}
			continue
		}

		row := []string{
			strconv.Itoa(snap.Day),
			"day",
			"",
			"",
			fcell(snap.Stats.Strength),
			fcell(snap.Stats.Speed),
			fcell(snap.Stats.Defense),
			fcell(snap.Stats.Dexterity),
			snap.Venues[stats.Strength],
			snap.Venues[stats.Speed],
			snap.Venues[stats.Defense],
			snap.Venues[stats.Dexterity],
			fcell(snap.EnergySpent),
			"",
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func fcell(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
