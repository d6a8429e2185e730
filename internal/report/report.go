// Package report renders simulation results for people: a text summary and
// a flat CSV export.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/talgya/gymsim/internal/engine"
	"github.com/talgya/gymsim/internal/jumps"
	"github.com/talgya/gymsim/internal/stats"
)

// fnum formats a stat value with thousands separators and no noise decimals.
func fnum(v float64) string {
	return humanize.CommafWithDigits(v, 0)
}

// Text renders a human-readable summary of one result.
func Text(initial stats.Vector, res *engine.Result) string {
	var b strings.Builder

	days := res.LastDay - res.FirstDay + 1
	fmt.Fprintf(&b, "Simulated days %d..%d (%d days)\n", res.FirstDay, res.LastDay, days)
	fmt.Fprintf(&b, "Cumulative energy spent: %s\n\n", fnum(res.EnergySpent))

	fmt.Fprintf(&b, "%-10s %18s %18s %18s\n", "stat", "initial", "final", "gained")
	for _, st := range stats.AllStats() {
		fmt.Fprintf(&b, "%-10s %18s %18s %18s\n",
			st.String(),
			fnum(initial.Get(st)),
			fnum(res.Final.Get(st)),
			fnum(res.Final.Get(st)-initial.Get(st)),
		)
	}
	fmt.Fprintf(&b, "%-10s %18s %18s %18s\n",
		"total", fnum(initial.Total()), fnum(res.Final.Total()), fnum(res.Final.Total()-initial.Total()))

	if len(res.Features) > 0 {
		b.WriteString("\nJump events:\n")
		kinds := make([]string, 0, len(res.Features))
		for kind := range res.Features {
			kinds = append(kinds, string(kind))
		}
		sort.Strings(kinds)

		for _, kind := range kinds {
			f := res.Features[jumps.Kind(kind)]
			fmt.Fprintf(&b, "  %-14s jumps=%d gains=%s avg/jump=%s",
				kind, f.Jumps, fnum(f.Gains.Total()), fnum(f.AvgGainPerJump))
			if f.Cost > 0 {
				fmt.Fprintf(&b, " cost=$%s", fnum(f.Cost))
			}
			if f.Income > 0 {
				fmt.Fprintf(&b, " income=$%s", fnum(f.Income))
			}
			b.WriteByte('\n')

			for i, occ := range f.Occurrences {
				fmt.Fprintf(&b, "    jump %d gains=%s\n", i+1, fnum(occ.Total()))
			}
		}
	}
	return b.String()
}

// CompareRow is one scenario's line in a comparison table.
type CompareRow struct {
	Name  string
	Final stats.Vector
}

// Compare renders a side-by-side final-stat table for several runs.
func Compare(rows []CompareRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %16s %16s %16s %16s %18s\n",
		"scenario", "strength", "speed", "defense", "dexterity", "total")
	for _, row := range rows {
		fmt.Fprintf(&b, "%-20s %16s %16s %16s %16s %18s\n",
			row.Name,
			fnum(row.Final.Strength),
			fnum(row.Final.Speed),
			fnum(row.Final.Defense),
			fnum(row.Final.Dexterity),
			fnum(row.Final.Total()),
		)
	}
	return b.String()
}
