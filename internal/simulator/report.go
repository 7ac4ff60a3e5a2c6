package simulator

import (
	"fmt"
	"io"
	"sort"
)

// Result holds the final tallies of a completed run.
type Result struct {
	Iterations uint64
	Tallies    []Tally
}

// Probability returns the estimated probability for tally i.
func (r *Result) Probability(i int) float64 {
	return float64(r.Tallies[i].Count) / float64(r.Iterations)
}

// Report writes the probability table: a separator, the total iteration
// count, then one row per category sorted by count descending with ties
// broken by name descending. Names are right-aligned to the longest one.
func (r *Result) Report(w io.Writer) {
	rows := make([]Tally, len(r.Tallies))
	copy(rows, r.Tallies)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name > rows[j].Name
	})

	width := 0
	for _, row := range rows {
		if len(row.Name) > width {
			width = len(row.Name)
		}
	}

	fmt.Fprintln(w, "--------------")
	fmt.Fprintln(w, "(no overlapping 99% confidence intervals)")
	fmt.Fprintf(w, "total iterations: %d\n", r.Iterations)
	for _, row := range rows {
		p := float64(row.Count) / float64(r.Iterations)
		fmt.Fprintf(w, "%*s: %.6f (%d)\n", width, row.Name, p, row.Count)
	}
}
