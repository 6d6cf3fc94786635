package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/aaronromeo/swolecrew/internal/catalog"
	"github.com/aaronromeo/swolecrew/internal/form"
)

// Text writes the human summary of each plan: a title line, the total time
// and the numbered exercise list.
func Text(w io.Writer, results []form.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No plans generated yet.")
		return err
	}
	var b strings.Builder
	b.WriteString("Generated plans\n")
	for _, r := range results {
		goal := catalog.Profile(r.Goal).Key
		fmt.Fprintf(&b, "\n%s — %s\n", r.Name, strings.ToUpper(string(goal)))
		fmt.Fprintf(&b, "Total estimated time: %d min\n", r.Plan.TotalMinutes)
		for i, ex := range r.Plan.Exercises {
			fmt.Fprintf(&b, "%2d. %s\n", i+1, ex.Equipment)
			fmt.Fprintf(&b, "    %d sets · %d reps · rest %ds · ~%d min\n", ex.Sets, ex.Reps, ex.RestSeconds, ex.AvgMinutes)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
