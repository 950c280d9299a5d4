package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/great123-artV/GradeX/internal/grading"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <score>...",
	Short: "Show the letter grade and grade point for scores",
	Example: `  gradex classify 72 55.5 39`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cl := grading.NewClassifier(cfg.BandTable())
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-8s  %-5s  %-6s  %-7s  %s\n", "Score", "Grade", "Points", "Band", "Carryover")
		fmt.Fprintln(out, strings.Repeat("─", 46))
		for _, a := range args {
			score, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("invalid score %q: must be a number", a)
			}
			g := cl.Classify(score)
			band := fmt.Sprintf("%d-%d", g.Band.Min, g.Band.Max)
			carry := ""
			if cl.IsCarryover(score) {
				carry = "yes"
			}
			note := ""
			if g.Clamped {
				note = "  (clamped to 0-100)"
			}
			fmt.Fprintf(out, "%-8s  %-5s  %-6.2f  %-7s  %s%s\n", a, g.Letter, g.Points, band, carry, note)
		}
		return nil
	},
}
