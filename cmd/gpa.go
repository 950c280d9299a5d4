package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/great123-artV/GradeX/internal/grading"
)

var gpaCmd = &cobra.Command{
	Use:   "gpa [code:units:score ...]",
	Short: "Compute semester GPA and CGPA, showing every step",
	Long: `Compute GPA and CGPA.

With course arguments the calculation is stateless: nothing is read from or
written to the database, and prior history comes from --prior-cgpa and
--prior-units. Without arguments the stored courses of the profile's current
semester are used, with every earlier semester folded into the prior state.`,
	Example: `  gradex gpa MTH101:3:65 PHY101:2:48 --prior-cgpa 3.2 --prior-units 30
  gradex gpa`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return storedGPA(cmd)
		}

		list := make([]grading.ScoredCourse, 0, len(args))
		for _, a := range args {
			c, err := parseCourseArg(a)
			if err != nil {
				return err
			}
			list = append(list, c)
		}
		priorCGPA, _ := cmd.Flags().GetFloat64("prior-cgpa")
		priorUnits, _ := cmd.Flags().GetInt("prior-units")
		if priorUnits < 0 {
			return fmt.Errorf("--prior-units must not be negative")
		}

		res := newEngine().Aggregate(list, grading.PriorState{CGPA: priorCGPA, Units: priorUnits})
		printResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func storedGPA(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	sum, err := newCourseService(st).Summary(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", sum.Profile.Term())
	printResult(out, sum.Current)
	fmt.Fprintf(out, "\nClass of degree: %s\n", sum.Class.DisplayName())
	if sum.Carryovers > 0 {
		fmt.Fprintf(out, "Carryovers on record: %d\n", sum.Carryovers)
	}
	return nil
}

// parseCourseArg parses CODE:UNITS:SCORE. The code may not contain colons.
func parseCourseArg(s string) (grading.ScoredCourse, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return grading.ScoredCourse{}, fmt.Errorf("invalid course %q: want code:units:score", s)
	}
	code := strings.ToUpper(strings.TrimSpace(parts[0]))
	if code == "" {
		return grading.ScoredCourse{}, fmt.Errorf("invalid course %q: code is empty", s)
	}
	units, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || units < 0 {
		return grading.ScoredCourse{}, fmt.Errorf("invalid course %q: units must be a whole number", s)
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return grading.ScoredCourse{}, fmt.Errorf("invalid course %q: score must be a number", s)
	}
	return grading.ScoredCourse{Code: code, Units: units, Score: score}, nil
}

func printResult(out io.Writer, res grading.Result) {
	if len(res.Courses) > 0 {
		fmt.Fprintf(out, "%-10s  %5s  %6s  %-5s  %6s  %8s\n", "Course", "Units", "Score", "Grade", "Points", "Weighted")
		fmt.Fprintln(out, strings.Repeat("─", 50))
		for _, c := range res.Courses {
			mark := ""
			if c.Carryover {
				mark = "  carryover"
			}
			fmt.Fprintf(out, "%-10s  %5d  %6.1f  %-5s  %6.2f  %8.2f%s\n",
				c.Code, c.Units, c.Score, c.Letter, c.GradePoint, c.WeightedPoints, mark)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "GPA:  %.2f\n", res.DisplayGPA())
	fmt.Fprintf(out, "CGPA: %.2f (%s)\n", res.DisplayCGPA(), grading.ClassOfDegree(res.CGPA).DisplayName())

	fmt.Fprintln(out, "\nSteps")
	for i, s := range res.Steps {
		fmt.Fprintf(out, "%3d. %s\n", i+1, s)
	}
}

func init() {
	gpaCmd.Flags().Float64("prior-cgpa", 0, "CGPA before this semester")
	gpaCmd.Flags().Int("prior-units", 0, "Units counted in --prior-cgpa")
}
