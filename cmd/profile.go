package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/great123-artV/GradeX/internal/courses"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change the student profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile and current standing",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sum, err := newCourseService(st).Summary(cmd.Context())
		if err != nil {
			return err
		}
		printProfile(cmd.OutOrStdout(), sum)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change profile fields",
	Example: `  gradex profile set --name Ada --level 200L --semester 1st
  gradex profile set --prior-cgpa 3.45 --prior-units 36`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svc := newCourseService(st)
		ctx := cmd.Context()

		p, err := svc.Profile(ctx)
		if err != nil {
			return err
		}
		in := p.Input()
		fs := cmd.Flags()
		if fs.Changed("name") {
			in.Name, _ = fs.GetString("name")
		}
		if fs.Changed("level") {
			in.Level, _ = fs.GetString("level")
		}
		if fs.Changed("semester") {
			in.Semester, _ = fs.GetString("semester")
		}
		if fs.Changed("about") {
			in.About, _ = fs.GetString("about")
		}
		if fs.Changed("prior-cgpa") {
			in.PriorCGPA, _ = fs.GetFloat64("prior-cgpa")
		}
		if fs.Changed("prior-units") {
			in.PriorUnits, _ = fs.GetInt("prior-units")
		}

		saved, err := svc.SaveProfile(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved profile: %s, %s\n", displayName(saved), saved.Term())
		return nil
	},
}

func displayName(p courses.Profile) string {
	if p.Name == "" {
		return "(no name)"
	}
	return p.Name
}

func printProfile(out io.Writer, sum *courses.Summary) {
	p := sum.Profile
	fmt.Fprintf(out, "Name:         %s\n", displayName(p))
	fmt.Fprintf(out, "Term:         %s\n", p.Term())
	if p.About != "" {
		fmt.Fprintf(out, "About:        %s\n", p.About)
	}
	if p.PriorUnits > 0 {
		fmt.Fprintf(out, "Prior record: CGPA %.2f over %d units\n", p.PriorCGPA, p.PriorUnits)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Semester GPA: %.2f\n", sum.DisplayGPA())
	fmt.Fprintf(out, "CGPA:         %.2f\n", sum.DisplayCGPA())
	fmt.Fprintf(out, "Class:        %s\n", sum.Class.DisplayName())
	fmt.Fprintf(out, "Units:        %d over %d %s\n", sum.TotalUnits, sum.Courses, plural(sum.Courses, "course", "courses"))
	fmt.Fprintf(out, "Carryovers:   %d\n", sum.Carryovers)

	if len(sum.History) > 0 {
		fmt.Fprintln(out, "\nHistory")
		for _, t := range sum.History {
			fmt.Fprintf(out, "  %-9s  GPA %.2f  CGPA %.2f  (%d units)\n", t.Term.Label(), t.GPA, t.CGPA, t.Units)
		}
	}
}

func init() {
	fs := profileSetCmd.Flags()
	fs.String("name", "", "Display name")
	fs.String("level", "", "Current level, e.g. 200L")
	fs.String("semester", "", "Current semester: 1st or 2nd")
	fs.String("about", "", "A short note about yourself")
	fs.Float64("prior-cgpa", 0, "CGPA from semesters not recorded in gradex")
	fs.Int("prior-units", 0, "Units counted in --prior-cgpa")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}
