package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/store"
	"github.com/great123-artV/GradeX/internal/transcript"
)

var courseCmd = &cobra.Command{
	Use:     "course",
	Aliases: []string{"courses"},
	Short:   "Manage recorded courses",
}

var courseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a course",
	Example: `  gradex course add --code "MTH 101" --title "General Mathematics I" --units 3 --score 68
  gradex course add --code GST101 --title "Use of English" --score 55 --level 100L --semester 2nd`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svc := newCourseService(st)
		ctx := cmd.Context()

		if !cmd.Flags().Changed("score") {
			return errors.New("--score is required")
		}
		p, err := svc.Profile(ctx)
		if err != nil {
			return err
		}
		// New courses default to the profile's current term.
		in := courses.CourseInput{Level: p.Level, Semester: p.Semester}
		applyCourseFlags(cmd.Flags(), &in)

		c, err := svc.Add(ctx, in)
		if err != nil {
			return err
		}
		g := c.Grade(svc.Classifier())
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s): %s, %.2f points [%s]\n",
			c.Code, c.Term(), g.Letter, g.Points, c.ShortID())
		return nil
	},
}

var courseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recorded courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svc := newCourseService(st)

		lvl, _ := cmd.Flags().GetString("level")
		sem, _ := cmd.Flags().GetString("semester")
		list, err := svc.List(cmd.Context(), store.CourseFilter{
			Level:    strings.ToUpper(lvl),
			Semester: strings.ToLower(sem),
		})
		if err != nil {
			return err
		}
		printCourses(cmd.OutOrStdout(), svc, list)
		return nil
	},
}

var courseEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a recorded course",
	Long:  "Change a recorded course. Only the given flags change; the ID may be a unique prefix.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svc := newCourseService(st)
		ctx := cmd.Context()

		existing, err := svc.Resolve(ctx, args[0])
		if err != nil {
			return err
		}
		in := courses.FromCourse(*existing)
		applyCourseFlags(cmd.Flags(), &in)

		c, err := svc.Update(ctx, existing.ID, in)
		if err != nil {
			return err
		}
		g := c.Grade(svc.Classifier())
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s): %s, %.2f points\n", c.Code, c.Term(), g.Letter, g.Points)
		return nil
	},
}

var courseRmCmd = &cobra.Command{
	Use:     "rm <id>...",
	Aliases: []string{"delete"},
	Short:   "Remove recorded courses",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svc := newCourseService(st)
		ctx := cmd.Context()

		for _, ref := range args {
			c, err := svc.Resolve(ctx, ref)
			if err != nil {
				return fmt.Errorf("%s: %w", ref, err)
			}
			if err := svc.Delete(ctx, c.ID); err != nil {
				return fmt.Errorf("%s: %w", ref, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%s)\n", c.Code, c.Term())
		}
		return nil
	},
}

var courseImportCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Record every course in a spreadsheet",
	Long: `Record every course in the first sheet of an xlsx workbook.

The first row is the header and must name the columns
code, title, units, score, level and semester, in any order. Nothing is
recorded unless every row is valid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		ins, err := transcript.Import(f)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		added, err := newCourseService(st).Import(cmd.Context(), ins)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d %s from %s\n", len(added), plural(len(added), "course", "courses"), args[0])
		return nil
	},
}

var courseResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove every recorded course",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Remove every recorded course?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing removed.")
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := newCourseService(st).Reset(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d %s\n", n, plural(n, "course", "courses"))
		return nil
	},
}

func addCourseFlags(fs *pflag.FlagSet) {
	fs.String("code", "", "Course code, e.g. MTH 101")
	fs.String("title", "", "Course title")
	fs.Int("units", courses.DefaultUnits, "Credit units (1-6)")
	fs.Float64("score", 0, "Score out of 100")
	fs.String("level", "", "Level, e.g. 200L (default: profile level)")
	fs.String("semester", "", "Semester: 1st or 2nd (default: profile semester)")
}

// applyCourseFlags overlays the flags the user set onto in.
func applyCourseFlags(fs *pflag.FlagSet, in *courses.CourseInput) {
	if fs.Changed("code") {
		in.Code, _ = fs.GetString("code")
	}
	if fs.Changed("title") {
		in.Title, _ = fs.GetString("title")
	}
	if fs.Changed("units") || in.Units == 0 {
		in.Units, _ = fs.GetInt("units")
	}
	if fs.Changed("score") {
		in.Score, _ = fs.GetFloat64("score")
	}
	if fs.Changed("level") {
		in.Level, _ = fs.GetString("level")
	}
	if fs.Changed("semester") {
		in.Semester, _ = fs.GetString("semester")
	}
}

func printCourses(out io.Writer, svc *courses.Service, list []courses.Course) {
	if len(list) == 0 {
		fmt.Fprintln(out, "No courses recorded.")
		return
	}
	cl := svc.Classifier()
	fmt.Fprintf(out, "%-8s  %-10s  %-30s  %-9s  %5s  %6s  %-5s  %6s\n",
		"ID", "Code", "Title", "Term", "Units", "Score", "Grade", "Points")
	fmt.Fprintln(out, strings.Repeat("─", 96))
	for _, c := range list {
		g := c.Grade(cl)
		fmt.Fprintf(out, "%-8s  %-10s  %-30s  %-9s  %5d  %6.1f  %-5s  %6.2f\n",
			c.ShortID(), c.Code, truncate(c.Title, 30), c.Term().Label(), c.Units, c.Score, g.Letter, g.Points)
	}
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)
	s := bufio.NewScanner(in)
	if !s.Scan() {
		return false
	}
	ans := strings.ToLower(strings.TrimSpace(s.Text()))
	return ans == "y" || ans == "yes"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func init() {
	addCourseFlags(courseAddCmd.Flags())
	_ = courseAddCmd.MarkFlagRequired("code")
	_ = courseAddCmd.MarkFlagRequired("title")
	addCourseFlags(courseEditCmd.Flags())

	courseListCmd.Flags().String("level", "", "Only this level, e.g. 200L")
	courseListCmd.Flags().String("semester", "", "Only this semester: 1st or 2nd")

	courseResetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")

	courseCmd.AddCommand(courseAddCmd)
	courseCmd.AddCommand(courseListCmd)
	courseCmd.AddCommand(courseEditCmd)
	courseCmd.AddCommand(courseRmCmd)
	courseCmd.AddCommand(courseImportCmd)
	courseCmd.AddCommand(courseResetCmd)
}
