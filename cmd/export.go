package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/great123-artV/GradeX/internal/store"
	"github.com/great123-artV/GradeX/internal/transcript"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Write courses and standing to an xlsx workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svc := newCourseService(st)
		ctx := cmd.Context()

		list, err := svc.List(ctx, store.CourseFilter{})
		if err != nil {
			return err
		}
		sum, err := svc.Summary(ctx)
		if err != nil {
			return err
		}

		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		if err := transcript.Export(f, svc.Classifier(), list, sum); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d %s to %s\n", len(list), plural(len(list), "course", "courses"), args[0])
		return nil
	},
}
