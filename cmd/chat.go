package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the smart assistant about your results",
	Long: `Ask the smart assistant about your results.

With a message, print one reply and exit. Without one, start an interactive
session; an empty line or "exit" ends it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		asst := newAssistant(ctx, st, newCourseService(st))
		conv := asst.Start()
		out := cmd.OutOrStdout()

		if len(args) > 0 {
			reply, err := conv.Send(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, reply.Text)
			return nil
		}

		welcome, err := asst.Welcome(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n\n", welcome.Text)

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "you> ")
			if !scanner.Scan() {
				fmt.Fprintln(out)
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" || line == "exit" || line == "quit" {
				return nil
			}
			reply, err := conv.Send(ctx, line)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s\n\n", reply.Text)
		}
	},
}
