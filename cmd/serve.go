package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/great123-artV/GradeX/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sc := serverConfig(cfg.Server)
		if cmd.Flags().Changed("addr") {
			sc.Addr, _ = cmd.Flags().GetString("addr")
		}
		if debug, _ := cmd.Flags().GetBool("debug"); !debug {
			gin.SetMode(gin.ReleaseMode)
		}

		svc := newCourseService(st)
		srv := server.New(sc, svc, newAssistant(ctx, st, svc), logger)
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address (overrides server.addr)")
	serveCmd.Flags().Bool("debug", false, "Run gin in debug mode")
}
