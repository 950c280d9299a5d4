package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/great123-artV/GradeX/internal/config"
	"github.com/great123-artV/GradeX/internal/logging"
	"github.com/great123-artV/GradeX/internal/store"
)

var (
	cfg    = config.Default()
	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "gradex",
	Short: "GPA and CGPA calculator for the 5.0 grading scale",
	Long: `Gradex grades course scores, computes semester GPA and cumulative CGPA,
and shows every step of the calculation.

Run without a subcommand to open the terminal dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(file)
		if err != nil {
			return err
		}
		cfg = loaded

		lvl := cfg.Log.Level
		if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
			lvl = f.Value.String()
		}
		logger = logging.New(os.Stderr, lvl)
		if cfg.File != "" {
			level.Debug(logger).Log("msg", "loaded config", "file", cfg.File)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GRADEX_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to gradex.yaml (default: ./gradex.yaml or $XDG_CONFIG_HOME/gradex)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Diagnostic log level: debug, info, warn, error, none")
	rootCmd.Flags().Bool("no-splash", false, "Open the dashboard without the welcome screen")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(gpaCmd)
	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured db (GRADEX_DB or the config file), then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the resolved database.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func componentLogger(name string) log.Logger {
	return logging.Component(logger, name)
}
