package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tutorflow/engine/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tutorflow",
	Short: "AI-tutored lesson sessions",
	Long:  "Tutorflow runs structured lesson sessions: teach, comprehend, exercise, worksheet, test.",
}

func Execute() error {
	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTORFLOW_DB env var)")
	rootCmd.PersistentFlags().String("learner", "local", "Learner identifier")
	rootCmd.PersistentFlags().String("lessons", "lessons", "Directory containing lesson content files")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TUTORFLOW_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the CLI's console logger. TUTORFLOW_DEBUG=1 enables
// debug-level output.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if os.Getenv("TUTORFLOW_DEBUG") == "1" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
