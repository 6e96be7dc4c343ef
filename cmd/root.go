package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathlab/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathlab",
	Short: "Math practice for kindergarten through grade 8",
	Long: `Mathlab generates math practice problems for 160 topics from kindergarten
through grade 8, checks answers and keeps score and streak.

Run without a subcommand to open the terminal app.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, 0, "")
	},
}

// Execute runs the command tree. Cancelling ctx stops the TUI and the
// HTTP server.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHLAB_DB env var)")
	rootCmd.PersistentFlags().String("log-mode", "", "Log mode: dev, prod or off (overrides MATHLAB_LOG_MODE env var)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHLAB_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
