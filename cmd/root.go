package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/limitz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "limitz",
	Short: "Terminal drills for one-sided limits",
	Long:  "Limitz generates limit exercises of the family lim[x→-1] √((x + 1)/(x² + cx + b)) and grades exact answers in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LIMITZ_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LIMITZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
