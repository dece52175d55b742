package cmd

import (
	"github.com/sohandillikar/statue-confirmation-component/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "statue",
	Short: "Slide-to-confirm showcase for the terminal",
	Long:  "Statue — a terminal showcase of a slide-to-confirm control with easy, medium, and hard modes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STATUE_DB env var)")
	rootCmd.Flags().String("difficulty", "", "Preselect a mode: easy, medium or hard")
	rootCmd.Flags().Int("time-limit", 0, "Countdown for timed modes in milliseconds (overrides saved preference)")
	rootCmd.Flags().Int("reset-delay", 0, "Success hold before auto-reset in milliseconds (overrides saved preference)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STATUE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
