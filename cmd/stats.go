package cmd

import (
	"fmt"

	"github.com/sohandillikar/statue-confirmation-component/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show confirmation statistics per difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("event repo: %w", err)
		}

		stats, err := repo.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-8s %9s %10s %13s\n", "MODE", "ATTEMPTS", "CONFIRMED", "SUCCESS RATE")
		for _, s := range stats {
			fmt.Printf("%-8s %9d %10d %12.0f%%\n",
				s.Difficulty, s.Attempts, s.Successes, s.SuccessRate()*100)
		}
		return nil
	},
}
