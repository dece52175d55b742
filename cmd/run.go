package cmd

import (
	"fmt"
	"os"

	"github.com/sohandillikar/statue-confirmation-component/internal/app"
	"github.com/sohandillikar/statue-confirmation-component/internal/confirm"
	"github.com/sohandillikar/statue-confirmation-component/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the repositories, and launches the TUI.
// A broken store degrades to an in-memory run instead of refusing to
// start.
func runApp(cmd *cobra.Command) error {
	var opts app.Options

	overrides, err := prefsFromFlags(cmd)
	if err != nil {
		return err
	}
	opts.Prefs = overrides

	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		var st *store.Store
		st, err = store.Open(dbPath)
		if err == nil {
			defer st.Close()
			opts.SnapRepo = st.SnapshotRepo()
			opts.EventRepo, err = st.EventRepo()
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Persistence unavailable:", err)
		fmt.Fprintln(os.Stderr, "Attempts will not be recorded this run.")
		opts.EventRepo = nil
		opts.SnapRepo = nil
	}

	return app.Run(opts)
}

// prefsFromFlags turns the root flags into preference overrides, or nil
// when no flag was set.
func prefsFromFlags(cmd *cobra.Command) (*store.Preferences, error) {
	difficulty, _ := cmd.Flags().GetString("difficulty")
	timeLimit, _ := cmd.Flags().GetInt("time-limit")
	resetDelay, _ := cmd.Flags().GetInt("reset-delay")

	if difficulty == "" && timeLimit == 0 && resetDelay == 0 {
		return nil, nil
	}

	p := &store.Preferences{TimeLimitMs: timeLimit, ResetDelayMs: resetDelay}
	if difficulty != "" {
		d, err := confirm.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		p.Difficulty = d.String()
	}
	return p, nil
}
