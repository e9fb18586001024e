package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/limitz/internal/app"
	"github.com/abhisek/limitz/internal/coach"
	"github.com/abhisek/limitz/internal/problem"
	"github.com/abhisek/limitz/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// shareCode, when non-empty, queues that problem for the first session.
func runApp(cmd *cobra.Command, shareCode string) error {
	ctx := cmd.Context()

	var shared *problem.Problem
	if shareCode != "" {
		p, err := problem.DecodeShareCode(shareCode)
		if err != nil {
			return fmt.Errorf("decode share code: %w", err)
		}
		shared = &p
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	gen, err := problem.NewGenerator(problem.DefaultConfig())
	if err != nil {
		return fmt.Errorf("build generator: %w", err)
	}

	opts := app.Options{
		Generator:    gen,
		EventRepo:    st.EventRepo(),
		SnapshotRepo: st.SnapshotRepo(),
		Shared:       shared,
	}

	// The coach is optional; drills fall back to the worked solution.
	provider, err := coach.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Coach not configured:", err)
		fmt.Fprintln(os.Stderr, "AI explanations will be unavailable.")
	} else {
		opts.Coach = coach.New(provider)
	}

	return app.Run(opts)
}
