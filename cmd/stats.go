package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/limitz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
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

		ctx := cmd.Context()
		stats, err := st.EventRepo().Stats(ctx)
		if err != nil {
			return fmt.Errorf("compute stats: %w", err)
		}

		fmt.Printf("Problems served   %d\n", stats.TotalProblems)
		fmt.Printf("Solved            %d\n", stats.TotalSolved)
		fmt.Printf("Attempts          %d\n", stats.TotalAttempts)
		fmt.Printf("Correct attempts  %d\n", stats.CorrectAttempts)
		fmt.Printf("Parse errors      %d\n", stats.ParseErrors)
		fmt.Printf("Hints used        %d\n", stats.HintsUsed)
		fmt.Printf("Best streak       %d\n", stats.BestStreak)
		fmt.Printf("Accuracy          %.0f%%\n", stats.Accuracy()*100)

		if len(stats.SolvedByA) > 0 {
			fmt.Println()
			fmt.Println("Solved by answer")
			keys := make([]int, 0, len(stats.SolvedByA))
			for a := range stats.SolvedByA {
				keys = append(keys, a)
			}
			sort.Ints(keys)
			for _, a := range keys {
				fmt.Printf("  1/%-5d %d\n", a, stats.SolvedByA[a])
			}
		}

		usage, err := st.EventRepo().CoachUsageByProvider(ctx)
		if err != nil {
			return fmt.Errorf("coach usage: %w", err)
		}
		if len(usage) > 0 {
			fmt.Println()
			fmt.Printf("%-12s  %8s  %10s  %10s  %8s\n", "Coach", "Requests", "In tokens", "Out tokens", "Failures")
			fmt.Println(strings.Repeat("─", 56))
			for _, u := range usage {
				fmt.Printf("%-12s  %8d  %10d  %10d  %8d\n",
					u.Provider, u.Requests, u.InputTokens, u.OutputTokens, u.Failures)
			}
		}

		return nil
	},
}
