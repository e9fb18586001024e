package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/limitz/internal/coach"
	"github.com/abhisek/limitz/internal/problem"
	"github.com/abhisek/limitz/internal/store"
)

var coachCmd = &cobra.Command{
	Use:   "coach <share-code>",
	Short: "Ask the AI coach to walk through a problem",
	Long:  "Decode a share code and print the coach's step-by-step walkthrough. Needs an API key in the environment.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		p, err := problem.DecodeShareCode(args[0])
		if err != nil {
			return err
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

		provider, err := coach.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return err
		}

		fmt.Println(problem.Prompt(p))
		fmt.Println()

		exp, err := coach.New(provider).Explain(ctx, p, nil)
		if err != nil {
			return fmt.Errorf("coach request: %w", err)
		}

		fmt.Println(exp.Restatement)
		fmt.Println()
		fmt.Println("Key idea:", exp.KeyIdea)
		fmt.Println()
		for i, step := range exp.Steps {
			fmt.Printf("%d. %s\n   %s\n", i+1, step.Title, step.Detail)
		}
		fmt.Println()
		fmt.Println("Watch out:", exp.Pitfall)
		fmt.Println("Takeaway: ", exp.Takeaway)
		return nil
	},
}
