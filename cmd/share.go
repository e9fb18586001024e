package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/limitz/internal/problem"
)

var shareCmd = &cobra.Command{
	Use:   "share <code>",
	Short: "Inspect a share code",
	Long:  "Decode a share code and print the problem it encodes. With --new, generate a fresh problem and print its code instead.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if fresh, _ := cmd.Flags().GetBool("new"); fresh {
			return shareNew(cmd)
		}
		if len(args) != 1 {
			return fmt.Errorf("pass a share code, or --new for a fresh one")
		}
		p, err := problem.DecodeShareCode(args[0])
		if err != nil {
			return err
		}
		printProblem(p)
		return nil
	},
}

func init() {
	shareCmd.Flags().Bool("new", false, "Generate a new problem and print its share code")
	shareCmd.Flags().Int("a", 0, "With --new, use this coefficient instead of a random one")
}

func shareNew(cmd *cobra.Command) error {
	a, _ := cmd.Flags().GetInt("a")

	var p problem.Problem
	var err error
	if a != 0 {
		p, err = problem.New(a)
	} else {
		var gen *problem.Generator
		gen, err = problem.NewGenerator(problem.DefaultConfig())
		if err == nil {
			p, err = gen.Generate()
		}
	}
	if err != nil {
		return err
	}

	printProblem(p)
	return nil
}

func printProblem(p problem.Problem) {
	fmt.Println(problem.Prompt(p))
	fmt.Println("answer:", p.TargetString())
	fmt.Println("code:  ", problem.EncodeShareCode(p))
	fmt.Println()
	fmt.Println("play it:  limitz play", problem.EncodeShareCode(p))
}
