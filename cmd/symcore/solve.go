package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ishaanverma/symcore/pkg/eqtn"
	"github.com/ishaanverma/symcore/pkg/rules"
	"github.com/ishaanverma/symcore/pkg/solver"
)

func newSolveCommand() *cobra.Command {
	var target string
	var depth int

	cmd := &cobra.Command{
		Use:   "solve <equation>",
		Short: "Isolate a target variable on one side of an equation.",
		Long:  "Applies the default arithmetic, exponential, and trigonometric rule bundles via a depth-limited search to rewrite an equation until the target variable stands alone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if target == "" {
				return fmt.Errorf("--for <variable> is required")
			}

			eq, err := eqtn.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			s := solver.New(target, rules.Default())
			if depth > 0 {
				s.WithDepth(depth)
			}

			result, err := s.Solve(eq)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}

			fmt.Println(result.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "for", "", "variable to isolate")
	cmd.Flags().IntVar(&depth, "depth", 0, "search depth bound (default: solver.DefaultDepth)")
	return cmd
}
