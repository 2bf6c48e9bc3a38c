package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ishaanverma/symcore/pkg/context"
	"github.com/ishaanverma/symcore/pkg/eval"
	"github.com/ishaanverma/symcore/pkg/expr"
)

func newEvalCommand() *cobra.Command {
	var assigns []string

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an arithmetic expression against the built-in context.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := parseAssignFlags(assigns)
			if err != nil {
				return err
			}

			e, err := expr.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			ctx := context.Chain{First: vars, Second: context.Builtin()}
			v, err := eval.WithContext(e, ctx)
			if err != nil {
				return fmt.Errorf("eval: %w", err)
			}

			fmt.Println(humanize.FtoaWithDigits(v, 10))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&assigns, "var", "D", nil, "variable assignment as name=value, may be repeated")
	return cmd
}

func parseAssignFlags(assigns []string) (context.VarMap, error) {
	vars := make(context.VarMap, len(assigns))
	for _, a := range assigns {
		name, value, ok := splitAssign(a)
		if !ok {
			return nil, fmt.Errorf("--var expects name=value, got %q", a)
		}
		var f float64
		if _, err := fmt.Sscanf(value, "%g", &f); err != nil {
			return nil, fmt.Errorf("--var %q: %w", a, err)
		}
		vars[name] = f
	}
	return vars, nil
}

func splitAssign(s string) (name, value string, ok bool) {
	for i, c := range s {
		if c == '=' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}
