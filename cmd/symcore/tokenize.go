package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ishaanverma/symcore/pkg/lexer"
	"github.com/ishaanverma/symcore/pkg/shuntingyard"
)

func newTokenizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <expression>",
		Short: "Print the raw infix token stream and its postfix (RPN) form.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toks, err := lexer.Tokenize(args[0])
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}
			fmt.Println("infix:  ", lexer.Dump(toks))

			rpn, err := shuntingyard.ToRPN(toks)
			if err != nil {
				return fmt.Errorf("shunting-yard: %w", err)
			}
			fmt.Println("postfix:", lexer.Dump(rpn))
			return nil
		},
	}
}
