package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ishaanverma/symcore/internal/replcli"
)

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive evaluate/assign/solve session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := replcli.NewRepl(banner, version, author, line, license, "symcore >>> ")
			r.Start(os.Stdin, os.Stdout)
			return nil
		},
	}
}
