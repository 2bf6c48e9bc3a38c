// Command symcore is a CLI for the symbolic mathematics core: evaluate
// expressions, dump their token stream, solve equations for a target
// variable, or drop into an interactive REPL.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	version = "v1.0.0"
	author  = "ishaanverma"
	license = "MIT"
)

var banner = `
  ███████╗██╗   ██╗███╗   ███╗ ██████╗ ██████╗ ██████╗ ███████╗
  ██╔════╝╚██╗ ██╔╝████╗ ████║██╔════╝██╔═══██╗██╔══██╗██╔════╝
  ███████╗ ╚████╔╝ ██╔████╔██║██║     ██║   ██║██████╔╝█████╗
  ╚════██║  ╚██╔╝  ██║╚██╔╝██║██║     ██║   ██║██╔══██╗██╔══╝
  ███████║   ██║   ██║ ╚═╝ ██║╚██████╗╚██████╔╝██║  ██║███████╗
  ╚══════╝   ╚═╝   ╚═╝     ╚═╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝
`

const line = "----------------------------------------------------------------"

func main() {
	root := &cobra.Command{
		Use:     "symcore",
		Short:   "Parse, evaluate, and solve symbolic arithmetic expressions and equations.",
		Version: version,
	}

	root.AddCommand(
		newEvalCommand(),
		newTokenizeCommand(),
		newSolveCommand(),
		newReplCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
