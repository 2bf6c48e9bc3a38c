// Package replcli implements the interactive Read-Eval-Print Loop:
// evaluate an expression, assign a variable, or solve an equation for a
// named variable, one line at a time, against a session-scoped context.
package replcli

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ishaanverma/symcore/pkg/context"
	"github.com/ishaanverma/symcore/pkg/eqtn"
	"github.com/ishaanverma/symcore/pkg/eval"
	"github.com/ishaanverma/symcore/pkg/expr"
	"github.com/ishaanverma/symcore/pkg/rules"
	"github.com/ishaanverma/symcore/pkg/solver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session: a banner, a prompt, and a persistent
// variable context carried across lines.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	vars  context.VarMap
	rules rules.Set
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{
		Banner: banner, Version: version, Author: author,
		Line: line, License: license, Prompt: prompt,
		vars:  make(context.VarMap),
		rules: rules.Default(),
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Enter an expression, 'name = expr' to assign, or 'solve <eqtn> for <var>'.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit, '.vars' to list assigned variables.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop, writing results, errors, and the
// banner to writer. Input lines come from the process's standard input
// through readline; reader is not read.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		if line == ".vars" {
			r.printVars(writer)
			continue
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line)
	}
}

func (r *Repl) printVars(writer io.Writer) {
	if len(r.vars) == 0 {
		cyanColor.Fprintln(writer, "(no variables assigned)")
		return
	}
	for name, v := range r.vars {
		yellowColor.Fprintf(writer, "%s = %g\n", name, v)
	}
}

// executeWithRecovery dispatches one line of input and prints the
// outcome, recovering from any internal panic so the session continues.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	if target, eqSrc, ok := parseSolveCommand(line); ok {
		r.runSolve(writer, eqSrc, target)
		return
	}

	if name, rhs, ok := parseAssignment(line); ok {
		r.runAssign(writer, name, rhs)
		return
	}

	r.runEval(writer, line)
}

func (r *Repl) ctx() context.Provider {
	return context.Chain{First: r.vars, Second: context.Builtin()}
}

func (r *Repl) runEval(writer io.Writer, src string) {
	e, err := expr.Parse(src)
	if err != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %v\n", err)
		return
	}
	v, err := eval.WithContext(e, r.ctx())
	if err != nil {
		redColor.Fprintf(writer, "[EVAL ERROR] %v\n", err)
		return
	}
	yellowColor.Fprintf(writer, "%g\n", v)
}

func (r *Repl) runAssign(writer io.Writer, name, src string) {
	e, err := expr.Parse(src)
	if err != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %v\n", err)
		return
	}
	v, err := eval.WithContext(e, r.ctx())
	if err != nil {
		redColor.Fprintf(writer, "[EVAL ERROR] %v\n", err)
		return
	}
	r.vars[name] = v
	yellowColor.Fprintf(writer, "%s = %g\n", name, v)
}

func (r *Repl) runSolve(writer io.Writer, eqSrc, target string) {
	eq, err := eqtn.Parse(eqSrc)
	if err != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %v\n", err)
		return
	}
	result, err := solver.New(target, r.rules).Solve(eq)
	if err != nil {
		redColor.Fprintf(writer, "[SOLVE ERROR] %v\n", err)
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.String())
}

// parseAssignment recognizes "name = expr" where name is a bare
// identifier with no operators of its own — anything else (e.g.
// "x + 1 = 2") is left for runEval/parseSolveCommand instead.
func parseAssignment(line string) (name, rhs string, ok bool) {
	lhs, rest, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	lhs = strings.TrimSpace(lhs)
	if !isBareIdent(lhs) {
		return "", "", false
	}
	return lhs, rest, true
}

func isBareIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		isLetter := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		isDigit := c >= '0' && c <= '9'
		if i == 0 && !isLetter {
			return false
		}
		if i > 0 && !isLetter && !isDigit {
			return false
		}
	}
	return true
}

// parseSolveCommand recognizes "solve <eqtn> for <var>".
func parseSolveCommand(line string) (target, eqSrc string, ok bool) {
	if !strings.HasPrefix(line, "solve ") {
		return "", "", false
	}
	rest := strings.TrimPrefix(line, "solve ")
	eqSrc, target, found := rsplit(rest, " for ")
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(target), eqSrc, true
}

func rsplit(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+len(sep):], true
}
