// Package symcore is the public facade over the symbolic mathematics
// core: parsing, evaluation, pattern matching, rule-driven rewriting,
// and equation solving. It re-exports the commonly used types from the
// subpackages under pkg/ so that straightforward callers need only this
// one import.
package symcore

import (
	"github.com/ishaanverma/symcore/pkg/context"
	"github.com/ishaanverma/symcore/pkg/eqtn"
	"github.com/ishaanverma/symcore/pkg/eval"
	"github.com/ishaanverma/symcore/pkg/expr"
	"github.com/ishaanverma/symcore/pkg/heuristic"
	"github.com/ishaanverma/symcore/pkg/rules"
	"github.com/ishaanverma/symcore/pkg/shuntingyard"
	"github.com/ishaanverma/symcore/pkg/solver"
	"github.com/ishaanverma/symcore/pkg/token"
)

// Expr is a parsed, postfix arithmetic expression.
type Expr = expr.Expr

// Eqtn is a relation "lhs = rhs" between two expressions.
type Eqtn = eqtn.Eqtn

// Context is a mutable table of variables and arity-guarded functions.
type Context = context.Context

// Provider is anything that can serve as an evaluation context.
type Provider = context.Provider

// RuleSet is a closed collection of bidirectional rewrite rules.
type RuleSet = rules.Set

// Solver isolates a target variable on one side of an equation.
type Solver = solver.Solver

// Parse parses source text into a postfix Expr.
func Parse(src string) (Expr, error) {
	e, err := expr.Parse(src)
	if err != nil {
		return Expr{}, wrap(err)
	}
	return e, nil
}

// ParseEqtn parses "lhs = rhs" into an Eqtn.
func ParseEqtn(src string) (Eqtn, error) {
	e, err := eqtn.Parse(src)
	if err != nil {
		return Eqtn{}, wrap(err)
	}
	return e, nil
}

// NewContext returns a Context pre-populated with the built-in
// constants and math functions.
func NewContext() *Context { return context.New() }

// Builtin returns the shared, immutable built-in context.
func Builtin() *Context { return context.Builtin() }

// Eval evaluates e against the built-in context.
func Eval(e Expr) (float64, error) {
	v, err := eval.WithContext(e, context.Builtin())
	if err != nil {
		return 0, wrap(err)
	}
	return v, nil
}

// EvalWithContext evaluates e against ctx.
func EvalWithContext(e Expr, ctx Provider) (float64, error) {
	v, err := eval.WithContext(e, ctx)
	if err != nil {
		return 0, wrap(err)
	}
	return v, nil
}

// EvalString parses and evaluates src in one step against the built-in
// context.
func EvalString(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return Eval(e)
}

// DefaultRules returns the union of the arithmetic, exponential, and
// trigonometric rule bundles.
func DefaultRules() RuleSet { return rules.Default() }

// NewSolver builds a Solver targeting v with the default heuristic and
// depth bound.
func NewSolver(v string, rs RuleSet) *Solver { return solver.New(v, rs) }

// Solve parses start as "lhs = rhs" and attempts to isolate v using the
// default rule set, heuristic, and depth bound.
func Solve(start string, v string) (Eqtn, error) {
	eq, err := ParseEqtn(start)
	if err != nil {
		return Eqtn{}, err
	}
	result, err := NewSolver(v, DefaultRules()).Solve(eq)
	if err != nil {
		return Eqtn{}, wrap(err)
	}
	return result, nil
}

// DefaultHeuristic builds the (MaxNesting, NoOccurrences, Length)
// heuristic used by NewSolver, targeting v.
func DefaultHeuristic(v string) heuristic.EqtnHeuristic { return heuristic.Default(v) }

// RPNError re-exports the shunting-yard stage's error type for callers
// that want to inspect Kind directly rather than going through Error.
type RPNError = shuntingyard.RPNError

// ParseError re-exports the tokenizer's error type.
type ParseError = token.ParseError
