// Package eqtn implements the equation value (spec §3, §6): an ordered
// pair of expressions related by "=", together with its own evaluation
// (as a boolean equality check) and context-completeness check.
package eqtn

import (
	"strings"

	"github.com/ishaanverma/symcore/pkg/context"
	"github.com/ishaanverma/symcore/pkg/eval"
	"github.com/ishaanverma/symcore/pkg/expr"
	"github.com/ishaanverma/symcore/pkg/token"
)

// Eqtn is a relation between two expressions, e.g. "x = 5".
type Eqtn struct {
	LHS, RHS expr.Expr
}

// New builds an equation from its two sides directly.
func New(lhs, rhs expr.Expr) Eqtn { return Eqtn{LHS: lhs, RHS: rhs} }

// Parse splits on the sole '=' separator and parses both sides as
// expressions. The '=' may appear at most once.
func Parse(s string) (Eqtn, error) {
	lhs, rhs, ok := strings.Cut(s, "=")
	if !ok {
		return Eqtn{}, token.NewMissingArgument()
	}
	if strings.Contains(rhs, "=") {
		return Eqtn{}, token.NewMissingArgument()
	}

	l, err := expr.Parse(lhs)
	if err != nil {
		return Eqtn{}, err
	}
	r, err := expr.Parse(rhs)
	if err != nil {
		return Eqtn{}, err
	}
	return Eqtn{LHS: l, RHS: r}, nil
}

// Equal reports structural equality of both sides, used by the solver
// to dedupe visited states.
func (e Eqtn) Equal(o Eqtn) bool {
	return e.LHS.Equal(o.LHS) && e.RHS.Equal(o.RHS)
}

// WithContext evaluates both sides and reports whether they are equal.
func (e Eqtn) WithContext(ctx context.Provider) (bool, error) {
	lhs, err := eval.WithContext(e.LHS, ctx)
	if err != nil {
		return false, err
	}
	rhs, err := eval.WithContext(e.RHS, ctx)
	if err != nil {
		return false, err
	}
	return lhs == rhs, nil
}

// CheckContext verifies both sides against ctx.
func (e Eqtn) CheckContext(ctx context.Provider) error {
	if err := eval.CheckContext(e.LHS, ctx); err != nil {
		return err
	}
	return eval.CheckContext(e.RHS, ctx)
}

// String renders "lhs = rhs" in debug (postfix) form.
func (e Eqtn) String() string {
	return e.LHS.String() + " = " + e.RHS.String()
}
