// Package heuristic implements composable rankings over expressions and
// equations, parameterized by a target variable (spec §4.J, component
// I). Go has no generic tuple-of-Ord type, so a heuristic's value is
// represented as an Order — a fixed-length vector of ints compared
// lexicographically — which is the idiomatic Go stand-in for composing
// totally-ordered rankings.
package heuristic

import (
	"github.com/ishaanverma/symcore/pkg/eqtn"
	"github.com/ishaanverma/symcore/pkg/expr"
	"github.com/ishaanverma/symcore/pkg/token"
)

// Order is a lexicographically-compared ranking key.
type Order []int

// Less reports whether a sorts before b: the first differing element
// decides; equal prefixes fall through to length (shorter is less).
func Less(a, b Order) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// ExprHeuristic ranks a single expression.
type ExprHeuristic interface {
	ValueExpr(e expr.Expr) Order
}

// EqtnHeuristic ranks an equation; on an Eqtn the natural lift of an
// ExprHeuristic pairs the LHS score ahead of the RHS score (spec §4.J:
// "on Eqtn, the pair (lhs, rhs)").
type EqtnHeuristic interface {
	ExprHeuristic
	ValueEqtn(e eqtn.Eqtn) Order
}

func rankEqtn(h ExprHeuristic, e eqtn.Eqtn) Order {
	var out Order
	out = append(out, h.ValueExpr(e.LHS)...)
	out = append(out, h.ValueExpr(e.RHS)...)
	return out
}

// MaxNesting ranks by the maximum depth at which a target variable
// occurs in an expression (0 if absent).
type MaxNesting struct{ Var string }

// NewMaxNesting builds a MaxNesting heuristic targeting var.
func NewMaxNesting(v string) MaxNesting { return MaxNesting{Var: v} }

func (h MaxNesting) ValueExpr(e expr.Expr) Order {
	return Order{expr.FoldExpr(e, func(children []int, t token.Token) int {
		if t.Kind == token.Var && t.Name == h.Var {
			return 1
		}
		max := 0
		for _, c := range children {
			if c > max {
				max = c
			}
		}
		if max > 0 {
			return max + 1
		}
		return max
	})}
}

func (h MaxNesting) ValueEqtn(e eqtn.Eqtn) Order { return rankEqtn(h, e) }

// MinNesting ranks by the minimum non-zero depth at which a target
// variable occurs.
type MinNesting struct{ Var string }

// NewMinNesting builds a MinNesting heuristic targeting var.
func NewMinNesting(v string) MinNesting { return MinNesting{Var: v} }

func (h MinNesting) ValueExpr(e expr.Expr) Order {
	return Order{expr.FoldExpr(e, func(children []int, t token.Token) int {
		if t.Kind == token.Var && t.Name == h.Var {
			return 1
		}
		min := 0
		for _, c := range children {
			if c > 0 && (min == 0 || c < min) {
				min = c
			}
		}
		if min > 0 {
			return min + 1
		}
		return min
	})}
}

func (h MinNesting) ValueEqtn(e eqtn.Eqtn) Order { return rankEqtn(h, e) }

// NoOccurrences ranks by the count of occurrences of a target variable.
type NoOccurrences struct{ Var string }

// NewNoOccurrences builds a NoOccurrences heuristic targeting var.
func NewNoOccurrences(v string) NoOccurrences { return NoOccurrences{Var: v} }

func (h NoOccurrences) ValueExpr(e expr.Expr) Order {
	n := 0
	for i := 0; i < e.Len(); i++ {
		t := e.At(i)
		if t.Kind == token.Var && t.Name == h.Var {
			n++
		}
	}
	return Order{n}
}

func (h NoOccurrences) ValueEqtn(e eqtn.Eqtn) Order { return rankEqtn(h, e) }

// Length ranks by overall token count. It ignores the target variable.
type Length struct{}

// NewLength builds a Length heuristic.
func NewLength() Length { return Length{} }

func (Length) ValueExpr(e expr.Expr) Order { return Order{e.Len()} }

func (h Length) ValueEqtn(e eqtn.Eqtn) Order { return rankEqtn(h, e) }

// Tuple composes heuristics lexicographically: the i-th heuristic's
// score only breaks ties left unresolved by heuristics before it.
type Tuple []EqtnHeuristic

func (t Tuple) ValueExpr(e expr.Expr) Order {
	var out Order
	for _, h := range t {
		out = append(out, h.ValueExpr(e)...)
	}
	return out
}

func (t Tuple) ValueEqtn(e eqtn.Eqtn) Order {
	var out Order
	for _, h := range t {
		out = append(out, h.ValueEqtn(e)...)
	}
	return out
}

// Default builds the solver's default heuristic for target variable v:
// (MaxNesting, NoOccurrences, Length), in that priority order.
func Default(v string) EqtnHeuristic {
	return Tuple{NewMaxNesting(v), NewNoOccurrences(v), NewLength()}
}
