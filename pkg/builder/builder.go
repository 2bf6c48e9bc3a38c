// Package builder provides a fluent, method-chaining way to construct a
// postfix Expr directly from Go code, standing in for the arithmetic
// operator-overload surface the source expression language doesn't
// need a parser for (spec §1, §9 design notes).
package builder

import (
	"github.com/ishaanverma/symcore/pkg/expr"
	"github.com/ishaanverma/symcore/pkg/token"
)

// Builder accumulates a postfix token stream. Every method returns a
// new Builder; the receiver is left untouched, so partially-built
// expressions can be reused as the base of several larger ones.
type Builder struct {
	toks []token.Token
}

// Num starts a Builder holding a single numeric literal.
func Num(f float64) Builder {
	return Builder{toks: []token.Token{token.NewNumber(f)}}
}

// Var starts a Builder holding a single variable reference.
func Var(name string) Builder {
	return Builder{toks: []token.Token{token.NewVar(name)}}
}

// Build finalizes the accumulated tokens into an Expr.
func (b Builder) Build() expr.Expr {
	cp := make([]token.Token, len(b.toks))
	copy(cp, b.toks)
	return expr.New(cp)
}

func (b Builder) binary(op token.Operation, rhs Builder) Builder {
	out := make([]token.Token, 0, len(b.toks)+len(rhs.toks)+1)
	out = append(out, b.toks...)
	out = append(out, rhs.toks...)
	out = append(out, token.NewBinary(op))
	return Builder{toks: out}
}

func (b Builder) unary(op token.Operation) Builder {
	out := make([]token.Token, 0, len(b.toks)+1)
	out = append(out, b.toks...)
	out = append(out, token.NewUnary(op))
	return Builder{toks: out}
}

// Add, Sub, Mul, Div, Rem, and Pow append the corresponding binary
// operator after rhs's tokens, consuming both operands.
func (b Builder) Add(rhs Builder) Builder { return b.binary(token.Plus, rhs) }
func (b Builder) Sub(rhs Builder) Builder { return b.binary(token.Minus, rhs) }
func (b Builder) Mul(rhs Builder) Builder { return b.binary(token.Times, rhs) }
func (b Builder) Div(rhs Builder) Builder { return b.binary(token.Div, rhs) }
func (b Builder) Rem(rhs Builder) Builder { return b.binary(token.Rem, rhs) }
func (b Builder) Pow(rhs Builder) Builder { return b.binary(token.Pow, rhs) }

// Neg, Pos, and Fact append the corresponding unary operator.
func (b Builder) Neg() Builder  { return b.unary(token.Minus) }
func (b Builder) Pos() Builder  { return b.unary(token.Plus) }
func (b Builder) Fact() Builder { return b.unary(token.Fact) }

// Call builds a function application of name over the given arguments,
// evaluated left to right.
func Call(name string, args ...Builder) Builder {
	out := make([]token.Token, 0)
	for _, a := range args {
		out = append(out, a.toks...)
	}
	out = append(out, token.NewFunc(name, len(args)))
	return Builder{toks: out}
}
