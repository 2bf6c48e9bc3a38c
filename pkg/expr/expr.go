// Package expr implements the postfix expression value (spec §3, §4.D)
// together with the structural pattern-matching engine built on top of
// it (spec §4.G): extraction with variable binding, replacement, and
// top-down substitution.
package expr

import (
	"strings"

	"github.com/ishaanverma/symcore/pkg/lexer"
	"github.com/ishaanverma/symcore/pkg/shuntingyard"
	"github.com/ishaanverma/symcore/pkg/token"
)

// Expr is an ordered sequence of Tokens in postfix (RPN) order. No
// LParen, RParen, or Comma token remains; every Func carries a resolved
// arity. Expr values are treated as immutable after construction —
// methods that "modify" an Expr return a new one.
type Expr struct {
	toks []token.Token
}

// New wraps an already-postfix token slice. Callers that build tokens
// directly (e.g. pkg/builder) are responsible for the postfix
// invariant; Parse is the usual entry point from source text.
func New(toks []token.Token) Expr {
	return Expr{toks: toks}
}

// Parse tokenizes and converts src to postfix form.
func Parse(src string) (Expr, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return Expr{}, err
	}
	rpn, err := shuntingyard.ToRPN(toks)
	if err != nil {
		return Expr{}, err
	}
	return Expr{toks: rpn}, nil
}

// Tokens returns the underlying postfix token slice. Callers must not
// mutate the returned slice.
func (e Expr) Tokens() []token.Token { return e.toks }

// Len returns the token count.
func (e Expr) Len() int { return len(e.toks) }

// At returns the token at postfix position i.
func (e Expr) At(i int) token.Token { return e.toks[i] }

// Equal reports structural equality: same token sequence.
func (e Expr) Equal(o Expr) bool {
	if len(e.toks) != len(o.toks) {
		return false
	}
	for i := range e.toks {
		if !e.toks[i].Equal(o.toks[i]) {
			return false
		}
	}
	return true
}

// Slice returns the subexpression occupying postfix positions [from, to]
// inclusive, as a standalone Expr. The caller is responsible for passing
// a range that is itself a complete, well-formed subexpression (as
// produced by StartPointers).
func (e Expr) Slice(from, to int) Expr {
	cp := make([]token.Token, to-from+1)
	copy(cp, e.toks[from:to+1])
	return Expr{toks: cp}
}

// String renders a debug form (postfix, space separated).
func (e Expr) String() string {
	var b strings.Builder
	for i, t := range e.toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// StartPointers maps each postfix position i to the index where the
// subexpression rooted at i begins. It is computed left-to-right: at
// each token, walk backwards over the required number of child
// subexpressions using the partially-built table itself.
//
//	start_pointers({3, x, +, z, *}) == {0, 1, 0, 3, 0}
func (e Expr) StartPointers() []int {
	ptrs := make([]int, len(e.toks))
	for i, t := range e.toks {
		j := i
		for n := t.Arguments(); n > 0; n-- {
			j = ptrs[j-1]
		}
		ptrs[i] = j
	}
	return ptrs
}

// saturatingDec returns x-1, clamped at 0 — the same "max(x,1)-1" trick
// the original source uses to walk start-pointer chains without
// underflowing an unsigned index.
func saturatingDec(x int) int {
	if x < 1 {
		return 0
	}
	return x - 1
}

// ChildrenAt enumerates the children of the token at position i, from
// last child to first, given self's precomputed start-pointer table.
// Children are identified by the postfix position of their own root
// token.
func (e Expr) ChildrenAt(ptrs []int, i int) []int {
	n := e.toks[i].Arguments()
	children := make([]int, 0, n)
	j := saturatingDec(i)
	for k := 0; k < n; k++ {
		children = append(children, j)
		j = saturatingDec(ptrs[j])
	}
	return children
}

// FoldExpr folds an expression bottom-up: f is applied to each token
// along with the already-folded values of its children (in left-to-right
// order), and the final accumulated value is returned. It is a
// standalone generic function, not a method, because Go methods cannot
// carry their own type parameters.
func FoldExpr[T any](e Expr, f func(children []T, t token.Token) T) T {
	var vals []T
	for _, t := range e.toks {
		n := t.Arguments()
		children := append([]T(nil), vals[len(vals)-n:]...)
		vals = vals[:len(vals)-n]
		vals = append(vals, f(children, t))
	}
	return vals[len(vals)-1]
}
