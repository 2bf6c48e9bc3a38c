package expr

import (
	"fmt"

	"github.com/ishaanverma/symcore/pkg/token"
)

// Substitutions maps pattern-variable names to the subexpressions they
// were bound to during a successful Extract.
type Substitutions struct {
	m map[string]Expr
}

// NewSubstitutions returns an empty binding set.
func NewSubstitutions() Substitutions {
	return Substitutions{m: make(map[string]Expr)}
}

// Get looks up a captured binding by name.
func (s Substitutions) Get(name string) (Expr, bool) {
	e, ok := s.m[name]
	return e, ok
}

// Len reports the number of distinct bound names.
func (s Substitutions) Len() int { return len(s.m) }

func (s Substitutions) set(name string, e Expr) { s.m[name] = e }

// Equal reports whether two substitution sets bind the same names to
// structurally equal expressions.
func (s Substitutions) Equal(o Substitutions) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for k, v := range s.m {
		ov, ok := o.m[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// SubstituteErrorKind discriminates Extract/Replace/Substitute failures.
type SubstituteErrorKind int

const (
	// NotMatching means the structure of the pattern doesn't match the
	// subject — a normal, expected outcome of an attempted rule match.
	NotMatching SubstituteErrorKind = iota
	// Inconsistent means a pattern variable would bind to two different
	// subexpressions.
	Inconsistent
)

// SubstituteError is returned by Extract, Replace, and Substitute.
type SubstituteError struct {
	Kind          SubstituteErrorKind
	Name          string
	First, Second Expr
}

func (e *SubstituteError) Error() string {
	switch e.Kind {
	case NotMatching:
		return "pattern does not match"
	case Inconsistent:
		return fmt.Sprintf("inconsistent binding for %q: %q vs %q", e.Name, e.First, e.Second)
	default:
		return "substitute error"
	}
}

// Extract matches pattern against self, walking both postfix programs
// from the back using precomputed start-pointer arrays on each side. A
// Var token in pattern captures the corresponding subexpression of self;
// any other token must be structurally equal on both sides, and its
// children are queued for further matching.
func (e Expr) Extract(pattern Expr) (Substitutions, error) {
	return e.ExtractInto(NewSubstitutions(), pattern)
}

// ExtractInto is Extract seeded with a pre-existing binding set rather
// than an empty one. It is how the solver matches an equation-shaped
// rule against a whole equation: the left sides are extracted first,
// and the resulting bindings seed extraction of the right sides, so a
// pattern variable that appears on both sides of the rule is required
// to bind to the same subexpression on both sides of the subject.
func (e Expr) ExtractInto(subs Substitutions, pattern Expr) (Substitutions, error) {
	if len(e.toks) == 0 || len(pattern.toks) == 0 {
		return subs, nil
	}

	selfPtrs := e.StartPointers()
	patPtrs := pattern.StartPointers()

	type pair struct{ i, j int }
	stack := []pair{{len(e.toks) - 1, len(pattern.toks) - 1}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i, j := p.i, p.j

		pt := pattern.toks[j]
		if pt.Kind == token.Var {
			sub := e.Slice(selfPtrs[i], i)
			if prev, ok := subs.Get(pt.Name); ok {
				if !prev.Equal(sub) {
					return Substitutions{}, &SubstituteError{
						Kind: Inconsistent, Name: pt.Name, First: prev, Second: sub,
					}
				}
			} else {
				subs.set(pt.Name, sub)
			}
			continue
		}

		if e.toks[i].Equal(pt) {
			ic := e.ChildrenAt(selfPtrs, i)
			jc := pattern.ChildrenAt(patPtrs, j)
			for k := 0; k < len(ic) && k < len(jc); k++ {
				stack = append(stack, pair{ic[k], jc[k]})
			}
			continue
		}

		return Substitutions{}, &SubstituteError{Kind: NotMatching}
	}

	return subs, nil
}

// Replace attempts to match the entirety of self against term and, on
// success, rebuilds replacement by expanding every Var token that
// appears as a captured name with the captured subexpression, in place.
func (e Expr) Replace(term, replacement Expr) (Expr, error) {
	subs, err := e.Extract(term)
	if err != nil {
		return Expr{}, err
	}
	return ExpandTemplate(subs, replacement), nil
}

// ExpandTemplate rebuilds template by expanding every Var token that
// appears as a name bound in subs with the bound subexpression, in
// place; unbound Var tokens pass through unchanged. This is the second
// half of Replace, factored out so the solver can apply it directly
// once it has unified bindings across both sides of an equation.
func ExpandTemplate(subs Substitutions, template Expr) Expr {
	out := make([]token.Token, 0, len(template.toks))
	for _, t := range template.toks {
		if t.Kind == token.Var {
			if sub, ok := subs.Get(t.Name); ok {
				out = append(out, sub.toks...)
				continue
			}
		}
		out = append(out, t)
	}
	return New(out)
}

// Substitute rewrites self top-down: the root position is pending;
// positions are processed right-to-left so splices never invalidate
// earlier indices; at each pending position, Replace is attempted on
// the subexpression rooted there. On success the result is spliced in
// place and the new tokens are not re-examined (preventing
// non-terminating expansion for a rule like x -> x+x). On failure, the
// immediate children are marked pending instead.
func (e Expr) Substitute(term, replacement Expr) (Expr, error) {
	n := len(e.toks)
	if n == 0 {
		return e, nil
	}

	selfPtrs := e.StartPointers()
	res := append([]token.Token(nil), e.toks...)
	toSub := make([]bool, n)
	toSub[n-1] = true

	for j := n - 1; j >= 0; j-- {
		if !toSub[j] {
			continue
		}
		i := selfPtrs[j]
		subExpr := e.Slice(i, j)

		if replaced, err := subExpr.Replace(term, replacement); err == nil {
			res = spliceTokens(res, i, j, replaced.toks)
			continue
		}
		for _, k := range e.ChildrenAt(selfPtrs, j) {
			toSub[k] = true
		}
	}

	return New(res), nil
}

// spliceTokens replaces res[i:j+1] with repl, returning a new slice.
// Because Substitute processes positions right-to-left, i and j always
// index into the still-unshifted prefix of res at the time of the call.
func spliceTokens(res []token.Token, i, j int, repl []token.Token) []token.Token {
	out := make([]token.Token, 0, len(res)-(j-i+1)+len(repl))
	out = append(out, res[:i]...)
	out = append(out, repl...)
	out = append(out, res[j+1:]...)
	return out
}
