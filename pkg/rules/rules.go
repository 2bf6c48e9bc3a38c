// Package rules implements the bidirectional rewrite-rule DSL (spec
// §4.H): a rule is an ordered pair of equations; a rule set is parsed
// from a textual DSL, one rule per non-blank, non-comment line, and is
// always closed under flipping each rule's two sides.
package rules

import (
	"strings"

	"github.com/ishaanverma/symcore/pkg/eqtn"
	"github.com/ishaanverma/symcore/pkg/expr"
	"github.com/ishaanverma/symcore/pkg/token"
)

// emptyVarName is the reserved pattern-variable name used to lift a bare
// expression-to-expression rule into an Eqtn. It is reserved because the
// tokenizer's identifier grammar never produces an empty Var name, so it
// can never collide with a user-written identifier.
const emptyVarName = ""

// Rule is one direction of an iff. equivalence between two equations.
// A rule parsed from a plain expression-to-expression line (no "=" on
// either side) has both sides wrapped as `expr = <reserved var>`.
type Rule struct {
	LHS, RHS eqtn.Eqtn
}

func lhsEqtn(e expr.Expr) eqtn.Eqtn {
	return eqtn.New(e, expr.New([]token.Token{token.NewVar(emptyVarName)}))
}

// ParseRule parses a single DSL line of the form "lhs <=> rhs" (the
// legacy arrow spelling "<->" is also accepted). Both sides are first
// attempted as equations; on failure of either, both are reparsed as
// plain expressions and lifted via lhsEqtn.
func ParseRule(s string) (Rule, error) {
	lhsStr, rhsStr, ok := splitArrow(s)
	if !ok {
		return Rule{}, token.NewMissingArgument()
	}

	if lhs, err := eqtn.Parse(lhsStr); err == nil {
		if rhs, err := eqtn.Parse(rhsStr); err == nil {
			return Rule{LHS: lhs, RHS: rhs}, nil
		}
	}

	lhs, err := expr.Parse(lhsStr)
	if err != nil {
		return Rule{}, err
	}
	rhs, err := expr.Parse(rhsStr)
	if err != nil {
		return Rule{}, err
	}
	return Rule{LHS: lhsEqtn(lhs), RHS: lhsEqtn(rhs)}, nil
}

func splitArrow(s string) (lhs, rhs string, ok bool) {
	if l, r, found := strings.Cut(s, "<=>"); found {
		return l, r, true
	}
	if l, r, found := strings.Cut(s, "<->"); found {
		return l, r, true
	}
	return "", "", false
}

// Set is a closed collection of rules: for every rule (a, b) it
// contains, the flipped rule (b, a) is present too.
type Set struct {
	Rules []Rule
}

// ParseSet parses a DSL document: one rule per line, blank lines and
// "//"-prefixed comment lines ignored, then closes the result under
// flipping.
func ParseSet(doc string) (Set, error) {
	var rs []Rule
	for _, line := range strings.Split(doc, "\n") {
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		r, err := ParseRule(line)
		if err != nil {
			return Set{}, err
		}
		rs = append(rs, r)
	}
	return Set{Rules: rs}.symmetricClose(), nil
}

func (s Set) symmetricClose() Set {
	out := make([]Rule, 0, len(s.Rules)*2)
	out = append(out, s.Rules...)
	for _, r := range s.Rules {
		out = append(out, Rule{LHS: r.RHS, RHS: r.LHS})
	}
	return Set{Rules: out}
}

// Union concatenates rule sets, e.g. combining the default categorical
// bundles.
func Union(sets ...Set) Set {
	var out []Rule
	for _, s := range sets {
		out = append(out, s.Rules...)
	}
	return Set{Rules: out}
}
