// Package solver implements the depth-limited equation solver (spec
// §4.J): given an equation, a rule set, and a heuristic keyed to a
// target variable, search for a rewriting that isolates the variable
// on one side.
package solver

import (
	"fmt"
	"sort"

	"github.com/ishaanverma/symcore/pkg/eqtn"
	"github.com/ishaanverma/symcore/pkg/expr"
	"github.com/ishaanverma/symcore/pkg/heuristic"
	"github.com/ishaanverma/symcore/pkg/rules"
	"github.com/ishaanverma/symcore/pkg/token"
)

// DefaultDepth is the depth bound used when a Solver is built via New
// without an explicit WithDepth call.
const DefaultDepth = 10

// Solver isolates a single variable on one side of an equation via a
// depth-limited depth-first search, applying a rule set at each step
// and ordering the frontier by a configurable heuristic.
type Solver struct {
	Var       string
	Rules     rules.Set
	Heuristic heuristic.EqtnHeuristic
	Depth     int
}

// New builds a Solver targeting var, using the default
// (MaxNesting, NoOccurrences, Length) heuristic and DefaultDepth.
func New(v string, rs rules.Set) *Solver {
	return &Solver{Var: v, Rules: rs, Heuristic: heuristic.Default(v), Depth: DefaultDepth}
}

// WithDepth overrides the search depth bound.
func (s *Solver) WithDepth(d int) *Solver {
	s.Depth = d
	return s
}

// WithHeuristic overrides the frontier-ordering heuristic.
func (s *Solver) WithHeuristic(h heuristic.EqtnHeuristic) *Solver {
	s.Heuristic = h
	return s
}

// Solve searches for a rewriting of start that isolates Var on one
// side. It fails with a descriptive error if no such rewriting is
// found within the depth bound.
func (s *Solver) Solve(start eqtn.Eqtn) (eqtn.Eqtn, error) {
	visited := make(map[string]bool)
	if result, ok := s.dfs(start, 0, visited); ok {
		return result, nil
	}
	return eqtn.Eqtn{}, fmt.Errorf("solver: no solution isolating %q found within depth %d", s.Var, s.Depth)
}

func (s *Solver) dfs(current eqtn.Eqtn, depth int, visited map[string]bool) (eqtn.Eqtn, bool) {
	if isolates(current, s.Var) {
		return current, true
	}

	key := current.String()
	if visited[key] {
		return eqtn.Eqtn{}, false
	}
	visited[key] = true

	if depth >= s.Depth {
		return eqtn.Eqtn{}, false
	}

	candidates := s.expand(current)
	sort.SliceStable(candidates, func(i, j int) bool {
		return heuristic.Less(s.Heuristic.ValueEqtn(candidates[i]), s.Heuristic.ValueEqtn(candidates[j]))
	})

	for _, c := range candidates {
		if visited[c.String()] {
			continue
		}
		if result, ok := s.dfs(c, depth+1, visited); ok {
			return result, true
		}
	}
	return eqtn.Eqtn{}, false
}

// expand enumerates every equation reachable from current by one rule
// application: a top-down substitution into one side for an
// expression-shaped rule, or a whole-equation match-and-rewrite for an
// equation-shaped rule. A rule that does not apply (NotMatching or
// Inconsistent) is simply skipped — it is not an error condition here.
func (s *Solver) expand(current eqtn.Eqtn) []eqtn.Eqtn {
	var out []eqtn.Eqtn
	for _, r := range s.Rules.Rules {
		if isExprRule(r.LHS) && isExprRule(r.RHS) {
			pattern, replacement := r.LHS.LHS, r.RHS.LHS

			if newLHS, err := current.LHS.Substitute(pattern, replacement); err == nil && !newLHS.Equal(current.LHS) {
				out = append(out, eqtn.New(newLHS, current.RHS))
			}
			if newRHS, err := current.RHS.Substitute(pattern, replacement); err == nil && !newRHS.Equal(current.RHS) {
				out = append(out, eqtn.New(current.LHS, newRHS))
			}
			continue
		}

		subs, err := current.LHS.ExtractInto(expr.NewSubstitutions(), r.LHS.LHS)
		if err != nil {
			continue
		}
		subs, err = current.RHS.ExtractInto(subs, r.LHS.RHS)
		if err != nil {
			continue
		}
		cand := eqtn.New(expr.ExpandTemplate(subs, r.RHS.LHS), expr.ExpandTemplate(subs, r.RHS.RHS))
		if !cand.Equal(current) {
			out = append(out, cand)
		}
	}
	return out
}

// isExprRule reports whether eq is the synthetic lift of a bare
// expression (its RHS is the reserved empty-name Var sentinel rather
// than a genuine equation side).
func isExprRule(eq eqtn.Eqtn) bool {
	return eq.RHS.Len() == 1 && eq.RHS.At(0).Kind == token.Var && eq.RHS.At(0).Name == ""
}

// isolates reports whether eq has the goal shape Var(v) = rhs or
// lhs = Var(v), with v not free in the other side.
func isolates(eq eqtn.Eqtn, v string) bool {
	if isSoleVar(eq.LHS, v) && !occursIn(eq.RHS, v) {
		return true
	}
	if isSoleVar(eq.RHS, v) && !occursIn(eq.LHS, v) {
		return true
	}
	return false
}

func isSoleVar(e expr.Expr, v string) bool {
	return e.Len() == 1 && e.At(0).Kind == token.Var && e.At(0).Name == v
}

func occursIn(e expr.Expr, v string) bool {
	for i := 0; i < e.Len(); i++ {
		if t := e.At(i); t.Kind == token.Var && t.Name == v {
			return true
		}
	}
	return false
}
