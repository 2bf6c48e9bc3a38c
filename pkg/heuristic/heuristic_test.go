package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishaanverma/symcore/pkg/eqtn"
	"github.com/ishaanverma/symcore/pkg/expr"
)

func mustExpr(t *testing.T, src string) expr.Expr {
	t.Helper()
	e, err := expr.Parse(src)
	assert.NoError(t, err)
	return e
}

func TestLess(t *testing.T) {
	assert.True(t, Less(Order{1, 2}, Order{1, 3}))
	assert.False(t, Less(Order{1, 3}, Order{1, 2}))
	assert.True(t, Less(Order{1}, Order{1, 0}))
	assert.False(t, Less(Order{1, 2}, Order{1, 2}))
}

func TestMaxNestingAbsentVariable(t *testing.T) {
	h := NewMaxNesting("x")
	assert.Equal(t, Order{0}, h.ValueExpr(mustExpr(t, "1 + 2")))
}

func TestMaxNestingDepth(t *testing.T) {
	h := NewMaxNesting("x")
	assert.Equal(t, Order{3}, h.ValueExpr(mustExpr(t, "x + (x + x)")))
}

func TestNoOccurrences(t *testing.T) {
	h := NewNoOccurrences("x")
	assert.Equal(t, Order{3}, h.ValueExpr(mustExpr(t, "x + (x + x)")))
	assert.Equal(t, Order{0}, h.ValueExpr(mustExpr(t, "1 + 2")))
}

func TestLength(t *testing.T) {
	h := NewLength()
	assert.Equal(t, Order{3}, h.ValueExpr(mustExpr(t, "1 + 2")))
}

func TestValueEqtnPairsLHSThenRHS(t *testing.T) {
	h := NewNoOccurrences("x")
	eq, err := eqtn.Parse("x + x = x")
	assert.NoError(t, err)
	assert.Equal(t, Order{2, 1}, h.ValueEqtn(eq))
}

func TestTupleConcatenatesInPriorityOrder(t *testing.T) {
	tup := Tuple{NewNoOccurrences("x"), NewLength()}
	got := tup.ValueExpr(mustExpr(t, "x + 1"))
	assert.Equal(t, Order{1, 3}, got)
}

func TestDefaultHeuristicPriority(t *testing.T) {
	h := Default("x")
	a := h.ValueExpr(mustExpr(t, "x"))
	b := h.ValueExpr(mustExpr(t, "x + x"))
	// MaxNesting decides first: "x" scores 1 and "x + x" scores 2, so
	// the bare variable ranks lower (better).
	assert.True(t, Less(a, b))
}
