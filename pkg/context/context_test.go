package context

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextVars(t *testing.T) {
	c := Empty()
	_, ok := c.GetVar("x")
	assert.False(t, ok)

	c.SetVar("x", 3.5)
	v, ok := c.GetVar("x")
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)
}

func TestContextUnknownFunction(t *testing.T) {
	c := Empty()
	_, err := c.EvalFunc("sqrt", []float64{4})
	ferr, ok := err.(*FuncEvalError)
	assert.True(t, ok)
	assert.Equal(t, UnknownFunction, ferr.Kind)
}

func TestBuiltinConstants(t *testing.T) {
	c := Builtin()
	pi, ok := c.GetVar("pi")
	assert.True(t, ok)
	assert.Equal(t, math.Pi, pi)

	e, ok := c.GetVar("e")
	assert.True(t, ok)
	assert.Equal(t, math.E, e)
}

func TestBuiltinFunc1(t *testing.T) {
	v, err := Builtin().EvalFunc("sqrt", []float64{9})
	assert.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestBuiltinFunc1WrongArity(t *testing.T) {
	_, err := Builtin().EvalFunc("sqrt", []float64{9, 1})
	ferr, ok := err.(*FuncEvalError)
	assert.True(t, ok)
	assert.Equal(t, NumberArgs, ferr.Kind)
	assert.Equal(t, 1, ferr.N)
}

func TestBuiltinFunc2(t *testing.T) {
	v, err := Builtin().EvalFunc("atan2", []float64{1, 1})
	assert.NoError(t, err)
	assert.InDelta(t, math.Atan2(1, 1), v, 1e-12)
}

func TestBuiltinFunc3MulAdd(t *testing.T) {
	v, err := Builtin().EvalFunc("mul_add", []float64{2, 3, 4})
	assert.NoError(t, err)
	assert.Equal(t, 10.0, v)
}

func TestBuiltinVariadicMaxMin(t *testing.T) {
	v, err := Builtin().EvalFunc("max", []float64{1, 5, 3})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = Builtin().EvalFunc("min", []float64{1, 5, 3})
	assert.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestBuiltinVariadicRequiresAtLeastOne(t *testing.T) {
	_, err := Builtin().EvalFunc("max", nil)
	ferr, ok := err.(*FuncEvalError)
	assert.True(t, ok)
	assert.Equal(t, TooFewArguments, ferr.Kind)
}

func TestArgGuardKinds(t *testing.T) {
	assert.NoError(t, Exactly(2).check(2))
	assert.Error(t, Exactly(2).check(1))

	assert.NoError(t, AtLeast(2).check(3))
	assert.Error(t, AtLeast(2).check(1))

	assert.NoError(t, AtMost(3).check(2))
	assert.Error(t, AtMost(3).check(3))

	assert.NoError(t, Range(1, 3).check(1))
	assert.NoError(t, Range(1, 3).check(2))
	assert.Error(t, Range(1, 3).check(3))

	assert.NoError(t, Unconstrained().check(0))
	assert.NoError(t, Unconstrained().check(100))
}

func TestChainFallsBackOnAbsentVar(t *testing.T) {
	first := Var("x", 1)
	second := Var("y", 2)
	c := Chain{First: first, Second: second}

	v, ok := c.GetVar("y")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	_, ok = c.GetVar("z")
	assert.False(t, ok)
}

func TestChainFallsBackOnlyOnUnknownFunction(t *testing.T) {
	c := Chain{First: Builtin(), Second: Var("dummy", 0)}

	// sqrt exists on First: an arity error from First must NOT fall
	// through to Second (which has no functions at all either way, but
	// the point is First's arity error is surfaced, not swallowed).
	_, err := c.EvalFunc("sqrt", nil)
	ferr, ok := err.(*FuncEvalError)
	assert.True(t, ok)
	assert.Equal(t, NumberArgs, ferr.Kind)
}

func TestChainedComposesLeftToRight(t *testing.T) {
	p := Chained(Var("a", 1), Var("b", 2), Var("c", 3))
	for name, want := range map[string]float64{"a": 1, "b": 2, "c": 3} {
		v, ok := p.GetVar(name)
		assert.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok := p.GetVar("d")
	assert.False(t, ok)
}

func TestChainedEmpty(t *testing.T) {
	p := Chained()
	_, ok := p.GetVar("x")
	assert.False(t, ok)
}

func TestVarMap(t *testing.T) {
	m := VarMap{"x": 1, "y": 2}
	v, ok := m.GetVar("x")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, err := m.EvalFunc("f", nil)
	ferr, ok := err.(*FuncEvalError)
	assert.True(t, ok)
	assert.Equal(t, UnknownFunction, ferr.Kind)
}
