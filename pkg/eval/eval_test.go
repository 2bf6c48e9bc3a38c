package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishaanverma/symcore/pkg/context"
	"github.com/ishaanverma/symcore/pkg/expr"
)

func evalStr(t *testing.T, src string) (float64, error) {
	t.Helper()
	e, err := expr.Parse(src)
	assert.NoError(t, err)
	return WithContext(e, context.Builtin())
}

func TestEvalArithmeticPrecedence(t *testing.T) {
	v, err := evalStr(t, "-2^(4 - 3) * (3 + 4)")
	assert.NoError(t, err)
	assert.Equal(t, -14.0, v)
}

func TestEvalBuiltinConstant(t *testing.T) {
	v, err := evalStr(t, "pi")
	assert.NoError(t, err)
	assert.Equal(t, math.Pi, v)
}

func TestEvalBuiltinFunction(t *testing.T) {
	v, err := evalStr(t, "sqrt(16)")
	assert.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestEvalFactorial(t *testing.T) {
	v, err := evalStr(t, "5!")
	assert.NoError(t, err)
	assert.Equal(t, 120.0, v)
}

func TestEvalFactorialRatio(t *testing.T) {
	v, err := evalStr(t, "150!/148!")
	assert.NoError(t, err)
	assert.Equal(t, 22350.0, v)
}

func TestEvalFactorialOverflowSaturates(t *testing.T) {
	v, err := evalStr(t, "171!")
	assert.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

func TestEvalFactorialOfNonIntegerErrors(t *testing.T) {
	_, err := evalStr(t, "2.5!")
	eerr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, EvalError, eerr.Kind)
}

func TestEvalFactorialOfNegativeErrors(t *testing.T) {
	_, err := factorial(-1)
	assert.Error(t, err)
}

func TestEvalUnknownVariable(t *testing.T) {
	_, err := evalStr(t, "x + 1")
	eerr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, UnknownVariable, eerr.Kind)
	assert.Equal(t, "x", eerr.Name)
}

func TestEvalUnknownFunction(t *testing.T) {
	_, err := evalStr(t, "frobnicate(1)")
	eerr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, Function, eerr.Kind)
	assert.Equal(t, "frobnicate", eerr.Name)
}

func TestEvalWithVariableContext(t *testing.T) {
	e, err := expr.Parse("x + y")
	assert.NoError(t, err)
	v, err := WithContext(e, context.Chained(context.VarMap{"x": 2, "y": 3}, context.Builtin()))
	assert.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestCheckContextDetectsMissingVar(t *testing.T) {
	e, err := expr.Parse("x + 1")
	assert.NoError(t, err)
	err = CheckContext(e, context.Builtin())
	assert.Error(t, err)
}

func TestCheckContextAcceptsResolvableExpr(t *testing.T) {
	e, err := expr.Parse("sqrt(x) + pi")
	assert.NoError(t, err)
	err = CheckContext(e, context.Chain{First: context.Var("x", 0), Second: context.Builtin()})
	assert.NoError(t, err)
}

func TestBind1(t *testing.T) {
	e, err := expr.Parse("x^2")
	assert.NoError(t, err)
	f, err := Bind1(e, context.Builtin(), "x")
	assert.NoError(t, err)
	assert.Equal(t, 9.0, f(3))
	assert.Equal(t, 16.0, f(4))
}

func TestBind2(t *testing.T) {
	e, err := expr.Parse("x * y + 1")
	assert.NoError(t, err)
	f, err := Bind2(e, context.Builtin(), "x", "y")
	assert.NoError(t, err)
	assert.Equal(t, 7.0, f(2, 3))
}

func TestBind3(t *testing.T) {
	e, err := expr.Parse("mul_add(x, y, z)")
	assert.NoError(t, err)
	f, err := Bind3(e, context.Builtin(), "x", "y", "z")
	assert.NoError(t, err)
	assert.Equal(t, 10.0, f(2, 3, 4))
}

func TestBind1RejectsUnresolvedVariable(t *testing.T) {
	e, err := expr.Parse("x + y")
	assert.NoError(t, err)
	_, err = Bind1(e, context.Builtin(), "x")
	assert.Error(t, err)
}
