package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishaanverma/symcore/pkg/expr"
)

func TestBuilderArithmetic(t *testing.T) {
	e := Num(2).Add(Num(3)).Mul(Num(4)).Build()
	want, err := expr.Parse("(2 + 3) * 4")
	assert.NoError(t, err)
	assert.True(t, e.Equal(want))
}

func TestBuilderUnary(t *testing.T) {
	e := Num(5).Neg().Fact().Build()
	want, err := expr.Parse("(-5)!")
	assert.NoError(t, err)
	assert.True(t, e.Equal(want))
}

func TestBuilderVar(t *testing.T) {
	e := Var("x").Pow(Num(2)).Build()
	want, err := expr.Parse("x^2")
	assert.NoError(t, err)
	assert.True(t, e.Equal(want))
}

func TestBuilderCall(t *testing.T) {
	e := Call("atan2", Num(1), Num(1)).Build()
	want, err := expr.Parse("atan2(1, 1)")
	assert.NoError(t, err)
	assert.True(t, e.Equal(want))
}

func TestBuilderCallZeroArgs(t *testing.T) {
	e := Call("pi").Build()
	assert.Equal(t, 1, e.Len())
	assert.Equal(t, "pi/0", e.At(0).String())
}

func TestBuilderIsImmutable(t *testing.T) {
	base := Num(1)
	a := base.Add(Num(2))
	b := base.Add(Num(3))

	assert.Equal(t, 1, base.Build().Len())
	assert.False(t, a.Build().Equal(b.Build()))
}
