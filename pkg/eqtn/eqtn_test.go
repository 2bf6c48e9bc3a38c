package eqtn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishaanverma/symcore/pkg/context"
)

func TestParse(t *testing.T) {
	eq, err := Parse("x + 1 = 2 * y")
	assert.NoError(t, err)
	assert.Equal(t, "x 1 + = 2 y *", eq.String())
}

func TestParseMissingEquals(t *testing.T) {
	_, err := Parse("x + 1")
	assert.Error(t, err)
}

func TestParseDoubleEquals(t *testing.T) {
	_, err := Parse("x = y = z")
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	a, err := Parse("x = 1")
	assert.NoError(t, err)
	b, err := Parse("x = 1")
	assert.NoError(t, err)
	c, err := Parse("x = 2")
	assert.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestWithContext(t *testing.T) {
	eq, err := Parse("2 + 2 = 4")
	assert.NoError(t, err)
	ok, err := eq.WithContext(context.Builtin())
	assert.NoError(t, err)
	assert.True(t, ok)

	eq, err = Parse("2 + 2 = 5")
	assert.NoError(t, err)
	ok, err = eq.WithContext(context.Builtin())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckContext(t *testing.T) {
	eq, err := Parse("x = y")
	assert.NoError(t, err)

	err = eq.CheckContext(context.Builtin())
	assert.Error(t, err)

	err = eq.CheckContext(context.Chained(context.VarMap{"x": 1, "y": 2}, context.Builtin()))
	assert.NoError(t, err)
}
