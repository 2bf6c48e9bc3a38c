package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenEqual(t *testing.T) {
	assert.True(t, NewNumber(3).Equal(NewNumber(3)))
	assert.False(t, NewNumber(3).Equal(NewNumber(4)))
	assert.True(t, NewVar("x").Equal(NewVar("x")))
	assert.False(t, NewVar("x").Equal(NewVar("y")))
	assert.True(t, NewBinary(Plus).Equal(NewBinary(Plus)))
	assert.False(t, NewBinary(Plus).Equal(NewBinary(Minus)))
	assert.True(t, NewFunc("sin", 1).Equal(NewFunc("sin", 1)))
	assert.False(t, NewFunc("sin", 1).Equal(NewFunc("sin", 2)))
	assert.False(t, NewFunc("sin", 1).Equal(NewFunc("cos", 1)))
	assert.True(t, LParenToken.Equal(LParenToken))
	assert.False(t, NewNumber(1).Equal(NewVar("x")))
}

func TestTokenArguments(t *testing.T) {
	assert.Equal(t, 0, NewNumber(1).Arguments())
	assert.Equal(t, 0, NewVar("x").Arguments())
	assert.Equal(t, 1, NewUnary(Minus).Arguments())
	assert.Equal(t, 2, NewBinary(Plus).Arguments())
	assert.Equal(t, 3, NewFunc("mul_add", 3).Arguments())
}

func TestTokenArgumentsPanicsOnUnresolvedFunc(t *testing.T) {
	assert.Panics(t, func() {
		NewFunc("f", UnresolvedArity).Arguments()
	})
}

func TestTokenArgumentsPanicsOnDelimiter(t *testing.T) {
	assert.Panics(t, func() { LParenToken.Arguments() })
	assert.Panics(t, func() { RParenToken.Arguments() })
	assert.Panics(t, func() { CommaToken.Arguments() })
}

func TestParseErrorMessages(t *testing.T) {
	assert.Equal(t, "unexpected token at byte 3", NewUnexpectedToken(3).Error())
	assert.Equal(t, "missing 1 right parenthesis", NewMissingRParen(1).Error())
	assert.Equal(t, "missing 2 right parentheses", NewMissingRParen(2).Error())
	assert.Equal(t, "missing argument at the end of expression", NewMissingArgument().Error())
}
