package shuntingyard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishaanverma/symcore/pkg/lexer"
	"github.com/ishaanverma/symcore/pkg/token"
)

func toRPN(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	assert.NoError(t, err)
	rpn, err := ToRPN(toks)
	assert.NoError(t, err)
	return rpn
}

func TestToRPNSimple(t *testing.T) {
	rpn := toRPN(t, "2 + 3 * 4")
	assert.Equal(t, []token.Token{
		token.NewNumber(2), token.NewNumber(3), token.NewNumber(4),
		token.NewBinary(token.Times), token.NewBinary(token.Plus),
	}, rpn)
}

func TestToRPNPrecedenceAndAssociativity(t *testing.T) {
	// unary - (precedence 5) binds tighter than ^ (precedence 4), so
	// -2^2 == (-2)^2
	rpn := toRPN(t, "-2^2")
	assert.Equal(t, []token.Token{
		token.NewNumber(2), token.NewUnary(token.Minus),
		token.NewNumber(2), token.NewBinary(token.Pow),
	}, rpn)
}

func TestToRPNFunctionArity(t *testing.T) {
	rpn := toRPN(t, "f(x, y, z)")
	assert.Equal(t, []token.Token{
		token.NewVar("x"), token.NewVar("y"), token.NewVar("z"),
		token.NewFunc("f", 3),
	}, rpn)
}

func TestToRPNEmptyCall(t *testing.T) {
	// The tokenizer itself never emits a bare Func immediately followed
	// by RParen (its state table requires an expression token after a
	// Func marker), so a 0-arity call is only reachable by constructing
	// the infix stream directly, as a caller assembling infix tokens
	// programmatically might.
	in := []token.Token{token.NewFunc("pi", token.UnresolvedArity), token.RParenToken}
	rpn, err := ToRPN(in)
	assert.NoError(t, err)
	assert.Equal(t, []token.Token{token.NewFunc("pi", 0)}, rpn)
}

func TestToRPNSingleArg(t *testing.T) {
	rpn := toRPN(t, "sin(x)")
	assert.Equal(t, []token.Token{token.NewVar("x"), token.NewFunc("sin", 1)}, rpn)
}

func TestEmptyGroupIsRejectedByTokenizer(t *testing.T) {
	toks, err := lexer.Tokenize("2 + ()")
	assert.Error(t, err) // the tokenizer itself rejects "()" first
	_ = toks
}

func TestToRPNMismatchedParen(t *testing.T) {
	_, err := ToRPN([]token.Token{token.LParenToken, token.NewNumber(1)})
	assert.Equal(t, &RPNError{Kind: MismatchedParen}, err)
}

func TestToRPNMismatchedComma(t *testing.T) {
	_, err := ToRPN([]token.Token{token.NewNumber(1), token.CommaToken, token.NewNumber(2)})
	assert.Equal(t, &RPNError{Kind: MismatchedComma}, err)
}
