// Package lexer implements the tokenizer described in spec §4.B: a
// whitespace-skipping scanner wrapped in a two-state machine that
// disambiguates unary vs. binary operators and tracks parenthesis/
// function-call nesting via an auxiliary stack.
package lexer

import (
	"strconv"
	"strings"

	"github.com/ishaanverma/symcore/pkg/token"
)

// state is the tokenizer's current expectation.
type state int

const (
	// lExpr accepts a token that can begin an expression: Number, Func,
	// Var, Unary(+/-), LParen.
	lExpr state = iota
	// afterRExpr accepts a token that follows a completed subexpression:
	// Unary(Fact), Binary, RParen (inside grouping), Comma (inside a
	// function-argument list).
	afterRExpr
)

// frame is a paren-stack entry: a plain grouping or a function's
// argument list. The top of the stack governs whether ',' and ')' are
// currently acceptable.
type frame int

const (
	subFrame frame = iota
	funcFrame
)

// Lexer scans Go-style byte strings into a linear token stream.
type Lexer struct {
	src   string
	pos   int
	state state
	stack []frame
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: src, state: lExpr}
}

// Tokenize scans the entirety of src, returning the raw (un-resolved,
// infix-order) token stream or a *token.ParseError.
func Tokenize(src string) ([]token.Token, error) {
	lx := New(src)
	return lx.run()
}

func (lx *Lexer) run() ([]token.Token, error) {
	var out []token.Token

	for {
		lx.skipWhitespace()
		if lx.pos >= len(lx.src) {
			break
		}

		tok, err := lx.nextToken()
		if err != nil {
			return nil, err
		}

		lx.advanceState(tok)
		out = append(out, tok)
	}

	switch {
	case lx.state == lExpr:
		return nil, token.NewMissingArgument()
	case len(lx.stack) != 0:
		return nil, token.NewMissingRParen(len(lx.stack))
	default:
		return out, nil
	}
}

func (lx *Lexer) skipWhitespace() {
	for lx.pos < len(lx.src) && isSpace(lx.src[lx.pos]) {
		lx.pos++
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

// nextToken recognizes exactly one token at the current position
// according to the active state and paren-stack top.
func (lx *Lexer) nextToken() (token.Token, error) {
	top, hasTop := lx.top()

	switch {
	case lx.state == lExpr:
		return lx.lexExprToken()
	case !hasTop:
		return lx.afterRExprToken(false, false)
	case top == subFrame:
		return lx.afterRExprToken(true, false)
	default: // funcFrame
		return lx.afterRExprToken(true, true)
	}
}

func (lx *Lexer) top() (frame, bool) {
	if len(lx.stack) == 0 {
		return 0, false
	}
	return lx.stack[len(lx.stack)-1], true
}

func (lx *Lexer) lexExprToken() (token.Token, error) {
	c := lx.src[lx.pos]

	if isDigit(c) || (c == '.' && lx.pos+1 < len(lx.src) && isDigit(lx.src[lx.pos+1])) {
		return lx.scanNumber()
	}
	if isIdentStart(c) {
		return lx.scanIdentOrFunc()
	}
	if c == '+' {
		lx.pos++
		return token.NewUnary(token.Plus), nil
	}
	if c == '-' {
		lx.pos++
		return token.NewUnary(token.Minus), nil
	}
	if c == '(' {
		lx.pos++
		return token.LParenToken, nil
	}

	return token.Token{}, token.NewUnexpectedToken(lx.pos)
}

func (lx *Lexer) afterRExprToken(allowRParen, allowComma bool) (token.Token, error) {
	c := lx.src[lx.pos]

	if c == '!' {
		lx.pos++
		return token.NewUnary(token.Fact), nil
	}
	if op, ok := binaryOp(c); ok {
		lx.pos++
		return token.NewBinary(op), nil
	}
	if allowRParen && c == ')' {
		lx.pos++
		return token.RParenToken, nil
	}
	if allowComma && c == ',' {
		lx.pos++
		return token.CommaToken, nil
	}

	return token.Token{}, token.NewUnexpectedToken(lx.pos)
}

func binaryOp(c byte) (token.Operation, bool) {
	switch c {
	case '+':
		return token.Plus, true
	case '-':
		return token.Minus, true
	case '*':
		return token.Times, true
	case '/':
		return token.Div, true
	case '%':
		return token.Rem, true
	case '^':
		return token.Pow, true
	default:
		return 0, false
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

// scanNumber matches the IEEE-754 double literal grammar: digits,
// optional fractional part, optional exponent. It never consumes a
// leading '+' or '-' — those are tokenized as unary operators.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.pos
	i := lx.pos

	for i < len(lx.src) && isDigit(lx.src[i]) {
		i++
	}
	if i < len(lx.src) && lx.src[i] == '.' {
		i++
		for i < len(lx.src) && isDigit(lx.src[i]) {
			i++
		}
	}
	if i < len(lx.src) && (lx.src[i] == 'e' || lx.src[i] == 'E') {
		j := i + 1
		if j < len(lx.src) && (lx.src[j] == '+' || lx.src[j] == '-') {
			j++
		}
		if j < len(lx.src) && isDigit(lx.src[j]) {
			j++
			for j < len(lx.src) && isDigit(lx.src[j]) {
				j++
			}
			i = j
		}
	}

	lit := lx.src[start:i]
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return token.Token{}, token.NewUnexpectedToken(start)
	}
	lx.pos = i
	return token.NewNumber(f), nil
}

// scanIdentOrFunc matches an identifier, then decides between Var and
// Func by peeking past optional whitespace for a following '('.
func (lx *Lexer) scanIdentOrFunc() (token.Token, error) {
	start := lx.pos
	i := lx.pos + 1
	for i < len(lx.src) && isIdentCont(lx.src[i]) {
		i++
	}
	name := lx.src[start:i]

	j := i
	for j < len(lx.src) && isSpace(lx.src[j]) {
		j++
	}
	if j < len(lx.src) && lx.src[j] == '(' {
		lx.pos = j + 1
		return token.NewFunc(name, token.UnresolvedArity), nil
	}

	lx.pos = i
	return token.NewVar(name), nil
}

// advanceState applies the transition table from spec §4.B after a
// token has been accepted.
func (lx *Lexer) advanceState(t token.Token) {
	switch t.Kind {
	case token.LParen:
		lx.stack = append(lx.stack, subFrame)
		lx.state = lExpr
	case token.Func:
		lx.stack = append(lx.stack, funcFrame)
		lx.state = lExpr
	case token.RParen:
		if len(lx.stack) > 0 {
			lx.stack = lx.stack[:len(lx.stack)-1]
		}
		lx.state = afterRExpr
	case token.Var, token.Number:
		lx.state = afterRExpr
	case token.Binary, token.Comma:
		lx.state = lExpr
	case token.Unary:
		// one in, one out: state unaffected.
	}
}

// Dump renders a token stream for diagnostics, e.g. the output of the
// CLI's `tokenize` subcommand.
func Dump(toks []token.Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
