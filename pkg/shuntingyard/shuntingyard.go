// Package shuntingyard converts a linear (infix) token stream produced
// by pkg/lexer into a postfix (RPN) token sequence, honoring operator
// precedence, associativity, function arity, and factorial (spec §4.C).
package shuntingyard

import (
	"fmt"

	"github.com/ishaanverma/symcore/pkg/token"
)

// ErrorKind discriminates the shunting-yard stage's error taxonomy.
type ErrorKind int

const (
	MismatchedParen ErrorKind = iota
	MismatchedComma
	MissingArgumentAfterOp
	MissingCommaOrRParen
	UnknownPrecedence
)

// RPNError is returned when an otherwise well-tokenized stream cannot be
// converted to postfix form.
type RPNError struct {
	Kind ErrorKind
}

func (e *RPNError) Error() string {
	switch e.Kind {
	case MismatchedParen:
		return "mismatched parenthesis"
	case MismatchedComma:
		return "mismatched comma"
	case MissingArgumentAfterOp:
		return "missing argument after operator"
	case MissingCommaOrRParen:
		return "missing comma or right parenthesis"
	default:
		return "unknown operator precedence"
	}
}

func newErr(k ErrorKind) error { return &RPNError{Kind: k} }

// associativity of a binary/unary operator.
type assoc int

const (
	left assoc = iota
	right
)

type opInfo struct {
	prec  int
	assoc assoc
}

// Precedence table from spec §4.C. Function calls bind tighter than
// anything here; they are handled structurally via the marker stack
// rather than through this table.
var binaryPrec = map[token.Operation]opInfo{
	token.Plus:  {2, left},
	token.Minus: {2, left},
	token.Times: {3, left},
	token.Div:   {3, left},
	token.Rem:   {3, left},
	token.Pow:   {4, right},
}

const unaryPrec = 5 // unary +, unary -, postfix !

// stackItem is either an operator token or a paren/func marker. The
// argument counters of open function calls are kept separately, in
// ToRPN's argCount stack.
type stackItem struct {
	tok      token.Token
	isMarker bool
	isFunc   bool // only meaningful when isMarker
}

// ToRPN converts an infix token stream into postfix order. Arity
// contracts are not checked here — an unsatisfied arity contract is the
// Evaluator's domain, not the shunting-yard stage's.
func ToRPN(in []token.Token) ([]token.Token, error) {
	var out []token.Token
	var ops []stackItem
	// argCount[i] counts commas seen so far for the i-th (innermost-last)
	// open function call, indexed in parallel with func markers on ops.
	var argCount []int

	popWhileHigher := func(incoming opInfo) {
		for len(ops) > 0 {
			top := ops[len(ops)-1]
			if top.isMarker {
				break
			}
			var topInfo opInfo
			if top.tok.Kind == token.Unary {
				topInfo = opInfo{unaryPrec, right}
			} else {
				topInfo = binaryPrec[top.tok.Op]
			}
			if topInfo.prec > incoming.prec || (topInfo.prec == incoming.prec && incoming.assoc == left) {
				out = append(out, top.tok)
				ops = ops[:len(ops)-1]
				continue
			}
			break
		}
	}

	for idx := 0; idx < len(in); idx++ {
		t := in[idx]
		switch t.Kind {
		case token.Number, token.Var:
			out = append(out, t)

		case token.Func:
			ops = append(ops, stackItem{tok: t, isMarker: true, isFunc: true})
			argCount = append(argCount, 0)

		case token.LParen:
			ops = append(ops, stackItem{tok: t, isMarker: true})

		case token.Unary:
			popWhileHigher(opInfo{unaryPrec, right})
			ops = append(ops, stackItem{tok: t})

		case token.Binary:
			info, ok := binaryPrec[t.Op]
			if !ok {
				return nil, newErr(UnknownPrecedence)
			}
			popWhileHigher(info)
			ops = append(ops, stackItem{tok: t})

		case token.Comma:
			for len(ops) > 0 && !ops[len(ops)-1].isMarker {
				out = append(out, ops[len(ops)-1].tok)
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 || !ops[len(ops)-1].isFunc {
				return nil, newErr(MismatchedComma)
			}
			argCount[len(argCount)-1]++

		case token.RParen:
			emptyGroup := idx > 0 && in[idx-1].Kind == token.LParen
			emptyCall := idx > 0 && in[idx-1].Kind == token.Func
			for len(ops) > 0 && !ops[len(ops)-1].isMarker {
				out = append(out, ops[len(ops)-1].tok)
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, newErr(MismatchedParen)
			}
			marker := ops[len(ops)-1]
			ops = ops[:len(ops)-1]
			if marker.isFunc {
				n := argCount[len(argCount)-1] + 1
				if emptyCall {
					n = 0
				}
				argCount = argCount[:len(argCount)-1]
				out = append(out, token.NewFunc(marker.tok.Name, n))
			} else if emptyGroup {
				return nil, newErr(MissingArgumentAfterOp)
			}

		default:
			return nil, newErr(UnknownPrecedence)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.isMarker {
			return nil, newErr(MismatchedParen)
		}
		out = append(out, top.tok)
		ops = ops[:len(ops)-1]
	}

	return out, nil
}

// String is a debugging helper that renders a token slice with fmt
// (bracketed, space separated); lexer.Dump gives the same listing
// without brackets.
func String(toks []token.Token) string {
	return fmt.Sprint(toks)
}
