// Package eval implements the postfix interpreter described in spec
// §4.F: executing an Expr as a stack machine against a context.Provider,
// plus the context-completeness check and the variable-binding helpers
// used to turn an Expr into a plain Go closure.
package eval

import (
	"fmt"
	"math"

	"github.com/ishaanverma/symcore/pkg/context"
	"github.com/ishaanverma/symcore/pkg/expr"
	"github.com/ishaanverma/symcore/pkg/token"
)

// ErrorKind discriminates the evaluator's error taxonomy.
type ErrorKind int

const (
	UnknownVariable ErrorKind = iota
	Function
	EvalError
)

// Error is returned by WithContext and CheckContext.
type Error struct {
	Kind ErrorKind
	Name string // UnknownVariable, Function
	Func error  // Function: the underlying *context.FuncEvalError
	Msg  string // EvalError
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnknownVariable:
		return fmt.Sprintf("unknown variable %q", e.Name)
	case Function:
		return fmt.Sprintf("function %q: %v", e.Name, e.Func)
	default:
		return e.Msg
	}
}

func unknownVariable(name string) error { return &Error{Kind: UnknownVariable, Name: name} }
func functionError(name string, err error) error {
	return &Error{Kind: Function, Name: name, Func: err}
}
func evalError(format string, a ...any) error {
	return &Error{Kind: EvalError, Msg: fmt.Sprintf(format, a...)}
}

// WithContext executes e as a stack machine, consulting ctx for
// variable values and function calls.
func WithContext(e expr.Expr, ctx context.Provider) (float64, error) {
	stack := make([]float64, 0, 16)

	for i := 0; i < e.Len(); i++ {
		t := e.At(i)
		switch t.Kind {
		case token.Number:
			stack = append(stack, t.Num)

		case token.Var:
			v, ok := ctx.GetVar(t.Name)
			if !ok {
				return 0, unknownVariable(t.Name)
			}
			stack = append(stack, v)

		case token.Binary:
			if len(stack) < 2 {
				return 0, evalError("eval: stack underflow for binary operator %v", t.Op)
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			r, err := applyBinary(t.Op, left, right)
			if err != nil {
				return 0, err
			}
			stack = append(stack, r)

		case token.Unary:
			if len(stack) < 1 {
				return 0, evalError("eval: stack underflow for unary operator %v", t.Op)
			}
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			r, err := applyUnary(t.Op, x)
			if err != nil {
				return 0, err
			}
			stack = append(stack, r)

		case token.Func:
			n := t.Arity
			if len(stack) < n {
				return 0, evalError("eval: stack does not have enough arguments for function token %s", t)
			}
			args := stack[len(stack)-n:]
			r, err := ctx.EvalFunc(t.Name, args)
			if err != nil {
				return 0, functionError(t.Name, err)
			}
			stack = stack[:len(stack)-n]
			stack = append(stack, r)

		default:
			return 0, evalError("eval: unrecognized token %s", t)
		}
	}

	if len(stack) == 0 {
		return 0, evalError("eval: stack is empty, this should be impossible")
	}
	if len(stack) != 1 {
		return 0, evalError("eval: there are still %d items on the stack", len(stack)-1)
	}
	return stack[0], nil
}

func applyBinary(op token.Operation, left, right float64) (float64, error) {
	switch op {
	case token.Plus:
		return left + right, nil
	case token.Minus:
		return left - right, nil
	case token.Times:
		return left * right, nil
	case token.Div:
		return left / right, nil
	case token.Rem:
		return math.Mod(left, right), nil
	case token.Pow:
		return math.Pow(left, right), nil
	default:
		return 0, evalError("eval: unimplemented binary operation %v", op)
	}
}

func applyUnary(op token.Operation, x float64) (float64, error) {
	switch op {
	case token.Plus:
		return x, nil
	case token.Minus:
		return -x, nil
	case token.Fact:
		return factorial(x)
	default:
		return 0, evalError("eval: unimplemented unary operation %v", op)
	}
}

// factorial returns n! as a double, saturating to +Inf on overflow. It
// requires x to be a non-negative, finite, integral value.
func factorial(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) || x < 0 {
		return 0, evalError("factorial domain error: %g is not a non-negative integer", x)
	}
	r := 1.0
	for n := 2.0; n <= x; n++ {
		r *= n
		if math.IsInf(r, 1) {
			return math.Inf(1), nil
		}
	}
	return r, nil
}

// CheckContext walks e without performing arithmetic, verifying every
// Var is resolvable and every Func call succeeds against a zero-filled
// argument vector of the right arity. It reports the same errors
// WithContext would, without needing real input values.
func CheckContext(e expr.Expr, ctx context.Provider) error {
	for i := 0; i < e.Len(); i++ {
		t := e.At(i)
		switch t.Kind {
		case token.Var:
			if _, ok := ctx.GetVar(t.Name); !ok {
				return unknownVariable(t.Name)
			}
		case token.Func:
			args := make([]float64, t.Arity)
			if _, err := ctx.EvalFunc(t.Name, args); err != nil {
				return functionError(t.Name, err)
			}
		}
	}
	return nil
}

// Bind1 checks that e's only free variable is var (against ctx extended
// with a zero placeholder), then returns a closure evaluating e with
// var bound to the closure's argument. The closure never fails — any
// call-site failure indicates e was not actually closed by var and ctx,
// a contract CheckContext already verified.
func Bind1(e expr.Expr, ctx context.Provider, v string) (func(float64) float64, error) {
	probe := context.Chain{First: context.Var(v, 0), Second: ctx}
	if err := CheckContext(e, probe); err != nil {
		return nil, err
	}
	return func(x float64) float64 {
		r, err := WithContext(e, context.Chain{First: context.Var(v, x), Second: ctx})
		if err != nil {
			panic("eval.Bind1: " + err.Error())
		}
		return r
	}, nil
}

// Bind2 is Bind1 generalized to two free variables.
func Bind2(e expr.Expr, ctx context.Provider, v1, v2 string) (func(x, y float64) float64, error) {
	probe := context.Chained(context.Var(v1, 0), context.Var(v2, 0), ctx)
	if err := CheckContext(e, probe); err != nil {
		return nil, err
	}
	return func(x, y float64) float64 {
		actual := context.Chained(context.Var(v1, x), context.Var(v2, y), ctx)
		r, err := WithContext(e, actual)
		if err != nil {
			panic("eval.Bind2: " + err.Error())
		}
		return r
	}, nil
}

// Bind3 is Bind1 generalized to three free variables.
func Bind3(e expr.Expr, ctx context.Provider, v1, v2, v3 string) (func(x, y, z float64) float64, error) {
	probe := context.Chained(context.Var(v1, 0), context.Var(v2, 0), context.Var(v3, 0), ctx)
	if err := CheckContext(e, probe); err != nil {
		return nil, err
	}
	return func(x, y, z float64) float64 {
		actual := context.Chained(context.Var(v1, x), context.Var(v2, y), context.Var(v3, z), ctx)
		r, err := WithContext(e, actual)
		if err != nil {
			panic("eval.Bind3: " + err.Error())
		}
		return r
	}, nil
}
