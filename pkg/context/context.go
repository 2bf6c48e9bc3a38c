// Package context implements the variable/function lookup surface
// consulted by the evaluator (spec §3, §4.F, §6): a ContextProvider
// interface, a concrete Context with an arity-guarded function table,
// and the composition rules for layering multiple providers.
package context

import (
	"fmt"
	"math"
)

// FuncEvalErrorKind discriminates function-call evaluation failures.
type FuncEvalErrorKind int

const (
	UnknownFunction FuncEvalErrorKind = iota
	NumberArgs
	TooFewArguments
	TooManyArguments
)

// FuncEvalError is returned by Provider.EvalFunc.
type FuncEvalError struct {
	Kind FuncEvalErrorKind
	N    int // meaningful only for NumberArgs
}

func (e *FuncEvalError) Error() string {
	switch e.Kind {
	case UnknownFunction:
		return "unknown function"
	case NumberArgs:
		return fmt.Sprintf("expected %d arguments", e.N)
	case TooFewArguments:
		return "too few arguments"
	case TooManyArguments:
		return "too many arguments"
	default:
		return "function evaluation error"
	}
}

// Provider is a source of variables (and constants) and functions for
// substitution into an evaluated expression. Implementations compose:
// see Chain.
type Provider interface {
	GetVar(name string) (float64, bool)
	EvalFunc(name string, args []float64) (float64, error)
}

// Chain composes two providers: the first is tried for a name, the
// second is consulted on absence. Function evaluation falls back to
// the second provider only when the first reports UnknownFunction —
// never on an arity error, so layering stays predictable.
type Chain struct {
	First, Second Provider
}

func (c Chain) GetVar(name string) (float64, bool) {
	if v, ok := c.First.GetVar(name); ok {
		return v, true
	}
	return c.Second.GetVar(name)
}

func (c Chain) EvalFunc(name string, args []float64) (float64, error) {
	v, err := c.First.EvalFunc(name, args)
	if err == nil {
		return v, nil
	}
	if fe, ok := err.(*FuncEvalError); ok && fe.Kind == UnknownFunction {
		return c.Second.EvalFunc(name, args)
	}
	return 0, err
}

// Chained composes providers left to right, each falling back to the
// next on an unknown name or unknown function.
func Chained(providers ...Provider) Provider {
	switch len(providers) {
	case 0:
		return Empty()
	case 1:
		return providers[0]
	default:
		rest := Chained(providers[1:]...)
		return Chain{First: providers[0], Second: rest}
	}
}

// singleVar is a Provider exposing exactly one variable binding; it is
// the Go analogue of the original's `(name, value)` tuple provider,
// used heavily when binding closures over an Expr.
type singleVar struct {
	name  string
	value float64
}

// Var returns a Provider exposing a single variable binding.
func Var(name string, value float64) Provider { return singleVar{name: name, value: value} }

func (v singleVar) GetVar(name string) (float64, bool) {
	if v.name == name {
		return v.value, true
	}
	return 0, false
}

func (v singleVar) EvalFunc(string, []float64) (float64, error) {
	return 0, &FuncEvalError{Kind: UnknownFunction}
}

// VarMap is a Provider backed by a map of variable bindings, with no
// functions of its own.
type VarMap map[string]float64

func (m VarMap) GetVar(name string) (float64, bool) {
	v, ok := m[name]
	return v, ok
}

func (m VarMap) EvalFunc(string, []float64) (float64, error) {
	return 0, &FuncEvalError{Kind: UnknownFunction}
}

// guardedFunc pairs a callable over a float64 slice with its arity
// contract, mirroring the original's GuardedFunc closures built by
// ArgGuard.
type guardedFunc struct {
	arity ArgGuard
	fn    func(args []float64) float64
}

func (g guardedFunc) call(args []float64) (float64, error) {
	if err := g.arity.check(len(args)); err != nil {
		return 0, err
	}
	return g.fn(args), nil
}

// ArgGuard is the arity contract attached to a context function: an
// exact count, a minimum, an exclusive maximum, a half-open range
// [lo, hi), or unconstrained.
type ArgGuard struct {
	kind argGuardKind
	lo   int
	hi   int // exclusive upper bound, meaningful for range/atMost
}

type argGuardKind int

const (
	exact argGuardKind = iota
	atLeast
	atMost
	rangeGuard
	unconstrained
)

// Exactly requires precisely n arguments.
func Exactly(n int) ArgGuard { return ArgGuard{kind: exact, lo: n} }

// AtLeast requires at least n arguments.
func AtLeast(n int) ArgGuard { return ArgGuard{kind: atLeast, lo: n} }

// AtMost requires fewer than n arguments.
func AtMost(n int) ArgGuard { return ArgGuard{kind: atMost, hi: n} }

// Range requires at least lo and fewer than hi arguments.
func Range(lo, hi int) ArgGuard { return ArgGuard{kind: rangeGuard, lo: lo, hi: hi} }

// Unconstrained admits any number of arguments.
func Unconstrained() ArgGuard { return ArgGuard{kind: unconstrained} }

func (g ArgGuard) check(n int) error {
	switch g.kind {
	case exact:
		if n != g.lo {
			return &FuncEvalError{Kind: NumberArgs, N: g.lo}
		}
	case atLeast:
		if n < g.lo {
			return &FuncEvalError{Kind: TooFewArguments}
		}
	case atMost:
		if n >= g.hi {
			return &FuncEvalError{Kind: TooManyArguments}
		}
	case rangeGuard:
		if n < g.lo {
			return &FuncEvalError{Kind: TooFewArguments}
		}
		if n >= g.hi {
			return &FuncEvalError{Kind: TooManyArguments}
		}
	}
	return nil
}

// Context is the concrete, mutable-while-building Provider: a table of
// named variables plus a table of arity-guarded named functions.
type Context struct {
	vars  map[string]float64
	funcs map[string]guardedFunc
}

// Empty returns a Context with no variables or functions defined.
func Empty() *Context {
	return &Context{vars: make(map[string]float64), funcs: make(map[string]guardedFunc)}
}

// New returns a Context pre-populated with the built-in constants and
// math functions (spec §6).
func New() *Context {
	c := Empty()
	c.SetVar("pi", math.Pi)
	c.SetVar("e", math.E)

	c.Func1("sqrt", math.Sqrt)
	c.Func1("exp", math.Exp)
	c.Func1("ln", math.Log)
	c.Func1("log10", math.Log10)
	c.Func1("abs", math.Abs)
	c.Func1("sin", math.Sin)
	c.Func1("cos", math.Cos)
	c.Func1("tan", math.Tan)
	c.Func1("asin", math.Asin)
	c.Func1("acos", math.Acos)
	c.Func1("atan", math.Atan)
	c.Func1("sinh", math.Sinh)
	c.Func1("cosh", math.Cosh)
	c.Func1("tanh", math.Tanh)
	c.Func1("asinh", math.Asinh)
	c.Func1("acosh", math.Acosh)
	c.Func1("atanh", math.Atanh)
	c.Func1("floor", math.Floor)
	c.Func1("ceil", math.Ceil)
	c.Func1("round", math.Round)
	c.Func1("signum", signum)
	c.Func2("atan2", math.Atan2)
	c.FuncN("max", maxArray, AtLeast(1))
	c.FuncN("min", minArray, AtLeast(1))

	c.Func1("cbrt", math.Cbrt)
	c.Func1("exp_m1", math.Expm1)
	c.Func1("exp2", math.Exp2)
	c.Func1("fract", fract)
	c.Func1("ln_1p", math.Log1p)
	c.Func1("log2", math.Log2)
	c.Func1("recip", recip)
	c.Func1("trunc", math.Trunc)
	c.Func2("hypot", math.Hypot)
	c.Func2("log", logBase)
	c.Func3("mul_add", math.FMA)

	return c
}

func signum(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

func fract(x float64) float64 { return x - math.Trunc(x) }
func recip(x float64) float64 { return 1 / x }

// logBase mirrors Rust's f64::log(self, base) = self.ln() / base.ln().
func logBase(x, base float64) float64 { return math.Log(x) / math.Log(base) }

func maxArray(xs []float64) float64 {
	m := math.Inf(-1)
	for _, x := range xs {
		m = math.Max(m, x)
	}
	return m
}

func minArray(xs []float64) float64 {
	m := math.Inf(1)
	for _, x := range xs {
		m = math.Min(m, x)
	}
	return m
}

// SetVar adds or overwrites a variable/constant binding, returning the
// receiver for chaining.
func (c *Context) SetVar(name string, value float64) *Context {
	c.vars[name] = value
	return c
}

// Func1 registers a function of one argument.
func (c *Context) Func1(name string, fn func(float64) float64) *Context {
	return c.FuncN(name, func(a []float64) float64 { return fn(a[0]) }, Exactly(1))
}

// Func2 registers a function of two arguments.
func (c *Context) Func2(name string, fn func(a, b float64) float64) *Context {
	return c.FuncN(name, func(a []float64) float64 { return fn(a[0], a[1]) }, Exactly(2))
}

// Func3 registers a function of three arguments.
func (c *Context) Func3(name string, fn func(a, b, d float64) float64) *Context {
	return c.FuncN(name, func(a []float64) float64 { return fn(a[0], a[1], a[2]) }, Exactly(3))
}

// FuncN registers a function of a variable number of arguments, guarded
// by arity.
func (c *Context) FuncN(name string, fn func([]float64) float64, arity ArgGuard) *Context {
	c.funcs[name] = guardedFunc{arity: arity, fn: fn}
	return c
}

func (c *Context) GetVar(name string) (float64, bool) {
	v, ok := c.vars[name]
	return v, ok
}

func (c *Context) EvalFunc(name string, args []float64) (float64, error) {
	f, ok := c.funcs[name]
	if !ok {
		return 0, &FuncEvalError{Kind: UnknownFunction}
	}
	return f.call(args)
}

// Builtin returns the shared built-in Context, materialised once per
// process and treated as immutable once observed — callers must not
// mutate the returned value.
func Builtin() *Context {
	return builtinOnce
}

var builtinOnce = New()
