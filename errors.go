package symcore

import (
	"fmt"

	"github.com/ishaanverma/symcore/pkg/context"
	"github.com/ishaanverma/symcore/pkg/eval"
	"github.com/ishaanverma/symcore/pkg/expr"
	"github.com/ishaanverma/symcore/pkg/shuntingyard"
	"github.com/ishaanverma/symcore/pkg/token"
)

// ErrorKind discriminates the top-level error taxonomy every
// user-facing operation funnels into (spec §6).
type ErrorKind int

const (
	ErrParse ErrorKind = iota
	ErrUnknownVariable
	ErrFunction
	ErrEval
	ErrSubstitute
	ErrSolve
)

func (k ErrorKind) String() string {
	switch k {
	case ErrParse:
		return "ParseError"
	case ErrUnknownVariable:
		return "UnknownVariable"
	case ErrFunction:
		return "Function"
	case ErrEval:
		return "EvalError"
	case ErrSubstitute:
		return "Substitute"
	case ErrSolve:
		return "Solve"
	default:
		return "Error"
	}
}

// Error is the consolidated error type returned by every symcore-level
// operation, wrapping the subpackage error that actually occurred.
type Error struct {
	Kind ErrorKind
	Name string // UnknownVariable, Function
	Err  error
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s(%s): %v", e.Kind, e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// wrap classifies an error from any subpackage into the top-level
// taxonomy. Errors already of type *Error pass through unchanged.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *Error:
		return e
	case *token.ParseError:
		return &Error{Kind: ErrParse, Err: e}
	case *shuntingyard.RPNError:
		return &Error{Kind: ErrParse, Err: e}
	case *context.FuncEvalError:
		return &Error{Kind: ErrFunction, Err: e}
	case *expr.SubstituteError:
		return &Error{Kind: ErrSubstitute, Err: e}
	case *eval.Error:
		switch e.Kind {
		case eval.UnknownVariable:
			return &Error{Kind: ErrUnknownVariable, Name: e.Name, Err: e}
		case eval.Function:
			return &Error{Kind: ErrFunction, Name: e.Name, Err: e}
		default:
			return &Error{Kind: ErrEval, Err: e}
		}
	default:
		return &Error{Kind: ErrSolve, Err: err}
	}
}
