// Package interchange adapts Expr and Eqtn to YAML (de)serialization: a
// thin layer over pkg/expr and pkg/eqtn (spec §1 — "excluded as
// external collaborators... the optional text-interchange
// deserialization glue, it is a thin adapter over §3-§4"). A scalar
// YAML string is parsed as expression source; a scalar number becomes a
// single-token numeric Expr directly, without a detour through the
// tokenizer.
package interchange

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ishaanverma/symcore/pkg/eqtn"
	"github.com/ishaanverma/symcore/pkg/expr"
	"github.com/ishaanverma/symcore/pkg/token"
)

// Expr wraps expr.Expr so it can be embedded in a YAML-decoded
// configuration struct.
type Expr struct {
	expr.Expr
}

var _ yaml.Unmarshaler = (*Expr)(nil)
var _ yaml.Marshaler = Expr{}

// UnmarshalYAML accepts either a string (parsed as expression source)
// or a bare number (taken as a numeric literal expression directly).
func (e *Expr) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("interchange: expected a scalar, got %v", value.Kind)
	}

	switch value.Tag {
	case "!!float", "!!int":
		f, err := strconv.ParseFloat(value.Value, 64)
		if err != nil {
			return fmt.Errorf("interchange: %w", err)
		}
		e.Expr = expr.New([]token.Token{token.NewNumber(f)})
		return nil
	default:
		parsed, err := expr.Parse(value.Value)
		if err != nil {
			return fmt.Errorf("interchange: %w", err)
		}
		e.Expr = parsed
		return nil
	}
}

// MarshalYAML renders the expression back to its debug (postfix) form.
// Round-tripping through infix source is intentionally not attempted —
// postfix is lossless and unambiguous, infix reconstruction is not.
func (e Expr) MarshalYAML() (any, error) {
	return e.String(), nil
}

// Eqtn wraps eqtn.Eqtn for YAML (de)serialization as a single
// "lhs = rhs" scalar string.
type Eqtn struct {
	eqtn.Eqtn
}

var _ yaml.Unmarshaler = (*Eqtn)(nil)
var _ yaml.Marshaler = Eqtn{}

func (e *Eqtn) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("interchange: expected a scalar, got %v", value.Kind)
	}
	parsed, err := eqtn.Parse(value.Value)
	if err != nil {
		return fmt.Errorf("interchange: %w", err)
	}
	e.Eqtn = parsed
	return nil
}

func (e Eqtn) MarshalYAML() (any, error) {
	return e.String(), nil
}
