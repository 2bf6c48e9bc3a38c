package interchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExprUnmarshalFromString(t *testing.T) {
	var e Expr
	err := yaml.Unmarshal([]byte("2 + 3 * x"), &e)
	assert.NoError(t, err)
	assert.Equal(t, "2 3 x * +", e.String())
}

func TestExprUnmarshalFromNumber(t *testing.T) {
	var e Expr
	err := yaml.Unmarshal([]byte("42"), &e)
	assert.NoError(t, err)
	assert.Equal(t, "42", e.String())
}

func TestExprUnmarshalFromFloat(t *testing.T) {
	var e Expr
	err := yaml.Unmarshal([]byte("3.5"), &e)
	assert.NoError(t, err)
	assert.Equal(t, "3.5", e.String())
}

func TestExprUnmarshalRejectsNonScalar(t *testing.T) {
	var e Expr
	err := yaml.Unmarshal([]byte("[1, 2]"), &e)
	assert.Error(t, err)
}

func TestExprUnmarshalPropagatesParseError(t *testing.T) {
	var e Expr
	err := yaml.Unmarshal([]byte("2 +"), &e)
	assert.Error(t, err)
}

func TestExprMarshalRoundTripsPostfix(t *testing.T) {
	var e Expr
	assert.NoError(t, yaml.Unmarshal([]byte("x + 1"), &e))

	out, err := yaml.Marshal(e)
	assert.NoError(t, err)

	var back Expr
	assert.NoError(t, yaml.Unmarshal(out, &back))
	assert.True(t, e.Equal(back.Expr))
}

func TestEqtnUnmarshal(t *testing.T) {
	var eq Eqtn
	err := yaml.Unmarshal([]byte("x + 1 = 2"), &eq)
	assert.NoError(t, err)
	assert.Equal(t, "x 1 + = 2", eq.String())
}

func TestEqtnUnmarshalRejectsMalformed(t *testing.T) {
	var eq Eqtn
	err := yaml.Unmarshal([]byte("x + 1"), &eq)
	assert.Error(t, err)
}

func TestEqtnMarshalRoundTrips(t *testing.T) {
	var eq Eqtn
	assert.NoError(t, yaml.Unmarshal([]byte("x = 2 + 2"), &eq))

	out, err := yaml.Marshal(eq)
	assert.NoError(t, err)

	var back Eqtn
	assert.NoError(t, yaml.Unmarshal(out, &back))
	assert.True(t, eq.Equal(back.Eqtn))
}
