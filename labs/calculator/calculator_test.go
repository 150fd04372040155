package calculator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		a, b     float64
		op       Operator
		expected float64
	}{
		{2, 3, Add, 5},
		{10, 4, Subtract, 6},
		{-5, 3, Multiply, -15},
		{10, 4, Divide, 2.5},
		{0, 7, Divide, 0},
	}

	for _, c := range cases {
		got, err := Compute(c.a, c.b, c.op)
		require.NoError(err)
		require.InDelta(c.expected, got, 1e-9)
	}
}

func TestDivisionRoundtrip(t *testing.T) {
	require := require.New(t)

	pairs := [][2]float64{
		{10, 3}, {1, 7}, {-42.5, 0.125}, {1e6, -9.5}, {0.001, 1234},
	}
	for _, p := range pairs {
		q, err := Compute(p[0], p[1], Divide)
		require.NoError(err)
		require.InDelta(p[0], q*p[1], 1e-6)
	}
}

func TestDivisionByZero(t *testing.T) {
	require := require.New(t)

	_, err := Compute(10, 0, Divide)
	require.ErrorIs(err, ErrDivisionByZero)
}

func TestUnknownOperator(t *testing.T) {
	require := require.New(t)

	_, err := Compute(1, 2, Operator("%"))
	require.Error(err)
	require.NotErrorIs(err, ErrDivisionByZero)
}

func TestValidateNumber(t *testing.T) {
	require := require.New(t)

	require.NoError(validateNumber("42"))
	require.NoError(validateNumber("-3.25"))
	require.Error(validateNumber("abc"))
	require.Error(validateNumber(""))
}
