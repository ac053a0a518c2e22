package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	quickmath "vector2d.theprimeagen.com/pkg/quick-math"
)

func TestEval(t *testing.T) {
	cases := []struct {
		op   string
		args []string
		want any
	}{
		{"len", []string{"3", "4"}, 5.0},
		{"norm", []string{"3", "4"}, quickmath.NewVec2(0.6, 0.8)},
		{"add", []string{"1", "2", "3", "4"}, quickmath.NewVec2(4, 6)},
		{"clamplen", []string{"3", "4", "1", "5"}, quickmath.NewVec2(3, 4)},
		{"recip", []string{"2", "4"}, quickmath.NewVec2(0.5, 0.25)},
		{"lerp", []string{"0", "0", "10", "-10", "0.5"}, quickmath.NewVec2(5, -5)},
		{"clamp", []string{"5", "-5", "0", "0", "3", "3"}, quickmath.NewVec2(3, 0)},
	}

	for _, c := range cases {
		t.Run(c.op, func(t *testing.T) {
			got, err := eval(c.op, c.args)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	_, err := eval("cross", []string{"1", "2", "3", "4"})
	require.ErrorIs(t, err, ErrUnknownOp)

	_, err = eval("len", []string{"1"})
	require.ErrorIs(t, err, ErrArity)

	_, err = eval("len", []string{"1", "two"})
	require.Error(t, err)
}

func TestEveryOpHasMatchingArity(t *testing.T) {
	for name, o := range ops {
		args := make([]string, o.arity)
		for i := range args {
			args[i] = "1"
		}

		_, err := eval(name, args)
		require.NoError(t, err, name)
	}
}

func TestFormat(t *testing.T) {
	out, err := format(quickmath.NewVec2(1, -2), false, false)
	require.NoError(t, err)
	require.Equal(t, "Vec2(1, -2)", out)

	out, err = format(quickmath.NewVec2(1, -2), true, false)
	require.NoError(t, err)
	require.Equal(t, `{"x":1,"y":-2}`, out)

	out, err = format(quickmath.NewVec2(-0.125, 0), false, true)
	require.NoError(t, err)
	require.Equal(t, "bf c0 00 00 00 00 00 00 00 00 00 00 00 00 00 00", out)

	out, err = format(2.5, false, false)
	require.NoError(t, err)
	require.Equal(t, "2.5", out)
}
