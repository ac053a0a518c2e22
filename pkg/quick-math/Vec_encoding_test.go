package quickmath_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	quickmath "vector2d.theprimeagen.com/pkg/quick-math"
)

type waypoint struct {
	Name string `json:"name"`
	Pos  Vec2   `json:"pos"`
}

func TestVec2JSON(t *testing.T) {
	data, err := json.Marshal(Vec(1.5, -2))
	require.NoError(t, err)
	require.Equal(t, `{"x":1.5,"y":-2}`, string(data))

	var fromObject, fromPair Vec2
	require.NoError(t, json.Unmarshal([]byte(`{"x": 1.5, "y": -2}`), &fromObject))
	require.NoError(t, json.Unmarshal([]byte(` [1.5, -2] `), &fromPair))
	require.Equal(t, Vec(1.5, -2), fromObject)
	require.Equal(t, fromObject, fromPair)
}

func TestVec2JSONNested(t *testing.T) {
	var w waypoint
	require.NoError(t, json.Unmarshal([]byte(`{"name": "spawn", "pos": [3, 4]}`), &w))
	require.Equal(t, waypoint{Name: "spawn", Pos: Vec(3, 4)}, w)

	out, err := json.Marshal(w)
	require.NoError(t, err)
	require.Equal(t, `{"name":"spawn","pos":{"x":3,"y":4}}`, string(out))

	w.Pos = Vec(9, 9)
	require.NoError(t, json.Unmarshal([]byte(`{"name": "spawn", "pos": null}`), &w))
	require.Equal(t, Vec(9, 9), w.Pos, "null leaves the field alone")
}

func TestVec2JSONMergesMissingAxis(t *testing.T) {
	v := Vec(5, 5)
	require.NoError(t, json.Unmarshal([]byte(`{"x": 1}`), &v))
	require.Equal(t, Vec(1, 5), v)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &v))
	require.Equal(t, Vec(1, 5), v)

	w := waypoint{Pos: Vec(9, 9)}
	require.NoError(t, json.Unmarshal([]byte(`{"pos": {"y": -1}}`), &w))
	require.Equal(t, Vec(9, -1), w.Pos)
}

func TestVec2JSONErrors(t *testing.T) {
	for _, input := range []string{`[1]`, `[1, 2, 3]`, `"1,2"`, `42`} {
		var v Vec2
		err := json.Unmarshal([]byte(input), &v)
		require.ErrorIs(t, err, quickmath.ErrVec2JSON, "input %s", input)
	}

	var v Vec2
	require.Error(t, json.Unmarshal([]byte(`{"x": "one"}`), &v))
	require.Error(t, json.Unmarshal([]byte(`["a", "b"]`), &v))
}

func TestVec2Pair(t *testing.T) {
	require.Equal(t, [2]float64{3, -4}, Vec(3, -4).Pair())
}

func TestVec2Binary(t *testing.T) {
	v := Vec(-0.125, 1e300)

	data, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, quickmath.VEC2_BINARY_SIZE)
	// -0.125 big endian, x comes first
	require.Equal(t, []byte{0xbf, 0xc0, 0, 0, 0, 0, 0, 0}, data[:8])

	var out Vec2
	require.NoError(t, out.UnmarshalBinary(data))
	require.Equal(t, v, out)

	require.ErrorIs(t, out.UnmarshalBinary(data[:15]), quickmath.ErrVec2Size)
}

func TestVec2WriteToAndRead(t *testing.T) {
	buf := &bytes.Buffer{}
	vecs := []Vec2{Vec(1, 2), Vec(-3, 4.5), quickmath.Zero()}

	for _, v := range vecs {
		n, err := v.WriteTo(buf)
		require.NoError(t, err)
		require.Equal(t, int64(quickmath.VEC2_BINARY_SIZE), n)
	}

	for _, expected := range vecs {
		got, err := quickmath.ReadVec2(buf)
		require.NoError(t, err)
		require.Equal(t, expected, got)
	}

	_, err := quickmath.ReadVec2(buf)
	require.ErrorIs(t, err, io.EOF)
}
