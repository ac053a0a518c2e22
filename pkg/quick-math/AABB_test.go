package quickmath_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	quickmath "vector2d.theprimeagen.com/pkg/quick-math"
)

type Vec2 = quickmath.Vec2
type AABB = quickmath.AABB

func box(minX, minY, maxX, maxY float64) AABB {
	return quickmath.NewAABB(Vec2{X: minX, Y: minY}, Vec2{X: maxX, Y: maxY})
}

func TestAABBIntersect(t *testing.T) {
	cases := []struct {
		name string
		a, b AABB
		want bool
	}{
		{"Basic intersection", box(0, 0, 5, 5), box(3, 3, 7, 7), true},
		{"Exact overlap", box(0, 0, 5, 5), box(0, 0, 5, 5), true},
		{"One inside the other", box(0, 0, 10, 10), box(3, 3, 7, 7), true},
		{"No intersection - completely separate UD", box(0, 0, 5, 5), box(0, 6, 5, 10), false},
		{"Touching edges - no intersection LR", box(0, 0, 5, 5), box(5, 0, 10, 5), false},
		{"Touching edges - no intersection UD", box(0, 5, 5, 10), box(0, 0, 5, 5), false},
		{"Touching corners - no intersection", box(0, 0, 5, 5), box(5, 5, 10, 10), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.a.Intersect(c.b))
			require.Equal(t, c.want, c.b.Intersect(c.a), "Intersect must be symmetric")
		})
	}
}

func TestAABBContains(t *testing.T) {
	b := box(0, 0, 10, 5)

	require.True(t, b.Contains(Vec(5, 2.5)))
	require.True(t, b.Contains(Vec(0, 0)), "edges are inside")
	require.True(t, b.Contains(Vec(10, 5)), "edges are inside")
	require.False(t, b.Contains(Vec(10.001, 2)))
	require.False(t, b.Contains(Vec(5, -0.1)))
}

func TestAABBClampPoint(t *testing.T) {
	b := box(0, 0, 10, 5)

	require.Equal(t, Vec(5, 2), b.ClampPoint(Vec(5, 2)))
	require.Equal(t, Vec(10, 0), b.ClampPoint(Vec(12, -3)))
	require.Equal(t, Vec(0, 5), b.ClampPoint(Vec(-1, 50)))
}

func TestAABBSizeAndCenter(t *testing.T) {
	b := box(-2, 1, 4, 9)

	require.Equal(t, Vec(6, 8), b.Size())
	require.Equal(t, Vec(1, 5), b.Center())
}
