package quickmath

import "math"

// Norm returns the unit vector pointing the same way as v.
// A zero length vector normalizes to the zero vector instead of NaN.
func (v Vec2) Norm() Vec2 {
	length := v.Len()
	if length == 0 {
		return Vec2{X: 0, Y: 0}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Lerp returns v + t*(other - v). t is not clamped, values outside
// [0, 1] extrapolate.
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + t*(other.X-v.X),
		Y: v.Y + t*(other.Y-v.Y),
	}
}

// Reflect mirrors v about the line whose normal is n.
// n must already be unit length.
func (v Vec2) Reflect(n Vec2) Vec2 {
	dot := v.Dot(n)
	return Vec2{
		X: v.X - (2*n.X)*dot,
		Y: v.Y - (2*n.Y)*dot,
	}
}

func (v Vec2) Rotate(radians float64) Vec2 {
	sin, cos := math.Sincos(radians)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

func (v Vec2) RotateDeg(degrees float64) Vec2 {
	return v.Rotate(degToRad(degrees))
}

// Recip is the component-wise reciprocal (1/x, 1/y). Zero components
// become ±Inf.
func (v Vec2) Recip() Vec2 {
	return Vec2{X: 1 / v.X, Y: 1 / v.Y}
}

func (v Vec2) Abs() Vec2 {
	return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

func (v Vec2) AbsDiff(other Vec2) Vec2 {
	return Vec2{
		X: math.Abs(v.X - other.X),
		Y: math.Abs(v.Y - other.Y),
	}
}

func (v Vec2) Ceil() Vec2 {
	return Vec2{X: math.Ceil(v.X), Y: math.Ceil(v.Y)}
}

func (v Vec2) Floor() Vec2 {
	return Vec2{X: math.Floor(v.X), Y: math.Floor(v.Y)}
}

func (v Vec2) Trunc() Vec2 {
	return Vec2{X: math.Trunc(v.X), Y: math.Trunc(v.Y)}
}

// Clamp clamps each axis of v into [min, max] of that axis.
// A NaN axis of v clamps to the bound, NaN only survives when the bounds
// are NaN too.
func (v Vec2) Clamp(min, max Vec2) Vec2 {
	return Vec2{
		X: minNum(max.X, maxNum(min.X, v.X)),
		Y: minNum(max.Y, maxNum(min.Y, v.Y)),
	}
}

// maxNum and minNum return the other operand when one is NaN, unlike
// math.Max and math.Min which propagate it.
func maxNum(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}
	return math.Max(a, b)
}

func minNum(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}
	return math.Min(a, b)
}

// ClampLen scales v so its length lies in [min, max], keeping direction.
// v is returned unchanged when already in range. A zero vector stays zero
// since it has no direction to scale along.
func (v Vec2) ClampLen(min, max float64) Vec2 {
	lenSq := v.LenSq()
	if lenSq <= 0 {
		return Vec2{X: 0, Y: 0}
	}

	length := math.Sqrt(lenSq)
	if length < min {
		return v.Scale(min / length)
	}
	if length > max {
		return v.Scale(max / length)
	}
	return v
}

// Normal returns the unit perpendicular (n.y, -n.x) of n = v.Norm().
// In a y-up frame that is v turned 90° clockwise.
func (v Vec2) Normal() Vec2 {
	n := v.Norm()
	return Vec2{X: n.Y, Y: -n.X}
}
