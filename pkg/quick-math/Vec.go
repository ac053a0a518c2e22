package quickmath

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X float64 `json:"x" db:"x"`
	Y float64 `json:"y" db:"y"`
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector (cos θ, sin θ).
func FromAngle(radians float64) Vec2 {
	sin, cos := math.Sincos(radians)
	return Vec2{X: cos, Y: sin}
}

func FromAngleDeg(degrees float64) Vec2 {
	return FromAngle(degToRad(degrees))
}

func Zero() Vec2 {
	return Vec2{X: 0, Y: 0}
}

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%g, %g)", v.X, v.Y)
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ApproxEqual compares per axis with an absolute tolerance.
// Use == for exact comparison.
func (v Vec2) ApproxEqual(other Vec2, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps && math.Abs(v.Y-other.Y) <= eps
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// LenSq skips the square root, prefer it for comparisons.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec2) Dist(other Vec2) float64 {
	return math.Sqrt(v.DistSq(other))
}

func (v Vec2) DistSq(other Vec2) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return dx*dx + dy*dy
}

// AngleTo returns the signed angle in radians from v to other, computed as
// atan2(other) - atan2(v).
//
// The result is NOT wrapped into [-π, π]. When the two directions sit on
// opposite sides of the negative x axis the value can approach ±2π; callers
// that want the shortest rotation have to wrap it themselves.
func (v Vec2) AngleTo(other Vec2) float64 {
	return math.Atan2(other.Y, other.X) - math.Atan2(v.Y, v.X)
}

func (v Vec2) AngleToDeg(other Vec2) float64 {
	return radToDeg(v.AngleTo(other))
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func radToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}
