package quickmath

// Arithmetic. Value receivers return a new Vec2, the *Assign forms mutate
// the receiver in place. Division follows IEEE 754, dividing by zero
// yields ±Inf or NaN and never panics.

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec2) AddScalar(s float64) Vec2 {
	return Vec2{X: v.X + s, Y: v.Y + s}
}

func (v *Vec2) AddAssign(other Vec2) {
	v.X += other.X
	v.Y += other.Y
}

func (v *Vec2) AddScalarAssign(s float64) {
	v.X += s
	v.Y += s
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vec2) SubScalar(s float64) Vec2 {
	return Vec2{X: v.X - s, Y: v.Y - s}
}

func (v *Vec2) SubAssign(other Vec2) {
	v.X -= other.X
	v.Y -= other.Y
}

func (v *Vec2) SubScalarAssign(s float64) {
	v.X -= s
	v.Y -= s
}

// Mul is component-wise, use Scale for a scalar.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{X: v.X * other.X, Y: v.Y * other.Y}
}

func (v Vec2) Scale(scalar float64) Vec2 {
	return Vec2{X: v.X * scalar, Y: v.Y * scalar}
}

// ScaleVec is the scalar-first spelling of v.Scale(s).
func ScaleVec(scalar float64, v Vec2) Vec2 {
	return v.Scale(scalar)
}

func (v *Vec2) MulAssign(other Vec2) {
	v.X *= other.X
	v.Y *= other.Y
}

func (v *Vec2) ScaleAssign(scalar float64) {
	v.X *= scalar
	v.Y *= scalar
}

// Div is component-wise.
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{X: v.X / other.X, Y: v.Y / other.Y}
}

func (v Vec2) DivScalar(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

func (v *Vec2) DivAssign(other Vec2) {
	v.X /= other.X
	v.Y /= other.Y
}

func (v *Vec2) DivScalarAssign(s float64) {
	v.X /= s
	v.Y /= s
}

func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}
