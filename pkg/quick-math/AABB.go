package quickmath

type AABB struct {
	Min, Max Vec2
}

func NewAABB(min, max Vec2) AABB {
	return AABB{Min: min, Max: max}
}

// Intersect is strict, boxes that only touch do not intersect.
func (a AABB) Intersect(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y
}

// Contains is inclusive of the edges.
func (a AABB) Contains(p Vec2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

func (a AABB) ClampPoint(p Vec2) Vec2 {
	return p.Clamp(a.Min, a.Max)
}

func (a AABB) Size() Vec2 {
	return a.Max.Sub(a.Min)
}

func (a AABB) Center() Vec2 {
	return a.Min.Lerp(a.Max, 0.5)
}
