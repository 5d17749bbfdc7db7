package geometry

import "math"

// MicronsPerMillimeter is the fixed-point unit scale: one millimetre of
// model space is 1000 integer units.
const MicronsPerMillimeter = 1000

// Point is a 2D coordinate in fixed-point integer space (micrometres).
// Equality is exact; precision is managed by upstream unit scaling, never
// by epsilon comparisons at this layer.
type Point struct {
	X, Y int64
}

// Pt is a convenience function to create a Point.
func Pt(x, y int64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by an integer factor.
func (p Point) Mul(s int64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by an integer factor, truncating toward
// zero.
func (p Point) Div(s int64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) int64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar z-component).
func (p Point) Cross(q Point) int64 {
	return p.X*q.Y - p.Y*q.X
}

// Size2 returns the squared length of the vector.
func (p Point) Size2() int64 {
	return p.X*p.X + p.Y*p.Y
}

// Size returns the length of the vector, rounded to the nearest unit.
func (p Point) Size() int64 {
	return int64(math.Round(math.Sqrt(float64(p.Size2()))))
}

// ShorterThan reports whether the vector is no longer than length.
// It avoids the square root taken by Size.
func (p Point) ShorterThan(length int64) bool {
	if p.X > length || p.X < -length || p.Y > length || p.Y < -length {
		return false
	}
	return p.Size2() <= length*length
}

// Turn90CCW returns the vector rotated a quarter turn counter-clockwise.
func (p Point) Turn90CCW() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Normal returns the vector rescaled to the requested length. The zero
// vector has no direction; it is returned unchanged rather than dividing
// by zero.
func (p Point) Normal(length int64) Point {
	size := p.Size()
	if size == 0 {
		return p
	}
	return Point{X: p.X * length / size, Y: p.Y * length / size}
}
