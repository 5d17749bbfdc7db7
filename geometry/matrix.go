package geometry

import "math"

// PointMatrix is a 2x2 linear transformation applied to fixed-point
// points. Coefficients are stored as float64; results are rounded back to
// integer coordinates. It represents:
//
//	x' = A*x + B*y
//	y' = C*x + D*y
type PointMatrix struct {
	A, B float64
	C, D float64
}

// IdentityMatrix returns the identity transformation.
func IdentityMatrix() PointMatrix {
	return PointMatrix{A: 1, D: 1}
}

// RotationMatrix returns a rotation by angle radians, counter-clockwise.
func RotationMatrix(angle float64) PointMatrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return PointMatrix{A: cos, B: -sin, C: sin, D: cos}
}

// ScaleMatrix returns a scaling transformation.
func ScaleMatrix(x, y float64) PointMatrix {
	return PointMatrix{A: x, D: y}
}

// Apply transforms a point, rounding the result to integer coordinates.
func (m PointMatrix) Apply(p Point) Point {
	x := float64(p.X)
	y := float64(p.Y)
	return Point{
		X: int64(math.Round(m.A*x + m.B*y)),
		Y: int64(math.Round(m.C*x + m.D*y)),
	}
}

// Unapply transforms a point by the inverse matrix. A singular matrix
// returns the point unchanged.
func (m PointMatrix) Unapply(p Point) Point {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return p
	}
	x := float64(p.X)
	y := float64(p.Y)
	return Point{
		X: int64(math.Round((m.D*x - m.B*y) / det)),
		Y: int64(math.Round((m.A*y - m.C*x) / det)),
	}
}

// Point3Matrix is a 3x3 homogeneous transformation, composing rotation,
// scaling and translation in one application:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Point3Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity3Matrix returns the identity transformation.
func Identity3Matrix() Point3Matrix {
	return Point3Matrix{A: 1, E: 1}
}

// TranslationMatrix returns a translation by delta.
func TranslationMatrix(delta Point) Point3Matrix {
	return Point3Matrix{A: 1, C: float64(delta.X), E: 1, F: float64(delta.Y)}
}

// Compose3 lifts a PointMatrix into a Point3Matrix with zero translation.
func Compose3(m PointMatrix) Point3Matrix {
	return Point3Matrix{A: m.A, B: m.B, D: m.C, E: m.D}
}

// Multiply composes two transformations (m applied after other).
func (m Point3Matrix) Multiply(other Point3Matrix) Point3Matrix {
	return Point3Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point, rounding the result to integer coordinates.
func (m Point3Matrix) Apply(p Point) Point {
	x := float64(p.X)
	y := float64(p.Y)
	return Point{
		X: int64(math.Round(m.A*x + m.B*y + m.C)),
		Y: int64(math.Round(m.D*x + m.E*y + m.F)),
	}
}
