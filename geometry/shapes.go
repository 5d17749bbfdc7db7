package geometry

import "math"

// ShapeKind tags a collection of line sequences with the end treatment its
// geometry implies. It gates which offset end type is used and whether
// endpoints are protected during degenerate-vertex removal.
type ShapeKind uint8

const (
	// ShapeFilled is a closed contour enclosing printable area.
	ShapeFilled ShapeKind = iota
	// ShapeClosed is a closed loop treated as a line, not an area.
	ShapeClosed
	// ShapeOpen is a polyline with two distinct endpoints.
	ShapeOpen
)

// NoIndex is the sentinel returned by index-producing queries when no
// contour or part matches. Callers must treat it as indeterminate, not as
// "outside".
const NoIndex = -1

// Polygons is an ordered collection of closed, fillable contours: the
// primary region type. Orientation is the sole outline/hole signal; the
// collection itself owns no nesting information.
type Polygons []Polygon

// ClosedPolylines is a collection of closed loops that are offset with
// closed-line end treatment instead of being treated as filled area.
type ClosedPolylines []Polygon

// OpenPolylines is a collection of open polyline fragments.
type OpenPolylines []Polygon

// Add appends the contours of other.
func (p *Polygons) Add(other Polygons) {
	*p = append(*p, other...)
}

// AddIfNotEmpty appends a contour unless it is empty.
func (p *Polygons) AddIfNotEmpty(poly Polygon) {
	if len(poly) > 0 {
		*p = append(*p, poly)
	}
}

// AddLine appends a two-point open segment. Used when a region collection
// is abused as scratch space for line geometry before stitching.
func (p *Polygons) AddLine(from, to Point) {
	*p = append(*p, Polygon{from, to})
}

// RemoveAt deletes the contour at index by swapping in the last contour.
// Order is not preserved.
func (p *Polygons) RemoveAt(index int) {
	s := *p
	if len(s) == 0 {
		return
	}
	if index < 0 || index >= len(s) {
		panic("geometry: contour index out of range")
	}
	s[index] = s[len(s)-1]
	*p = s[:len(s)-1]
}

// PointCount returns the total number of vertices across all contours.
func (p Polygons) PointCount() int {
	total := 0
	for _, poly := range p {
		total += len(poly)
	}
	return total
}

// Empty reports whether the collection holds no contours.
func (p Polygons) Empty() bool {
	return len(p) == 0
}

// Area returns the total signed enclosed area. Holes contribute their
// negative area, so a fully decomposed region reports its net area.
func (p Polygons) Area() float64 {
	var total float64
	for _, poly := range p {
		total += poly.Area()
	}
	return total
}

// Length returns the summed perimeter of all contours.
func (p Polygons) Length() int64 {
	var total int64
	for _, poly := range p {
		total += poly.Length()
	}
	return total
}

// Min returns the lower-left corner of the joint bounding box.
func (p Polygons) Min() Point {
	ret := Point{X: ptMax, Y: ptMax}
	for _, poly := range p {
		for _, pt := range poly {
			ret.X = min(ret.X, pt.X)
			ret.Y = min(ret.Y, pt.Y)
		}
	}
	return ret
}

// Max returns the upper-right corner of the joint bounding box.
func (p Polygons) Max() Point {
	ret := Point{X: ptMin, Y: ptMin}
	for _, poly := range p {
		for _, pt := range poly {
			ret.X = max(ret.X, pt.X)
			ret.Y = max(ret.Y, pt.Y)
		}
	}
	return ret
}

// Translate shifts all contours by delta, in place.
func (p Polygons) Translate(delta Point) {
	if delta.X == 0 && delta.Y == 0 {
		return
	}
	for _, poly := range p {
		poly.Translate(delta)
	}
}

// Scale multiplies all coordinates by ratio, in place. A ratio of 1 is a
// no-op.
func (p Polygons) Scale(ratio float64) {
	if ratio == 1 {
		return
	}
	for _, poly := range p {
		for i := range poly {
			poly[i] = Point{
				X: int64(math.Round(float64(poly[i].X) * ratio)),
				Y: int64(math.Round(float64(poly[i].Y) * ratio)),
			}
		}
	}
}

// ApplyMatrix transforms all contours in place.
func (p Polygons) ApplyMatrix(m PointMatrix) {
	for _, poly := range p {
		poly.ApplyMatrix(m)
	}
}

// ApplyMatrix3 transforms all contours in place with a homogeneous matrix.
func (p Polygons) ApplyMatrix3(m Point3Matrix) {
	for _, poly := range p {
		poly.ApplyMatrix3(m)
	}
}

// Clone returns an independent deep copy.
func (p Polygons) Clone() Polygons {
	out := make(Polygons, len(p))
	for i, poly := range p {
		out[i] = poly.Clone()
	}
	return out
}

// PolylineLength returns the summed open length of all fragments.
func (o OpenPolylines) PolylineLength() int64 {
	var total int64
	for _, line := range o {
		total += Polygon(line).PolylineLength()
	}
	return total
}

// SplitIntoSegments explodes every fragment into two-point segments.
func (o OpenPolylines) SplitIntoSegments() OpenPolylines {
	var out OpenPolylines
	for _, line := range o {
		for i := 1; i < len(line); i++ {
			out = append(out, Polygon{line[i-1], line[i]})
		}
	}
	return out
}

// PolygonsPart is one connected component of a region: element 0 is the
// outer contour and elements 1..n are the holes directly inside it.
type PolygonsPart Polygons

// Outline returns the outer contour of the part.
func (p PolygonsPart) Outline() Polygon {
	if len(p) == 0 {
		return nil
	}
	return p[0]
}

// Inside reports whether pt lies within the part: inside the outer
// contour and inside none of the holes. Holes strictly carve out area;
// there is no nested-hole recursion at this level.
func (p PolygonsPart) Inside(pt Point, borderResult bool) bool {
	if len(p) == 0 {
		return false
	}
	if !p[0].Inside(pt, borderResult) {
		return false
	}
	for _, hole := range p[1:] {
		if hole.Inside(pt, borderResult) {
			return false
		}
	}
	return true
}

// Area returns the part's enclosed area: the outline minus its holes.
func (p PolygonsPart) Area() float64 {
	return Polygons(p).Area()
}
