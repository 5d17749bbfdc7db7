package geometry

// Polygon is one contour: an ordered sequence of points. When owned by a
// [Polygons] collection the last point connects implicitly back to the
// first; the closing point is never duplicated in storage. The same
// storage backs open polylines, whose endpoints stay distinct.
type Polygon []Point

// Segment is one edge of a contour or polyline.
type Segment struct {
	Start, End Point
}

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() Point {
	return Point{X: (s.Start.X + s.End.X) / 2, Y: (s.Start.Y + s.End.Y) / 2}
}

// Area returns the signed enclosed area in square units, by the shoelace
// formula. Positive for counter-clockwise outlines, negative for holes.
// Contours with fewer than 3 points enclose nothing.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	var doubled int64
	prev := p[len(p)-1]
	for _, pt := range p {
		doubled += prev.X*pt.Y - pt.X*prev.Y
		prev = pt
	}
	return float64(doubled) / 2
}

// Orientation reports whether the contour is an outline (non-negative
// signed area) rather than a hole.
func (p Polygon) Orientation() bool {
	return p.Area() >= 0
}

// Length returns the perimeter, including the implicit closing edge.
func (p Polygon) Length() int64 {
	if len(p) < 2 {
		return 0
	}
	var length int64
	prev := p[len(p)-1]
	for _, pt := range p {
		length += pt.Sub(prev).Size()
		prev = pt
	}
	return length
}

// PolylineLength returns the open length, without a closing edge.
func (p Polygon) PolylineLength() int64 {
	var length int64
	for i := 1; i < len(p); i++ {
		length += p[i].Sub(p[i-1]).Size()
	}
	return length
}

// Segments returns the edges of the closed contour, wrapping from the
// last point back to the first.
func (p Polygon) Segments() []Segment {
	if len(p) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(p))
	for i := range p {
		segs = append(segs, Segment{Start: p[i], End: p[(i+1)%len(p)]})
	}
	return segs
}

// PolylineSegments returns the edges of the open polyline.
func (p Polygon) PolylineSegments() []Segment {
	if len(p) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		segs = append(segs, Segment{Start: p[i-1], End: p[i]})
	}
	return segs
}

// Min returns the lower-left corner of the bounding box.
func (p Polygon) Min() Point {
	ret := Point{X: ptMax, Y: ptMax}
	for _, pt := range p {
		ret.X = min(ret.X, pt.X)
		ret.Y = min(ret.Y, pt.Y)
	}
	return ret
}

// Max returns the upper-right corner of the bounding box.
func (p Polygon) Max() Point {
	ret := Point{X: ptMin, Y: ptMin}
	for _, pt := range p {
		ret.X = max(ret.X, pt.X)
		ret.Y = max(ret.Y, pt.Y)
	}
	return ret
}

// Inside reports whether pt lies within the contour. A point exactly on
// the boundary returns borderResult.
func (p Polygon) Inside(pt Point, borderResult bool) bool {
	switch pointInPolygon(pt, p) {
	case -1:
		return borderResult
	case 1:
		return true
	}
	return false
}

// Reverse flips the winding direction in place, turning an outline into a
// hole and vice versa.
func (p Polygon) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// Translate shifts every point by delta, in place.
func (p Polygon) Translate(delta Point) {
	for i := range p {
		p[i] = p[i].Add(delta)
	}
}

// ApplyMatrix transforms every point in place.
func (p Polygon) ApplyMatrix(m PointMatrix) {
	for i := range p {
		p[i] = m.Apply(p[i])
	}
}

// ApplyMatrix3 transforms every point in place with a homogeneous matrix.
func (p Polygon) ApplyMatrix3(m Point3Matrix) {
	for i := range p {
		p[i] = m.Apply(p[i])
	}
}

// ClosestPointIndex returns the index of the vertex nearest to pt, or -1
// for an empty contour.
func (p Polygon) ClosestPointIndex(pt Point) int {
	best := -1
	bestDist2 := int64(-1)
	for i, q := range p {
		d2 := q.Sub(pt).Size2()
		if bestDist2 < 0 || d2 < bestDist2 {
			bestDist2 = d2
			best = i
		}
	}
	return best
}

// Clone returns an independent copy of the contour.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

const (
	ptMax = int64(1) << 62
	ptMin = -ptMax
)
