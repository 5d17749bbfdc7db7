package geometry

// Inside reports whether pt lies within the region, by even-odd parity
// across all contours. A point exactly on any contour's boundary returns
// borderResult immediately; the test is exact integer arithmetic with no
// tolerance.
func (p Polygons) Inside(pt Point, borderResult bool) bool {
	insideCount := 0
	for _, poly := range p {
		switch pointInPolygon(pt, poly) {
		case -1:
			return borderResult
		case 1:
			insideCount++
		}
	}
	return insideCount%2 == 1
}

// FindInside returns the index of the contour that immediately encloses
// pt: among contours with odd crossing parity, the one whose nearest
// edge crossing to the right of pt is closest. With borderResult set, a point
// exactly on a contour returns that contour's index directly.
//
// When an even number of contours claim the point the input is
// self-overlapping or inconsistent; NoIndex is returned and must be
// treated as indeterminate, not as "outside".
func (p Polygons) FindInside(pt Point, borderResult bool) int {
	if len(p) == 0 {
		return NoIndex
	}

	minX := make([]int64, len(p))
	crossings := make([]int, len(p))
	for i := range minX {
		minX[i] = ptMax
	}

	for polyIdx, poly := range p {
		if len(poly) == 0 {
			continue
		}
		p0 := poly[len(poly)-1]
		for _, p1 := range poly {
			switch edgeCrossing(pt, p0, p1) {
			case 1:
				crossings[polyIdx]++
				if x := rayIntersectionX(pt, p0, p1); x < minX[polyIdx] {
					minX[polyIdx] = x
				}
			case 0:
				if borderResult {
					return polyIdx
				}
			}
			p0 = p1
		}
	}

	minXUneven := ptMax
	ret := NoIndex
	unevens := 0
	for i := range p {
		if crossings[i]%2 == 1 {
			unevens++
			if minX[i] < minXUneven {
				minXUneven = minX[i]
				ret = i
			}
		}
	}
	if unevens%2 == 0 {
		if unevens > 0 {
			Logger().Debug("findInside: inconsistent crossing parity",
				"point_x", pt.X, "point_y", pt.Y, "claimants", unevens)
		}
		ret = NoIndex
	}
	return ret
}
