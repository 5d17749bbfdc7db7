package geometry

import "sort"

// MakeConvex replaces the collection with the convex hull of all its
// points, as a single contour. Original contour structure is discarded.
//
// Andrew's monotone chain: points are sorted by (X, Y); one left-to-right
// sweep and one right-to-left sweep each extend a chain, popping accepted
// points while the candidate would produce a non-left turn, so the two
// sweeps together close the full hull.
func (p *Polygons) MakeConvex() {
	if p.Empty() {
		return
	}

	points := make([]Point, 0, p.PointCount())
	for _, poly := range *p {
		points = append(points, poly...)
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].X == points[j].X {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})

	var hull Polygon
	extend := func(sorted []Point) {
		hull = append(hull, sorted[0])
		for i := 1; i < len(sorted); i++ {
			current := sorted[i-1]
			after := sorted[i]
			if pointIsLeftOfLine(current, hull[len(hull)-1], after) < 0 {
				// Track backwards: pop while the chain has been sitting in a
				// concave pocket, or while the closing turn against the
				// chain's own start is non-convex.
				for len(hull) >= 2 &&
					(pointIsLeftOfLine(hull[len(hull)-1], hull[len(hull)-2], current) >= 0 ||
						pointIsLeftOfLine(hull[len(hull)-1], hull[len(hull)-2], hull[0]) > 0) {
					hull = hull[:len(hull)-1]
				}
				hull = append(hull, current)
			}
		}
	}

	extend(points)
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	extend(points)

	*p = Polygons{hull}
}
