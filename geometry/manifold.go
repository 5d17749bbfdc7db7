package geometry

// EnsureManifold splits vertices that occur more than once across the
// collection. A shape touching itself (or a sibling) in a single point is
// non-manifold for downstream consumers that walk the outline; subtracting
// a tiny diamond around each duplicate vertex pulls the touching contours
// apart.
func (p *Polygons) EnsureManifold() {
	seen := make(map[Point]struct{})
	var duplicates []Point
	for _, poly := range *p {
		for _, pt := range poly {
			if _, ok := seen[pt]; ok {
				duplicates = append(duplicates, pt)
			}
			seen[pt] = struct{}{}
		}
	}
	if len(duplicates) == 0 {
		return
	}

	var removal Polygons
	for _, pt := range duplicates {
		removal = append(removal, Polygon{
			pt.Add(Point{0, 5}),
			pt.Add(Point{5, 0}),
			pt.Add(Point{0, -5}),
			pt.Add(Point{-5, 0}),
		})
	}
	*p = p.Difference(removal)
}
