package geometry

import "math"

// Cleanup passes for the numerical artifacts that accumulate across a
// pipeline: near-straight vertices, zero-length spikes, micro-areas and
// leftover duplicate shapes.

// RemoveColinearEdges drops vertices whose incident edges deviate from a
// straight line by less than maxDeviation radians. Contours collapsing
// below 3 points are removed wholesale.
func (p *Polygons) RemoveColinearEdges(maxDeviation float64) {
	polys := *p
	for i := 0; i < len(polys); i++ {
		polys[i] = removeColinear(polys[i], maxDeviation)
		if len(polys[i]) < 3 {
			p.RemoveAt(i)
			polys = *p
			i--
		}
	}
}

func removeColinear(poly Polygon, maxDeviation float64) Polygon {
	for {
		n := len(poly)
		if n <= 3 {
			return poly
		}
		// Mark all removals against the unchanged contour, then compact
		// once. Neighboring straight vertices are removed one sweep at a
		// time so the survivor of each pair anchors the next sweep.
		drop := make([]bool, n)
		removed := 0
		for i := 0; i < n; i++ {
			prevIdx := (i - 1 + n) % n
			nextIdx := (i + 1) % n
			if drop[prevIdx] {
				continue
			}
			angle := angleLeft(poly[prevIdx], poly[i], poly[nextIdx])
			if angle >= math.Pi {
				angle -= math.Pi // map [pi, 2*pi] onto [0, pi]
			}
			if angle <= maxDeviation || angle >= math.Pi-maxDeviation {
				drop[i] = true
				removed++
			}
		}
		if removed == 0 {
			return poly
		}
		kept := make(Polygon, 0, n-removed)
		for i, pt := range poly {
			if !drop[i] {
				kept = append(kept, pt)
			}
		}
		poly = kept
	}
}

// RemoveDegenerateVerts removes vertices whose incident edges point in
// exactly opposite directions, including zero-length edges. Removal of a
// vertex can expose a new degeneracy at the previous one; the pass
// cascades backward until the contour is clean. Contours left with fewer
// than 3 points are dropped.
func (p *Polygons) RemoveDegenerateVerts() {
	removeDegenerateVerts((*[]Polygon)(p), ShapeFilled)
}

// RemoveDegenerateVerts behaves like the Polygons pass, but protects the
// two endpoints of every fragment: an open polyline's ends are real
// geometry even when the line doubles back on itself.
func (o *OpenPolylines) RemoveDegenerateVerts() {
	removeDegenerateVerts((*[]Polygon)(o), ShapeOpen)
}

// RemoveDegenerateVerts removes spike vertices from closed loops.
func (c *ClosedPolylines) RemoveDegenerateVerts() {
	removeDegenerateVerts((*[]Polygon)(c), ShapeClosed)
}

// isDegenerate reports whether the two edges meeting at a vertex point in
// exactly opposite directions, or either edge has zero length.
func isDegenerate(last, now, next Point) bool {
	lastLine := now.Sub(last)
	nextLine := next.Sub(now)
	if (lastLine == Point{}) || (nextLine == Point{}) {
		return true
	}
	return lastLine.Cross(nextLine) == 0 && lastLine.Dot(nextLine) < 0
}

func removeDegenerateVerts(lines *[]Polygon, kind ShapeKind) {
	forPolyline := kind == ShapeOpen
	for polyIdx := 0; polyIdx < len(*lines); polyIdx++ {
		poly := (*lines)[polyIdx]
		var result Polygon

		startVertex := 0
		endVertex := len(poly)
		if forPolyline {
			startVertex = 1
			endVertex = len(poly) - 1
		}
		result = append(result, poly[:startVertex]...)

		changed := false
		for idx := startVertex; idx < endVertex; idx++ {
			var last Point
			if len(result) == 0 {
				last = poly[len(poly)-1]
			} else {
				last = result[len(result)-1]
			}
			if idx+1 >= len(poly) && len(result) == 0 {
				break
			}
			var next Point
			if idx+1 >= len(poly) {
				next = result[0]
			} else {
				next = poly[idx+1]
			}
			if isDegenerate(last, poly[idx], next) {
				changed = true
				// Removing this vertex can make the previously accepted one
				// degenerate in turn; unwind as far as needed.
				for len(result) > 1 && isDegenerate(result[len(result)-2], result[len(result)-1], next) {
					result = result[:len(result)-1]
				}
			} else {
				result = append(result, poly[idx])
			}
		}
		result = append(result, poly[endVertex:]...)

		if !changed {
			continue
		}
		if forPolyline || len(result) > 2 {
			(*lines)[polyIdx] = result
		} else {
			s := *lines
			s[polyIdx] = s[len(s)-1]
			*lines = s[:len(s)-1]
			polyIdx--
		}
	}
}

// RemoveSmallAreas drops contours enclosing less than minArea (in square
// millimetres). With removeHoles set, outlines and holes are filtered
// alike. Without it, only small outlines are dropped, and a small hole is
// removed only when its first point lies inside one of the dropped
// outlines, since a hole whose parent outline survives must survive too.
func (p *Polygons) RemoveSmallAreas(minArea float64, removeHoles bool) {
	polys := *p
	newEnd := len(polys)

	if removeHoles {
		for i := 0; i < newEnd; {
			if math.Abs(areaToMM2(polys[i].Area())) < minArea {
				newEnd--
				polys[i] = polys[newEnd]
				continue // the contour just swapped in is checked next
			}
			i++
		}
		*p = polys[:newEnd]
		return
	}

	// Small outlines migrate past newEnd; small holes are remembered for
	// the containment check below.
	var smallHoles []int
	for i := 0; i < newEnd; {
		area := areaToMM2(polys[i].Area())
		if math.Abs(area) < minArea {
			if area >= 0 {
				newEnd--
				if i < newEnd {
					polys[i], polys[newEnd] = polys[newEnd], polys[i]
					continue
				}
				break // don't self-swap the last contour
			}
			smallHoles = append(smallHoles, i)
		}
		i++
	}

	// Remove small holes whose first point sits inside a removed outline.
	// First-point containment is a heuristic: for concave removed
	// outlines it can misclassify, which is accepted here.
	// Iterating in reverse keeps unprocessed hole indices stable.
	removedOutlinesStart := newEnd
	for h := len(smallHoles) - 1; h >= 0; h-- {
		holeIdx := smallHoles[h]
		for o := removedOutlinesStart; o < len(polys); o++ {
			if len(polys[holeIdx]) > 0 && polys[o].Inside(polys[holeIdx][0], false) {
				newEnd--
				polys[holeIdx] = polys[newEnd]
				break
			}
		}
	}
	*p = polys[:newEnd]
}

// RemoveSmallCircumference drops contours with a perimeter below
// minCircumference, holes included only when removeHoles is set.
func (p *Polygons) RemoveSmallCircumference(minCircumference int64, removeHoles bool) {
	p.RemoveSmallAreaCircumference(0, minCircumference, removeHoles)
}

// RemoveSmallAreaCircumference drops outlines below either threshold.
// Holes following a dropped outline in traversal order are dropped with
// it; other holes are kept unless removeHoles subjects them to the same
// thresholds. minArea is in square millimetres, minCircumference in
// units.
func (p *Polygons) RemoveSmallAreaCircumference(minArea float64, minCircumference int64, removeHoles bool) {
	var kept Polygons
	outlineRemoved := false
	for _, poly := range *p {
		area := areaToMM2(poly.Area())
		circumference := poly.Length()
		isOutline := area >= 0

		switch {
		case isOutline:
			if circumference >= minCircumference && math.Abs(area) >= minArea {
				kept = append(kept, poly)
				outlineRemoved = false
			} else {
				outlineRemoved = true
			}
		case outlineRemoved:
			// The containing outline was removed; the hole goes with it.
		case !removeHoles || (circumference >= minCircumference && math.Abs(area) >= minArea):
			kept = append(kept, poly)
		}
	}
	*p = kept
}

// Remove returns the receiver without any contour that matches a contour
// of toBeRemoved point-for-point within tolerance, up to a cyclic
// rotation offset. This is sequence comparison, not boolean difference:
// it removes known-identical shapes even when their enclosed areas would
// cancel imperfectly.
func (p Polygons) Remove(toBeRemoved Polygons, tolerance int64) Polygons {
	var result Polygons
	for _, keep := range p {
		if len(keep) > 0 && matchesAny(keep, toBeRemoved, tolerance) {
			continue
		}
		result = append(result, keep)
	}
	return result
}

func matchesAny(keep Polygon, candidates Polygons, tolerance int64) bool {
	for _, rem := range candidates {
		if len(rem) != len(keep) || len(rem) == 0 {
			continue
		}
		// Align on rem's vertex closest to keep's first point, then
		// compare the full cycles.
		closest := 0
		smallest := int64(-1)
		for i, pt := range rem {
			d2 := pt.Sub(keep[0]).Size2()
			if smallest < 0 || d2 < smallest {
				smallest = d2
				closest = i
			}
		}
		if smallest > tolerance*tolerance {
			continue
		}
		match := true
		for i := range keep {
			d2 := rem[(closest+i)%len(rem)].Sub(keep[i]).Size2()
			if d2 > tolerance*tolerance {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// areaToMM2 converts a signed area in square units to square millimetres.
func areaToMM2(area float64) float64 {
	return area / (MicronsPerMillimeter * MicronsPerMillimeter)
}
