package geometry

import "math"

// Smoothing passes. All variants work per contour and never emit a
// contour with fewer than 3 points: contours that would shrink below that
// are dropped. Structural changes are collected against a stable snapshot
// of each contour and applied in one pass afterwards; the live sequence
// is never resized while positions into it are held.

// Smooth removes short zig-zag jogs: where the middle segment of an
// S-shaped triple of edges is shorter than removeLength, the two middle
// vertices collapse into their midpoint. Contours of exactly 3 points are
// returned unchanged.
func (p Polygons) Smooth(removeLength int64) Polygons {
	var ret Polygons
	for _, poly := range p {
		if len(poly) < 3 {
			continue
		}
		if len(poly) == 3 {
			ret = append(ret, poly.Clone())
			continue
		}
		smoothed := smoothZigzags(poly, removeLength)
		if len(smoothed) >= 3 {
			ret = append(ret, smoothed)
		}
	}
	return ret
}

func smoothZigzags(poly Polygon, removeLength int64) Polygon {
	n := len(poly)
	// Decide all removals against the unmodified snapshot first, then
	// build the result in one pass.
	drop := make([]bool, n)
	replace := make(map[int]Point)
	kept := n

	for idx := 0; idx < n; idx++ {
		next := (idx + 1) % n
		if _, replaced := replace[idx]; replaced || drop[idx] || drop[next] {
			continue
		}
		// The wrap-around window must not drop a vertex an earlier window
		// already merged into a midpoint.
		if _, replaced := replace[next]; replaced {
			continue
		}
		last := poly[(idx-1+n)%n]
		now := poly[idx]
		nxt := poly[next]
		after := poly[(idx+2)%n]

		if !nxt.Sub(now).ShorterThan(removeLength) {
			continue
		}
		turnIn := now.Sub(last).Cross(nxt.Sub(now))
		turnOut := nxt.Sub(now).Cross(after.Sub(nxt))
		// Opposite turns around a short middle segment: a zigzag. Same-sign
		// turns form a pocket that smoothing must not flatten.
		if turnIn == 0 || turnOut == 0 || (turnIn > 0) == (turnOut > 0) {
			continue
		}
		if kept-1 < 3 {
			continue
		}
		replace[idx] = Segment{Start: now, End: nxt}.Midpoint()
		drop[next] = true
		kept--
	}

	result := make(Polygon, 0, kept)
	for idx := 0; idx < n; idx++ {
		if drop[idx] {
			continue
		}
		if mid, ok := replace[idx]; ok {
			result = append(result, mid)
			continue
		}
		result = append(result, poly[idx])
	}
	return result
}

// Smooth2 is corner-cutting with a guard for small contours: contours
// whose area is below minArea or that have 5 or fewer points pass through
// unchanged, because optimally simplifying a 5-point contour degenerates
// to a triangle. Where both edges at a vertex are shorter than
// removeLength the vertex is dropped, and the next vertex is kept as-is
// so removals cannot cascade along the contour.
func (p Polygons) Smooth2(removeLength int64, minArea float64) Polygons {
	var ret Polygons
	for _, poly := range p {
		if len(poly) == 0 {
			continue
		}
		if poly.Area() < minArea || len(poly) <= 5 {
			ret = append(ret, poly.Clone())
			continue
		}
		ret = append(ret, smooth2Contour(poly, removeLength))
	}
	return ret
}

func smooth2Contour(poly Polygon, removeLength int64) Polygon {
	result := Polygon{poly[0]}
	for idx := 1; idx < len(poly); idx++ {
		last := poly[idx-1]
		now := poly[idx]
		next := poly[(idx+1)%len(poly)]
		if now.Sub(last).ShorterThan(removeLength) && next.Sub(now).ShorterThan(removeLength) {
			idx++ // skip the next line piece, so edge removal cannot escalate
			if idx < len(poly) {
				result = append(result, poly[idx])
			}
		} else {
			result = append(result, now)
		}
	}
	return result
}

// SmoothOutward cuts sharp corners with straight shortcuts no longer than
// shortcutLength, but only where the cut cannot reduce enclosed area: on
// an outline only concave spikes are cut, on a hole only convex ones.
// maxAngle is the largest interior corner angle, in degrees, still
// considered sharp.
func (p Polygons) SmoothOutward(maxAngle float64, shortcutLength int64) Polygons {
	var ret Polygons
	for _, poly := range p {
		if len(poly) < 3 {
			continue
		}
		if len(poly) == 3 {
			ret = append(ret, poly.Clone())
			continue
		}
		smoothed := smoothOutwardContour(poly, maxAngle, shortcutLength)
		if len(smoothed) >= 3 {
			ret = append(ret, smoothed)
		}
	}
	return ret
}

func smoothOutwardContour(poly Polygon, maxAngle float64, shortcutLength int64) Polygon {
	n := len(poly)
	outline := poly.Orientation()
	result := make(Polygon, 0, n)

	for idx := 0; idx < n; idx++ {
		p0 := poly[(idx-1+n)%n]
		p1 := poly[idx]
		p2 := poly[(idx+1)%n]
		v01 := p1.Sub(p0)
		v12 := p2.Sub(p1)

		interior := 180 - angleBetweenDegrees(v01, v12)
		if interior >= maxAngle {
			result = append(result, p1)
			continue
		}
		// Outward bias: cutting may only add filled area. On a CCW outline
		// that means right turns (reflex corners of the region); mirrored
		// for holes.
		cross := v01.Cross(v12)
		if cross == 0 || (cross > 0) == outline {
			result = append(result, p1)
			continue
		}

		cut := shortcutLength / 2
		lenIn := v01.Size()
		lenOut := v12.Size()
		backDist := min(cut, lenIn/2)
		fwdDist := min(cut, lenOut/2)
		if backDist == 0 || fwdDist == 0 {
			result = append(result, p1)
			continue
		}
		back := p1.Add(p0.Sub(p1).Normal(backDist))
		fwd := p1.Add(p2.Sub(p1).Normal(fwdDist))
		if back == fwd {
			result = append(result, back)
			continue
		}
		result = append(result, back, fwd)
	}
	return result
}

// SmoothCorners is the windowed corner-relief pass: a 4-point window
// slides over the cyclically extended contour, and where the middle
// segment is shorter than maxResolution while the window's segment angles
// deviate by at least fluidAngle (degrees), the two middle points are
// each shifted toward the window's outer points by smoothDistance, or
// deleted when the adjoining segment is too short to absorb the shift.
// Deletions are recorded in a removal set and applied once, after the
// full sweep.
func (p Polygons) SmoothCorners(maxResolution, smoothDistance int64, fluidAngle float64) Polygons {
	if smoothDistance == 0 {
		return p.Clone()
	}
	var ret Polygons
	for _, poly := range p {
		if len(poly) < 3 {
			continue
		}
		if len(poly) == 3 {
			ret = append(ret, poly.Clone())
			continue
		}
		smoothed := reliefContour(poly, maxResolution, smoothDistance, fluidAngle)
		if len(smoothed) >= 3 {
			ret = append(ret, smoothed)
		}
	}
	return ret
}

func reliefContour(poly Polygon, maxResolution, smoothDistance int64, fluidAngle float64) Polygon {
	n := len(poly)
	work := poly.Clone()
	toRemove := make(map[int]bool)
	maxResolution2 := maxResolution * maxResolution
	shiftThreshold := float64(2 * smoothDistance)

	for i := 0; i < n; i++ {
		i1 := (i + 1) % n
		i2 := (i + 2) % n
		i3 := (i + 3) % n
		if toRemove[i] || toRemove[i1] || toRemove[i2] {
			continue
		}
		p0, p1, p2, p3 := work[i], work[i1], work[i2], work[i3]

		if p2.Sub(p1).Size2() >= maxResolution2 {
			continue
		}
		if withinFluidDeviation(p0, p1, p2, p3, fluidAngle) {
			continue
		}

		d01 := math.Hypot(float64(p1.X-p0.X), float64(p1.Y-p0.Y))
		if d01 > shiftThreshold {
			work[i1] = p1.Add(p0.Sub(p1).Normal(smoothDistance))
		} else if n-len(toRemove) > 3 {
			toRemove[i1] = true
		}
		d23 := math.Hypot(float64(p3.X-p2.X), float64(p3.Y-p2.Y))
		if d23 > shiftThreshold {
			work[i2] = p2.Add(p3.Sub(p2).Normal(smoothDistance))
		} else if n-len(toRemove) > 3 {
			toRemove[i2] = true
		}
	}

	if len(toRemove) == 0 {
		return work
	}
	result := make(Polygon, 0, n-len(toRemove))
	for i, pt := range work {
		if !toRemove[i] {
			result = append(result, pt)
		}
	}
	return result
}

// withinFluidDeviation reports whether the corner formed by the window is
// already fluid: the angle of the middle segment deviates from the angles
// of the outer segments (all measured against the first segment) by less
// than fluidAngle degrees.
func withinFluidDeviation(p0, p1, p2, p3 Point, fluidAngle float64) bool {
	ab := p1.Sub(p0)
	bc := p2.Sub(p1)
	cd := p3.Sub(p2)
	return math.Abs(angleBetweenDegrees(ab, bc)-angleBetweenDegrees(ab, cd)) < fluidAngle
}
