package geometry

import "math"

// Low-level integer line predicates. Everything here is exact: products of
// micrometre coordinates stay within int64 for the coordinate ranges the
// pipeline produces.

// pointIsLeftOfLine returns a positive value when p lies to the left of
// the directed line a->b, negative when to the right, and zero when
// exactly on it.
func pointIsLeftOfLine(p, a, b Point) int64 {
	return b.Sub(a).Cross(p.Sub(a))
}

// edgeCrossing classifies the edge p0->p1 against a horizontal ray cast
// from p toward +X:
//
//	+1  the edge crosses the ray strictly right of p
//	 0  p lies exactly on the edge
//	-1  no crossing
//
// Crossings use the half-open rule [minY, maxY) so a ray through a shared
// vertex is counted once.
func edgeCrossing(p, p0, p1 Point) int {
	minX, maxX := p0.X, p1.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if maxX < p.X {
		return -1
	}
	if p0.Y == p1.Y {
		if p.Y == p0.Y && minX <= p.X && p.X <= maxX {
			return 0
		}
		return -1
	}
	// cross = (intersectX - p.X) * (p1.Y - p0.Y)
	cross := (p1.X-p0.X)*(p.Y-p0.Y) - (p.X-p0.X)*(p1.Y-p0.Y)
	minY, maxY := p0.Y, p1.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	if cross == 0 && minY <= p.Y && p.Y <= maxY && minX <= p.X && p.X <= maxX {
		return 0
	}
	if (p0.Y > p.Y) != (p1.Y > p.Y) {
		if (cross > 0) == (p1.Y > p0.Y) && cross != 0 {
			return 1
		}
	}
	return -1
}

// rayIntersectionX returns the X coordinate where the edge p0->p1 meets
// the horizontal line through p. Horizontal edges report p0.X.
func rayIntersectionX(p, p0, p1 Point) int64 {
	if p1.Y == p0.Y {
		return p0.X
	}
	return p0.X + (p1.X-p0.X)*(p.Y-p0.Y)/(p1.Y-p0.Y)
}

// angleLeft returns the angle at b, measured on the left-hand side when
// travelling a -> b -> c, in the range [0, 2*pi).
func angleLeft(a, b, c Point) float64 {
	ba := a.Sub(b)
	bc := c.Sub(b)
	dot := ba.Dot(bc)
	det := ba.Cross(bc)
	if det == 0 && dot == 0 {
		return 0
	}
	angle := -math.Atan2(float64(det), float64(dot))
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// angleBetweenDegrees returns the unsigned angle between two vectors in
// degrees. A zero-length vector has no angle; 90 degrees is returned as
// the defined sentinel rather than dividing by zero.
func angleBetweenDegrees(v0, v1 Point) float64 {
	mag0 := math.Hypot(float64(v0.X), float64(v0.Y))
	mag1 := math.Hypot(float64(v1.X), float64(v1.Y))
	if mag0 == 0 || mag1 == 0 {
		return 90
	}
	cos := float64(v0.Dot(v1)) / (mag0 * mag1)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}
