package geometry

import (
	clipper "github.com/ctessum/go.clipper"
)

// Boolean composition. All four set operations are pure: operands are
// never mutated and results never alias operand storage.

// Union returns the region covered by the receiver or other, under the
// non-zero fill rule. Pass nil to self-union, which also normalizes
// self-overlapping input into clean nested contours.
func (p Polygons) Union(other Polygons) Polygons {
	return p.UnionWithRule(other, FillNonZero)
}

// UnionWithRule is Union under an explicit fill rule. Both operands are
// tagged subject, matching how overlapping same-role regions merge.
func (p Polygons) UnionWithRule(other Polygons, fill FillRule) Polygons {
	c := clipper.NewClipper(clipper.IoNone)
	c.AddPaths(toClipperPaths(p), clipper.PtSubject, true)
	if len(other) > 0 {
		c.AddPaths(toClipperPaths(other), clipper.PtSubject, true)
	}
	solution, ok := c.Execute1(clipper.CtUnion, fill.clipperFill(), fill.clipperFill())
	if !ok {
		Logger().Warn("clipping backend rejected union input",
			"subject", len(p), "other", len(other))
		return Polygons{}
	}
	return fromClipperPaths(solution)
}

// Intersection returns the region covered by both the receiver and other.
func (p Polygons) Intersection(other Polygons) Polygons {
	return boolOp(clipper.CtIntersection, p, other, clipper.PtClip, FillNonZero)
}

// Difference returns the receiver's region minus other's.
func (p Polygons) Difference(other Polygons) Polygons {
	return boolOp(clipper.CtDifference, p, other, clipper.PtClip, FillNonZero)
}

// Xor returns the region covered by exactly one of the operands, under
// the even-odd fill rule.
func (p Polygons) Xor(other Polygons) Polygons {
	return boolOp(clipper.CtXor, p, other, clipper.PtClip, FillEvenOdd)
}

// ProcessEvenOdd resolves the receiver's own self-overlap under the given
// fill rule, without a second operand.
func (p Polygons) ProcessEvenOdd(fill FillRule) Polygons {
	return boolOp(clipper.CtUnion, p, nil, clipper.PtClip, fill)
}

// IntersectionPolylines clips open polyline fragments to the filled
// region. With restitch set, the clipped fragments are reconnected within
// maxStitchDistance; fragments that closed into full loops are re-split
// into open polylines, because the result admits only polylines.
func (p Polygons) IntersectionPolylines(polylines OpenPolylines, restitch bool, maxStitchDistance int64) OpenPolylines {
	split := polylines.SplitIntoSegments()

	c := clipper.NewClipper(clipper.IoNone)
	for _, line := range split {
		c.AddPath(toClipperPath(line), clipper.PtSubject, false)
	}
	c.AddPaths(toClipperPaths(p), clipper.PtClip, true)
	tree, ok := c.Execute2(clipper.CtIntersection, clipper.PftNonZero, clipper.PftNonZero)
	if !ok || tree == nil {
		Logger().Warn("clipping backend rejected polyline intersection",
			"fragments", len(split), "contours", len(p))
		return OpenPolylines{}
	}

	var ret OpenPolylines
	for _, path := range c.OpenPathsFromPolyTree(tree) {
		ret = append(ret, fromClipperPath(path))
	}

	if restitch {
		const snapDistance = 10
		lines, closed := Stitch(ret, maxStitchDistance, snapDistance)
		ret = lines
		for _, poly := range closed {
			if len(poly) > 0 {
				ret = append(ret, poly)
			}
		}
	}
	return ret
}
