package geometry

import (
	clipper "github.com/ctessum/go.clipper"
)

// DefaultMiterLimit is the miter limit ratio applied when the caller
// passes a non-positive limit with JoinMiter.
const DefaultMiterLimit = 1.2

// offsetLines is the single offsetting code path for all three shape
// kinds. The kind decides the end treatment; filled shapes are
// self-unioned first because the backend's offsetter can loop forever on
// self-overlapping filled input. That union step is mandatory.
func offsetLines(lines []Polygon, kind ShapeKind, distance int64, join JoinType, miterLimit float64) Polygons {
	if distance == 0 {
		out := make(Polygons, len(lines))
		for i, line := range lines {
			out[i] = Polygon(line).Clone()
		}
		return out
	}
	if miterLimit <= 0 {
		miterLimit = DefaultMiterLimit
	}

	paths := lines
	var endType clipper.EndType
	switch kind {
	case ShapeFilled:
		paths = Polygons(lines).Union(nil)
		endType = clipper.EtClosedPolygon
	case ShapeClosed:
		endType = clipper.EtClosedLine
	default:
		if join == JoinMiter {
			endType = clipper.EtOpenSquare
		} else {
			endType = clipper.EtOpenRound
		}
	}

	co := clipper.NewClipperOffset()
	co.MiterLimit = miterLimit
	co.AddPaths(toClipperPaths(paths), join.clipperJoin(), endType)
	return fromClipperPaths(co.Execute(float64(distance)))
}

// Offset grows (positive) or shrinks (negative) the region by distance.
// Zero distance returns a copy.
func (p Polygons) Offset(distance int64, join JoinType, miterLimit float64) Polygons {
	return offsetLines(p, ShapeFilled, distance, join, miterLimit)
}

// Offset treats the loops as closed lines, producing a band on both sides
// of each loop.
func (c ClosedPolylines) Offset(distance int64, join JoinType, miterLimit float64) Polygons {
	return offsetLines(c, ShapeClosed, distance, join, miterLimit)
}

// Offset thickens the open fragments into filled outlines, with square
// ends for miter joins and round ends otherwise.
func (o OpenPolylines) Offset(distance int64, join JoinType, miterLimit float64) Polygons {
	return offsetLines(o, ShapeOpen, distance, join, miterLimit)
}

// TubeShape returns a tube around the region's boundary: the area between
// the boundary grown by outerOffset and shrunk by innerOffset.
func (p Polygons) TubeShape(innerOffset, outerOffset int64) Polygons {
	return p.Offset(outerOffset, JoinMiter, 0).Difference(p.Offset(-innerOffset, JoinMiter, 0))
}

// hullOvershoot is the scratch growth used by ApproxConvexHull: large
// enough that offsetting every contour outward merges any disjoint parts
// into one blob.
const hullOvershoot = 100 * MicronsPerMillimeter

// ApproxConvexHull returns a convex-ish hull of the region: every contour
// is ballooned outward until all parts merge, then the blob is shrunk
// back, leaving extraOutset of growth. Contours are offset one at a time
// because the offsetter cannot take self-overlapping input.
func (p Polygons) ApproxConvexHull(extraOutset int64) Polygons {
	var hull Polygons
	for _, poly := range p {
		co := clipper.NewClipperOffset()
		co.MiterLimit = DefaultMiterLimit
		co.AddPath(toClipperPath(poly), clipper.JtRound, clipper.EtClosedPolygon)
		hull.Add(fromClipperPaths(co.Execute(float64(hullOvershoot))))
	}
	return hull.Union(nil).Offset(-hullOvershoot+extraOutset, JoinRound, 0)
}
