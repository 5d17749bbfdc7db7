package geometry

import (
	clipper "github.com/ctessum/go.clipper"
)

// Bridge to the clipping backend. Everything that crosses this file is
// copied: backend paths never alias engine storage and engine results
// never alias backend output.

// FillRule resolves ambiguous enclosed area at self-overlapping or nested
// contours.
type FillRule uint8

const (
	// FillNonZero counts signed crossings; overlapping same-winding
	// contours merge.
	FillNonZero FillRule = iota
	// FillEvenOdd alternates in/out at every crossing.
	FillEvenOdd
)

func (f FillRule) clipperFill() clipper.PolyFillType {
	if f == FillEvenOdd {
		return clipper.PftEvenOdd
	}
	return clipper.PftNonZero
}

// JoinType selects how offsetting rounds a corner.
type JoinType uint8

const (
	// JoinSquare truncates corners at the offset distance.
	JoinSquare JoinType = iota
	// JoinRound approximates circular arcs at corners.
	JoinRound
	// JoinMiter extends corners up to a miter limit ratio.
	JoinMiter
)

func (j JoinType) clipperJoin() clipper.JoinType {
	switch j {
	case JoinRound:
		return clipper.JtRound
	case JoinMiter:
		return clipper.JtMiter
	}
	return clipper.JtSquare
}

func toClipperPath(p Polygon) clipper.Path {
	path := make(clipper.Path, len(p))
	for i, pt := range p {
		path[i] = &clipper.IntPoint{X: clipper.CInt(pt.X), Y: clipper.CInt(pt.Y)}
	}
	return path
}

func toClipperPaths(polys []Polygon) clipper.Paths {
	paths := make(clipper.Paths, len(polys))
	for i, poly := range polys {
		paths[i] = toClipperPath(poly)
	}
	return paths
}

func fromClipperPath(path clipper.Path) Polygon {
	poly := make(Polygon, len(path))
	for i, pt := range path {
		poly[i] = Point{X: int64(pt.X), Y: int64(pt.Y)}
	}
	return poly
}

func fromClipperPaths(paths clipper.Paths) Polygons {
	polys := make(Polygons, len(paths))
	for i, path := range paths {
		polys[i] = fromClipperPath(path)
	}
	return polys
}

// boolOp runs one boolean operation through the backend. Degenerate or
// empty operands produce an empty result, never an error.
func boolOp(op clipper.ClipType, subject Polygons, clip Polygons, clipAs clipper.PolyType, fill FillRule) Polygons {
	c := clipper.NewClipper(clipper.IoNone)
	c.AddPaths(toClipperPaths(subject), clipper.PtSubject, true)
	if len(clip) > 0 {
		c.AddPaths(toClipperPaths(clip), clipAs, true)
	}
	solution, ok := c.Execute1(op, fill.clipperFill(), fill.clipperFill())
	if !ok {
		Logger().Warn("clipping backend rejected boolean input",
			"op", int(op), "subject", len(subject), "clip", len(clip))
		return Polygons{}
	}
	return fromClipperPaths(solution)
}

// unionTree self-unions the collection into the backend's nesting tree:
// child depth alternates outline/hole.
func unionTree(p Polygons, fill FillRule) *clipper.PolyTree {
	c := clipper.NewClipper(clipper.IoNone)
	c.AddPaths(toClipperPaths(p), clipper.PtSubject, true)
	tree, ok := c.Execute2(clipper.CtUnion, fill.clipperFill(), fill.clipperFill())
	if !ok || tree == nil {
		Logger().Warn("clipping backend rejected union input", "contours", len(p))
		return clipper.NewPolyTree()
	}
	return tree
}

// pointInPolygon classifies pt against one contour: +1 inside, 0 outside,
// -1 exactly on the boundary.
func pointInPolygon(pt Point, poly Polygon) int {
	ip := &clipper.IntPoint{X: clipper.CInt(pt.X), Y: clipper.CInt(pt.Y)}
	return clipper.PointInPolygon(ip, toClipperPath(poly))
}
