// Package geometry implements the 2D polygon-region engine used by the
// slicing pipeline.
//
// # Overview
//
// A sliced layer is a set of closed contours in a fixed-point integer
// coordinate space (micrometres). This package represents such regions as
// [Polygons], composes them with boolean set operations, grows and shrinks
// them by signed distances, decomposes them into connected parts (one outer
// contour plus its holes), and cleans up the numerical artifacts that
// accumulate across a pipeline: degenerate vertices, micro-areas, duplicate
// points and jagged corners.
//
// # Quick start
//
//	square := geometry.Polygons{{
//		{0, 0}, {10000, 0}, {10000, 10000}, {0, 10000},
//	}}
//
//	inset := square.Offset(-3000, geometry.JoinRound, 0)
//	parts := inset.SplitIntoParts(false)
//
// # Conventions
//
// Contour orientation carries polarity: a contour with positive signed area
// is an outline, one with negative area is a hole. All composing operations
// return fresh, independently owned geometry; they never alias input
// storage. Operations are synchronous and perform no internal locking;
// callers that want parallelism must partition work across independent
// Polygons values.
//
// Boolean composition and offsetting are delegated to the Clipper port at
// github.com/ctessum/go.clipper; this package owns operand tagging, fill
// rule selection, shape-kind end treatment and the decomposition and
// cleanup passes built on top.
package geometry
