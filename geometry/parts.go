package geometry

import (
	clipper "github.com/ctessum/go.clipper"
)

// Part decomposition. The collection is self-unioned into the backend's
// nesting tree and the tree is flattened with explicit worklists; nothing
// here recurses, so pathological nesting depth cannot exhaust the call
// stack.

// SplitIntoParts decomposes the region into connected components, each an
// outer contour plus its directly-nested holes. Outlines nested inside
// holes start parts of their own, recursively. With unionAll set the
// self-union uses the non-zero fill rule, merging overlapping contours
// instead of xor-ing them.
func (p Polygons) SplitIntoParts(unionAll bool) []PolygonsPart {
	fill := FillEvenOdd
	if unionAll {
		fill = FillNonZero
	}
	tree := unionTree(p, fill)

	var ret []PolygonsPart
	// Worklist of outline nodes; each starts one part.
	outlines := childNodes(&tree.PolyNode)
	for len(outlines) > 0 {
		node := outlines[0]
		outlines = outlines[1:]

		part := PolygonsPart{fromClipperPath(node.Contour())}
		for _, hole := range node.Childs() {
			part = append(part, fromClipperPath(hole.Contour()))
			// Depth-2 children are outlines again.
			outlines = append(outlines, hole.Childs()...)
		}
		ret = append(ret, part)
	}
	return ret
}

// SortByNesting buckets every contour of the self-unioned region by
// nesting depth: index 0 holds all outermost outlines, index 1 their
// holes, index 2 outlines nested inside those holes, and so on.
func (p Polygons) SortByNesting() []Polygons {
	tree := unionTree(p, FillEvenOdd)

	type entry struct {
		node  *clipper.PolyNode
		depth int
	}
	stack := make([]entry, 0, len(p))
	for _, child := range childNodes(&tree.PolyNode) {
		stack = append(stack, entry{child, 0})
	}

	var ret []Polygons
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for len(ret) <= e.depth {
			ret = append(ret, Polygons{})
		}
		ret[e.depth] = append(ret[e.depth], fromClipperPath(e.node.Contour()))
		for _, child := range e.node.Childs() {
			stack = append(stack, entry{child, e.depth + 1})
		}
	}
	return ret
}

// OutsidePolygons returns only the outermost outlines of the self-unioned
// region, dropping all holes and nested structure.
func (p Polygons) OutsidePolygons() Polygons {
	tree := unionTree(p, FillEvenOdd)
	var ret Polygons
	for _, child := range childNodes(&tree.PolyNode) {
		ret = append(ret, fromClipperPath(child.Contour()))
	}
	return ret
}

// RemoveEmptyHoles returns the region with all empty holes filled in: a
// hole survives only if an outline is nested inside it.
func (p Polygons) RemoveEmptyHoles() Polygons {
	return p.filterHoles(true)
}

// EmptyHoles returns only the holes that contain no nested outline, as
// plain contours. The walk descends uniformly, so childless holes are
// collected at every nesting depth, not just the first level.
func (p Polygons) EmptyHoles() Polygons {
	return p.filterHoles(false)
}

// filterHoles walks outline nodes of the union tree. With keepFilled set
// it rebuilds the region keeping outlines and only the holes that contain
// further outlines; otherwise it collects exactly the childless holes.
func (p Polygons) filterHoles(keepFilled bool) Polygons {
	tree := unionTree(p, FillEvenOdd)

	var ret Polygons
	outlines := childNodes(&tree.PolyNode)
	for len(outlines) > 0 {
		node := outlines[0]
		outlines = outlines[1:]

		if keepFilled {
			ret = append(ret, fromClipperPath(node.Contour()))
		}
		for _, hole := range node.Childs() {
			if (hole.ChildCount() > 0) == keepFilled {
				ret = append(ret, fromClipperPath(hole.Contour()))
			}
			outlines = append(outlines, hole.Childs()...)
		}
	}
	return ret
}

// childNodes returns a copy of a node's child list, safe to use as the
// initial worklist.
func childNodes(node *clipper.PolyNode) []*clipper.PolyNode {
	childs := node.Childs()
	out := make([]*clipper.PolyNode, len(childs))
	copy(out, childs)
	return out
}
