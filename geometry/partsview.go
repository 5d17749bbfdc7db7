package geometry

// PartsView records which contours of a decomposed Polygons belong to
// which connected part, by index only: it owns positions, never
// geometry. Index 0 of every part record is that part's outer boundary in
// the reordered companion collection.
type PartsView struct {
	parts    [][]int
	polygons *Polygons
}

// SplitIntoPartsView decomposes the region like SplitIntoParts but keeps
// index correspondence: the receiver is replaced by a reordered copy of
// its unioned contours and the returned view maps part -> contour indices
// into that reordered collection. Use it when a contour index must be
// traced back to the part it ended up in.
func (p *Polygons) SplitIntoPartsView(unionAll bool) PartsView {
	fill := FillEvenOdd
	if unionAll {
		fill = FillNonZero
	}
	tree := unionTree(*p, fill)

	var reordered Polygons
	view := PartsView{polygons: p}

	outlines := childNodes(&tree.PolyNode)
	for len(outlines) > 0 {
		node := outlines[0]
		outlines = outlines[1:]

		record := []int{len(reordered)}
		reordered = append(reordered, fromClipperPath(node.Contour()))
		for _, hole := range node.Childs() {
			record = append(record, len(reordered))
			reordered = append(reordered, fromClipperPath(hole.Contour()))
			outlines = append(outlines, hole.Childs()...)
		}
		view.parts = append(view.parts, record)
	}

	*p = reordered
	return view
}

// PartCount returns the number of parts in the view.
func (v PartsView) PartCount() int {
	return len(v.parts)
}

// PartContaining returns the index of the part holding the contour at
// polyIdx, or NoIndex when no part claims it. When found and boundaryIdx
// is non-nil, it receives the index of that part's outer boundary.
func (v PartsView) PartContaining(polyIdx int, boundaryIdx *int) int {
	for partIdx, record := range v.parts {
		if len(record) == 0 {
			continue
		}
		for _, idx := range record {
			if idx == polyIdx {
				if boundaryIdx != nil {
					*boundaryIdx = record[0]
				}
				return partIdx
			}
		}
	}
	return NoIndex
}

// AssemblePart copies the contours of one part out of the companion
// collection. An out-of-range or NoIndex part yields an empty part.
func (v PartsView) AssemblePart(partIdx int) PolygonsPart {
	var ret PolygonsPart
	if partIdx == NoIndex || partIdx >= len(v.parts) {
		return ret
	}
	for _, polyIdx := range v.parts[partIdx] {
		ret = append(ret, (*v.polygons)[polyIdx].Clone())
	}
	return ret
}

// AssemblePartContaining assembles the part holding the contour at
// polyIdx. When found and boundaryIdx is non-nil, it receives the index
// of that part's outer boundary.
func (v PartsView) AssemblePartContaining(polyIdx int, boundaryIdx *int) PolygonsPart {
	partIdx := v.PartContaining(polyIdx, boundaryIdx)
	if partIdx == NoIndex {
		return PolygonsPart{}
	}
	return v.AssemblePart(partIdx)
}
