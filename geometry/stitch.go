package geometry

// Stitch reassembles polyline fragments. Clipping operations cut lines
// into pieces and typically report them in no useful order, so the joiner
// works greedily: starting from each unused fragment, keep appending the
// unused fragment whose nearest endpoint lies within maxStitchDistance of
// the chain's current end, reversing it when the matching endpoint is its
// tail. A chain whose two ends meet within snapDistance is returned as a
// closed polygon; every other chain stays an open polyline.
func Stitch(fragments OpenPolylines, maxStitchDistance, snapDistance int64) (OpenPolylines, Polygons) {
	used := make([]bool, len(fragments))
	var open OpenPolylines
	var closed Polygons

	maxDist2 := maxStitchDistance * maxStitchDistance
	snapDist2 := snapDistance * snapDistance

	for seed := range fragments {
		if used[seed] || len(fragments[seed]) == 0 {
			used[seed] = true
			continue
		}
		used[seed] = true
		chain := append(Polygon(nil), fragments[seed]...)

		// Grow from the tail; once nothing attaches there, flip the chain
		// and grow from what used to be the head.
		flipped := false
		for {
			best := NoIndex
			bestDist2 := maxDist2
			bestReverse := false
			end := chain[len(chain)-1]
			for i, frag := range fragments {
				if used[i] || len(frag) == 0 {
					continue
				}
				if d2 := frag[0].Sub(end).Size2(); d2 <= bestDist2 {
					best, bestDist2, bestReverse = i, d2, false
				}
				if d2 := frag[len(frag)-1].Sub(end).Size2(); d2 <= bestDist2 {
					best, bestDist2, bestReverse = i, d2, true
				}
			}
			if best == NoIndex {
				if flipped {
					break
				}
				flipped = true
				chain.Reverse()
				continue
			}
			used[best] = true
			next := fragments[best]
			if bestReverse {
				next = next.Clone()
				next.Reverse()
			}
			// Skip the junction point when the endpoints coincide exactly.
			if next[0] == end {
				next = next[1:]
			}
			chain = append(chain, next...)
		}

		if len(chain) > 2 && chain[0].Sub(chain[len(chain)-1]).Size2() <= snapDist2 {
			if chain[0] == chain[len(chain)-1] {
				chain = chain[:len(chain)-1]
			}
			closed = append(closed, chain)
		} else {
			open = append(open, chain)
		}
	}
	return open, closed
}
