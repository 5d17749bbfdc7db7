package geometry

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WKT interchange. Coordinates are the raw integer units; a filled shape
// serializes as one POLYGON whose first ring is an outline and whose
// remaining rings are holes, or as a MULTIPOLYGON when the collection
// holds several outlines.

// FromWKT parses POLYGON and MULTIPOLYGON text into a flat contour
// collection. A ring's closing point (first point repeated) is stripped.
func FromWKT(wkt string) (Polygons, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, fmt.Errorf("parse wkt: empty input")
	}
	up := strings.ToUpper(s)

	var result Polygons
	switch {
	case strings.HasPrefix(up, "MULTIPOLYGON"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return nil, fmt.Errorf("parse wkt multipolygon: unbalanced parentheses")
		}
		for _, polyBlock := range splitGroups(s[i+1 : j]) {
			polys, err := parseRings(polyBlock)
			if err != nil {
				return nil, fmt.Errorf("parse wkt multipolygon: %w", err)
			}
			result = append(result, polys...)
		}
	case strings.HasPrefix(up, "POLYGON"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return nil, fmt.Errorf("parse wkt polygon: unbalanced parentheses")
		}
		polys, err := parseRings(s[i+1 : j])
		if err != nil {
			return nil, fmt.Errorf("parse wkt polygon: %w", err)
		}
		result = append(result, polys...)
	default:
		return nil, fmt.Errorf("parse wkt: unsupported geometry %q", firstWord(s))
	}
	return result, nil
}

// splitGroups splits "(...),(...)" at top-level commas, stripping the
// outer parentheses of each group.
func splitGroups(block string) []string {
	var groups []string
	depth := 0
	start := -1
	for i, ch := range block {
		switch ch {
		case '(':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case ')':
			depth--
			if depth == 0 && start >= 0 {
				groups = append(groups, block[start:i])
				start = -1
			}
		}
	}
	return groups
}

func parseRings(block string) (Polygons, error) {
	var polys Polygons
	groups := splitGroups(block)
	if len(groups) == 0 {
		// Tolerate a single unparenthesized ring.
		groups = []string{block}
	}
	for _, ring := range groups {
		poly, err := parseRing(ring)
		if err != nil {
			return nil, err
		}
		polys.AddIfNotEmpty(poly)
	}
	return polys, nil
}

func parseRing(ring string) (Polygon, error) {
	var poly Polygon
	for _, tup := range strings.Split(ring, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) == 0 {
			continue
		}
		if len(parts) < 2 {
			return nil, fmt.Errorf("coordinate %q: want two values", tup)
		}
		x, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", tup, err)
		}
		y, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", tup, err)
		}
		poly = append(poly, Point{x, y})
	}
	if len(poly) > 1 && poly[0] == poly[len(poly)-1] {
		poly = poly[:len(poly)-1]
	}
	return poly, nil
}

func firstWord(s string) string {
	if i := strings.IndexAny(s, " \t(\n"); i >= 0 {
		return s[:i]
	}
	return s
}

// WKT renders the collection as POLYGON or MULTIPOLYGON text. Each hole
// serializes as an inner ring of the tightest outline enclosing its first
// point; a single outline with its holes yields one POLYGON.
func (p Polygons) WKT() string {
	var sb strings.Builder
	p.WriteWKT(&sb)
	return sb.String()
}

// WriteWKT writes the WKT form to w. Rings are closed by repeating their
// first point, as the format requires.
func (p Polygons) WriteWKT(w io.Writer) {
	if len(p) == 0 {
		fmt.Fprint(w, "POLYGON EMPTY")
		return
	}
	parts := p.groupRings()
	if len(parts) == 1 {
		fmt.Fprint(w, "POLYGON ")
		writeRings(w, p, parts[0])
		return
	}
	fmt.Fprint(w, "MULTIPOLYGON (")
	for i, part := range parts {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		writeRings(w, p, part)
	}
	fmt.Fprint(w, ")")
}

// groupRings buckets contour indices into polygons: outline first, then
// the holes whose first point it encloses. A hole nested in several
// outlines goes to the one with the smallest area. Holes enclosed by no
// outline form single-ring polygons of their own.
func (p Polygons) groupRings() [][]int {
	var parts [][]int
	partOf := make(map[int]int)
	for i, poly := range p {
		if poly.Orientation() {
			partOf[i] = len(parts)
			parts = append(parts, []int{i})
		}
	}
	for i, hole := range p {
		if hole.Orientation() {
			continue
		}
		owner := NoIndex
		var ownerArea float64
		for j, outline := range p {
			if !outline.Orientation() || !outline.Inside(hole[0], true) {
				continue
			}
			if owner == NoIndex || outline.Area() < ownerArea {
				owner = j
				ownerArea = outline.Area()
			}
		}
		if owner == NoIndex {
			parts = append(parts, []int{i})
			continue
		}
		k := partOf[owner]
		parts[k] = append(parts[k], i)
	}
	return parts
}

func writeRings(w io.Writer, p Polygons, part []int) {
	fmt.Fprint(w, "(")
	for i, idx := range part {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		writeRing(w, p[idx])
	}
	fmt.Fprint(w, ")")
}

func writeRing(w io.Writer, poly Polygon) {
	fmt.Fprint(w, "(")
	for i, pt := range poly {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%d %d", pt.X, pt.Y)
	}
	if len(poly) > 0 {
		fmt.Fprintf(w, ", %d %d", poly[0].X, poly[0].Y)
	}
	fmt.Fprint(w, ")")
}
