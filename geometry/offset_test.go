package geometry

import "testing"

func TestOffsetZeroDistance(t *testing.T) {
	p := Polygons{makeRect(0, 0, mm(10), mm(10))}
	got := p.Offset(0, JoinMiter, 0)
	if len(got) != 1 || len(got[0]) != 4 {
		t.Fatalf("zero offset changed shape: %v", got)
	}
	// The copy must not alias the input.
	got[0][0] = Pt(999, 999)
	if p[0][0] == Pt(999, 999) {
		t.Error("zero offset returned aliased storage")
	}
}

func TestOffsetGrow(t *testing.T) {
	p := Polygons{makeRect(0, 0, mm(10), mm(10))}
	// A miter limit of 2 covers the sqrt(2) ratio of a right-angle
	// corner, so the grown square keeps sharp corners.
	got := p.Offset(mm(1), JoinMiter, 2.0)
	if len(got) != 1 {
		t.Fatalf("grow produced %d contours, want 1", len(got))
	}
	wantAreaMM2(t, got, 144, 0.01)
	if len(got[0]) != 4 {
		t.Errorf("grown square has %d points, want 4", len(got[0]))
	}
}

func TestOffsetShrink(t *testing.T) {
	p := Polygons{makeRect(0, 0, mm(10), mm(10))}
	got := p.Offset(-mm(3), JoinMiter, 0)
	if len(got) != 1 {
		t.Fatalf("shrink produced %d contours, want 1", len(got))
	}
	wantAreaMM2(t, got, 16, 0.01)
}

func TestOffsetRoundTrip(t *testing.T) {
	// Growing then shrinking a convex shape by the same distance never
	// gains area: corner rounding only loses.
	p := Polygons{makeRect(0, 0, mm(10), mm(10))}
	got := p.Offset(mm(2), JoinMiter, 2.0).Offset(-mm(2), JoinMiter, 2.0)
	area := areaMM2(got)
	if area > 100.01 {
		t.Errorf("round trip gained area: %.3f mm2, want <= 100", area)
	}
	if area < 99 {
		t.Errorf("round trip lost too much area: %.3f mm2", area)
	}
}

func TestOffsetShrinkToNothing(t *testing.T) {
	p := Polygons{makeRect(0, 0, mm(10), mm(10))}
	got := p.Offset(-mm(6), JoinMiter, 0)
	if len(got) != 0 {
		t.Errorf("over-shrink produced %d contours, want none", len(got))
	}
}

func TestOffsetRoundJoin(t *testing.T) {
	p := Polygons{makeRect(0, 0, mm(10), mm(10))}
	got := p.Offset(mm(1), JoinRound, 0)
	// Rounded corners: between the inscribed (bevel) and the full miter
	// square.
	area := areaMM2(got)
	if area < 142 || area > 144 {
		t.Errorf("round-join grow area = %.3f mm2, want within [142,144]", area)
	}
}

func TestOffsetSelfOverlapUnionsFirst(t *testing.T) {
	// Two overlapping squares must be merged before offsetting; the
	// result is the offset of their union, not of each square.
	p := Polygons{
		makeRect(0, 0, mm(10), mm(10)),
		makeRect(mm(5), 0, mm(15), mm(10)),
	}
	got := p.Offset(mm(1), JoinMiter, 2.0)
	if len(got) != 1 {
		t.Fatalf("offset produced %d contours, want 1", len(got))
	}
	// Union is 15x10; grown by 1mm on each side: 17x12.
	wantAreaMM2(t, got, 204, 0.01)
}

func TestOffsetOpenPolyline(t *testing.T) {
	line := OpenPolylines{{Pt(0, 0), Pt(mm(10), 0)}}
	got := line.Offset(mm(1), JoinMiter, 2.0)
	if len(got) != 1 {
		t.Fatalf("polyline offset produced %d contours, want 1", len(got))
	}
	// Square end caps extend the 10mm line by 1mm at both ends: 12x2.
	wantAreaMM2(t, got, 24, 0.01)
}

func TestOffsetClosedPolyline(t *testing.T) {
	loop := ClosedPolylines{makeRect(0, 0, mm(10), mm(10))}
	got := loop.Offset(mm(1), JoinMiter, 2.0)
	// A band around the loop: outer 12x12 minus inner 8x8.
	wantAreaMM2(t, got, 144-64, 0.5)
}

func TestTubeShape(t *testing.T) {
	p := Polygons{makeRect(0, 0, mm(10), mm(10))}
	got := p.TubeShape(mm(1), mm(1))
	// Outer 12x12 minus inner 8x8, with the default miter limit beveling
	// the outer corners slightly.
	area := areaMM2(got)
	if area < 76 || area > 80.01 {
		t.Errorf("tube area = %.3f mm2, want within [76,80]", area)
	}
	// The original boundary runs through the middle of the tube.
	if !got.Inside(Pt(0, mm(5)), false) {
		t.Error("tube does not cover the source boundary")
	}
	if got.Inside(Pt(mm(5), mm(5)), false) {
		t.Error("tube covers the region center")
	}
}

func TestApproxConvexHull(t *testing.T) {
	p := Polygons{
		makeRect(0, 0, mm(10), mm(10)),
		makeRect(mm(20), 0, mm(30), mm(10)),
	}
	hull := p.ApproxConvexHull(0)

	if len(hull) != 1 {
		t.Fatalf("hull has %d contours, want a single blob", len(hull))
	}
	// Must cover both squares and the gap between them.
	for _, pt := range []Point{
		Pt(mm(5), mm(5)),
		Pt(mm(25), mm(5)),
		Pt(mm(15), mm(5)),
	} {
		if !hull.Inside(pt, true) {
			t.Errorf("hull does not cover %v", pt)
		}
	}
	// 30x10 bounding area at least; round-join approximation may add a
	// little outside the ideal hull.
	area := areaMM2(hull)
	if area < 295 || area > 330 {
		t.Errorf("hull area = %.3f mm2, want roughly the 300 mm2 span", area)
	}
}
