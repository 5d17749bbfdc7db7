package geometry

import "testing"

func TestUnion(t *testing.T) {
	a := Polygons{makeRect(0, 0, mm(10), mm(10))}
	b := Polygons{makeRect(mm(5), 0, mm(15), mm(10))}

	got := a.Union(b)
	if len(got) != 1 {
		t.Fatalf("union produced %d contours, want 1", len(got))
	}
	wantAreaMM2(t, got, 150, 0.01)

	// Operands must be untouched.
	wantAreaMM2(t, a, 100, 0)
	wantAreaMM2(t, b, 100, 0)
}

func TestUnionDisjoint(t *testing.T) {
	a := Polygons{makeRect(0, 0, mm(10), mm(10))}
	b := Polygons{makeRect(mm(20), 0, mm(30), mm(10))}
	got := a.Union(b)
	if len(got) != 2 {
		t.Fatalf("union of disjoint squares produced %d contours, want 2", len(got))
	}
	wantAreaMM2(t, got, 200, 0.01)
}

func TestSelfUnionNormalizes(t *testing.T) {
	// The same square twice: a self-union under non-zero fill collapses
	// the duplicate.
	sq := makeRect(0, 0, mm(10), mm(10))
	doubled := Polygons{sq, sq.Clone()}

	got := doubled.Union(nil)
	if len(got) != 1 {
		t.Fatalf("self-union produced %d contours, want 1", len(got))
	}
	wantAreaMM2(t, got, 100, 0.01)
}

func TestIntersection(t *testing.T) {
	a := Polygons{makeRect(0, 0, mm(10), mm(10))}
	b := Polygons{makeRect(mm(5), mm(5), mm(15), mm(15))}
	wantAreaMM2(t, a.Intersection(b), 25, 0.01)

	far := Polygons{makeRect(mm(100), 0, mm(110), mm(10))}
	if got := a.Intersection(far); len(got) != 0 {
		t.Errorf("disjoint intersection produced %d contours, want 0", len(got))
	}
}

func TestDifference(t *testing.T) {
	a := Polygons{makeRect(0, 0, mm(10), mm(10))}
	b := Polygons{makeRect(mm(5), 0, mm(15), mm(10))}
	wantAreaMM2(t, a.Difference(b), 50, 0.01)

	if got := a.Difference(a); len(got) != 0 {
		t.Errorf("A minus A produced %d contours, want 0", len(got))
	}
}

func TestDifferenceCutsHole(t *testing.T) {
	outer := Polygons{makeRect(0, 0, mm(10), mm(10))}
	inner := Polygons{makeRect(mm(3), mm(3), mm(7), mm(7))}

	got := outer.Difference(inner)
	if len(got) != 2 {
		t.Fatalf("difference produced %d contours, want outline plus hole", len(got))
	}
	// Signed areas cancel: 100 - 16.
	wantAreaMM2(t, got, 84, 0.01)
}

func TestXor(t *testing.T) {
	a := Polygons{makeRect(0, 0, mm(10), mm(10))}
	b := Polygons{makeRect(mm(5), 0, mm(15), mm(10))}
	// 100 + 100 minus the 50 overlap counted on both sides.
	wantAreaMM2(t, a.Xor(b), 100, 0.01)
}

func TestEmptyOperands(t *testing.T) {
	empty := Polygons{}
	square := Polygons{makeRect(0, 0, mm(10), mm(10))}

	if got := empty.Intersection(square); len(got) != 0 {
		t.Errorf("empty intersection = %d contours, want 0", len(got))
	}
	wantAreaMM2(t, square.Union(empty), 100, 0.01)
	wantAreaMM2(t, square.Difference(empty), 100, 0.01)
	if got := empty.Difference(square); len(got) != 0 {
		t.Errorf("empty difference = %d contours, want 0", len(got))
	}
}

func TestProcessEvenOdd(t *testing.T) {
	// Two nested counter-clockwise squares: even-odd turns the inner one
	// into a hole.
	nested := Polygons{
		makeRect(0, 0, mm(10), mm(10)),
		makeRect(mm(3), mm(3), mm(7), mm(7)),
	}
	got := nested.ProcessEvenOdd(FillEvenOdd)
	if len(got) != 2 {
		t.Fatalf("even-odd produced %d contours, want 2", len(got))
	}
	wantAreaMM2(t, got, 84, 0.01)

	// Non-zero fill keeps the nested area solid instead.
	solid := nested.ProcessEvenOdd(FillNonZero)
	wantAreaMM2(t, solid, 100, 0.01)
}

func TestIntersectionPolylines(t *testing.T) {
	region := Polygons{makeRect(0, 0, mm(10), mm(10))}
	// A horizontal line entering at x=0 and leaving at x=10, overshooting
	// both sides by 5mm.
	lines := OpenPolylines{{Pt(-mm(5), mm(5)), Pt(mm(15), mm(5))}}

	got := region.IntersectionPolylines(lines, false, 0)
	if len(got) != 1 {
		t.Fatalf("clipped polylines = %d, want 1", len(got))
	}
	if length := got.PolylineLength(); length < mm(10)-10 || length > mm(10)+10 {
		t.Errorf("clipped length = %d, want about %d", length, mm(10))
	}
}

func TestIntersectionPolylinesRestitch(t *testing.T) {
	region := Polygons{makeRect(0, 0, mm(10), mm(10))}
	// A multi-segment polyline is split into single segments before
	// clipping; restitching must reassemble it.
	lines := OpenPolylines{{
		Pt(mm(1), mm(1)),
		Pt(mm(9), mm(1)),
		Pt(mm(9), mm(9)),
		Pt(mm(1), mm(9)),
	}}

	got := region.IntersectionPolylines(lines, true, mm(1))
	if len(got) != 1 {
		t.Fatalf("restitched polylines = %d, want 1", len(got))
	}
	want := mm(24)
	if length := got.PolylineLength(); length < want-20 || length > want+20 {
		t.Errorf("restitched length = %d, want about %d", length, want)
	}
}
