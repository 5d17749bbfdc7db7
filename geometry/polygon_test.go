package geometry

import (
	"math"
	"testing"
)

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name string
		poly Polygon
		want float64
	}{
		{"empty", Polygon{}, 0},
		{"two points", Polygon{{0, 0}, {100, 0}}, 0},
		{"ccw square 10mm", makeRect(0, 0, mm(10), mm(10)), 100e6},
		{"cw square is negative", func() Polygon {
			p := makeRect(0, 0, mm(10), mm(10))
			p.Reverse()
			return p
		}(), -100e6},
		{"triangle", Polygon{{0, 0}, {4000, 0}, {2000, 3000}}, 6e6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.poly.Area(); got != tt.want {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonOrientation(t *testing.T) {
	outline := makeRect(0, 0, 1000, 1000)
	if !outline.Orientation() {
		t.Error("counter-clockwise contour: Orientation() = false, want true")
	}
	hole := outline.Clone()
	hole.Reverse()
	if hole.Orientation() {
		t.Error("clockwise contour: Orientation() = true, want false")
	}
}

func TestPolygonLength(t *testing.T) {
	square := makeRect(0, 0, mm(10), mm(10))
	if got := square.Length(); got != mm(40) {
		t.Errorf("Length() = %d, want %d", got, mm(40))
	}
	// The open reading of the same contour skips the closing edge.
	if got := square.PolylineLength(); got != mm(30) {
		t.Errorf("PolylineLength() = %d, want %d", got, mm(30))
	}
}

func TestPolygonSegments(t *testing.T) {
	square := makeRect(0, 0, 1000, 1000)

	segs := square.Segments()
	if len(segs) != 4 {
		t.Fatalf("Segments() returned %d edges, want 4", len(segs))
	}
	if segs[3] != (Segment{Start: Pt(0, 1000), End: Pt(0, 0)}) {
		t.Errorf("closing segment = %v, want (0,1000)->(0,0)", segs[3])
	}
	if got := segs[0].Midpoint(); got != Pt(500, 0) {
		t.Errorf("Midpoint() = %v, want (500,0)", got)
	}

	open := square.PolylineSegments()
	if len(open) != 3 {
		t.Errorf("PolylineSegments() returned %d edges, want 3", len(open))
	}
}

func TestPolygonBounds(t *testing.T) {
	poly := Polygon{{-100, 300}, {500, -200}, {50, 50}}
	if got := poly.Min(); got != Pt(-100, -200) {
		t.Errorf("Min() = %v, want (-100,-200)", got)
	}
	if got := poly.Max(); got != Pt(500, 300) {
		t.Errorf("Max() = %v, want (500,300)", got)
	}
}

func TestPolygonInside(t *testing.T) {
	square := makeRect(0, 0, mm(10), mm(10))
	tests := []struct {
		name         string
		pt           Point
		borderResult bool
		want         bool
	}{
		{"center", Pt(mm(5), mm(5)), false, true},
		{"outside left", Pt(-mm(1), mm(5)), false, false},
		{"outside above", Pt(mm(5), mm(11)), false, false},
		{"on edge, border false", Pt(0, mm(5)), false, false},
		{"on edge, border true", Pt(0, mm(5)), true, true},
		{"on vertex, border true", Pt(0, 0), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := square.Inside(tt.pt, tt.borderResult); got != tt.want {
				t.Errorf("Inside(%v, %v) = %v, want %v", tt.pt, tt.borderResult, got, tt.want)
			}
		})
	}
}

func TestClosestPointIndex(t *testing.T) {
	poly := makeRect(0, 0, 1000, 1000)
	if got := poly.ClosestPointIndex(Pt(900, 950)); got != 2 {
		t.Errorf("ClosestPointIndex = %d, want 2", got)
	}
	if got := Polygon(nil).ClosestPointIndex(Pt(0, 0)); got != -1 {
		t.Errorf("empty contour ClosestPointIndex = %d, want -1", got)
	}
}

func TestPolygonTransforms(t *testing.T) {
	poly := makeRect(0, 0, 1000, 1000)

	moved := poly.Clone()
	moved.Translate(Pt(500, -500))
	if moved[0] != Pt(500, -500) || moved[2] != Pt(1500, 500) {
		t.Errorf("Translate moved to %v..%v", moved[0], moved[2])
	}

	rotated := poly.Clone()
	rotated.ApplyMatrix(RotationMatrix(math.Pi / 2))
	if rotated[1] != Pt(0, 1000) {
		t.Errorf("ApplyMatrix rotated (1000,0) to %v, want (0,1000)", rotated[1])
	}
	if got, want := rotated.Area(), poly.Area(); math.Abs(got-want) > 1 {
		t.Errorf("rotation changed area: %v -> %v", want, got)
	}
}
