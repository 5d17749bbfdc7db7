package geometry

import (
	"math"
	"testing"
)

// Test fixtures use millimetre-sized shapes expressed in units. makeRect
// winds counter-clockwise, so its signed area is positive (an outline);
// reverse it for holes.
func makeRect(minX, minY, maxX, maxY int64) Polygon {
	return Polygon{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
	}
}

func mm(v int64) int64 {
	return v * MicronsPerMillimeter
}

// areaMM2 is the collection's signed area in square millimetres, so test
// expectations read naturally.
func areaMM2(p Polygons) float64 {
	return p.Area() / (MicronsPerMillimeter * MicronsPerMillimeter)
}

func wantAreaMM2(t *testing.T, p Polygons, want, tolerance float64) {
	t.Helper()
	got := areaMM2(p)
	if math.Abs(got-want) > tolerance {
		t.Errorf("area = %.3f mm2, want %.3f (tolerance %.3f)", got, want, tolerance)
	}
}
