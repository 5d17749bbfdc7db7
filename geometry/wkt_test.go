package geometry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromWKTPolygon(t *testing.T) {
	got, err := FromWKT("POLYGON ((0 0, 10000 0, 10000 10000, 0 10000, 0 0))")
	require.NoError(t, err)
	require.Len(t, got, 1)
	// The closing point is stripped.
	assert.Len(t, got[0], 4)
	assert.Equal(t, Pt(0, 0), got[0][0])
	assert.Equal(t, Pt(0, 10000), got[0][3])
}

func TestFromWKTPolygonWithHole(t *testing.T) {
	got, err := FromWKT("POLYGON ((0 0, 10000 0, 10000 10000, 0 10000), (3000 3000, 3000 7000, 7000 7000, 7000 3000))")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Orientation(), "outer ring should be an outline")
	assert.False(t, got[1].Orientation(), "inner ring should be a hole")
}

func TestFromWKTMultiPolygon(t *testing.T) {
	got, err := FromWKT("MULTIPOLYGON (((0 0, 1000 0, 1000 1000)), ((5000 0, 6000 0, 6000 1000)))")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFromWKTErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unsupported type", "LINESTRING (0 0, 1 1)"},
		{"unbalanced", "POLYGON (0 0, 1 1"},
		{"bad coordinate", "POLYGON ((0 0, x 1, 2 2))"},
		{"missing ordinate", "POLYGON ((0 0, 1, 2 2))"},
		{"float coordinate", "POLYGON ((0 0, 1.5 1, 2 2))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromWKT(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestWKTRoundTrip(t *testing.T) {
	hole := makeRect(mm(3), mm(3), mm(7), mm(7))
	hole.Reverse()
	tests := []struct {
		name string
		p    Polygons
	}{
		{"single square", Polygons{makeRect(0, 0, mm(10), mm(10))}},
		{"square with hole", Polygons{makeRect(0, 0, mm(10), mm(10)), hole}},
		{"negative coordinates", Polygons{makeRect(-mm(5), -mm(5), mm(5), mm(5))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := tt.p.WKT()
			back, err := FromWKT(text)
			require.NoError(t, err)
			assert.Equal(t, tt.p, back)
		})
	}
}

func TestWKTFormat(t *testing.T) {
	p := Polygons{Polygon{{0, 0}, {1000, 0}, {0, 1000}}}
	text := p.WKT()
	assert.True(t, strings.HasPrefix(text, "POLYGON ("))
	// Ring closed by repeating the first point.
	assert.Contains(t, text, "0 0, 1000 0, 0 1000, 0 0")

	assert.Equal(t, "POLYGON EMPTY", Polygons{}.WKT())

	two := Polygons{
		Polygon{{0, 0}, {1000, 0}, {0, 1000}},
		Polygon{{5000, 0}, {6000, 0}, {5000, 1000}},
	}
	assert.True(t, strings.HasPrefix(two.WKT(), "MULTIPOLYGON ("))
}

func TestWKTWritesHolesAsInnerRings(t *testing.T) {
	hole := makeRect(mm(3), mm(3), mm(7), mm(7))
	hole.Reverse()
	p := Polygons{makeRect(0, 0, mm(10), mm(10)), hole}

	text := p.WKT()
	require.True(t, strings.HasPrefix(text, "POLYGON ("),
		"one outline with a hole must serialize as a single POLYGON, got %q", text)
	assert.Equal(t, 3, strings.Count(text, "("), "want a shell with two rings")

	back, err := FromWKT(text)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.False(t, back[1].Orientation(), "hole winding must survive")
}

func TestWKTGroupsHolesByOutline(t *testing.T) {
	// Two separate outlines, one holed: the hole rides as an inner ring
	// of the outline that encloses it, not as a polygon of its own.
	hole := makeRect(mm(3), mm(3), mm(7), mm(7))
	hole.Reverse()
	p := Polygons{
		makeRect(0, 0, mm(10), mm(10)),
		makeRect(mm(20), 0, mm(30), mm(10)),
		hole,
	}

	text := p.WKT()
	require.True(t, strings.HasPrefix(text, "MULTIPOLYGON ("), "got %q", text)
	holed := strings.Index(text, "(((")
	require.GreaterOrEqual(t, holed, 0)
	second := strings.Index(text[holed+3:], "((")
	require.GreaterOrEqual(t, second, 0)

	back, err := FromWKT(text)
	require.NoError(t, err)
	require.Len(t, back, 3)
	// Ring order after grouping: first outline, its hole, second outline.
	assert.True(t, back[0].Orientation())
	assert.False(t, back[1].Orientation())
	assert.True(t, back[2].Orientation())
}
