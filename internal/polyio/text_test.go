package polyio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuushi/polygeom/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPolygons(t *testing.T) {
	fixture, err := fixtures.Open("fixtures/star.txt")
	require.NoError(t, err)
	defer fixture.Close()

	polygons, err := ReadPolygons(fixture)
	require.NoError(t, err)
	require.Len(t, polygons, 2)

	star := polygons[0]
	assert.Len(t, star.Points, 5)
	assert.Equal(t, geom.Pt(0, 10), star.Points[0])
	// Even-odd: the tips are inside, the middle pentagon is not
	assert.True(t, star.ContainsPointByEvenOdd(geom.Pt(0, 8)))
	assert.False(t, star.ContainsPointByEvenOdd(geom.Pt(0, 0)))

	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, polygons[1].Points)
}

func TestReadPolygonsErrors(t *testing.T) {
	_, err := ReadPolygons(strings.NewReader("0 0\n1 1\n2\n"))
	assert.EqualError(t, err, `line 3: expected "x y", got "2"`)

	_, err = ReadPolygons(strings.NewReader("0 0\n\n1 y\n"))
	assert.EqualError(t, err, `line 3: invalid coordinate "y"`)

	polygons, err := ReadPolygons(strings.NewReader("\n\n# nothing here\n"))
	assert.NoError(t, err)
	assert.Empty(t, polygons)
}

func TestWritePolygons(t *testing.T) {
	polygons := []geom.Polygon{
		{Points: []geom.Point{{X: 0, Y: 0}, {X: 1.5, Y: -2}, {X: 1e-7, Y: 3}}},
		{Points: []geom.Point{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}}},
	}
	var buf bytes.Buffer
	require.NoError(t, WritePolygons(&buf, polygons))
	assert.Equal(t, "0 0\n1.5 -2\n1e-07 3\n\n10 10\n20 10\n20 20\n", buf.String())

	back, err := ReadPolygons(&buf)
	require.NoError(t, err)
	assert.Equal(t, polygons, back)
}

func TestParsePoint(t *testing.T) {
	for _, input := range []string{"3,-4", "3 -4", " 3 , -4 "} {
		p, err := ParsePoint(input)
		require.NoError(t, err, input)
		assert.Equal(t, geom.Pt(3, -4), p)
	}

	_, err := ParsePoint("3")
	assert.EqualError(t, err, `expected "x,y", got "3"`)
	_, err = ParsePoint("a,4")
	assert.Error(t, err)
}

func TestShapes(t *testing.T) {
	shapes := Shapes([]geom.Polygon{{}, {}}, geom.Curve)
	require.Len(t, shapes, 2)
	assert.NotEqual(t, shapes[0].Label, shapes[1].Label)
	assert.Equal(t, geom.Curve, shapes[1].LineType)
}
