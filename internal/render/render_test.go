package render

import (
	"bytes"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/osuushi/polygeom/geom"
	"github.com/osuushi/polygeom/internal/polyio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = polyio.Shape{
	Label:   "square",
	Polygon: geom.Polygon{Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}},
}

func TestDraw(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowControlPoints = false
	c, err := Draw([]polyio.Shape{square}, nil, opts)
	require.NoError(t, err)

	// 10 units at 10 pixels per unit, plus padding on both sides
	assert.Equal(t, 140, c.Width())
	assert.Equal(t, 140, c.Height())

	img := c.Image()
	r, g, b, _ := img.At(70, 70).RGBA()
	assert.Equal(t, uint32(0), r>>8)
	assert.InDelta(t, 128, g>>8, 1)
	assert.Equal(t, uint32(0), b>>8)

	// Padding stays black
	r, g, b, _ = img.At(5, 5).RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b})
}

func TestDrawCurve(t *testing.T) {
	curved := square
	curved.LineType = geom.Curve
	opts := DefaultOptions()
	c, err := Draw([]polyio.Shape{curved}, nil, opts)
	require.NoError(t, err)

	// The spline bulges 1.25 units past each side
	assert.Equal(t, 165, c.Width())
	assert.Equal(t, 165, c.Height())
}

func TestDrawQueries(t *testing.T) {
	opts := DefaultOptions()
	queries := []Query{
		{Point: geom.Pt(5, 5), Hit: true},
		{Point: geom.Pt(20, 5), Hit: false},
	}
	c, err := Draw([]polyio.Shape{square}, queries, opts)
	require.NoError(t, err)
	// The outside query widens the picture
	assert.Equal(t, 240, c.Width())
	assert.Equal(t, 140, c.Height())

	img := c.Image()
	// The hit query sits in the middle of the square
	r, g, _, _ := img.At(70, 70).RGBA()
	assert.Greater(t, g>>8, uint32(200))
	assert.Less(t, r>>8, uint32(100))
	// The miss is on the right edge of the picture, vertically centred
	r, g, _, _ = img.At(220, 70).RGBA()
	assert.Greater(t, r>>8, uint32(200))
	assert.Less(t, g>>8, uint32(100))
}

func TestDrawEmpty(t *testing.T) {
	c, err := Draw(nil, nil, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 40, c.Width())
	assert.Equal(t, 40, c.Height())
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, []polyio.Shape{square}, nil, DefaultOptions()))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 140, img.Bounds().Dx())

	path := filepath.Join(t.TempDir(), "square.png")
	require.NoError(t, SavePNG(path, []polyio.Shape{square}, nil, DefaultOptions(), false))
	assert.FileExists(t, path)
}

func TestDrawRejectsUndrawableShapes(t *testing.T) {
	for name, points := range map[string][]geom.Point{
		"nan":      {{X: 0, Y: 0}, {X: math.NaN(), Y: 0}, {X: 10, Y: 10}},
		"infinite": {{X: 0, Y: 0}, {X: math.Inf(1), Y: 0}, {X: 10, Y: 10}},
		"huge":     {{X: 0, Y: 0}, {X: 1e12, Y: 0}, {X: 10, Y: 10}},
	} {
		t.Run(name, func(t *testing.T) {
			shape := polyio.Shape{Label: name, Polygon: geom.Polygon{Points: points}}
			c, err := Draw([]polyio.Shape{shape}, nil, DefaultOptions())
			assert.Error(t, err)
			assert.Nil(t, c)

			var buf bytes.Buffer
			assert.Error(t, WritePNG(&buf, []polyio.Shape{shape}, nil, DefaultOptions()))
			assert.Zero(t, buf.Len())
		})
	}

	t.Run("nan query", func(t *testing.T) {
		_, err := Draw([]polyio.Shape{square}, []Query{{Point: geom.Pt(math.NaN(), 1)}}, DefaultOptions())
		assert.EqualError(t, err, "cannot draw shapes with non-finite coordinates")
	})

	t.Run("size limit", func(t *testing.T) {
		opts := DefaultOptions()
		opts.MaxSize = 100
		_, err := Draw([]polyio.Shape{square}, nil, opts)
		assert.EqualError(t, err, "image would be 140x140 pixels, more than the 100 pixel limit")

		// An unset limit still caps the image
		opts.MaxSize = 0
		huge := polyio.Shape{Polygon: geom.Polygon{Points: []geom.Point{{X: 0, Y: 0}, {X: 1e12, Y: 1}}}}
		_, err = Draw([]polyio.Shape{huge}, nil, opts)
		assert.Error(t, err)
	})
}
