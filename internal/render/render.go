// Package render draws shapes and hit-test results to PNG images, with an
// optional inline preview for terminals that speak the iTerm image protocol.
package render

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polygeom/geom"
	"github.com/osuushi/polygeom/internal/polyio"
	"github.com/pkg/errors"
)

type Options struct {
	// Pixels per unit. Shapes are scaled with geom.ScalePoints before drawing,
	// the same way overlays follow a zoomed viewport.
	Scale float64
	// Padding in pixels around the shapes
	Padding int
	// How curve shapes are expanded
	Contains geom.ContainsOptions
	// Draw a dot on every control point
	ShowControlPoints bool
	// Largest width or height in pixels Draw will allocate. Zero means the
	// default.
	MaxSize int
}

func DefaultOptions() Options {
	return Options{
		Scale:             10,
		Padding:           20,
		Contains:          geom.DefaultContainsOptions(),
		ShowControlPoints: true,
		MaxSize:           8192,
	}
}

// A Query is a point drawn on top of the shapes, green when it hit at least
// one shape and red otherwise.
type Query struct {
	Point geom.Point
	Hit   bool
}

// Draw renders the shapes and queries into a new context. The y axis points
// up, so the image matches the usual math orientation.
//
// Shapes with non-finite coordinates, or whose image would be larger than
// opts.MaxSize on either side, are rejected with an error.
func Draw(shapes []polyio.Shape, queries []Query, opts Options) (*gg.Context, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	boundaries := make([][]geom.Point, len(shapes))
	var all []geom.Point
	for i, shape := range shapes {
		boundaries[i] = geom.ScalePoints(shape.Boundary(opts.Contains), opts.Scale)
		all = append(all, boundaries[i]...)
	}
	for _, q := range queries {
		all = append(all, geom.ScalePoints([]geom.Point{q.Point}, opts.Scale)...)
	}
	bounds := geom.Bounds(all)
	if len(all) == 0 {
		bounds = geom.Rect{}
	}

	for _, v := range []float64{bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.New("cannot draw shapes with non-finite coordinates")
		}
	}
	padding := float64(opts.Padding)
	widthF := math.Ceil(bounds.Width()) + 2*padding
	heightF := math.Ceil(bounds.Height()) + 2*padding
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultOptions().MaxSize
	}
	if widthF > float64(opts.MaxSize) || heightF > float64(opts.MaxSize) {
		return nil, errors.Errorf("image would be %gx%g pixels, more than the %d pixel limit", widthF, heightF, opts.MaxSize)
	}

	// Set up the context
	width := int(widthF)
	height := int(heightF)
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding, then to min
	c.Translate(padding, padding)
	c.Translate(-bounds.MinX, -bounds.MinY)

	c.SetLineWidth(2)
	for _, boundary := range boundaries {
		if len(boundary) == 0 {
			continue
		}
		c.NewSubPath()
		c.MoveTo(boundary[0].X, boundary[0].Y)
		for _, p := range boundary[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if opts.ShowControlPoints {
		c.SetRGB(1, 1, 1)
		for _, shape := range shapes {
			for _, p := range geom.ScalePoints(shape.Polygon.Points, opts.Scale) {
				c.DrawCircle(p.X, p.Y, 2)
				c.Fill()
			}
		}
	}

	for _, q := range queries {
		if q.Hit {
			c.SetRGB(0.2, 1, 0.2)
		} else {
			c.SetRGB(1, 0.2, 0.2)
		}
		p := q.Point
		c.DrawCircle(p.X*opts.Scale, p.Y*opts.Scale, 4)
		c.Fill()
	}

	return c, nil
}

// WritePNG draws and encodes to w.
func WritePNG(w io.Writer, shapes []polyio.Shape, queries []Query, opts Options) error {
	c, err := Draw(shapes, queries, opts)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

// SavePNG draws to a file, and if preview is set, prints the file to the
// terminal as well (iTerm only).
func SavePNG(path string, shapes []polyio.Shape, queries []Query, opts Options, preview bool) error {
	c, err := Draw(shapes, queries, opts)
	if err != nil {
		return err
	}
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if preview {
		if err := imgcat.CatFile(path, os.Stdout); err != nil {
			return errors.Wrapf(err, "previewing %s", path)
		}
	}
	return nil
}
