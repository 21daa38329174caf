// Package polyio reads and writes polygons for the command line tool and the
// test fixtures. Two formats are supported: plain text with one "x y" point per
// line and a blank line between polygons, and SVG documents, where every
// <polygon> and <polyline> element becomes a shape.
package polyio

import (
	"github.com/osuushi/polygeom/geom"
	"github.com/osuushi/polygeom/internal/names"
)

// A Shape is a polygon plus what the input said about it.
type Shape struct {
	Label    string
	LineType geom.LineType
	Polygon  geom.Polygon
}

// Shapes labels bare polygons with generated names.
func Shapes(polygons []geom.Polygon, lineType geom.LineType) []Shape {
	shapes := make([]Shape, len(polygons))
	for i, poly := range polygons {
		shapes[i] = Shape{
			Label:    names.Index(i),
			LineType: lineType,
			Polygon:  poly,
		}
	}
	return shapes
}

// Boundary is the point sequence a renderer should draw for the shape.
func (s Shape) Boundary(opts geom.ContainsOptions) []geom.Point {
	opts.LineType = s.LineType
	return opts.Boundary(s.Polygon)
}

// Contains tests q against the shape using its own line type.
func (s Shape) Contains(q geom.Point, opts geom.ContainsOptions) bool {
	opts.LineType = s.LineType
	return opts.PointInPolygon(q, s.Polygon)
}
