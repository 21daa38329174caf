// Geometry for polygon annotation tools.
//
// This package smooths sparse control points into cardinal splines, tests
// whether points lie inside straight or curved polygons with the even-odd
// rule, and scales point lists to follow a zoomed viewport. Everything is a
// pure function over plain values; see the geom package for options.
package polygeom

import "github.com/osuushi/polygeom/geom"

type Point = geom.Point
type Polygon = geom.Polygon
type LineType = geom.LineType
type ContainsOptions = geom.ContainsOptions

const (
	Straight = geom.Straight
	Curve    = geom.Curve

	DefaultTension  = geom.DefaultTension
	DefaultSegments = geom.DefaultSegments
)

// Smooth flattened control points (x0, y0, x1, y1, ...) into flattened spline
// samples. Input with fewer than two points comes back unchanged.
func GenerateSmoothCurve(points []float64, tension float64, closed bool, segments int) []float64 {
	return geom.GenerateSmoothCurve(points, tension, closed, segments)
}

// Smooth an open polyline with the default tension.
func CurveFromPoints(points []Point, segments int) []Point {
	return geom.CurveFromPoints(points, segments)
}

// Test whether q lies inside the polygon described by points.
func PointInPolygon(q Point, points []Point, lineType LineType) bool {
	return geom.PointInPolygon(q, Polygon{Points: points}, lineType)
}

// Scale every point by factor.
func ScalePoints(points []Point, factor float64) []Point {
	return geom.ScalePoints(points, factor)
}
