package geom

import "math"

// ContainsOptions controls how PointInPolygon reads the polygon boundary.
type ContainsOptions struct {
	LineType LineType
	// Tension and Segments are only used for Curve polygons.
	Tension  float64
	Segments int
	// LegacyEarlyExit stops the crossing scan once the count is odd and more
	// than half of the boundary has been visited. This reproduces the hit
	// testing of older annotation tools and is wrong for some polygons, convex
	// ones included: a ray that enters and leaves the shape in the second half
	// of the boundary is cut off after the first crossing. Leave it off unless
	// you need to match those results exactly.
	LegacyEarlyExit bool
}

func DefaultContainsOptions() ContainsOptions {
	return ContainsOptions{
		LineType: Straight,
		Tension:  DefaultTension,
		Segments: DefaultSegments,
	}
}

// PointInPolygon tests q against poly with the default tension and segment
// count.
func PointInPolygon(q Point, poly Polygon, lineType LineType) bool {
	opts := DefaultContainsOptions()
	opts.LineType = lineType
	return opts.PointInPolygon(q, poly)
}

// PointInPolygon tests q against the boundary of poly with the even-odd rule.
//
// Points on the boundary are classified by the crossing test itself: an edge
// counts when q.Y is in the half-open range (minY, maxY] of the edge and q.X is
// at or left of the crossing. On an axis aligned box this puts the right and
// top edges inside and the left and bottom edges outside.
func (opts ContainsOptions) PointInPolygon(q Point, poly Polygon) bool {
	boundary := opts.Boundary(poly)

	if !Bounds(boundary).Contains(q) {
		return false
	}

	return crossingCount(q, boundary, opts.LegacyEarlyExit)%2 == 1
}

// Boundary returns the points the containment test walks: the vertices
// themselves for straight polygons, or the closed spline samples for curves.
func (opts ContainsOptions) Boundary(poly Polygon) []Point {
	if opts.LineType != Curve {
		return poly.Points
	}
	return Unflatten(GenerateSmoothCurve(poly.Flatten(), opts.Tension, true, opts.Segments))
}

// Crossing count for the even-odd rule, casting a ray from q towards +X.
func crossingCount(q Point, boundary []Point, earlyExit bool) int {
	n := len(boundary)
	if n == 0 {
		return 0
	}
	count := 0
	prev := boundary[n-1]
	for i, cur := range boundary {
		if q.Y > math.Min(prev.Y, cur.Y) && q.Y <= math.Max(prev.Y, cur.Y) &&
			q.X <= math.Max(prev.X, cur.X) {
			// The range check above already excludes horizontal edges; the
			// fallback only keeps the division safe.
			xinters := prev.X
			if prev.Y != cur.Y {
				xinters = (q.Y-prev.Y)*(cur.X-prev.X)/(cur.Y-prev.Y) + prev.X
			}
			if q.X <= xinters {
				count++
			}
		}
		prev = cur

		if earlyExit && count%2 != 0 && float64(i) > float64(n)/2 {
			Logger().Debug("containment scan stopped early", "vertex", i, "vertices", n)
			break
		}
	}
	return count
}

// ContainsPointByEvenOdd is the straight-edged test with no options.
func (poly Polygon) ContainsPointByEvenOdd(q Point) bool {
	return PointInPolygon(q, poly, Straight)
}
