package geom

import "fmt"

// Points are plain values. Nothing in this package holds on to a point or
// mutates one it was given; every operation builds its output fresh.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// A polygon is an ordered ring of points. The closing edge from the last point
// back to the first is implicit, so the first point is never repeated at the
// end.
type Polygon struct {
	Points []Point
}

// Rect is an axis aligned bounding box.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}
