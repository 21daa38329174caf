package geom

import "math"

// Flatten converts points to the interleaved form x0, y0, x1, y1, ...
func Flatten(points []Point) []float64 {
	coords := make([]float64, 0, len(points)*2)
	for _, p := range points {
		coords = append(coords, p.X, p.Y)
	}
	return coords
}

// Unflatten is the inverse of Flatten. A trailing unpaired coordinate is
// dropped.
func Unflatten(coords []float64) []Point {
	points := make([]Point, len(coords)/2)
	for i := range points {
		points[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	return points
}

// Bounds returns the bounding box of the points in a single pass. An empty
// list yields an inverted box (min at +Inf, max at -Inf) which contains
// nothing.
func Bounds(points []Point) Rect {
	r := Rect{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
	for _, p := range points {
		r.MinX = math.Min(r.MinX, p.X)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

// Contains reports whether p lies in the closed box.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

func (poly Polygon) Flatten() []float64 {
	return Flatten(poly.Points)
}

func (poly Polygon) Bounds() Rect {
	return Bounds(poly.Points)
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}
