package geom

// ScalePoints multiplies every coordinate by factor, returning a new slice.
// This is how overlays stay aligned with a zoomed viewport. A factor of 0
// collapses everything onto the origin.
func ScalePoints(points []Point, factor float64) []Point {
	scaled := make([]Point, len(points))
	for i, p := range points {
		scaled[i] = Point{X: p.X * factor, Y: p.Y * factor}
	}
	return scaled
}

func (poly Polygon) Scale(factor float64) Polygon {
	return Polygon{Points: ScalePoints(poly.Points, factor)}
}
