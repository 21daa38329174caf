package geom

const (
	DefaultTension  = 0.5
	DefaultSegments = 16
)

// GenerateSmoothCurve runs a cardinal spline through the flattened control
// points (x0, y0, x1, y1, ...) and returns the flattened samples.
//
// Every span between two consecutive control points contributes segments+1
// samples, so neighbouring spans repeat their shared endpoint. An open curve of
// k points yields (k-1)*(segments+1) samples. A closed curve yields
// k*(segments+1) samples, and the samples are rotated so that the first one is
// the first control point and the seam span (last point back to first) comes
// last.
//
// Fewer than two points cannot be smoothed, and a copy of the input is
// returned. A trailing unpaired coordinate is ignored. Segment counts below 1
// are treated as 1.
func GenerateSmoothCurve(points []float64, tension float64, closed bool, segments int) []float64 {
	if len(points) < 4 {
		Logger().Debug("curve input too short to smooth", "coords", len(points))
		// Clone, keeping nil as nil and empty as empty
		return append(points[:0:0], points...)
	}
	if segments < 1 {
		segments = 1
	}

	ps := padControlPoints(points, closed)
	samplesPerSpan := segments + 1
	spans := len(ps)/2 - 3
	result := make([]float64, 0, spans*samplesPerSpan*2)

	// Each span runs from ps[i] to ps[i+2], with ps[i-2] and ps[i+4] as the
	// tangent sources.
	for i := 2; i < len(ps)-4; i += 2 {
		t1x := (ps[i+2] - ps[i-2]) * tension
		t2x := (ps[i+4] - ps[i]) * tension
		t1y := (ps[i+3] - ps[i-1]) * tension
		t2y := (ps[i+5] - ps[i+1]) * tension

		for t := 0; t <= segments; t++ {
			st := float64(t) / float64(segments)
			st2 := st * st
			st3 := st2 * st
			c1 := 2*st3 - 3*st2 + 1
			c2 := -2*st3 + 3*st2
			c3 := st3 - 2*st2 + st
			c4 := st3 - st2

			result = append(result,
				c1*ps[i]+c2*ps[i+2]+c3*t1x+c4*t2x,
				c1*ps[i+1]+c2*ps[i+3]+c3*t1y+c4*t2y,
			)
		}
	}

	if closed {
		// The first span is the seam from the last point to the first. Move it
		// to the end so the ring starts at the first control point.
		seam := samplesPerSpan * 2
		rotated := make([]float64, 0, len(result))
		rotated = append(rotated, result[seam:]...)
		rotated = append(rotated, result[:seam]...)
		return rotated
	}
	return result
}

// padControlPoints returns the control points with synthetic neighbours added,
// so that every span has a predecessor and a successor to estimate tangents
// from.
//
// Open curves repeat the first point at the front and the last point at the
// back. Closed curves are a ring: the last two points go in front (the seam
// span and the predecessor of its start), and the first point is appended so
// the final span has its successor.
func padControlPoints(points []float64, closed bool) []float64 {
	n := len(points) / 2 * 2
	points = points[:n]
	ps := make([]float64, 0, n+6)
	if closed {
		ps = append(ps, points[n-4:n]...)
		ps = append(ps, points...)
		ps = append(ps, points[0], points[1])
		return ps
	}
	ps = append(ps, points[0], points[1])
	ps = append(ps, points...)
	ps = append(ps, points[n-2], points[n-1])
	return ps
}

// CurveFromPoints smooths an open polyline with the default tension.
func CurveFromPoints(points []Point, segments int) []Point {
	return Unflatten(GenerateSmoothCurve(Flatten(points), DefaultTension, false, segments))
}
