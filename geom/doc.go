// Package geom holds the geometry behind polygon annotation: cardinal spline
// smoothing of control points, even-odd point-in-polygon tests for straight
// and curved polygons, and zoom scaling of point lists.
//
// Everything here is a pure function of its arguments. Inputs are never
// modified and outputs are freshly allocated, so the package is safe to use
// from any number of goroutines.
package geom
