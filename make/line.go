// Package make builds boundary curves: lines, polylines, arcs, Bézier
// curves and curves interpolating a list of points.
package make

import (
	"github.com/GridEyes-2010/transfinite"
	"github.com/ungerik/go3d/float64/vec3"
)

func Line(first, last *vec3.T) *transfinite.BSplineCurve {
	return Polyline([]vec3.T{*first, *last})
}

// Generate a degree 1 curve through the points, parameterized by chord length
//
// **params**
// + at least two points, consecutive points distinct
//
// **returns**
// + the polyline as a B-spline curve
func Polyline(pts []vec3.T) *transfinite.BSplineCurve {
	knots := make([]float64, len(pts)+2)

	var lsum float64
	for i := 0; i < len(pts)-1; i++ {
		lsum += vec3.Distance(&pts[i], &pts[i+1])
		knots[i+2] = lsum
	}
	knots[len(knots)-1] = lsum

	// normalize the knot array
	for i := range knots {
		knots[i] /= lsum
	}

	return transfinite.NewBSplineCurveUnchecked(1, pts, nil, knots)
}
