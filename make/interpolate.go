package make

import (
	"errors"
	"fmt"

	"github.com/GridEyes-2010/transfinite"
	. "github.com/GridEyes-2010/transfinite/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Interpolate the points with a B-spline curve of the given degree
// (corresponds to algorithm A9.1 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **params**
// + at least degree+1 points
// + the degree, at least 1
//
// **returns**
// + a curve through every point, parameterized by chord length with
// averaged knots
// + an error for too few points or a singular system
func InterpolateCurve(points []vec3.T, degree int) (*transfinite.BSplineCurve, error) {
	if degree < 1 {
		return nil, fmt.Errorf("interpolation degree %d: %w", degree, transfinite.ErrDegree)
	}
	if len(points) < degree+1 {
		return nil, fmt.Errorf("%d points cannot be interpolated with degree %d", len(points), degree)
	}

	// 0) build knot vector for curve by normalized chord length
	us := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		us[i] = us[i-1] + vec3.Distance(&points[i], &points[i-1])
	}

	total := us[len(us)-1]
	if total < Epsilon {
		return nil, errors.New("interpolated points coincide")
	}
	for i := range us {
		us[i] /= total
	}

	// 1) average the parameters into the inner knots
	knots := make(KnotVec, len(points)+degree+1)
	for j := 1; j < len(points)-degree; j++ {
		var sum float64
		for i := j; i < j+degree; i++ {
			sum += us[i]
		}
		knots[j+degree] = sum / float64(degree)
	}
	for i := len(knots) - degree - 1; i < len(knots); i++ {
		knots[i] = 1
	}

	// 2) construct the matrix of basis function values
	n := len(points) - 1
	A := make(Matrix, len(points))
	for i, u := range us {
		span := knots.SpanGivenN(n, degree, u)
		row := make([]float64, len(points))
		copy(row[span-degree:], BasisFunctionsGivenKnotSpanIndex(span, u, degree, knots))
		A[i] = row
	}

	// 3) solve for each coordinate
	controlPoints := make([]vec3.T, len(points))
	rhs := make([]float64, len(points))
	for dim := 0; dim < 3; dim++ {
		for i := range points {
			rhs[i] = points[i][dim]
		}

		xs, err := A.Solve(rhs)
		if err != nil {
			return nil, fmt.Errorf("interpolation: %w", err)
		}
		for i := range controlPoints {
			controlPoints[i][dim] = xs[i]
		}
	}

	return transfinite.NewBSplineCurve(degree, controlPoints, nil, knots)
}
