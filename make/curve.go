package make

import (
	"math"

	"github.com/GridEyes-2010/transfinite"
	. "github.com/GridEyes-2010/transfinite/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Generate an arc of a circle
// (Corresponds to Algorithm A7.1 from Piegl & Tiller)
//
// **params**
// + the center of the arc
// + the xaxis of the arc
// + orthogonal yaxis of the arc
// + radius of the arc
// + start angle of the arc, between 0 and 2pi
// + end angle of the arc, between 0 and 2pi, greater than the start angle
//
// **returns**
// + a rational quadratic curve
func Arc(center *vec3.T, xaxis, yaxis *vec3.T, radius float64, startAngle, endAngle float64) *transfinite.BSplineCurve {
	xaxisScaled, yaxisScaled := xaxis.Normalized(), yaxis.Normalized()
	xaxisScaled.Scale(radius)
	yaxisScaled.Scale(radius)
	return EllipseArc(center, &xaxisScaled, &yaxisScaled, startAngle, endAngle)
}

func Circle(center *vec3.T, xaxis, yaxis *vec3.T, radius float64) *transfinite.BSplineCurve {
	return Arc(center, xaxis, yaxis, radius, 0, 2*math.Pi)
}

func Ellipse(center *vec3.T, xaxis, yaxis *vec3.T) *transfinite.BSplineCurve {
	return EllipseArc(center, xaxis, yaxis, 0, 2*math.Pi)
}

// Generate an elliptical arc
//
// **params**
// + the center
// + the scaled x axis
// + the scaled y axis
// + start angle of the ellipse arc, between 0 and 2pi, where 0 points at the xaxis
// + end angle of the arc, between 0 and 2pi, greater than the start angle
//
// **returns**
// + a rational quadratic curve with up to four segments
func EllipseArc(center *vec3.T, xaxis, yaxis *vec3.T, startAngle, endAngle float64) *transfinite.BSplineCurve {
	xradius, yradius := xaxis.Length(), yaxis.Length()
	xaxisNorm, yaxisNorm := xaxis.Normalized(), yaxis.Normalized()

	// if the end angle is less than the start angle, do a circle
	if endAngle < startAngle {
		endAngle = 2.0*math.Pi + startAngle
	}

	theta := endAngle - startAngle

	// how many arcs?
	numArcs := 4
	switch {
	case theta <= math.Pi/2:
		numArcs = 1
	case theta <= math.Pi:
		numArcs = 2
	case theta <= 3*math.Pi/2:
		numArcs = 3
	}

	dtheta := theta / float64(numArcs)
	w1 := math.Cos(dtheta / 2)

	ellipsePoint := func(angle float64) (point, tangent vec3.T) {
		x, y := xaxisNorm.Scaled(xradius*math.Cos(angle)), yaxisNorm.Scaled(yradius*math.Sin(angle))
		point = vec3.Add(&x, &y)
		point.Add(center)

		x, y = xaxisNorm.Scaled(xradius*math.Sin(angle)), yaxisNorm.Scaled(yradius*math.Cos(angle))
		tangent = vec3.Sub(&y, &x)
		return
	}

	controlPoints := make([]vec3.T, 2*numArcs+1)
	weights := make([]float64, 2*numArcs+1)
	knots := make([]float64, 2*numArcs+4)

	angle := startAngle
	P0, T0 := ellipsePoint(angle)
	controlPoints[0] = P0
	weights[0] = 1

	for i := 1; i <= numArcs; i++ {
		angle += dtheta
		P2, T2 := ellipsePoint(angle)

		ray0 := Ray{Origin: P0, Dir: T0.Normalized()}
		ray2 := Ray{Origin: P2, Dir: T2.Normalized()}
		inters, ok := ray0.Intersect(ray2)
		if !ok {
			// parallel tangents only come from degenerate axes, which flatten
			// the arc onto a segment
			inters.Point0 = vec3.Interpolate(&P0, &P2, 0.5)
		}

		controlPoints[2*i-1] = inters.Point0
		weights[2*i-1] = w1
		controlPoints[2*i] = P2
		weights[2*i] = 1

		P0, T0 = P2, T2
	}

	j := 2*numArcs + 1
	for i := 0; i < 3; i++ {
		knots[i] = 0
		knots[i+j] = 1
	}

	for i := 1; i < numArcs; i++ {
		knots[2*i+1] = float64(i) / float64(numArcs)
		knots[2*i+2] = float64(i) / float64(numArcs)
	}

	return transfinite.NewBSplineCurveUnchecked(2, controlPoints, weights, knots)
}

// Generate a Bézier curve of degree len(controlPoints)-1
func BezierCurve(controlPoints []vec3.T) *transfinite.BSplineCurve {
	degree := len(controlPoints) - 1

	knots := make([]float64, 2*degree+2)
	for i := degree + 1; i < len(knots); i++ {
		knots[i] = 1
	}

	return transfinite.NewBSplineCurveUnchecked(degree, controlPoints, nil, knots)
}
