package transfinite

import (
	"errors"

	. "github.com/GridEyes-2010/transfinite/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Curve is a boundary curve evaluator. Parameters run over [0,1].
type Curve interface {
	Point(t float64) vec3.T
	Derivative(t float64) vec3.T
}

var _ Curve = (*BSplineCurve)(nil)

// BSplineCurve is a (possibly rational) B-spline curve. The knot domain is
// mapped onto [0,1] for the Curve methods.
type BSplineCurve struct {
	// degree of curve
	degree int

	// slice of control points, each a homogeneous coordinate
	controlPoints []HomoPoint

	// slice of nondecreasing knot values
	knots KnotVec
}

func NewBSplineCurve(degree int, controlPoints []vec3.T, weights []float64, knots []float64) (*BSplineCurve, error) {
	if weights != nil && len(weights) != len(controlPoints) {
		return nil, errors.New("one weight is required per control point")
	}

	this := NewBSplineCurveUnchecked(degree, controlPoints, weights, knots)
	if err := this.check(); err != nil {
		return nil, err
	}

	return this, nil
}

// NewBSplineCurveUnchecked skips validation. A nil weights slice makes the
// curve polynomial.
func NewBSplineCurveUnchecked(degree int, controlPoints []vec3.T, weights []float64, knots []float64) *BSplineCurve {
	if weights == nil {
		weights = make([]float64, len(controlPoints))
		for i := range weights {
			weights[i] = 1
		}
	}
	return &BSplineCurve{degree, Homogenize1d(controlPoints, weights), KnotVec(knots).Clone()}
}

func (this *BSplineCurve) Degree() int {
	return this.degree
}

func (this *BSplineCurve) ControlPoints() []vec3.T {
	return Dehomogenize1d(this.controlPoints)
}

func (this *BSplineCurve) Weights() []float64 {
	return Weight1d(this.controlPoints)
}

func (this *BSplineCurve) Knots() []float64 {
	return []float64(this.knots.Clone())
}

// Domain of the underlying knot vector
func (this *BSplineCurve) Domain() (min, max float64) {
	return this.knots.Domain()
}

// IsRational reports whether any weight differs from 1.
func (this *BSplineCurve) IsRational() bool {
	for _, pt := range this.controlPoints {
		if pt.W != 1 {
			return true
		}
	}
	return false
}

// Point on the curve at the normalized parameter t
func (this *BSplineCurve) Point(t float64) vec3.T {
	homoPt := this.nonRationalPoint(this.knots.FromUnit(t))
	return homoPt.Dehomogenized()
}

// Derivative with respect to the normalized parameter t
func (this *BSplineCurve) Derivative(t float64) vec3.T {
	return this.Derivatives(t, 1)[1]
}

// Determine the derivatives of the curve with respect to the normalized parameter
//
// **params**
// + parameter in [0,1] at which the curve is to be evaluated
// + number of derivatives to evaluate
//
// **returns**
// + the point followed by numDerivs derivatives
func (this *BSplineCurve) Derivatives(t float64, numDerivs int) []vec3.T {
	min, max := this.knots.Domain()
	ders := this.nonRationalDerivatives(min+t*(max-min), numDerivs)
	ck := make([]vec3.T, 0, numDerivs+1)

	for k := 0; k <= numDerivs; k++ {
		var v vec3.T
		if k < len(ders) {
			v = ders[k].Vec3
		}

		for i := 1; i <= k && i < len(ders); i++ {
			scaled := ck[k-i].Scaled(binomial(k, i) * ders[i].W)
			v.Sub(&scaled)
		}
		v.Scale(1 / ders[0].W)
		ck = append(ck, v)
	}

	// chain rule for the knot domain to [0,1] mapping
	scale := 1.0
	for k := 1; k <= numDerivs; k++ {
		scale *= max - min
		ck[k].Scale(scale)
	}

	return ck
}

// Determine the derivatives of the homogeneous (non-rational) curve
// (corresponds to algorithm 3.2 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **params**
// + parameter in the knot domain
// + number of derivatives to evaluate
//
// **returns**
// + min(numDerivs, degree)+1 homogeneous derivatives
func (this *BSplineCurve) nonRationalDerivatives(u float64, numDerivs int) []HomoPoint {
	degree := this.degree
	controlPoints := this.controlPoints
	knots := this.knots
	n := len(knots) - degree - 2

	du := numDerivs
	if du > degree {
		du = degree
	}

	ck := make([]HomoPoint, du+1)
	knotSpanIndex := knots.SpanGivenN(n, degree, u)
	nders := DerivativeBasisFunctionsGivenNI(knotSpanIndex, u, degree, du, knots)

	for k := 0; k <= du; k++ {
		for j := 0; j <= degree; j++ {
			ck[k].AddScaled(nders[k][j], &controlPoints[knotSpanIndex-degree+j])
		}
	}

	return ck
}

// Compute a point on the homogeneous curve
// (corresponds to algorithm 3.1 from The NURBS book, Piegl & Tiller 2nd edition)
func (this *BSplineCurve) nonRationalPoint(u float64) HomoPoint {
	degree := this.degree
	controlPoints := this.controlPoints
	knots := this.knots
	n := len(knots) - degree - 2

	knotSpanIndex := knots.SpanGivenN(n, degree, u)
	basisValues := BasisFunctionsGivenKnotSpanIndex(knotSpanIndex, u, degree, knots)
	var position HomoPoint

	for j := 0; j <= degree; j++ {
		position.AddScaled(basisValues[j], &controlPoints[knotSpanIndex-degree+j])
	}

	return position
}

// Validate the curve data
func (this *BSplineCurve) check() error {
	if len(this.controlPoints) == 0 {
		return errors.New("control points cannot be empty")
	}

	if this.degree < 1 {
		return errors.New("degree must be at least 1")
	}

	if len(this.knots) != len(this.controlPoints)+this.degree+1 {
		return errors.New("len(controlPoints) + degree + 1 must equal len(knots)")
	}

	if !this.knots.IsValid(this.degree) {
		return errors.New("invalid knot vector: it must be clamped, nondecreasing and non-degenerate")
	}

	for _, pt := range this.controlPoints {
		if pt.W <= 0 {
			return errors.New("weights must be positive")
		}
	}

	return nil
}

// Curves converts a slice of concrete curves for SetCurves.
func Curves[C Curve](curves []C) []Curve {
	result := make([]Curve, len(curves))
	for i, curve := range curves {
		result[i] = curve
	}
	return result
}
