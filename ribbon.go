package transfinite

import (
	"github.com/GridEyes-2010/transfinite/geom"
	. "github.com/GridEyes-2010/transfinite/internal"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// Ribbon is the contribution of one side: a boundary curve and a cross
// derivative field along it. Eval(s, 0) is the curve point and the first
// derivative of Eval in d at d = 0 is the cross derivative.
type Ribbon interface {
	CurvePoint(s float64) vec3.T
	CrossDerivative(s float64) vec3.T
	Eval(sd vec2.T) vec3.T
}

var (
	_ Ribbon = (*CurveRibbon)(nil)
	_ Ribbon = (*BezierRibbon)(nil)
	_ Curve  = (*BezierRibbon)(nil)
)

// CurveRibbon sweeps a boundary curve linearly along its cross derivative.
// The cross derivative is either given explicitly or taken from the end
// tangents of the neighbouring curves and transported along the boundary.
// A ribbon is only read once built, so surfaces may share it.
type CurveRibbon struct {
	curve      Curve
	prev, next Curve
	cross      func(s float64) vec3.T

	// neighbour derivatives at the two corners and the boundary tangents there
	d0, d1 vec3.T
	t0, t1 vec3.T
}

func NewCurveRibbon(curve Curve) *CurveRibbon {
	return &CurveRibbon{
		curve: curve,
		t0:    curve.Derivative(0),
		t1:    curve.Derivative(1),
	}
}

func (this *CurveRibbon) Curve() Curve {
	return this.curve
}

// SetNeighbors sets the curves of the previous and next sides and caches
// their derivatives at the shared corners. A nil neighbour contributes no
// cross derivative at its corner.
func (this *CurveRibbon) SetNeighbors(prev, next Curve) *CurveRibbon {
	this.prev, this.next = prev, next
	this.d0, this.d1 = vec3.Zero, vec3.Zero

	if prev != nil {
		this.d0 = prev.Derivative(1)
		this.d0.Invert()
	}
	if next != nil {
		this.d1 = next.Derivative(0)
	}

	return this
}

// SetCrossDerivative overrides the derived cross derivative. Pass nil to
// go back to the neighbour-based one.
func (this *CurveRibbon) SetCrossDerivative(cross func(s float64) vec3.T) *CurveRibbon {
	this.cross = cross
	return this
}

func (this *CurveRibbon) CurvePoint(s float64) vec3.T {
	return this.curve.Point(s)
}

func (this *CurveRibbon) CrossDerivative(s float64) vec3.T {
	if this.cross != nil {
		return this.cross(s)
	}

	tangent := this.curve.Derivative(s)
	r0 := geom.RotationBetween(&this.t0, &tangent)
	r1 := geom.RotationBetween(&this.t1, &tangent)
	a, b := r0.MulVec(&this.d0), r1.MulVec(&this.d1)

	return geom.Combine(1-s, &a, s, &b)
}

func (this *CurveRibbon) Eval(sd vec2.T) vec3.T {
	p := this.CurvePoint(sd[0])
	cross := this.CrossDerivative(sd[0])
	return *geom.AddScaled(&p, sd[1], &cross)
}

// BezierRibbon is the ribbon of one side of a generalized Bézier patch:
// the boundary row of control points as a Bézier curve and the difference
// to the next row as cross derivative.
type BezierRibbon struct {
	boundary []vec3.T
	inner    []vec3.T

	// derivative of the patch parameter with respect to the ribbon d
	scale float64
}

func newBezierRibbon(boundary, inner []vec3.T, scale float64) *BezierRibbon {
	return &BezierRibbon{
		boundary: append([]vec3.T(nil), boundary...),
		inner:    append([]vec3.T(nil), inner...),
		scale:    scale,
	}
}

func (this *BezierRibbon) Degree() int {
	return len(this.boundary) - 1
}

// ControlPoints of the boundary curve
func (this *BezierRibbon) ControlPoints() []vec3.T {
	return append([]vec3.T(nil), this.boundary...)
}

func (this *BezierRibbon) CurvePoint(s float64) vec3.T {
	return bezierPoint(this.boundary, s)
}

func (this *BezierRibbon) CrossDerivative(s float64) vec3.T {
	coeff := Bernstein(this.Degree(), s, nil)

	var result vec3.T
	for j, b := range coeff {
		diff := vec3.Sub(&this.inner[j], &this.boundary[j])
		geom.AddScaled(&result, b, &diff)
	}

	return result.Scaled(float64(this.Degree()) * this.scale)
}

func (this *BezierRibbon) Eval(sd vec2.T) vec3.T {
	p := this.CurvePoint(sd[0])
	cross := this.CrossDerivative(sd[0])
	return *geom.AddScaled(&p, sd[1], &cross)
}

func (this *BezierRibbon) Point(t float64) vec3.T {
	return this.CurvePoint(t)
}

// Derivative of the boundary curve
func (this *BezierRibbon) Derivative(t float64) vec3.T {
	degree := this.Degree()
	coeff := Bernstein(degree-1, t, nil)

	var result vec3.T
	for j, b := range coeff {
		diff := vec3.Sub(&this.boundary[j+1], &this.boundary[j])
		geom.AddScaled(&result, b, &diff)
	}

	return result.Scaled(float64(degree))
}

func bezierPoint(cps []vec3.T, t float64) vec3.T {
	coeff := Bernstein(len(cps)-1, t, nil)

	var result vec3.T
	for j, b := range coeff {
		geom.AddScaled(&result, b, &cps[j])
	}

	return result
}
