package transfinite

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func quarterCircle(t *testing.T) *BSplineCurve {
	curve, err := NewBSplineCurve(2,
		[]vec3.T{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[]float64{1, math.Sqrt2 / 2, 1},
		[]float64{0, 0, 0, 1, 1, 1})
	require.NoError(t, err)
	return curve
}

func TestBSplineCurveRationalPoints(t *testing.T) {
	curve := quarterCircle(t)
	assert.True(t, curve.IsRational())

	for _, u := range []float64{0, 0.1, 0.33, 0.5, 0.9, 1} {
		p := curve.Point(u)
		assert.InDelta(t, 1, p.Length(), 1e-12, "u = %v", u)
		assert.Zero(t, p[2])
	}

	start := curve.Derivative(0)
	assert.InDeltaSlice(t, []float64{0, math.Sqrt2, 0}, start[:], 1e-12)
}

func TestBSplineCurveDerivativeMatchesDifferences(t *testing.T) {
	curve, err := NewBSplineCurve(3,
		[]vec3.T{{0, 0, 0}, {1, 2, 0}, {2, -1, 1}, {4, 0, 2}, {5, 3, 0}},
		[]float64{1, 2, 1, 0.5, 1},
		[]float64{0, 0, 0, 0, 1, 2, 2, 2, 2})
	require.NoError(t, err)

	const h = 1e-6
	for _, u := range []float64{0.1, 0.4, 0.5, 0.8} {
		a, b := curve.Point(u-h), curve.Point(u+h)
		diff := vec3.Sub(&b, &a)
		diff.Scale(1 / (2 * h))

		got := curve.Derivative(u)
		assert.InDeltaSlice(t, diff[:], got[:], 1e-5, "u = %v", u)
	}

	ders := curve.Derivatives(0.3, 4)
	require.Len(t, ders, 5)
	point := curve.Point(0.3)
	assert.InDeltaSlice(t, point[:], ders[0][:], 1e-12)
}

func TestBSplineCurveAccessors(t *testing.T) {
	curve := quarterCircle(t)
	assert.Equal(t, 2, curve.Degree())
	assert.Equal(t, []float64{0, 0, 0, 1, 1, 1}, curve.Knots())
	assert.InDeltaSlice(t, []float64{1, math.Sqrt2 / 2, 1}, curve.Weights(), 1e-15)

	cps := curve.ControlPoints()
	require.Len(t, cps, 3)
	assert.InDeltaSlice(t, []float64{1, 1, 0}, cps[1][:], 1e-15)

	knots := curve.Knots()
	knots[0] = 5
	assert.Equal(t, 0., curve.Knots()[0])
}

func TestBSplineCurveValidation(t *testing.T) {
	pts := []vec3.T{{0, 0, 0}, {1, 0, 0}}

	_, err := NewBSplineCurve(1, pts, nil, []float64{0, 0, 1, 1})
	assert.NoError(t, err)

	_, err = NewBSplineCurve(1, pts, []float64{1}, []float64{0, 0, 1, 1})
	assert.Error(t, err, "weight count")

	_, err = NewBSplineCurve(1, pts, nil, []float64{0, 0, 1})
	assert.Error(t, err, "knot count")

	_, err = NewBSplineCurve(0, pts, nil, []float64{0, 1})
	assert.Error(t, err, "degree")

	_, err = NewBSplineCurve(1, pts, []float64{1, -1}, []float64{0, 0, 1, 1})
	assert.Error(t, err, "negative weight")

	_, err = NewBSplineCurve(1, pts, nil, []float64{0, 0.5, 1, 1})
	assert.Error(t, err, "unclamped knots")

	_, err = NewBSplineCurve(1, nil, nil, nil)
	assert.Error(t, err, "no control points")
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 1., binomial(5, 0))
	assert.Equal(t, 10., binomial(5, 2))
	assert.Equal(t, 10., binomial(5, 3))
	assert.Equal(t, 0., binomial(3, 4))
	assert.InDelta(t, 184756., binomial(20, 10), 1e-6)
	assert.InDelta(t, binomialNoCache(30, 7), binomial(30, 7), 1e-6)
}
