package transfinite

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// bezierSurface fills an n-sided net of the given degree with points of a
// smooth bump and runs the setup.
func bezierSurface(t *testing.T, n, degree int) *SurfaceGeneralizedBezier {
	surface := NewSurfaceGeneralizedBezier()
	require.NoError(t, surface.InitNetwork(n, degree))
	require.NoError(t, surface.SetCentralControlPoint(vec3.T{0, 0, 1}))

	surface.Net().Traverse(func(c, side, col, row int) {
		alpha := 2 * math.Pi * (float64(side) + float64(col)/float64(degree)) / float64(n)
		radius := 1 - float64(row)/float64(degree)
		p := vec3.T{radius * math.Cos(alpha), radius * math.Sin(alpha), 0.1*float64(row) + 0.05*math.Sin(float64(c))}
		require.NoError(t, surface.SetControlPoint(side, col, row, p))
	})

	require.NoError(t, surface.SetupLoop())
	return surface
}

func TestGeneralizedBezierScenarioTriangle(t *testing.T) {
	points := []vec3.T{
		{0.3, 0.3, 1},
		{0, 0, 0}, {1, 0, 0.2}, {2, 0, 0.2},
		{3, 0, 0}, {2, 1, 0.2}, {1, 2, 0.2},
		{0, 3, 0}, {0, 2, 0.2}, {0, 1, 0.2},
		{1, 0.5, 0.6}, {1.5, 1, 0.6}, {0.5, 1.5, 0.6},
	}

	surface := NewSurfaceGeneralizedBezier()
	require.NoError(t, surface.InitNetwork(3, 3))
	require.Equal(t, 13, surface.ControlPointCount())
	require.Equal(t, 2, surface.Layers())
	for c, p := range points {
		require.NoError(t, surface.SetControlPointAt(c, p))
	}
	require.NoError(t, surface.SetupLoop())

	domain := surface.Domain()
	for i, want := range []vec3.T{points[1], points[4], points[7]} {
		got, err := surface.Eval(domain.Vertex(i))
		require.NoError(t, err)
		assert.InDeltaSlice(t, want[:], got[:], 1e-12, "corner %d", i)
	}

	center, err := surface.Eval(domain.Center())
	require.NoError(t, err)
	assert.Equal(t, points[0], center)
}

func TestGeneralizedBezierScenarioQuad(t *testing.T) {
	surface := NewSurfaceGeneralizedBezier()
	require.NoError(t, surface.InitNetwork(4, 2))
	require.Equal(t, 9, surface.ControlPointCount())
	require.Equal(t, 1, surface.Layers())

	central := vec3.T{0.125, -0.25, 0.75}
	require.NoError(t, surface.SetCentralControlPoint(central))
	corners := []vec3.T{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}
	for i := range corners {
		next := corners[(i+1)%4]
		mid := vec3.Interpolate(&corners[i], &next, 0.5)
		require.NoError(t, surface.SetControlPoint(i, 0, 0, corners[i]))
		require.NoError(t, surface.SetControlPoint(i, 1, 0, mid))
	}
	require.NoError(t, surface.SetupLoop())

	got, err := surface.Eval(surface.Domain().Center())
	require.NoError(t, err)
	assert.Equal(t, central, got)

	p, err := surface.CentralControlPoint()
	require.NoError(t, err)
	assert.Equal(t, central, p)
}

func TestGeneralizedBezierBoundaryReduction(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6} {
		for degree := 1; degree <= 5; degree++ {
			surface := bezierSurface(t, n, degree)
			ribbons, err := surface.Ribbons()
			require.NoError(t, err)
			require.Len(t, ribbons, n)

			for i := 0; i < n; i++ {
				for _, s := range []float64{0, 0.2, 0.5, 0.9, 1} {
					got, err := surface.Eval(surface.Domain().SidePoint(i, s))
					require.NoError(t, err)
					want := ribbons[i].CurvePoint(s)
					assert.InDeltaSlice(t, want[:], got[:], 1e-9, "n=%d d=%d side %d s=%v", n, degree, i, s)
				}
			}

			center, err := surface.Eval(surface.Domain().Center())
			require.NoError(t, err)
			assert.Equal(t, vec3.T{0, 0, 1}, center, "n=%d d=%d", n, degree)
		}
	}
}

func TestGeneralizedBezierCornersFromNet(t *testing.T) {
	surface := bezierSurface(t, 5, 4)
	for i := 0; i < 5; i++ {
		want, err := surface.ControlPoint(i, 0, 0)
		require.NoError(t, err)
		got, err := surface.Eval(surface.Domain().Vertex(i))
		require.NoError(t, err)
		assert.InDeltaSlice(t, want[:], got[:], 1e-12)
	}
}

func TestGeneralizedBezierRibbonIsTangent(t *testing.T) {
	surface := bezierSurface(t, 5, 4)
	ribbons, err := surface.Ribbons()
	require.NoError(t, err)

	domain := surface.Domain()
	center := domain.Center()
	param := surface.Parameterization()

	for i := 0; i < 5; i++ {
		edge := domain.SidePoint(i, 0.4)
		uv := vec2.Interpolate(&edge, &center, 1e-5)
		sd, err := param.MapToRibbon(i, uv)
		require.NoError(t, err)

		got, err := surface.Eval(uv)
		require.NoError(t, err)
		want := ribbons[i].Eval(sd)
		assert.InDeltaSlice(t, want[:], got[:], 1e-7, "side %d", i)
	}
}

func TestGeneralizedBezierPlanarNet(t *testing.T) {
	surface := NewSurfaceGeneralizedBezier()
	require.NoError(t, surface.InitNetwork(6, 5))
	surface.Net().Traverse(func(c, side, col, row int) {
		require.NoError(t, surface.SetControlPoint(side, col, row, vec3.T{float64(c), math.Sqrt(float64(c)), 0}))
	})
	require.NoError(t, surface.SetCentralControlPoint(vec3.T{1, 1, 0}))
	require.NoError(t, surface.SetupLoop())

	mesh, err := surface.Tessellate(5)
	require.NoError(t, err)
	assert.Len(t, mesh.Points, 1+6*5*6/2)
	for _, p := range mesh.Points {
		assert.InDelta(t, 0, p[2], 1e-12)
	}
}

func TestGeneralizedBezierStates(t *testing.T) {
	surface := NewSurfaceGeneralizedBezier()
	_, err := surface.Eval(vec2.T{})
	assert.ErrorIs(t, err, ErrNotReady)
	assert.ErrorIs(t, surface.SetupLoop(), ErrNotReady)
	assert.ErrorIs(t, surface.SetControlPoint(0, 0, 0, vec3.T{}), ErrNotReady)
	assert.Equal(t, 0, surface.ControlPointCount())

	assert.ErrorIs(t, surface.InitNetwork(2, 3), ErrSideCount)
	assert.ErrorIs(t, surface.InitNetwork(3, 0), ErrDegree)

	require.NoError(t, surface.InitNetwork(3, 2))
	assert.Equal(t, stateNetworkInitialized, surface.state)
	assert.ErrorIs(t, surface.SetupLoop(), ErrIncompleteNet)
	_, err = surface.Eval(vec2.T{})
	assert.ErrorIs(t, err, ErrNotReady)

	assert.ErrorIs(t, surface.SetControlPoint(3, 0, 0, vec3.T{}), ErrSideIndex)
	assert.ErrorIs(t, surface.SetControlPoint(0, 0, 1, vec3.T{}), ErrControlPoint)

	for c := 0; c < surface.ControlPointCount(); c++ {
		require.NoError(t, surface.SetControlPointAt(c, vec3.T{float64(c), 0, 0}))
	}
	assert.Equal(t, statePointsSet, surface.state)

	require.NoError(t, surface.SetupLoop())
	assert.Equal(t, stateReady, surface.state)
	_, err = surface.Eval(vec2.T{})
	assert.NoError(t, err)

	// any mutation drops the setup
	require.NoError(t, surface.SetControlPoint(1, 1, 0, vec3.T{1, 2, 3}))
	assert.Equal(t, statePointsSet, surface.state)
	_, err = surface.Eval(vec2.T{})
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = surface.Ribbons()
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = surface.Tessellate(3)
	assert.ErrorIs(t, err, ErrNotReady)

	require.NoError(t, surface.SetupLoop())
	surface.SetDomain(regularDomain(t, 4))
	assert.ErrorIs(t, surface.SetupLoop(), ErrSideCount)
	surface.SetDomain(nil)
	require.NoError(t, surface.SetupLoop())

	p, err := surface.ControlPoint(0, 2, 0)
	require.NoError(t, err)
	q, err := surface.ControlPoint(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, q, p)
}

func TestGeneralizedBezierRibbonsInSideBased(t *testing.T) {
	bezier := bezierSurface(t, 4, 3)
	ribbons, err := bezier.Ribbons()
	require.NoError(t, err)

	surface := NewSurfaceSideBased()
	require.NoError(t, surface.SetRibbons(ribbons))
	surface.SetDomain(bezier.Domain())
	require.NoError(t, surface.SetupLoop())

	for i := 0; i < 4; i++ {
		for _, s := range []float64{0, 0.3, 0.7, 1} {
			uv := bezier.Domain().SidePoint(i, s)
			want, err := bezier.Eval(uv)
			require.NoError(t, err)
			got, err := surface.Eval(uv)
			require.NoError(t, err)
			assert.InDeltaSlice(t, want[:], got[:], 1e-9)
		}
	}
}

func TestGeneralizedBezierIrregularDomain(t *testing.T) {
	for degree := 1; degree <= 5; degree++ {
		surface := bezierSurface(t, 5, degree)
		surface.SetDomain(irregularPentagon(t))
		_, err := surface.Eval(vec2.T{})
		assert.ErrorIs(t, err, ErrNotReady)
		require.NoError(t, surface.SetupLoop())

		ribbons, err := surface.Ribbons()
		require.NoError(t, err)
		domain := surface.Domain()

		for i := 0; i < 5; i++ {
			for _, s := range []float64{0, 0.2, 0.5, 0.9, 1} {
				got, err := surface.Eval(domain.SidePoint(i, s))
				require.NoError(t, err)
				want := ribbons[i].CurvePoint(s)
				assert.InDeltaSlice(t, want[:], got[:], 1e-12, "d=%d side %d s=%v", degree, i, s)
			}
		}

		center, err := surface.Eval(domain.Center())
		require.NoError(t, err)
		assert.Equal(t, vec3.T{0, 0, 1}, center, "d=%d", degree)
	}
}
