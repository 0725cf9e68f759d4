package transfinite

import (
	"fmt"
	"math"

	"github.com/GridEyes-2010/transfinite/geom"
	. "github.com/GridEyes-2010/transfinite/internal"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

type bezierState int

const (
	stateEmpty bezierState = iota
	stateNetworkInitialized
	statePointsSet
	stateReady
)

func (this bezierState) String() string {
	switch this {
	case stateEmpty:
		return "empty"
	case stateNetworkInitialized:
		return "network initialized"
	case statePointsSet:
		return "points set"
	case stateReady:
		return "ready"
	}
	return "unknown"
}

// SurfaceGeneralizedBezier is a multi-sided Bézier patch over a shared
// control net. Side i contributes the sub-patch
//
//	G_i(s, h) = sum_k B_k(h) R_k(s),  R_k(s) = sum_j B_j(s) P(i, j, k)
//
// where rows at or beyond the layer count are the central point, and h is
// d_i divided by its value at the domain center. The sub-patches are
// blended around the central point with the side based weights, so the
// patch interpolates the boundary rows and the central point.
type SurfaceGeneralizedBezier struct {
	surfaceBase

	net   *ControlNet
	state bezierState

	// caches built by SetupLoop
	centerDist []float64
	rows       [][][]int // rows[i][k][j] is the flat index of P(i, j, k)
}

func NewSurfaceGeneralizedBezier() *SurfaceGeneralizedBezier {
	return &SurfaceGeneralizedBezier{}
}

// InitNetwork allocates an empty net of the given shape.
func (this *SurfaceGeneralizedBezier) InitNetwork(n, degree int) error {
	net, err := NewControlNet(n, degree)
	if err != nil {
		return err
	}

	this.net = net
	this.state = stateNetworkInitialized
	this.centerDist, this.rows = nil, nil

	return nil
}

func (this *SurfaceGeneralizedBezier) SideCount() int {
	if this.net == nil {
		return 0
	}
	return this.net.Sides()
}

func (this *SurfaceGeneralizedBezier) Degree() int {
	if this.net == nil {
		return 0
	}
	return this.net.Degree()
}

func (this *SurfaceGeneralizedBezier) Layers() int {
	if this.net == nil {
		return 0
	}
	return this.net.Layers()
}

func (this *SurfaceGeneralizedBezier) ControlPointCount() int {
	if this.net == nil {
		return 0
	}
	return this.net.Size()
}

// Net exposes the control net. Mutating it directly bypasses the setup
// state; use the setters of the surface instead.
func (this *SurfaceGeneralizedBezier) Net() *ControlNet {
	return this.net
}

func (this *SurfaceGeneralizedBezier) CentralControlPoint() (vec3.T, error) {
	if this.net == nil {
		return vec3.T{}, ErrNotReady
	}
	return this.net.Central(), nil
}

func (this *SurfaceGeneralizedBezier) SetCentralControlPoint(p vec3.T) error {
	if this.net == nil {
		return fmt.Errorf("set central control point: %w", ErrNotReady)
	}

	this.net.SetCentral(p)
	this.touch()

	return nil
}

func (this *SurfaceGeneralizedBezier) ControlPoint(side, col, row int) (vec3.T, error) {
	if this.net == nil {
		return vec3.T{}, ErrNotReady
	}
	if side < 0 || side >= this.net.Sides() {
		return vec3.T{}, fmt.Errorf("control point side %d: %w", side, ErrSideIndex)
	}
	return this.net.Point(side, col, row)
}

func (this *SurfaceGeneralizedBezier) SetControlPoint(side, col, row int, p vec3.T) error {
	if this.net == nil {
		return fmt.Errorf("set control point: %w", ErrNotReady)
	}
	if side < 0 || side >= this.net.Sides() {
		return fmt.Errorf("control point side %d: %w", side, ErrSideIndex)
	}

	if err := this.net.SetPoint(side, col, row, p); err != nil {
		return err
	}
	this.touch()

	return nil
}

// SetControlPointAt sets a point by its flat index, 0 being the center.
func (this *SurfaceGeneralizedBezier) SetControlPointAt(c int, p vec3.T) error {
	if this.net == nil {
		return fmt.Errorf("set control point: %w", ErrNotReady)
	}

	if err := this.net.SetAt(c, p); err != nil {
		return err
	}
	this.touch()

	return nil
}

func (this *SurfaceGeneralizedBezier) SetDomain(domain *Domain) {
	this.setDomain(domain)
	this.touch()
}

func (this *SurfaceGeneralizedBezier) SetParameterization(param Parameterization) {
	this.setParameterization(param)
	this.touch()
}

// touch drops the setup after a mutation.
func (this *SurfaceGeneralizedBezier) touch() {
	if this.net == nil {
		return
	}

	this.state = stateNetworkInitialized
	if this.net.Complete() {
		this.state = statePointsSet
	}
}

// SetupLoop checks the net, resolves the domain and parameterization and
// caches the per-side index tables and center distances.
func (this *SurfaceGeneralizedBezier) SetupLoop() error {
	if this.net == nil {
		return fmt.Errorf("generalized Bézier setup: %w", ErrNotReady)
	}

	this.touch()
	if this.state != statePointsSet {
		return fmt.Errorf("generalized Bézier setup: %w", ErrIncompleteNet)
	}

	n, d, l := this.net.Sides(), this.net.Degree(), this.net.Layers()
	if err := this.resolve(n); err != nil {
		return err
	}

	rows := make([][][]int, n)
	for i := range rows {
		rows[i] = make([][]int, l)
		for k := range rows[i] {
			rows[i][k] = make([]int, d+1)
			for j := range rows[i][k] {
				c, err := this.net.Index(i, j, k)
				if err != nil {
					return err
				}
				rows[i][k][j] = c
			}
		}
	}

	center := this.domain.Center()
	centerDist := make([]float64, n)
	for i := range centerDist {
		sd, err := this.param.MapToRibbon(i, center)
		if err != nil {
			return err
		}
		if sd[1] < Epsilon {
			return fmt.Errorf("side %d does not see the domain center: %w", i, ErrDomain)
		}
		centerDist[i] = sd[1]
	}

	this.rows, this.centerDist = rows, centerDist
	this.state = stateReady

	Logger().Debug("generalized Bézier surface ready", "sides", n, "degree", d, "layers", l,
		"controlPoints", this.net.Size())

	return nil
}

// Ribbons returns the boundary ribbon of every side, with cross
// derivatives taken with respect to the parameterization's d.
func (this *SurfaceGeneralizedBezier) Ribbons() ([]Ribbon, error) {
	if this.state != stateReady {
		return nil, ErrNotReady
	}

	n, d, l := this.net.Sides(), this.net.Degree(), this.net.Layers()
	ribbons := make([]Ribbon, n)

	for i := range ribbons {
		boundary, inner := make([]vec3.T, d+1), make([]vec3.T, d+1)
		for j := 0; j <= d; j++ {
			boundary[j] = this.net.At(this.rows[i][0][j])
			inner[j] = this.net.Central()
			if l > 1 {
				inner[j] = this.net.At(this.rows[i][1][j])
			}
		}
		ribbons[i] = newBezierRibbon(boundary, inner, 1/this.centerDist[i])
	}

	return ribbons, nil
}

func (this *SurfaceGeneralizedBezier) Eval(uv vec2.T) (vec3.T, error) {
	if this.state != stateReady {
		return vec3.T{}, fmt.Errorf("evaluate in state %s: %w", this.state, ErrNotReady)
	}

	n := this.net.Sides()
	sd := make([]vec2.T, n)
	if err := this.mapToRibbons(uv, sd); err != nil {
		return vec3.T{}, err
	}

	central := this.net.Central()
	result := central

	var bs, bh []float64
	for i, w := range blendWeights(sd, nil) {
		if w == 0 {
			continue
		}

		var g vec3.T
		bs, bh = this.sidePatch(i, sd[i], bs, bh, &g)
		g.Sub(&central)
		geom.AddScaled(&result, w, &g)
	}

	return result, nil
}

// Evaluate the sub-patch of side i
//
// **params**
// + side index
// + the (s, d) coordinates of the side
// + Bernstein buffers to reuse
// + receives the point
//
// **returns**
// + the Bernstein buffers
func (this *SurfaceGeneralizedBezier) sidePatch(i int, sd vec2.T, bs, bh []float64, result *vec3.T) ([]float64, []float64) {
	d, l := this.net.Degree(), this.net.Layers()

	// the sub-patch is the central point from the center onwards
	h := math.Min(sd[1]/this.centerDist[i], 1)

	bs = Bernstein(d, sd[0], bs)
	bh = Bernstein(d, h, bh)

	inner := 1.0
	for k := 0; k < l; k++ {
		var row vec3.T
		for j, c := range this.rows[i][k] {
			geom.AddScaled(&row, bs[j], &this.net.points[c])
		}
		geom.AddScaled(result, bh[k], &row)
		inner -= bh[k]
	}

	central := this.net.Central()
	geom.AddScaled(result, inner, &central)

	return bs, bh
}

func (this *SurfaceGeneralizedBezier) Tessellate(resolution int) (*Mesh, error) {
	if this.state != stateReady {
		return nil, ErrNotReady
	}
	return tessellate(this, resolution)
}
