package transfinite

import (
	"fmt"

	"github.com/GridEyes-2010/transfinite/geom"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// SurfaceSideBased blends one ribbon per side with inverse squared distance
// weights, so it interpolates every boundary curve.
type SurfaceSideBased struct {
	surfaceBase

	ribbons []Ribbon
	ready   bool
}

func NewSurfaceSideBased() *SurfaceSideBased {
	return &SurfaceSideBased{}
}

// SetCurves builds a CurveRibbon per curve, each with its neighbours as
// cross derivative source. Curve i must end where curve i+1 starts.
func (this *SurfaceSideBased) SetCurves(curves []Curve) error {
	n := len(curves)
	if n < 3 {
		return fmt.Errorf("side based surface with %d curves: %w", n, ErrSideCount)
	}

	ribbons := make([]Ribbon, n)
	for i, curve := range curves {
		ribbons[i] = NewCurveRibbon(curve).SetNeighbors(curves[(i+n-1)%n], curves[(i+1)%n])
	}

	this.ribbons = ribbons
	this.ready = false

	return nil
}

// SetRibbons installs prepared ribbons, e.g. the ribbons of a generalized
// Bézier patch.
func (this *SurfaceSideBased) SetRibbons(ribbons []Ribbon) error {
	if n := len(ribbons); n < 3 {
		return fmt.Errorf("side based surface with %d ribbons: %w", n, ErrSideCount)
	}

	this.ribbons = append([]Ribbon(nil), ribbons...)
	this.ready = false

	return nil
}

func (this *SurfaceSideBased) SetDomain(domain *Domain) {
	this.setDomain(domain)
	this.ready = false
}

func (this *SurfaceSideBased) SetParameterization(param Parameterization) {
	this.setParameterization(param)
	this.ready = false
}

func (this *SurfaceSideBased) SideCount() int {
	return len(this.ribbons)
}

func (this *SurfaceSideBased) SetupLoop() error {
	this.ready = false

	n := len(this.ribbons)
	if n < 3 {
		return fmt.Errorf("side based surface setup: %w", ErrSideCount)
	}

	if err := this.resolve(n); err != nil {
		return err
	}

	this.ready = true
	Logger().Debug("side based surface ready", "sides", n)

	return nil
}

func (this *SurfaceSideBased) Ribbon(i int) (Ribbon, error) {
	if i < 0 || i >= len(this.ribbons) {
		return nil, fmt.Errorf("ribbon %d of %d: %w", i, len(this.ribbons), ErrSideIndex)
	}
	return this.ribbons[i], nil
}

// BlendWeights returns the weight of every side at uv. They are
// non-negative and sum to 1.
func (this *SurfaceSideBased) BlendWeights(uv vec2.T) ([]float64, error) {
	if !this.ready {
		return nil, ErrNotReady
	}

	sd := make([]vec2.T, len(this.ribbons))
	if err := this.mapToRibbons(uv, sd); err != nil {
		return nil, err
	}

	return blendWeights(sd, nil), nil
}

func (this *SurfaceSideBased) Eval(uv vec2.T) (vec3.T, error) {
	if !this.ready {
		return vec3.T{}, ErrNotReady
	}

	sd := make([]vec2.T, len(this.ribbons))
	if err := this.mapToRibbons(uv, sd); err != nil {
		return vec3.T{}, err
	}

	var result vec3.T
	for i, w := range blendWeights(sd, nil) {
		if w == 0 {
			continue
		}
		p := this.ribbons[i].Eval(sd[i])
		geom.AddScaled(&result, w, &p)
	}

	return result, nil
}

func (this *SurfaceSideBased) Tessellate(resolution int) (*Mesh, error) {
	if !this.ready {
		return nil, ErrNotReady
	}
	return tessellate(this, resolution)
}
