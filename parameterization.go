package transfinite

import (
	"fmt"
	"math"

	"github.com/GridEyes-2010/transfinite/geom"
	"github.com/ungerik/go3d/float64/vec2"
)

// Parameterization maps a domain point to the local (s, d) coordinates of
// one side. On side i at parameter s it returns (s, 0).
type Parameterization interface {
	Domain() *Domain
	MapToRibbon(i int, uv vec2.T) (vec2.T, error)
}

var (
	_ Parameterization = (*Bilinear)(nil)
	_ Parameterization = (*Orthogonal)(nil)
)

const (
	// slack on the [0,1] range of s and the sign of d when picking a root
	rootSlack = 1e-8

	// relative size below which the quadratic term is dropped
	linearThreshold = 1e-12
)

// bilinearPatch is the quadrilateral A + s*e + d*f + s*d*g of one side.
type bilinearPatch struct {
	a, e, f, g vec2.T
}

// Bilinear inverts, for side i, the bilinear map of the quadrilateral
// (V[i], V[i+1], V[i+2], V[i-1]). s runs along the side and d runs from 0
// on the side to 1 on the opposite edge V[i-1] V[i+2]. For triangles the
// opposite edge collapses to the apex.
type Bilinear struct {
	domain  *Domain
	patches []bilinearPatch
}

func NewBilinear(domain *Domain) *Bilinear {
	n := domain.SideCount()
	this := &Bilinear{domain: domain, patches: make([]bilinearPatch, n)}

	for i := range this.patches {
		a, b := domain.Vertex(i), domain.Vertex(i+1)
		c, d := domain.Vertex(i+2), domain.Vertex(i-1)

		p := &this.patches[i]
		p.a = a
		p.e = vec2.Sub(&b, &a)
		p.f = vec2.Sub(&d, &a)
		p.g = vec2.T{a[0] - b[0] + c[0] - d[0], a[1] - b[1] + c[1] - d[1]}
	}

	Logger().Debug("bilinear parameterization ready", "sides", n)

	return this
}

func (this *Bilinear) Domain() *Domain {
	return this.domain
}

// Invert the bilinear map of side i
//
// **params**
// + side index in [0, n)
// + domain point
//
// **returns**
// + (s, d); points outside the quadrilateral are extrapolated
// + an error wrapping ErrSideIndex for a bad side index
func (this *Bilinear) MapToRibbon(i int, uv vec2.T) (vec2.T, error) {
	if i < 0 || i >= len(this.patches) {
		return vec2.T{}, fmt.Errorf("bilinear side %d of %d: %w", i, len(this.patches), ErrSideIndex)
	}

	p := &this.patches[i]
	h := vec2.Sub(&uv, &p.a)

	// h = s*(e + d*g) + d*f; crossing with (e + d*g) leaves a quadratic in d
	k2 := vec2.Cross(&p.g, &p.f)
	k1 := vec2.Cross(&p.e, &p.f) + vec2.Cross(&h, &p.g)
	k0 := vec2.Cross(&h, &p.e)

	if math.Abs(k2) <= linearThreshold*math.Abs(k1) {
		d := -k0 / k1
		return vec2.T{p.sideParameter(&h, d), d}, nil
	}

	disc := math.Max(k1*k1-4*k0*k2, 0)
	q := -0.5 * (k1 + math.Copysign(math.Sqrt(disc), k1))

	roots := [2]float64{q / k2, math.Inf(1)}
	if q != 0 {
		roots[1] = k0 / q
	}

	var best vec2.T
	found := false
	for _, d := range roots {
		if math.IsInf(d, 0) {
			continue
		}
		s := p.sideParameter(&h, d)
		if d < -rootSlack || s < -rootSlack || s > 1+rootSlack {
			continue
		}
		if !found || d < best[1] {
			best, found = vec2.T{s, d}, true
		}
	}

	if !found {
		d := roots[0]
		if math.Abs(roots[1]) < math.Abs(d) {
			d = roots[1]
		}
		best = vec2.T{p.sideParameter(&h, d), d}
	}

	return best, nil
}

// s along the iso-d line at distance d; 0.5 where that line collapses
func (this *bilinearPatch) sideParameter(h *vec2.T, d float64) float64 {
	ex := vec2.T{this.e[0] + d*this.g[0], this.e[1] + d*this.g[1]}
	den := vec2.Dot(&ex, &ex)
	if den < geom.Epsilon {
		return 0.5
	}

	num := vec2.T{h[0] - d*this.f[0], h[1] - d*this.f[1]}
	return vec2.Dot(&num, &ex) / den
}

// Orthogonal projects onto each side: s is the foot point parameter and d
// the distance from the side line divided by the largest vertex distance.
type Orthogonal struct {
	domain *Domain
	scale  []float64
}

func NewOrthogonal(domain *Domain) *Orthogonal {
	n := domain.SideCount()
	this := &Orthogonal{domain: domain, scale: make([]float64, n)}

	for i := range this.scale {
		for j := 0; j < n; j++ {
			_, dist := domain.Project(i, domain.Vertex(j))
			this.scale[i] = math.Max(this.scale[i], dist)
		}
	}

	Logger().Debug("orthogonal parameterization ready", "sides", n)

	return this
}

func (this *Orthogonal) Domain() *Domain {
	return this.domain
}

func (this *Orthogonal) MapToRibbon(i int, uv vec2.T) (vec2.T, error) {
	if i < 0 || i >= len(this.scale) {
		return vec2.T{}, fmt.Errorf("orthogonal side %d of %d: %w", i, len(this.scale), ErrSideIndex)
	}

	s, dist := this.domain.Project(i, uv)
	return vec2.T{s, dist / this.scale[i]}, nil
}
