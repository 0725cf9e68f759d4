package transfinite

import (
	"fmt"
	"math"

	"github.com/GridEyes-2010/transfinite/geom"
	. "github.com/GridEyes-2010/transfinite/internal"
	"github.com/ungerik/go3d/float64/vec2"
)

// Domain is a convex polygon in the plane. Side i runs from vertex i to
// vertex i+1; every side index is taken modulo the side count.
type Domain struct {
	vertices []vec2.T
	center   vec2.T

	// +1 for counter-clockwise vertices, -1 for clockwise
	orientation float64
}

func NewDomain(vertices []vec2.T) (*Domain, error) {
	this := NewDomainUnchecked(vertices)
	if err := this.check(); err != nil {
		return nil, err
	}

	return this, nil
}

func NewDomainUnchecked(vertices []vec2.T) *Domain {
	this := &Domain{vertices: append([]vec2.T(nil), vertices...)}

	for i := range this.vertices {
		this.center.Add(&this.vertices[i])
	}
	if n := len(this.vertices); n > 0 {
		this.center.Scale(1 / float64(n))
	}

	this.orientation = 1
	if this.signedArea() < 0 {
		this.orientation = -1
	}

	return this
}

// RegularDomain returns the regular n-gon inscribed in the unit circle,
// with side 0 horizontal at the bottom.
func RegularDomain(n int) (*Domain, error) {
	if n < 3 {
		return nil, fmt.Errorf("regular domain with %d sides: %w", n, ErrSideCount)
	}

	vertices := make([]vec2.T, n)
	for i := range vertices {
		alpha := 2*math.Pi*float64(i)/float64(n) - math.Pi/2 - math.Pi/float64(n)
		vertices[i] = vec2.T{math.Cos(alpha), math.Sin(alpha)}
	}

	return NewDomainUnchecked(vertices), nil
}

func (this *Domain) SideCount() int {
	return len(this.vertices)
}

// Vertex i, taken modulo the side count; negative indices are allowed.
func (this *Domain) Vertex(i int) vec2.T {
	return this.vertices[this.wrap(i)]
}

func (this *Domain) Vertices() []vec2.T {
	return append([]vec2.T(nil), this.vertices...)
}

// Center is the centroid of the vertices.
func (this *Domain) Center() vec2.T {
	return this.center
}

func (this *Domain) Prev(i int) int {
	return this.wrap(i - 1)
}

func (this *Domain) Next(i int) int {
	return this.wrap(i + 1)
}

// SidePoint is the point at parameter s along side i.
func (this *Domain) SidePoint(i int, s float64) vec2.T {
	a, b := this.Vertex(i), this.Vertex(i+1)
	return vec2.Interpolate(&a, &b, s)
}

// Project a point onto the line of side i
//
// **params**
// + side index
// + the point
//
// **returns**
// + the side parameter of the foot point, unclamped
// + the signed distance from the side line, positive towards the interior
func (this *Domain) Project(i int, uv vec2.T) (s, dist float64) {
	a, b := this.Vertex(i), this.Vertex(i+1)
	e := vec2.Sub(&b, &a)
	h := vec2.Sub(&uv, &a)

	length := e.Length()
	s = vec2.Dot(&h, &e) / (length * length)
	dist = this.orientation * vec2.Cross(&e, &h) / length

	return
}

// NearestSide returns the side whose segment is closest to uv, together
// with the clamped side parameter of the closest point.
func (this *Domain) NearestSide(uv vec2.T) (side int, s float64) {
	best := math.Inf(1)

	for i := range this.vertices {
		a, b := this.Vertex(i), this.Vertex(i+1)
		t, p := geom.SegmentClosestPoint(&uv, &a, &b)
		diff := vec2.Sub(&p, &uv)
		if d := diff.Length(); d < best {
			best, side, s = d, i, t
		}
	}

	return
}

// Contains reports whether uv lies inside the polygon or within Tolerance
// of its boundary.
func (this *Domain) Contains(uv vec2.T) bool {
	for i := range this.vertices {
		if _, dist := this.Project(i, uv); dist < -Tolerance {
			return false
		}
	}
	return true
}

// Sample the domain in concentric rings around the center
//
// **params**
// + number of rings, at least 1
//
// **returns**
// + 1 + n*r*(r+1)/2 points: the center, then ring j = 1..r holding n*j
// points that start at vertex 0 and run along the sides
func (this *Domain) Parameters(resolution int) []vec2.T {
	n := this.SideCount()
	result := make([]vec2.T, 0, ringStart(n, resolution+1))
	result = append(result, this.center)

	for j := 1; j <= resolution; j++ {
		ratio := float64(j) / float64(resolution)
		for i := 0; i < n; i++ {
			for k := 0; k < j; k++ {
				p := this.SidePoint(i, float64(k)/float64(j))
				p = vec2.Interpolate(&this.center, &p, ratio)
				result = append(result, p)
			}
		}
	}

	return result
}

// MeshTopology returns the triangles over the points of Parameters,
// n*r*r in total, oriented like the domain.
func (this *Domain) MeshTopology(resolution int) []Tri {
	n := this.SideCount()
	tris := make([]Tri, 0, n*resolution*resolution)

	ringIndex := func(j, i, k int) int {
		if j == 0 {
			return 0
		}
		return ringStart(n, j) + (i*j+k)%(n*j)
	}

	for j := 1; j <= resolution; j++ {
		for i := 0; i < n; i++ {
			for k := 0; k < j; k++ {
				tris = append(tris, Tri{ringIndex(j, i, k), ringIndex(j, i, k+1), ringIndex(j-1, i, k)})
				if k < j-1 {
					tris = append(tris, Tri{ringIndex(j-1, i, k), ringIndex(j, i, k+1), ringIndex(j-1, i, k+1)})
				}
			}
		}
	}

	if this.orientation < 0 {
		for i := range tris {
			tris[i][1], tris[i][2] = tris[i][2], tris[i][1]
		}
	}

	return tris
}

// index of the first point of ring j
func ringStart(n, j int) int {
	return 1 + n*j*(j-1)/2
}

func (this *Domain) wrap(i int) int {
	n := len(this.vertices)
	return ((i % n) + n) % n
}

// Shoelace formula
func (this *Domain) signedArea() float64 {
	var area float64
	for i := range this.vertices {
		a, b := this.Vertex(i), this.Vertex(i+1)
		area += vec2.Cross(&a, &b)
	}
	return area / 2
}

// Validate the polygon: enough sides, no degenerate side, convex
func (this *Domain) check() error {
	n := len(this.vertices)
	if n < 3 {
		return fmt.Errorf("domain with %d vertices: %w", n, ErrSideCount)
	}

	for i := 0; i < n; i++ {
		a, b, c := this.Vertex(i), this.Vertex(i+1), this.Vertex(i+2)
		if ab := vec2.Sub(&a, &b); ab.Length() < Epsilon {
			return fmt.Errorf("side %d is degenerate: %w", i, ErrDomain)
		}

		e, f := vec2.Sub(&b, &a), vec2.Sub(&c, &b)
		if this.orientation*vec2.Cross(&e, &f) < -Epsilon {
			return fmt.Errorf("polygon is not convex at vertex %d: %w", this.wrap(i+1), ErrDomain)
		}
	}

	if math.Abs(this.signedArea()) < Epsilon {
		return fmt.Errorf("polygon has no area: %w", ErrDomain)
	}

	return nil
}
