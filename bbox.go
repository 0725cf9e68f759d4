package transfinite

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// BoundingBox is the axis aligned extent of a point set. The zero value is
// an empty box.
type BoundingBox struct {
	Min, Max vec3.T
	nonEmpty bool
}

// Add grows the box to hold p.
func (this *BoundingBox) Add(p *vec3.T) *BoundingBox {
	if !this.nonEmpty {
		this.Min, this.Max, this.nonEmpty = *p, *p, true
		return this
	}

	for i, x := range p {
		this.Min[i] = math.Min(this.Min[i], x)
		this.Max[i] = math.Max(this.Max[i], x)
	}
	return this
}

func (this *BoundingBox) AddRange(points []vec3.T) *BoundingBox {
	for i := range points {
		this.Add(&points[i])
	}
	return this
}

func (this *BoundingBox) IsEmpty() bool {
	return !this.nonEmpty
}

// IsFinite reports whether the box is empty or every point added had
// finite coordinates. math.Min and math.Max propagate NaN, so a single
// bad point is enough to fail.
func (this *BoundingBox) IsFinite() bool {
	for i := range this.Min {
		if math.IsNaN(this.Min[i]) || math.IsInf(this.Min[i], 0) ||
			math.IsNaN(this.Max[i]) || math.IsInf(this.Max[i], 0) {
			return false
		}
	}
	return true
}

// Contains reports whether p lies in the box grown by tol on every side.
func (this *BoundingBox) Contains(p *vec3.T, tol float64) bool {
	if !this.nonEmpty {
		return false
	}

	for i, x := range p {
		if x < this.Min[i]-tol || x > this.Max[i]+tol {
			return false
		}
	}
	return true
}

// Size is the edge lengths of the box.
func (this *BoundingBox) Size() vec3.T {
	return vec3.Sub(&this.Max, &this.Min)
}

// Diagonal is 0 for an empty box.
func (this *BoundingBox) Diagonal() float64 {
	return vec3.Distance(&this.Min, &this.Max)
}
