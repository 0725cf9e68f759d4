package internal

import "github.com/ungerik/go3d/float64/vec3"

type Ray struct {
	Origin, Dir vec3.T
}

// RayIntersection is the closest approach of two rays.
type RayIntersection struct {
	Point0, Point1 vec3.T
	U0, U1         float64
}

// Point at parameter u
func (this Ray) At(u float64) vec3.T {
	dir := this.Dir.Scaled(u)
	return vec3.Add(&this.Origin, &dir)
}

// Find the closest point on a ray
//
// **params**
// + point to project
//
// **returns**
// + the projection, assuming a normalized direction
func (this Ray) ClosestPoint(pt vec3.T) vec3.T {
	o2pt := vec3.Sub(&pt, &this.Origin)
	return this.At(vec3.Dot(&o2pt, &this.Dir))
}

// Find the distance of a point to a ray
//
// **params**
// + point to project
//
// **returns**
// + the distance, assuming a normalized direction
func (this Ray) DistToPoint(pt vec3.T) float64 {
	d := this.ClosestPoint(pt)

	return vec3.Distance(&d, &pt)
}

// Find the closest approach of two rays
//
// **params**
// + the other ray
//
// **returns**
// + parameters and points of the closest approach on both rays
// + false if the rays are parallel
func (this Ray) Intersect(other Ray) (RayIntersection, bool) {
	dab := vec3.Dot(&this.Dir, &other.Dir)
	daa := vec3.Dot(&this.Dir, &this.Dir)
	dbb := vec3.Dot(&other.Dir, &other.Dir)

	div := daa*dbb - dab*dab
	if div <= Epsilon*daa*dbb {
		return RayIntersection{}, false
	}

	d := vec3.Sub(&this.Origin, &other.Origin)
	dab0 := vec3.Dot(&this.Dir, &d)
	dbb0 := vec3.Dot(&other.Dir, &d)

	num := dab*dbb0 - dbb*dab0
	u0 := num / div
	u1 := (dbb0 + u0*dab) / dbb

	return RayIntersection{this.At(u0), other.At(u1), u0, u1}, true
}
