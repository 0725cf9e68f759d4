package internal

import "github.com/ungerik/go3d/float64/vec3"

// HomoPoint is a point in homogeneous space, stored as (w*p, w).
type HomoPoint struct {
	Vec3 vec3.T
	W    float64
}

func (this *HomoPoint) Add(pt *HomoPoint) *HomoPoint {
	this.Vec3.Add(&pt.Vec3)
	this.W += pt.W

	return this
}

// AddScaled adds f*pt in place.
func (this *HomoPoint) AddScaled(f float64, pt *HomoPoint) *HomoPoint {
	this.Vec3[0] += f * pt.Vec3[0]
	this.Vec3[1] += f * pt.Vec3[1]
	this.Vec3[2] += f * pt.Vec3[2]
	this.W += f * pt.W

	return this
}

func (this *HomoPoint) Scale(scale float64) *HomoPoint {
	this.Vec3.Scale(scale)
	this.W *= scale

	return this
}

func Homogenized(pt vec3.T, w float64) HomoPoint {
	return HomoPoint{pt.Scaled(w), w}
}

// Transform a slice of points into their homogeneous equivalents
//
// **params**
// + control points
// + control point weights, one per point
//
// **returns**
// + control points of the form (wi*pi, wi)
func Homogenize1d(pts []vec3.T, weights []float64) []HomoPoint {
	homoPts := make([]HomoPoint, 0, len(pts))
	for i, pt := range pts {
		homoPts = append(homoPts, Homogenized(pt, weights[i]))
	}

	return homoPts
}

// Dehomogenized divides by the weight.
func (this *HomoPoint) Dehomogenized() vec3.T {
	return this.Vec3.Scaled(1 / this.W)
}

func Dehomogenize1d(homoPoints []HomoPoint) []vec3.T {
	result := make([]vec3.T, 0, len(homoPoints))
	for _, homoPt := range homoPoints {
		result = append(result, homoPt.Dehomogenized())
	}

	return result
}

func Weight1d(homoPoints []HomoPoint) (weights []float64) {
	weights = make([]float64, len(homoPoints))
	for i := range weights {
		weights[i] = homoPoints[i].W
	}

	return
}
