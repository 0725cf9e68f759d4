// Package geom holds the small linear algebra the surface code needs on top
// of go3d: row-major 3x3 matrices, rotations and vector helpers.
package geom

import "github.com/ungerik/go3d/float64/vec3"

const Epsilon = 1e-12

// Combine returns the linear combination a*p + b*q.
func Combine(a float64, p *vec3.T, b float64, q *vec3.T) vec3.T {
	return vec3.T{
		a*p[0] + b*q[0],
		a*p[1] + b*q[1],
		a*p[2] + b*q[2],
	}
}

// AddScaled adds f*v to dst in place.
func AddScaled(dst *vec3.T, f float64, v *vec3.T) *vec3.T {
	dst[0] += f * v[0]
	dst[1] += f * v[1]
	dst[2] += f * v[2]
	return dst
}
