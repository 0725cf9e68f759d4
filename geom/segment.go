package geom

import "github.com/ungerik/go3d/float64/vec2"

// Find the closest point on a segment
//
// **params**
// + point to project
// + first point of segment
// + second point of segment
//
// **returns**
// + segment parameter of the closest point, in [0, 1]
// + the closest point
func SegmentClosestPoint(pt, a, b *vec2.T) (float64, vec2.T) {
	dif := vec2.Sub(b, a)
	l := dif.Length()

	if l < Epsilon {
		return 0, *a
	}

	a2pt := vec2.Sub(pt, a)
	t := vec2.Dot(&a2pt, &dif) / (l * l)

	switch {
	case t <= 0:
		return 0, *a
	case t >= 1:
		return 1, *b
	}

	return t, vec2.Interpolate(a, b, t)
}
