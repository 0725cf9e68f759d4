package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ungerik/go3d/float64/vec2"
)

func TestSegmentClosestPoint(t *testing.T) {
	a, b := vec2.T{1, 1}, vec2.T{3, 1}

	u, p := SegmentClosestPoint(&vec2.T{1.5, 4}, &a, &b)
	assert.InDelta(t, 0.25, u, tol)
	assert.InDeltaSlice(t, []float64{1.5, 1}, p[:], tol)

	u, p = SegmentClosestPoint(&vec2.T{0, 0}, &a, &b)
	assert.Equal(t, 0.0, u)
	assert.Equal(t, a, p)

	u, p = SegmentClosestPoint(&vec2.T{5, -2}, &a, &b)
	assert.Equal(t, 1.0, u)
	assert.Equal(t, b, p)

	u, p = SegmentClosestPoint(&vec2.T{5, -2}, &a, &a)
	assert.Equal(t, 0.0, u)
	assert.Equal(t, a, p)
}
