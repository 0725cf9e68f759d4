package transfinite

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestControlPointCount(t *testing.T) {
	assert.Equal(t, 13, ControlPointCount(3, 3))
	assert.Equal(t, 9, ControlPointCount(4, 2))
	assert.Equal(t, 4*3*2+1, ControlPointCount(4, 4))
	assert.Equal(t, 5*3*3+1, ControlPointCount(5, 5))
	assert.Equal(t, 4, ControlPointCount(3, 1))

	assert.Equal(t, -1, ControlPointCount(-3, 2))
	assert.Equal(t, -1, ControlPointCount(3037000499, 3037000499))
	assert.Equal(t, -1, ControlPointCount(math.MaxInt, 1))
}

func TestControlNetValidation(t *testing.T) {
	_, err := NewControlNet(2, 3)
	assert.ErrorIs(t, err, ErrSideCount)
	_, err = NewControlNet(3, 0)
	assert.ErrorIs(t, err, ErrDegree)
	_, err = NewControlNet(3037000499, 3037000499)
	assert.ErrorIs(t, err, ErrDegree)
	_, err = NewControlNet(3, math.MaxInt)
	assert.ErrorIs(t, err, ErrDegree)

	net, err := NewControlNet(4, 3)
	require.NoError(t, err)
	for _, addr := range [][3]int{{0, -1, 0}, {0, 4, 0}, {0, 1, 2}, {0, 1, -1}} {
		_, err := net.Index(addr[0], addr[1], addr[2])
		assert.ErrorIs(t, err, ErrControlPoint, "%v", addr)
	}

	_, _, _, err = net.Canonical(0)
	assert.ErrorIs(t, err, ErrControlPoint)
	_, _, _, err = net.Canonical(net.Size())
	assert.ErrorIs(t, err, ErrControlPoint)
	assert.ErrorIs(t, net.SetAt(net.Size(), vec3.T{}), ErrControlPoint)
}

func TestControlNetTraversalMatchesIndex(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6} {
		for d := 1; d <= 7; d++ {
			net, err := NewControlNet(n, d)
			require.NoError(t, err)

			visited := 0
			net.Traverse(func(c, side, col, row int) {
				visited++
				assert.Equal(t, visited, c)

				index, err := net.Index(side, col, row)
				require.NoError(t, err)
				assert.Equal(t, c, index, "n=%d d=%d (%d, %d, %d)", n, d, side, col, row)

				cs, cc, cr, err := net.Canonical(c)
				require.NoError(t, err)
				assert.Equal(t, [3]int{side, col, row}, [3]int{cs, cc, cr})
			})
			assert.Equal(t, ControlPointCount(n, d)-1, visited)
		}
	}
}

func TestControlNetSeamSharing(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		for d := 1; d <= 6; d++ {
			net, err := NewControlNet(n, d)
			require.NoError(t, err)

			for i := 0; i < n; i++ {
				for r := 0; r < net.Layers(); r++ {
					a, err := net.Index(i, d-r, r)
					require.NoError(t, err)
					b, err := net.Index((i+1)%n, r, r)
					require.NoError(t, err)
					assert.Equal(t, b, a, "n=%d d=%d side %d row %d", n, d, i, r)

					// every address on the seam strip of the next side
					for col := 0; col < r; col++ {
						a, err := net.Index((i+1)%n, col, r)
						require.NoError(t, err)
						b, err := net.Index(i, d-r, col)
						require.NoError(t, err)
						assert.Equal(t, b, a)
					}
				}
			}
		}
	}
}

func TestControlNetEveryAddressHitsOneSlot(t *testing.T) {
	net, err := NewControlNet(5, 5)
	require.NoError(t, err)

	hits := make(map[int]int)
	for i := 0; i < 5; i++ {
		for row := 0; row < net.Layers(); row++ {
			for col := 0; col <= 5; col++ {
				c, err := net.Index(i, col, row)
				require.NoError(t, err)
				require.Greater(t, c, 0)
				require.Less(t, c, net.Size())
				hits[c]++
			}
		}
	}

	assert.Len(t, hits, net.Size()-1)
	for c, count := range hits {
		assert.Contains(t, []int{1, 2}, count, "slot %d", c)
	}
}

func TestControlNetPoints(t *testing.T) {
	net, err := NewControlNet(3, 3)
	require.NoError(t, err)
	assert.False(t, net.Complete())

	net.SetCentral(vec3.T{0, 0, 1})
	net.Traverse(func(c, side, col, row int) {
		require.NoError(t, net.SetPoint(side, col, row, vec3.T{float64(c), 0, 0}))
	})
	assert.True(t, net.Complete())

	p, err := net.Point(1, 3, 0)
	require.NoError(t, err)
	q, err := net.Point(2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, q, p)

	assert.Equal(t, vec3.T{0, 0, 1}, net.Central())
	assert.Equal(t, vec3.T{0, 0, 1}, net.At(0))
	assert.Equal(t, vec3.T{5, 0, 0}, net.At(5))
}
