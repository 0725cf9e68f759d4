package transfinite

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// MaxControlPoints bounds the size of a control net.
const MaxControlPoints = 1 << 24

// ControlPointCount is the size of the net of an n-sided patch of the
// given degree, central point included. It returns -1 for a negative shape
// or one whose net would exceed MaxControlPoints.
func ControlPointCount(n, degree int) int {
	if n < 0 || degree < 0 {
		return -1
	}

	layers := (degree + 1) / 2
	if float64(n)*float64(1+degree/2)*float64(layers) >= MaxControlPoints {
		return -1
	}
	return n*(1+degree/2)*layers + 1
}

// ControlNet stores the control points of a generalized Bézier patch once
// each. Index 0 is the central point; the others follow the canonical
// order: row by row, side by side, column row..degree-row-1.
//
// A point is addressed by (side, col, row) with col in [0, degree] and row
// in [0, layers). Points on a seam have two addresses, both resolving to
// the same slot.
type ControlNet struct {
	sides, degree, layers int
	points                []vec3.T
	set                   []bool
}

func NewControlNet(n, degree int) (*ControlNet, error) {
	if n < 3 {
		return nil, fmt.Errorf("control net with %d sides: %w", n, ErrSideCount)
	}
	if degree < 1 {
		return nil, fmt.Errorf("control net of degree %d: %w", degree, ErrDegree)
	}

	size := ControlPointCount(n, degree)
	if size < 0 {
		return nil, fmt.Errorf("control net with %d sides of degree %d exceeds %d points: %w", n, degree, MaxControlPoints, ErrDegree)
	}

	return &ControlNet{
		sides:  n,
		degree: degree,
		layers: (degree + 1) / 2,
		points: make([]vec3.T, size),
		set:    make([]bool, size),
	}, nil
}

func (this *ControlNet) Sides() int {
	return this.sides
}

func (this *ControlNet) Degree() int {
	return this.degree
}

func (this *ControlNet) Layers() int {
	return this.layers
}

func (this *ControlNet) Size() int {
	return len(this.points)
}

// Resolve an address to its flat index
//
// **params**
// + side index, taken modulo the side count
// + column in [0, degree]
// + row in [0, layers)
//
// **returns**
// + index in [1, Size())
// + an error wrapping ErrControlPoint for an address outside the net
func (this *ControlNet) Index(side, col, row int) (int, error) {
	n, d := this.sides, this.degree
	if col < 0 || col > d || row < 0 || row >= this.layers {
		return 0, fmt.Errorf("control point (%d, %d, %d) of degree %d: %w", side, col, row, d, ErrControlPoint)
	}

	switch {
	case col < row:
		// seen from the previous side
		side, col, row = side-1, d-row, col
	case col >= d-row:
		// seen from the next side
		side, col, row = side+1, row, d-col
	}
	side = ((side % n) + n) % n

	return 1 + n*row*(d-row+1) + side*(d-2*row) + col - row, nil
}

// Canonical returns the primary address of the flat index c >= 1.
func (this *ControlNet) Canonical(c int) (side, col, row int, err error) {
	if c < 1 || c >= len(this.points) {
		return 0, 0, 0, fmt.Errorf("control point index %d of %d: %w", c, len(this.points), ErrControlPoint)
	}

	n, d := this.sides, this.degree
	c--
	for c >= n*(d-2*row) {
		c -= n * (d - 2*row)
		row++
	}
	side = c / (d - 2*row)
	col = row + c%(d-2*row)

	return
}

// Traverse visits every non-central point in canonical order.
func (this *ControlNet) Traverse(fn func(c, side, col, row int)) {
	d, n := this.degree, this.sides
	for c, side, col, row := 1, 0, 0, 0; c < len(this.points); c, col = c+1, col+1 {
		if col >= d-row {
			side++
			if side >= n {
				side = 0
				row++
			}
			col = row
		}
		fn(c, side, col, row)
	}
}

func (this *ControlNet) Central() vec3.T {
	return this.points[0]
}

func (this *ControlNet) SetCentral(p vec3.T) {
	this.points[0] = p
	this.set[0] = true
}

func (this *ControlNet) Point(side, col, row int) (vec3.T, error) {
	c, err := this.Index(side, col, row)
	if err != nil {
		return vec3.T{}, err
	}
	return this.points[c], nil
}

func (this *ControlNet) SetPoint(side, col, row int, p vec3.T) error {
	c, err := this.Index(side, col, row)
	if err != nil {
		return err
	}
	this.points[c] = p
	this.set[c] = true
	return nil
}

// At returns the point at flat index c; index 0 is the central point.
func (this *ControlNet) At(c int) vec3.T {
	return this.points[c]
}

func (this *ControlNet) SetAt(c int, p vec3.T) error {
	if c < 0 || c >= len(this.points) {
		return fmt.Errorf("control point index %d of %d: %w", c, len(this.points), ErrControlPoint)
	}
	this.points[c] = p
	this.set[c] = true
	return nil
}

// Complete reports whether every point has been set.
func (this *ControlNet) Complete() bool {
	for _, ok := range this.set {
		if !ok {
			return false
		}
	}
	return true
}
