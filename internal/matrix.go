package internal

import (
	"errors"
	"math"
)

var ErrSingular = errors.New("matrix is singular")

// Matrix is a dense row-major matrix.
type Matrix [][]float64

func (this Matrix) Clone() Matrix {
	clone := make(Matrix, len(this))
	for i := range clone {
		clone[i] = append([]float64(nil), this[i]...)
	}

	return clone
}

// Solve the square system this x = vec with partial pivoting
func (this Matrix) Solve(vec []float64) ([]float64, error) {
	lu, err := newLUdecomp(this)
	if err != nil {
		return nil, err
	}
	return lu.solve(vec), nil
}

type luDecomp struct {
	LU [][]float64
	P  []int
}

func newLUdecomp(mat Matrix) (*luDecomp, error) {
	mat = mat.Clone()

	n := len(mat)
	P := make([]int, n)

	for k := 0; k < n; k++ {
		Pk := k
		max := math.Abs(mat[k][k])

		for j := k + 1; j < n; j++ {
			if absAjk := math.Abs(mat[j][k]); max < absAjk {
				max = absAjk
				Pk = j
			}
		}
		P[k] = Pk

		if max < Epsilon {
			return nil, ErrSingular
		}

		if Pk != k {
			mat[k], mat[Pk] = mat[Pk], mat[k]
		}

		Ak := mat[k]
		Akk := Ak[k]

		for i := k + 1; i < n; i++ {
			Ai := mat[i]
			Ai[k] /= Akk
			for j := k + 1; j < n; j++ {
				Ai[j] -= Ai[k] * Ak[j]
			}
		}
	}

	return &luDecomp{mat, P}, nil
}

func (this *luDecomp) solve(vec []float64) []float64 {
	x := append([]float64(nil), vec...)
	LU, P := this.LU, this.P
	n := len(LU)

	for i := 0; i < n; i++ {
		if Pi := P[i]; Pi != i {
			x[i], x[Pi] = x[Pi], x[i]
		}
	}

	for i := 0; i < n; i++ {
		LUi := LU[i]
		for j := 0; j < i; j++ {
			x[i] -= x[j] * LUi[j]
		}
	}

	for i := n - 1; i >= 0; i-- {
		LUi := LU[i]
		for j := i + 1; j < n; j++ {
			x[i] -= x[j] * LUi[j]
		}

		x[i] /= LUi[i]
	}

	return x
}
