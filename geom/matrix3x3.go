package geom

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Matrix3x3 is a 3x3 matrix stored row-major. Products go through gonum's
// r3.Mat, which shares the layout.
type Matrix3x3 [9]float64

func Identity() Matrix3x3 {
	return Matrix3x3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Construct the rotation matrix about an axis by an angle (Rodrigues' formula)
//
//	R = cos(angle) I + sin(angle) [axis]x + (1 - cos(angle)) axis axis^T
//
// **params**
// + the rotation axis, which must be a unit vector; it is not normalized here,
// so a non-unit axis gives a matrix that is not a rotation
// + the angle in radians, counter-clockwise when looking against the axis
//
// **returns**
// + the rotation matrix
func Rotation(axis *vec3.T, angle float64) Matrix3x3 {
	cross := Matrix3x3{
		0, -axis[2], axis[1],
		axis[2], 0, -axis[0],
		-axis[1], axis[0], 0,
	}

	var outer Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			outer[3*i+j] = axis[i] * axis[j]
		}
	}

	cos, sin := math.Cos(angle), math.Sin(angle)

	result := Identity()
	result.Scale(cos)
	cross.Scale(sin)
	outer.Scale(1 - cos)

	return *result.Add(&cross).Add(&outer)
}

// Find the rotation that turns the direction of one vector into the direction of another
//
// **params**
// + the source direction
// + the target direction
//
// **returns**
// + the rotation about from x to, or the identity when either vector vanishes or
// the two are (anti)parallel
func RotationBetween(from, to *vec3.T) Matrix3x3 {
	lengths := from.Length() * to.Length()
	if lengths < Epsilon {
		return Identity()
	}

	axis := vec3.Cross(from, to)
	sin := axis.Length() / lengths
	if sin < Epsilon {
		return Identity()
	}
	cos := vec3.Dot(from, to) / lengths

	axis.Normalize()
	return Rotation(&axis, math.Atan2(sin, cos))
}

// Add is the component-wise sum of two matrices.
func Add(a, b *Matrix3x3) Matrix3x3 {
	sum := r3.NewMat(nil)
	sum.Add(a.mat(), b.mat())
	return fromMat(sum)
}

// Mul returns the matrix product a b.
func Mul(a, b *Matrix3x3) Matrix3x3 {
	prod := r3.NewMat(nil)
	prod.Mul(a.mat(), b.mat())
	return fromMat(prod)
}

func (this *Matrix3x3) At(row, col int) float64 {
	return this[3*row+col]
}

func (this *Matrix3x3) Add(m *Matrix3x3) *Matrix3x3 {
	*this = Add(this, m)
	return this
}

func (this *Matrix3x3) Scale(f float64) *Matrix3x3 {
	scaled := r3.NewMat(nil)
	scaled.Scale(f, this.mat())
	*this = fromMat(scaled)
	return this
}

func (this *Matrix3x3) Scaled(f float64) Matrix3x3 {
	result := *this
	result.Scale(f)
	return result
}

// MulVec returns the product of the matrix and a column vector.
func (this *Matrix3x3) MulVec(v *vec3.T) vec3.T {
	p := this.mat().MulVec(r3.Vec{X: v[0], Y: v[1], Z: v[2]})
	return vec3.T{p.X, p.Y, p.Z}
}

// Mul returns this m.
func (this *Matrix3x3) Mul(m *Matrix3x3) Matrix3x3 {
	return Mul(this, m)
}

// AssignMul sets the matrix to this m.
func (this *Matrix3x3) AssignMul(m *Matrix3x3) *Matrix3x3 {
	*this = Mul(this, m)
	return this
}

func (this *Matrix3x3) Transposed() Matrix3x3 {
	return fromMat(this.mat().T())
}

func (this *Matrix3x3) Det() float64 {
	return this.mat().Det()
}

// mat copies the matrix into gonum's row-major 3x3 type.
func (this *Matrix3x3) mat() *r3.Mat {
	return r3.NewMat(append([]float64(nil), this[:]...))
}

func fromMat(m mat.Matrix) Matrix3x3 {
	var result Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[3*i+j] = m.At(i, j)
		}
	}
	return result
}
