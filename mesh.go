package transfinite

import (
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// Tri holds three point indices, counter-clockwise when seen from the
// front.
type Tri [3]int

// Mesh is an indexed triangle mesh. UVs and Normals are either empty or
// parallel to Points.
type Mesh struct {
	Faces   []Tri
	Points  []vec3.T
	Normals []vec3.T
	UVs     []vec2.T
}

func newMesh() *Mesh {
	return &Mesh{
		Faces:   make([]Tri, 0),
		Points:  make([]vec3.T, 0),
		Normals: make([]vec3.T, 0),
		UVs:     make([]vec2.T, 0),
	}
}

// ComputeNormals sets area-weighted vertex normals from the faces.
func (this *Mesh) ComputeNormals() *Mesh {
	this.Normals = make([]vec3.T, len(this.Points))

	for _, face := range this.Faces {
		a, b, c := &this.Points[face[0]], &this.Points[face[1]], &this.Points[face[2]]
		ab, ac := vec3.Sub(b, a), vec3.Sub(c, a)
		normal := vec3.Cross(&ab, &ac)
		for _, i := range face {
			this.Normals[i].Add(&normal)
		}
	}

	for i := range this.Normals {
		if this.Normals[i].LengthSqr() > 0 {
			this.Normals[i].Normalize()
		}
	}

	return this
}

func (this *Mesh) BoundingBox() *BoundingBox {
	return new(BoundingBox).AddRange(this.Points)
}
