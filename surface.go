package transfinite

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	. "github.com/GridEyes-2010/transfinite/internal"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/floats"
)

// Surface maps points of its domain polygon into space. SetupLoop must
// succeed before Eval; Eval is then safe for concurrent use until the next
// mutation.
type Surface interface {
	Domain() *Domain
	SetupLoop() error
	Eval(uv vec2.T) (vec3.T, error)
	Tessellate(resolution int) (*Mesh, error)
}

var (
	_ Surface = (*SurfaceSideBased)(nil)
	_ Surface = (*SurfaceGeneralizedBezier)(nil)
)

// surfaceBase holds the domain and parameterization shared by both surface
// kinds. Either may be left nil, in which case setup picks the regular
// n-gon and the bilinear parameterization.
type surfaceBase struct {
	domain *Domain
	param  Parameterization
}

func (this *surfaceBase) Domain() *Domain {
	return this.domain
}

func (this *surfaceBase) Parameterization() Parameterization {
	return this.param
}

func (this *surfaceBase) setDomain(domain *Domain) {
	this.domain = domain
	if this.param != nil && this.param.Domain() != domain {
		this.param = nil
	}
}

func (this *surfaceBase) setParameterization(param Parameterization) {
	this.param = param
	if param != nil {
		this.domain = param.Domain()
	}
}

// resolve fills in the defaults for an n-sided surface.
func (this *surfaceBase) resolve(n int) error {
	if this.domain == nil {
		domain, err := RegularDomain(n)
		if err != nil {
			return err
		}
		this.domain = domain
	}

	if m := this.domain.SideCount(); m != n {
		return fmt.Errorf("domain has %d sides, surface has %d: %w", m, n, ErrSideCount)
	}

	if this.param == nil {
		this.param = NewBilinear(this.domain)
	}

	return nil
}

func (this *surfaceBase) mapToRibbons(uv vec2.T, sd []vec2.T) error {
	for i := range sd {
		var err error
		if sd[i], err = this.param.MapToRibbon(i, uv); err != nil {
			return err
		}
	}
	return nil
}

// Blend weights from the local distances of all sides
//
// **params**
// + the (s, d) coordinates of every side
// + slice to reuse for the result, may be nil
//
// **returns**
// + w[i] = d[i]^-2 / sum_j d[j]^-2; when some distances vanish the weight
// is shared evenly among those sides and the others get zero
func blendWeights(sd []vec2.T, weights []float64) []float64 {
	weights = append(weights[:0], make([]float64, len(sd))...)

	zeros := 0
	for i := range sd {
		if math.Abs(sd[i][1]) < Epsilon {
			zeros++
		}
	}

	if zeros > 0 {
		for i := range sd {
			if math.Abs(sd[i][1]) < Epsilon {
				weights[i] = 1 / float64(zeros)
			}
		}
		return weights
	}

	for i := range sd {
		weights[i] = 1 / (sd[i][1] * sd[i][1])
	}
	floats.Scale(1/floats.Sum(weights), weights)

	return weights
}

// Evaluate a surface on the ring sampling of its domain
//
// **params**
// + the surface, already set up
// + number of rings, at least 1
//
// **returns**
// + mesh with points, parameters, faces and normals
// + the first evaluation error, if any
func tessellate(surface Surface, resolution int) (*Mesh, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("tessellation resolution %d must be positive", resolution)
	}

	domain := surface.Domain()
	if domain == nil {
		return nil, ErrNotReady
	}

	mesh := newMesh()
	mesh.UVs = domain.Parameters(resolution)
	mesh.Faces = domain.MeshTopology(resolution)
	mesh.Points = make([]vec3.T, len(mesh.UVs))

	parallelDegree := min(runtime.NumCPU(), len(mesh.UVs))
	errs := make([]error, parallelDegree)

	var wg sync.WaitGroup
	for bn := 0; bn < parallelDegree; bn++ {
		wg.Add(1)
		go func(bn int) {
			defer wg.Done()
			kMin, kMax := bucketRange(len(mesh.UVs), parallelDegree, bn)
			for k := kMin; k < kMax; k++ {
				p, err := surface.Eval(mesh.UVs[k])
				if err != nil {
					errs[bn] = err
					return
				}
				mesh.Points[k] = p
			}
		}(bn)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	bbox := mesh.BoundingBox()
	if !bbox.IsFinite() {
		return nil, fmt.Errorf("tessellation at resolution %d: %w", resolution, ErrNotFinite)
	}

	Logger().Debug("tessellated surface", "points", len(mesh.Points), "faces", len(mesh.Faces), "diagonal", bbox.Diagonal())

	return mesh.ComputeNormals(), nil
}

// bucketRange splits [0, count) into parts nearly equal ranges and
// returns the half-open range of the given bucket.
func bucketRange(count, parts, bucket int) (kMin, kMax int) {
	size, rem := count/parts, count%parts
	kMin = bucket*size + min(bucket, rem)
	kMax = kMin + size
	if bucket < rem {
		kMax++
	}
	return
}
