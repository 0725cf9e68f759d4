package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/GridEyes-2010/transfinite"
	"github.com/ungerik/go3d/float64/vec3"
)

// ErrRational is returned when writing a rational curve to a lop file.
var ErrRational = errors.New("lop files cannot hold rational curves")

// ReadLOP reads a curve loop: the curve count, then for every curve its
// degree, knot count, knots, control point count and control points.
func ReadLOP(r io.Reader) ([]*transfinite.BSplineCurve, error) {
	s := newTokenScanner(r)

	n, err := s.count("curve count")
	if err != nil {
		return nil, err
	}

	// counts come from the file; slices grow as tokens arrive
	var curves []*transfinite.BSplineCurve
	for i := 0; i < n; i++ {
		degree, err := s.count("degree")
		if err != nil {
			return nil, err
		}

		nk, err := s.count("knot count")
		if err != nil {
			return nil, err
		}
		var knots []float64
		for j := 0; j < nk; j++ {
			knot, err := s.float("knot")
			if err != nil {
				return nil, err
			}
			knots = append(knots, knot)
		}

		nc, err := s.count("control point count")
		if err != nil {
			return nil, err
		}
		var cps []vec3.T
		for j := 0; j < nc; j++ {
			p, err := s.point("control point")
			if err != nil {
				return nil, err
			}
			cps = append(cps, p)
		}

		curve, err := transfinite.NewBSplineCurve(degree, cps, nil, knots)
		if err != nil {
			return nil, fmt.Errorf("%w: curve %d: %v", ErrFormat, i, err)
		}
		curves = append(curves, curve)
	}

	return curves, nil
}

func LoadLOP(filename string) ([]*transfinite.BSplineCurve, error) {
	return load(filename, ReadLOP)
}

// WriteLOP writes polynomial curves; the format has no weights.
func WriteLOP(w io.Writer, curves []*transfinite.BSplineCurve) error {
	for i, curve := range curves {
		if curve.IsRational() {
			return fmt.Errorf("curve %d: %w", i, ErrRational)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(curves))

	for _, curve := range curves {
		fmt.Fprintln(bw, curve.Degree())

		knots := curve.Knots()
		fmt.Fprintln(bw, len(knots))
		for i, knot := range knots {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(formatFloat(knot))
		}
		bw.WriteByte('\n')

		cps := curve.ControlPoints()
		fmt.Fprintln(bw, len(cps))
		for i := range cps {
			writePoint(bw, "", &cps[i])
		}
	}

	return bw.Flush()
}

func SaveLOP(filename string, curves []*transfinite.BSplineCurve) error {
	return save(filename, func(w io.Writer) error {
		return WriteLOP(w, curves)
	})
}
