package fileio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/GridEyes-2010/transfinite"
)

// ReadBezier reads a generalized Bézier patch: "n d", the central point,
// then the other control points in canonical order. The patch is set up
// and ready for evaluation.
func ReadBezier(r io.Reader) (*transfinite.SurfaceGeneralizedBezier, error) {
	s := newTokenScanner(r)

	n, err := s.count("side count")
	if err != nil {
		return nil, err
	}
	d, err := s.count("degree")
	if err != nil {
		return nil, err
	}

	surf := transfinite.NewSurfaceGeneralizedBezier()
	if err := surf.InitNetwork(n, d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	for c := 0; c < surf.ControlPointCount(); c++ {
		p, err := s.point("control point")
		if err != nil {
			return nil, err
		}
		if err := surf.SetControlPointAt(c, p); err != nil {
			return nil, err
		}
	}

	if err := surf.SetupLoop(); err != nil {
		return nil, err
	}

	transfinite.Logger().Debug("read generalized Bézier patch", "sides", n, "degree", d)

	return surf, nil
}

func LoadBezier(filename string) (*transfinite.SurfaceGeneralizedBezier, error) {
	return load(filename, ReadBezier)
}

// WriteBezier writes the control net in the format ReadBezier reads.
// Numbers use the shortest exact representation, so a read followed by a
// write reproduces the file.
func WriteBezier(w io.Writer, surf *transfinite.SurfaceGeneralizedBezier) error {
	net := surf.Net()
	if net == nil {
		return fmt.Errorf("write generalized Bézier patch: %w", transfinite.ErrNotReady)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, net.Sides(), net.Degree())

	for c := 0; c < net.Size(); c++ {
		p := net.At(c)
		writePoint(bw, "", &p)
	}

	return bw.Flush()
}

func SaveBezier(filename string, surf *transfinite.SurfaceGeneralizedBezier) error {
	return save(filename, func(w io.Writer) error {
		return WriteBezier(w, surf)
	})
}

// controlNetFaces connects the control points into quads, with the
// innermost ring closed by quads (even degree) or triangles (odd degree)
// around the central point. Indices are flat control point indices.
func controlNetFaces(net *transfinite.ControlNet) ([][]int, error) {
	n, d, l := net.Sides(), net.Degree(), net.Layers()
	var faces [][]int

	var err error
	index := func(i, j, k int) int {
		c, e := net.Index(i, j, k)
		if e != nil && err == nil {
			err = e
		}
		return c
	}

	for i := 0; i < n; i++ {
		for j := 0; j <= d/2; j++ {
			for k := 0; k < l-1; k++ {
				faces = append(faces, []int{index(i, j, k), index(i, j+1, k), index(i, j+1, k+1), index(i, j, k+1)})
			}
		}
	}

	for i := 0; i < n; i++ {
		if d%2 == 0 {
			faces = append(faces, []int{index(i, l-1, l-1), index(i, l, l-1), 0, index(i-1, l, l-1)})
		} else {
			faces = append(faces, []int{index(i, l-1, l-1), index(i, l, l-1), 0})
		}
	}

	return faces, err
}

// WriteControlNet writes the control net as an OBJ mesh. Every control
// point is one vertex, in canonical order after the central point.
func WriteControlNet(w io.Writer, surf *transfinite.SurfaceGeneralizedBezier) error {
	net := surf.Net()
	if net == nil {
		return fmt.Errorf("write control net: %w", transfinite.ErrNotReady)
	}

	faces, err := controlNetFaces(net)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for c := 0; c < net.Size(); c++ {
		p := net.At(c)
		writePoint(bw, "v ", &p)
	}

	for _, face := range faces {
		bw.WriteByte('f')
		for _, c := range face {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(c + 1))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func SaveControlNet(filename string, surf *transfinite.SurfaceGeneralizedBezier) error {
	return save(filename, func(w io.Writer) error {
		return WriteControlNet(w, surf)
	})
}
