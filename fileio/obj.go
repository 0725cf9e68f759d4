package fileio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/GridEyes-2010/transfinite"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// ReadOBJ reads the vertices and faces of a wavefront file. Polygons are
// split into triangle fans; texture and normal references are ignored.
func ReadOBJ(r io.Reader) (*transfinite.Mesh, error) {
	mesh := &transfinite.Mesh{}
	scanner := bufio.NewScanner(r)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: vertex needs 3 coordinates", ErrFormat, lineNo)
			}
			var p vec3.T
			for i := range p {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, err)
				}
				p[i] = f
			}
			mesh.Points = append(mesh.Points, p)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: face needs 3 vertices", ErrFormat, lineNo)
			}
			polygon := make([]int, len(fields)-1)
			for i, field := range fields[1:] {
				index, _, _ := strings.Cut(field, "/")
				k, err := strconv.Atoi(index)
				if err != nil || k < 1 {
					return nil, fmt.Errorf("%w: line %d: bad vertex reference %q", ErrFormat, lineNo, field)
				}
				polygon[i] = k - 1
			}
			for i := 1; i+1 < len(polygon); i++ {
				mesh.Faces = append(mesh.Faces, transfinite.Tri{polygon[0], polygon[i], polygon[i+1]})
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for i, face := range mesh.Faces {
		for _, k := range face {
			if k >= len(mesh.Points) {
				return nil, fmt.Errorf("%w: face %d refers to vertex %d of %d", ErrFormat, i, k+1, len(mesh.Points))
			}
		}
	}

	return mesh, nil
}

func LoadOBJ(filename string) (*transfinite.Mesh, error) {
	return load(filename, ReadOBJ)
}

// WriteOBJ writes vertices, then texture coordinates and normals when the
// mesh has one per vertex, then the faces.
func WriteOBJ(w io.Writer, mesh *transfinite.Mesh) error {
	bw := bufio.NewWriter(w)

	hasUVs := len(mesh.UVs) == len(mesh.Points) && len(mesh.UVs) > 0
	hasNormals := len(mesh.Normals) == len(mesh.Points) && len(mesh.Normals) > 0

	for i := range mesh.Points {
		writePoint(bw, "v ", &mesh.Points[i])
	}
	if hasUVs {
		for _, uv := range mesh.UVs {
			writeUV(bw, &uv)
		}
	}
	if hasNormals {
		for i := range mesh.Normals {
			writePoint(bw, "vn ", &mesh.Normals[i])
		}
	}

	for _, face := range mesh.Faces {
		bw.WriteByte('f')
		for _, k := range face {
			ref := strconv.Itoa(k + 1)
			bw.WriteByte(' ')
			switch {
			case hasUVs && hasNormals:
				bw.WriteString(ref + "/" + ref + "/" + ref)
			case hasUVs:
				bw.WriteString(ref + "/" + ref)
			case hasNormals:
				bw.WriteString(ref + "//" + ref)
			default:
				bw.WriteString(ref)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func SaveOBJ(filename string, mesh *transfinite.Mesh) error {
	return save(filename, func(w io.Writer) error {
		return WriteOBJ(w, mesh)
	})
}

func writeUV(w *bufio.Writer, uv *vec2.T) {
	w.WriteString("vt ")
	w.WriteString(formatFloat(uv[0]))
	w.WriteByte(' ')
	w.WriteString(formatFloat(uv[1]))
	w.WriteByte('\n')
}
