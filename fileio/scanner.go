// Package fileio reads and writes the files around the surface code:
// curve loops (.lop), triangle meshes (.obj) and generalized Bézier
// control nets (.gbp).
package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/GridEyes-2010/transfinite"
	"github.com/ungerik/go3d/float64/vec3"
)

// ErrFormat is wrapped by every parse error.
var ErrFormat = errors.New("malformed file")

// tokenScanner reads whitespace separated numbers.
type tokenScanner struct {
	*bufio.Scanner
	tokens int
}

func newTokenScanner(r io.Reader) *tokenScanner {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &tokenScanner{Scanner: s}
}

func (this *tokenScanner) next(what string) (string, error) {
	if !this.Scan() {
		if err := this.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: missing %s after %d tokens", ErrFormat, what, this.tokens)
	}
	this.tokens++
	return this.Text(), nil
}

func (this *tokenScanner) count(what string) (int, error) {
	token, err := this.next(what)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s %q is not a count", ErrFormat, what, token)
	}
	return n, nil
}

func (this *tokenScanner) float(what string) (float64, error) {
	token, err := this.next(what)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrFormat, what, token)
	}
	return f, nil
}

func (this *tokenScanner) point(what string) (p vec3.T, err error) {
	for i := range p {
		if p[i], err = this.float(what); err != nil {
			return
		}
	}
	return
}

// formatFloat uses the shortest representation that parses back exactly.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func writePoint(w *bufio.Writer, prefix string, p *vec3.T) {
	w.WriteString(prefix)
	for i, f := range p {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(formatFloat(f))
	}
	w.WriteByte('\n')
}

// load opens filename and hands it to read, logging failures.
func load[T any](filename string, read func(io.Reader) (T, error)) (T, error) {
	var zero T

	f, err := os.Open(filename)
	if err != nil {
		transfinite.Logger().Warn("unable to open file", "file", filename, "error", err)
		return zero, err
	}
	defer f.Close()

	result, err := read(f)
	if err != nil {
		transfinite.Logger().Warn("unable to read file", "file", filename, "error", err)
		return zero, fmt.Errorf("%s: %w", filename, err)
	}

	return result, nil
}

// save creates filename and hands it to write, logging failures.
func save(filename string, write func(io.Writer) error) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		transfinite.Logger().Warn("unable to create file", "file", filename, "error", err)
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			transfinite.Logger().Warn("unable to write file", "file", filename, "error", err)
		}
	}()

	return write(f)
}
