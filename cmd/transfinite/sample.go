package main

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/GridEyes-2010/transfinite"
	"github.com/GridEyes-2010/transfinite/fileio"
	curves "github.com/GridEyes-2010/transfinite/make"
	"github.com/spf13/cobra"
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample <file.lop|file.gbp>",
	Short: "Write a sample curve loop or generalized Bézier patch",
	Long: `Write a sample input file. A .lop file gets a loop of arched cubic
curves over the corners of a regular polygon, a .gbp file gets a dome
shaped control net.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sides, _ := cmd.Flags().GetInt("sides")
		degree, _ := cmd.Flags().GetInt("degree")

		switch filepath.Ext(args[0]) {
		case ".lop":
			loop, err := sampleLoop(sides)
			if err != nil {
				return err
			}
			return fileio.SaveLOP(args[0], loop)
		case ".gbp":
			surface, err := sampleDome(sides, degree)
			if err != nil {
				return err
			}
			return fileio.SaveBezier(args[0], surface)
		default:
			return fmt.Errorf("%s: unknown sample format", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().IntP("sides", "n", 5, "number of sides")
	sampleCmd.Flags().IntP("degree", "d", 3, "degree of the generalized Bézier patch")
}

// sampleLoop arches a half circle over every side of the regular n-gon
// and fits a cubic through samples of it.
func sampleLoop(n int) ([]*transfinite.BSplineCurve, error) {
	domain, err := transfinite.RegularDomain(n)
	if err != nil {
		return nil, err
	}

	up := vec3.T{0, 0, 1}
	loop := make([]*transfinite.BSplineCurve, n)
	for i := range loop {
		a, b := lift(domain.Vertex(i)), lift(domain.Vertex(i+1))
		center := vec3.Interpolate(&a, &b, 0.5)
		xaxis := vec3.Sub(&a, &center)
		arc := curves.Arc(&center, &xaxis, &up, xaxis.Length(), 0, math.Pi)

		points := make([]vec3.T, 7)
		for j := range points {
			points[j] = arc.Point(float64(j) / float64(len(points)-1))
		}
		// the arc ends are exact up to rounding; pin them so neighbors meet
		points[0], points[len(points)-1] = a, b

		if loop[i], err = curves.InterpolateCurve(points, 3); err != nil {
			return nil, err
		}
	}

	return loop, nil
}

// sampleDome places the control points over the regular n-gon, pulled
// toward the center row by row, on the paraboloid z = 1 - x² - y².
func sampleDome(n, degree int) (*transfinite.SurfaceGeneralizedBezier, error) {
	surface := transfinite.NewSurfaceGeneralizedBezier()
	if err := surface.InitNetwork(n, degree); err != nil {
		return nil, err
	}
	domain, err := transfinite.RegularDomain(n)
	if err != nil {
		return nil, err
	}

	if err := surface.SetCentralControlPoint(vec3.T{0, 0, 1}); err != nil {
		return nil, err
	}

	var setErr error
	surface.Net().Traverse(func(c, side, col, row int) {
		boundary := domain.SidePoint(side, float64(col)/float64(degree))
		uv := boundary.Scaled(1 - 2*float64(row)/float64(degree+1))
		r := uv.Length()
		p := vec3.T{uv[0], uv[1], 1 - r*r}
		if err := surface.SetControlPointAt(c, p); err != nil && setErr == nil {
			setErr = err
		}
	})
	if setErr != nil {
		return nil, setErr
	}

	if err := surface.SetupLoop(); err != nil {
		return nil, err
	}
	return surface, nil
}

func lift(uv vec2.T) vec3.T {
	return vec3.T{uv[0], uv[1], 0}
}
