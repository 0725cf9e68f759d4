package main

import (
	"fmt"
	"strings"

	"github.com/GridEyes-2010/transfinite"
	"github.com/GridEyes-2010/transfinite/fileio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// sideBasedCmd represents the sidebased command
var sideBasedCmd = &cobra.Command{
	Use:   "sidebased <loop.lop>",
	Short: "Tessellate the side-based surface interpolating a curve loop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := outputName(cmd, args[0], ".obj")
		return runSideBased(args[0], output, viper.GetInt("resolution"), viper.GetString("parameterization"))
	},
}

func init() {
	rootCmd.AddCommand(sideBasedCmd)
	sideBasedCmd.Flags().StringP("output", "o", "", "OBJ file to write (default is the input with .obj)")
	sideBasedCmd.Flags().StringP("parameterization", "p", "bilinear", "domain parameterization: bilinear or orthogonal")
	viper.BindPFlag("parameterization", sideBasedCmd.Flags().Lookup("parameterization"))
}

func runSideBased(input, output string, resolution int, param string) error {
	curves, err := fileio.LoadLOP(input)
	if err != nil {
		return err
	}

	surface := transfinite.NewSurfaceSideBased()
	if err := surface.SetCurves(transfinite.Curves(curves)); err != nil {
		return err
	}

	domain, err := transfinite.RegularDomain(len(curves))
	if err != nil {
		return err
	}
	switch strings.ToLower(param) {
	case "", "bilinear":
		surface.SetParameterization(transfinite.NewBilinear(domain))
	case "orthogonal":
		surface.SetParameterization(transfinite.NewOrthogonal(domain))
	default:
		return fmt.Errorf("unknown parameterization %q", param)
	}

	if err := surface.SetupLoop(); err != nil {
		return err
	}

	mesh, err := surface.Tessellate(resolution)
	if err != nil {
		return err
	}

	return writeMesh(output, mesh)
}
