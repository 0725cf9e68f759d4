package main

import (
	"github.com/GridEyes-2010/transfinite/fileio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// bezierCmd represents the bezier command
var bezierCmd = &cobra.Command{
	Use:   "bezier <patch.gbp>",
	Short: "Tessellate a generalized Bézier patch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resave, _ := cmd.Flags().GetString("resave")
		output := outputName(cmd, args[0], ".obj")
		return runBezier(args[0], output, resave, viper.GetInt("resolution"))
	},
}

// netCmd represents the net command
var netCmd = &cobra.Command{
	Use:   "net <patch.gbp>",
	Short: "Write the control net of a generalized Bézier patch as a mesh",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNet(args[0], outputName(cmd, args[0], "-net.obj"))
	},
}

func init() {
	rootCmd.AddCommand(bezierCmd)
	bezierCmd.Flags().StringP("output", "o", "", "OBJ file to write (default is the input with .obj)")
	bezierCmd.Flags().String("resave", "", "also write the patch back to this .gbp file")

	rootCmd.AddCommand(netCmd)
	netCmd.Flags().StringP("output", "o", "", "OBJ file to write (default is the input with -net.obj)")
}

func runBezier(input, output, resave string, resolution int) error {
	surface, err := fileio.LoadBezier(input)
	if err != nil {
		return err
	}

	if resave != "" {
		if err := fileio.SaveBezier(resave, surface); err != nil {
			return err
		}
	}

	mesh, err := surface.Tessellate(resolution)
	if err != nil {
		return err
	}

	return writeMesh(output, mesh)
}

func runNet(input, output string) error {
	surface, err := fileio.LoadBezier(input)
	if err != nil {
		return err
	}
	return fileio.SaveControlNet(output, surface)
}
