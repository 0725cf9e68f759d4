package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/GridEyes-2010/transfinite"
	"github.com/GridEyes-2010/transfinite/fileio"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "transfinite",
	Short: "Multi-sided transfinite surface evaluation",
	Long: `Evaluate side-based and generalized Bézier transfinite surfaces.

Curve loops are read from .lop files, control nets from .gbp files, and
the tessellated surfaces are written as wavefront OBJ meshes.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		transfinite.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		if used := viper.ConfigFileUsed(); used != "" {
			transfinite.Logger().Debug("using config file", "file", used)
		}

		if dir := viper.GetString("profile"); dir != "" {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.transfinite.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log surface setup at debug level")
	rootCmd.PersistentFlags().String("profile", "", "write a CPU profile into this directory")
	rootCmd.PersistentFlags().IntP("resolution", "r", 15, "number of sample rings of the tessellation")

	for _, name := range []string{"verbose", "profile", "resolution"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".transfinite")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("transfinite")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintln(os.Stderr, "unable to read config:", err)
		os.Exit(1)
	}
}

// outputName is the -o flag, or the input with its extension replaced.
func outputName(cmd *cobra.Command, input, ext string) string {
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		return out
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// writeMesh saves a tessellation and reports its extent.
func writeMesh(output string, mesh *transfinite.Mesh) error {
	size := mesh.BoundingBox().Size()
	transfinite.Logger().Info("writing mesh", "file", output,
		"points", len(mesh.Points), "triangles", len(mesh.Faces),
		"size", fmt.Sprintf("%g x %g x %g", size[0], size[1], size[2]))
	return fileio.SaveOBJ(output, mesh)
}
