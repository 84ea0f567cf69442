package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"terrain-demo/internal/heightmap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "heightmap-gen",
		Short:        "Generate and inspect terrain height maps",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd(), newInspectCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	opts := heightmap.DefaultOptions()
	var out string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a fractal value-noise height map as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			img := heightmap.Generate(opts)
			if err := heightmap.Save(out, img); err != nil {
				return err
			}
			s := heightmap.Summarize(img)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, range %d..%d)\n", out, s.Width, s.Height, s.Min, s.Max)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "assets/height-map.png", "output PNG path")
	f.IntVar(&opts.Width, "width", opts.Width, "width in texels")
	f.IntVar(&opts.Height, "height", opts.Height, "height in texels")
	f.Int64Var(&opts.Seed, "seed", 0, "noise seed (0 = time based)")
	f.IntVar(&opts.Octaves, "octaves", opts.Octaves, "noise octaves")
	f.Float32Var(&opts.Frequency, "frequency", opts.Frequency, "base frequency per texel")
	f.Float32Var(&opts.Lacunarity, "lacunarity", opts.Lacunarity, "frequency multiplier per octave")
	f.Float32Var(&opts.Gain, "gain", opts.Gain, "amplitude multiplier per octave")
	f.Float64Var(&opts.BlurRadius, "blur", 0, "gaussian blur radius (0 = none)")
	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Print size and value range of height-map images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				img, err := heightmap.Load(path)
				if err != nil {
					return err
				}
				s := heightmap.Summarize(img)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d min %d max %d mean %.1f\n", path, s.Width, s.Height, s.Min, s.Max, s.Mean)
			}
			return nil
		},
	}
}
