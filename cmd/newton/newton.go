package main

import (
	"context"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/newton-fractal/pkg/newton"
	"github.com/willbeason/newton-fractal/pkg/output"
	"github.com/willbeason/newton-fractal/pkg/raster"
)

const (
	flagWidth    = "width"
	flagHeight   = "height"
	flagDamping  = "damping"
	flagVariant  = "variant"
	flagColoring = "coloring"
	flagScale    = "scale"
	flagWorkers  = "workers"
	flagOut      = "out"
	flagUpscale  = "upscale"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Render a Newton fractal to a PNG",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	cmd.Flags().Int(flagWidth, 1024, "image width in pixels")
	cmd.Flags().Int(flagHeight, 1024, "image height in pixels")
	cmd.Flags().Float64P(flagDamping, "a", 1.0, "Newton step damping; 1 is the classical method")
	cmd.Flags().String(flagVariant, newton.GoldenPair.Name, "fractal variant, one of golden-pair, golden-star")
	cmd.Flags().String(flagColoring, "", "coloring: hsv, hsl or blend (default: the variant's own)")
	cmd.Flags().Float64(flagScale, 0, "size of one pixel in the complex plane (default: the variant's own)")
	cmd.Flags().Int(flagWorkers, runtime.NumCPU(), "number of goroutines rendering columns")
	cmd.Flags().StringP(flagOut, "o", "", "output file (default: out/<timestamp>.png)")
	cmd.Flags().Int(flagUpscale, 1, "enlarge the output by this integer factor")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	flags := cmd.Flags()
	width, _ := flags.GetInt(flagWidth)
	height, _ := flags.GetInt(flagHeight)
	a, _ := flags.GetFloat64(flagDamping)
	variantName, _ := flags.GetString(flagVariant)
	coloringName, _ := flags.GetString(flagColoring)
	scale, _ := flags.GetFloat64(flagScale)
	workers, _ := flags.GetInt(flagWorkers)
	out, _ := flags.GetString(flagOut)
	upscale, _ := flags.GetInt(flagUpscale)

	v, err := newton.Lookup(variantName)
	if err != nil {
		return err
	}

	coloring, err := newton.LookupColoring(coloringName, v)
	if err != nil {
		return err
	}
	v = v.WithColoring(coloring)

	if flags.Changed(flagScale) {
		v = v.WithScale(scale)
	}

	if out == "" {
		out = output.DefaultPath("out", time.Now())
	}

	p := raster.Params{Width: width, Height: height, A: a, Workers: workers}

	start := time.Now()
	img, err := raster.Image(cmd.Context(), p, v)
	if err != nil {
		return err
	}
	log.Printf("rendered %s %dx%d a=%g in %s", v.Name, width, height, a, time.Since(start))

	err = output.SavePNG(out, img, upscale)
	if err != nil {
		return err
	}
	log.Printf("saved %s", out)

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
