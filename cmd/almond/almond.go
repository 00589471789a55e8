package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/almond/pkg/config"
	"github.com/willbeason/almond/pkg/render"
	"os"
	"time"
)

func mainCmd() *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "almond",
		Short: "Render an escape-time divergence map of the complex plane",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	cmd.Flags().String("config", "", "optional TOML or YAML parameter file")
	cmd.Flags().Float64("center-x", defaults.CenterX, "real coordinate of the window center")
	cmd.Flags().Float64("center-y", defaults.CenterY, "imaginary coordinate of the window center")
	cmd.Flags().Float64("radius", defaults.Radius, "half-width of the square window, in plane units")
	cmd.Flags().Int("size", defaults.Size, "output width and height in pixels")
	cmd.Flags().Int("iterations", defaults.MaxIterations, "escape-time iteration cap")
	cmd.Flags().Int("workers", 0, "render goroutines; 0 means one per CPU")
	cmd.Flags().String("out", defaults.Output, "output PNG path")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg := config.Default()

	if path, err := cmd.Flags().GetString("config"); err == nil && path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
	}

	// Explicitly-set flags win over the config file.
	if cmd.Flags().Changed("center-x") {
		cfg.CenterX, _ = cmd.Flags().GetFloat64("center-x")
	}
	if cmd.Flags().Changed("center-y") {
		cfg.CenterY, _ = cmd.Flags().GetFloat64("center-y")
	}
	if cmd.Flags().Changed("radius") {
		cfg.Radius, _ = cmd.Flags().GetFloat64("radius")
	}
	if cmd.Flags().Changed("size") {
		cfg.Size, _ = cmd.Flags().GetInt("size")
	}
	if cmd.Flags().Changed("iterations") {
		cfg.MaxIterations, _ = cmd.Flags().GetInt("iterations")
	}
	if cmd.Flags().Changed("out") {
		cfg.Output, _ = cmd.Flags().GetString("out")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")

	v := render.View{
		CenterX:       cfg.CenterX,
		CenterY:       cfg.CenterY,
		Radius:        cfg.Radius,
		Size:          cfg.Size,
		MaxIterations: cfg.MaxIterations,
	}

	start := time.Now()
	counts := render.Plot(v, workers)
	img := render.Image(v, counts)

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}

	err = render.WritePNG(f, img)
	if err != nil {
		_ = f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Time: %s\n", time.Since(start))

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
