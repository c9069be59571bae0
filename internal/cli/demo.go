package cli

import (
	"math/rand"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/born-ml/segmap/internal/render"
	"github.com/born-ml/segmap/internal/stats"
	"github.com/born-ml/segmap/internal/synth"
	"github.com/born-ml/segmap/internal/weight"
)

// newDemoCmd creates the demo command running the whole pipeline on
// synthetic data.
func newDemoCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
		scale      int
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Synthesize a mask, weight it, and write both PNGs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			fc, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				fc.Synth.Seed = seed
			}
			wcfg, err := fc.Weight.weightConfig()
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(fc.Synth.Seed))
			mask := synth.RandomCircles(rng, fc.Synth.synthConfig())
			logger.Info("mask synthesized",
				"circles", fc.Synth.Circles, "shape", shapeString(mask.H(), mask.W()))

			wm, err := weight.Map(mask, wcfg)
			if err != nil {
				return err
			}
			logger.Info("weight map computed", "stats", stats.Summarize(wm).String())

			maskPath := filepath.Join(outDir, "mask.png")
			if err := render.WritePNG(maskPath, render.Upscale(render.Mask(mask), scale)); err != nil {
				return err
			}
			weightsPath := filepath.Join(outDir, "weights.png")
			if err := render.WritePNG(weightsPath, render.Upscale(render.Heat(wm), scale)); err != nil {
				return err
			}

			logger.Info("done", "mask", maskPath, "weights", weightsPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML parameter file")
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "directory for output PNGs")
	cmd.Flags().IntVar(&scale, "scale", 1, "integer upscale factor for the PNGs")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")

	return cmd
}
