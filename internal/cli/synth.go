package cli

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/born-ml/segmap/internal/render"
	"github.com/born-ml/segmap/internal/synth"
)

// newSynthCmd creates the synth command for generating circle masks.
func newSynthCmd() *cobra.Command {
	var (
		configPath string
		out        string
		scale      int
		seed       int64
		circles    int
		size       int
		cellSize   float64
		legacy     bool
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate a synthetic circle mask and write it as a PNG",
		Long: `Generate a binary mask of scattered non-touching disks and write it as a
black-and-white PNG. Parameters come from defaults, then an optional TOML
config file, then flags, in increasing precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			fc, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("circles") {
				fc.Synth.Circles = circles
			}
			if cmd.Flags().Changed("size") {
				fc.Synth.Size = size
			}
			if cmd.Flags().Changed("cell-size") {
				fc.Synth.CellSize = cellSize
			}
			if cmd.Flags().Changed("legacy-radius-scale") {
				fc.Synth.LegacyRadiusScale = legacy
			}
			if cmd.Flags().Changed("seed") {
				fc.Synth.Seed = seed
			}

			cfg := fc.Synth.synthConfig()
			logger.Debug("synthesizing mask",
				"circles", cfg.Circles, "size", cfg.Size,
				"cell_size", cfg.CellSize, "seed", fc.Synth.Seed)

			rng := rand.New(rand.NewSource(fc.Synth.Seed))
			mask := synth.RandomCircles(rng, cfg)

			img := render.Upscale(render.Mask(mask), scale)
			if err := render.WritePNG(out, img); err != nil {
				return err
			}
			logger.Info("mask written", "path", out, "shape", shapeString(mask.H(), mask.W()))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML parameter file")
	cmd.Flags().StringVarP(&out, "out", "o", "mask.png", "output PNG path")
	cmd.Flags().IntVar(&scale, "scale", 1, "integer upscale factor for the PNG")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	cmd.Flags().IntVar(&circles, "circles", 0, "number of disks to draw")
	cmd.Flags().IntVar(&size, "size", 0, "mask is size x size pixels")
	cmd.Flags().Float64Var(&cellSize, "cell-size", 0, "nominal cell diameter in pixels")
	cmd.Flags().BoolVar(&legacy, "legacy-radius-scale", false, "reproduce the defective constant-radius rescale")

	return cmd
}
