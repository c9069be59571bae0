package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/segmap/internal/render"
	"github.com/born-ml/segmap/internal/stats"
	"github.com/born-ml/segmap/internal/weight"
)

// newWeightCmd creates the weight command for computing weight maps from
// mask images.
func newWeightCmd() *cobra.Command {
	var (
		configPath   string
		out          string
		scale        int
		w0           float64
		sigma        float64
		classWeights string
	)

	cmd := &cobra.Command{
		Use:   "weight <mask.png>",
		Short: "Compute a boundary weight map from a mask image",
		Long: `Read a binary mask image (luminance >= 128 is foreground), compute the
boundary-aware weight map, report its value distribution, and render it
as a color-ramp PNG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			fc, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("w0") {
				fc.Weight.W0 = w0
			}
			if cmd.Flags().Changed("sigma") {
				fc.Weight.Sigma = sigma
			}
			cfg, err := fc.Weight.weightConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("class-weights") {
				cfg.ClassWeights, err = parseClassWeights(classWeights)
				if err != nil {
					return err
				}
			}

			mask, err := render.ReadMask(args[0])
			if err != nil {
				return err
			}
			logger.Debug("mask loaded", "path", args[0], "shape", shapeString(mask.H(), mask.W()))

			wm, err := weight.Map(mask, cfg)
			if err != nil {
				return fmt.Errorf("weight %s: %w", args[0], err)
			}

			logger.Info("weight map computed",
				"w0", cfg.W0, "sigma", cfg.Sigma, "stats", stats.Summarize(wm).String())

			img := render.Upscale(render.Heat(wm), scale)
			if err := render.WritePNG(out, img); err != nil {
				return err
			}
			logger.Info("weight map written", "path", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML parameter file")
	cmd.Flags().StringVarP(&out, "out", "o", "weights.png", "output PNG path")
	cmd.Flags().IntVar(&scale, "scale", 1, "integer upscale factor for the PNG")
	cmd.Flags().Float64Var(&w0, "w0", 0, "border term amplitude")
	cmd.Flags().Float64Var(&sigma, "sigma", 0, "border term width in pixels")
	cmd.Flags().StringVar(&classWeights, "class-weights", "", `additive per-class weights, e.g. "0=1,1=5"`)

	return cmd
}

// shapeString formats grid dimensions for log fields.
func shapeString(h, w int) string {
	return fmt.Sprintf("%dx%d", h, w)
}
