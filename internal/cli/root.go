package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

// Execute runs the segmap CLI and returns an error if any command fails.
//
// Logging goes to stderr at info level, or debug with --verbose (-v). The
// logger travels through the command context; subcommands fetch it with
// loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:   "segmap",
		Short: "segmap generates boundary-aware loss weight maps for segmentation masks",
		Long: `segmap computes per-pixel loss weight maps for binary segmentation masks,
up-weighting the narrow background gaps between touching objects, and can
synthesize circle masks to experiment without real data.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSynthCmd())
	root.AddCommand(newWeightCmd())
	root.AddCommand(newDemoCmd())

	return root.ExecuteContext(context.Background())
}
