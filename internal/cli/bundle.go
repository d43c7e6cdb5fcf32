package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/fry-tempura/internal/logging"
	"github.com/mmr-tortoise/fry-tempura/internal/model"
	"github.com/mmr-tortoise/fry-tempura/internal/transform"
)

// NewBundleCommand creates the "bundle" cobra command.
func NewBundleCommand() *cobra.Command {
	opts := &transform.BundleOptions{}

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Bundle the runtime library",
		Long: `Bundle the function library entry point and its imports into a single
CommonJS file. Deploy copies this file next to the scripts.

Examples:
  fry-tempura bundle
  fry-tempura bundle --entry lib/index.ts --out build/fryTempura.js`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBundle(cmd.OutOrStdout(), *opts)
		},
	}

	cmd.Flags().StringVar(&opts.Entry, "entry", transform.DefaultBundleEntry, "Library entry point")
	cmd.Flags().StringVar(&opts.Outfile, "out", transform.DefaultBundleOut, "Bundled output file")

	return cmd
}

func runBundle(out io.Writer, opts transform.BundleOptions) error {
	start := time.Now()
	dst, err := transform.Bundle(opts)
	if err != nil {
		return model.WrapCLIError(model.ExitTransformFailed, "failed to bundle runtime", err)
	}
	logging.LogDuration(logging.GetLogger("bundle"), start, "bundle "+opts.Entry)

	if IsJSONOutput() {
		printJSON(out, map[string]string{"entry": opts.Entry, "output": dst})
	} else {
		fmt.Fprintf(out, "[success bundle] %s\n", dst)
	}
	return nil
}
