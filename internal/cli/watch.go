package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/fry-tempura/internal/transform"
	"github.com/mmr-tortoise/fry-tempura/internal/watch"
)

// NewWatchCommand creates the "watch" cobra command.
func NewWatchCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild scripts when their sources change",
		Long: `Build every script under --src into the config's template folder, then
keep rebuilding each source as it is saved. Stop with Ctrl+C.

Example:
  fry-tempura watch --src src`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.srcDir, "src", DefaultSourceDir, "Root directory of script sources")

	return cmd
}

// runWatch does a full build and then rebuilds changed sources until ctx
// is done.
func runWatch(ctx context.Context, out io.Writer, flags *buildFlags) error {
	if err := runBuild(out, flags, nil); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	destDir, err := cfg.TemplateDir()
	if err != nil {
		return err
	}

	pipeline := transform.NewPipeline(transform.NewEsbuildEraser())
	w := watch.New(flags.srcDir, func(path string) error {
		dst := transform.DestinationPath(flags.srcDir, path, destDir)
		if err := pipeline.BuildFile(path, dst); err != nil {
			return err
		}
		fmt.Fprintf(out, "[success build] %s\n", dst)
		return nil
	})

	return w.Run(ctx)
}
