package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/fry-tempura/internal/deploy"
	"github.com/mmr-tortoise/fry-tempura/internal/logging"
	"github.com/mmr-tortoise/fry-tempura/internal/model"
	"github.com/mmr-tortoise/fry-tempura/internal/transform"
)

// DefaultSourceDir is the directory searched for script sources.
const DefaultSourceDir = "src"

// buildFlags holds the flag values for the build command.
type buildFlags struct {
	// srcDir is the root of the script sources. Destination paths are
	// computed relative to it.
	srcDir string
}

// buildResult records one built script for output.
type buildResult struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// NewBuildCommand creates the "build" cobra command.
func NewBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build [source] [dest]",
		Short: "Build template scripts",
		Long: `Build TypeScript sources into template scripts.

With two arguments the source is built to the given destination and no
config file is needed. With one argument the source is built into the
config's template folder. With no arguments every script under --src is
built, in path order; the first failure stops the run.

Examples:
  fry-tempura build src/daily.ts out/daily.md
  fry-tempura build src/daily.ts
  fry-tempura build`,

		Args: cobra.MaximumNArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.OutOrStdout(), flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.srcDir, "src", DefaultSourceDir, "Root directory of script sources")

	return cmd
}

// runBuild resolves the source/destination pairs for args and builds them
// one at a time.
func runBuild(out io.Writer, flags *buildFlags, args []string) error {
	pairs, err := buildTargets(flags.srcDir, args)
	if err != nil {
		return err
	}

	logger := logging.GetLogger("build")
	pipeline := transform.NewPipeline(transform.NewEsbuildEraser())
	results := make([]buildResult, 0, len(pairs))

	for _, p := range pairs {
		start := time.Now()
		if err := pipeline.BuildFile(p.Source, p.Destination); err != nil {
			logger.Error().Err(err).Str("source", p.Source).Msg("failed to build scripts")
			return buildError(err)
		}
		logging.LogDuration(logger, start, "build "+p.Source)

		if !IsJSONOutput() {
			fmt.Fprintf(out, "[success build] %s\n", p.Destination)
		}
		results = append(results, p)
	}

	if IsJSONOutput() {
		printJSON(out, map[string]interface{}{"built": results})
	}
	return nil
}

// buildTargets maps positional args to source/destination pairs. The
// config file is read only when a destination must come from it, and it is
// validated before anything is built.
func buildTargets(srcDir string, args []string) ([]buildResult, error) {
	if len(args) == 2 {
		return []buildResult{{Source: args[0], Destination: args[1]}}, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	destDir, err := cfg.TemplateDir()
	if err != nil {
		return nil, err
	}

	sources := args
	if len(args) == 0 {
		sources, err = transform.FindSources(srcDir)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitSourceUnreadable,
				fmt.Sprintf("failed to list sources in %s", srcDir), err)
		}
		VerboseLog("Found %d sources in %s", len(sources), srcDir)
	}

	pairs := make([]buildResult, 0, len(sources))
	for _, src := range sources {
		pairs = append(pairs, buildResult{
			Source:      src,
			Destination: transform.DestinationPath(srcDir, src, destDir),
		})
	}
	return pairs, nil
}

// buildError converts a pipeline failure into a CLIError with the exit
// code for its stage.
func buildError(err error) error {
	var srcErr *transform.SourceError
	var tfErr *transform.TransformError
	var writeErr *deploy.WriteError

	switch {
	case errors.As(err, &srcErr):
		return model.WrapCLIError(model.ExitSourceUnreadable, "failed to build scripts", err)
	case errors.As(err, &tfErr):
		return model.WrapCLIError(model.ExitTransformFailed, "failed to build scripts", err)
	case errors.As(err, &writeErr):
		return model.WrapCLIError(model.ExitWriteFailed, "failed to build scripts", err)
	default:
		return model.WrapCLIError(model.ExitGeneralError, "failed to build scripts", err)
	}
}
