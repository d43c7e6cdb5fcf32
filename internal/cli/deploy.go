package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/fry-tempura/internal/config"
	"github.com/mmr-tortoise/fry-tempura/internal/deploy"
	"github.com/mmr-tortoise/fry-tempura/internal/model"
)

// deployFlags holds the flag values for the deploy command.
type deployFlags struct {
	// runtime overrides the runtime file from the config.
	runtime string
}

// NewDeployCommand creates the "deploy" cobra command.
func NewDeployCommand() *cobra.Command {
	flags := &deployFlags{}

	cmd := &cobra.Command{
		Use:   "deploy [destDir]",
		Short: "Deploy the runtime library next to the scripts",
		Long: `Copy the runtime support file into destDir as ` + deploy.RuntimeFileName + `.

When destDir is omitted the config's scriptFolderLocation is used, falling
back to templateFolderLocation. The runtime file defaults to the config's
runtime.source, or the bundle command's output.

Examples:
  fry-tempura deploy /vault/scripts
  fry-tempura deploy --runtime build/fryTempura.js`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd.OutOrStdout(), flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.runtime, "runtime", "", "Runtime file to deploy (default: config runtime.source)")

	return cmd
}

// runDeploy resolves the runtime file and destination, then copies it.
func runDeploy(out io.Writer, flags *deployFlags, args []string) error {
	runtime, destDir, err := deployTargets(flags, args)
	if err != nil {
		return err
	}
	VerboseLog("Deploying %s to %s", runtime, destDir)

	dst, err := deploy.Runtime(runtime, destDir)
	if err != nil {
		var writeErr *deploy.WriteError
		if errors.As(err, &writeErr) {
			return model.WrapCLIError(model.ExitWriteFailed, "failed to deploy runtime", err)
		}
		return model.WrapCLIError(model.ExitSourceUnreadable, "failed to deploy runtime", err)
	}

	if IsJSONOutput() {
		printJSON(out, map[string]string{"source": runtime, "destination": dst})
	} else {
		fmt.Fprintf(out, "[success deploy] %s\n", dst)
	}
	return nil
}

// deployTargets resolves the runtime file and destination. Command-line
// values win. A config file is required only when no destination is given;
// otherwise it is consulted, when present, for the runtime file, which
// falls back to config.DefaultRuntimeSource.
func deployTargets(flags *deployFlags, args []string) (runtime, destDir string, err error) {
	runtime = flags.runtime
	if len(args) == 1 {
		destDir = args[0]
	}
	if runtime != "" && destDir != "" {
		return runtime, destDir, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		var cliErr *model.CLIError
		if destDir != "" && errors.As(err, &cliErr) && cliErr.Code == model.ExitConfigNotFound {
			VerboseLog("No config file, deploying %s", config.DefaultRuntimeSource)
			return config.DefaultRuntimeSource, destDir, nil
		}
		return "", "", err
	}
	if runtime == "" {
		runtime = cfg.RuntimeSource()
	}
	if destDir == "" {
		if destDir, err = cfg.ScriptDir(); err != nil {
			return "", "", err
		}
	}
	return runtime, destDir, nil
}
