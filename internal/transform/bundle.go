package transform

import (
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
)

const (
	// DefaultBundleEntry is the library entry point bundled into the
	// runtime support file.
	DefaultBundleEntry = "src/index.ts"

	// DefaultBundleOut is where the runtime support file is written.
	DefaultBundleOut = "dist/fryTempura.js"
)

// BundleOptions configures Bundle.
type BundleOptions struct {
	// Entry is the TypeScript entry point. Defaults to DefaultBundleEntry.
	Entry string

	// Outfile is the bundled CommonJS file. Defaults to DefaultBundleOut.
	Outfile string
}

// Bundle compiles the function library into a single CommonJS file for a
// platform-neutral host, the file that deploy later copies next to the
// scripts. The output is written by esbuild itself.
func Bundle(opts BundleOptions) (string, error) {
	entry := opts.Entry
	if entry == "" {
		entry = DefaultBundleEntry
	}
	out := opts.Outfile
	if out == "" {
		out = DefaultBundleOut
	}

	absOut, err := filepath.Abs(out)
	if err != nil {
		return "", err
	}

	result := api.Build(api.BuildOptions{
		EntryPoints: []string{entry},
		Outfile:     absOut,
		Bundle:      true,
		Platform:    api.PlatformNeutral,
		Format:      api.FormatCommonJS,
		Write:       true,
		LogLevel:    api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return "", &TransformError{Path: entry, Err: esbuildError(result.Errors)}
	}

	return absOut, nil
}
