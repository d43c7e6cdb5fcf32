package transform

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// SourceExt is the extension of annotated script sources.
	SourceExt = ".ts"

	// ScriptExt is the extension the template folder expects.
	ScriptExt = ".md"
)

// DestinationPath maps a source script to its location in destDir.
// The path relative to srcRoot is kept and the ".ts" extension becomes
// ".md":
//
//	DestinationPath("src", "src/daily/open.ts", "/vault/tpl") // "/vault/tpl/daily/open.md"
//
// A source outside srcRoot keeps only its base name.
func DestinationPath(srcRoot, srcPath, destDir string) string {
	rel, err := filepath.Rel(srcRoot, srcPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(srcPath)
	}
	rel = strings.TrimSuffix(rel, SourceExt) + ScriptExt
	return filepath.Join(destDir, rel)
}

// IsScriptSource reports whether path is a buildable script: a ".ts" file
// that is not a ".d.ts" declaration file.
func IsScriptSource(path string) bool {
	return strings.HasSuffix(path, SourceExt) && !strings.HasSuffix(path, ".d"+SourceExt)
}

// FindSources returns every buildable script under srcRoot, sorted by path
// so that builds run in a stable order.
func FindSources(srcRoot string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(srcRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error walking source directory at %s: %w", path, walkErr)
		}
		if d.IsDir() || !IsScriptSource(path) {
			return nil
		}
		sources = append(sources, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(sources)
	return sources, nil
}
