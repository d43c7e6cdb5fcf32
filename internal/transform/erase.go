package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// maskPrefix is the legal-comment placeholder a "///" line is swapped for
// while esbuild runs. esbuild drops ordinary comments but keeps "//!"
// comments in place when LegalComments is inline.
const maskPrefix = "//!fry-tempura:"

// EsbuildEraser erases TypeScript annotations with esbuild's transform API.
type EsbuildEraser struct {
	// Target is the JavaScript language level to emit. Zero means ESNext.
	Target api.Target
}

// NewEsbuildEraser creates an EsbuildEraser targeting ESNext.
func NewEsbuildEraser() *EsbuildEraser {
	return &EsbuildEraser{Target: api.ESNext}
}

// Erase returns src with type annotations removed. Lines starting with the
// comment marker survive the transform verbatim so that the marker stage
// can expose them afterwards.
func (e *EsbuildEraser) Erase(src string) (string, error) {
	masked, originals := maskMarkerLines(src)

	target := e.Target
	if target == api.DefaultTarget {
		target = api.ESNext
	}

	result := api.Transform(masked, api.TransformOptions{
		Loader:        api.LoaderTS,
		Target:        target,
		LegalComments: api.LegalCommentsInline,
		LogLevel:      api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return "", esbuildError(result.Errors)
	}

	return unmaskMarkerLines(string(result.Code), originals), nil
}

// maskMarkerLines replaces each "///" line with a numbered placeholder and
// returns the replaced lines in order.
func maskMarkerLines(src string) (string, []string) {
	lines := strings.Split(src, "\n")
	var originals []string
	for i, line := range lines {
		if !strings.HasPrefix(line, CommentMarker) {
			continue
		}
		lines[i] = maskPrefix + strconv.Itoa(len(originals))
		originals = append(originals, line)
	}
	return strings.Join(lines, "\n"), originals
}

// unmaskMarkerLines puts the original "///" lines back. esbuild may indent
// a placeholder, so the whole output line is replaced.
func unmaskMarkerLines(code string, originals []string) string {
	if len(originals) == 0 {
		return code
	}

	lines := strings.Split(code, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, maskPrefix) {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimPrefix(trimmed, maskPrefix))
		if err != nil || idx < 0 || idx >= len(originals) {
			continue
		}
		lines[i] = originals[idx]
	}
	return strings.Join(lines, "\n")
}

// esbuildError folds esbuild diagnostics into a single error that names the
// line of each problem.
func esbuildError(msgs []api.Message) error {
	errs := make([]error, 0, len(msgs))
	for _, m := range msgs {
		if m.Location != nil {
			errs = append(errs, fmt.Errorf("line %d:%d: %s", m.Location.Line, m.Location.Column, m.Text))
			continue
		}
		errs = append(errs, errors.New(m.Text))
	}
	return errors.Join(errs...)
}
