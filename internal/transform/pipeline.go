package transform

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/mmr-tortoise/fry-tempura/internal/deploy"
)

// CommentMarker is the line prefix that hides template directives from the
// type checker. The build removes it to expose the line.
const CommentMarker = "///"

// ModuleExportMarker is the statement the type-erasure step leaves behind
// when a script has no other module syntax.
const ModuleExportMarker = "export {};"

// Stage rewrites a script's lines. Stages never mutate their input.
type Stage func(lines []string) []string

// Eraser removes type annotations from a script's source text.
type Eraser interface {
	Erase(src string) (string, error)
}

// EraserFunc adapts a plain function to the Eraser interface.
type EraserFunc func(src string) (string, error)

// Erase calls f(src).
func (f EraserFunc) Erase(src string) (string, error) {
	return f(src)
}

// Pipeline holds the eraser used by Run. The zero value is not usable;
// construct it with NewPipeline.
type Pipeline struct {
	eraser Eraser
	stages []Stage
}

// NewPipeline creates a Pipeline that erases types with eraser and then
// applies the marker, exception and trim stages in that order.
func NewPipeline(eraser Eraser) *Pipeline {
	return &Pipeline{
		eraser: eraser,
		stages: []Stage{
			StripCommentMarkers,
			RewriteExitThrows,
			TrimTrailing,
		},
	}
}

// Run transforms a script's source text into its deployable form.
func (p *Pipeline) Run(src string) (string, error) {
	erased, err := p.eraser.Erase(src)
	if err != nil {
		return "", fmt.Errorf("type erasure failed: %w", err)
	}

	lines := strings.Split(erased, "\n")
	for _, stage := range p.stages {
		lines = stage(lines)
	}
	return strings.Join(lines, "\n"), nil
}

// BuildFile reads srcPath, runs the pipeline and writes the result to
// dstPath, creating parent directories as needed. Nothing is written when
// reading or transforming fails.
func (p *Pipeline) BuildFile(srcPath, dstPath string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return &SourceError{Path: srcPath, Err: err}
	}

	out, err := p.Run(string(src))
	if err != nil {
		return &TransformError{Path: srcPath, Err: err}
	}

	return deploy.WriteFile(dstPath, []byte(out))
}

// SourceError reports a source file that could not be read.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("failed to read source %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// TransformError reports a source file the pipeline rejected.
type TransformError struct {
	Path string
	Err  error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("failed to transform %s: %v", e.Path, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// commentMarkerRegex matches the marker and the single run of white space
// directly after it. White space further into the line is left alone.
var commentMarkerRegex = regexp.MustCompile(`^///\s*`)

// StripCommentMarkers removes the "///" marker, plus the white space run
// following it, from every line that starts with it.
//
//	"///  doIt()"   -> "doIt()"
//	"  /// indented" -> unchanged (marker must start the line)
func StripCommentMarkers(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.HasPrefix(line, CommentMarker) {
			out[i] = commentMarkerRegex.ReplaceAllString(line, "")
			continue
		}
		out[i] = line
	}
	return out
}

// exitThrowRegex matches `throw <anything> [qualifier.]exit(` up to the
// opening parenthesis. The qualifier is a dotted identifier chain such as
// "T." or "tp.user."; it is carried over to the notify call. It runs on
// the masked line so that string contents and comments never match.
var exitThrowRegex = regexp.MustCompile(`(?:^|\W)throw\s+(?:.*?[^\w$.])?((?:[\w$]+\.)*)exit\(`)

// RewriteExitThrows lowers the `throw exit(message)` idiom into the two
// primitives the host supports: a notification and an early return.
//
// A matching line is replaced as a whole. With a message it becomes two
// lines, "  <q>notify(<message>)" then "  return"; with an empty or blank
// message it becomes "  return" alone. The message is the argument text
// up to the parenthesis that balances `exit(`, so nested calls and
// parentheses inside strings are kept. A call not closed on the same line
// is left unchanged, as are all other lines.
func RewriteExitThrows(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		qualifier, message, ok := matchExitThrow(line)
		if !ok {
			out = append(out, line)
			continue
		}

		if message = strings.TrimSpace(message); message != "" {
			out = append(out, fmt.Sprintf("  %snotify(%s)", qualifier, message))
		}
		out = append(out, "  return")
	}
	return out
}

// matchExitThrow finds the first `throw ... exit(...)` in code on line and
// returns its qualifier and raw argument text.
func matchExitThrow(line string) (qualifier, message string, ok bool) {
	masked := maskLiterals(line)
	loc := exitThrowRegex.FindStringSubmatchIndex(masked)
	if loc == nil {
		return "", "", false
	}

	open := loc[1]
	depth := 1
	for i := open; i < len(masked); i++ {
		switch masked[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return line[loc[2]:loc[3]], line[open:i], true
			}
		}
	}
	return "", "", false
}

// maskLiterals returns line with the contents of string literals and of a
// trailing line comment replaced by spaces. Quotes stay in place and byte
// offsets are preserved, so indices into the result index the original.
func maskLiterals(line string) string {
	b := []byte(line)
	var quote byte
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
				continue
			}
			b[i] = ' '
			if c == '\\' && i+1 < len(b) {
				i++
				b[i] = ' '
			}
		case c == '"' || c == '\'' || c == '`':
			quote = c
		case c == '/' && i+1 < len(b) && b[i+1] == '/':
			for j := i; j < len(b); j++ {
				b[j] = ' '
			}
			return string(b)
		}
	}
	return string(b)
}

// TrimTrailing drops a final empty line, then a final ModuleExportMarker.
// At most two lines are removed.
func TrimTrailing(lines []string) []string {
	out := lines
	if n := len(out); n > 0 && out[n-1] == "" {
		out = out[:n-1]
	}
	if n := len(out); n > 0 && out[n-1] == ModuleExportMarker {
		out = out[:n-1]
	}

	trimmed := make([]string, len(out))
	copy(trimmed, out)
	return trimmed
}
