package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/fry-tempura/internal/model"
)

const scriptSource = `/// <%*
const title: string = "today";
if (!title) {
  throw exit("no title (" + title + ")");
}
/// tR += title
/// %>
`

// TestBuild_ExplicitPaths builds one file without a config file.
func TestBuild_ExplicitPaths(t *testing.T) {
	dir := workspace(t)
	src := writeFile(t, dir, "src/daily.ts", scriptSource)
	dst := filepath.Join(dir, "out", "daily.md")

	out, err := executeCommand(t, "build", src, dst)
	require.NoError(t, err)
	assert.Equal(t, "[success build] "+dst+"\n", out)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	got := string(data)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "<%*", lines[0])
	assert.Contains(t, lines, "tR += title")
	assert.Contains(t, lines, "%>")
	assert.Contains(t, lines, `  notify("no title (" + title + ")")`)
	assert.Contains(t, lines, "  return")
	assert.Contains(t, got, `const title = "today";`)
	assert.NotContains(t, got, "throw")
}

// TestBuild_AllSources builds every source into the template folder in
// path order.
func TestBuild_AllSources(t *testing.T) {
	dir := workspace(t)
	tpl := filepath.Join(dir, "vault", "templates")
	writeFile(t, dir, "config.json", `{
		// build destination
		"templater": {"templateFolderLocation": "`+filepath.ToSlash(tpl)+`"},
	}`)
	writeFile(t, dir, "src/b.ts", "const b: number = 2;\n")
	writeFile(t, dir, "src/a.ts", "const a: number = 1;\n")
	writeFile(t, dir, "src/nested/c.ts", "const c = 3;\n")
	writeFile(t, dir, "src/types.d.ts", "declare const x: number;\n")

	out, err := executeCommand(t, "build")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"[success build] " + filepath.Join(tpl, "a.md"),
		"[success build] " + filepath.Join(tpl, "b.md"),
		"[success build] " + filepath.Join(tpl, "nested", "c.md"),
	}, strings.Split(strings.TrimSuffix(out, "\n"), "\n"))

	assert.FileExists(t, filepath.Join(tpl, "nested", "c.md"))
	assert.NoFileExists(t, filepath.Join(tpl, "types.d.md"))
}

// TestBuild_SingleSourceIntoTemplateFolder uses the config destination.
func TestBuild_SingleSourceIntoTemplateFolder(t *testing.T) {
	dir := workspace(t)
	tpl := filepath.Join(dir, "tpl")
	cfg := writeFile(t, t.TempDir(), "fry.toml", "[templater]\ntemplateFolderLocation = '"+tpl+"'\n")
	src := writeFile(t, dir, "src/x.ts", "let x = 1;\n")

	_, err := executeCommand(t, "--config", cfg, "build", src)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(tpl, "x.md"))
}

// TestBuild_JSONOutput lists built files as JSON.
func TestBuild_JSONOutput(t *testing.T) {
	dir := workspace(t)
	src := writeFile(t, dir, "a.ts", "let a = 1;\n")
	dst := filepath.Join(dir, "a.md")

	out, err := executeCommand(t, "--json", "build", src, dst)
	require.NoError(t, err)
	assert.Contains(t, out, `"built"`)
	assert.Contains(t, out, `"destination"`)
	assert.NotContains(t, out, "[success build]")
}

// TestBuild_Failures maps each failure to its exit code and leaves the
// destination untouched.
func TestBuild_Failures(t *testing.T) {
	t.Run("missing config", func(t *testing.T) {
		workspace(t)
		_, err := executeCommand(t, "build")
		requireExitCode(t, err, model.ExitConfigNotFound)
	})

	t.Run("missing required key", func(t *testing.T) {
		dir := workspace(t)
		writeFile(t, dir, "config.json", `{"templater": {}}`)
		writeFile(t, dir, "src/a.ts", "let a = 1;\n")

		_, err := executeCommand(t, "build")
		requireExitCode(t, err, model.ExitConfigInvalid)
		assert.Contains(t, err.Error(), "templater.templateFolderLocation")
	})

	t.Run("unreadable source", func(t *testing.T) {
		dir := workspace(t)
		dst := filepath.Join(dir, "out.md")
		_, err := executeCommand(t, "build", filepath.Join(dir, "missing.ts"), dst)
		requireExitCode(t, err, model.ExitSourceUnreadable)
		assert.NoFileExists(t, dst)
	})

	t.Run("invalid script", func(t *testing.T) {
		dir := workspace(t)
		src := writeFile(t, dir, "bad.ts", "const = ;\n")
		dst := filepath.Join(dir, "bad.md")
		_, err := executeCommand(t, "build", src, dst)
		requireExitCode(t, err, model.ExitTransformFailed)
		assert.NoFileExists(t, dst)
	})

	t.Run("first failure stops the run", func(t *testing.T) {
		dir := workspace(t)
		tpl := filepath.Join(dir, "tpl")
		writeFile(t, dir, "config.json", `{"templater": {"templateFolderLocation": "`+filepath.ToSlash(tpl)+`"}}`)
		writeFile(t, dir, "src/a.ts", "const = ;\n")
		writeFile(t, dir, "src/b.ts", "let b = 1;\n")

		_, err := executeCommand(t, "build")
		requireExitCode(t, err, model.ExitTransformFailed)
		assert.NoFileExists(t, filepath.Join(tpl, "b.md"))
	})
}
