package transform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDestinationPath verifies the src-relative mapping and the .ts to .md
// rename used for the template folder.
func TestDestinationPath(t *testing.T) {
	tests := []struct {
		name    string
		srcRoot string
		srcPath string
		destDir string
		want    string
	}{
		{"top level", "src", "src/hello.ts", "/vault/tpl", "/vault/tpl/hello.md"},
		{"nested", "src", "src/daily/open.ts", "/vault/tpl", "/vault/tpl/daily/open.md"},
		{"outside root keeps base name", "src", "other/x.ts", "/vault/tpl", "/vault/tpl/x.md"},
		{"only trailing .ts renamed", "src", "src/a.ts.ts", "/d", "/d/a.ts.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DestinationPath(tt.srcRoot, tt.srcPath, tt.destDir)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

// TestIsScriptSource excludes declaration files and other extensions.
func TestIsScriptSource(t *testing.T) {
	assert.True(t, IsScriptSource("src/a.ts"))
	assert.False(t, IsScriptSource("src/index.d.ts"))
	assert.False(t, IsScriptSource("src/a.js"))
	assert.False(t, IsScriptSource("src/a.tsx"))
}

// TestFindSources walks a tree and returns sorted script sources only.
func TestFindSources(t *testing.T) {
	root := t.TempDir()
	files := []string{"b.ts", "a.ts", "types.d.ts", "notes.md", "sub/c.ts"}
	for _, f := range files {
		p := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	got, err := FindSources(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.ts"),
		filepath.Join(root, "b.ts"),
		filepath.Join(root, "sub", "c.ts"),
	}, got)
}

// TestFindSources_MissingRoot reports a missing source directory.
func TestFindSources_MissingRoot(t *testing.T) {
	_, err := FindSources(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
