package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse covers the block boundaries and the body that follows.
func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantKeys []string
		wantBody string
	}{
		{
			name:     "block and body",
			content:  "---\ntags: [a, b]\ntitle: x\n---\n# Heading\n",
			wantKeys: []string{"tags", "title"},
			wantBody: "# Heading\n",
		},
		{
			name:     "crlf delimiters",
			content:  "---\r\ntitle: x\r\n---\r\nbody",
			wantKeys: []string{"title"},
			wantBody: "body",
		},
		{
			name:     "closing delimiter at end of file",
			content:  "---\ntitle: x\n---",
			wantKeys: []string{"title"},
			wantBody: "",
		},
		{
			name:     "empty block",
			content:  "---\n---\nbody",
			wantKeys: []string{},
			wantBody: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, body, err := Parse(tt.content)
			require.NoError(t, err)
			require.NotNil(t, props)

			keys := make([]string, 0, len(props))
			for k := range props {
				keys = append(keys, k)
			}
			assert.ElementsMatch(t, tt.wantKeys, keys)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

// TestParse_NoFrontmatter returns the content untouched.
func TestParse_NoFrontmatter(t *testing.T) {
	for _, content := range []string{
		"",
		"# Title\n---\n",
		"---\ntitle: never closed\n",
		"--- \ntitle: x\n---\n",
	} {
		props, body, err := Parse(content)
		require.NoError(t, err)
		assert.Nil(t, props)
		assert.Equal(t, content, body)
	}
}

// TestParse_InvalidYAML reports malformed blocks.
func TestParse_InvalidYAML(t *testing.T) {
	_, _, err := Parse("---\ntags: [a, b\n---\n")
	assert.Error(t, err)
}

// TestProperties_Tags covers list and comma-separated string forms.
func TestProperties_Tags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"list", "---\ntags:\n  - a\n  - '#b'\n---\n", []string{"a", "b"}},
		{"flow list", "---\ntags: [x, y]\n---\n", []string{"x", "y"}},
		{"comma string", "---\ntags: 'a, #b,,c'\n---\n", []string{"a", "b", "c"}},
		{"single value", "---\ntags: 2024\n---\n", []string{"2024"}},
		{"missing", "---\ntitle: x\n---\n", nil},
		{"null", "---\ntags:\n---\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, _, err := Parse(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, props.Tags())
		})
	}
}

// TestProperties_Aliases keeps "#" since only tags carry it.
func TestProperties_Aliases(t *testing.T) {
	props, _, err := Parse("---\naliases: [Foo, '#bar']\n---\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"Foo", "#bar"}, props.Aliases())

	var empty Properties
	assert.Nil(t, empty.Aliases())
}
