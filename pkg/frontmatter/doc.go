// Package frontmatter reads the YAML property block at the top of a note.
package frontmatter
