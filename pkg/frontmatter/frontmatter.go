package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter opens and closes a frontmatter block. Each delimiter must be on
// its own line.
const Delimiter = "---"

// Properties is the decoded frontmatter mapping.
type Properties map[string]any

// Parse splits content into its frontmatter properties and the remaining
// body. Content without a frontmatter block returns nil properties and the
// content unchanged. A block that is not valid YAML returns an error.
func Parse(content string) (Properties, string, error) {
	block, body, ok := split(content)
	if !ok {
		return nil, content, nil
	}

	props := Properties{}
	if err := yaml.Unmarshal([]byte(block), &props); err != nil {
		return nil, content, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	return props, body, nil
}

// split locates the block between the opening and closing delimiter lines.
func split(content string) (block, body string, ok bool) {
	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimRight(first, "\r") != Delimiter {
		return "", "", false
	}

	offset := 0
	for {
		end := strings.IndexByte(rest[offset:], '\n')
		line := rest[offset:]
		if end >= 0 {
			line = rest[offset : offset+end]
		}
		if strings.TrimRight(line, "\r") == Delimiter {
			if end < 0 {
				return rest[:offset], "", true
			}
			return rest[:offset], rest[offset+end+1:], true
		}
		if end < 0 {
			return "", "", false
		}
		offset += end + 1
	}
}

// Strings returns the property key as a list of strings. A list value is
// converted element by element; a string value is split on commas. Blank
// entries are dropped. A missing key returns nil.
func (p Properties) Strings(key string) []string {
	raw, ok := p[key]
	if !ok || raw == nil {
		return nil
	}

	var values []string
	switch v := raw.(type) {
	case string:
		values = strings.Split(v, ",")
	case []any:
		for _, item := range v {
			if item == nil {
				continue
			}
			values = append(values, fmt.Sprint(item))
		}
	default:
		values = []string{fmt.Sprint(v)}
	}

	out := make([]string, 0, len(values))
	for _, s := range values {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Tags returns the "tags" property with any leading "#" removed.
func (p Properties) Tags() []string {
	tags := p.Strings("tags")
	for i, tag := range tags {
		tags[i] = strings.TrimPrefix(tag, "#")
	}
	return tags
}

// Aliases returns the "aliases" property.
func (p Properties) Aliases() []string {
	return p.Strings("aliases")
}
