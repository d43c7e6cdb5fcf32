package textutil

import (
	"regexp"
	"strings"

	"github.com/mmr-tortoise/fry-tempura/internal/model"
)

// listPrefixRegex matches the list prefix at the start of a line:
// indentation (any white space, including the full-width space U+3000),
// then optionally a "-" or "*" bullet with one space, then optionally a
// one-character checkbox such as "[ ] " or "[x] ".
var listPrefixRegex = regexp.MustCompile(`^[\s\p{Zs}]*(?:[-*] (?:\[.\] )?)?`)

// ParseMarkdownList splits a line into its list prefix and content.
//
// The split is lossless: Prefix + Content == line for every input. A line
// without a bullet yields its leading white space as the prefix.
//
//	ParseMarkdownList("- [x] hoge") // {Prefix: "- [x] ", Content: "hoge"}
//	ParseMarkdownList("  hoge")     // {Prefix: "  ", Content: "hoge"}
func ParseMarkdownList(line string) model.ListLine {
	prefix := listPrefixRegex.FindString(line)
	return model.ListLine{
		Prefix:  prefix,
		Content: line[len(prefix):],
	}
}

// ParseTags returns the tag names found in a line, without the leading "#".
//
// The line is split on single spaces only, and a token is a tag when it
// starts with "#". Tags are returned in order of appearance and duplicates
// are kept. The result is never nil.
func ParseTags(line string) []string {
	tags := []string{}
	for _, token := range strings.Split(line, " ") {
		if strings.HasPrefix(token, "#") {
			tags = append(tags, token[1:])
		}
	}
	return tags
}

// replacement is a single substitution pass.
type replacement struct {
	re   *regexp.Regexp
	repl string
}

// decorationPasses run in this order. The double-marker passes come first
// so that "**abc *d* efg**" loses its outer markers before the single
// "*" pass sees the inner ones. Each double-marker pattern admits one
// nested single-marker span and otherwise excludes its delimiter.
var decorationPasses = []replacement{
	{regexp.MustCompile(`\*\*((?:[^*]|\*[^*]+\*)+?)\*\*`), "$1"},
	{regexp.MustCompile(`__((?:[^_]|_[^_]+_)+?)__`), "$1"},
	{regexp.MustCompile(`\*([^*]+)\*`), "$1"},
	{regexp.MustCompile(`_([^_]+)_`), "$1"},
	{regexp.MustCompile(`~~([^~]+)~~`), "$1"},
	{regexp.MustCompile(`==([^=]+)==`), "$1"},
}

// linkPasses run in this order. Aliased wiki-links go before bare ones so
// the "|alias" part never reaches the bracket pass, and markdown links go
// before bare brackets so the "(url)" suffix is consumed with its label.
var linkPasses = []replacement{
	{regexp.MustCompile(`\[\[([^\]|]+)\|([^\]]+)\]\]`), "$2"},
	{regexp.MustCompile(`\[\[([^\]]+)\]\]`), "$1"},
	{regexp.MustCompile(`\[([^\]]+)\]\(([^)]*)\)`), "$1"},
	{regexp.MustCompile(`\[([^\]]+)\]`), "$1"},
}

// StripDecoration removes bold, italic, strikethrough and highlight markup,
// keeping the inner text.
//
// Escaped delimiters such as `\*` are not special-cased and are stripped
// like any other marker.
func StripDecoration(text string) string {
	return applyPasses(text, decorationPasses)
}

// StripLinks removes wiki-link and markdown-link markup, keeping the alias
// of an aliased wiki-link and the label of every other form.
//
//	StripLinks("[e](link) [[f]] [g] [[h|H!]]") // "e f g H!"
func StripLinks(text string) string {
	return applyPasses(text, linkPasses)
}

func applyPasses(text string, passes []replacement) string {
	for _, p := range passes {
		text = p.re.ReplaceAllString(text, p.repl)
	}
	return text
}
