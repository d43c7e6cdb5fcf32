package tempura

import (
	"cmp"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mmr-tortoise/fry-tempura/pkg/frontmatter"
	"github.com/mmr-tortoise/fry-tempura/internal/model"
	"github.com/mmr-tortoise/fry-tempura/internal/textutil"
)

// SortOrder is the direction used by SortSelectionLines.
type SortOrder = model.SortOrder

const (
	// OrderAsc sorts smallest key first. The zero SortOrder is ascending.
	OrderAsc = model.OrderAsc

	// OrderDesc sorts largest key first.
	OrderDesc = model.OrderDesc
)

// Attach selects where AttachTextToListItem places the text.
type Attach string

const (
	// AttachPrefix inserts the text between the list marker and the content.
	AttachPrefix Attach = "prefix"

	// AttachSuffix appends the text after the content.
	AttachSuffix Attach = "suffix"
)

// AttachOptions configures AttachTextToListItem.
type AttachOptions struct {
	// Position defaults to AttachPrefix.
	Position Attach

	// CursorLast moves the cursor to the end of the rewritten line.
	CursorLast bool
}

// Insert inserts text at the cursor.
func Insert(e Editor, text string) {
	if e == nil {
		return
	}
	cur := e.GetCursor()
	e.ReplaceRange(text, cur, cur)
}

// ActiveLine returns the line under the cursor. ok is false without an
// editor.
func ActiveLine(e Editor) (line string, ok bool) {
	if e == nil {
		return "", false
	}
	return e.GetLine(e.GetCursor().Line), true
}

// SelectionLines returns the selection split on "\n". ok is false without
// an editor.
func SelectionLines(e Editor) (lines []string, ok bool) {
	if e == nil {
		return nil, false
	}
	return strings.Split(e.GetSelection(), "\n"), true
}

// SetTextToSelection replaces the selection with text.
func SetTextToSelection(e Editor, text string) {
	if e == nil {
		return
	}
	e.ReplaceSelection(text)
}

// ReplaceActiveLine rewrites the line under the cursor. The cursor keeps its
// column, capped before the last character, unless cursorLast moves it to
// the end of the line.
func ReplaceActiveLine(e Editor, text string, cursorLast bool) {
	if e == nil {
		return
	}

	cur := e.GetCursor()
	e.SetLine(cur.Line, text)

	length := utf8.RuneCountInString(text)
	ch := min(cur.Ch, length-1)
	if cursorLast {
		ch = length
	}
	e.SetCursor(Position{Line: cur.Line, Ch: max(ch, 0)})
}

// AttachTextToListItem adds text to the list item under the cursor, keeping
// its list marker intact.
func AttachTextToListItem(e Editor, text string, opts AttachOptions) error {
	if e == nil {
		return nil
	}

	line, _ := ActiveLine(e)
	item := textutil.ParseMarkdownList(line)

	var after string
	switch opts.Position {
	case AttachPrefix, "":
		after = item.Prefix + text + item.Content
	case AttachSuffix:
		after = item.Prefix + item.Content + text
	default:
		return fmt.Errorf("unknown attach position %q", opts.Position)
	}

	ReplaceActiveLine(e, after, opts.CursorLast)
	return nil
}

// SortSelectionLines sorts the selected lines by their text.
func SortSelectionLines(e Editor, order SortOrder) {
	SortSelectionLinesBy(e, order, textutil.Identity[string])
}

// SortSelectionLinesBy sorts the selected lines by key.
func SortSelectionLinesBy[K cmp.Ordered](e Editor, order SortOrder, key func(string) K) {
	lines, ok := SelectionLines(e)
	if !ok {
		return
	}
	SetTextToSelection(e, strings.Join(textutil.OrderBy(lines, key, order), "\n"))
}

// ActiveLineTags returns the "#" tags on the line under the cursor.
func ActiveLineTags(e Editor) []string {
	line, ok := ActiveLine(e)
	if !ok {
		return nil
	}
	return textutil.ParseTags(line)
}

// StripDecorationFromSelection removes emphasis markup from each selected
// line.
func StripDecorationFromSelection(e Editor) {
	mapSelectionLines(e, textutil.StripDecoration)
}

// StripLinksFromSelection replaces links in each selected line with their
// display text.
func StripLinksFromSelection(e Editor) {
	mapSelectionLines(e, textutil.StripLinks)
}

func mapSelectionLines(e Editor, fn func(string) string) {
	lines, ok := SelectionLines(e)
	if !ok {
		return
	}
	for i, line := range lines {
		lines[i] = fn(line)
	}
	SetTextToSelection(e, strings.Join(lines, "\n"))
}

// DeleteActiveLine removes the line under the cursor. The last line is
// cleared instead.
func DeleteActiveLine(e Editor) {
	if e == nil {
		return
	}

	cur := e.GetCursor()
	if cur.Line == e.LineCount()-1 {
		e.SetLine(cur.Line, "")
		return
	}
	e.ReplaceRange("", Position{Line: cur.Line}, Position{Line: cur.Line + 1})
}

// ReadTagsFromProperty returns the "tags" frontmatter property of the note
// in the editor, without leading "#".
func ReadTagsFromProperty(e Editor) ([]string, error) {
	props, err := activeProperties(e)
	if err != nil {
		return nil, err
	}
	return props.Tags(), nil
}

// ReadAliasesFromProperty returns the "aliases" frontmatter property of the
// note in the editor.
func ReadAliasesFromProperty(e Editor) ([]string, error) {
	props, err := activeProperties(e)
	if err != nil {
		return nil, err
	}
	return props.Aliases(), nil
}

func activeProperties(e Editor) (frontmatter.Properties, error) {
	if e == nil {
		return nil, nil
	}
	props, _, err := frontmatter.Parse(e.GetValue())
	return props, err
}
