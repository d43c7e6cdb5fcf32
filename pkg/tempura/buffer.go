package tempura

import (
	"strings"
	"unicode/utf8"
)

// Buffer is an in-memory Editor holding lines of text, a cursor and a
// selection.
type Buffer struct {
	lines  []string
	cursor Position
	anchor Position
}

// NewBuffer returns a Buffer holding text with the cursor at the start.
func NewBuffer(text string) *Buffer {
	return &Buffer{lines: strings.Split(text, "\n")}
}

// Select sets the selection from anchor to head. The cursor moves to head.
func (b *Buffer) Select(anchor, head Position) {
	b.anchor = b.clamp(anchor)
	b.cursor = b.clamp(head)
}

// GetCursor returns the cursor position.
func (b *Buffer) GetCursor() Position {
	return b.cursor
}

// SetCursor moves the cursor and collapses the selection.
func (b *Buffer) SetCursor(pos Position) {
	b.cursor = b.clamp(pos)
	b.anchor = b.cursor
}

// GetLine returns the text of line, or "" when it is out of range.
func (b *Buffer) GetLine(line int) string {
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// SetLine replaces the text of line. Out-of-range lines are ignored.
func (b *Buffer) SetLine(line int, text string) {
	if line < 0 || line >= len(b.lines) {
		return
	}
	b.ReplaceRange(text, Position{Line: line}, Position{Line: line, Ch: utf8.RuneCountInString(b.lines[line])})
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// GetSelection returns the selected text.
func (b *Buffer) GetSelection() string {
	from, to := b.selection()
	value := b.GetValue()
	return value[b.offset(from):b.offset(to)]
}

// ReplaceSelection replaces the selected text and leaves the cursor after
// the inserted text.
func (b *Buffer) ReplaceSelection(text string) {
	from, to := b.selection()
	start := b.offset(from)
	b.ReplaceRange(text, from, to)
	b.SetCursor(b.positionAt(start + len(text)))
}

// ReplaceRange replaces the text between from and to. The cursor and the
// selection anchor are clamped to the new content.
func (b *Buffer) ReplaceRange(text string, from, to Position) {
	start, end := b.offset(from), b.offset(to)
	if start > end {
		start, end = end, start
	}

	value := b.GetValue()
	b.lines = strings.Split(value[:start]+text+value[end:], "\n")
	b.cursor = b.clamp(b.cursor)
	b.anchor = b.clamp(b.anchor)
}

// GetValue returns the whole buffer.
func (b *Buffer) GetValue() string {
	return strings.Join(b.lines, "\n")
}

func (b *Buffer) selection() (Position, Position) {
	if b.offset(b.anchor) <= b.offset(b.cursor) {
		return b.anchor, b.cursor
	}
	return b.cursor, b.anchor
}

func (b *Buffer) clamp(pos Position) Position {
	pos.Line = min(max(pos.Line, 0), len(b.lines)-1)
	pos.Ch = min(max(pos.Ch, 0), utf8.RuneCountInString(b.lines[pos.Line]))
	return pos
}

// offset converts a position to a byte offset into GetValue.
func (b *Buffer) offset(pos Position) int {
	pos = b.clamp(pos)
	n := 0
	for i := 0; i < pos.Line; i++ {
		n += len(b.lines[i]) + 1
	}
	line := b.lines[pos.Line]
	for i := range line {
		if pos.Ch == 0 {
			return n + i
		}
		pos.Ch--
	}
	return n + len(line)
}

// positionAt converts a byte offset into GetValue to a position.
func (b *Buffer) positionAt(offset int) Position {
	for line, text := range b.lines {
		if offset <= len(text) {
			return Position{Line: line, Ch: utf8.RuneCountInString(text[:offset])}
		}
		offset -= len(text) + 1
	}
	last := len(b.lines) - 1
	return Position{Line: last, Ch: utf8.RuneCountInString(b.lines[last])}
}
