package tempura

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBuffer_Lines covers line access and out-of-range handling.
func TestBuffer_Lines(t *testing.T) {
	b := NewBuffer("one\ntwo\nthree")

	assert.Equal(t, 3, b.LineCount())
	assert.Equal(t, "two", b.GetLine(1))
	assert.Equal(t, "", b.GetLine(5))

	b.SetLine(1, "TWO")
	b.SetLine(9, "ignored")
	assert.Equal(t, "one\nTWO\nthree", b.GetValue())

	assert.Equal(t, 1, NewBuffer("").LineCount())
}

// TestBuffer_Selection reads and replaces a multi-line selection.
func TestBuffer_Selection(t *testing.T) {
	b := NewBuffer("alpha\nbeta\ngamma")
	b.Select(Position{Line: 0, Ch: 2}, Position{Line: 1, Ch: 2})

	assert.Equal(t, "pha\nbe", b.GetSelection())

	b.ReplaceSelection("X\nY")
	assert.Equal(t, "alX\nYta\ngamma", b.GetValue())
	assert.Equal(t, Position{Line: 1, Ch: 1}, b.GetCursor())
	assert.Equal(t, "", b.GetSelection())
}

// TestBuffer_BackwardSelection treats a head before the anchor the same way.
func TestBuffer_BackwardSelection(t *testing.T) {
	b := NewBuffer("abc")
	b.Select(Position{Ch: 3}, Position{Ch: 1})
	assert.Equal(t, "bc", b.GetSelection())
}

// TestBuffer_MultibyteColumns counts columns in characters.
func TestBuffer_MultibyteColumns(t *testing.T) {
	b := NewBuffer("あいう\nえお")
	b.Select(Position{Line: 0, Ch: 1}, Position{Line: 1, Ch: 1})
	assert.Equal(t, "いう\nえ", b.GetSelection())

	b.ReplaceRange("ー", Position{Line: 1, Ch: 1}, Position{Line: 1, Ch: 2})
	assert.Equal(t, "あいう\nえー", b.GetValue())
}

// TestBuffer_SetCursorClamps keeps the cursor inside the content.
func TestBuffer_SetCursorClamps(t *testing.T) {
	b := NewBuffer("ab\nc")
	b.SetCursor(Position{Line: 7, Ch: 9})
	assert.Equal(t, Position{Line: 1, Ch: 1}, b.GetCursor())

	b.SetCursor(Position{Line: -1, Ch: -1})
	assert.Equal(t, Position{}, b.GetCursor())
}
