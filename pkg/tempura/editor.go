package tempura

import (
	"github.com/rs/zerolog"
)

// Position is a location in an editor.
type Position struct {
	Line int
	Ch   int
}

// Editor is the subset of the host editor the library uses.
type Editor interface {
	GetCursor() Position
	SetCursor(pos Position)
	GetLine(line int) string
	SetLine(line int, text string)
	LineCount() int
	GetSelection() string
	ReplaceSelection(text string)
	ReplaceRange(text string, from, to Position)
	GetValue() string
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

// Notify calls f(msg).
func (f NotifierFunc) Notify(msg string) { f(msg) }

// LogNotifier writes notifications to a zerolog logger.
type LogNotifier struct {
	Logger zerolog.Logger
}

// Notify logs msg at info level.
func (n LogNotifier) Notify(msg string) {
	n.Logger.Info().Str("notice", msg).Msg("notify")
}

// Context carries the host capabilities available to a script.
type Context struct {
	Editor   Editor
	Notifier Notifier
}

// Notify forwards msg to the context's Notifier. Without one it does
// nothing.
func (c Context) Notify(msg string) {
	if c.Notifier == nil {
		return
	}
	c.Notifier.Notify(msg)
}
