// Package tempura is the function library that template scripts call.
//
// The host application's editor and notification facilities are passed in
// explicitly through a Context instead of being read from a global. Every
// operation takes only the capability it needs; a nil Editor stands for "no
// active editor" and turns the operation into a no-op.
//
// Positions are zero-based. Ch counts characters (runes) within a line.
//
// Buffer is an in-memory Editor used by tests and by callers that transform
// note text outside the host.
package tempura
