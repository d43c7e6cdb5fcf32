// Package watch rebuilds script sources when they change on disk.
//
// A Watcher observes a source tree with fsnotify. Write and create events
// for script sources are debounced per path, and settled paths are handed
// to the build function one at a time, in path order, from the same
// goroutine that reads the events.
package watch
