// Package model defines the shared value types for the fry-tempura tool.
//
// The text utilities and the build pipeline are pure functions, so these
// types are transient: they are created per call and never persisted.
package model

import (
	"fmt"
	"strings"
)

// SortOrder is the direction used when ordering a collection by a key.
type SortOrder string

const (
	// OrderAsc sorts smaller keys first. It is also what the empty
	// SortOrder means.
	OrderAsc SortOrder = "asc"

	// OrderDesc sorts larger keys first.
	OrderDesc SortOrder = "desc"
)

// String returns the string representation of SortOrder.
func (o SortOrder) String() string {
	if o == "" {
		return string(OrderAsc)
	}
	return string(o)
}

// IsValid checks whether the SortOrder is one of the predefined directions.
// The empty value is valid and treated as ascending.
func (o SortOrder) IsValid() bool {
	switch o {
	case "", OrderAsc, OrderDesc:
		return true
	default:
		return false
	}
}

// IsDesc reports whether the order is descending.
func (o SortOrder) IsDesc() bool {
	return o == OrderDesc
}

// ParseSortOrder converts a string to a SortOrder.
// Matching is case-insensitive; an empty string yields OrderAsc.
func ParseSortOrder(s string) (SortOrder, error) {
	if strings.TrimSpace(s) == "" {
		return OrderAsc, nil
	}
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	if !order.IsValid() {
		return "", fmt.Errorf("invalid sort order: %q (valid: asc, desc)", s)
	}
	return order, nil
}

// ListLine is one line of markdown split into its list prefix and content.
//
// Prefix + Content always equals the line it was parsed from.
type ListLine struct {
	// Prefix is the indentation, bullet and optional checkbox, verbatim.
	// Example: "\t- [x] ".
	Prefix string `json:"prefix"`

	// Content is the remainder of the line after Prefix.
	Content string `json:"content"`
}

// String reassembles the original line.
func (l ListLine) String() string {
	return l.Prefix + l.Content
}

// ExitCode defines the CLI exit codes. Scripts wrapping the build tool can
// use them to tell configuration problems apart from broken sources.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigNotFound indicates no config file was found in any of the
	// searched locations.
	ExitConfigNotFound ExitCode = 2

	// ExitConfigInvalid indicates the config file could not be parsed or
	// lacks a key the command requires.
	ExitConfigInvalid ExitCode = 3

	// ExitSourceUnreadable indicates a source script could not be read.
	ExitSourceUnreadable ExitCode = 4

	// ExitTransformFailed indicates type erasure or bundling failed.
	ExitTransformFailed ExitCode = 5

	// ExitWriteFailed indicates a destination file could not be written.
	ExitWriteFailed ExitCode = 6
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
