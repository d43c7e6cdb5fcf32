// Package model defines the value types shared by the fry-tempura packages.
//
// It contains pure data structures with no external dependencies:
// SortOrder for the ordering utility, ListLine for the markdown list
// parser, and the exit codes (ExitCode) plus the CLIError type that the
// CLI layer turns into process exit statuses.
package model
