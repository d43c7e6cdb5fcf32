// Package logging configures the zerolog logger used by the CLI.
package logging
