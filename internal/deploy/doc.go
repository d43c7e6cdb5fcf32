// Package deploy writes build output into the user's template folder.
//
// Two kinds of files land there: transformed scripts (WriteFile) and the
// bundled runtime support file that those scripts call into (Runtime).
// The runtime file always keeps the fixed name RuntimeFileName so scripts
// can reference it without configuration.
package deploy
