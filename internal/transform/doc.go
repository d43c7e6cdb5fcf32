// Package transform turns annotated template scripts into deployable
// scripts.
//
// A build runs three line-level stages in a fixed order, then trims the
// tail:
//  1. Type erasure, delegated to an Eraser (esbuild in production)
//  2. Comment-marker stripping: "///" lines become live code
//  3. Exception rewriting: `throw exit("msg")` becomes notify + return
//  4. Trailing trim: a final empty line, then a final `export {};`
//
// Every stage is a pure function from lines to lines, so each one can be
// tested on its own. The source is never modified; output is written only
// after the whole pipeline succeeded.
package transform
