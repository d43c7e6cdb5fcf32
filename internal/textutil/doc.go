// Package textutil implements the markdown micro-parsers and text
// transforms used by the fry-tempura function library.
//
// None of these functions return errors. They run over arbitrary
// user-authored markdown, so input that does not match a pattern simply
// comes back unchanged (or as an empty result).
//
// Each transform is an ordered list of regular expression passes. The
// order of the passes is part of the contract: changing it changes the
// output for nested or adjacent markup.
package textutil
