// File: doc.go
// Title: Package Documentation for splitx
// Description: Package splitx splits text into tokens and joins tokens
//              back into text.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-04
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation

// Package splitx provides the tokenizer and the matching join helpers.
//
// Delimiters are either a set of single bytes (the default) or, with
// Options.ByPattern, one literal multi byte string. Quoting and escaping
// are opt in; once enabled, quote and escape characters are removed from
// the emitted tokens and an unbalanced quote or a dangling escape is a
// format error carrying the byte position of the offending character.
//
//	splitx.Split("a,,b,c", ",", splitx.Options{})                       // ["a" "" "b" "c"]
//	splitx.Split("a,,b,c", ",", splitx.Options{MergeDelimiters: true})  // ["a" "b" "c"]
//	splitx.Split(`x "a b" y`, " ", splitx.CanQuote())                   // ["x" "a b" "y"]
//	splitx.Join([]string{"a", "b"}, ", ")                               // "a, b"
//
// For any tokens free of delimiter characters, Split(Join(t, d), d)
// returns t again, except that the empty string splits into no tokens.
package splitx
