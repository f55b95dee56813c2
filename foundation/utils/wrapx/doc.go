// File: doc.go
// Title: Package Documentation for wrapx
// Description: Package wrapx reflows text into lines of a fixed width.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

// Package wrapx implements greedy line wrapping and justification.
//
// Words are added to the current line until the next one would push it
// past the width, then the line is flushed and a new one starts with the
// continuation prefix. Prefixes count toward the width. A newline in the
// input always ends a line. Widths are counted in runes; with
// Options.DisplayWidth they are counted in terminal columns, so East
// Asian wide characters take two.
//
//	lines, _ := wrapx.Wrap("the quick brown fox", 10, wrapx.Options{})
//	// ["the quick" "brown fox"]
package wrapx
