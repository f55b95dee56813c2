// File: replace.go
// Title: Counted Replacement
// Description: Substring replacement starting at a byte offset with an
//              optional replacement limit, reporting the count.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// ReplaceOptions configures Replace. Matching starts at StartPos; a
// MaxReplace of 0 or less replaces every occurrence.
type ReplaceOptions struct {
	StartPos   int
	MaxReplace int
}

// Replace substitutes non-overlapping occurrences of search with repl and
// returns the result and the number of replacements. An empty search or
// a StartPos outside s leaves s unchanged.
func Replace(s, search, repl string, opts ReplaceOptions) (string, int) {
	out, n, err := ReplaceE(s, search, repl, opts)
	if err != nil {
		return s, 0
	}
	return out, n
}

// ReplaceE is Replace with unusable arguments reported as errors.
func ReplaceE(s, search, repl string, opts ReplaceOptions) (string, int, error) {
	if search == "" {
		return s, 0, errors.ArgumentError(errors.ModuleStringx, "Replace", "search", search, "a non-empty string")
	}
	if opts.StartPos < 0 || opts.StartPos > len(s) {
		return s, 0, errors.ArgumentError(errors.ModuleStringx, "Replace", "start position", opts.StartPos,
			"an offset within the input")
	}

	var sb strings.Builder
	sb.Grow(len(s))
	sb.WriteString(s[:opts.StartPos])

	pos, count := opts.StartPos, 0
	for opts.MaxReplace <= 0 || count < opts.MaxReplace {
		i := strings.Index(s[pos:], search)
		if i < 0 {
			break
		}
		sb.WriteString(s[pos : pos+i])
		sb.WriteString(repl)
		pos += i + len(search)
		count++
	}
	if count == 0 {
		return s, 0, nil
	}
	sb.WriteString(s[pos:])
	return sb.String(), count, nil
}

// ReplaceInPlace replaces within *s and returns the replacement count.
func ReplaceInPlace(s *string, search, repl string, opts ReplaceOptions) int {
	out, n := Replace(*s, search, repl, opts)
	*s = out
	return n
}
