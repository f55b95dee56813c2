// File: trim.go
// Title: Trimming
// Description: White space trimming at either end and case aware removal
//              of a prefix or suffix.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial implementation

package stringx

// TrimWhere selects which ends TrimSpaces works on.
type TrimWhere int

const (
	TrimBoth TrimWhere = iota
	TrimBegin
	TrimEnd
)

// IsSpace reports whether b is ASCII white space.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// TrimSpaces removes ASCII white space from the selected ends of s. The
// result shares storage with s.
func TrimSpaces(s string, where TrimWhere) string {
	start, end := 0, len(s)
	if where != TrimEnd {
		for start < end && IsSpace(s[start]) {
			start++
		}
	}
	if where != TrimBegin {
		for end > start && IsSpace(s[end-1]) {
			end--
		}
	}
	return s[start:end]
}

// TrimPrefix removes one leading prefix from s if present.
func TrimPrefix(s, prefix string, c Case) string {
	if StartsWith(s, prefix, c) {
		return s[len(prefix):]
	}
	return s
}

// TrimSuffix removes one trailing suffix from s if present.
func TrimSuffix(s, suffix string, c Case) string {
	if EndsWith(s, suffix, c) {
		return s[:len(s)-len(suffix)]
	}
	return s
}
