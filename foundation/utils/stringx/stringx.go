// File: stringx.go
// Title: Core String Utility Functions
// Description: Blank checks, rune-aware truncation and padding used by the
//              transform pipeline and the CLI output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-07
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-02-07 v0.2.0: Reduced to the helpers textkit uses, errors via core/errors

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/textkit/foundation/core/errors"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FirstNonBlank returns the first argument that is not blank.
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}

// Truncate shortens s to at most maxLen runes, ending in ellipsis when
// anything was cut. Multi-byte characters are never split.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// TruncateE is Truncate with a negative maxLen reported as an error.
func TruncateE(s string, maxLen int, ellipsis string) (string, error) {
	if maxLen < 0 {
		return "", errors.ArgumentError(errors.ModuleStringx, "Truncate", "maxLen", maxLen, "a non-negative length")
	}
	return Truncate(s, maxLen, ellipsis), nil
}

// MustTruncate truncates a string, panicking on invalid input
func MustTruncate(s string, maxLen int, ellipsis string) string {
	result, err := TruncateE(s, maxLen, ellipsis)
	if err != nil {
		panic(err)
	}
	return result
}

// PadLeft pads s on the left with pad up to width runes.
func PadLeft(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

// PadRight pads s on the right with pad up to width runes.
func PadRight(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), n)
}

// Center centers s within width runes. An odd amount of padding puts the
// extra rune on the right.
func Center(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), n-left)
}
