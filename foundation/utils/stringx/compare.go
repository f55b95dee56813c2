// File: compare.go
// Title: String Comparison
// Description: Three-way comparison, equality, prefix/suffix tests and
//              common prefix/suffix/overlap lengths with optional ASCII
//              case folding.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation

package stringx

// Case selects exact or ASCII case insensitive matching.
type Case int

const (
	CaseSensitive Case = iota
	NoCase
)

// String returns "case" or "nocase"
func (c Case) String() string {
	if c == NoCase {
		return "nocase"
	}
	return "case"
}

// NotFound is returned by the search functions when there is no match.
const NotFound = -1

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func fold(b byte, c Case) byte {
	if c == NoCase {
		return lower(b)
	}
	return b
}

// Compare returns -1, 0 or 1 as a sorts before, equal to or after b.
func Compare(a, b string, c Case) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		x, y := fold(a[i], c), fold(b[i], c)
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// CompareCase compares byte by byte.
func CompareCase(a, b string) int { return Compare(a, b, CaseSensitive) }

// CompareNocase compares with ASCII letters folded to lower case.
func CompareNocase(a, b string) int { return Compare(a, b, NoCase) }

// CompareAt compares the n bytes of s starting at pos with pattern. The
// range is clipped to s; a negative n means up to the end of s.
func CompareAt(s string, pos, n int, pattern string, c Case) int {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s) {
		pos = len(s)
	}
	end := len(s)
	if n >= 0 && pos+n < end {
		end = pos + n
	}
	return Compare(s[pos:end], pattern, c)
}

// Equal reports whether a and b are equal under c.
func Equal(a, b string, c Case) bool {
	return len(a) == len(b) && Compare(a, b, c) == 0
}

// EqualNocase reports whether a and b are equal ignoring ASCII case.
func EqualNocase(a, b string) bool { return Equal(a, b, NoCase) }

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string, c Case) bool {
	return len(s) >= len(prefix) && Equal(s[:len(prefix)], prefix, c)
}

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string, c Case) bool {
	return len(s) >= len(suffix) && Equal(s[len(s)-len(suffix):], suffix, c)
}

// StartsWithByte reports whether the first byte of s is b.
func StartsWithByte(s string, b byte, c Case) bool {
	return len(s) > 0 && fold(s[0], c) == fold(b, c)
}

// EndsWithByte reports whether the last byte of s is b.
func EndsWithByte(s string, b byte, c Case) bool {
	return len(s) > 0 && fold(s[len(s)-1], c) == fold(b, c)
}

// CommonPrefixSize returns the length of the longest common prefix.
func CommonPrefixSize(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// CommonSuffixSize returns the length of the longest common suffix.
func CommonSuffixSize(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}

// CommonOverlapSize returns the length of the longest suffix of a that is
// also a prefix of b.
func CommonOverlapSize(a, b string) int {
	for n := min(len(a), len(b)); n > 0; n-- {
		if a[len(a)-n:] == b[:n] {
			return n
		}
	}
	return 0
}
