// File: find.go
// Title: Substring and Word Search
// Description: Forward and reverse search for the nth non-overlapping
//              occurrence of a pattern, and whole word search.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation

package stringx

import "strings"

// Direction selects the search direction.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

// FindOptions configures Find. Occurrence counts from zero: 0 finds the
// first match in the search direction, 1 the next one after it, and so on.
type FindOptions struct {
	Case       Case
	Direction  Direction
	Occurrence int
}

func indexFrom(s, pattern string, c Case) int {
	if c == CaseSensitive {
		return strings.Index(s, pattern)
	}
	for i := 0; i+len(pattern) <= len(s); i++ {
		if Equal(s[i:i+len(pattern)], pattern, NoCase) {
			return i
		}
	}
	return NotFound
}

func lastIndex(s, pattern string, c Case) int {
	if c == CaseSensitive {
		return strings.LastIndex(s, pattern)
	}
	for i := len(s) - len(pattern); i >= 0; i-- {
		if Equal(s[i:i+len(pattern)], pattern, NoCase) {
			return i
		}
	}
	return NotFound
}

// Find returns the byte offset of the requested occurrence of pattern in
// s, or NotFound. Each further occurrence starts strictly after the
// previous match, so matches never overlap. An empty pattern is never
// found.
func Find(s, pattern string, opts FindOptions) int {
	if pattern == "" || opts.Occurrence < 0 {
		return NotFound
	}
	if opts.Direction == Reverse {
		end := len(s)
		for k := 0; ; k++ {
			i := lastIndex(s[:end], pattern, opts.Case)
			if i < 0 || k == opts.Occurrence {
				return i
			}
			end = i
		}
	}

	pos := 0
	for k := 0; ; k++ {
		i := indexFrom(s[pos:], pattern, opts.Case)
		if i < 0 {
			return NotFound
		}
		if k == opts.Occurrence {
			return pos + i
		}
		pos += i + len(pattern)
	}
}

// FindCase returns the first exact occurrence of pattern.
func FindCase(s, pattern string) int {
	return Find(s, pattern, FindOptions{})
}

// FindNocase returns the first occurrence of pattern ignoring ASCII case.
func FindNocase(s, pattern string) int {
	return Find(s, pattern, FindOptions{Case: NoCase})
}

// isWordByte reports whether b belongs to an identifier. Bytes of UTF-8
// sequences count as letters.
func isWordByte(b byte) bool {
	return b == '_' || b >= 0x80 ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isWordAt(s string, i, n int) bool {
	if i > 0 && isWordByte(s[i-1]) {
		return false
	}
	end := i + n
	return end >= len(s) || !isWordByte(s[end])
}

// FindWord returns the offset of the first occurrence of word that is
// neither preceded nor followed by a letter, digit or underscore.
func FindWord(s, word string, c Case, dir Direction) int {
	if word == "" {
		return NotFound
	}
	if dir == Reverse {
		for end := len(s); end >= len(word); {
			i := lastIndex(s[:end], word, c)
			if i < 0 {
				return NotFound
			}
			if isWordAt(s, i, len(word)) {
				return i
			}
			end = i + len(word) - 1
		}
		return NotFound
	}

	for pos := 0; pos+len(word) <= len(s); {
		i := indexFrom(s[pos:], word, c)
		if i < 0 {
			return NotFound
		}
		if isWordAt(s, pos+i, len(word)) {
			return pos + i
		}
		pos += i + 1
	}
	return NotFound
}
