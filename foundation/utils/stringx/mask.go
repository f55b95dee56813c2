// File: mask.go
// Title: Wildcard Mask Matching
// Description: Glob style matching with '?', '*', bracket classes and
//              backslash escapes. Not a regular expression engine.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-05 v0.1.0: Initial implementation

package stringx

// MatchesMask reports whether s matches mask. In the mask '?' matches any
// single byte, '*' any run of bytes, and "[...]" one byte from a class.
// A class may be negated with a leading '!', contains ranges such as
// "A-F", and takes ']' literally in first position and '-' literally in
// first or last position. A reversed range matches nothing. A backslash
// makes the following byte literal, inside or outside a class. A
// malformed mask (unterminated class, trailing backslash) never matches.
func MatchesMask(s, mask string, c Case) bool {
	si, mi := 0, 0
	starMi, starSi := -1, 0

	for si < len(s) {
		if mi < len(mask) {
			switch mask[mi] {
			case '*':
				starMi, starSi = mi, si
				mi++
				continue
			case '?':
				si++
				mi++
				continue
			case '[':
				matched, next, ok := matchClass(mask, mi, s[si], c)
				if !ok {
					return false
				}
				if matched {
					si++
					mi = next
					continue
				}
			case '\\':
				if mi+1 >= len(mask) {
					return false
				}
				if fold(mask[mi+1], c) == fold(s[si], c) {
					si++
					mi += 2
					continue
				}
			default:
				if fold(mask[mi], c) == fold(s[si], c) {
					si++
					mi++
					continue
				}
			}
		}
		if starMi < 0 {
			return false
		}
		starSi++
		si, mi = starSi, starMi+1
	}

	for mi < len(mask) && mask[mi] == '*' {
		mi++
	}
	return mi == len(mask)
}

// matchClass matches ch against the class opening at mask[start] and
// returns the index just past the closing ']'. ok is false for a
// malformed class.
func matchClass(mask string, start int, ch byte, c Case) (matched bool, next int, ok bool) {
	i := start + 1
	negate := false
	if i < len(mask) && mask[i] == '!' {
		negate = true
		i++
	}

	for first := true; ; first = false {
		if i >= len(mask) {
			return false, 0, false
		}
		if mask[i] == ']' && !first {
			i++
			break
		}

		lo, width, valid := classChar(mask, i)
		if !valid {
			return false, 0, false
		}
		i += width
		hi := lo
		if i+1 < len(mask) && mask[i] == '-' && mask[i+1] != ']' {
			h, w, valid := classChar(mask, i+1)
			if !valid {
				return false, 0, false
			}
			hi = h
			i += 1 + w
		}
		if inRange(ch, lo, hi, c) {
			matched = true
		}
	}

	if negate {
		matched = !matched
	}
	return matched, i, true
}

func classChar(mask string, i int) (b byte, width int, ok bool) {
	if mask[i] != '\\' {
		return mask[i], 1, true
	}
	if i+1 >= len(mask) {
		return 0, 0, false
	}
	return mask[i+1], 2, true
}

func inRange(ch, lo, hi byte, c Case) bool {
	if lo <= ch && ch <= hi {
		return true
	}
	if c == NoCase {
		l, u := lower(ch), upper(ch)
		return (lo <= l && l <= hi) || (lo <= u && u <= hi)
	}
	return false
}
