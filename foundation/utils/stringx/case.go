// File: case.go
// Title: ASCII Case Conversion
// Description: Upper and lower case conversion of the ASCII letters,
//              leaving every other byte untouched.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-05
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with naming convention helpers
// - 2025-02-05 v0.2.0: Replaced by byte level ASCII case mapping

package stringx

// ToUpper returns s with a-z mapped to A-Z.
func ToUpper(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			b := []byte(s)
			ToUpperBytes(b[i:])
			return string(b)
		}
	}
	return s
}

// ToLower returns s with A-Z mapped to a-z.
func ToLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			ToLowerBytes(b[i:])
			return string(b)
		}
	}
	return s
}

// ToUpperBytes upper-cases the ASCII letters of b in place.
func ToUpperBytes(b []byte) {
	for i, c := range b {
		b[i] = upper(c)
	}
}

// ToLowerBytes lower-cases the ASCII letters of b in place.
func ToLowerBytes(b []byte) {
	for i, c := range b {
		b[i] = lower(c)
	}
}

// IsUpper reports whether s contains no lower case ASCII letter.
func IsUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			return false
		}
	}
	return true
}

// IsLower reports whether s contains no upper case ASCII letter.
func IsLower(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			return false
		}
	}
	return true
}
