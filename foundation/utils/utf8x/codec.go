// File: codec.go
// Title: Strict UTF-8 Decoder and Encoder
// Description: Byte-level state machine for UTF-8 with exact error
//              positions, symbol counting, validation and encoding.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation
// - 2025-02-09 v0.1.1: Iterator

package utf8x

import (
	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
)

const (
	// MaxRune is the largest code point UTF-8 can carry.
	MaxRune = '\U0010FFFF'
	// RuneError is returned by the iterator for undecodable input.
	RuneError = '�'

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// EvaluateFirst inspects the lead byte of a sequence and returns how many
// continuation bytes must follow it. ok is false for bytes that can never
// start a well-formed sequence (continuation bytes, 0xC0, 0xC1, 0xF5..0xFF).
func EvaluateFirst(b byte) (more int, ok bool) {
	switch {
	case b < 0x80:
		return 0, true
	case b >= 0xC2 && b <= 0xDF:
		return 1, true
	case b >= 0xE0 && b <= 0xEF:
		return 2, true
	case b >= 0xF0 && b <= 0xF4:
		return 3, true
	default:
		return 0, false
	}
}

// EvaluateNext reports whether b is a continuation byte.
func EvaluateNext(b byte) bool {
	return b&0xC0 == 0x80
}

// secondByteRange narrows the allowed range of the byte after lead so that
// overlong forms, surrogates and values above U+10FFFF are rejected.
func secondByteRange(lead byte) (lo, hi byte) {
	switch lead {
	case 0xE0:
		return 0xA0, 0xBF
	case 0xED:
		return 0x80, 0x9F
	case 0xF0:
		return 0x90, 0xBF
	case 0xF4:
		return 0x80, 0x8F
	default:
		return 0x80, 0xBF
	}
}

// decodeAt decodes the symbol starting at s[i]. On failure it returns the
// offset of the offending byte and a reason.
func decodeAt(s string, i int) (r rune, size int, badPos int, reason string) {
	lead := s[i]
	more, ok := EvaluateFirst(lead)
	if !ok {
		if EvaluateNext(lead) {
			return 0, 0, i, "unexpected continuation byte"
		}
		return 0, 0, i, "invalid lead byte"
	}
	if more == 0 {
		return rune(lead), 1, -1, ""
	}
	switch more {
	case 1:
		r = rune(lead & 0x1F)
	case 2:
		r = rune(lead & 0x0F)
	default:
		r = rune(lead & 0x07)
	}

	lo, hi := secondByteRange(lead)
	for k := 1; k <= more; k++ {
		if i+k >= len(s) {
			return 0, 0, len(s), "truncated sequence"
		}
		b := s[i+k]
		if k == 1 {
			if b < lo || b > hi {
				return 0, 0, i + k, "invalid continuation byte"
			}
		} else if !EvaluateNext(b) {
			return 0, 0, i + k, "invalid continuation byte"
		}
		r = r<<6 | rune(b&0x3F)
	}
	return r, more + 1, -1, ""
}

// Decode decodes the first symbol of s and returns it with its width in
// bytes. Empty input and malformed sequences are encoding errors.
func Decode(s string) (rune, int, error) {
	if s == "" {
		return 0, 0, errors.EncodingError(errors.ModuleUtf8x, "Decode", s, 0, "empty input")
	}
	r, size, pos, reason := decodeAt(s, 0)
	if pos >= 0 {
		return 0, 0, errors.EncodingError(errors.ModuleUtf8x, "Decode", s, pos, reason)
	}
	return r, size, nil
}

// ValidBytesCount returns the length of the longest prefix of s made of
// complete, well-formed symbols.
func ValidBytesCount(s string) int {
	i := 0
	for i < len(s) {
		_, size, pos, _ := decodeAt(s, i)
		if pos >= 0 {
			break
		}
		i += size
	}
	return i
}

// ValidSymbolCount returns the number of symbols in the valid prefix of s.
func ValidSymbolCount(s string) int {
	n := 0
	for i := 0; i < len(s); n++ {
		_, size, pos, _ := decodeAt(s, i)
		if pos >= 0 {
			break
		}
		i += size
	}
	return n
}

// SymbolCount returns the number of symbols in s, failing at the first
// malformed sequence.
func SymbolCount(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); n++ {
		_, size, pos, reason := decodeAt(s, i)
		if pos >= 0 {
			return n, errors.EncodingError(errors.ModuleUtf8x, "SymbolCount", s, pos, reason)
		}
		i += size
	}
	return n, nil
}

// Validate returns nil when s is entirely well-formed UTF-8.
func Validate(s string) error {
	for i := 0; i < len(s); {
		_, size, pos, reason := decodeAt(s, i)
		if pos >= 0 {
			return errors.EncodingError(errors.ModuleUtf8x, "Validate", s, pos, reason)
		}
		i += size
	}
	return nil
}

// IsValid reports whether s is entirely well-formed UTF-8.
func IsValid(s string) bool {
	return ValidBytesCount(s) == len(s)
}

// Runes decodes s into code points.
func Runes(s string) ([]rune, error) {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size, pos, reason := decodeAt(s, i)
		if pos >= 0 {
			return nil, errors.EncodingError(errors.ModuleUtf8x, "Runes", s, pos, reason)
		}
		out = append(out, r)
		i += size
	}
	return out, nil
}

// validRune reports whether r is a Unicode scalar value.
func validRune(r rune) bool {
	return r >= 0 && r <= MaxRune && (r < surrogateMin || r > surrogateMax)
}

// AppendRune appends the UTF-8 encoding of r to dst. Negative values,
// surrogates and values above U+10FFFF are encoding errors.
func AppendRune(dst []byte, r rune) ([]byte, error) {
	if !validRune(r) {
		return dst, errors.NewErrorBuilder(errors.ModuleUtf8x).
			Operation("AppendRune").
			Messagef("code point U+%04X cannot be encoded", r).
			Code(mdwerror.CodeInvalidEncoding).
			Detail("rune", int64(r)).
			Build()
	}
	switch {
	case r < 0x80:
		return append(dst, byte(r)), nil
	case r < 0x800:
		return append(dst, 0xC0|byte(r>>6), 0x80|byte(r)&0x3F), nil
	case r < 0x10000:
		return append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F), nil
	default:
		return append(dst, 0xF0|byte(r>>18), 0x80|byte(r>>12)&0x3F, 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F), nil
	}
}

// Encode returns the UTF-8 encoding of r.
func Encode(r rune) (string, error) {
	b, err := AppendRune(make([]byte, 0, 4), r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FromRunes encodes a sequence of code points as UTF-8.
func FromRunes(rs []rune) (string, error) {
	buf := make([]byte, 0, len(rs))
	for _, r := range rs {
		var err error
		if buf, err = AppendRune(buf, r); err != nil {
			return "", err
		}
	}
	return string(buf), nil
}

// Iterator walks the symbols of a string. It stops at the first malformed
// sequence and keeps the error for Err.
type Iterator struct {
	s   string
	pos int
	err error
}

// NewIterator returns an iterator positioned before the first symbol of s.
func NewIterator(s string) *Iterator {
	return &Iterator{s: s}
}

// Next returns the next symbol. ok is false at the end of input or after
// an error.
func (it *Iterator) Next() (r rune, ok bool) {
	if it.err != nil || it.pos >= len(it.s) {
		return RuneError, false
	}
	r, size, bad, reason := decodeAt(it.s, it.pos)
	if bad >= 0 {
		it.err = errors.EncodingError(errors.ModuleUtf8x, "Iterator.Next", it.s, bad, reason)
		return RuneError, false
	}
	it.pos += size
	return r, true
}

// Pos returns the byte offset of the next symbol.
func (it *Iterator) Pos() int { return it.pos }

// Err returns the decoding error that stopped the iterator, if any.
func (it *Iterator) Err() error { return it.err }
