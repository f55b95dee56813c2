// File: convert.go
// Title: Single-Byte Encoding Conversion
// Description: Maps bytes of ASCII, ISO-8859-1 and Windows-1252 strings to
//              code points and back, converts whole strings to and from
//              UTF-8 and guesses the encoding of unlabeled text.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-05 v0.1.0: Initial implementation
// - 2025-02-10 v0.1.1: GuessEncoding distinguishes Windows-1252

package utf8x

import (
	"fmt"
	"unicode"

	"golang.org/x/text/encoding/charmap"

	"github.com/msto63/textkit/foundation/core/errors"
)

// undefined1252 holds the bytes Windows-1252 leaves unassigned.
var undefined1252 = [256]bool{0x81: true, 0x8D: true, 0x8F: true, 0x90: true, 0x9D: true}

func charmapFor(enc Encoding) *charmap.Charmap {
	switch enc {
	case EncodingISO8859_1:
		return charmap.ISO8859_1
	case EncodingWindows1252:
		return charmap.Windows1252
	default:
		return nil
	}
}

// CharToSymbol returns the code point byte b stands for in enc. UTF-8 is
// rejected because a single byte is not a complete symbol there.
func CharToSymbol(b byte, enc Encoding) (rune, error) {
	switch enc {
	case EncodingASCII:
		if b >= 0x80 {
			return 0, byteError("CharToSymbol", b, enc)
		}
		return rune(b), nil
	case EncodingISO8859_1:
		return rune(b), nil
	case EncodingWindows1252:
		if undefined1252[b] {
			return 0, byteError("CharToSymbol", b, enc)
		}
		return charmap.Windows1252.DecodeByte(b), nil
	default:
		return 0, errors.ArgumentError(errors.ModuleUtf8x, "CharToSymbol", "encoding", enc,
			"ascii, iso-8859-1 or windows-1252")
	}
}

// SymbolToChar returns the byte that represents r in enc.
func SymbolToChar(r rune, enc Encoding) (byte, error) {
	switch enc {
	case EncodingASCII:
		if r < 0 || r >= 0x80 {
			return 0, runeError("SymbolToChar", r, enc)
		}
		return byte(r), nil
	case EncodingISO8859_1:
		if r < 0 || r > 0xFF {
			return 0, runeError("SymbolToChar", r, enc)
		}
		return byte(r), nil
	case EncodingWindows1252:
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok || undefined1252[b] {
			return 0, runeError("SymbolToChar", r, enc)
		}
		return b, nil
	default:
		return 0, errors.ArgumentError(errors.ModuleUtf8x, "SymbolToChar", "encoding", enc,
			"ascii, iso-8859-1 or windows-1252")
	}
}

func byteError(op string, b byte, enc Encoding) error {
	return errors.EncodingError(errors.ModuleUtf8x, op, string([]byte{b}), 0,
		fmt.Sprintf("byte 0x%02X is not defined in %s", b, enc))
}

func runeError(op string, r rune, enc Encoding) error {
	return errors.EncodingError(errors.ModuleUtf8x, op, string(r), 0,
		fmt.Sprintf("U+%04X has no representation in %s", r, enc))
}

// AsUTF8 converts s from enc to UTF-8. For EncodingUTF8 the input is only
// validated.
func AsUTF8(s string, enc Encoding) (string, error) {
	switch enc {
	case EncodingUTF8:
		if err := Validate(s); err != nil {
			return "", err
		}
		return s, nil
	case EncodingASCII, EncodingISO8859_1, EncodingWindows1252:
	default:
		return "", errors.ArgumentError(errors.ModuleUtf8x, "AsUTF8", "encoding", enc,
			"a known encoding")
	}

	buf := make([]byte, 0, len(s)+len(s)/4)
	for i := 0; i < len(s); i++ {
		r, err := CharToSymbol(s[i], enc)
		if err != nil {
			return "", errors.EncodingError(errors.ModuleUtf8x, "AsUTF8", s, i,
				fmt.Sprintf("byte 0x%02X is not defined in %s", s[i], enc))
		}
		buf, _ = AppendRune(buf, r)
	}
	return string(buf), nil
}

// FromUTF8 converts UTF-8 text s to enc. Code points enc cannot represent
// are handled by sub.
func FromUTF8(s string, enc Encoding, sub Substitution) (string, error) {
	if enc == EncodingUTF8 {
		return s, Validate(s)
	}
	if charmapFor(enc) == nil && enc != EncodingASCII {
		return "", errors.ArgumentError(errors.ModuleUtf8x, "FromUTF8", "encoding", enc,
			"a known encoding")
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		r, size, bad, reason := decodeAt(s, i)
		if bad >= 0 {
			return "", errors.EncodingError(errors.ModuleUtf8x, "FromUTF8", s, bad, reason)
		}
		b, err := SymbolToChar(r, enc)
		switch {
		case err == nil:
			buf = append(buf, b)
		case sub.Enabled:
			buf = append(buf, sub.Placeholder...)
		default:
			return "", errors.EncodingError(errors.ModuleUtf8x, "FromUTF8", s, i,
				fmt.Sprintf("U+%04X has no representation in %s", r, enc))
		}
		i += size
	}
	return string(buf), nil
}

// MatchEncoding reports whether s is well formed in enc.
func MatchEncoding(s string, enc Encoding) bool {
	switch enc {
	case EncodingUTF8:
		return IsValid(s)
	case EncodingASCII:
		for i := 0; i < len(s); i++ {
			if s[i] >= 0x80 {
				return false
			}
		}
		return true
	case EncodingISO8859_1:
		return true
	case EncodingWindows1252:
		for i := 0; i < len(s); i++ {
			if undefined1252[s[i]] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// GuessEncoding picks the most plausible encoding for s: ASCII when every
// byte is below 0x80, then UTF-8 when the text is well formed. Otherwise
// bytes in 0x80..0x9F point at Windows-1252, unless one of them is
// unassigned there, in which case the result is EncodingUnknown.
// Remaining text is taken as ISO-8859-1.
func GuessEncoding(s string) Encoding {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return EncodingASCII
	}
	if IsValid(s) {
		return EncodingUTF8
	}

	c1 := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x80 && b <= 0x9F {
			if undefined1252[b] {
				return EncodingUnknown
			}
			c1 = true
		}
	}
	if c1 {
		return EncodingWindows1252
	}
	return EncodingISO8859_1
}

// IsWhiteSpace reports whether r has the Unicode White_Space property.
func IsWhiteSpace(r rune) bool {
	return unicode.Is(unicode.White_Space, r)
}
