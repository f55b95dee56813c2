// File: html.go
// Title: HTML Encoding
// Description: Escapes text for HTML with optional pass-through of
//              existing character references, and decodes named and
//              numeric character references.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation
// - 2025-02-11 v0.1.1: Warn about pre-encoded input

package encodex

import (
	"fmt"
	"html"
	"strings"

	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/utf8x"
)

// HTMLEncodeOptions configures HTMLEncode.
type HTMLEncodeOptions struct {
	// SkipLiteralEntities leaves '&' alone when it starts a known named
	// reference such as "&amp;".
	SkipLiteralEntities bool
	// SkipNumericEntities leaves '&' alone when it starts a numeric
	// reference such as "&#39;" or "&#x2d;".
	SkipNumericEntities bool
	// CheckPreencoded logs a warning through the default logger when the
	// input already contains references that will be encoded again.
	CheckPreencoded bool
}

// namedRefLen returns the length of the named reference at s[i:], or 0.
func namedRefLen(s string, i int) int {
	j := i + 1
	for j < len(s) && isAlnum(s[j]) {
		j++
	}
	if j == i+1 || j >= len(s) || s[j] != ';' || !isAlpha(s[i+1]) {
		return 0
	}
	ref := s[i : j+1]
	if html.UnescapeString(ref) == ref {
		return 0
	}
	return len(ref)
}

// numericRefLen returns the length of the numeric reference at s[i:], or 0.
func numericRefLen(s string, i int) int {
	if i+2 >= len(s) || s[i+1] != '#' {
		return 0
	}
	j, base := i+2, 10
	if s[j] == 'x' || s[j] == 'X' {
		j++
		base = 16
	}
	start := j
	for j < len(s) && hexValue(s[j]) >= 0 && hexValue(s[j]) < base {
		j++
	}
	if j == start || j >= len(s) || s[j] != ';' {
		return 0
	}
	return j + 1 - i
}

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isAlnum(c byte) bool { return isAlpha(c) || (c >= '0' && c <= '9') }

// HTMLEncode escapes & < > " and ' and writes control characters other
// than tab, newline and carriage return as hex references.
func HTMLEncode(s string, opts HTMLEncodeOptions) string {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/4)
	reencoded := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '&':
			named, numeric := namedRefLen(s, i), numericRefLen(s, i)
			switch {
			case named > 0 && opts.SkipLiteralEntities, numeric > 0 && opts.SkipNumericEntities:
				sb.WriteByte('&')
				continue
			case named > 0 || numeric > 0:
				reencoded++
			}
			sb.WriteString("&amp;")
		case c == '<':
			sb.WriteString("&lt;")
		case c == '>':
			sb.WriteString("&gt;")
		case c == '"':
			sb.WriteString("&quot;")
		case c == '\'':
			sb.WriteString("&#39;")
		case (c < 0x20 && c != '\t' && c != '\n' && c != '\r') || c == 0x7F:
			fmt.Fprintf(&sb, "&#x%X;", c)
		default:
			sb.WriteByte(c)
		}
	}

	if opts.CheckPreencoded && reencoded > 0 {
		mdwlog.Warn("input already contains HTML character references",
			mdwlog.Field("function", "HTMLEncode"),
			mdwlog.Field("references", reencoded))
	}
	return sb.String()
}

// HTMLDecodeFlags reports what HTMLDecode found.
type HTMLDecodeFlags uint

const (
	// CharRefEntity: at least one named reference was decoded.
	CharRefEntity HTMLDecodeFlags = 1 << iota
	// CharRefNumeric: at least one numeric reference was decoded.
	CharRefNumeric
	// EncodingChanged: the input was converted to UTF-8 first.
	EncodingChanged
)

// Has reports whether all bits of f are set.
func (r HTMLDecodeFlags) Has(f HTMLDecodeFlags) bool { return r&f == f }

// HTMLDecode converts s from enc to UTF-8 and decodes character
// references. EncodingUnknown guesses the encoding. References that do
// not name a known entity are kept verbatim; numeric references to
// invalid code points become U+FFFD.
func HTMLDecode(s string, enc utf8x.Encoding) (string, HTMLDecodeFlags, error) {
	var flags HTMLDecodeFlags
	if enc == utf8x.EncodingUnknown {
		enc = utf8x.GuessEncoding(s)
	}
	if enc == utf8x.EncodingISO8859_1 || enc == utf8x.EncodingWindows1252 {
		converted, err := utf8x.AsUTF8(s, enc)
		if err != nil {
			return "", 0, err
		}
		if converted != s {
			flags |= EncodingChanged
		}
		s = converted
	}

	if strings.IndexByte(s, '&') < 0 {
		return s, flags, nil
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '&' {
			sb.WriteByte(s[i])
			continue
		}
		if n := numericRefLen(s, i); n > 0 {
			sb.WriteRune(numericRefValue(s[i : i+n]))
			flags |= CharRefNumeric
			i += n - 1
			continue
		}
		if n := namedRefLen(s, i); n > 0 {
			ref := s[i : i+n]
			decoded := html.UnescapeString(ref)
			if decoded != ref {
				flags |= CharRefEntity
			}
			sb.WriteString(decoded)
			i += n - 1
			continue
		}
		sb.WriteByte('&')
	}
	return sb.String(), flags, nil
}

// numericRefValue decodes "&#NNN;" or "&#xHH;".
func numericRefValue(ref string) rune {
	digits, base := ref[2:len(ref)-1], 10
	if digits[0] == 'x' || digits[0] == 'X' {
		digits, base = digits[1:], 16
	}
	var v rune
	for i := 0; i < len(digits); i++ {
		v = v*rune(base) + rune(hexValue(digits[i]))
		if v > utf8x.MaxRune {
			return utf8x.RuneError
		}
	}
	if v == 0 || (v >= 0xD800 && v <= 0xDFFF) {
		return utf8x.RuneError
	}
	return v
}

var htmlEntityNames = map[rune]string{
	'&': "amp", '<': "lt", '>': "gt", '"': "quot", '\'': "apos",
	0xA0: "nbsp", 0xA9: "copy", 0xAE: "reg", 0x2122: "trade", 0x20AC: "euro",
	0xB0: "deg", 0xB1: "plusmn", 0xD7: "times", 0xF7: "divide", 0x2014: "mdash", 0x2013: "ndash",
}

// HTMLEntity returns the character reference for r: a named reference for
// common characters, "&#N;" otherwise.
func HTMLEntity(r rune) string {
	if name, ok := htmlEntityNames[r]; ok {
		return "&" + name + ";"
	}
	return fmt.Sprintf("&#%d;", r)
}
