// File: printable.go
// Title: C Style Escapes
// Description: Converts bytes to printable C literal escapes and parses
//              escape sequences back, with a policy for escapes whose value
//              does not fit a byte.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation
// - 2025-02-10 v0.1.1: Quoted literal parsing

package encodex

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
)

// NewLineMode selects how PrintableString renders '\n'.
type NewLineMode int

const (
	// NewLineQuote renders '\n' as `\n`.
	NewLineQuote NewLineMode = iota
	// NewLinePassthru renders '\n' as `\n` followed by a line continuation,
	// so the output keeps its line structure.
	NewLinePassthru
)

// PrintableMode configures PrintableString.
type PrintableMode struct {
	NewLine NewLineMode
	// NonASCIIQuote escapes bytes >= 0x80 as octal.
	NonASCIIQuote bool
	// Full always writes three octal digits.
	Full bool
}

var simpleEscapes = [256]string{
	'\a': `\a`, '\b': `\b`, '\t': `\t`, '\n': `\n`, '\v': `\v`, '\f': `\f`, '\r': `\r`,
	'\\': `\\`, '\'': `\'`, '"': `\"`,
}

func isOctal(b byte) bool { return b >= '0' && b <= '7' }

// PrintableString returns s with every non-printable byte replaced by a C
// escape sequence. Octal escapes use the fewest digits unless the next
// byte is an octal digit or mode.Full is set. A '?' following '?' is
// escaped to keep trigraphs out of the result.
func PrintableString(s string, mode PrintableMode) string {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\n' && mode.NewLine == NewLinePassthru:
			sb.WriteString("\\n\\\n")
		case simpleEscapes[c] != "":
			sb.WriteString(simpleEscapes[c])
		case c == '?' && i > 0 && s[i-1] == '?':
			sb.WriteString(`\?`)
		case c < 0x20 || c == 0x7F || (c >= 0x80 && mode.NonASCIIQuote):
			if mode.Full || (i+1 < len(s) && isOctal(s[i+1])) {
				fmt.Fprintf(&sb, "\\%03o", c)
			} else {
				fmt.Fprintf(&sb, "\\%o", c)
			}
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// EscapeRange decides what ParseEscapes does with an escape whose value
// exceeds 0xFF.
type EscapeRange int

const (
	// RangeStandard keeps the low byte of the value.
	RangeStandard EscapeRange = iota
	// RangeFirstByte consumes only as many digits as fit in one byte; the
	// remaining digits are kept as literal text.
	RangeFirstByte
	// RangeFail reports a range error.
	RangeFail
	// RangeUser substitutes the caller supplied byte.
	RangeUser
)

var escapeValues = [256]byte{
	'a': '\a', 'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t', 'v': '\v',
}

// ParseEscapes decodes C escape sequences in s: the single letter escapes,
// octal \ooo with up to three digits, \x followed by any number of hex
// digits and backslash-newline line continuations. Other escaped bytes
// stand for themselves. A trailing backslash or \x without digits is a
// format error.
func ParseEscapes(s string, rng EscapeRange, userChar byte) (string, error) {
	const op = "ParseEscapes"
	if strings.IndexByte(s, '\\') < 0 {
		return s, nil
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			buf = append(buf, c)
			i++
			continue
		}
		if i+1 >= len(s) {
			return "", errors.FormatErrorAt(errors.ModuleEncodex, op, s, i, "dangling escape character")
		}

		start := i
		n := s[i+1]
		i += 2
		switch {
		case n == '\n':
			// line continuation
		case n == '\r':
			if i < len(s) && s[i] == '\n' {
				i++
			}
		case escapeValues[n] != 0:
			buf = append(buf, escapeValues[n])
		case n == 'x' || isOctal(n):
			base, maxDigits := 16, len(s)
			if n != 'x' {
				base, maxDigits = 8, 3
				i-- // the first octal digit is part of the value
			}
			value, digits := 0, 0
			for i < len(s) && digits < maxDigits {
				d := hexValue(s[i])
				if d < 0 || d >= base {
					break
				}
				if rng == RangeFirstByte && value*base+d > 0xFF {
					break
				}
				if value <= 0xFFFFFF {
					value = value*base + d
				}
				digits++
				i++
			}
			if digits == 0 {
				return "", errors.FormatErrorAt(errors.ModuleEncodex, op, s, start, `\x without hex digits`)
			}
			if value > 0xFF {
				switch rng {
				case RangeFail:
					return "", errors.NewErrorBuilder(errors.ModuleEncodex).
						Operation(op).
						Messagef("escape value %#x does not fit in a byte", value).
						Code(mdwerror.CodeValueOutOfRange).
						Input(s).
						Position(start).
						Build()
				case RangeUser:
					buf = append(buf, userChar)
					continue
				}
			}
			buf = append(buf, byte(value))
		default:
			buf = append(buf, n)
		}
	}
	return string(buf), nil
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// CEncode renders s as the body of a C string literal, wrapped in double
// quotes when quoted is set.
func CEncode(s string, quoted bool) string {
	out := PrintableString(s, PrintableMode{})
	if quoted {
		return `"` + out + `"`
	}
	return out
}

// CParse reverses CEncode. With quoted set, s must consist of one or more
// double quoted literals separated by white space; adjacent literals are
// concatenated as in C.
func CParse(s string, quoted bool) (string, error) {
	if !quoted {
		return ParseEscapes(s, RangeStandard, 0)
	}

	var sb strings.Builder
	pos, literals := 0, 0
	for {
		for pos < len(s) && isSpace(s[pos]) {
			pos++
		}
		if pos >= len(s) {
			break
		}
		if s[pos] != '"' {
			return "", errors.FormatErrorAt(errors.ModuleEncodex, "CParse", s, pos, "expected opening quote")
		}
		body, n, err := ParseQuoted(s[pos:])
		if err != nil {
			return "", errors.OperationFailed(errors.ModuleEncodex, "CParse", err)
		}
		sb.WriteString(body)
		pos += n
		literals++
	}
	if literals == 0 {
		return "", errors.FormatErrorAt(errors.ModuleEncodex, "CParse", s, 0, "no string literal")
	}
	return sb.String(), nil
}

// ParseQuoted decodes the single or double quoted literal at the start of
// s and returns its content and the number of bytes consumed, quotes
// included.
func ParseQuoted(s string) (string, int, error) {
	const op = "ParseQuoted"
	if s == "" || (s[0] != '"' && s[0] != '\'') {
		return "", 0, errors.FormatErrorAt(errors.ModuleEncodex, op, s, 0, "expected opening quote")
	}
	quote := s[0]
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			body, err := ParseEscapes(s[1:i], RangeStandard, 0)
			if err != nil {
				return "", 0, err
			}
			return body, i + 1, nil
		}
	}
	return "", 0, errors.UnbalancedQuote(errors.ModuleEncodex, op, s, 0)
}

func isSpace(b byte) bool {
	return b == ' ' || (b >= '\t' && b <= '\r')
}

// JavaScriptEncode escapes s for use inside a JavaScript string literal
// delimited by either quote. '<', '>' and '&' are escaped so the result is
// safe inside an HTML script element.
func JavaScriptEncode(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case simpleEscapes[c] != "" && c != '\a':
			sb.WriteString(simpleEscapes[c])
		case c == '<' || c == '>' || c == '&' || c < 0x20 || c == 0x7F:
			fmt.Fprintf(&sb, `\x%02X`, c)
		case c == 0xE2 && strings.HasPrefix(s[i:], "\u2028"), c == 0xE2 && strings.HasPrefix(s[i:], "\u2029"):
			// JavaScript line terminators
			fmt.Fprintf(&sb, `\u%04X`, 0x2028+int(s[i+2]-0xA8))
			i += 2
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
