// File: json.go
// Title: JSON String Encoding
// Description: Escapes text as a JSON string body, either ASCII only with
//              \u escapes or as quoted UTF-8.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package encodex

import (
	"fmt"
	"strings"

	"github.com/msto63/textkit/foundation/utils/utf8x"
)

// JSONMode selects the JSON rendering.
type JSONMode int

const (
	// JSONEscapeUnicode writes every non-ASCII character as \uXXXX, using
	// surrogate pairs above U+FFFF, and adds no quotes. Bytes that are not
	// valid UTF-8 are written as \u00XX of their byte value.
	JSONEscapeUnicode JSONMode = iota
	// JSONQuoted keeps UTF-8 as is and wraps the result in double quotes.
	JSONQuoted
)

var jsonShort = [256]string{
	'"': `\"`, '\\': `\\`, '\b': `\b`, '\f': `\f`, '\n': `\n`, '\r': `\r`, '\t': `\t`,
}

// JSONEncode escapes s for a JSON string.
func JSONEncode(s string, mode JSONMode) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	if mode == JSONQuoted {
		sb.WriteByte('"')
	}

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case jsonShort[c] != "":
			sb.WriteString(jsonShort[c])
			i++
		case c < 0x20 || c == 0x7F:
			fmt.Fprintf(&sb, `\u%04x`, c)
			i++
		case c < 0x80 || mode == JSONQuoted:
			sb.WriteByte(c)
			i++
		default:
			r, size, err := utf8x.Decode(s[i:])
			if err != nil {
				fmt.Fprintf(&sb, `\u%04x`, c)
				i++
				continue
			}
			if r > 0xFFFF {
				r -= 0x10000
				fmt.Fprintf(&sb, `\u%04x\u%04x`, 0xD800+(r>>10), 0xDC00+(r&0x3FF))
			} else {
				fmt.Fprintf(&sb, `\u%04x`, r)
			}
			i += size
		}
	}

	if mode == JSONQuoted {
		sb.WriteByte('"')
	}
	return sb.String()
}
