// File: xml.go
// Title: XML Encoding
// Description: Escapes text for XML content and attributes, with handling
//              of characters XML 1.0 forbids and an option to keep the
//              result safe inside comments.
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

	"github.com/msto63/textkit/foundation/core/errors"
)

// XMLOptions configures XMLEncode. By default control characters that XML
// 1.0 does not allow are written as hex references.
type XMLOptions struct {
	// CommentSafe encodes the second '-' of "--" and a trailing '-'.
	CommentSafe bool
	// UnsafeSkip drops characters XML 1.0 does not allow.
	UnsafeSkip bool
	// UnsafeFail reports characters XML 1.0 does not allow as an error.
	UnsafeFail bool
}

func xmlForbidden(c byte) bool {
	return c < 0x20 && c != '\t' && c != '\n' && c != '\r'
}

// XMLEncode replaces & < > " ' with the predefined entities.
func XMLEncode(s string, opts XMLOptions) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/4)
	dash := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '&':
			sb.WriteString("&amp;")
		case c == '<':
			sb.WriteString("&lt;")
		case c == '>':
			sb.WriteString("&gt;")
		case c == '"':
			sb.WriteString("&quot;")
		case c == '\'':
			sb.WriteString("&apos;")
		case c == '-' && opts.CommentSafe && (dash || i == len(s)-1):
			sb.WriteString("&#x2d;")
			dash = false
			continue
		case xmlForbidden(c):
			switch {
			case opts.UnsafeFail:
				return "", errors.EncodingError(errors.ModuleEncodex, "XMLEncode", s, i,
					fmt.Sprintf("character 0x%02X is not allowed in XML", c))
			case opts.UnsafeSkip:
			default:
				fmt.Fprintf(&sb, "&#x%X;", c)
			}
		default:
			sb.WriteByte(c)
		}
		dash = c == '-'
	}
	return sb.String(), nil
}
