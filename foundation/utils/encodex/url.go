// File: url.go
// Title: URL Encoding
// Description: Percent-encoding with per-mode sets of characters left
//              alone, following the RFC 3986 component grammars for the
//              URI modes and RFC 6265 for cookies.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation

package encodex

import (
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// URLEncodeMode selects which characters URLEncode leaves unencoded.
type URLEncodeMode int

const (
	// URLSkipMarkChars keeps letters, digits and the marks -_.!~*'(),
	// and turns spaces into '+'.
	URLSkipMarkChars URLEncodeMode = iota
	// URLProcessMarkChars keeps only letters, digits and -_. and turns
	// spaces into '+'.
	URLProcessMarkChars
	// URLPercentOnly keeps letters and digits; everything else, spaces
	// included, is percent-encoded.
	URLPercentOnly
	// URLPath is URLProcessMarkChars that also keeps '/'.
	URLPath
	URIScheme
	URIUserinfo
	URIHost
	URIPath
	URIQueryName
	URIQueryValue
	URIFragment
	// URLCookie keeps the RFC 6265 cookie-octet set except '%'.
	URLCookie
	// URLNone returns the input unchanged.
	URLNone
)

type urlTable struct {
	keep        [256]bool
	spaceAsPlus bool
}

var urlTables = buildURLTables()

func buildURLTables() map[URLEncodeMode]*urlTable {
	const (
		alnum      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
		unreserved = alnum + "-._~"
		subDelims  = "!$&'()*+,;="
		pchar      = unreserved + subDelims + ":@"
	)
	mk := func(keep string, plus bool) *urlTable {
		t := &urlTable{spaceAsPlus: plus}
		for i := 0; i < len(keep); i++ {
			t.keep[keep[i]] = true
		}
		return t
	}

	cookie := &urlTable{}
	for c := 0x21; c <= 0x7E; c++ {
		if c != '"' && c != '%' && c != ',' && c != ';' && c != '\\' {
			cookie.keep[c] = true
		}
	}

	return map[URLEncodeMode]*urlTable{
		URLSkipMarkChars:    mk(alnum+"-_.!~*'()", true),
		URLProcessMarkChars: mk(alnum+"-_.", true),
		URLPercentOnly:      mk(alnum, false),
		URLPath:             mk(alnum+"-_./", true),
		URIScheme:           mk(alnum+"+-.", false),
		URIUserinfo:         mk(unreserved+subDelims+":", false),
		URIHost:             mk(unreserved+subDelims, false),
		URIPath:             mk(pchar+"/", false),
		URIQueryName:        mk(unreserved+"!$'()*,;:@/?", false),
		URIQueryValue:       mk(unreserved+"!$'()*,;:@/?", false),
		URIFragment:         mk(pchar+"/?", false),
		URLCookie:           cookie,
	}
}

const upperHex = "0123456789ABCDEF"

// URLEncode percent-encodes s according to mode. Hex digits are upper
// case.
func URLEncode(s string, mode URLEncodeMode) string {
	t, ok := urlTables[mode]
	if !ok {
		return s
	}
	if !needsEncoding(s, t) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + len(s)/2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case t.keep[c]:
			sb.WriteByte(c)
		case c == ' ' && t.spaceAsPlus:
			sb.WriteByte('+')
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperHex[c>>4])
			sb.WriteByte(upperHex[c&0x0F])
		}
	}
	return sb.String()
}

func needsEncoding(s string, t *urlTable) bool {
	for i := 0; i < len(s); i++ {
		if !t.keep[s[i]] {
			return true
		}
	}
	return false
}

// NeedsURLEncoding reports whether URLEncode would change s.
func NeedsURLEncoding(s string, mode URLEncodeMode) bool {
	t, ok := urlTables[mode]
	return ok && needsEncoding(s, t)
}

// URLDecodeMode selects whether '+' decodes to a space.
type URLDecodeMode int

const (
	// URLDecodeAll decodes %XX and '+'.
	URLDecodeAll URLDecodeMode = iota
	// URLDecodePercent decodes %XX only.
	URLDecodePercent
)

// URLDecode reverses URLEncode. A '%' not followed by two hex digits is a
// format error.
func URLDecode(s string, mode URLDecodeMode) (string, error) {
	if strings.IndexByte(s, '%') < 0 && (mode == URLDecodePercent || strings.IndexByte(s, '+') < 0) {
		return s, nil
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '%':
			if i+2 >= len(s) || hexValue(s[i+1]) < 0 || hexValue(s[i+2]) < 0 {
				return "", errors.FormatErrorAt(errors.ModuleEncodex, "URLDecode", s, i, "malformed percent escape")
			}
			buf = append(buf, byte(hexValue(s[i+1])<<4|hexValue(s[i+2])))
			i += 2
		case c == '+' && mode == URLDecodeAll:
			buf = append(buf, ' ')
		default:
			buf = append(buf, c)
		}
	}
	return string(buf), nil
}
