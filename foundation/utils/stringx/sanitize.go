// File: sanitize.go
// Title: Sanitizing, Escaping and Quoting
// Description: Replaces or removes unwanted character classes, escapes
//              metacharacters with an escape byte and wraps text in quotes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// CharClass is a set of ASCII character classes.
type CharClass uint

const (
	ClassAlpha CharClass = 1 << iota
	ClassDigit
	ClassPunct
	ClassSpace
	ClassCntrl

	ClassAlnum = ClassAlpha | ClassDigit
	// ClassPrint is what isprint accepts: visible characters and ' '.
	ClassPrint = ClassAlnum | ClassPunct
)

func classOf(b byte) CharClass {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return ClassAlpha
	case b >= '0' && b <= '9':
		return ClassDigit
	case b == ' ' || (b >= '\t' && b <= '\r'):
		return ClassSpace
	case b < 0x20 || b == 0x7F:
		return ClassCntrl
	case b < 0x80:
		return ClassPunct
	}
	return 0
}

// SanitizeOptions configures Sanitize. The zero value keeps printable
// characters, turns everything else into a space, merges runs of spaces
// and trims both ends.
type SanitizeOptions struct {
	// Allow lists the classes to keep; 0 means ClassPrint. With Reject
	// the listed classes are the ones replaced instead.
	Allow  CharClass
	Reject bool
	// Remove drops unwanted bytes instead of replacing them.
	Remove bool
	// Replacement is substituted for unwanted bytes; 0 means ' '.
	Replacement byte
	// ASCIIOnly treats bytes >= 0x80 as unwanted. Otherwise UTF-8
	// sequences pass through.
	ASCIIOnly bool

	NoMerge         bool
	NoTruncateBegin bool
	NoTruncateEnd   bool
}

// Sanitize cleans s according to opts.
func Sanitize(s string, opts SanitizeOptions) string {
	allow := opts.Allow
	if allow == 0 {
		allow = ClassPrint
	}
	repl := opts.Replacement
	if repl == 0 {
		repl = ' '
	}
	blank := func(b byte) bool { return b == ' ' || b == repl }

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		var wanted bool
		if b >= 0x80 {
			wanted = !opts.ASCIIOnly
		} else {
			cls := classOf(b)
			// ' ' is printable
			if b == ' ' && allow&ClassPunct != 0 {
				cls = ClassPunct
			}
			wanted = allow&cls != 0
			if opts.Reject {
				wanted = !wanted
			}
		}

		out := b
		if !wanted {
			if opts.Remove {
				continue
			}
			out = repl
		}
		if !opts.NoMerge && blank(out) && len(buf) > 0 && blank(buf[len(buf)-1]) {
			continue
		}
		buf = append(buf, out)
	}

	start, end := 0, len(buf)
	if !opts.NoTruncateBegin {
		for start < end && blank(buf[start]) {
			start++
		}
	}
	if !opts.NoTruncateEnd {
		for end > start && blank(buf[end-1]) {
			end--
		}
	}
	return string(buf[start:end])
}

// Escape prefixes every byte of s found in metachars, and every escape
// byte itself, with esc.
func Escape(s, metachars string, esc byte) string {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/8)
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == esc || strings.IndexByte(metachars, b) >= 0 {
			sb.WriteByte(esc)
		}
		sb.WriteByte(b)
	}
	return sb.String()
}

// Unescape removes escape bytes, keeping the byte each one protects. A
// trailing lone escape byte is kept.
func Unescape(s string, esc byte) string {
	if strings.IndexByte(s, esc) < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == esc && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// Quote wraps s in quote bytes, escaping embedded quotes and escape bytes
// with esc.
func Quote(s string, quote, esc byte) string {
	return string(quote) + Escape(s, string(quote), esc) + string(quote)
}

// Unquote reverses Quote. The first byte of s is taken as the quote
// character; it must be closed by the last byte.
func Unquote(s string, esc byte) (string, error) {
	const op = "Unquote"
	if s == "" {
		return "", errors.FormatErrorAt(errors.ModuleStringx, op, s, 0, "missing opening quote")
	}
	quote := s[0]
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 1; i < len(s); i++ {
		switch b := s[i]; {
		case b == esc:
			if i+1 >= len(s) {
				return "", errors.FormatErrorAt(errors.ModuleStringx, op, s, i, "dangling escape character")
			}
			i++
			sb.WriteByte(s[i])
		case b == quote:
			if i != len(s)-1 {
				return "", errors.FormatErrorAt(errors.ModuleStringx, op, s, i+1, "text after closing quote")
			}
			return sb.String(), nil
		default:
			sb.WriteByte(b)
		}
	}
	return "", errors.UnbalancedQuote(errors.ModuleStringx, op, s, 0)
}
