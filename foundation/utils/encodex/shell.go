// File: shell.go
// Title: Shell and SQL Quoting
// Description: Quotes arguments for POSIX shells with as little quoting as
//              possible, and quotes SQL string literals.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation
// - 2025-02-09 v0.1.1: ANSI-C quoting for control characters
// - 2025-02-14 v0.1.2: No empty quote pairs around embedded quotes

package encodex

import (
	"fmt"
	"strings"
)

func shellSafe(c byte) bool {
	return isAlnum(c) || strings.IndexByte("@%+=:,./-_", c) >= 0
}

// ShellEncode quotes s as a single shell word. Words made only of safe
// characters are returned unchanged; text with control characters uses
// bash $'...' quoting; everything else is single quoted with embedded
// quotes written as '\''.
func ShellEncode(s string) string {
	if s == "" {
		return "''"
	}

	safe, control := true, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !shellSafe(c) {
			safe = false
		}
		if c < 0x20 || c == 0x7F {
			control = true
		}
	}
	if safe {
		return s
	}

	if control {
		var sb strings.Builder
		sb.WriteString("$'")
		for i := 0; i < len(s); i++ {
			c := s[i]
			switch {
			case c == '\'' || c == '\\':
				sb.WriteByte('\\')
				sb.WriteByte(c)
			case simpleEscapes[c] != "" && c < 0x20:
				sb.WriteString(simpleEscapes[c])
			case c < 0x20 || c == 0x7F:
				fmt.Fprintf(&sb, `\x%02X`, c)
			default:
				sb.WriteByte(c)
			}
		}
		sb.WriteByte('\'')
		return sb.String()
	}

	// quote the runs between embedded quotes; empty runs get no '' pair
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i, part := range strings.Split(s, "'") {
		if i > 0 {
			sb.WriteString(`\'`)
		}
		if part != "" {
			sb.WriteByte('\'')
			sb.WriteString(part)
			sb.WriteByte('\'')
		}
	}
	return sb.String()
}

// SQLEncode wraps s in single quotes, doubling embedded quotes. With
// tagNonASCII set, text containing non-ASCII bytes gets the N prefix of a
// national character literal.
func SQLEncode(s string, tagNonASCII bool) string {
	out := "'" + strings.ReplaceAll(s, "'", "''") + "'"
	if tagNonASCII {
		for i := 0; i < len(s); i++ {
			if s[i] >= 0x80 {
				return "N" + out
			}
		}
	}
	return out
}
