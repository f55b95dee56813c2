// File: scan.go
// Title: Number Scanner
// Description: Shared cursor over the input text used by all parsers for
//              white space, symbols, signs and comma-grouped digit runs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-01
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-01 v0.1.0: Initial implementation
// - 2025-02-14 v0.1.1: Stop symbol skipping at NaN/Inf spellings

package numx

import (
	"github.com/msto63/textkit/foundation/core/errors"
)

type scanner struct {
	s    string
	pos  int
	op   string
	opts ParseOptions
}

func newScanner(s, op string, opts ParseOptions) *scanner {
	return &scanner{s: s, op: op, opts: opts}
}

func (sc *scanner) eof() bool { return sc.pos >= len(sc.s) }

func (sc *scanner) peek() byte {
	if sc.eof() {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) formatError(reason string) error {
	return errors.FormatErrorAt(errors.ModuleNumx, sc.op, sc.s, sc.pos, reason)
}

func (sc *scanner) rangeError() error {
	return errors.RangeError(errors.ModuleNumx, sc.op, sc.s)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// digitValue returns the value of c as a digit, or 36 when c is no digit.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

func (sc *scanner) skipSpaces() {
	for !sc.eof() && isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
}

// leading consumes white space and symbols as permitted by the options.
// Symbol skipping stops at anything that could start a number, including
// NaN and infinity spellings when special is set.
func (sc *scanner) leading(base int, special bool) {
	if sc.opts.AllowLeadingSpaces {
		sc.skipSpaces()
	}
	if !sc.opts.AllowLeadingSymbols {
		return
	}
	if base == 0 {
		base = 10
	}
	for !sc.eof() {
		c := sc.s[sc.pos]
		if c == '+' || c == '-' || c == '.' || digitValue(c) < base {
			return
		}
		if special {
			if n, _ := sc.specialLen(); n > 0 {
				return
			}
		}
		sc.pos++
	}
}

// sign consumes an optional sign and reports whether it was '-'.
func (sc *scanner) sign() (neg bool, err error) {
	switch sc.peek() {
	case '-':
		sc.pos++
		return true, nil
	case '+':
		sc.pos++
		return false, nil
	}
	if sc.opts.MandatorySign {
		return false, sc.formatError("sign required")
	}
	return false, nil
}

// trailing checks that nothing but permitted trailing text follows.
func (sc *scanner) trailing() error {
	if sc.opts.AllowTrailingSymbols {
		sc.pos = len(sc.s)
		return nil
	}
	if sc.opts.AllowTrailingSpaces {
		sc.skipSpaces()
	}
	if !sc.eof() {
		return sc.formatError("unexpected character")
	}
	return nil
}

// digits consumes a run of digits in base and returns them without
// grouping commas. Commas are only honoured in base 10 when permitted;
// groups after the first must hold exactly three digits.
func (sc *scanner) digits(base int) (string, error) {
	commas := sc.opts.AllowCommas && base == 10
	buf := make([]byte, 0, len(sc.s)-sc.pos)
	group, grouped := 0, false

	for !sc.eof() {
		c := sc.s[sc.pos]
		if c == ',' && commas {
			if group == 0 || (grouped && group != 3) || (!grouped && group > 3) {
				return "", sc.formatError("misplaced thousands separator")
			}
			// a comma must be followed by a digit to belong to the number
			if sc.pos+1 >= len(sc.s) || digitValue(sc.s[sc.pos+1]) >= base {
				return "", sc.formatError("misplaced thousands separator")
			}
			grouped, group = true, 0
			sc.pos++
			continue
		}
		if digitValue(c) >= base {
			break
		}
		buf = append(buf, c)
		group++
		sc.pos++
	}
	if grouped && group != 3 {
		return "", sc.formatError("misplaced thousands separator")
	}
	return string(buf), nil
}

