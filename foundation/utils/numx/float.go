// File: float.go
// Title: Floating Point Conversion
// Description: Parses decimal floating point text with NaN/Inf, locale
//              decimal point and finite clamping, and formats float64 in
//              fixed, scientific or general notation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation
// - 2025-02-08 v0.1.1: PosixFinite clamping
// - 2025-02-14 v0.1.2: Clamp subnormal results, keep NaN/Inf after symbols

package numx

import (
	"math"
	"strconv"
	"strings"
)

// SmallestNormal is the smallest positive normal float64.
const SmallestNormal = 2.2250738585072014e-308

var specialWords = []struct {
	word string
	val  float64
}{
	{"infinity", math.Inf(1)},
	{"inf", math.Inf(1)},
	{"nan", math.NaN()},
}

// specialLen returns the length of the NaN or infinity spelling at the
// scanner position, or 0.
func (sc *scanner) specialLen() (int, float64) {
	rest := sc.s[sc.pos:]
	for _, w := range specialWords {
		if len(rest) >= len(w.word) && strings.EqualFold(rest[:len(w.word)], w.word) {
			return len(w.word), w.val
		}
	}
	return 0, 0
}

// special consumes a NaN or infinity spelling at the scanner position.
func (sc *scanner) special() (float64, bool) {
	n, v := sc.specialLen()
	if n == 0 {
		return 0, false
	}
	sc.pos += n
	return v, true
}

// isDecimalPoint reports whether c acts as the decimal point under opts.
func isDecimalPoint(c byte, opts ParseOptions) bool {
	return c == '.' || (opts.Decimal == DecimalPosixOrLocal && c == opts.localPoint())
}

// ParseFloat parses s as a decimal floating point number.
func ParseFloat(s string, opts ParseOptions) (float64, error) {
	sc := newScanner(s, "ParseFloat", opts)
	sc.leading(10, true)
	neg, err := sc.sign()
	if err != nil {
		return 0, err
	}

	if v, ok := sc.special(); ok {
		if err := sc.trailing(); err != nil {
			return 0, err
		}
		if neg {
			v = -v
		}
		return v, nil
	}

	intPart, err := sc.digits(10)
	if err != nil {
		return 0, err
	}
	var frac string
	if !sc.eof() && isDecimalPoint(sc.peek(), opts) {
		sc.pos++
		noCommas := *sc
		noCommas.opts.AllowCommas = false
		if frac, err = noCommas.digits(10); err != nil {
			return 0, err
		}
		sc.pos = noCommas.pos
	}
	if intPart == "" && frac == "" {
		return 0, sc.formatError("no digits")
	}

	exp := ""
	if c := sc.peek(); c == 'e' || c == 'E' {
		mark := sc.pos
		sc.pos++
		expSign := ""
		if c := sc.peek(); c == '+' || c == '-' {
			expSign = string(c)
			sc.pos++
		}
		plain := *sc
		plain.opts.AllowCommas = false
		ds, _ := plain.digits(10)
		if ds == "" {
			// "1e" without digits: the exponent marker is not part of the number
			sc.pos = mark
		} else {
			sc.pos = plain.pos
			exp = "e" + expSign + ds
		}
	}
	if err := sc.trailing(); err != nil {
		return 0, err
	}

	text := intPart
	if text == "" {
		text = "0"
	}
	if frac != "" {
		text += "." + frac
	}
	text += exp

	v, perr := strconv.ParseFloat(text, 64)
	if ne, ok := perr.(*strconv.NumError); ok && ne.Err != strconv.ErrRange {
		return 0, sc.formatError("malformed number")
	}

	switch {
	case math.IsInf(v, 0):
		if !opts.PosixFinite {
			return 0, sc.rangeError()
		}
		v = math.MaxFloat64
	case v == 0 && strings.Trim(intPart+frac, "0") != "":
		if !opts.PosixFinite {
			return 0, sc.rangeError()
		}
		v = SmallestNormal
	case v != 0 && v < SmallestNormal && opts.PosixFinite:
		v = SmallestNormal
	}
	if neg {
		v = -v
	}
	return v, nil
}

// MustParseFloat is like ParseFloat but panics on error.
func MustParseFloat(s string, opts ParseOptions) float64 {
	v, err := ParseFloat(s, opts)
	if err != nil {
		panic(err)
	}
	return v
}

// FormatFloat renders v in the notation selected by opts. A negative
// precision picks the default of the notation: six digits after the point
// for fixed and scientific, the shortest round-tripping form for general.
// NaN and infinities are rendered as "NaN", "INF" and "-INF".
func FormatFloat(v float64, precision int, opts FormatOptions) string {
	sign := ""
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.Signbit(v):
		sign = "-"
		v = -v
	case opts.WithSign:
		sign = "+"
	}
	if math.IsInf(v, 0) {
		return sign + "INF"
	}

	var body string
	switch opts.Notation {
	case NotationFixed:
		if precision < 0 {
			precision = 6
		}
		body = strconv.FormatFloat(v, 'f', precision, 64)
	case NotationScientific:
		if precision < 0 {
			precision = 6
		}
		body = strconv.FormatFloat(v, 'e', precision, 64)
	default:
		body = strconv.FormatFloat(v, 'g', precision, 64)
	}

	if opts.WithCommas && !strings.ContainsAny(body, "eE") {
		intPart, rest := body, ""
		if i := strings.IndexByte(body, '.'); i >= 0 {
			intPart, rest = body[:i], body[i:]
		}
		body = groupThousands(intPart) + rest
	}
	return sign + body
}
