// File: integer.go
// Title: Integer Conversion
// Description: Generic parsing and formatting of signed and unsigned
//              integers of any width in bases 2 to 36.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-01
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-01 v0.1.0: Initial implementation
// - 2025-02-08 v0.1.1: Base auto-detection and radix prefixes

package numx

import (
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/msto63/textkit/foundation/core/errors"
)

func checkBase(op string, base int) error {
	if base == 0 || (base >= 2 && base <= 36) {
		return nil
	}
	return errors.ArgumentError(errors.ModuleNumx, op, "base", base, "0 or 2..36")
}

func hasHexPrefix(s string, pos int) bool {
	return pos+2 < len(s) && s[pos] == '0' && (s[pos+1] == 'x' || s[pos+1] == 'X') &&
		digitValue(s[pos+2]) < 16
}

// parseMagnitude reads an optionally signed integer and returns its sign
// and absolute value. overflow is set when the value exceeds uint64.
func parseMagnitude(sc *scanner, base int) (neg bool, mag uint64, overflow bool, err error) {
	sc.leading(base, false)
	if neg, err = sc.sign(); err != nil {
		return false, 0, false, err
	}

	switch base {
	case 0:
		switch {
		case hasHexPrefix(sc.s, sc.pos):
			sc.pos += 2
			base = 16
		case sc.peek() == '0' && sc.pos+1 < len(sc.s) && digitValue(sc.s[sc.pos+1]) < 10:
			base = 8
		default:
			base = 10
		}
	case 16:
		if hasHexPrefix(sc.s, sc.pos) {
			sc.pos += 2
		}
	}

	ds, err := sc.digits(base)
	if err != nil {
		return false, 0, false, err
	}
	if ds == "" {
		return false, 0, false, sc.formatError("no digits")
	}

	b := uint64(base)
	for i := 0; i < len(ds); i++ {
		d := uint64(digitValue(ds[i]))
		if mag > (math.MaxUint64-d)/b {
			overflow = true
			break
		}
		mag = mag*b + d
	}
	if err := sc.trailing(); err != nil {
		return false, 0, false, err
	}
	return neg, mag, overflow, nil
}

func bitSize[T Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// ParseInt parses s as a signed integer of type T in the given base.
// Base 0 selects 16 for a "0x" prefix, 8 for a leading zero and 10
// otherwise. A value that does not fit T is a range error.
func ParseInt[T Signed](s string, opts ParseOptions, base int) (T, error) {
	const op = "ParseInt"
	if err := checkBase(op, base); err != nil {
		return 0, err
	}
	sc := newScanner(s, op, opts)
	neg, mag, overflow, err := parseMagnitude(sc, base)
	if err != nil {
		return 0, err
	}

	limit := uint64(1)<<(bitSize[T]()-1) - 1
	if neg {
		limit++
	}
	if overflow || mag > limit {
		return 0, sc.rangeError()
	}
	if neg {
		return T(-int64(mag)), nil
	}
	return T(mag), nil
}

// ParseUint parses s as an unsigned integer of type T. "-0" is accepted,
// any other negative value is a range error.
func ParseUint[T Unsigned](s string, opts ParseOptions, base int) (T, error) {
	const op = "ParseUint"
	if err := checkBase(op, base); err != nil {
		return 0, err
	}
	sc := newScanner(s, op, opts)
	neg, mag, overflow, err := parseMagnitude(sc, base)
	if err != nil {
		return 0, err
	}

	limit := uint64(math.MaxUint64) >> (64 - bitSize[T]())
	if overflow || mag > limit || (neg && mag != 0) {
		return 0, sc.rangeError()
	}
	return T(mag), nil
}

// MustParseInt is like ParseInt but panics on error.
func MustParseInt[T Signed](s string, opts ParseOptions, base int) T {
	v, err := ParseInt[T](s, opts, base)
	if err != nil {
		panic(err)
	}
	return v
}

// MustParseUint is like ParseUint but panics on error.
func MustParseUint[T Unsigned](s string, opts ParseOptions, base int) T {
	v, err := ParseUint[T](s, opts, base)
	if err != nil {
		panic(err)
	}
	return v
}

// FormatInt renders v in base 2..36 (0 means 10). Digits above 9 are
// upper case unless UseLowercase is set. WithCommas is only valid in
// base 10.
func FormatInt[T Integer](v T, opts FormatOptions, base int) (string, error) {
	const op = "FormatInt"
	if base == 0 {
		base = 10
	}
	if base < 2 || base > 36 {
		return "", errors.ArgumentError(errors.ModuleNumx, op, "base", base, "2..36")
	}
	if opts.WithCommas && base != 10 {
		return "", errors.ArgumentError(errors.ModuleNumx, op, "base", base, "10 when grouping with commas")
	}

	neg := v < 0
	var mag uint64
	if neg {
		mag = uint64(-int64(v))
	} else {
		mag = uint64(v)
	}

	digits := strconv.FormatUint(mag, base)
	if !opts.UseLowercase && base > 10 {
		digits = strings.ToUpper(digits)
	}
	if opts.WithCommas {
		digits = groupThousands(digits)
	}

	var sb strings.Builder
	sb.Grow(len(digits) + 3)
	switch {
	case neg:
		sb.WriteByte('-')
	case opts.WithSign:
		sb.WriteByte('+')
	}
	if opts.WithRadix {
		switch {
		case base == 16:
			sb.WriteString("0x")
		case base == 8 && mag != 0:
			sb.WriteByte('0')
		}
	}
	sb.WriteString(digits)
	return sb.String(), nil
}

// groupThousands inserts a comma between every group of three digits.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	sb.Grow(len(digits) + len(digits)/3)
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	sb.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
