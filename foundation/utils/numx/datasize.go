// File: datasize.go
// Title: Data Size Conversion
// Description: Parses and formats byte counts with decimal (KB, MB) or
//              binary (KiB, MiB) unit suffixes, rounding half up.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation
// - 2025-02-10 v0.1.1: Exact rounding with math/big

package numx

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

const unitLetters = "KMGTPE"

// unitSuffix parses an optional unit at the scanner position and returns
// its power and whether it names a binary unit.
func (sc *scanner) unitSuffix() (power int, binary, found bool) {
	c := sc.peek()
	if c == 'b' || c == 'B' {
		sc.pos++
		return 0, false, true
	}
	idx := strings.IndexByte(unitLetters, upper(c))
	if c == 0 || idx < 0 {
		return 0, false, false
	}
	sc.pos++
	if c := sc.peek(); c == 'i' || c == 'I' {
		binary = true
		sc.pos++
	}
	if c := sc.peek(); c == 'b' || c == 'B' {
		sc.pos++
	}
	return idx + 1, binary, true
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func pow(base int64, n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(n)), nil)
}

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

// ParseDataSize parses text such as "512", "1.5 GB", "4KiB" or "2M" into
// a byte count. Units are 1000 based unless written with "iB" or
// ForceBinary is set. Fractions are rounded half up to whole bytes, or
// dropped when ProhibitFractions is set.
func ParseDataSize(s string, opts ParseOptions) (uint64, error) {
	sc := newScanner(s, "ParseDataSize", opts)
	if opts.AllowLeadingSpaces {
		sc.skipSpaces()
	}
	if sc.peek() == '+' {
		sc.pos++
	}

	intPart, err := sc.digits(10)
	if err != nil {
		return 0, err
	}
	var frac string
	if !sc.eof() && isDecimalPoint(sc.peek(), opts) {
		sc.pos++
		plain := *sc
		plain.opts.AllowCommas = false
		if frac, err = plain.digits(10); err != nil {
			return 0, err
		}
		sc.pos = plain.pos
	}
	if intPart == "" && frac == "" {
		return 0, sc.formatError("no digits")
	}

	mark := sc.pos
	sc.skipSpaces()
	power, binary, found := sc.unitSuffix()
	switch {
	case !found:
		sc.pos = mark
	case sc.pos > mark && isSpace(sc.s[mark]) && opts.ProhibitSpaceBeforeSuffix:
		sc.pos = mark
		return 0, sc.formatError("space before suffix")
	}
	if err := sc.trailing(); err != nil {
		return 0, err
	}

	base := int64(1000)
	if binary || opts.ForceBinary {
		base = 1024
	}
	mult := pow(base, power)

	total := new(big.Int)
	if intPart != "" {
		total.SetString(intPart, 10)
	}
	total.Mul(total, mult)

	if frac != "" && !opts.ProhibitFractions {
		f, _ := new(big.Int).SetString(frac, 10)
		den := pow(10, len(frac))
		// round(f*mult/den) half up
		f.Mul(f, mult).Lsh(f, 1).Add(f, den)
		f.Quo(f, new(big.Int).Lsh(den, 1))
		total.Add(total, f)
	}

	if total.Cmp(maxUint64) > 0 {
		return 0, sc.rangeError()
	}
	return total.Uint64(), nil
}

// FormatDataSize renders v with at most maxDigits significant digits and
// the largest unit that keeps at least one digit before the decimal point,
// so 1024 becomes "1.02KB" and, with Binary, "1.00KiB". With
// NoDecimalPoint the smallest unit whose rounded whole number fits is used.
// maxDigits below 3 is an invalid argument.
func FormatDataSize(v uint64, opts FormatOptions, maxDigits int) (string, error) {
	if maxDigits < 3 {
		return "", errors.ArgumentError(errors.ModuleNumx, "FormatDataSize", "maxDigits", maxDigits, "at least 3")
	}
	base := int64(1000)
	if opts.Binary {
		base = 1024
	}

	plain := strconv.FormatUint(v, 10)
	if len(plain) <= maxDigits && (opts.NoDecimalPoint || v < uint64(base)) {
		return plain + dataSizeSuffix(0, opts), nil
	}

	value := new(big.Int).SetUint64(v)
	start := 1
	if !opts.NoDecimalPoint {
		// largest unit not above the value
		for start < len(unitLetters) && value.Cmp(pow(base, start+1)) >= 0 {
			start++
		}
	}

	for k := start; k <= len(unitLetters); k++ {
		den := pow(base, k)
		whole := new(big.Int).Quo(value, den)
		dec := 0
		if !opts.NoDecimalPoint {
			dec = maxDigits - len(whole.String())
			if dec < 0 {
				continue
			}
		}
		for ; dec >= 0; dec-- {
			r := roundHalfUp(value, pow(10, dec), den)
			digits := r.String()
			if len(digits) > maxDigits {
				continue
			}
			return insertPoint(digits, dec) + dataSizeSuffix(k, opts), nil
		}
	}
	// unreachable for maxDigits >= 3: 2^64 is below 20 EB
	return plain + dataSizeSuffix(0, opts), nil
}

// roundHalfUp returns round(v*scale/den).
func roundHalfUp(v, scale, den *big.Int) *big.Int {
	n := new(big.Int).Mul(v, scale)
	n.Lsh(n, 1).Add(n, den)
	return n.Quo(n, new(big.Int).Lsh(den, 1))
}

// insertPoint places a decimal point dec digits from the right, padding
// with leading zeros as needed.
func insertPoint(digits string, dec int) string {
	if dec == 0 {
		return digits
	}
	if len(digits) <= dec {
		digits = strings.Repeat("0", dec-len(digits)+1) + digits
	}
	return digits[:len(digits)-dec] + "." + digits[len(digits)-dec:]
}

func dataSizeSuffix(power int, opts FormatOptions) string {
	var unit string
	switch {
	case power == 0:
		if !opts.PutBSuffixToo {
			return ""
		}
		unit = "B"
	case opts.ShortSuffix:
		unit = unitLetters[power-1 : power]
	case opts.Binary:
		unit = unitLetters[power-1:power] + "iB"
	default:
		unit = unitLetters[power-1:power] + "B"
	}
	if opts.PutSpaceBeforeSuffix {
		return " " + unit
	}
	return unit
}
