// File: integer_test.go
// Title: Integer Conversion Tests
// Description: Table tests for ParseInt, ParseUint and FormatInt plus the
//              base round-trip property.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-01
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-01 v0.1.0: Initial tests

package numx

import (
	"math"
	"testing"

	"github.com/msto63/textkit/foundation/core/errors"
)

func TestParseInt(t *testing.T) {
	commas := ParseOptions{AllowCommas: true}

	tests := []struct {
		name     string
		input    string
		opts     ParseOptions
		base     int
		want     int64
		wantKind errors.Kind
	}{
		{"decimal", "123", ParseOptions{}, 10, 123, errors.KindNone},
		{"negative", "-42", ParseOptions{}, 10, -42, errors.KindNone},
		{"plus sign", "+7", ParseOptions{}, 10, 7, errors.KindNone},
		{"auto hex", "0x1F", ParseOptions{}, 0, 31, errors.KindNone},
		{"auto octal", "017", ParseOptions{}, 0, 15, errors.KindNone},
		{"auto zero", "0", ParseOptions{}, 0, 0, errors.KindNone},
		{"auto decimal", "99", ParseOptions{}, 0, 99, errors.KindNone},
		{"hex with prefix", "0xff", ParseOptions{}, 16, 255, errors.KindNone},
		{"hex without prefix", "Ff", ParseOptions{}, 16, 255, errors.KindNone},
		{"binary", "-1010", ParseOptions{}, 2, -10, errors.KindNone},
		{"base 36", "z", ParseOptions{}, 36, 35, errors.KindNone},
		{"commas", "1,234,567", commas, 10, 1234567, errors.KindNone},
		{"short first group", "12,345", commas, 10, 12345, errors.KindNone},
		{"spaces allowed", " \t12 ", ParseOptions{}.AllowSpaces(), 10, 12, errors.KindNone},
		{"leading symbols", "abc12", ParseOptions{AllowLeadingSymbols: true}, 10, 12, errors.KindNone},
		{"trailing symbols", "12 apples", ParseOptions{AllowTrailingSymbols: true}, 10, 12, errors.KindNone},
		{"mandatory sign given", "+5", ParseOptions{MandatorySign: true}, 10, 5, errors.KindNone},
		{"min int64", "-9223372036854775808", ParseOptions{}, 10, math.MinInt64, errors.KindNone},
		{"max int64", "9223372036854775807", ParseOptions{}, 10, math.MaxInt64, errors.KindNone},

		{"empty", "", ParseOptions{}, 10, 0, errors.KindFormat},
		{"sign only", "-", ParseOptions{}, 10, 0, errors.KindFormat},
		{"leading space", " 1", ParseOptions{}, 10, 0, errors.KindFormat},
		{"trailing garbage", "12a", ParseOptions{}, 10, 0, errors.KindFormat},
		{"octal digit out of range", "089", ParseOptions{}, 0, 0, errors.KindFormat},
		{"commas not allowed", "1,234", ParseOptions{}, 10, 0, errors.KindFormat},
		{"bad group", "12,34", commas, 10, 0, errors.KindFormat},
		{"long first group", "1234,567", commas, 10, 0, errors.KindFormat},
		{"dangling comma", "1,234,", commas, 10, 0, errors.KindFormat},
		{"commas in hex", "1,234", commas, 16, 0, errors.KindFormat},
		{"mandatory sign missing", "5", ParseOptions{MandatorySign: true}, 10, 0, errors.KindFormat},
		{"overflow", "9223372036854775808", ParseOptions{}, 10, 0, errors.KindRange},
		{"underflow", "-9223372036854775809", ParseOptions{}, 10, 0, errors.KindRange},
		{"huge", "99999999999999999999999", ParseOptions{}, 10, 0, errors.KindRange},
		{"base 1", "1", ParseOptions{}, 1, 0, errors.KindInvalidArgument},
		{"base 37", "1", ParseOptions{}, 37, 0, errors.KindInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInt[int64](tt.input, tt.opts, tt.base)
			if kind := errors.KindOf(err); kind != tt.wantKind {
				t.Fatalf("ParseInt(%q, base %d) error = %v (kind %v); want kind %v", tt.input, tt.base, err, kind, tt.wantKind)
			}
			if got != tt.want {
				t.Errorf("ParseInt(%q, base %d) = %d; want %d", tt.input, tt.base, got, tt.want)
			}
		})
	}
}

func TestEmptyIsNotZero(t *testing.T) {
	if _, err := ParseInt[int]("", ParseOptions{}, 10); !errors.IsFormat(err) {
		t.Errorf("ParseInt(\"\") error = %v; want format error", err)
	}
	if v, err := ParseInt[int]("0", ParseOptions{}, 10); err != nil || v != 0 {
		t.Errorf("ParseInt(\"0\") = %d, %v; want 0, nil", v, err)
	}
}

func TestParseIntWidth(t *testing.T) {
	if v, err := ParseInt[int8]("-128", ParseOptions{}, 10); err != nil || v != -128 {
		t.Errorf("ParseInt[int8](-128) = %d, %v", v, err)
	}
	for _, in := range []string{"128", "-129"} {
		if _, err := ParseInt[int8](in, ParseOptions{}, 10); !errors.IsRange(err) {
			t.Errorf("ParseInt[int8](%q) error = %v; want range error", in, err)
		}
	}
	if v, err := ParseInt[int16]("0x7fff", ParseOptions{}, 0); err != nil || v != math.MaxInt16 {
		t.Errorf("ParseInt[int16](0x7fff) = %d, %v", v, err)
	}
}

func TestParseUint(t *testing.T) {
	tests := []struct {
		input    string
		want     uint64
		wantKind errors.Kind
	}{
		{"18446744073709551615", math.MaxUint64, errors.KindNone},
		{"18446744073709551616", 0, errors.KindRange},
		{"-0", 0, errors.KindNone},
		{"-1", 0, errors.KindRange},
		{"", 0, errors.KindFormat},
	}
	for _, tt := range tests {
		got, err := ParseUint[uint64](tt.input, ParseOptions{}, 10)
		if kind := errors.KindOf(err); kind != tt.wantKind || got != tt.want {
			t.Errorf("ParseUint(%q) = %d, kind %v; want %d, kind %v", tt.input, got, kind, tt.want, tt.wantKind)
		}
	}

	if v, err := ParseUint[uint8]("ff", ParseOptions{}, 16); err != nil || v != 255 {
		t.Errorf("ParseUint[uint8](ff) = %d, %v", v, err)
	}
	if _, err := ParseUint[uint8]("100", ParseOptions{}, 16); !errors.IsRange(err) {
		t.Errorf("ParseUint[uint8](0x100) error = %v; want range error", err)
	}
}

func TestParseIntErrorDetails(t *testing.T) {
	_, err := ParseInt[int]("12x4", ParseOptions{}, 10)
	if pos := errors.GetErrorPosition(err); pos != 2 {
		t.Errorf("error position = %d; want 2", pos)
	}
	if op := errors.GetErrorOperation(err); op != "ParseInt" {
		t.Errorf("error operation = %q; want ParseInt", op)
	}
	if !errors.IsModuleError(err, errors.ModuleNumx) {
		t.Errorf("error module = %q; want numx", errors.GetErrorModule(err))
	}
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		opts  FormatOptions
		base  int
		want  string
	}{
		{"decimal", 123, FormatOptions{}, 10, "123"},
		{"base zero means ten", 123, FormatOptions{}, 0, "123"},
		{"negative", -42, FormatOptions{}, 10, "-42"},
		{"hex upper", 255, FormatOptions{}, 16, "FF"},
		{"hex lower", 255, FormatOptions{UseLowercase: true}, 16, "ff"},
		{"hex radix", 255, FormatOptions{WithRadix: true}, 16, "0xFF"},
		{"negative hex radix", -255, FormatOptions{WithRadix: true}, 16, "-0xFF"},
		{"octal radix", 8, FormatOptions{WithRadix: true}, 8, "010"},
		{"octal radix zero", 0, FormatOptions{WithRadix: true}, 8, "0"},
		{"binary", 5, FormatOptions{}, 2, "101"},
		{"base 36", 35, FormatOptions{}, 36, "Z"},
		{"commas", 1234567, FormatOptions{WithCommas: true}, 10, "1,234,567"},
		{"commas short", 123, FormatOptions{WithCommas: true}, 10, "123"},
		{"negative commas", -1234, FormatOptions{WithCommas: true}, 10, "-1,234"},
		{"sign", 5, FormatOptions{WithSign: true}, 10, "+5"},
		{"sign zero", 0, FormatOptions{WithSign: true}, 10, "+0"},
		{"min int64", math.MinInt64, FormatOptions{}, 10, "-9223372036854775808"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatInt(tt.value, tt.opts, tt.base)
			if err != nil {
				t.Fatalf("FormatInt(%d) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("FormatInt(%d, base %d) = %q; want %q", tt.value, tt.base, got, tt.want)
			}
		})
	}

	if got, _ := FormatInt(uint64(math.MaxUint64), FormatOptions{}, 16); got != "FFFFFFFFFFFFFFFF" {
		t.Errorf("FormatInt(MaxUint64, 16) = %q", got)
	}
	if _, err := FormatInt(1, FormatOptions{}, 37); !errors.IsInvalidArgument(err) {
		t.Errorf("FormatInt base 37 error = %v; want invalid argument", err)
	}
	if _, err := FormatInt(1, FormatOptions{WithCommas: true}, 16); !errors.IsInvalidArgument(err) {
		t.Errorf("FormatInt commas in base 16 error = %v; want invalid argument", err)
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 7, 255, -256, 1 << 31, 123456789, -987654321,
		math.MaxInt64, math.MinInt64, math.MaxInt32, math.MinInt32}
	for _, base := range []int{2, 8, 10, 16, 36} {
		for _, v := range values {
			s, err := FormatInt(v, FormatOptions{}, base)
			if err != nil {
				t.Fatalf("FormatInt(%d, %d) error = %v", v, base, err)
			}
			back, err := ParseInt[int64](s, ParseOptions{}, base)
			if err != nil || back != v {
				t.Errorf("ParseInt(FormatInt(%d, %d) = %q) = %d, %v", v, base, s, back, err)
			}
		}
	}

	for _, v := range []uint64{0, 1, math.MaxUint32, math.MaxUint64} {
		for _, base := range []int{2, 8, 10, 16, 36} {
			s, _ := FormatInt(v, FormatOptions{WithRadix: base == 16}, base)
			back, err := ParseUint[uint64](s, ParseOptions{}, base)
			if err != nil || back != v {
				t.Errorf("ParseUint(%q, %d) = %d, %v; want %d", s, base, back, err, v)
			}
		}
	}
}

func TestMustParseIntPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseInt did not panic on invalid input")
		}
	}()
	MustParseInt[int]("nope", ParseOptions{}, 10)
}

func TestHexDigitAndBool(t *testing.T) {
	if HexDigit('a') != 10 || HexDigit('F') != 15 || HexDigit('7') != 7 || HexDigit('g') != -1 {
		t.Error("HexDigit returned unexpected values")
	}
	for _, in := range []string{"TRUE", "y", "1", "Yes"} {
		if b, err := ParseBool(in); err != nil || !b {
			t.Errorf("ParseBool(%q) = %v, %v; want true", in, b, err)
		}
	}
	if _, err := ParseBool("maybe"); !errors.IsFormat(err) {
		t.Errorf("ParseBool(maybe) error = %v; want format error", err)
	}
	if FormatBool(false) != "false" {
		t.Error("FormatBool(false) != false")
	}
}

func BenchmarkParseInt(b *testing.B) {
	opts := ParseOptions{AllowCommas: true}
	for i := 0; i < b.N; i++ {
		_, _ = ParseInt[int64]("9,223,372,036,854,775,807", opts, 10)
	}
}
