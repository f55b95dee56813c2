// File: float_test.go
// Title: Floating Point Conversion Tests
// Description: Table tests for ParseFloat and FormatFloat.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-02 v0.1.0: Initial tests
// - 2025-02-14 v0.1.1: Subnormal clamping and symbols before NaN/Inf

package numx

import (
	"math"
	"testing"

	"github.com/msto63/textkit/foundation/core/errors"
)

func TestParseFloat(t *testing.T) {
	local := ParseOptions{Decimal: DecimalPosixOrLocal}
	finite := ParseOptions{PosixFinite: true}
	symbols := ParseOptions{AllowLeadingSymbols: true}

	tests := []struct {
		name     string
		input    string
		opts     ParseOptions
		want     float64
		wantKind errors.Kind
	}{
		{"simple", "3.14", ParseOptions{}, 3.14, errors.KindNone},
		{"exponent", "-2.5e3", ParseOptions{}, -2500, errors.KindNone},
		{"leading point", ".5", ParseOptions{}, 0.5, errors.KindNone},
		{"trailing point", "5.", ParseOptions{}, 5, errors.KindNone},
		{"zero", "0.0", ParseOptions{}, 0, errors.KindNone},
		{"infinity", "-Infinity", ParseOptions{}, math.Inf(-1), errors.KindNone},
		{"inf", "inf", ParseOptions{}, math.Inf(1), errors.KindNone},
		{"commas", "1,234.5", ParseOptions{AllowCommas: true}, 1234.5, errors.KindNone},
		{"local point", "3,14", local, 3.14, errors.KindNone},
		{"posix point in local mode", "3.14", local, 3.14, errors.KindNone},
		{"overflow clamped", "1e400", finite, math.MaxFloat64, errors.KindNone},
		{"negative overflow clamped", "-1e400", finite, -math.MaxFloat64, errors.KindNone},
		{"underflow clamped", "1e-400", finite, SmallestNormal, errors.KindNone},
		{"subnormal clamped", "1e-310", finite, SmallestNormal, errors.KindNone},
		{"negative subnormal clamped", "-1e-310", finite, -SmallestNormal, errors.KindNone},
		{"subnormal kept", "1e-310", ParseOptions{}, 1e-310, errors.KindNone},
		{"symbols before inf", "$inf", symbols, math.Inf(1), errors.KindNone},
		{"symbols before infinity", "~ -Infinity", symbols, math.Inf(-1), errors.KindNone},
		{"symbols before number", "EUR 2.5", symbols, 2.5, errors.KindNone},
		{"spaces", " 1.5 ", ParseOptions{}.AllowSpaces(), 1.5, errors.KindNone},

		{"empty", "", ParseOptions{}, 0, errors.KindFormat},
		{"point only", ".", ParseOptions{}, 0, errors.KindFormat},
		{"dangling exponent", "1e", ParseOptions{}, 0, errors.KindFormat},
		{"local point not allowed", "3,14", ParseOptions{}, 0, errors.KindFormat},
		{"garbage", "1.2.3", ParseOptions{}, 0, errors.KindFormat},
		{"overflow", "1e400", ParseOptions{}, 0, errors.KindRange},
		{"underflow", "1e-400", ParseOptions{}, 0, errors.KindRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFloat(tt.input, tt.opts)
			if kind := errors.KindOf(err); kind != tt.wantKind {
				t.Fatalf("ParseFloat(%q) error = %v; want kind %v", tt.input, err, tt.wantKind)
			}
			if got != tt.want {
				t.Errorf("ParseFloat(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}

	for _, in := range []string{"NaN", "nan", "-NAN"} {
		if v, err := ParseFloat(in, ParseOptions{}); err != nil || !math.IsNaN(v) {
			t.Errorf("ParseFloat(%q) = %v, %v; want NaN", in, v, err)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		opts      FormatOptions
		want      string
	}{
		{"fixed", 3.14159, 2, FormatOptions{Notation: NotationFixed}, "3.14"},
		{"fixed default", 1234.5, -1, FormatOptions{Notation: NotationFixed}, "1234.500000"},
		{"scientific", 1234.5, 2, FormatOptions{Notation: NotationScientific}, "1.23e+03"},
		{"general shortest", 0.1, -1, FormatOptions{}, "0.1"},
		{"general precision", 1234.5678, 6, FormatOptions{}, "1234.57"},
		{"commas", 1234567.891, 2, FormatOptions{Notation: NotationFixed, WithCommas: true}, "1,234,567.89"},
		{"sign", 2.5, -1, FormatOptions{WithSign: true}, "+2.5"},
		{"negative", -2.5, -1, FormatOptions{WithSign: true}, "-2.5"},
		{"nan", math.NaN(), -1, FormatOptions{}, "NaN"},
		{"inf", math.Inf(1), -1, FormatOptions{}, "INF"},
		{"minus inf", math.Inf(-1), -1, FormatOptions{}, "-INF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFloat(tt.value, tt.precision, tt.opts); got != tt.want {
				t.Errorf("FormatFloat(%v, %d) = %q; want %q", tt.value, tt.precision, got, tt.want)
			}
		})
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.1, 1.0 / 3, 6.02214076e23, -1.602e-19, math.MaxFloat64, SmallestNormal} {
		s := FormatFloat(v, -1, FormatOptions{})
		back, err := ParseFloat(s, ParseOptions{})
		if err != nil || back != v {
			t.Errorf("ParseFloat(FormatFloat(%v) = %q) = %v, %v", v, s, back, err)
		}
	}
}
