// File: join_test.go
// Title: Join, Field and Pair Tests
// Description: Tests for the join helpers, GetField and the key/value
//              pair conversion.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-05 v0.1.0: Initial tests

package splitx

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/numx"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		parts []string
		delim string
		want  string
	}{
		{nil, ",", ""},
		{[]string{"a"}, ",", "a"},
		{[]string{"a", "b", "c"}, ", ", "a, b, c"},
		{[]string{"", ""}, "|", "|"},
	}
	for _, tt := range tests {
		if got := Join(tt.parts, tt.delim); got != tt.want {
			t.Errorf("Join(%q, %q) = %q; want %q", tt.parts, tt.delim, got, tt.want)
		}
	}
}

func TestTransformJoin(t *testing.T) {
	got := TransformJoin([]float64{1.5, 2, -3.25}, " ", func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	})
	if want := "1.5 2 -3.25"; got != want {
		t.Errorf("TransformJoin = %q; want %q", got, want)
	}
}

func TestJoinNumeric(t *testing.T) {
	got, err := JoinNumeric([]int{1, -2, 1000}, ", ", numx.FormatOptions{WithCommas: true}, 10)
	if err != nil || got != "1, -2, 1,000" {
		t.Errorf("JoinNumeric(decimal) = %q, %v; want %q", got, err, "1, -2, 1,000")
	}

	got, err = JoinNumeric([]uint8{255, 16}, "|", numx.FormatOptions{WithRadix: true}, 16)
	if err != nil || got != "0xFF|0x10" {
		t.Errorf("JoinNumeric(hex) = %q, %v; want %q", got, err, "0xFF|0x10")
	}

	_, err = JoinNumeric([]int{1}, ",", numx.FormatOptions{}, 99)
	if !errors.IsInvalidArgument(err) {
		t.Errorf("JoinNumeric(base 99) error = %v; want invalid argument", err)
	}
}

func TestJoinQuotedRoundTrip(t *testing.T) {
	sets := [][]string{
		{"plain", "with,comma", `say "hi"`, "it's", `back\slash`, ""},
		{"", ""},
		{"a b", "c"},
	}
	for _, parts := range sets {
		joined := JoinQuoted(parts, ",")
		got, err := Split(joined, ",", CanQuote())
		if err != nil {
			t.Fatalf("Split(%q) unexpected error: %v", joined, err)
		}
		if diff := cmp.Diff(parts, got); diff != "" {
			t.Errorf("Split(JoinQuoted(%q)) mismatch (-want +got):\n%s", parts, diff)
		}
	}
}

func TestGetField(t *testing.T) {
	tests := []struct {
		input  string
		n      int
		delims string
		merge  bool
		want   string
	}{
		{"a,b,c", 0, ",", false, "a"},
		{"a,b,c", 2, ",", false, "c"},
		{"a,b,c", 3, ",", false, ""},
		{"a,,b", 1, ",", false, ""},
		{"a,,b", 1, ",", true, "b"},
		{"a, ;b", 1, ",; ", true, "b"},
		{"", 0, ",", false, ""},
		{"abc", -1, ",", false, ""},
	}
	for _, tt := range tests {
		if got := GetField(tt.input, tt.n, tt.delims, tt.merge); got != tt.want {
			t.Errorf("GetField(%q, %d, %q, %v) = %q; want %q", tt.input, tt.n, tt.delims, tt.merge, got, tt.want)
		}
	}
}

func TestParsePairs(t *testing.T) {
	got, err := ParsePairs("a=1&&b=&c&d=x=y&", PairOptions{})
	if err != nil {
		t.Fatalf("ParsePairs unexpected error: %v", err)
	}
	want := []Pair{{"a", "1"}, {"b", ""}, {"c", ""}, {"d", "x=y"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParsePairs mismatch (-want +got):\n%s", diff)
	}

	got, err = ParsePairs("name: Jane Doe; city: Zürich", PairOptions{PairSeparator: "; ", KeyValueSeparator: ": "})
	if err != nil {
		t.Fatalf("ParsePairs(custom) unexpected error: %v", err)
	}
	want = []Pair{{"name", "Jane Doe"}, {"city", "Zürich"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParsePairs(custom) mismatch (-want +got):\n%s", diff)
	}

	_, err = ParsePairs("a=%zz", PairOptions{URLEncoded: true})
	if !errors.IsFormat(err) {
		t.Errorf("ParsePairs(bad escape) error = %v; want format error", err)
	}
}

func TestPairsRoundTrip(t *testing.T) {
	pairs := []Pair{{"q", "a b&c"}, {"lang", "de=CH"}, {"empty", ""}, {"ü", "€"}}
	opts := PairOptions{URLEncoded: true}

	merged := MergePairs(pairs, opts)
	if want := "q=a+b%26c&lang=de%3DCH&empty=&%C3%BC=%E2%82%AC"; merged != want {
		t.Errorf("MergePairs = %q; want %q", merged, want)
	}
	got, err := ParsePairs(merged, opts)
	if err != nil {
		t.Fatalf("ParsePairs(%q) unexpected error: %v", merged, err)
	}
	if diff := cmp.Diff(pairs, got); diff != "" {
		t.Errorf("ParsePairs(MergePairs) mismatch (-want +got):\n%s", diff)
	}
}
