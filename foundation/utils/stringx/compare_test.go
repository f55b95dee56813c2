// File: compare_test.go
// Title: Comparison, Search and Mask Tests
// Description: Tests for Compare, Find, FindWord, common sizes and
//              MatchesMask.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-04 v0.1.0: Initial tests

package stringx

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		c    Case
		want int
	}{
		{"ABC", "abc", NoCase, 0},
		{"ABC", "abc", CaseSensitive, -1},
		{"abc", "abd", CaseSensitive, -1},
		{"abd", "ABC", NoCase, 1},
		{"ab", "abc", CaseSensitive, -1},
		{"", "", CaseSensitive, 0},
		{"é", "É", NoCase, 1},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b, tt.c); got != tt.want {
			t.Errorf("Compare(%q, %q, %v) = %d; want %d", tt.a, tt.b, tt.c, got, tt.want)
		}
	}

	if CompareNocase("ABC", "abc") != 0 || CompareCase("ABC", "abc") == 0 {
		t.Error("CompareNocase/CompareCase disagree with the documented behaviour")
	}
	if !EqualNocase("Content-Type", "content-type") || Equal("a", "A", CaseSensitive) {
		t.Error("Equal misbehaves")
	}
	if got := CompareAt("hello world", 6, 5, "WORLD", NoCase); got != 0 {
		t.Errorf("CompareAt = %d; want 0", got)
	}
	if got := CompareAt("hello", 10, 2, "", CaseSensitive); got != 0 {
		t.Errorf("CompareAt beyond end = %d; want 0", got)
	}
}

func TestStartsEndsWith(t *testing.T) {
	if !StartsWith("Hello", "he", NoCase) || StartsWith("Hello", "he", CaseSensitive) {
		t.Error("StartsWith misbehaves")
	}
	if !EndsWith("file.TXT", ".txt", NoCase) || EndsWith("a", "ab", NoCase) {
		t.Error("EndsWith misbehaves")
	}
	if !StartsWithByte("Hello", 'h', NoCase) || StartsWithByte("Hello", 'h', CaseSensitive) {
		t.Error("StartsWithByte must compare the folded first byte")
	}
	if StartsWithByte("", 'h', NoCase) || !EndsWithByte("abC", 'c', NoCase) {
		t.Error("StartsWithByte/EndsWithByte edge cases")
	}
}

func TestCommonSizes(t *testing.T) {
	if n := CommonPrefixSize("interstellar", "internet"); n != 5 {
		t.Errorf("CommonPrefixSize = %d; want 5", n)
	}
	if n := CommonSuffixSize("running", "jumping"); n != 3 {
		t.Errorf("CommonSuffixSize = %d; want 3", n)
	}
	if n := CommonOverlapSize("abcde", "cdefg"); n != 3 {
		t.Errorf("CommonOverlapSize = %d; want 3", n)
	}
	if n := CommonOverlapSize("abc", "xyz"); n != 0 {
		t.Errorf("CommonOverlapSize no overlap = %d", n)
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		s, p    string
		opts    FindOptions
		want    int
	}{
		{"first", "a.b.c", ".", FindOptions{}, 1},
		{"second", "a.b.c", ".", FindOptions{Occurrence: 1}, 3},
		{"third missing", "a.b.c", ".", FindOptions{Occurrence: 2}, NotFound},
		{"reverse", "a.b.c", ".", FindOptions{Direction: Reverse}, 3},
		{"reverse second", "a.b.c", ".", FindOptions{Direction: Reverse, Occurrence: 1}, 1},
		{"non overlapping", "aaaa", "aa", FindOptions{Occurrence: 1}, 2},
		{"non overlapping exhausted", "aaaa", "aa", FindOptions{Occurrence: 2}, NotFound},
		{"reverse non overlapping", "aaaa", "aa", FindOptions{Direction: Reverse, Occurrence: 1}, 0},
		{"nocase", "Hello World", "WORLD", FindOptions{Case: NoCase}, 6},
		{"case miss", "Hello World", "WORLD", FindOptions{}, NotFound},
		{"empty pattern", "abc", "", FindOptions{}, NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Find(tt.s, tt.p, tt.opts); got != tt.want {
				t.Errorf("Find(%q, %q, %+v) = %d; want %d", tt.s, tt.p, tt.opts, got, tt.want)
			}
		})
	}
	if FindNocase("ABC", "b") != 1 || FindCase("ABC", "b") != NotFound {
		t.Error("FindNocase/FindCase misbehave")
	}
}

func TestFindWord(t *testing.T) {
	tests := []struct {
		s, word string
		c       Case
		dir     Direction
		want    int
	}{
		{"concat cat", "cat", CaseSensitive, Forward, 7},
		{"cat concat", "cat", CaseSensitive, Reverse, 0},
		{"my_cat cat2", "cat", CaseSensitive, Forward, NotFound},
		{"The CAT sat", "cat", NoCase, Forward, 4},
		{"cat", "cat", CaseSensitive, Forward, 0},
		{"(cat)", "cat", CaseSensitive, Reverse, 1},
	}
	for _, tt := range tests {
		if got := FindWord(tt.s, tt.word, tt.c, tt.dir); got != tt.want {
			t.Errorf("FindWord(%q, %q) = %d; want %d", tt.s, tt.word, got, tt.want)
		}
	}
}

func TestMatchesMask(t *testing.T) {
	tests := []struct {
		s, mask string
		c       Case
		want    bool
	}{
		{"report_final.txt", "*_final.*", CaseSensitive, true},
		{"report.txt", "*_final.*", CaseSensitive, false},
		{"abc", "a?c", CaseSensitive, true},
		{"ac", "a?c", CaseSensitive, false},
		{"file.TXT", "*.txt", NoCase, true},
		{"file.TXT", "*.txt", CaseSensitive, false},
		{"", "*", CaseSensitive, true},
		{"", "?", CaseSensitive, false},
		{"aXbXc", "a*b*c", CaseSensitive, true},
		{"abcbd", "a*bd", CaseSensitive, true},
		{"b", "[a-c]", CaseSensitive, true},
		{"d", "[a-c]", CaseSensitive, false},
		{"d", "[!a-c]", CaseSensitive, true},
		{"B", "[a-c]", NoCase, true},
		{"]", "[]]", CaseSensitive, true},
		{"-", "[a-]", CaseSensitive, true},
		{"-", "[-a]", CaseSensitive, true},
		{"!", "[][!]", CaseSensitive, true},
		{"[", "[][!]", CaseSensitive, true},
		{"x", "[][!]", CaseSensitive, false},
		{"x", "[!][-]", CaseSensitive, true},
		{"-", "[!][-]", CaseSensitive, false},
		{"#", "[9-0!-$]", CaseSensitive, true},
		{"5", "[9-0!-$]", CaseSensitive, false},
		{"a*b", `a\*b`, CaseSensitive, true},
		{"axb", `a\*b`, CaseSensitive, false},
		{"a]", `a[\]]`, CaseSensitive, true},
		{"abc", "[abc", CaseSensitive, false},
		{"a", `a\`, CaseSensitive, false},
	}
	for _, tt := range tests {
		if got := MatchesMask(tt.s, tt.mask, tt.c); got != tt.want {
			t.Errorf("MatchesMask(%q, %q, %v) = %v; want %v", tt.s, tt.mask, tt.c, got, tt.want)
		}
	}
}

func BenchmarkMatchesMask(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = MatchesMask("build/output/report_final_2025.txt", "*/report_*_[0-9][0-9][0-9][0-9].txt", CaseSensitive)
	}
}

func BenchmarkFindNocase(b *testing.B) {
	s := "The quick brown fox jumps over the lazy dog and keeps running"
	for i := 0; i < b.N; i++ {
		_ = Find(s, "RUNNING", FindOptions{Case: NoCase})
	}
}
