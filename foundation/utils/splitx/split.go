// File: split.go
// Title: Tokenizer
// Description: Splits text on delimiter sets or literal patterns with
//              optional quoting, escaping, delimiter merging and
//              boundary truncation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation
// - 2025-02-06 v0.1.1: SplitInTwo honours quotes and escapes

package splitx

import (
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Options configures the tokenizer. The zero value splits on every
// delimiter byte and keeps all empty tokens.
type Options struct {
	// MergeDelimiters collapses runs of delimiters so that no empty
	// tokens appear between them.
	MergeDelimiters bool
	// TruncateBegin drops empty tokens caused by delimiters at the start.
	TruncateBegin bool
	// TruncateEnd drops empty tokens caused by delimiters at the end.
	TruncateEnd bool
	// ByPattern treats the delimiter as one literal string instead of a
	// set of bytes.
	ByPattern bool
	// CanEscape makes a backslash take away the special meaning of the
	// next byte.
	CanEscape bool
	// CanSingleQuote and CanDoubleQuote open quoted regions in which
	// delimiters are ordinary text. A doubled quote inside the region is
	// a literal quote.
	CanSingleQuote bool
	CanDoubleQuote bool
}

// Tokenize returns options for splitting words: delimiters merged and
// boundary delimiters ignored.
func Tokenize() Options {
	return Options{MergeDelimiters: true, TruncateBegin: true, TruncateEnd: true}
}

// Truncate returns options that ignore delimiters at both ends.
func Truncate() Options {
	return Options{TruncateBegin: true, TruncateEnd: true}
}

// CanQuote returns options with escaping and both quote styles enabled.
func CanQuote() Options {
	return Options{CanEscape: true, CanSingleQuote: true, CanDoubleQuote: true}
}

// Token is one piece of split text.
type Token struct {
	Text string
	// Pos is the byte offset in the input where the token starts, before
	// any quote or escape removal.
	Pos int
}

// scanner walks the input one token at a time.
type scanner struct {
	s, delim string
	opts     Options
	op       string
	sb       strings.Builder
}

// delimAt returns the length of the delimiter at s[i:], or 0.
func (sc *scanner) delimAt(i int) int {
	if sc.delim == "" {
		return 0
	}
	if sc.opts.ByPattern {
		if strings.HasPrefix(sc.s[i:], sc.delim) {
			return len(sc.delim)
		}
		return 0
	}
	if strings.IndexByte(sc.delim, sc.s[i]) >= 0 {
		return 1
	}
	return 0
}

func (sc *scanner) isQuote(c byte) bool {
	return (c == '"' && sc.opts.CanDoubleQuote) || (c == '\'' && sc.opts.CanSingleQuote)
}

// next scans the token starting at i. It returns the processed text,
// whether any quote was seen, and the index after the terminating
// delimiter, or -1 when the token runs to the end of the input.
func (sc *scanner) next(i int) (text string, quoted bool, next int, err error) {
	s := sc.s
	sc.sb.Reset()
	start := i
	plain := true

	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\' && sc.opts.CanEscape:
			if i+1 >= len(s) {
				return "", false, 0, errors.FormatErrorAt(errors.ModuleSplitx, sc.op, s, i, "dangling escape character")
			}
			if plain {
				sc.sb.WriteString(s[start:i])
				plain = false
			}
			sc.sb.WriteByte(s[i+1])
			i += 2
		case sc.isQuote(c):
			if plain {
				sc.sb.WriteString(s[start:i])
				plain = false
			}
			quoted = true
			end, qerr := sc.quoted(i)
			if qerr != nil {
				return "", false, 0, qerr
			}
			i = end
		default:
			if n := sc.delimAt(i); n > 0 {
				if plain {
					return s[start:i], quoted, i + n, nil
				}
				return sc.sb.String(), quoted, i + n, nil
			}
			if !plain {
				sc.sb.WriteByte(c)
			}
			i++
		}
	}
	if plain {
		return s[start:], quoted, -1, nil
	}
	return sc.sb.String(), quoted, -1, nil
}

// quoted copies the quoted region opening at i into the builder and
// returns the index after the closing quote.
func (sc *scanner) quoted(i int) (int, error) {
	s := sc.s
	quote := s[i]
	for j := i + 1; j < len(s); j++ {
		c := s[j]
		switch {
		case c == '\\' && sc.opts.CanEscape:
			if j+1 >= len(s) {
				return 0, errors.FormatErrorAt(errors.ModuleSplitx, sc.op, s, j, "dangling escape character")
			}
			j++
			sc.sb.WriteByte(s[j])
		case c == quote:
			if j+1 < len(s) && s[j+1] == quote {
				sc.sb.WriteByte(quote)
				j++
				continue
			}
			return j + 1, nil
		default:
			sc.sb.WriteByte(c)
		}
	}
	return 0, errors.UnbalancedQuote(errors.ModuleSplitx, sc.op, s, i)
}

// skipDelims returns the index of the first byte at or after i that does
// not start a delimiter.
func (sc *scanner) skipDelims(i int) int {
	for i < len(sc.s) {
		n := sc.delimAt(i)
		if n == 0 {
			break
		}
		i += n
	}
	return i
}

type rawToken struct {
	Token
	empty bool
}

// SplitTokens splits s and reports the start position of every token.
// Splitting the empty string yields no tokens. An empty delimiter never
// matches, so s is returned as a single token.
func SplitTokens(s, delim string, opts Options) ([]Token, error) {
	return splitTokens("SplitTokens", s, delim, opts)
}

func splitTokens(op, s, delim string, opts Options) ([]Token, error) {
	if s == "" {
		return []Token{}, nil
	}

	sc := &scanner{s: s, delim: delim, opts: opts, op: op}
	var raw []rawToken
	for pos := 0; ; {
		text, quoted, next, err := sc.next(pos)
		if err != nil {
			return nil, err
		}
		raw = append(raw, rawToken{Token{Text: text, Pos: pos}, text == "" && !quoted})
		if next < 0 {
			break
		}
		pos = next
		if next == len(s) {
			raw = append(raw, rawToken{Token{Pos: pos}, true})
			break
		}
	}

	first, last := 0, len(raw)
	if opts.TruncateBegin {
		for first < last && raw[first].empty {
			first++
		}
	}
	if opts.TruncateEnd {
		for last > first && raw[last-1].empty {
			last--
		}
	}

	tokens := make([]Token, 0, last-first)
	for i := first; i < last; i++ {
		// an empty token with delimiters on both sides is a delimiter run
		if opts.MergeDelimiters && raw[i].empty && i > 0 && i < len(raw)-1 {
			continue
		}
		tokens = append(tokens, raw[i].Token)
	}
	return tokens, nil
}

// Split splits s at delimiters. Without ByPattern every byte of delim is
// a delimiter.
func Split(s, delim string, opts Options) ([]string, error) {
	tokens, err := splitTokens("Split", s, delim, opts)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out, nil
}

// MustSplit is like Split but panics on malformed input.
func MustSplit(s, delim string, opts Options) []string {
	out, err := Split(s, delim, opts)
	if err != nil {
		panic(err)
	}
	return out
}

// SplitByPattern splits s at every occurrence of the literal pattern.
func SplitByPattern(s, pattern string, opts Options) ([]string, error) {
	opts.ByPattern = true
	return Split(s, pattern, opts)
}

// SplitInTwo splits s at the first delimiter outside quotes. The left
// part is processed like a token; the right part is the unprocessed rest
// of the input. found is false when s contains no delimiter, in which
// case left holds the whole processed input.
func SplitInTwo(s, delim string, opts Options) (left, right string, found bool, err error) {
	sc := &scanner{s: s, delim: delim, opts: opts, op: "SplitInTwo"}
	start := 0
	if opts.TruncateBegin {
		start = sc.skipDelims(0)
	}

	left, _, next, err := sc.next(start)
	if err != nil {
		return "", "", false, err
	}
	if next < 0 {
		return left, "", false, nil
	}
	if opts.MergeDelimiters {
		next = sc.skipDelims(next)
	}
	return left, s[next:], true, nil
}
