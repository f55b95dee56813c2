// File: wrap.go
// Title: Line Wrapping
// Description: Greedy word wrapping with per-line prefixes, optional
//              hyphenation of over-long words, HTML aware measuring and
//              justification.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
// - 2025-02-12 v0.1.1: WrapList and Justify

package wrapx

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/splitx"
	"github.com/msto63/textkit/foundation/utils/utf8x"
)

// Options configures Wrap and WrapList.
type Options struct {
	// Hyphenate breaks words longer than a line into pieces ending in '-'.
	Hyphenate bool
	// HTMLPre measures "<tag>" as zero columns and "&name;" as one.
	HTMLPre bool
	// DisplayWidth measures terminal columns instead of runes.
	DisplayWidth bool
	// Prefix starts every line.
	Prefix string
	// FirstPrefix, when set, replaces Prefix on the first line.
	FirstPrefix *string
}

// unit is the smallest piece of text that is never broken.
type unit struct {
	text  string
	width int
}

func entityName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c == '#' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}

func (o Options) units(s string) []unit {
	out := make([]unit, 0, len(s))
	for i := 0; i < len(s); {
		if o.HTMLPre {
			switch s[i] {
			case '<':
				if j := strings.IndexByte(s[i:], '>'); j > 0 {
					out = append(out, unit{s[i : i+j+1], 0})
					i += j + 1
					continue
				}
			case '&':
				if j := strings.IndexByte(s[i:], ';'); j > 1 && entityName(s[i+1:i+j]) {
					out = append(out, unit{s[i : i+j+1], 1})
					i += j + 1
					continue
				}
			}
		}
		r, size, err := utf8x.Decode(s[i:])
		if err != nil {
			size = 1
		}
		w := 1
		if o.DisplayWidth && err == nil {
			w = runewidth.RuneWidth(r)
		}
		out = append(out, unit{s[i : i+size], w})
		i += size
	}
	return out
}

func (o Options) measure(s string) int {
	if !o.HTMLPre && !o.DisplayWidth {
		if n, err := utf8x.SymbolCount(s); err == nil {
			return n
		}
	}
	n := 0
	for _, u := range o.units(s) {
		n += u.width
	}
	return n
}

type line struct {
	prefix string
	words  []string
	width  int
	// last marks the final line of a paragraph.
	last bool
}

// layout accumulates lines for one call.
type layout struct {
	width    int
	opts     Options
	sep      string
	sepWidth int
	lines    []line
	cur      *line
}

func newLayout(width int, opts Options, sep string) *layout {
	return &layout{width: width, opts: opts, sep: sep, sepWidth: opts.measure(sep)}
}

func (l *layout) open() {
	p := l.opts.Prefix
	if len(l.lines) == 0 && l.opts.FirstPrefix != nil {
		p = *l.opts.FirstPrefix
	}
	l.cur = &line{prefix: p, width: l.opts.measure(p)}
}

func (l *layout) flush(last bool) {
	if l.cur == nil {
		if !last {
			return
		}
		l.open()
	}
	l.cur.last = last
	l.lines = append(l.lines, *l.cur)
	l.cur = nil
}

func (l *layout) put(word string, w int) {
	l.cur.words = append(l.cur.words, word)
	l.cur.width += w
}

// add places word on the current line or a fresh one. Words that do not
// fit an empty line are split only when splittable and hyphenating.
func (l *layout) add(word string, splittable bool) {
	ww := l.opts.measure(word)
	if l.cur != nil && len(l.cur.words) > 0 {
		if l.cur.width+l.sepWidth+ww <= l.width {
			l.put(word, l.sepWidth+ww)
			return
		}
		l.flush(false)
	}
	if l.cur == nil {
		l.open()
	}
	if l.cur.width+ww <= l.width || !splittable || !l.opts.Hyphenate {
		l.put(word, ww)
		return
	}

	units := l.opts.units(word)
	for len(units) > 0 {
		rest := 0
		for _, u := range units {
			rest += u.width
		}
		if l.cur.width+rest <= l.width {
			l.put(joinUnits(units), rest)
			return
		}

		avail := l.width - l.cur.width - 1
		n, w := 0, 0
		for n < len(units) && (n == 0 || w+units[n].width <= avail) {
			w += units[n].width
			n++
		}
		l.put(joinUnits(units[:n])+"-", w+1)
		units = units[n:]
		l.flush(false)
		l.open()
	}
}

func joinUnits(units []unit) string {
	var sb strings.Builder
	for _, u := range units {
		sb.WriteString(u.text)
	}
	return sb.String()
}

func (l *layout) render() []string {
	out := make([]string, len(l.lines))
	for i, ln := range l.lines {
		out[i] = ln.prefix + strings.Join(ln.words, l.sep)
	}
	return out
}

func validate(op string, width int, opts Options) error {
	if width < 1 {
		return errors.ArgumentError(errors.ModuleWrapx, op, "width", width, ">= 1")
	}
	if !opts.Hyphenate {
		return nil
	}
	pw := opts.measure(opts.Prefix)
	if opts.FirstPrefix != nil {
		pw = max(pw, opts.measure(*opts.FirstPrefix))
	}
	if width-pw < 2 {
		return errors.ArgumentError(errors.ModuleWrapx, op, "width", width,
			"at least two columns more than the prefix when hyphenating")
	}
	return nil
}

// paragraphs splits s at newlines, dropping one final newline.
func paragraphs(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	paras := splitx.MustSplit(s, "\n", splitx.Options{})
	for i, p := range paras {
		paras[i] = strings.TrimSuffix(p, "\r")
	}
	return paras
}

func words(para string) []string {
	return splitx.MustSplit(para, " \t", splitx.Tokenize())
}

func wrap(op, s string, width int, opts Options) (*layout, error) {
	if err := validate(op, width, opts); err != nil {
		return nil, err
	}
	l := newLayout(width, opts, " ")
	if s == "" {
		return l, nil
	}
	for _, para := range paragraphs(s) {
		for _, w := range words(para) {
			l.add(w, true)
		}
		l.flush(true)
	}
	return l, nil
}

// Wrap reflows s into lines no wider than width. Runs of blanks collapse
// to one space. A word wider than a line gets a line of its own unless
// Hyphenate is set. Empty input yields no lines; an empty input line
// yields a line holding only the prefix.
func Wrap(s string, width int, opts Options) ([]string, error) {
	l, err := wrap("Wrap", s, width, opts)
	if err != nil {
		return nil, err
	}
	return l.render(), nil
}

// WrapList lays out items separated by delim, breaking lines only between
// items. Trailing blanks of delim are dropped at line ends.
func WrapList(items []string, width int, delim string, opts Options) ([]string, error) {
	if err := validate("WrapList", width, Options{}); err != nil {
		return nil, err
	}
	mark := strings.TrimRight(delim, " \t")
	l := newLayout(width, opts, delim[len(mark):])
	if len(items) == 0 {
		return []string{}, nil
	}
	for i, item := range items {
		if i < len(items)-1 {
			item += mark
		}
		l.add(item, false)
	}
	l.flush(true)
	return l.render(), nil
}

// Justify wraps s like Wrap and pads every line except the last of each
// paragraph to exactly width by widening the gaps between words, leftmost
// gaps first. Lines with a single word, and over-width lines, are left
// unchanged.
func Justify(s string, width int, prefix string, firstPrefix *string) ([]string, error) {
	opts := Options{Prefix: prefix, FirstPrefix: firstPrefix}
	l, err := wrap("Justify", s, width, opts)
	if err != nil {
		return nil, err
	}

	out := l.render()
	for i, ln := range l.lines {
		gaps := len(ln.words) - 1
		if ln.last || gaps < 1 || ln.width >= width {
			continue
		}
		extra := width - ln.width
		var sb strings.Builder
		sb.WriteString(ln.prefix)
		for j, w := range ln.words {
			if j > 0 {
				n := 1 + extra/gaps
				if j <= extra%gaps {
					n++
				}
				sb.WriteString(strings.Repeat(" ", n))
			}
			sb.WriteString(w)
		}
		out[i] = sb.String()
	}
	return out, nil
}
