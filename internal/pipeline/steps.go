package pipeline

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/encodex"
	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/foundation/utils/utf8x"
	"github.com/msto63/textkit/foundation/utils/wrapx"
)

// funcStep adapts a plain function to Step
type funcStep struct {
	name string
	fn   func(string) (string, error)
}

func (s *funcStep) Name() string { return s.name }

func (s *funcStep) Apply(_ context.Context, input string) (string, error) {
	return s.fn(input)
}

// NewStep wraps fn as a Step
func NewStep(name string, fn func(string) (string, error)) Step {
	return &funcStep{name: name, fn: fn}
}

func pure(name string, fn func(string) string) Step {
	return NewStep(name, func(s string) (string, error) { return fn(s), nil })
}

type builtin struct {
	name        string
	description string
	factory     Factory
}

// choice resolves a named option from a fixed table
func choice[T any](p Params, key, def string, table map[string]T) (T, error) {
	name := strings.ToLower(p.String(key, def))
	v, ok := table[name]
	if !ok {
		names := make([]string, 0, len(table))
		for n := range table {
			names = append(names, n)
		}
		sort.Strings(names)
		var zero T
		return zero, errors.ArgumentError(errors.ModulePipeline, "Build", key, name, "one of "+strings.Join(names, ", "))
	}
	return v, nil
}

var (
	trimNames = map[string]stringx.TrimWhere{
		"both": stringx.TrimBoth, "begin": stringx.TrimBegin, "end": stringx.TrimEnd,
	}
	urlModes = map[string]encodex.URLEncodeMode{
		"skip-mark":    encodex.URLSkipMarkChars,
		"process-mark": encodex.URLProcessMarkChars,
		"percent":      encodex.URLPercentOnly,
		"path":         encodex.URLPath,
		"scheme":       encodex.URIScheme,
		"userinfo":     encodex.URIUserinfo,
		"host":         encodex.URIHost,
		"uri-path":     encodex.URIPath,
		"query-name":   encodex.URIQueryName,
		"query-value":  encodex.URIQueryValue,
		"fragment":     encodex.URIFragment,
		"cookie":       encodex.URLCookie,
		"none":         encodex.URLNone,
	}
	escapeRanges = map[string]encodex.EscapeRange{
		"standard": encodex.RangeStandard, "first-byte": encodex.RangeFirstByte,
		"fail": encodex.RangeFail, "user": encodex.RangeUser,
	}
	newLineModes = map[string]encodex.NewLineMode{
		"quote": encodex.NewLineQuote, "passthru": encodex.NewLinePassthru,
	}
)

func encodingParam(p Params, key string, def utf8x.Encoding) (utf8x.Encoding, error) {
	name := p.String(key, "")
	if name == "" || strings.EqualFold(name, "auto") {
		return def, nil
	}
	return utf8x.ParseEncoding(name)
}

// collect runs the parameter readers and returns the first error
func collect(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return errors.NewErrorBuilder(errors.ModulePipeline).
				Operation("Build").
				Message(err.Error()).
				Cause(err).
				Code(codeOf(err)).
				Build()
		}
	}
	return nil
}

func caseStep(name string, ascii func(string) string, unicode func(string, language.Tag) string) Factory {
	return func(p Params) (Step, error) {
		locale := p.String("locale", "")
		if locale == "" {
			return pure(name, ascii), nil
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, errors.ArgumentError(errors.ModulePipeline, "Build", "locale", locale, "a BCP 47 language tag")
		}
		return pure(name, func(s string) string { return unicode(s, tag) }), nil
	}
}

func wrapOptions(p Params) (width int, opts wrapx.Options, err error) {
	width, errW := p.Int("width", 72)
	hyph, errH := p.Bool("hyphenate", false)
	dw, errD := p.Bool("display-width", false)
	html, errP := p.Bool("html", false)
	if err = collect(errW, errH, errD, errP); err != nil {
		return 0, opts, err
	}
	opts = wrapx.Options{Hyphenate: hyph, DisplayWidth: dw, HTMLPre: html, Prefix: p.String("prefix", "")}
	if _, ok := p["first-prefix"]; ok {
		fp := p.String("first-prefix", "")
		opts.FirstPrefix = &fp
	}
	return width, opts, nil
}

func joinLines(lines []string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

var builtins = []builtin{
	{"trim", "remove ASCII white space (where: both|begin|end)", func(p Params) (Step, error) {
		where, err := choice(p, "where", "both", trimNames)
		if err != nil {
			return nil, err
		}
		return pure("trim", func(s string) string { return stringx.TrimSpaces(s, where) }), nil
	}},
	{"upper", "upper-case ASCII, or all letters when locale is set", caseStep("upper", stringx.ToUpper, utf8x.ToUpper)},
	{"lower", "lower-case ASCII, or all letters when locale is set", caseStep("lower", stringx.ToLower, utf8x.ToLower)},
	{"fold", "Unicode case folding", func(Params) (Step, error) {
		return pure("fold", utf8x.Fold), nil
	}},
	{"normalize", "Unicode normalization (form: NFC|NFD|NFKC|NFKD)", func(p Params) (Step, error) {
		form, err := utf8x.ParseNormalForm(p.String("form", "NFC"))
		if err != nil {
			return nil, err
		}
		return pure("normalize", func(s string) string { return utf8x.Normalize(s, form) }), nil
	}},
	{"url-encode", "percent-encoding (mode: skip-mark, percent, query-value, ...)", func(p Params) (Step, error) {
		mode, err := choice(p, "mode", "skip-mark", urlModes)
		if err != nil {
			return nil, err
		}
		return pure("url-encode", func(s string) string { return encodex.URLEncode(s, mode) }), nil
	}},
	{"url-decode", "percent-decoding (plus: decode '+' as space)", func(p Params) (Step, error) {
		plus, err := p.Bool("plus", true)
		if err != nil {
			return nil, collect(err)
		}
		mode := encodex.URLDecodePercent
		if plus {
			mode = encodex.URLDecodeAll
		}
		return NewStep("url-decode", func(s string) (string, error) { return encodex.URLDecode(s, mode) }), nil
	}},
	{"html-encode", "HTML character references", func(p Params) (Step, error) {
		lit, errL := p.Bool("skip-literal", false)
		num, errN := p.Bool("skip-numeric", false)
		check, errC := p.Bool("check-preencoded", false)
		if err := collect(errL, errN, errC); err != nil {
			return nil, err
		}
		opts := encodex.HTMLEncodeOptions{SkipLiteralEntities: lit, SkipNumericEntities: num, CheckPreencoded: check}
		return pure("html-encode", func(s string) string { return encodex.HTMLEncode(s, opts) }), nil
	}},
	{"html-decode", "decode HTML references (encoding: auto|utf-8|latin1|windows-1252)", func(p Params) (Step, error) {
		enc, err := encodingParam(p, "encoding", utf8x.EncodingUnknown)
		if err != nil {
			return nil, err
		}
		return NewStep("html-decode", func(s string) (string, error) {
			out, _, err := encodex.HTMLDecode(s, enc)
			return out, err
		}), nil
	}},
	{"xml-encode", "XML entities (comment-safe, unsafe: reference|skip|fail)", func(p Params) (Step, error) {
		safe, err := p.Bool("comment-safe", false)
		if err != nil {
			return nil, collect(err)
		}
		opts := encodex.XMLOptions{CommentSafe: safe}
		switch p.String("unsafe", "reference") {
		case "reference":
		case "skip":
			opts.UnsafeSkip = true
		case "fail":
			opts.UnsafeFail = true
		default:
			return nil, errors.ArgumentError(errors.ModulePipeline, "Build", "unsafe", p.String("unsafe", ""), "reference, skip or fail")
		}
		return NewStep("xml-encode", func(s string) (string, error) { return encodex.XMLEncode(s, opts) }), nil
	}},
	{"json-encode", "JSON string escaping (quoted: keep UTF-8 and add quotes)", func(p Params) (Step, error) {
		quoted, err := p.Bool("quoted", false)
		if err != nil {
			return nil, collect(err)
		}
		mode := encodex.JSONEscapeUnicode
		if quoted {
			mode = encodex.JSONQuoted
		}
		return pure("json-encode", func(s string) string { return encodex.JSONEncode(s, mode) }), nil
	}},
	{"js-encode", "JavaScript string escaping", func(Params) (Step, error) {
		return pure("js-encode", encodex.JavaScriptEncode), nil
	}},
	{"shell-encode", "quote as one shell word", func(Params) (Step, error) {
		return pure("shell-encode", encodex.ShellEncode), nil
	}},
	{"sql-encode", "SQL string literal (national: N prefix for non-ASCII)", func(p Params) (Step, error) {
		national, err := p.Bool("national", false)
		if err != nil {
			return nil, collect(err)
		}
		return pure("sql-encode", func(s string) string { return encodex.SQLEncode(s, national) }), nil
	}},
	{"printable", "C escapes for non-printable bytes (newline, non-ascii, full)", func(p Params) (Step, error) {
		nl, err := choice(p, "newline", "quote", newLineModes)
		if err != nil {
			return nil, err
		}
		nonASCII, errA := p.Bool("non-ascii", false)
		full, errF := p.Bool("full", false)
		if err := collect(errA, errF); err != nil {
			return nil, err
		}
		mode := encodex.PrintableMode{NewLine: nl, NonASCIIQuote: nonASCII, Full: full}
		return pure("printable", func(s string) string { return encodex.PrintableString(s, mode) }), nil
	}},
	{"parse-escapes", "decode C escapes (range: standard|first-byte|fail|user, user-char)", func(p Params) (Step, error) {
		rng, err := choice(p, "range", "standard", escapeRanges)
		if err != nil {
			return nil, err
		}
		user := p.String("user-char", "?")
		if len(user) != 1 {
			return nil, errors.ArgumentError(errors.ModulePipeline, "Build", "user-char", user, "a single byte")
		}
		return NewStep("parse-escapes", func(s string) (string, error) {
			return encodex.ParseEscapes(s, rng, user[0])
		}), nil
	}},
	{"replace", "replace text (search, with, start, max)", func(p Params) (Step, error) {
		start, errS := p.Int("start", 0)
		limit, errM := p.Int("max", 0)
		if err := collect(errS, errM); err != nil {
			return nil, err
		}
		search, with := p.String("search", ""), p.String("with", "")
		if search == "" {
			return nil, errors.ArgumentError(errors.ModulePipeline, "Build", "search", search, "a non-empty search text")
		}
		opts := stringx.ReplaceOptions{StartPos: start, MaxReplace: limit}
		return NewStep("replace", func(s string) (string, error) {
			out, _, err := stringx.ReplaceE(s, search, with, opts)
			return out, err
		}), nil
	}},
	{"sanitize", "replace non-printable bytes and squeeze spaces (ascii-only, remove)", func(p Params) (Step, error) {
		ascii, errA := p.Bool("ascii-only", false)
		remove, errR := p.Bool("remove", false)
		if err := collect(errA, errR); err != nil {
			return nil, err
		}
		opts := stringx.SanitizeOptions{ASCIIOnly: ascii, Remove: remove}
		if r := p.String("replacement", ""); r != "" {
			opts.Replacement = r[0]
		}
		return pure("sanitize", func(s string) string { return stringx.Sanitize(s, opts) }), nil
	}},
	{"truncate", "limit length in runes (max, ellipsis)", func(p Params) (Step, error) {
		limit, err := p.Int("max", 80)
		if err != nil {
			return nil, collect(err)
		}
		ellipsis := p.String("ellipsis", "...")
		return NewStep("truncate", func(s string) (string, error) {
			return stringx.TruncateE(s, limit, ellipsis)
		}), nil
	}},
	{"wrap", "reflow to width (prefix, first-prefix, hyphenate, display-width, html)", func(p Params) (Step, error) {
		width, opts, err := wrapOptions(p)
		if err != nil {
			return nil, err
		}
		return NewStep("wrap", func(s string) (string, error) {
			return joinLines(wrapx.Wrap(s, width, opts))
		}), nil
	}},
	{"justify", "reflow and pad to width (prefix, first-prefix)", func(p Params) (Step, error) {
		width, opts, err := wrapOptions(p)
		if err != nil {
			return nil, err
		}
		return NewStep("justify", func(s string) (string, error) {
			return joinLines(wrapx.Justify(s, width, opts.Prefix, opts.FirstPrefix))
		}), nil
	}},
	{"to-utf8", "convert from a single-byte encoding (encoding: auto|latin1|windows-1252)", func(p Params) (Step, error) {
		enc, err := encodingParam(p, "encoding", utf8x.EncodingUnknown)
		if err != nil {
			return nil, err
		}
		return NewStep("to-utf8", func(s string) (string, error) {
			from := enc
			if from == utf8x.EncodingUnknown {
				from = utf8x.GuessEncoding(s)
			}
			return utf8x.AsUTF8(s, from)
		}), nil
	}},
	{"from-utf8", "convert to a single-byte encoding (encoding, placeholder)", func(p Params) (Step, error) {
		enc, err := encodingParam(p, "encoding", utf8x.EncodingISO8859_1)
		if err != nil {
			return nil, err
		}
		sub := utf8x.Fail()
		if _, ok := p["placeholder"]; ok {
			sub = utf8x.Substitute(p.String("placeholder", "?"))
		}
		return NewStep("from-utf8", func(s string) (string, error) {
			return utf8x.FromUTF8(s, enc, sub)
		}), nil
	}},
}
