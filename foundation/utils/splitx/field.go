// File: field.go
// Title: Field Access and Key/Value Pairs
// Description: Extracts single fields from delimited text and converts
//              between "k1=v1&k2=v2" strings and ordered pairs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-05 v0.1.0: Initial implementation
// - 2025-02-06 v0.1.1: URL encoded pairs

package splitx

import (
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/encodex"
)

// GetField returns field n (counted from 0) of s, where any byte of
// delims separates fields. With merge set, runs of delimiters count as
// one. It returns "" when s has fewer fields.
func GetField(s string, n int, delims string, merge bool) string {
	if n < 0 {
		return ""
	}
	field, start := 0, 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && strings.IndexByte(delims, s[i]) < 0 {
			continue
		}
		if field == n {
			return s[start:i]
		}
		if i == len(s) {
			break
		}
		if merge {
			for i+1 < len(s) && strings.IndexByte(delims, s[i+1]) >= 0 {
				i++
			}
		}
		field++
		start = i + 1
	}
	return ""
}

// Pair is one key/value entry.
type Pair struct {
	Key   string
	Value string
}

// PairOptions configures ParsePairs and MergePairs. Empty separators
// default to "&" and "=".
type PairOptions struct {
	PairSeparator     string
	KeyValueSeparator string
	// URLEncoded decodes keys and values on parsing and encodes them on
	// merging.
	URLEncoded bool
}

func (o PairOptions) separators() (pair, kv string) {
	pair, kv = o.PairSeparator, o.KeyValueSeparator
	if pair == "" {
		pair = "&"
	}
	if kv == "" {
		kv = "="
	}
	return pair, kv
}

// ParsePairs splits s into pairs. Empty entries are skipped; an entry
// without a key/value separator becomes a key with an empty value.
func ParsePairs(s string, opts PairOptions) ([]Pair, error) {
	const op = "ParsePairs"
	pairSep, kvSep := opts.separators()

	entries, err := Split(s, pairSep, Options{ByPattern: true, MergeDelimiters: true, TruncateBegin: true, TruncateEnd: true})
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleSplitx, op, err)
	}

	pairs := make([]Pair, 0, len(entries))
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		key, value, _, _ := SplitInTwo(entry, kvSep, Options{ByPattern: true})
		if opts.URLEncoded {
			if key, err = encodex.URLDecode(key, encodex.URLDecodeAll); err != nil {
				return nil, errors.OperationFailed(errors.ModuleSplitx, op, err)
			}
			if value, err = encodex.URLDecode(value, encodex.URLDecodeAll); err != nil {
				return nil, errors.OperationFailed(errors.ModuleSplitx, op, err)
			}
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs, nil
}

// MergePairs is the inverse of ParsePairs.
func MergePairs(pairs []Pair, opts PairOptions) string {
	pairSep, kvSep := opts.separators()
	return TransformJoin(pairs, pairSep, func(p Pair) string {
		if opts.URLEncoded {
			return encodex.URLEncode(p.Key, encodex.URLProcessMarkChars) + kvSep +
				encodex.URLEncode(p.Value, encodex.URLProcessMarkChars)
		}
		return p.Key + kvSep + p.Value
	})
}
