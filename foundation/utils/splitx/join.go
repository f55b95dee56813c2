// File: join.go
// Title: Join Helpers
// Description: Inverse operations of the tokenizer: plain, transforming,
//              numeric and quoting joins.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation
// - 2025-02-06 v0.1.1: JoinQuoted

package splitx

import (
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/numx"
)

// Join concatenates parts with delim between consecutive elements.
func Join(parts []string, delim string) string {
	return strings.Join(parts, delim)
}

// TransformJoin renders every item with fn and joins the results.
func TransformJoin[T any](items []T, delim string, fn func(T) string) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString(delim)
		}
		sb.WriteString(fn(item))
	}
	return sb.String()
}

// JoinNumeric formats every value with numx.FormatInt in the given base
// and joins the results.
func JoinNumeric[T numx.Integer](values []T, delim string, opts numx.FormatOptions, base int) (string, error) {
	var sb strings.Builder
	for i, v := range values {
		s, err := numx.FormatInt(v, opts, base)
		if err != nil {
			return "", errors.OperationFailed(errors.ModuleSplitx, "JoinNumeric", err)
		}
		if i > 0 {
			sb.WriteString(delim)
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// JoinQuoted joins parts so that Split with CanQuote options restores
// them: parts containing delimiter bytes, quotes or backslashes are
// wrapped in double quotes, with embedded quotes doubled and backslashes
// escaped. Empty parts are written as "".
func JoinQuoted(parts []string, delim string) string {
	return TransformJoin(parts, delim, func(p string) string {
		if p == "" {
			return `""`
		}
		if !strings.ContainsAny(p, delim+`"'\`) {
			return p
		}
		p = strings.ReplaceAll(p, `\`, `\\`)
		return `"` + strings.ReplaceAll(p, `"`, `""`) + `"`
	})
}
