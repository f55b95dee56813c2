// File: encoding.go
// Title: Narrow String Encodings
// Description: The Encoding enum describing how the bytes of a narrow
//              string are to be interpreted, plus name parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package utf8x

import (
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Encoding describes the byte-level interpretation of a narrow string.
type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingUTF8
	EncodingASCII
	EncodingISO8859_1
	EncodingWindows1252
)

// String returns the canonical name of the encoding
func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingASCII:
		return "ascii"
	case EncodingISO8859_1:
		return "iso-8859-1"
	case EncodingWindows1252:
		return "windows-1252"
	default:
		return "unknown"
	}
}

// ParseEncoding maps a common encoding name to an Encoding. Matching is
// case insensitive and ignores '-' and '_'.
func ParseEncoding(name string) (Encoding, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	switch key {
	case "utf8":
		return EncodingUTF8, nil
	case "ascii", "usascii":
		return EncodingASCII, nil
	case "iso88591", "latin1", "l1":
		return EncodingISO8859_1, nil
	case "windows1252", "cp1252", "win1252":
		return EncodingWindows1252, nil
	default:
		return EncodingUnknown, errors.ArgumentError(errors.ModuleUtf8x, "ParseEncoding", "encoding", name,
			"utf-8, ascii, iso-8859-1 or windows-1252")
	}
}
