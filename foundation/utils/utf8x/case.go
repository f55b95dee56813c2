// File: case.go
// Title: Unicode Case Mapping and Normalization
// Description: Language-aware case conversion, case folding and Unicode
//              normalization of UTF-8 text.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation

package utf8x

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/msto63/textkit/foundation/core/errors"
)

// ToUpper maps s to upper case using the rules of tag.
// Use language.Und for language independent mapping.
func ToUpper(s string, tag language.Tag) string {
	return cases.Upper(tag).String(s)
}

// ToLower maps s to lower case using the rules of tag.
func ToLower(s string, tag language.Tag) string {
	return cases.Lower(tag).String(s)
}

// Fold applies full Unicode case folding, so that "Straße" and "STRASSE"
// fold to the same string.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under full case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// NormalForm selects a Unicode normalization form.
type NormalForm int

const (
	NFC NormalForm = iota
	NFD
	NFKC
	NFKD
)

// String returns the conventional name of the form
func (f NormalForm) String() string {
	switch f {
	case NFD:
		return "NFD"
	case NFKC:
		return "NFKC"
	case NFKD:
		return "NFKD"
	default:
		return "NFC"
	}
}

// ParseNormalForm parses "NFC", "NFD", "NFKC" or "NFKD", ignoring case.
func ParseNormalForm(name string) (NormalForm, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "NFC", "":
		return NFC, nil
	case "NFD":
		return NFD, nil
	case "NFKC":
		return NFKC, nil
	case "NFKD":
		return NFKD, nil
	default:
		return NFC, errors.ArgumentError(errors.ModuleUtf8x, "ParseNormalForm", "form", name,
			"NFC, NFD, NFKC or NFKD")
	}
}

func (f NormalForm) form() norm.Form {
	switch f {
	case NFD:
		return norm.NFD
	case NFKC:
		return norm.NFKC
	case NFKD:
		return norm.NFKD
	default:
		return norm.NFC
	}
}

// Normalize returns s in normalization form f.
func Normalize(s string, f NormalForm) string {
	return f.form().String(s)
}

// IsNormal reports whether s is already in normalization form f.
func IsNormal(s string, f NormalForm) bool {
	return f.form().IsNormalString(s)
}

// TrimWhiteSpace removes leading and trailing Unicode white space.
func TrimWhiteSpace(s string) string {
	return strings.TrimFunc(s, IsWhiteSpace)
}
