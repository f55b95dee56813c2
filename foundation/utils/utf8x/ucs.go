// File: ucs.go
// Title: UCS-2 and UCS-4 Conversion
// Description: Converts UTF-8 to fixed width code units and back with an
//              explicit policy for code points the target cannot hold.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-04
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-04 v0.1.0: Initial implementation
// - 2025-02-14 v0.1.1: Accept U+FFFD as UCS-2 placeholder

package utf8x

import (
	"fmt"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
)

// Substitution decides what happens to a code point the target encoding
// cannot represent. When Enabled, Placeholder is emitted in its place;
// otherwise the conversion fails with an encoding error.
type Substitution struct {
	Enabled     bool
	Placeholder string
}

// Fail returns the policy that rejects unrepresentable code points.
func Fail() Substitution { return Substitution{} }

// Substitute returns the policy that replaces unrepresentable code points
// with placeholder.
func Substitute(placeholder string) Substitution {
	return Substitution{Enabled: true, Placeholder: placeholder}
}

// ToUCS2 converts s to UCS-2 code units. Code points above U+FFFF are
// handled by sub; malformed UTF-8 always fails.
func ToUCS2(s string, sub Substitution) ([]uint16, error) {
	out := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		r, size, bad, reason := decodeAt(s, i)
		if bad >= 0 {
			return nil, errors.EncodingError(errors.ModuleUtf8x, "ToUCS2", s, bad, reason)
		}
		if r > 0xFFFF {
			if !sub.Enabled {
				return nil, errors.EncodingError(errors.ModuleUtf8x, "ToUCS2", s, i,
					fmt.Sprintf("U+%04X does not fit in UCS-2", r))
			}
			units, err := placeholderUCS2(sub.Placeholder)
			if err != nil {
				return nil, err
			}
			out = append(out, units...)
		} else {
			out = append(out, uint16(r))
		}
		i += size
	}
	return out, nil
}

// placeholderUCS2 rejects placeholders that are malformed UTF-8 or hold
// characters outside the basic multilingual plane. U+FFFD itself is fine.
func placeholderUCS2(p string) ([]uint16, error) {
	units := make([]uint16, 0, len(p))
	for i := 0; i < len(p); {
		r, size, bad, _ := decodeAt(p, i)
		if bad >= 0 || r > 0xFFFF {
			return nil, errors.ArgumentError(errors.ModuleUtf8x, "ToUCS2", "placeholder", p,
				"characters from the basic multilingual plane")
		}
		units = append(units, uint16(r))
		i += size
	}
	return units, nil
}

// FromUCS2 converts UCS-2 code units to UTF-8. Surrogate units have no
// meaning in UCS-2 and are handled by sub.
func FromUCS2(units []uint16, sub Substitution) (string, error) {
	buf := make([]byte, 0, len(units))
	for i, u := range units {
		if u >= surrogateMin && u <= surrogateMax {
			if !sub.Enabled {
				return "", errors.NewErrorBuilder(errors.ModuleUtf8x).
					Operation("FromUCS2").
					Messagef("surrogate unit 0x%04X at index %d", u, i).
					Code(mdwerror.CodeInvalidEncoding).
					Position(i).
					Build()
			}
			buf = append(buf, sub.Placeholder...)
			continue
		}
		buf, _ = AppendRune(buf, rune(u))
	}
	return string(buf), nil
}

// ToUCS4 converts s to code points. It only fails on malformed UTF-8.
func ToUCS4(s string) ([]rune, error) {
	return Runes(s)
}

// FromUCS4 converts code points to UTF-8. Surrogates and values above
// U+10FFFF are handled by sub.
func FromUCS4(rs []rune, sub Substitution) (string, error) {
	buf := make([]byte, 0, len(rs))
	for i, r := range rs {
		if !validRune(r) {
			if !sub.Enabled {
				return "", errors.NewErrorBuilder(errors.ModuleUtf8x).
					Operation("FromUCS4").
					Messagef("invalid code point 0x%X at index %d", r, i).
					Code(mdwerror.CodeInvalidEncoding).
					Position(i).
					Build()
			}
			buf = append(buf, sub.Placeholder...)
			continue
		}
		buf, _ = AppendRune(buf, r)
	}
	return string(buf), nil
}
